package coverage

import (
	"fmt"
	"math/rand"
)

// tickRate is the fixed simulation step driven by the consuming engine.
const (
	TicksPerSecond = 60
	TickDt         = 1.0 / TicksPerSecond
)

// PlaySim is a headless stand-in for the consuming play engine: it owns the
// player list (the single writer), drives the fixed per-tick ordering and
// applies the delta batches the core hands back. Tests and the batch report
// runner both build on it.
type PlaySim struct {
	LOS     float64
	Cov     Coverage
	Offense []*Player
	Defense []*Player
	Log     *PlayLog

	Formation FormationAnalysis
	Personnel DefensivePersonnel
	Pick      PickAnalysis
	PickOut   PickResult

	rng     *rand.Rand
	tick    int
	elapsed float64
	snapped bool

	matcher    *PatternMatcher
	recvStates map[string]*ReceiverState
	motion     *Motion
	pickDone   bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // LOS, coverage, seed, verbose
	simOptPlayer                      // add players
	simOptMotion                      // pre-snap motion, after players exist
)

// SimOption is a builder function applied to a PlaySim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*PlaySim)
}

// WithLOS sets the line of scrimmage in field yards.
func WithLOS(los float64) SimOption {
	return SimOption{simOptInfra, func(ps *PlaySim) { ps.LOS = los }}
}

// WithCoverage sets the defensive call.
func WithCoverage(cov Coverage) SimOption {
	return SimOption{simOptInfra, func(ps *PlaySim) { ps.Cov = cov }}
}

// WithSeed sets the RNG seed for deterministic pick resolution.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ps *PlaySim) {
		ps.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation, not crypto
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ps *PlaySim) { ps.Log = NewPlayLog(v) }}
}

// WithReceiver adds an eligible route-runner at (x, losOffset yards short of
// the LOS).
func WithReceiver(id string, pt PlayerType, x, yOff float64, rt RouteType) SimOption {
	return SimOption{simOptPlayer, func(ps *PlaySim) {
		p := &Player{
			ID: id, Team: TeamOffense, Type: pt,
			Pos:      Vec2{x, ps.LOS - yOff},
			Eligible: true,
			MaxSpeed: 8.5,
		}
		if rt != RouteNone {
			mirrored := x < FieldCenter
			p.Route = BuildRoute(rt, p.Pos, ps.LOS, mirrored, 0)
			ps.recvStates[id] = NewReceiverState(rt)
		}
		ps.Offense = append(ps.Offense, p)
	}}
}

// WithQB adds the quarterback.
func WithQB(id string, x, yOff float64) SimOption {
	return SimOption{simOptPlayer, func(ps *PlaySim) {
		ps.Offense = append(ps.Offense, &Player{
			ID: id, Team: TeamOffense, Type: QB,
			Pos: Vec2{x, ps.LOS - yOff}, MaxSpeed: 7.0,
		})
	}}
}

// WithDefender adds a defender at (x, depth yards past the LOS).
func WithDefender(id string, pt PlayerType, x, depth float64) SimOption {
	return SimOption{simOptPlayer, func(ps *PlaySim) {
		ps.Defense = append(ps.Defense, &Player{
			ID: id, Team: TeamDefense, Type: pt,
			Pos: Vec2{x, ps.LOS + depth}, MaxSpeed: 8.2,
		})
	}}
}

// WithMotion starts a pre-snap motion that lands before the snap.
func WithMotion(playerID string, mt MotionType, endX, endYOff float64) SimOption {
	return SimOption{simOptMotion, func(ps *PlaySim) {
		p := findPlayer(ps.Offense, playerID)
		if p == nil {
			return
		}
		ps.motion = &Motion{
			PlayerID: playerID,
			Type:     mt,
			Start:    p.Pos,
			End:      Vec2{endX, ps.LOS - endYOff},
		}
	}}
}

// NewPlaySim constructs a play in ordered passes: infrastructure, players,
// alignment + responsibilities, then any pre-snap motion.
func NewPlaySim(opts ...SimOption) *PlaySim {
	ps := &PlaySim{
		LOS:        30,
		Cov:        NewCoverage(Cover3),
		Log:        NewPlayLog(false),
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- simulation default
		matcher:    NewPatternMatcher(),
		recvStates: make(map[string]*ReceiverState),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ps)
		}
	}
	for _, o := range opts {
		if o.kind == simOptPlayer {
			o.fn(ps)
		}
	}
	ps.alignDefense()
	for _, o := range opts {
		if o.kind == simOptMotion {
			o.fn(ps)
		}
	}
	if ps.motion != nil {
		ps.runMotion()
	}
	ps.Pick = AnalyzePickPotential(ps.Offense, ps.LOS)
	if ps.Pick.HasPickPotential {
		ps.Log.Add(ps.tick, "--", "offense", "pick", "detected",
			ps.Pick.Concept.String(), 0)
	}
	return ps
}

// alignDefense runs the full pre-snap pipeline: formation analysis, personnel
// match, role assignment, alignment and responsibilities, applied as one
// batch.
func (ps *PlaySim) alignDefense() {
	ps.Formation = AnalyzeFormation(ps.Offense, ps.LOS)
	ps.Personnel = MatchPersonnel(ps.Formation.Personnel)
	ps.Log.Add(ps.tick, "--", "defense", "alignment", "personnel",
		fmt.Sprintf("CB=%d S=%d LB=%d NB=%d", ps.Personnel.CB, ps.Personnel.S, ps.Personnel.LB, ps.Personnel.NB), 0)

	adjs := ApplyCoverageAdjustments(ps.Cov, ps.Defense, ps.Offense, ps.LOS)
	ps.applyAdjustments(adjs, "alignment")
}

// runMotion applies the motion response and walks the motion man to his
// landing spot. The whole delta batch lands atomically, per the single-writer
// contract.
func (ps *PlaySim) runMotion() {
	m := *ps.motion
	response := ResponseForMotion(ps.Cov.Type, m.Type)
	ps.Log.Add(ps.tick, m.PlayerID, "offense", "motion", "response",
		fmt.Sprintf("%s vs %s → %s", m.Type, ps.Cov.Type, response), 0)

	adjs := HandleMotionAdjustments(ps.Cov, m, ps.Defense, ps.Offense, ps.LOS)
	ps.applyAdjustments(adjs, "motion")

	if p := findPlayer(ps.Offense, m.PlayerID); p != nil {
		p.Pos = m.End
		if p.Route != nil {
			// Routes run from where the motion landed.
			mirrored := p.Pos.X < FieldCenter
			p.Route = BuildRoute(p.Route.Type, p.Pos, ps.LOS, mirrored, 0)
		}
	}
	// Motion can flip the read; the pre-snap picture is re-analyzed.
	ps.Formation = AnalyzeFormation(ps.Offense, ps.LOS)
}

// applyAdjustments is the single mutation point for defender state.
func (ps *PlaySim) applyAdjustments(adjs []Adjustment, category string) {
	for _, adj := range adjs {
		d := findPlayer(ps.Defense, adj.DefenderID)
		if d == nil {
			continue
		}
		d.Pos = adj.NewPosition
		if adj.NewResponsibility != nil {
			d.Responsibility = adj.NewResponsibility
		}
		ps.Log.AddVerbose(ps.tick, d.ID, "defense", category, "adjusted",
			fmt.Sprintf("(%.1f,%.1f) %s", d.Pos.X, d.Pos.Y, adj.Technique), 0)
	}
}

// applyPatch applies a responsibility-only patch (banjo, zone widen, autofix).
func (ps *PlaySim) applyPatch(patch map[string]Responsibility, key string) {
	for id, r := range patch {
		d := findPlayer(ps.Defense, id)
		if d == nil {
			continue
		}
		rc := r
		d.Responsibility = &rc
		ps.Log.Add(ps.tick, id, "defense", "pick", key, rc.Kind.String(), 0)
	}
}

// Snap starts the play clock.
func (ps *PlaySim) Snap() {
	ps.snapped = true
	ps.Log.Add(ps.tick, "--", "--", "play", "snap", "", 0)
}

// Elapsed returns seconds since the snap.
func (ps *PlaySim) Elapsed() float64 {
	return ps.elapsed
}

// CurrentTick returns the current tick index.
func (ps *PlaySim) CurrentTick() int {
	return ps.tick
}

// Matcher exposes the pattern-match state for assertions.
func (ps *PlaySim) Matcher() *PatternMatcher {
	return ps.matcher
}

// ReceiverState returns the live execution state for a route runner.
func (ps *PlaySim) ReceiverState(id string) *ReceiverState {
	return ps.recvStates[id]
}

// RunTicks advances the play n ticks.
func (ps *PlaySim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ps.tick++
		ps.runOneTick()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate returns
// true. Returns the tick at which it was satisfied, or -1.
func (ps *PlaySim) RunUntil(predicate func(*PlaySim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ps.tick++
		ps.runOneTick()
		if predicate(ps) {
			return ps.tick
		}
	}
	return -1
}

// runOneTick executes the fixed per-tick ordering: receiver movement, then
// option-route/pattern-match/pick evaluation against the current clock, then
// defender pursuit, then the validator as a non-gating debug check.
func (ps *PlaySim) runOneTick() {
	if !ps.snapped {
		return
	}
	ps.elapsed += TickDt

	// 1. Receivers run their routes.
	for _, p := range ps.Offense {
		rs := ps.recvStates[p.ID]
		if rs == nil || p.Route == nil {
			continue
		}
		prevPhase := rs.Phase
		p.Pos = rs.Advance(p, ps.Defense, ps.LOS, ps.elapsed, TickDt)
		if rs.Phase != prevPhase {
			ps.Log.Add(ps.tick, p.ID, "offense", "route", "phase",
				fmt.Sprintf("%s → %s", prevPhase, rs.Phase), 0)
		}
		ps.Log.AddVerbose(ps.tick, p.ID, "offense", "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", p.Pos.X, p.Pos.Y), 0)
	}

	// 2. Option routes resolve inside their window.
	for _, p := range ps.Offense {
		if p.Route == nil || p.Route.Type != RouteChoice {
			continue
		}
		nd := NearestDefender(ps.Defense, p.Pos)
		if decided, ok := EvaluateOptionRoute(p, nd, ps.Cov, ps.elapsed); ok {
			p.Route = ConvertOptionRoute(p, decided, ps.LOS, ps.elapsed)
			ps.Log.Add(ps.tick, p.ID, "offense", "route", "option-decided", decided.String(), 0)
		}
	}

	// 3. Pattern matching.
	prevStates := make(map[string]MatchState, len(ps.Defense))
	for _, d := range ps.Defense {
		prevStates[d.ID] = ps.matcher.State(d.ID)
	}
	adjs := ps.matcher.Evaluate(ps.Defense, ps.Offense, ps.LOS)
	ps.applyAdjustments(adjs, "match")
	for _, d := range ps.Defense {
		if st := ps.matcher.State(d.ID); st != prevStates[d.ID] {
			tgt, _ := ps.matcher.MatchedTarget(d.ID)
			ps.Log.Add(ps.tick, d.ID, "defense", "match", "converted",
				fmt.Sprintf("%s → %s (%s)", prevStates[d.ID], st, tgt), 0)
		}
	}

	// 4. Pick resolution, once, inside the contact window.
	if ps.Pick.HasPickPotential && !ps.pickDone && ps.elapsed >= pickContactTime {
		if len(ps.Pick.LegalZones) > 0 && IsLegalPick(ps.Pick.LegalZones[0].Center, ps.LOS) {
			ps.PickOut = ResolvePick(ps.Pick.Concept, ps.Cov.Type.IsManScheme(), ps.elapsed, ps.rng)
			ps.Log.Add(ps.tick, "--", "offense", "pick", "resolved",
				fmt.Sprintf("executed=%v sep=%.1f bonus=%.0f%%", ps.PickOut.PickExecuted,
					ps.PickOut.SeparationCreated, ps.PickOut.OpennessBonus), ps.PickOut.SeparationCreated)
			if ps.PickOut.PickExecuted {
				rub := ps.Pick.LegalZones[0].Center
				if ps.Cov.Type.IsManScheme() {
					ps.applyPatch(BanjoSwap(ps.Defense, rub), "banjo")
				} else {
					ps.applyPatch(WidenZoneCounter(ps.Defense, rub), "widen")
				}
			}
		}
		ps.pickDone = true
	}

	// 5. Defender pursuit.
	ps.pursueAssignments()

	// 6. Validator as a debug consistency check, never a gate.
	res := ValidateCoverageAssignments(ps.Defense, ps.Offense, ps.Cov, ps.LOS)
	for _, e := range res.Errors {
		ps.Log.AddVerbose(ps.tick, e.Subject, "defense", "validate", e.Code, e.Message, 0)
	}
}

// pursueAssignments moves each defender toward what his responsibility
// demands: man defenders chase their target, zone defenders settle on their
// landmark, blitzers attack the ball.
func (ps *PlaySim) pursueAssignments() {
	for _, d := range ps.Defense {
		r := d.Responsibility
		if r == nil {
			continue
		}
		var target Vec2
		switch r.Kind {
		case RespMan:
			tgt := findPlayer(ps.Offense, r.TargetID)
			if tgt == nil {
				continue
			}
			target = Vec2{tgt.Pos.X, tgt.Pos.Y + 1}
		case RespZone:
			if r.Zone == nil {
				continue
			}
			target = r.Zone.Center
		case RespBlitz:
			target = Vec2{FieldCenter, ps.LOS - 5}
		default:
			continue
		}
		// Pattern-matched defenders already had their carry position applied.
		if ps.matcher.State(d.ID) == MatchMan {
			continue
		}
		d.Pos = StepToward(d.Pos, target, d.MaxSpeed*0.95*TickDt)
	}
}

// Reset discards all in-play state (coverage change, audible, play over).
// Phase, motion, match and pick state never leak across a reset.
func (ps *PlaySim) Reset(cov Coverage) {
	ps.Cov = cov
	ps.snapped = false
	ps.elapsed = 0
	ps.pickDone = false
	ps.PickOut = PickResult{}
	ps.motion = nil
	ps.matcher.Reset()
	for id := range ps.recvStates {
		delete(ps.recvStates, id)
	}
	for _, p := range ps.Offense {
		if p.Route != nil {
			mirrored := p.Pos.X < FieldCenter
			p.Route = BuildRoute(p.Route.Type, p.Pos, ps.LOS, mirrored, 0)
			ps.recvStates[p.ID] = NewReceiverState(p.Route.Type)
		}
	}
	ps.alignDefense()
	ps.Pick = AnalyzePickPotential(ps.Offense, ps.LOS)
	ps.Log.Add(ps.tick, "--", "--", "play", "reset", cov.Type.String(), 0)
}

// PlayerSnapshot is a lightweight copy of one player's state at a tick.
type PlayerSnapshot struct {
	ID    string
	Team  Team
	Type  PlayerType
	X, Y  float64
	Phase RoutePhase
	State MatchState
}

// PlaySnapshot captures a lightweight state summary.
type PlaySnapshot struct {
	Tick    int
	Elapsed float64
	Players []PlayerSnapshot
}

// Snapshot returns the current state of all players.
func (ps *PlaySim) Snapshot() PlaySnapshot {
	snap := PlaySnapshot{Tick: ps.tick, Elapsed: ps.elapsed}
	for _, p := range ps.Offense {
		s := PlayerSnapshot{ID: p.ID, Team: p.Team, Type: p.Type, X: p.Pos.X, Y: p.Pos.Y}
		if rs := ps.recvStates[p.ID]; rs != nil {
			s.Phase = rs.Phase
		}
		snap.Players = append(snap.Players, s)
	}
	for _, d := range ps.Defense {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID: d.ID, Team: d.Team, Type: d.Type, X: d.Pos.X, Y: d.Pos.Y,
			State: ps.matcher.State(d.ID),
		})
	}
	return snap
}
