package coverage

import "math"

// RoutePhase is a stage of route execution.
type RoutePhase int

const (
	PhaseAcceleration RoutePhase = iota // first steps off the line
	PhaseStem                           // vertical push selling the route
	PhasePreBreak                       // gather before the cut
	PhaseBreak                          // the plant step
	PhasePostBreak                      // acceleration out of the cut
	PhaseCompletion                     // route finished, full speed on the final line
)

func (p RoutePhase) String() string {
	switch p {
	case PhaseAcceleration:
		return "acceleration"
	case PhaseStem:
		return "stem"
	case PhasePreBreak:
		return "pre-break"
	case PhaseBreak:
		return "break"
	case PhasePostBreak:
		return "post-break"
	}
	return "completion"
}

// phaseSpec pairs a phase duration with its base speed multiplier.
type phaseSpec struct {
	duration float64 // seconds; completion is open-ended
	speedMul float64
}

var phaseSpecs = [...]phaseSpec{
	PhaseAcceleration: {0.3, 0.6},
	PhaseStem:         {0.8, 0.85},
	PhasePreBreak:     {0.2, 0.7},
	PhaseBreak:        {0.1, 0.4},
	PhasePostBreak:    {0.3, 0.8},
	PhaseCompletion:   {math.Inf(1), 1.0},
}

// SeparationTechnique is how a receiver creates separation at the break.
type SeparationTechnique int

const (
	TechSpeedCut    SeparationTechnique = iota // rounded cut at near-full speed
	TechPlantAndCut                            // hard plant, explosive release
	TechStacking                               // get on top of the defender vertically
)

func (t SeparationTechnique) String() string {
	switch t {
	case TechPlantAndCut:
		return "plant-and-cut"
	case TechStacking:
		return "stacking"
	}
	return "speed-cut"
}

// techniqueForRoute picks the natural separation technique for a route:
// quick game rounds its cuts, stop routes plant, verticals stack.
func techniqueForRoute(rt RouteType) SeparationTechnique {
	switch rt {
	case RouteGo, RoutePost, RouteWheel, RouteCorner:
		return TechStacking
	case RouteComeback, RouteCurl, RouteHitch, RouteOut, RouteIn:
		return TechPlantAndCut
	default:
		return TechSpeedCut
	}
}

// techniqueSpeed scales the phase speed multiplier during break/post-break.
// Plant-and-cut dies to 0.4x on the plant then releases at 1.1x; a speed cut
// holds more through the break; stacking barely slows.
func techniqueSpeed(t SeparationTechnique, p RoutePhase, base float64) float64 {
	switch t {
	case TechPlantAndCut:
		if p == PhaseBreak {
			return 0.4
		}
		if p == PhasePostBreak {
			return base * 1.1
		}
	case TechSpeedCut:
		if p == PhaseBreak {
			return base * 1.6 // ~0.65 effective, no full stop
		}
	case TechStacking:
		if p == PhaseBreak || p == PhasePostBreak {
			return base * 1.15
		}
	}
	return base
}

// Leverage stem-adjustment constants: applied once per tick while a defender
// presses within stemPressDist during acceleration/stem.
const (
	stemPressDist    = 5.0
	stemAdjustSide   = 1.5
	stemAdjustHeadUp = 0.5
)

// ReceiverState is one route-runner's live execution state. Created when the
// route is installed, discarded on reset.
type ReceiverState struct {
	Phase            RoutePhase
	SpeedMultiplier  float64
	PhaseElapsed     float64
	HasExecutedBreak bool
	LeverageAdjust   float64 // signed x offset worked into the stem
	Technique        SeparationTechnique
}

// NewReceiverState initializes execution state for a route.
func NewReceiverState(rt RouteType) *ReceiverState {
	return &ReceiverState{
		Phase:           PhaseAcceleration,
		SpeedMultiplier: phaseSpecs[PhaseAcceleration].speedMul,
		Technique:       techniqueForRoute(rt),
	}
}

// Advance runs one movement tick and returns the receiver's proposed new
// position. elapsed is seconds since the snap, dt the tick length. The
// receiver chases the interpolated route position; a pressing defender bends
// the stem by the leverage adjustment.
func (rs *ReceiverState) Advance(rec *Player, defense []*Player, los, elapsed, dt float64) Vec2 {
	if rec.Route == nil {
		return rec.Pos
	}

	rs.PhaseElapsed += dt
	for spec := phaseSpecs[rs.Phase]; rs.PhaseElapsed >= spec.duration && rs.Phase < PhaseCompletion; spec = phaseSpecs[rs.Phase] {
		rs.PhaseElapsed -= spec.duration
		rs.Phase++
		if rs.Phase == PhaseBreak {
			rs.HasExecutedBreak = true
		}
	}

	base := phaseSpecs[rs.Phase].speedMul
	rs.SpeedMultiplier = techniqueSpeed(rs.Technique, rs.Phase, base)

	target := rec.Route.PositionAt(elapsed)

	// Stem bend: only while working off the line, one adjustment per tick.
	if rs.Phase == PhaseAcceleration || rs.Phase == PhaseStem {
		if d := NearestDefender(defense, rec.Pos); d != nil && Dist(d.Pos, rec.Pos) <= stemPressDist {
			toCenter := stemAdjustSide
			if rec.Pos.X > FieldCenter {
				toCenter = -stemAdjustSide
			}
			switch LeverageOf(d.Pos, rec.Pos) {
			case LeverageOutside:
				// Outside leverage: work inside.
				rs.LeverageAdjust = toCenter
			case LeverageInside:
				rs.LeverageAdjust = -toCenter
			default:
				rs.LeverageAdjust = stemAdjustHeadUp
			}
		}
		target.X = ClampX(target.X + rs.LeverageAdjust)
	}

	speed := rec.MaxSpeed * rs.SpeedMultiplier
	return StepToward(rec.Pos, target, speed*dt)
}
