package coverage

import (
	"math"
	"math/rand"
)

// PickConcept names a legal pick/rub formation family.
type PickConcept int

const (
	PickNone PickConcept = iota
	PickMesh
	PickSmash
	PickStack
	PickBunch
)

func (p PickConcept) String() string {
	switch p {
	case PickMesh:
		return "mesh"
	case PickSmash:
		return "smash"
	case PickStack:
		return "stack"
	case PickBunch:
		return "bunch"
	}
	return "none"
}

// Pick execution window in seconds after the snap: contact at 1.2, receivers
// separated by 1.6. Outside the window geometry alone produces no effect.
const (
	pickContactTime    = 1.2
	pickSeparationTime = 1.6
)

// pickProfile tabulates a concept's effectiveness (success probability
// against man and zone) and the nominal separation it creates in yards.
type pickProfile struct {
	vsMan      float64
	vsZone     float64
	separation float64
}

var pickProfiles = map[PickConcept]pickProfile{
	PickMesh:  {vsMan: 0.85, vsZone: 0.65, separation: 2.4},
	PickSmash: {vsMan: 0.88, vsZone: 0.72, separation: 2.0},
	PickStack: {vsMan: 0.78, vsZone: 0.45, separation: 1.8},
	PickBunch: {vsMan: 0.80, vsZone: 0.55, separation: 2.1},
}

// Openness bonus percentages layered on top of the separation result.
const (
	opennessBonusFull    = 15.0
	opennessBonusMinimal = 5.0
	failedSeparationFrac = 0.30
)

// PickAnalysis is the pre-snap read of a formation's pick potential.
type PickAnalysis struct {
	HasPickPotential bool
	Concept          PickConcept
	Receivers        []*Player // the receivers forming the concept
	LegalZones       []Zone    // where the rub may legally occur
}

// IsLegalPick reports whether contact at pos is a legal pick: within one yard
// past the LOS, boundary-inclusive on both ends.
func IsLegalPick(pos Vec2, los float64) bool {
	d := pos.Y - los
	return d >= 0 && d <= 1
}

// AnalyzePickPotential scans the offensive alignment for pick concepts,
// checked in effectiveness order: mesh, smash, stack, then bunch. Detection
// shares the stack/bunch spacing constants with formation analysis. The rub
// zone is projected just past the LOS, where the contact will legally occur.
func AnalyzePickPotential(offense []*Player, los float64) PickAnalysis {
	var eligibles []*Player
	for _, p := range offense {
		if p.Eligible && p.Type != QB && !p.Blocking {
			eligibles = append(eligibles, p)
		}
	}

	if recs := detectMesh(eligibles); len(recs) >= 2 {
		return pickFound(PickMesh, recs, los)
	}
	if recs := detectSmash(eligibles); len(recs) == 2 {
		return pickFound(PickSmash, recs, los)
	}
	if recs := detectStack(eligibles); len(recs) == 2 {
		return pickFound(PickStack, recs, los)
	}
	if recs := detectBunch(eligibles); len(recs) >= 3 {
		return pickFound(PickBunch, recs, los)
	}
	return PickAnalysis{}
}

func pickFound(concept PickConcept, recs []*Player, los float64) PickAnalysis {
	cx := 0.0
	for _, r := range recs {
		cx += r.Pos.X
	}
	cx /= float64(len(recs))
	return PickAnalysis{
		HasPickPotential: true,
		Concept:          concept,
		Receivers:        recs,
		LegalZones: []Zone{{
			Name:   concept.String() + "-rub",
			Center: Vec2{cx, los + 0.5},
			Width:  6, Height: 1, Depth: 0.5,
		}},
	}
}

// detectMesh finds two or more slot receivers within 8 yards of midfield
// (the crossing shallow pair).
func detectMesh(recs []*Player) []*Player {
	var slots []*Player
	for _, r := range recs {
		if IsSlot(r) {
			slots = append(slots, r)
		}
	}
	if len(slots) >= 2 {
		return slots[:2]
	}
	return nil
}

// detectSmash finds an outside/slot pair on the same side.
func detectSmash(recs []*Player) []*Player {
	for _, a := range recs {
		if IsSlot(a) {
			continue
		}
		for _, b := range recs {
			if b == a || !IsSlot(b) {
				continue
			}
			sameSide := (a.Pos.X < FieldCenter) == (b.Pos.X < FieldCenter)
			if sameSide {
				return []*Player{a, b}
			}
		}
	}
	return nil
}

// detectStack finds two receivers aligned vertically: within stackSpacingX
// horizontally and more than stackSpacingY apart vertically.
func detectStack(recs []*Player) []*Player {
	for i, a := range recs {
		for _, b := range recs[i+1:] {
			if math.Abs(a.Pos.X-b.Pos.X) <= stackSpacingX &&
				math.Abs(a.Pos.Y-b.Pos.Y) > stackSpacingY {
				return []*Player{a, b}
			}
		}
	}
	return nil
}

// detectBunch finds a receiver with two or more others inside bunchSpacing on
// both axes.
func detectBunch(recs []*Player) []*Player {
	for _, a := range recs {
		group := []*Player{a}
		for _, b := range recs {
			if b == a {
				continue
			}
			if math.Abs(a.Pos.X-b.Pos.X) <= bunchSpacing &&
				math.Abs(a.Pos.Y-b.Pos.Y) <= bunchSpacing {
				group = append(group, b)
			}
		}
		if len(group) >= 3 {
			return group
		}
	}
	return nil
}

// PickResult is the outcome of resolving one pick attempt.
type PickResult struct {
	PickExecuted      bool
	SeparationCreated float64 // yards of separation the rub bought
	OpennessBonus     float64 // percent added to the freed receiver's openness
}

// ResolvePick resolves a pick attempt at gameTime against the called
// coverage. Outside the contact window the pick produces nothing regardless
// of geometry. The success draw comes from the injected rng so outcomes are
// reproducible under a fixed seed.
func ResolvePick(concept PickConcept, manCoverage bool, gameTime float64, rng *rand.Rand) PickResult {
	if gameTime < pickContactTime || gameTime > pickSeparationTime {
		return PickResult{}
	}
	prof, ok := pickProfiles[concept]
	if !ok {
		return PickResult{}
	}
	threshold := prof.vsZone
	if manCoverage {
		threshold = prof.vsMan
	}
	if rng.Float64() < threshold {
		return PickResult{
			PickExecuted:      true,
			SeparationCreated: prof.separation,
			OpennessBonus:     opennessBonusFull,
		}
	}
	return PickResult{
		PickExecuted:      false,
		SeparationCreated: prof.separation * failedSeparationFrac,
		OpennessBonus:     opennessBonusMinimal,
	}
}

// BanjoSwap is the man-coverage counter to a pick: the two man defenders
// nearest the rub exchange their targets. It returns a new responsibility map
// for just those two defenders; the caller applies it atomically.
func BanjoSwap(defense []*Player, rubPoint Vec2) map[string]Responsibility {
	var first, second *Player
	d1, d2 := math.Inf(1), math.Inf(1)
	for _, d := range defense {
		if d.Responsibility == nil || d.Responsibility.Kind != RespMan {
			continue
		}
		dist := Dist(d.Pos, rubPoint)
		switch {
		case dist < d1:
			second, d2 = first, d1
			first, d1 = d, dist
		case dist < d2:
			second, d2 = d, dist
		}
	}
	if first == nil || second == nil {
		return nil
	}
	return map[string]Responsibility{
		first.ID:  {Kind: RespMan, TargetID: second.Responsibility.TargetID},
		second.ID: {Kind: RespMan, TargetID: first.Responsibility.TargetID},
	}
}

// WidenZoneCounter is the zone counter: the zone defender closest to the rub
// widens his zone by 20% to pass the rubbed route off cleanly. Returns the
// replacement responsibility, or nil when no zone defender is near.
func WidenZoneCounter(defense []*Player, rubPoint Vec2) map[string]Responsibility {
	var closest *Player
	best := math.Inf(1)
	for _, d := range defense {
		if d.Responsibility == nil || d.Responsibility.Kind != RespZone || d.Responsibility.Zone == nil {
			continue
		}
		if dist := Dist(d.Pos, rubPoint); dist < best {
			closest = d
			best = dist
		}
	}
	if closest == nil {
		return nil
	}
	z := *closest.Responsibility.Zone
	z.Width *= 1.2
	return map[string]Responsibility{
		closest.ID: {Kind: RespZone, Zone: &z},
	}
}
