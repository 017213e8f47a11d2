package coverage

import (
	"math"
	"sort"
)

// Strength is the side of the formation the defense declares to.
type Strength int

const (
	StrengthBalanced Strength = iota
	StrengthLeft
	StrengthRight
)

func (s Strength) String() string {
	switch s {
	case StrengthLeft:
		return "left"
	case StrengthRight:
		return "right"
	default:
		return "balanced"
	}
}

// Shared receiver-set classification thresholds. Both formation analysis and
// pick detection read these; there is deliberately a single source of truth
// for the spacing numbers.
const (
	tripsMinReceivers = 3
	bunchSpacing      = 3.0 // yards, both axes
	stackSpacingX     = 2.0 // yards, horizontal alignment tolerance
	stackSpacingY     = 2.0 // yards, minimum vertical separation
	slotCenterDist    = 8.0 // yards from midfield that makes a receiver a slot
	backfieldDepth    = 1.5 // yards behind the LOS that puts a back in the backfield
)

// ReceiverSets flags notable receiver groupings in the formation.
type ReceiverSets struct {
	HasBunch bool
	HasStack bool
	IsSpread bool // 3+ WR, no bunch/stack clustering
	IsHeavy  bool // 2+ TE or 2+ backs
}

// PersonnelCount is the offensive grouping on the field.
type PersonnelCount struct {
	QB, RB, WR, TE, FB int
}

// FormationAnalysis is the defense's read of the offensive alignment.
// Recomputed from scratch on every formation-affecting change.
type FormationAnalysis struct {
	Strength       Strength
	LeftReceivers  []*Player
	RightReceivers []*Player
	HasTE          bool
	TESide         Strength
	IsTrips        bool
	TripsSide      Strength
	Sets           ReceiverSets
	Personnel      PersonnelCount
}

// AnalyzeFormation classifies the offensive alignment. It is a pure function
// of the snapshot: no TE, no RB and empty sets are all valid degrade paths,
// never errors.
func AnalyzeFormation(offense []*Player, los float64) FormationAnalysis {
	var fa FormationAnalysis

	for _, p := range offense {
		switch p.Type {
		case QB:
			fa.Personnel.QB++
		case RB:
			fa.Personnel.RB++
		case WR:
			fa.Personnel.WR++
		case TE:
			fa.Personnel.TE++
		case FB:
			fa.Personnel.FB++
		}
		if p.Type == QB || !p.Eligible {
			continue
		}
		// A back in the backfield declares nothing; flexed onto the line he
		// counts like any other receiver.
		if (p.Type == RB || p.Type == FB) && los-p.Pos.Y > backfieldDepth {
			continue
		}
		if p.Pos.X < FieldCenter {
			fa.LeftReceivers = append(fa.LeftReceivers, p)
		} else {
			fa.RightReceivers = append(fa.RightReceivers, p)
		}
		if p.Type == TE {
			fa.HasTE = true
			if p.Pos.X < FieldCenter {
				fa.TESide = StrengthLeft
			} else {
				fa.TESide = StrengthRight
			}
		}
	}

	// Trips: three or more receivers to one side declares strength outright.
	switch {
	case len(fa.LeftReceivers) >= tripsMinReceivers:
		fa.IsTrips = true
		fa.TripsSide = StrengthLeft
	case len(fa.RightReceivers) >= tripsMinReceivers:
		fa.IsTrips = true
		fa.TripsSide = StrengthRight
	}

	switch {
	case fa.IsTrips:
		fa.Strength = fa.TripsSide
	case fa.HasTE:
		fa.Strength = fa.TESide
	case len(fa.LeftReceivers) > len(fa.RightReceivers):
		fa.Strength = StrengthLeft
	case len(fa.RightReceivers) > len(fa.LeftReceivers):
		fa.Strength = StrengthRight
	default:
		fa.Strength = StrengthBalanced
	}

	fa.Sets = classifySets(fa)
	return fa
}

// classifySets detects bunch/stack/spread/heavy groupings.
func classifySets(fa FormationAnalysis) ReceiverSets {
	var sets ReceiverSets
	all := append(append([]*Player{}, fa.LeftReceivers...), fa.RightReceivers...)

	for _, p := range all {
		near := 0
		for _, q := range all {
			if q == p {
				continue
			}
			if math.Abs(q.Pos.X-p.Pos.X) <= bunchSpacing &&
				math.Abs(q.Pos.Y-p.Pos.Y) <= bunchSpacing {
				near++
			}
		}
		if near >= 2 {
			sets.HasBunch = true
			break
		}
	}

	for i, p := range all {
		for _, q := range all[i+1:] {
			if math.Abs(q.Pos.X-p.Pos.X) <= stackSpacingX &&
				math.Abs(q.Pos.Y-p.Pos.Y) > stackSpacingY {
				sets.HasStack = true
			}
		}
	}

	sets.IsHeavy = fa.Personnel.TE >= 2 || fa.Personnel.RB+fa.Personnel.FB >= 2
	sets.IsSpread = fa.Personnel.WR >= 3 && !sets.HasBunch && !sets.HasStack
	return sets
}

// IsSlot reports whether a receiver aligns as a slot (inside) receiver.
func IsSlot(p *Player) bool {
	return math.Abs(p.Pos.X-FieldCenter) < slotCenterDist
}

// receiversOutsideIn returns the eligible receivers on one side ordered
// outside-in (#1 is nearest the sideline, #2 next, ...). Alignment code uses
// this to find the slot an assignment expects; a missing #2 is handled by the
// caller's fallback, not here.
func receiversOutsideIn(side []*Player, left bool) []*Player {
	out := append([]*Player{}, side...)
	sort.Slice(out, func(i, j int) bool {
		if left {
			return out[i].Pos.X < out[j].Pos.X
		}
		return out[i].Pos.X > out[j].Pos.X
	})
	return out
}
