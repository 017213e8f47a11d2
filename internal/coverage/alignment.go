package coverage

import (
	"math"
	"sort"
)

// AlignmentMap is a proposed pre-snap position per defender id. Defenders
// absent from the map keep their prior position; generation never fails.
type AlignmentMap map[string]Vec2

// GenerateAlignment computes every defender's pre-snap target for the called
// coverage. The formation is analyzed fresh and roles are assigned before
// dispatching to the archetype generator.
func GenerateAlignment(cov Coverage, offense, defense []*Player, los float64) AlignmentMap {
	fa := AnalyzeFormation(offense, los)
	dp := MatchPersonnel(fa.Personnel)
	AssignRoles(defense, dp, fa.Strength)

	var am AlignmentMap
	switch cov.Type {
	case Cover0:
		am = generateCover0Alignment(cov, offense, defense, fa, los)
	case Cover1:
		am = generateCover1Alignment(cov, offense, defense, fa, los)
	case Cover2:
		am = generateCover2Alignment(cov, offense, defense, fa, los, false)
	case Tampa2:
		am = generateCover2Alignment(cov, offense, defense, fa, los, true)
	case Cover3:
		am = generateCover3Alignment(cov, offense, defense, fa, los)
	case Cover4:
		am = generateCover4Alignment(cov, offense, defense, fa, los)
	case Cover6:
		am = generateCover6Alignment(cov, offense, defense, fa, los)
	default:
		am = generateCover3Alignment(cov, offense, defense, fa, los)
	}

	if fa.Sets.HasBunch {
		applyBunchBox(am, offense, defense, fa, los)
	}
	return am
}

// ApplyCoverageAdjustments runs alignment and responsibility assignment for
// the called coverage and returns the combined batch. The caller applies the
// adjustments atomically; positions and responsibilities are never written
// here, only the role tags AssignRoles hands out.
func ApplyCoverageAdjustments(cov Coverage, defense, offense []*Player, los float64) []Adjustment {
	am := GenerateAlignment(cov, offense, defense, los)
	fa := AnalyzeFormation(offense, los)
	resp := AssignResponsibilities(cov, offense, defense, fa, los)

	var out []Adjustment
	for _, d := range defense {
		pos, moved := am[d.ID]
		r, reassigned := resp[d.ID]
		if !moved && !reassigned {
			continue
		}
		adj := Adjustment{DefenderID: d.ID, NewPosition: d.Pos}
		if moved {
			adj.NewPosition = pos
		}
		if reassigned {
			rc := r
			adj.NewResponsibility = &rc
			if rc.Kind == RespMan {
				if tgt := findPlayer(offense, rc.TargetID); tgt != nil {
					adj.Leverage = LeverageOf(adj.NewPosition, tgt.Pos)
				}
			}
		}
		adj.Technique = techniqueFor(cov, d.Role)
		out = append(out, adj)
	}
	return out
}

// techniqueFor labels the technique a role plays in a coverage. Informational
// only; the label feeds logs and the field viewer.
func techniqueFor(cov Coverage, role DefensiveRole) string {
	switch cov.Type {
	case Cover0, Cover1:
		if role == RoleCBLeft || role == RoleCBRight || role == RoleCBExtra {
			return "press"
		}
		return "man"
	case Cover2, Tampa2:
		if role == RoleCBLeft || role == RoleCBRight {
			return "jam-flat"
		}
		return "zone"
	case Cover4, Cover6:
		if role == RoleCBLeft || role == RoleCBRight {
			return "bail"
		}
		return "zone"
	default:
		return "zone"
	}
}

// defenderByRole returns the defender tagged with the role, or nil. A missing
// role is an expected degrade path (short personnel), handled by callers.
func defenderByRole(defense []*Player, role DefensiveRole) *Player {
	for _, d := range defense {
		if d.Role == role {
			return d
		}
	}
	return nil
}

func findPlayer(ps []*Player, id string) *Player {
	for _, p := range ps {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// numberOneReceiver returns the widest eligible receiver on a side, or nil.
func numberOneReceiver(fa FormationAnalysis, left bool) *Player {
	side := fa.RightReceivers
	if left {
		side = fa.LeftReceivers
	}
	ordered := receiversOutsideIn(side, left)
	if len(ordered) == 0 {
		return nil
	}
	return ordered[0]
}

// numberTwoReceiver returns the second receiver outside-in on a side, or nil
// when the side has fewer than two.
func numberTwoReceiver(fa FormationAnalysis, left bool) *Player {
	side := fa.RightReceivers
	if left {
		side = fa.LeftReceivers
	}
	ordered := receiversOutsideIn(side, left)
	if len(ordered) < 2 {
		return nil
	}
	return ordered[1]
}

// tripsShadeX returns the signed x shade to apply toward the trips side, or 0
// when the formation is not trips.
func tripsShadeX(fa FormationAnalysis, shade float64) float64 {
	if !fa.IsTrips {
		return 0
	}
	if fa.TripsSide == StrengthLeft {
		return -shade
	}
	return shade
}

// strengthSign returns -1 for a left-declared formation, +1 otherwise.
func strengthSign(fa FormationAnalysis) float64 {
	if fa.Strength == StrengthLeft {
		return -1
	}
	return 1
}

// overReceiver places a defender on a receiver at the given depth off the
// LOS, with a lateral leverage offset (positive = toward the sideline the
// receiver is nearest).
func overReceiver(rec *Player, los, depth, leverageOff float64) Vec2 {
	x := rec.Pos.X
	if leverageOff != 0 {
		if rec.Pos.X < FieldCenter {
			x -= leverageOff
		} else {
			x += leverageOff
		}
	}
	return Vec2{ClampX(x), los + depth}
}

// applyBunchBox clusters the defenders assigned over a bunch into a staggered
// "box" around it: the two nearest mapped defenders collapse to the bunch
// centroid at alternating depths instead of spreading to their landmarks.
func applyBunchBox(am AlignmentMap, offense, defense []*Player, fa FormationAnalysis, los float64) {
	cx, cy, n := 0.0, 0.0, 0
	all := append(append([]*Player{}, fa.LeftReceivers...), fa.RightReceivers...)
	for _, p := range all {
		near := 0
		for _, q := range all {
			if q != p && math.Abs(q.Pos.X-p.Pos.X) <= bunchSpacing && math.Abs(q.Pos.Y-p.Pos.Y) <= bunchSpacing {
				near++
			}
		}
		if near >= 2 {
			cx += p.Pos.X
			cy += p.Pos.Y
			n++
		}
	}
	if n < 3 {
		return
	}
	center := Vec2{cx / float64(n), cy / float64(n)}

	// Two closest mapped defenders box the bunch at staggered depth.
	type cand struct {
		id   string
		dist float64
	}
	var cands []cand
	for _, d := range defense {
		pos, ok := am[d.ID]
		if !ok {
			continue
		}
		cands = append(cands, cand{d.ID, Dist(pos, center)})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	depths := []float64{1.5, 5.0}
	for i := 0; i < len(cands) && i < len(depths); i++ {
		side := 1.5
		if i%2 == 1 {
			side = -1.5
		}
		am[cands[i].id] = Vec2{ClampX(center.X + side), los + depths[i]}
	}
}
