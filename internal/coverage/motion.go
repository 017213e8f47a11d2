package coverage

import "math"

// MotionType names a pre-snap motion.
type MotionType int

const (
	MotionFly MotionType = iota
	MotionOrbit
	MotionJet
	MotionReturn
	MotionShift
	MotionAcross
	MotionGlide
)

func (m MotionType) String() string {
	switch m {
	case MotionFly:
		return "fly"
	case MotionOrbit:
		return "orbit"
	case MotionJet:
		return "jet"
	case MotionReturn:
		return "return"
	case MotionShift:
		return "shift"
	case MotionAcross:
		return "across"
	case MotionGlide:
		return "glide"
	}
	return "unknown"
}

// Motion is the one active pre-snap motion. At most one player is ever in
// motion; the coordinator only exists while the motion window is open.
type Motion struct {
	PlayerID string
	Type     MotionType
	Start    Vec2
	End      Vec2
}

// MotionResponse labels how a coverage answers a motion.
type MotionResponse int

const (
	RespMinimal       MotionResponse = iota // at most a small nudge from one nearby defender
	RespLock                                // assigned defender travels to the motion landing spot
	RespTravel                              // whole defense slides with the motion
	RespBuzzDown                            // strong safety drops to the hook
	RespSpin                                // safeties rotate opposite the motion
	RespCheck                               // re-analyze; mirror the call if strength flipped
	RespPatternAdjust                       // reset pattern-match triggers on the motion man
	RespMegTrigger                          // install hard man on the motion man
	RespBump                                // backers bump zones toward the motion
)

func (m MotionResponse) String() string {
	switch m {
	case RespLock:
		return "lock"
	case RespTravel:
		return "travel"
	case RespBuzzDown:
		return "buzz"
	case RespSpin:
		return "spin"
	case RespCheck:
		return "check"
	case RespPatternAdjust:
		return "pattern-adjust"
	case RespMegTrigger:
		return "meg-trigger"
	case RespBump:
		return "bump"
	}
	return "minimal"
}

// motionResponses is the (coverage, motion) rule table. Lookup is total:
// pairs not present default to minimal.
var motionResponses = map[CoverageType]map[MotionType]MotionResponse{
	Cover0: {
		MotionFly:    RespLock,
		MotionJet:    RespLock,
		MotionAcross: RespLock,
		MotionOrbit:  RespLock,
		MotionShift:  RespCheck,
		MotionReturn: RespLock,
		MotionGlide:  RespLock,
	},
	Cover1: {
		MotionFly:    RespLock,
		MotionJet:    RespTravel,
		MotionAcross: RespLock,
		MotionOrbit:  RespSpin,
		MotionShift:  RespCheck,
		MotionReturn: RespMegTrigger,
		MotionGlide:  RespLock,
	},
	Cover2: {
		MotionJet:    RespBump,
		MotionAcross: RespBump,
		MotionShift:  RespCheck,
		MotionFly:    RespBuzzDown,
	},
	Cover3: {
		MotionJet:    RespBuzzDown,
		MotionAcross: RespBump,
		MotionShift:  RespCheck,
		MotionOrbit:  RespSpin,
	},
	Cover4: {
		MotionAcross: RespPatternAdjust,
		MotionReturn: RespPatternAdjust,
		MotionFly:    RespMegTrigger,
		MotionShift:  RespCheck,
	},
	Cover6: {
		MotionAcross: RespPatternAdjust,
		MotionShift:  RespCheck,
	},
	Tampa2: {
		MotionJet:   RespBump,
		MotionShift: RespCheck,
	},
}

// ResponseForMotion is the pure lookup: same pair in, same label out.
func ResponseForMotion(ct CoverageType, mt MotionType) MotionResponse {
	if byMotion, ok := motionResponses[ct]; ok {
		if r, ok := byMotion[mt]; ok {
			return r
		}
	}
	return RespMinimal
}

// HandleMotionAdjustments computes the defensive answer to a motion as a
// batch of position deltas the caller applies once the motion window closes.
// Positions and responsibilities are untouched; a check response re-runs
// alignment, which re-tags defender roles on the way.
func HandleMotionAdjustments(cov Coverage, motion Motion, defense, offense []*Player, los float64) []Adjustment {
	response := ResponseForMotion(cov.Type, motion.Type)
	switch response {
	case RespLock:
		return lockResponse(motion, defense)
	case RespTravel:
		return travelResponse(motion, defense)
	case RespBuzzDown:
		return buzzDownResponse(defense, los)
	case RespSpin:
		return spinResponse(motion, defense)
	case RespCheck:
		return checkResponse(cov, motion, defense, offense, los)
	case RespPatternAdjust, RespMegTrigger:
		return megResponse(motion, defense, response)
	case RespBump:
		return bumpResponse(motion, defense)
	default:
		return minimalResponse(motion, defense)
	}
}

// motionDirection is +1 when the motion travels toward the right sideline.
func motionDirection(m Motion) float64 {
	if m.End.X < m.Start.X {
		return -1
	}
	return 1
}

// motionDefender finds who travels with the motion man: the defender already
// assigned to him, else the nearest corner or nickel.
func motionDefender(m Motion, defense []*Player) *Player {
	for _, d := range defense {
		if d.Responsibility != nil && d.Responsibility.Kind == RespMan && d.Responsibility.TargetID == m.PlayerID {
			return d
		}
	}
	var best *Player
	bestDist := 0.0
	for _, d := range defense {
		if d.Type != CB && d.Type != NB {
			continue
		}
		dist := Dist(d.Pos, m.Start)
		if best == nil || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// lockResponse re-centers the assigned defender on the motion landing spot at
// his current depth.
func lockResponse(m Motion, defense []*Player) []Adjustment {
	d := motionDefender(m, defense)
	if d == nil {
		return nil
	}
	return []Adjustment{{
		DefenderID:  d.ID,
		NewPosition: Vec2{ClampX(m.End.X), d.Pos.Y},
		Technique:   "lock",
	}}
}

// travelResponse slides the entire defense two yards with the motion.
func travelResponse(m Motion, defense []*Player) []Adjustment {
	shift := 2.0 * motionDirection(m)
	out := make([]Adjustment, 0, len(defense))
	for _, d := range defense {
		out = append(out, Adjustment{
			DefenderID:  d.ID,
			NewPosition: Vec2{ClampX(d.Pos.X + shift), d.Pos.Y},
			Technique:   "travel",
		})
	}
	return out
}

// buzzDownResponse drops the strong safety to the 8-yard hook.
func buzzDownResponse(defense []*Player, los float64) []Adjustment {
	ss := defenderByRole(defense, RoleStrongSafety)
	if ss == nil {
		return nil
	}
	return []Adjustment{{
		DefenderID:  ss.ID,
		NewPosition: Vec2{ss.Pos.X, los + 8},
		Technique:   "buzz",
	}}
}

// spinResponse rotates both safeties five yards opposite the motion.
func spinResponse(m Motion, defense []*Player) []Adjustment {
	shift := -5.0 * motionDirection(m)
	var out []Adjustment
	for _, role := range []DefensiveRole{RoleFreeSafety, RoleStrongSafety} {
		if d := defenderByRole(defense, role); d != nil {
			out = append(out, Adjustment{
				DefenderID:  d.ID,
				NewPosition: Vec2{ClampX(d.Pos.X + shift), d.Pos.Y},
				Technique:   "spin",
			})
		}
	}
	return out
}

// checkResponse re-analyzes the formation with the motion man at his landing
// spot; if strength flipped, the whole alignment regenerates mirrored.
func checkResponse(cov Coverage, m Motion, defense, offense []*Player, los float64) []Adjustment {
	before := AnalyzeFormation(offense, los)

	moved := make([]*Player, len(offense))
	for i, p := range offense {
		if p.ID == m.PlayerID {
			cp := *p
			cp.Pos = m.End
			moved[i] = &cp
		} else {
			moved[i] = p
		}
	}
	after := AnalyzeFormation(moved, los)
	if after.Strength == before.Strength {
		return minimalResponse(m, defense)
	}

	am := GenerateAlignment(cov, moved, defense, los)
	out := make([]Adjustment, 0, len(am))
	for _, d := range defense {
		if pos, ok := am[d.ID]; ok {
			out = append(out, Adjustment{DefenderID: d.ID, NewPosition: pos, Technique: "check"})
		}
	}
	return out
}

// megResponse installs hard man ("Man Everywhere he Goes") on the motion
// man's defender. Pattern-adjust carries the same mechanics with a softer
// label: the match trigger resets and the defender re-centers.
func megResponse(m Motion, defense []*Player, r MotionResponse) []Adjustment {
	d := motionDefender(m, defense)
	if d == nil {
		return nil
	}
	resp := &Responsibility{Kind: RespMan, TargetID: m.PlayerID}
	return []Adjustment{{
		DefenderID:        d.ID,
		NewPosition:       Vec2{ClampX(m.End.X), d.Pos.Y},
		NewResponsibility: resp,
		Technique:         r.String(),
	}}
}

// bumpResponse shifts the backers toward the motion: the backer on the motion
// side gives ground wider (2.5yd), the backside backer follows shorter (1.5).
func bumpResponse(m Motion, defense []*Player) []Adjustment {
	dir := motionDirection(m)
	var out []Adjustment
	for _, role := range []DefensiveRole{RoleMike, RoleSam, RoleWill} {
		d := defenderByRole(defense, role)
		if d == nil {
			continue
		}
		shift := 1.5
		onMotionSide := (dir > 0 && d.Pos.X > FieldCenter) || (dir < 0 && d.Pos.X < FieldCenter)
		if onMotionSide {
			shift = 2.5
		}
		out = append(out, Adjustment{
			DefenderID:  d.ID,
			NewPosition: Vec2{ClampX(d.Pos.X + shift*dir), d.Pos.Y},
			Technique:   "bump",
		})
	}
	return out
}

// minimalResponse nudges at most one defender within 15 yards of the landing
// spot by up to a yard; everyone else holds.
func minimalResponse(m Motion, defense []*Player) []Adjustment {
	var best *Player
	bestDist := 15.0
	for _, d := range defense {
		if dist := Dist(d.Pos, m.End); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	if best == nil {
		return nil
	}
	nudge := math.Copysign(math.Min(1.0, math.Abs(m.End.X-best.Pos.X)), m.End.X-best.Pos.X)
	return []Adjustment{{
		DefenderID:  best.ID,
		NewPosition: Vec2{ClampX(best.Pos.X + nudge), best.Pos.Y},
		Technique:   "minimal",
	}}
}
