package coverage

// Team distinguishes the two sides of the ball.
type Team int

const (
	TeamOffense Team = iota
	TeamDefense
)

func (t Team) String() string {
	if t == TeamOffense {
		return "offense"
	}
	return "defense"
}

// PlayerType is a positional archetype.
type PlayerType int

const (
	QB PlayerType = iota
	RB
	WR
	TE
	FB
	CB
	S
	LB
	NB // nickel back
)

func (p PlayerType) String() string {
	switch p {
	case QB:
		return "QB"
	case RB:
		return "RB"
	case WR:
		return "WR"
	case TE:
		return "TE"
	case FB:
		return "FB"
	case CB:
		return "CB"
	case S:
		return "S"
	case LB:
		return "LB"
	case NB:
		return "NB"
	default:
		return "??"
	}
}

// DefensiveRole is the slot a defender plays within the called coverage.
// Roles are assigned once per personnel grouping and coverage alignment
// dispatches on this tag rather than on player id strings.
type DefensiveRole int

const (
	RoleNone DefensiveRole = iota
	RoleCBLeft
	RoleCBRight
	RoleCBExtra // third corner in dime looks
	RoleNickel
	RoleFreeSafety
	RoleStrongSafety
	RoleMike // middle linebacker
	RoleSam  // strong-side linebacker
	RoleWill // weak-side linebacker
)

func (r DefensiveRole) String() string {
	switch r {
	case RoleCBLeft:
		return "cb-left"
	case RoleCBRight:
		return "cb-right"
	case RoleCBExtra:
		return "cb-extra"
	case RoleNickel:
		return "nickel"
	case RoleFreeSafety:
		return "free-safety"
	case RoleStrongSafety:
		return "strong-safety"
	case RoleMike:
		return "mike"
	case RoleSam:
		return "sam"
	case RoleWill:
		return "will"
	default:
		return "none"
	}
}

// ResponsibilityKind classifies what a defender is accountable for.
type ResponsibilityKind int

const (
	RespMan ResponsibilityKind = iota
	RespZone
	RespSpy
	RespBlitz
)

func (k ResponsibilityKind) String() string {
	switch k {
	case RespMan:
		return "man"
	case RespZone:
		return "zone"
	case RespSpy:
		return "spy"
	case RespBlitz:
		return "blitz"
	default:
		return "unknown"
	}
}

// Zone is a named area of the field a defender is responsible for.
// Width, height and depth are all positive when the zone is defined.
type Zone struct {
	Name   string
	Center Vec2
	Width  float64
	Height float64
	Depth  float64 // yards off the LOS to the zone's landmark
}

// Responsibility is a defender's single coverage assignment. Exactly one of
// TargetID (man) or Zone (zone) is meaningful; spy and blitz carry neither.
type Responsibility struct {
	Kind     ResponsibilityKind
	TargetID string // man target, offensive player id
	Zone     *Zone
}

// Player is one participant snapshot. The consuming engine owns the player
// list; this core reads snapshots and returns position/assignment deltas.
type Player struct {
	ID       string
	Team     Team
	Type     PlayerType
	Pos      Vec2
	Eligible bool
	MaxSpeed float64 // yards per second

	Route          *Route
	Responsibility *Responsibility
	Role           DefensiveRole

	Blocking bool
}

// Adjustment is one proposed change to a defender, returned by alignment,
// motion and pattern-match passes. The caller applies the whole batch
// atomically; role tagging in AssignRoles is the one direct write this core
// makes to a Player it was handed.
type Adjustment struct {
	DefenderID        string
	NewPosition       Vec2
	NewResponsibility *Responsibility // nil = unchanged
	Leverage          Leverage
	Technique         string // free-form technique label ("press", "bail", "box", ...)
}

// Leverage is a defender's lateral relationship to a receiver.
type Leverage int

const (
	LeverageNone Leverage = iota
	LeverageInside
	LeverageOutside
	LeverageHeadUp
)

func (l Leverage) String() string {
	switch l {
	case LeverageInside:
		return "inside"
	case LeverageOutside:
		return "outside"
	case LeverageHeadUp:
		return "head-up"
	default:
		return "none"
	}
}

// LeverageOf classifies where a defender sits relative to a receiver.
// "Inside" means between the receiver and the middle of the field.
func LeverageOf(defender, receiver Vec2) Leverage {
	const headUpBand = 0.5
	dx := defender.X - receiver.X
	if dx > -headUpBand && dx < headUpBand {
		return LeverageHeadUp
	}
	recInside := receiver.X < FieldCenter
	if recInside {
		if defender.X > receiver.X {
			return LeverageInside
		}
		return LeverageOutside
	}
	if defender.X < receiver.X {
		return LeverageInside
	}
	return LeverageOutside
}

// NearestDefender returns the closest defender to pos, or nil when the slice
// is empty.
func NearestDefender(defense []*Player, pos Vec2) *Player {
	var best *Player
	bestDist := 0.0
	for _, d := range defense {
		dist := Dist(d.Pos, pos)
		if best == nil || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
