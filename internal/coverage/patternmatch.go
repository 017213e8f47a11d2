package coverage

import "math"

// RouteClass is the defense's live read of a receiver's route shape.
type RouteClass int

const (
	RouteClassNone RouteClass = iota
	RouteClassVertical
	RouteClassHorizontal
	RouteClassBreaking
	RouteClassCrossing
)

func (rc RouteClass) String() string {
	switch rc {
	case RouteClassVertical:
		return "vertical"
	case RouteClassHorizontal:
		return "horizontal"
	case RouteClassBreaking:
		return "breaking"
	case RouteClassCrossing:
		return "crossing"
	}
	return "none"
}

// Route-classification depth thresholds in yards past the LOS.
const (
	verticalDepth   = 12.0
	horizontalDepth = 8.0
	crossingLateral = 6.0 // lateral displacement that reads as a crosser
)

// ClassifyRoute reads a receiver's route from its current depth and lateral
// displacement off the stem. A receiver with no route reads as none.
func ClassifyRoute(rec *Player, los float64) RouteClass {
	if rec.Route == nil || len(rec.Route.Waypoints) == 0 {
		return RouteClassNone
	}
	depth := rec.Pos.Y - los
	lateral := math.Abs(rec.Pos.X - rec.Route.Waypoints[0].X)

	switch {
	case lateral >= crossingLateral && depth < verticalDepth:
		return RouteClassCrossing
	case depth >= verticalDepth:
		return RouteClassVertical
	case depth <= horizontalDepth:
		return RouteClassHorizontal
	default:
		return RouteClassBreaking
	}
}

// MatchState is a zone defender's pattern-match state during the play.
type MatchState int

const (
	MatchZone      MatchState = iota // default zone drop
	MatchMan                         // converted to man on a qualifying receiver
	MatchCollision                   // physical reroute on a crosser
)

func (m MatchState) String() string {
	switch m {
	case MatchMan:
		return "man-match"
	case MatchCollision:
		return "collision"
	}
	return "zone"
}

// matchSpacing is the horizontal and vertical cushion a man-matched defender
// keeps on the receiver it carried.
const matchSpacing = 2.5

// PatternMatcher tracks every zone defender's match state for one play.
// MatchMan is terminal: once a defender converts he carries the receiver for
// the rest of the play; only Reset (new play) returns him to zone.
type PatternMatcher struct {
	states  map[string]MatchState
	targets map[string]string // defender id -> matched receiver id
}

// NewPatternMatcher returns a matcher with every defender in zone.
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{
		states:  make(map[string]MatchState),
		targets: make(map[string]string),
	}
}

// Reset discards all match state (play over / coverage change).
func (pm *PatternMatcher) Reset() {
	pm.states = make(map[string]MatchState)
	pm.targets = make(map[string]string)
}

// State returns the defender's current match state.
func (pm *PatternMatcher) State(defenderID string) MatchState {
	return pm.states[defenderID]
}

// MatchedTarget returns the receiver a man-matched defender is carrying.
func (pm *PatternMatcher) MatchedTarget(defenderID string) (string, bool) {
	id, ok := pm.targets[defenderID]
	return id, ok
}

// Evaluate advances the state machine one tick and returns the position
// adjustments it wants applied. Deep zone defenders convert to man on the
// first vertical receiver threatening their zone; underneath defenders
// collision crossers passing through theirs and otherwise sit.
func (pm *PatternMatcher) Evaluate(defense, offense []*Player, los float64) []Adjustment {
	var out []Adjustment
	for _, d := range defense {
		r := d.Responsibility
		if r == nil || r.Kind != RespZone || r.Zone == nil {
			continue
		}

		switch pm.states[d.ID] {
		case MatchMan:
			// Carry the matched receiver with the fixed spacing offset.
			if rec := findPlayer(offense, pm.targets[d.ID]); rec != nil {
				out = append(out, Adjustment{
					DefenderID:  d.ID,
					NewPosition: carryPosition(d, rec),
					Technique:   "man-match",
				})
			}
			continue
		case MatchCollision:
			continue // reroute already delivered; play the zone after contact
		}

		deep := r.Zone.Depth >= verticalDepth-2
		for _, rec := range offense {
			if !rec.Eligible || rec.Type == QB || rec.Route == nil {
				continue
			}
			if !zoneThreatened(r.Zone, rec) {
				continue
			}
			class := ClassifyRoute(rec, los)
			if deep && class == RouteClassVertical {
				pm.states[d.ID] = MatchMan
				pm.targets[d.ID] = rec.ID
				out = append(out, Adjustment{
					DefenderID:  d.ID,
					NewPosition: carryPosition(d, rec),
					Technique:   "man-match",
				})
				break
			}
			if !deep && class == RouteClassCrossing {
				pm.states[d.ID] = MatchCollision
				out = append(out, Adjustment{
					DefenderID:  d.ID,
					NewPosition: Vec2{ClampX(rec.Pos.X), rec.Pos.Y},
					Technique:   "collision",
				})
				break
			}
		}
	}
	return out
}

// carryPosition keeps the match cushion: stacked on top of the receiver,
// shaded toward the middle of the field.
func carryPosition(d *Player, rec *Player) Vec2 {
	dx := matchSpacing
	if rec.Pos.X > FieldCenter {
		dx = -matchSpacing
	}
	return Vec2{ClampX(rec.Pos.X + dx), rec.Pos.Y + matchSpacing}
}

// zoneThreatened reports whether a receiver is inside (or on track into) the
// zone's footprint.
func zoneThreatened(z *Zone, rec *Player) bool {
	halfW := z.Width/2 + 1
	halfH := z.Height/2 + 2
	return math.Abs(rec.Pos.X-z.Center.X) <= halfW && math.Abs(rec.Pos.Y-z.Center.Y) <= halfH
}
