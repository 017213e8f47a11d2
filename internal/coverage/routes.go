package coverage

// RouteType names an entry in the route tree.
type RouteType int

const (
	RouteNone RouteType = iota
	RouteSlant
	RouteHitch
	RouteOut
	RouteIn // dig
	RouteComeback
	RouteCurl
	RouteCorner
	RoutePost
	RouteGo // fade/vertical
	RouteWheel
	RouteDrag // shallow crosser
	RouteMeshCross
	RouteFlat
	RouteChoice // option route, converted mid-play
)

func (r RouteType) String() string {
	switch r {
	case RouteSlant:
		return "slant"
	case RouteHitch:
		return "hitch"
	case RouteOut:
		return "out"
	case RouteIn:
		return "in"
	case RouteComeback:
		return "comeback"
	case RouteCurl:
		return "curl"
	case RouteCorner:
		return "corner"
	case RoutePost:
		return "post"
	case RouteGo:
		return "go"
	case RouteWheel:
		return "wheel"
	case RouteDrag:
		return "drag"
	case RouteMeshCross:
		return "mesh-cross"
	case RouteFlat:
		return "flat"
	case RouteChoice:
		return "choice"
	default:
		return "none"
	}
}

// IsQuick reports whether the route is a quick-game route whose timing is
// compressed when regenerated mid-play.
func (r RouteType) IsQuick() bool {
	switch r {
	case RouteSlant, RouteHitch, RouteFlat, RouteDrag:
		return true
	}
	return false
}

// Route is a receiver's assigned path: waypoints with a parallel timing array
// (seconds from snap, monotonically non-decreasing). Replaced wholesale when
// a concept or audible changes the assignment.
type Route struct {
	Type      RouteType
	Waypoints []Vec2
	Timing    []float64
	Depth     float64 // yards past the LOS at the deepest waypoint
}

// PositionAt returns the interpolated route position at time t. Before the
// first timing value it returns the first waypoint; at or beyond the last it
// returns the last waypoint. Calling it repeatedly with the same t is
// idempotent.
func (r *Route) PositionAt(t float64) Vec2 {
	if len(r.Waypoints) == 0 {
		return Vec2{}
	}
	if t <= r.Timing[0] {
		return r.Waypoints[0]
	}
	last := len(r.Timing) - 1
	if t >= r.Timing[last] {
		return r.Waypoints[last]
	}
	for i := 1; i <= last; i++ {
		if t <= r.Timing[i] {
			span := r.Timing[i] - r.Timing[i-1]
			if span <= 0 {
				return r.Waypoints[i]
			}
			frac := (t - r.Timing[i-1]) / span
			return Lerp(r.Waypoints[i-1], r.Waypoints[i], frac)
		}
	}
	return r.Waypoints[last]
}

// routeLeg is one template segment: an offset from the previous point
// (dx toward the far sideline for a right-side receiver, dy downfield) and
// the nominal seconds spent on the leg.
type routeLeg struct {
	dx, dy float64
	dur    float64
}

// routeTemplates defines the stem/break shape of each route for a receiver on
// the right side of the formation; left-side receivers mirror dx. Offsets are
// yards, durations seconds.
var routeTemplates = map[RouteType][]routeLeg{
	RouteSlant:     {{0, 3, 0.7}, {-6, 5, 1.1}},
	RouteHitch:     {{0, 6, 1.1}, {0.5, -1, 0.4}},
	RouteOut:       {{0, 8, 1.3}, {6, 0, 0.9}},
	RouteIn:        {{0, 10, 1.5}, {-8, 0, 1.1}},
	RouteComeback:  {{0, 14, 1.9}, {1.5, -3, 0.7}},
	RouteCurl:      {{0, 12, 1.7}, {-1, -2, 0.6}},
	RouteCorner:    {{0, 10, 1.5}, {5, 8, 1.2}},
	RoutePost:      {{0, 10, 1.5}, {-6, 10, 1.3}},
	RouteGo:        {{0, 6, 1.0}, {0.5, 14, 1.6}},
	RouteWheel:     {{5, 1, 0.9}, {1, 14, 1.9}},
	RouteDrag:      {{0, 2, 0.5}, {-14, 3, 2.0}},
	RouteMeshCross: {{0, 4, 0.8}, {-12, 2, 1.8}},
	RouteFlat:      {{4, 1, 0.6}, {3, 0.5, 0.5}},
}

// BuildRoute instantiates a route template from a receiver's current position.
// mirrored is true for receivers left of midfield, flipping lateral cuts so
// "inside" breaks go toward the middle. startTime offsets the timing array,
// used when a route is regenerated mid-play.
func BuildRoute(rt RouteType, from Vec2, los float64, mirrored bool, startTime float64) *Route {
	legs, ok := routeTemplates[rt]
	if !ok {
		legs = routeTemplates[RouteHitch]
	}
	wps := []Vec2{from}
	times := []float64{startTime}
	cur := from
	t := startTime
	for _, leg := range legs {
		dx := leg.dx
		if mirrored {
			dx = -dx
		}
		cur = Vec2{ClampX(cur.X + dx), cur.Y + leg.dy}
		t += leg.dur
		wps = append(wps, cur)
		times = append(times, t)
	}
	return &Route{
		Type:      rt,
		Waypoints: wps,
		Timing:    times,
		Depth:     routeDepth(wps, los),
	}
}

// routeDepth is the deepest waypoint's distance past the LOS, floored at 0.
func routeDepth(wps []Vec2, los float64) float64 {
	depth := 0.0
	for _, wp := range wps {
		if d := wp.Y - los; d > depth {
			depth = d
		}
	}
	return depth
}

// RescaleTiming stretches or compresses the remaining legs of a regenerated
// route: quick routes run at 0.8x of the nominal leg time, everything else at
// 1.2x. The first timing entry (the regeneration instant) is left untouched.
func RescaleTiming(r *Route) {
	factor := 1.2
	if r.Type.IsQuick() {
		factor = 0.8
	}
	base := r.Timing[0]
	for i := 1; i < len(r.Timing); i++ {
		r.Timing[i] = base + (r.Timing[i]-base)*factor
	}
}
