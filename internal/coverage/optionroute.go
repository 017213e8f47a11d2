package coverage

// Option-route decision window: the read fires only inside
// [trigger, trigger+optionWindow] seconds after the snap. The trigger varies
// with how fast each coverage declares itself.
const optionWindow = 0.2

var optionTriggers = map[CoverageType]float64{
	Cover0: 1.5,
	Cover1: 1.6,
	Cover2: 1.8,
	Cover3: 1.9,
	Cover4: 2.0,
	Cover6: 2.1,
	Tampa2: 2.2,
}

// openAreaDist is how far the nearest defender must be for a zone read to be
// "open grass" rather than "sit in the hole".
const openAreaDist = 6.0

// optionConversions keys the man-coverage conversion on slot/outside
// alignment and the defender's leverage. Inside leverage gives up the
// out-breaking route; outside leverage gives up the in-break.
var optionConversions = map[bool]map[Leverage]RouteType{
	true: { // slot
		LeverageInside:  RouteOut,
		LeverageOutside: RouteIn,
		LeverageHeadUp:  RouteOut,
	},
	false: { // outside
		LeverageInside:  RouteComeback,
		LeverageOutside: RouteSlant,
		LeverageHeadUp:  RouteComeback,
	},
}

// EvaluateOptionRoute resolves a choice route into a concrete route type.
// Outside the coverage's decision window it returns (RouteNone, false): no
// decision yet. The second return is true only when a conversion was decided.
func EvaluateOptionRoute(receiver, nearestDefender *Player, cov Coverage, timeElapsed float64) (RouteType, bool) {
	trigger, ok := optionTriggers[cov.Type]
	if !ok {
		trigger = 1.8
	}
	if timeElapsed < trigger || timeElapsed > trigger+optionWindow {
		return RouteNone, false
	}
	if receiver == nil || nearestDefender == nil {
		return RouteNone, false
	}

	slot := IsSlot(receiver)

	manRead := nearestDefender.Responsibility != nil && nearestDefender.Responsibility.Kind == RespMan
	if manRead {
		lev := LeverageOf(nearestDefender.Pos, receiver.Pos)
		return optionConversions[slot][lev], true
	}

	// Zone read: break to open grass, or sit down in front of a squatting
	// defender.
	if Dist(nearestDefender.Pos, receiver.Pos) > openAreaDist {
		if slot {
			return RouteIn, true
		}
		return RouteCurl, true
	}
	return RouteHitch, true
}

// ConvertOptionRoute rebuilds the receiver's route in place from its current
// position per the decided type, rescaling the remaining timing (quick routes
// compress, everything else stretches) and recomputing depth.
func ConvertOptionRoute(receiver *Player, decided RouteType, los, timeElapsed float64) *Route {
	mirrored := receiver.Pos.X < FieldCenter
	r := BuildRoute(decided, receiver.Pos, los, mirrored, timeElapsed)
	RescaleTiming(r)
	r.Depth = routeDepth(r.Waypoints, los)
	return r
}
