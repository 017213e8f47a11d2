package coverage

// Scenario presets: canned personnel/alignment bundles shared by tests and
// the batch report runner. Each returns player options only; callers add
// LOS/coverage/seed on top. All offenses snap from 5 yards behind LOS at the
// listed splits; the defensive seven matches the personnel the offense shows.

// ScenarioBalanced is 11 personnel, 2x2: two wide, slot and TE, one back.
func ScenarioBalanced() []SimOption {
	return []SimOption{
		WithQB("QB1", FieldCenter, 5),
		WithReceiver("WR1", WR, 6, 1, RouteGo),
		WithReceiver("WR2", WR, 47, 1, RouteComeback),
		WithReceiver("WR3", WR, 20, 1, RouteSlant),
		WithReceiver("TE1", TE, 33, 1, RouteFlat),
		WithReceiver("RB1", RB, FieldCenter-2, 6, RouteWheel),

		WithDefender("CB1", CB, 6, 7),
		WithDefender("CB2", CB, 47, 7),
		WithDefender("NB1", NB, 20, 5),
		WithDefender("FS1", S, 20, 14),
		WithDefender("SS1", S, 33, 12),
		WithDefender("LB1", LB, 24, 5),
		WithDefender("LB2", LB, 30, 5),
	}
}

// ScenarioTripsRight is 11 personnel with three receivers to the right.
func ScenarioTripsRight() []SimOption {
	return []SimOption{
		WithQB("QB1", FieldCenter, 5),
		WithReceiver("WR1", WR, 6, 1, RouteDrag),
		WithReceiver("WR2", WR, 48, 1, RouteGo),
		WithReceiver("WR3", WR, 42, 1, RouteCorner),
		WithReceiver("TE1", TE, 36, 1, RouteIn),
		WithReceiver("RB1", RB, FieldCenter-2, 6, RouteFlat),

		WithDefender("CB1", CB, 6, 7),
		WithDefender("CB2", CB, 48, 7),
		WithDefender("NB1", NB, 42, 5),
		WithDefender("FS1", S, 26, 14),
		WithDefender("SS1", S, 36, 10),
		WithDefender("LB1", LB, 24, 5),
		WithDefender("LB2", LB, 30, 5),
	}
}

// ScenarioBunchLeft compresses three receivers into a bunch left of the
// formation, a natural pick look.
func ScenarioBunchLeft() []SimOption {
	return []SimOption{
		WithQB("QB1", FieldCenter, 5),
		WithReceiver("WR1", WR, 12, 1, RouteFlat),
		WithReceiver("WR2", WR, 14, 2, RouteCorner),
		WithReceiver("WR3", WR, 13.5, 3.5, RouteDrag),
		WithReceiver("TE1", TE, 33, 1, RouteHitch),
		WithReceiver("RB1", RB, FieldCenter+2, 6, RouteNone),

		WithDefender("CB1", CB, 10, 7),
		WithDefender("CB2", CB, 40, 7),
		WithDefender("NB1", NB, 16, 5),
		WithDefender("FS1", S, 24, 14),
		WithDefender("SS1", S, 31, 10),
		WithDefender("LB1", LB, 24, 5),
		WithDefender("LB2", LB, 30, 5),
	}
}

// ScenarioEmpty is 10 personnel with five receivers spread sideline to
// sideline, nobody in the backfield.
func ScenarioEmpty() []SimOption {
	return []SimOption{
		WithQB("QB1", FieldCenter, 5),
		WithReceiver("WR1", WR, 5, 1, RouteGo),
		WithReceiver("WR2", WR, 48, 1, RouteGo),
		WithReceiver("WR3", WR, 15, 1, RouteIn),
		WithReceiver("WR4", WR, 38, 1, RouteOut),
		WithReceiver("RB1", RB, 26, 1, RouteChoice),

		WithDefender("CB1", CB, 5, 7),
		WithDefender("CB2", CB, 48, 7),
		WithDefender("CB3", CB, 15, 6),
		WithDefender("NB1", NB, 38, 5),
		WithDefender("FS1", S, 20, 14),
		WithDefender("SS1", S, 33, 14),
		WithDefender("LB1", LB, FieldCenter, 5),
	}
}

// Scenarios maps preset names to their builders, for the report runner's
// -scenario flag.
var Scenarios = map[string]func() []SimOption{
	"balanced":    ScenarioBalanced,
	"trips-right": ScenarioTripsRight,
	"bunch-left":  ScenarioBunchLeft,
	"empty":       ScenarioEmpty,
}
