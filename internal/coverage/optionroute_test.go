package coverage

import "testing"

func TestEvaluateOptionRoute_OutsideWindowNoDecision(t *testing.T) {
	cov := NewCoverage(Cover3) // trigger 1.9
	rec := offPlayer("WR1", WR, 47, 33)
	def := &Player{ID: "CB2", Team: TeamDefense, Type: CB, Pos: Vec2{45, 36},
		Responsibility: &Responsibility{Kind: RespMan, TargetID: "WR1"}}

	for _, tt := range []float64{0, 1.0, 1.89, 2.11, 5.0} {
		if rt, ok := EvaluateOptionRoute(rec, def, cov, tt); ok || rt != RouteNone {
			t.Fatalf("t=%.2f is outside [1.90,2.10], got (%s,%v)", tt, rt, ok)
		}
	}
	if _, ok := EvaluateOptionRoute(rec, def, cov, 1.95); !ok {
		t.Fatal("t=1.95 is inside the window, expected a decision")
	}
}

func TestEvaluateOptionRoute_ManLeverageTable(t *testing.T) {
	cov := NewCoverage(Cover1) // trigger 1.6
	const at = 1.65

	// Outside receiver, defender inside: comeback.
	out := offPlayer("WR2", WR, 47, 33)
	inside := &Player{ID: "CB2", Type: CB, Pos: Vec2{45, 36},
		Responsibility: &Responsibility{Kind: RespMan, TargetID: "WR2"}}
	if rt, ok := EvaluateOptionRoute(out, inside, cov, at); !ok || rt != RouteComeback {
		t.Fatalf("outside vs inside leverage: want comeback, got %s", rt)
	}

	// Outside receiver, defender outside: slant.
	outside := &Player{ID: "CB2", Type: CB, Pos: Vec2{49, 36},
		Responsibility: &Responsibility{Kind: RespMan, TargetID: "WR2"}}
	if rt, ok := EvaluateOptionRoute(out, outside, cov, at); !ok || rt != RouteSlant {
		t.Fatalf("outside vs outside leverage: want slant, got %s", rt)
	}

	// Slot receiver, defender inside: out.
	slot := offPlayer("WR3", WR, 21, 33)
	slotIn := &Player{ID: "NB1", Type: NB, Pos: Vec2{23, 36},
		Responsibility: &Responsibility{Kind: RespMan, TargetID: "WR3"}}
	if rt, ok := EvaluateOptionRoute(slot, slotIn, cov, at); !ok || rt != RouteOut {
		t.Fatalf("slot vs inside leverage: want out, got %s", rt)
	}

	// Slot receiver, defender outside: in.
	slotOut := &Player{ID: "NB1", Type: NB, Pos: Vec2{18, 36},
		Responsibility: &Responsibility{Kind: RespMan, TargetID: "WR3"}}
	if rt, ok := EvaluateOptionRoute(slot, slotOut, cov, at); !ok || rt != RouteIn {
		t.Fatalf("slot vs outside leverage: want in, got %s", rt)
	}
}

func TestEvaluateOptionRoute_ZoneReads(t *testing.T) {
	cov := NewCoverage(Cover3)
	const at = 1.95

	// Open grass: nearest zone defender more than 6 yards off.
	rec := offPlayer("WR2", WR, 47, 33)
	far := zoneDefender("CB2", 47, 41, Zone{Name: "deep-third-right", Center: Vec2{44, 42}, Width: 17, Height: 25, Depth: 12})
	if rt, ok := EvaluateOptionRoute(rec, far, cov, at); !ok || rt != RouteCurl {
		t.Fatalf("outside receiver with grass: want curl, got %s", rt)
	}

	slot := offPlayer("WR3", WR, 21, 33)
	farFromSlot := zoneDefender("FS1", 26, 42, Zone{Name: "deep-third-middle", Center: Vec2{26.665, 44}, Width: 17, Height: 25, Depth: 14})
	if rt, ok := EvaluateOptionRoute(slot, farFromSlot, cov, at); !ok || rt != RouteIn {
		t.Fatalf("slot with grass: want in-break to space, got %s", rt)
	}

	// Squatting defender: sit down with a hitch.
	near := zoneDefender("LB1", 22, 35, Zone{Name: "hook", Center: Vec2{22, 38}, Width: 10, Height: 8, Depth: 8})
	if rt, ok := EvaluateOptionRoute(slot, near, cov, at); !ok || rt != RouteHitch {
		t.Fatalf("squatting defender: want hitch, got %s", rt)
	}
}

func TestConvertOptionRoute_RegeneratesFromCurrentPosition(t *testing.T) {
	const los = 30.0
	rec := offPlayer("WR3", WR, 21, los+4)
	r := ConvertOptionRoute(rec, RouteOut, los, 1.7)

	if r.Waypoints[0] != rec.Pos {
		t.Fatalf("regenerated route must start at the receiver, got %+v", r.Waypoints[0])
	}
	if r.Timing[0] != 1.7 {
		t.Fatalf("timing must restart at the decision instant, got %.2f", r.Timing[0])
	}
	for i := 1; i < len(r.Timing); i++ {
		if r.Timing[i] < r.Timing[i-1] {
			t.Fatalf("timing must be non-decreasing: %v", r.Timing)
		}
	}
	if r.Depth <= 0 {
		t.Fatalf("depth must be recomputed from the new waypoints, got %.2f", r.Depth)
	}
}

func TestRescaleTiming_QuickCompressesOthersStretch(t *testing.T) {
	quick := BuildRoute(RouteSlant, Vec2{47, 29}, 30, false, 1.0)
	slow := BuildRoute(RouteComeback, Vec2{47, 29}, 30, false, 1.0)
	qSpan := quick.Timing[len(quick.Timing)-1] - quick.Timing[0]
	sSpan := slow.Timing[len(slow.Timing)-1] - slow.Timing[0]

	RescaleTiming(quick)
	RescaleTiming(slow)

	gotQ := quick.Timing[len(quick.Timing)-1] - quick.Timing[0]
	gotS := slow.Timing[len(slow.Timing)-1] - slow.Timing[0]
	if gotQ >= qSpan {
		t.Fatalf("quick route should compress: %.2f → %.2f", qSpan, gotQ)
	}
	if gotS <= sSpan {
		t.Fatalf("slow route should stretch: %.2f → %.2f", sSpan, gotS)
	}
}
