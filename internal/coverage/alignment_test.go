package coverage

import (
	"math"
	"testing"
)

func nickelDefense() []*Player {
	return []*Player{
		{ID: "CB1", Team: TeamDefense, Type: CB, Pos: Vec2{6, 37}, MaxSpeed: 8.2},
		{ID: "CB2", Team: TeamDefense, Type: CB, Pos: Vec2{47, 37}, MaxSpeed: 8.2},
		{ID: "NB1", Team: TeamDefense, Type: NB, Pos: Vec2{20, 35}, MaxSpeed: 8.1},
		{ID: "FS1", Team: TeamDefense, Type: S, Pos: Vec2{20, 44}, MaxSpeed: 8.0},
		{ID: "SS1", Team: TeamDefense, Type: S, Pos: Vec2{33, 42}, MaxSpeed: 8.0},
		{ID: "LB1", Team: TeamDefense, Type: LB, Pos: Vec2{24, 35}, MaxSpeed: 7.6},
		{ID: "LB2", Team: TeamDefense, Type: LB, Pos: Vec2{30, 35}, MaxSpeed: 7.6},
	}
}

func elevenOffense(los float64) []*Player {
	return []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 6, los-1),
		offPlayer("WR2", WR, 47, los-1),
		offPlayer("WR3", WR, 20, los-1),
		offPlayer("TE1", TE, 33, los-1),
		offPlayer("RB1", RB, FieldCenter-2, los-6),
	}
}

func dimeDefense() []*Player {
	return []*Player{
		{ID: "CB1", Team: TeamDefense, Type: CB, Pos: Vec2{5, 37}, MaxSpeed: 8.2},
		{ID: "CB2", Team: TeamDefense, Type: CB, Pos: Vec2{48, 37}, MaxSpeed: 8.2},
		{ID: "CB3", Team: TeamDefense, Type: CB, Pos: Vec2{15, 36}, MaxSpeed: 8.2},
		{ID: "NB1", Team: TeamDefense, Type: NB, Pos: Vec2{38, 35}, MaxSpeed: 8.1},
		{ID: "FS1", Team: TeamDefense, Type: S, Pos: Vec2{20, 44}, MaxSpeed: 8.0},
		{ID: "SS1", Team: TeamDefense, Type: S, Pos: Vec2{33, 44}, MaxSpeed: 8.0},
		{ID: "LB1", Team: TeamDefense, Type: LB, Pos: Vec2{FieldCenter, 35}, MaxSpeed: 7.6},
	}
}

func baseDefense() []*Player {
	return []*Player{
		{ID: "CB1", Team: TeamDefense, Type: CB, Pos: Vec2{8, 37}, MaxSpeed: 8.2},
		{ID: "CB2", Team: TeamDefense, Type: CB, Pos: Vec2{45, 37}, MaxSpeed: 8.2},
		{ID: "FS1", Team: TeamDefense, Type: S, Pos: Vec2{20, 44}, MaxSpeed: 8.0},
		{ID: "SS1", Team: TeamDefense, Type: S, Pos: Vec2{33, 42}, MaxSpeed: 8.0},
		{ID: "LB1", Team: TeamDefense, Type: LB, Pos: Vec2{22, 35}, MaxSpeed: 7.6},
		{ID: "LB2", Team: TeamDefense, Type: LB, Pos: Vec2{27, 35}, MaxSpeed: 7.6},
		{ID: "LB3", Team: TeamDefense, Type: LB, Pos: Vec2{32, 35}, MaxSpeed: 7.6},
	}
}

// spreadOffense is 10 personnel: four wide, the back deep in the backfield.
func spreadOffense(los float64) []*Player {
	return []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 5, los-1),
		offPlayer("WR2", WR, 48, los-1),
		offPlayer("WR3", WR, 15, los-1),
		offPlayer("WR4", WR, 38, los-1),
		offPlayer("RB1", RB, FieldCenter, los-6),
	}
}

// heavyOffense is 21 personnel: two wide, a TE and two backs.
func heavyOffense(los float64) []*Player {
	return []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 6, los-1),
		offPlayer("WR2", WR, 47, los-1),
		offPlayer("TE1", TE, 33, los-1),
		offPlayer("RB1", RB, FieldCenter-1, los-6),
		offPlayer("FB1", FB, FieldCenter+1, los-4.5),
	}
}

func TestGenerateAlignment_AllCoveragesPlaceSevenDefenders(t *testing.T) {
	const los = 30.0
	packages := []struct {
		name    string
		offense func(float64) []*Player
		defense func() []*Player
	}{
		{"nickel", elevenOffense, nickelDefense},
		{"dime", spreadOffense, dimeDefense},
		{"base", heavyOffense, baseDefense},
	}
	for _, pkg := range packages {
		t.Run(pkg.name, func(t *testing.T) {
			for _, ct := range []CoverageType{Cover0, Cover1, Cover2, Cover3, Cover4, Cover6, Tampa2} {
				am := GenerateAlignment(NewCoverage(ct), pkg.offense(los), pkg.defense(), los)
				if len(am) != 7 {
					t.Errorf("%s: expected all 7 defenders placed, got %d", ct, len(am))
				}
				for id, pos := range am {
					if pos.X < 0 || pos.X > FieldWidth {
						t.Errorf("%s: defender %s placed off the field at x=%.2f", ct, id, pos.X)
					}
				}
			}
		})
	}
}

func TestCover2Alignment_SafetiesSplitDeepHalves(t *testing.T) {
	const los = 30.0
	am := GenerateAlignment(NewCoverage(Cover2), elevenOffense(los), nickelDefense(), los)

	fsPos, ssPos := am["FS1"], am["SS1"]
	for id, pos := range map[string]Vec2{"FS1": fsPos, "SS1": ssPos} {
		depth := pos.Y - los
		if depth < 15 || depth > 18 {
			t.Errorf("%s depth %.1f outside [15,18]", id, depth)
		}
	}
	if fsPos.X >= FieldCenter {
		t.Errorf("free safety should hold the left half, x=%.2f", fsPos.X)
	}
	if ssPos.X <= FieldCenter {
		t.Errorf("strong safety should hold the right half, x=%.2f", ssPos.X)
	}
}

func TestCover3Alignment_TripsShadesFreeSafety(t *testing.T) {
	const los = 30.0
	balanced := GenerateAlignment(NewCoverage(Cover3), elevenOffense(los), nickelDefense(), los)

	tripsLeft := []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 5, los-1),
		offPlayer("WR2", WR, 11, los-1),
		offPlayer("WR3", WR, 16, los-1),
		offPlayer("TE1", TE, 33, los-1),
		offPlayer("RB1", RB, FieldCenter-2, los-6),
	}
	shaded := GenerateAlignment(NewCoverage(Cover3), tripsLeft, nickelDefense(), los)

	want := DefaultCover3Config().TripsShade
	gotShift := balanced["FS1"].X - shaded["FS1"].X
	if math.Abs(gotShift-want) > 1e-9 {
		t.Fatalf("trips left should shift the FS %.1f yards left, shifted %.3f", want, gotShift)
	}
}

func TestCover1Alignment_RobberFallbackWithoutSecondReceiver(t *testing.T) {
	const los = 30.0
	// Single receiver per side: nothing left for the SS to cover.
	offense := []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 6, los-1),
		offPlayer("WR2", WR, 47, los-1),
	}
	am := GenerateAlignment(NewCoverage(Cover1), offense, nickelDefense(), los)
	ssPos, ok := am["SS1"]
	if !ok {
		t.Fatal("strong safety unmapped")
	}
	cfg := DefaultCover1Config()
	if ssPos.X != FieldCenter || ssPos.Y != los+cfg.RobberDepth {
		t.Fatalf("expected robber hole (%.2f,%.1f), got (%.2f,%.2f)",
			FieldCenter, los+cfg.RobberDepth, ssPos.X, ssPos.Y)
	}
}

func TestTampa2Alignment_MikeStartsShallow(t *testing.T) {
	const los = 30.0
	offense := elevenOffense(los)
	defense := nickelDefense()
	am := GenerateAlignment(NewCoverage(Tampa2), offense, defense, los)

	mike := defenderByRole(defense, RoleMike)
	if mike == nil {
		t.Fatal("no Mike assigned")
	}
	cfg := DefaultCover2Config()
	if got := am[mike.ID].Y - los; got != cfg.MikeStartDepth {
		t.Fatalf("tampa-2 Mike pre-snap depth %.1f, want %.1f", got, cfg.MikeStartDepth)
	}
}

func TestCover4Alignment_SafetiesOnQuarterLandmarks(t *testing.T) {
	const los = 30.0
	am := GenerateAlignment(NewCoverage(Cover4), elevenOffense(los), nickelDefense(), los)
	q := DefaultCover4Config().QuarterWidth
	if got := am["FS1"].X; math.Abs(got-(q+q/2)) > 1e-9 {
		t.Fatalf("FS quarter landmark %.3f, want %.3f", got, q+q/2)
	}
}

func TestApplyCoverageAdjustments_ManLeverageReported(t *testing.T) {
	const los = 30.0
	adjs := ApplyCoverageAdjustments(NewCoverage(Cover1), nickelDefense(), elevenOffense(los), los)
	found := false
	for _, a := range adjs {
		if a.NewResponsibility != nil && a.NewResponsibility.Kind == RespMan {
			found = true
			if a.Leverage == LeverageNone {
				t.Errorf("man adjustment for %s carries no leverage", a.DefenderID)
			}
		}
	}
	if !found {
		t.Fatal("cover-1 produced no man responsibilities")
	}
}

func TestApplyCoverageAdjustments_WritesOnlyRoles(t *testing.T) {
	const los = 30.0
	defense := nickelDefense()
	before := make([]Player, len(defense))
	for i, d := range defense {
		before[i] = *d
	}

	ApplyCoverageAdjustments(NewCoverage(Cover1), defense, elevenOffense(los), los)

	for i, d := range defense {
		if d.Pos != before[i].Pos {
			t.Errorf("%s position written in place: %v -> %v", d.ID, before[i].Pos, d.Pos)
		}
		if d.Responsibility != before[i].Responsibility {
			t.Errorf("%s responsibility written in place", d.ID)
		}
	}
}

func TestBunchBox_CollapsesNearestDefenders(t *testing.T) {
	const los = 30.0
	offense := []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 12, los-1),
		offPlayer("WR2", WR, 14, los-2),
		offPlayer("WR3", WR, 13, los-3),
		offPlayer("WR4", WR, 47, los-1),
	}
	am := GenerateAlignment(NewCoverage(Cover3), offense, nickelDefense(), los)

	near := 0
	for _, pos := range am {
		if math.Abs(pos.X-13) < 4 && pos.Y-los < 6 {
			near++
		}
	}
	if near < 2 {
		t.Fatalf("bunch box should pull 2 defenders onto the bunch, found %d", near)
	}
}
