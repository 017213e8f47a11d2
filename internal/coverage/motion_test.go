package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseForMotion_Table(t *testing.T) {
	tests := []struct {
		cov  CoverageType
		mt   MotionType
		want MotionResponse
	}{
		{Cover0, MotionFly, RespLock},
		{Cover1, MotionJet, RespTravel},
		{Cover1, MotionOrbit, RespSpin},
		{Cover1, MotionReturn, RespMegTrigger},
		{Cover2, MotionJet, RespBump},
		{Cover3, MotionJet, RespBuzzDown},
		{Cover3, MotionShift, RespCheck},
		{Cover4, MotionAcross, RespPatternAdjust},
		{Cover4, MotionFly, RespMegTrigger},
		{Tampa2, MotionOrbit, RespMinimal}, // unmapped pair falls through
		{Cover6, MotionGlide, RespMinimal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResponseForMotion(tt.cov, tt.mt),
			"%s × %s", tt.cov, tt.mt)
	}
}

func TestResponseForMotion_Deterministic(t *testing.T) {
	// Same pair in, same label out, every time.
	for ct := Cover0; ct <= Tampa2; ct++ {
		for mt := MotionFly; mt <= MotionGlide; mt++ {
			first := ResponseForMotion(ct, mt)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, ResponseForMotion(ct, mt))
			}
		}
	}
}

func TestTravelResponse_ShiftsWholeDefenseTwoYards(t *testing.T) {
	defense := nickelDefense()
	m := Motion{PlayerID: "WR1", Type: MotionJet, Start: Vec2{10, 29}, End: Vec2{40, 29}}

	adjs := travelResponse(m, defense)
	assert.Len(t, adjs, len(defense))
	for i, adj := range adjs {
		assert.InDelta(t, defense[i].Pos.X+2, adj.NewPosition.X, 1e-9)
		assert.Equal(t, defense[i].Pos.Y, adj.NewPosition.Y)
	}
}

func TestBuzzDownResponse_StrongSafetyToHook(t *testing.T) {
	const los = 30.0
	defense := nickelDefense()
	AssignRoles(defense, DefensivePersonnel{CB: 2, S: 2, LB: 2, NB: 1}, StrengthRight)

	adjs := buzzDownResponse(defense, los)
	if assert.Len(t, adjs, 1) {
		assert.Equal(t, "SS1", adjs[0].DefenderID)
		assert.Equal(t, los+8, adjs[0].NewPosition.Y)
	}
}

func TestSpinResponse_SafetiesRotateOppositeMotion(t *testing.T) {
	defense := nickelDefense()
	AssignRoles(defense, DefensivePersonnel{CB: 2, S: 2, LB: 2, NB: 1}, StrengthRight)
	m := Motion{PlayerID: "WR1", Type: MotionOrbit, Start: Vec2{10, 29}, End: Vec2{40, 29}}

	adjs := spinResponse(m, defense)
	assert.Len(t, adjs, 2)
	for _, adj := range adjs {
		orig := findPlayer(defense, adj.DefenderID)
		assert.InDelta(t, orig.Pos.X-5, adj.NewPosition.X, 1e-9,
			"motion right, safeties spin left")
	}
}

func TestMegResponse_InstallsHardMan(t *testing.T) {
	defense := nickelDefense()
	m := Motion{PlayerID: "WR3", Type: MotionReturn, Start: Vec2{20, 29}, End: Vec2{14, 29}}

	adjs := megResponse(m, defense, RespMegTrigger)
	if assert.Len(t, adjs, 1) {
		r := adjs[0].NewResponsibility
		if assert.NotNil(t, r) {
			assert.Equal(t, RespMan, r.Kind)
			assert.Equal(t, "WR3", r.TargetID)
		}
	}
}

func TestMinimalResponse_AtMostOneDefenderOneYard(t *testing.T) {
	defense := nickelDefense()
	m := Motion{PlayerID: "WR1", Type: MotionGlide, Start: Vec2{10, 29}, End: Vec2{18, 29}}

	adjs := minimalResponse(m, defense)
	assert.LessOrEqual(t, len(adjs), 1)
	if len(adjs) == 1 {
		orig := findPlayer(defense, adjs[0].DefenderID)
		moved := adjs[0].NewPosition.X - orig.Pos.X
		assert.LessOrEqual(t, moved, 1.0)
		assert.GreaterOrEqual(t, moved, -1.0)
	}
}

func TestCheckResponse_RegeneratesWhenStrengthFlips(t *testing.T) {
	const los = 30.0
	// TE right declares strength right; TE motioning across flips it.
	offense := []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 6, los-1),
		offPlayer("WR2", WR, 47, los-1),
		offPlayer("TE1", TE, 33, los-1),
	}
	defense := nickelDefense()
	cov := NewCoverage(Cover3)
	GenerateAlignment(cov, offense, defense, los) // assign roles

	m := Motion{PlayerID: "TE1", Type: MotionShift, Start: Vec2{33, los - 1}, End: Vec2{20, los - 1}}
	adjs := checkResponse(cov, m, defense, offense, los)
	assert.Greater(t, len(adjs), 1, "strength flip should regenerate the full alignment")
}

func TestHandleMotionAdjustments_PureOverInput(t *testing.T) {
	defense := nickelDefense()
	before := make([]Vec2, len(defense))
	for i, d := range defense {
		before[i] = d.Pos
	}
	m := Motion{PlayerID: "WR1", Type: MotionJet, Start: Vec2{10, 29}, End: Vec2{40, 29}}
	HandleMotionAdjustments(NewCoverage(Cover1), m, defense, nil, 30)

	for i, d := range defense {
		assert.Equal(t, before[i], d.Pos, "coordinator must not mutate players")
	}
}
