package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPersonnel(t *testing.T) {
	tests := []struct {
		name string
		off  PersonnelCount
		want DefensivePersonnel
	}{
		{
			name: "10 personnel draws dime",
			off:  PersonnelCount{QB: 1, RB: 1, WR: 4},
			want: DefensivePersonnel{CB: 3, S: 2, LB: 1, NB: 1},
		},
		{
			name: "11 personnel draws nickel",
			off:  PersonnelCount{QB: 1, RB: 1, WR: 3, TE: 1},
			want: DefensivePersonnel{CB: 2, S: 2, LB: 2, NB: 1},
		},
		{
			name: "21 personnel draws base",
			off:  PersonnelCount{QB: 1, RB: 1, FB: 1, WR: 2, TE: 1},
			want: DefensivePersonnel{CB: 2, S: 2, LB: 3, NB: 0},
		},
		{
			name: "12 personnel keeps both safeties",
			off:  PersonnelCount{QB: 1, RB: 1, WR: 2, TE: 2},
			want: DefensivePersonnel{CB: 2, S: 2, LB: 3, NB: 0},
		},
		{
			name: "empty five wide stays dime shaped",
			off:  PersonnelCount{QB: 1, WR: 5},
			want: DefensivePersonnel{CB: 3, S: 2, LB: 1, NB: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPersonnel(tt.off)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 7, got.Total())
		})
	}
}

func TestMatchPersonnel_AlwaysSevenWithLBFloor(t *testing.T) {
	// Sweep the plausible grouping space: the sum and the LB floor hold for
	// every combination, however odd.
	for wr := 0; wr <= 5; wr++ {
		for te := 0; te <= 3; te++ {
			for rb := 0; rb <= 2; rb++ {
				for fb := 0; fb <= 1; fb++ {
					dp := MatchPersonnel(PersonnelCount{QB: 1, WR: wr, TE: te, RB: rb, FB: fb})
					assert.Equal(t, 7, dp.Total(), "WR=%d TE=%d RB=%d FB=%d", wr, te, rb, fb)
					assert.GreaterOrEqual(t, dp.LB, 1, "WR=%d TE=%d RB=%d FB=%d", wr, te, rb, fb)
				}
			}
		}
	}
}

func TestAssignRoles_SafetiesSplitByStrength(t *testing.T) {
	defense := []*Player{
		{ID: "CB1", Team: TeamDefense, Type: CB, Pos: Vec2{6, 37}},
		{ID: "CB2", Team: TeamDefense, Type: CB, Pos: Vec2{47, 37}},
		{ID: "FS1", Team: TeamDefense, Type: S, Pos: Vec2{20, 44}},
		{ID: "SS1", Team: TeamDefense, Type: S, Pos: Vec2{33, 42}},
		{ID: "LB1", Team: TeamDefense, Type: LB, Pos: Vec2{24, 35}},
		{ID: "LB2", Team: TeamDefense, Type: LB, Pos: Vec2{30, 35}},
		{ID: "NB1", Team: TeamDefense, Type: NB, Pos: Vec2{15, 35}},
	}
	dp := DefensivePersonnel{CB: 2, S: 2, LB: 2, NB: 1}

	AssignRoles(defense, dp, StrengthRight)
	ss := defenderByRole(defense, RoleStrongSafety)
	assert.NotNil(t, ss)
	assert.Equal(t, "SS1", ss.ID, "strong safety aligns to the strength side")

	AssignRoles(defense, dp, StrengthLeft)
	ss = defenderByRole(defense, RoleStrongSafety)
	assert.Equal(t, "FS1", ss.ID, "flipping strength flips the safety tags")
}

func TestAssignRoles_CornersSplitLeftRight(t *testing.T) {
	defense := []*Player{
		{ID: "CB1", Team: TeamDefense, Type: CB, Pos: Vec2{47, 37}},
		{ID: "CB2", Team: TeamDefense, Type: CB, Pos: Vec2{6, 37}},
	}
	AssignRoles(defense, DefensivePersonnel{CB: 2, S: 2, LB: 3}, StrengthBalanced)
	assert.Equal(t, RoleCBRight, defense[0].Role)
	assert.Equal(t, RoleCBLeft, defense[1].Role)
}
