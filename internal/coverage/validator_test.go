package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validatorLOS = 30.0

func manDefender(id string, pt PlayerType, x, y float64, target string) *Player {
	return &Player{ID: id, Team: TeamDefense, Type: pt, Pos: Vec2{x, y},
		Responsibility: &Responsibility{Kind: RespMan, TargetID: target}}
}

func validCover1Defense() []*Player {
	return []*Player{
		manDefender("CB1", CB, 6, 31, "WR1"),
		manDefender("CB2", CB, 47, 31, "WR2"),
		manDefender("NB1", NB, 20, 31, "WR3"),
		manDefender("SS1", S, 33, 31, "TE1"),
		manDefender("MLB1", LB, 28, 34, "RB1"),
		{ID: "SLB1", Team: TeamDefense, Type: LB, Pos: Vec2{33, 34},
			Responsibility: &Responsibility{Kind: RespBlitz}},
		{ID: "FS1", Team: TeamDefense, Type: S, Pos: Vec2{26.665, 44},
			Responsibility: &Responsibility{Kind: RespZone, Zone: &Zone{Name: "deep-middle", Center: Vec2{26.665, 44}}}},
	}
}

func TestValidate_CleanCover1Passes(t *testing.T) {
	res := ValidateCoverageAssignments(validCover1Defense(), elevenOffense(validatorLOS), NewCoverage(Cover1), validatorLOS)
	require.True(t, res.IsValid, "errors: %v", res.Errors)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 5, res.Stats.ManCount)
	assert.Equal(t, 1, res.Stats.ZoneCount)
	assert.Equal(t, 1, res.Stats.BlitzCount)
	assert.Equal(t, 1, res.Stats.DeepSafeties)
}

func TestValidate_DefenderCount(t *testing.T) {
	short := validCover1Defense()[:6]
	res := ValidateCoverageAssignments(short, elevenOffense(validatorLOS), NewCoverage(Cover1), validatorLOS)
	require.False(t, res.IsValid)

	var codes []string
	for _, e := range res.Errors {
		codes = append(codes, e.Code)
	}
	assert.Contains(t, codes, ErrDefenderCount)
}

func TestValidate_DuplicateAssignment(t *testing.T) {
	defense := validCover1Defense()
	defense[2].Responsibility.TargetID = "WR1" // NB1 doubles CB1's man

	res := ValidateCoverageAssignments(defense, elevenOffense(validatorLOS), NewCoverage(Cover1), validatorLOS)
	require.False(t, res.IsValid)
	assert.Contains(t, res.Stats.DuplicateTargets, "WR1")
	assert.Contains(t, res.Stats.Uncovered, "WR3")

	foundDup, foundUncov := false, false
	for _, e := range res.Errors {
		switch e.Code {
		case ErrDuplicateAssignment:
			foundDup = true
			assert.Equal(t, "WR1", e.Subject)
		case ErrUncoveredReceiver:
			foundUncov = true
		}
	}
	assert.True(t, foundDup, "want a DUPLICATE_ASSIGNMENT error")
	assert.True(t, foundUncov, "the doubled man leaves WR3 free")
}

func TestValidate_ZoneSchemeNeverFlagsUncovered(t *testing.T) {
	// A pure zone shell man-covers nobody; that is not an error in Cover 3.
	defense := validCover1Defense()
	for _, d := range defense {
		d.Responsibility = &Responsibility{Kind: RespZone, Zone: &Zone{Name: "landmark"}}
	}
	res := ValidateCoverageAssignments(defense, elevenOffense(validatorLOS), NewCoverage(Cover3), validatorLOS)
	assert.True(t, res.IsValid, "errors: %v", res.Errors)
	assert.Empty(t, res.Stats.Uncovered)
}

func TestValidate_Tampa2LinebackerWarning(t *testing.T) {
	// Swap the Tampa-2 defense down to one true LB.
	defense := validCover1Defense()
	defense[4].Type = S
	defense[4].Pos = Vec2{20, 44}

	res := ValidateCoverageAssignments(defense, elevenOffense(validatorLOS), NewCoverage(Tampa2), validatorLOS)
	require.NotEmpty(t, res.Warnings)

	found := false
	for _, w := range res.Warnings {
		if w.Severity == SeverityHigh {
			found = true
			assert.Contains(t, w.Message, "at least 3 LBs")
		}
	}
	assert.True(t, found, "tampa-2 with 1 LB must warn at high severity: %v", res.Warnings)
}

func TestValidate_QuartersTripsWarning(t *testing.T) {
	los := validatorLOS
	trips := []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 6, los-1),
		offPlayer("WR2", WR, 40, los-1),
		offPlayer("WR3", WR, 44, los-1),
		offPlayer("WR4", WR, 48, los-1),
		offPlayer("RB1", RB, FieldCenter, los-7),
	}
	res := ValidateCoverageAssignments(validCover1Defense(), trips, NewCoverage(Cover4), los)
	found := false
	for _, w := range res.Warnings {
		if w.Severity == SeverityMedium && w.Suggestion != "" {
			found = true
		}
	}
	assert.True(t, found, "quarters vs trips should warn: %v", res.Warnings)
}

func TestValidate_Cover2SpreadWarning(t *testing.T) {
	// elevenOffense spreads three WRs with no bunch or stack.
	res := ValidateCoverageAssignments(validCover1Defense(), elevenOffense(validatorLOS), NewCoverage(Cover2), validatorLOS)
	found := false
	for _, w := range res.Warnings {
		if w.Severity == SeverityLow && w.Suggestion != "" {
			found = true
		}
	}
	assert.True(t, found, "cover-2 vs a spread set should warn: %v", res.Warnings)

	// A bunched set is not spread; no such advisory.
	los := validatorLOS
	bunched := []*Player{
		offPlayer("QB1", QB, FieldCenter, los-5),
		offPlayer("WR1", WR, 12, los-1),
		offPlayer("WR2", WR, 14, los-2),
		offPlayer("WR3", WR, 13, los-3),
		offPlayer("TE1", TE, 33, los-1),
		offPlayer("RB1", RB, FieldCenter, los-6),
	}
	res = ValidateCoverageAssignments(validCover1Defense(), bunched, NewCoverage(Cover2), los)
	for _, w := range res.Warnings {
		assert.NotEqual(t, SeverityLow, w.Severity, "bunch must not read as spread: %v", w)
	}
}

func TestAutoFix_RepointsSecondClaimant(t *testing.T) {
	defense := validCover1Defense()
	defense[2].Responsibility.TargetID = "WR1" // duplicate, WR3 now free
	offense := elevenOffense(validatorLOS)

	res := ValidateCoverageAssignments(defense, offense, NewCoverage(Cover1), validatorLOS)
	require.False(t, res.IsValid)

	patch := AutoFix(res, defense, offense, validatorLOS)
	require.Len(t, patch, 1)
	fix, ok := patch["NB1"]
	require.True(t, ok, "the second claimant gets re-pointed: %v", patch)
	assert.Equal(t, RespMan, fix.Kind)
	assert.Equal(t, "WR3", fix.TargetID)

	// Input untouched.
	assert.Equal(t, "WR1", defense[2].Responsibility.TargetID)
}

func TestAutoFix_FallsBackToHoleZone(t *testing.T) {
	// Every receiver already covered, so the duplicate converts to a zone.
	defense := validCover1Defense()
	defense[5].Responsibility = &Responsibility{Kind: RespMan, TargetID: "WR3"} // SLB1 doubles NB1's man

	offense := elevenOffense(validatorLOS)
	res := ValidateCoverageAssignments(defense, offense, NewCoverage(Cover1), validatorLOS)
	require.Contains(t, res.Stats.DuplicateTargets, "WR3")

	patch := AutoFix(res, defense, offense, validatorLOS)
	require.Len(t, patch, 1)
	fix, ok := patch["SLB1"]
	require.True(t, ok, "patch: %v", patch)
	require.Equal(t, RespZone, fix.Kind)
	require.NotNil(t, fix.Zone)
	assert.Equal(t, "hole", fix.Zone.Name)
	assert.InDelta(t, validatorLOS+8, fix.Zone.Center.Y, 1e-9)
}

func TestAutoFix_NoDuplicatesNoPatch(t *testing.T) {
	defense := validCover1Defense()
	offense := elevenOffense(validatorLOS)
	res := ValidateCoverageAssignments(defense, offense, NewCoverage(Cover1), validatorLOS)
	assert.Nil(t, AutoFix(res, defense, offense, validatorLOS))
}
