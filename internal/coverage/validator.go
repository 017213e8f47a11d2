package coverage

import "fmt"

// ValidationError codes.
const (
	ErrDefenderCount       = "DEFENDER_COUNT"
	ErrDuplicateAssignment = "DUPLICATE_ASSIGNMENT"
	ErrUncoveredReceiver   = "UNCOVERED_RECEIVER"
)

// Severity grades an advisory warning.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	}
	return "low"
}

// ValidationError is a hard invariant violation. It is a value, not a Go
// error: the caller decides whether to auto-fix, log or ignore it.
type ValidationError struct {
	Code    string
	Message string
	Subject string // defender or receiver id involved, if any
}

// ValidationWarning is an advisory mismatch that never blocks play.
type ValidationWarning struct {
	Severity   Severity
	Message    string
	Suggestion string
}

// CoverageStats summarizes the assignment state the validator saw.
type CoverageStats struct {
	ManCount         int
	ZoneCount        int
	BlitzCount       int
	SpyCount         int
	DeepSafeties     int
	DuplicateTargets []string
	Uncovered        []string
}

// ValidationResult is the full validator output.
type ValidationResult struct {
	IsValid  bool
	Errors   []ValidationError
	Warnings []ValidationWarning
	Stats    CoverageStats
}

// ValidateCoverageAssignments is a pure, read-only consistency pass over the
// final defender/assignment state. Errors are structural invariants; warnings
// flag personnel or formation pairings the coverage dislikes.
func ValidateCoverageAssignments(defense, offense []*Player, cov Coverage, los float64) ValidationResult {
	res := ValidationResult{IsValid: true}
	fa := AnalyzeFormation(offense, los)

	if len(defense) != 7 {
		res.Errors = append(res.Errors, ValidationError{
			Code:    ErrDefenderCount,
			Message: fmt.Sprintf("expected 7 defenders, have %d", len(defense)),
		})
	}

	manTargets := make(map[string]string) // receiver id -> first defender id
	var lbCount, sCount, cbCount int
	for _, d := range defense {
		switch d.Type {
		case LB:
			lbCount++
		case S:
			sCount++
		case CB:
			cbCount++
		}
		if d.Pos.Y-los >= 12 && (d.Type == S || d.Role == RoleMike && cov.Type == Tampa2) {
			res.Stats.DeepSafeties++
		}
		r := d.Responsibility
		if r == nil {
			continue
		}
		switch r.Kind {
		case RespMan:
			res.Stats.ManCount++
			if prev, dup := manTargets[r.TargetID]; dup {
				res.Stats.DuplicateTargets = append(res.Stats.DuplicateTargets, r.TargetID)
				res.Errors = append(res.Errors, ValidationError{
					Code:    ErrDuplicateAssignment,
					Message: fmt.Sprintf("receiver %s man-covered by both %s and %s", r.TargetID, prev, d.ID),
					Subject: r.TargetID,
				})
			} else {
				manTargets[r.TargetID] = d.ID
			}
		case RespZone:
			res.Stats.ZoneCount++
		case RespBlitz:
			res.Stats.BlitzCount++
		case RespSpy:
			res.Stats.SpyCount++
		}
	}

	// Man schemes must account for every eligible receiver.
	if cov.Type.IsManScheme() {
		for _, p := range offense {
			if p.Type == QB || !p.Eligible || p.Blocking {
				continue
			}
			if _, ok := manTargets[p.ID]; !ok {
				res.Stats.Uncovered = append(res.Stats.Uncovered, p.ID)
				res.Errors = append(res.Errors, ValidationError{
					Code:    ErrUncoveredReceiver,
					Message: fmt.Sprintf("eligible receiver %s has no man assignment", p.ID),
					Subject: p.ID,
				})
			}
		}
	}

	res.Warnings = appendPersonnelWarnings(res.Warnings, cov, fa, lbCount, sCount, cbCount)
	res.Warnings = appendFormationWarnings(res.Warnings, cov, fa)

	res.IsValid = len(res.Errors) == 0
	return res
}

func appendPersonnelWarnings(ws []ValidationWarning, cov Coverage, fa FormationAnalysis, lbCount, sCount, cbCount int) []ValidationWarning {
	switch cov.Type {
	case Tampa2:
		if lbCount < 3 {
			ws = append(ws, ValidationWarning{
				Severity:   SeverityHigh,
				Message:    fmt.Sprintf("tampa-2 wants at least 3 LBs, have %d", lbCount),
				Suggestion: "check to cover-2 or substitute a backer for the deep-middle hole",
			})
		}
	case Cover2, Cover4, Cover6:
		if sCount < 2 {
			ws = append(ws, ValidationWarning{
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("%s wants 2 deep safeties, have %d", cov.Type, sCount),
				Suggestion: "substitute a safety or check to a single-high call",
			})
		}
	case Cover0:
		if cbCount < 3 && fa.Personnel.WR >= 3 {
			ws = append(ws, ValidationWarning{
				Severity:   SeverityMedium,
				Message:    fmt.Sprintf("cover-0 vs %d WR with only %d CBs", fa.Personnel.WR, cbCount),
				Suggestion: "nickel/dime personnel travels better with zero pressure",
			})
		}
	}
	return ws
}

func appendFormationWarnings(ws []ValidationWarning, cov Coverage, fa FormationAnalysis) []ValidationWarning {
	switch cov.Type {
	case Cover2:
		if fa.Sets.IsSpread {
			ws = append(ws, ValidationWarning{
				Severity:   SeverityLow,
				Message:    "spread set widens the two-deep flat defenders",
				Suggestion: "quarters or tampa carries spread verticals better",
			})
		}
	case Cover4:
		if fa.IsTrips {
			ws = append(ws, ValidationWarning{
				Severity:   SeverityMedium,
				Message:    "quarters vs trips strains the back-side safety",
				Suggestion: "consider a solo/poach check to the trips side",
			})
		}
	case Tampa2:
		if fa.Personnel.RB == 0 && fa.Personnel.TE == 0 && fa.Personnel.FB == 0 {
			ws = append(ws, ValidationWarning{
				Severity:   SeverityLow,
				Message:    "tampa-2 vs empty leaves the Mike on a long run to the hole",
				Suggestion: "empty checks usually prefer a two-deep shell without the Mike carry",
			})
		}
	case Cover0:
		if fa.Sets.IsHeavy {
			ws = append(ws, ValidationWarning{
				Severity:   SeverityLow,
				Message:    "cover-0 vs heavy personnel risks free releases off play-action",
				Suggestion: "keep a backer green-dogging the backs instead of pure man",
			})
		}
	}
	return ws
}

// AutoFix returns a responsibility patch resolving duplicate man targets: the
// second defender on a duplicated receiver is re-pointed at the first
// uncovered receiver, or converted to a middle-hole zone when no receiver is
// free. The input is not mutated.
func AutoFix(res ValidationResult, defense, offense []*Player, los float64) map[string]Responsibility {
	if len(res.Stats.DuplicateTargets) == 0 {
		return nil
	}
	patch := make(map[string]Responsibility)

	covered := make(map[string]bool)
	for _, d := range defense {
		if d.Responsibility != nil && d.Responsibility.Kind == RespMan {
			covered[d.Responsibility.TargetID] = true
		}
	}
	var uncovered []*Player
	for _, p := range offense {
		if p.Type != QB && p.Eligible && !p.Blocking && !covered[p.ID] {
			uncovered = append(uncovered, p)
		}
	}

	for _, dup := range res.Stats.DuplicateTargets {
		seen := false
		for _, d := range defense {
			r := d.Responsibility
			if r == nil || r.Kind != RespMan || r.TargetID != dup {
				continue
			}
			if !seen {
				seen = true // first claimant keeps the receiver
				continue
			}
			if len(uncovered) > 0 {
				patch[d.ID] = Responsibility{Kind: RespMan, TargetID: uncovered[0].ID}
				uncovered = uncovered[1:]
			} else {
				patch[d.ID] = Responsibility{Kind: RespZone, Zone: &Zone{
					Name: "hole", Center: Vec2{FieldCenter, los + 8}, Width: 10, Height: 8, Depth: 8,
				}}
			}
		}
	}
	return patch
}
