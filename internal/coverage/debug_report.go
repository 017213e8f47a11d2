package coverage

import (
	"fmt"
	"strings"
)

// DefenderDebugReport renders a text timeline of one defender's recent play:
// assignment, match-state transitions and applied adjustments, suitable for
// pasting into a bug report. The field viewer copies it to the clipboard.
func (ps *PlaySim) DefenderDebugReport(defenderID string, lastTicks int) string {
	d := findPlayer(ps.Defense, defenderID)
	if d == nil {
		return ""
	}
	if lastTicks <= 0 {
		lastTicks = 120
	}
	fromTick := ps.tick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- coverage-core debug report ---\n")
	fmt.Fprintf(&b, "coverage=%s rotation=%s tick_range=[%d..%d] t=%.2fs\n",
		ps.Cov.Type, ps.Cov.Rotation, fromTick, ps.tick, ps.elapsed)
	fmt.Fprintf(&b, "defender=%s type=%s role=%s pos=(%.1f,%.1f) match=%s\n",
		d.ID, d.Type, d.Role, d.Pos.X, d.Pos.Y, ps.matcher.State(d.ID))

	if r := d.Responsibility; r != nil {
		switch r.Kind {
		case RespMan:
			fmt.Fprintf(&b, "assignment: man on %s\n", r.TargetID)
		case RespZone:
			if r.Zone != nil {
				fmt.Fprintf(&b, "assignment: zone %s center=(%.1f,%.1f) w=%.1f d=%.1f\n",
					r.Zone.Name, r.Zone.Center.X, r.Zone.Center.Y, r.Zone.Width, r.Zone.Depth)
			}
		default:
			fmt.Fprintf(&b, "assignment: %s\n", r.Kind)
		}
	} else {
		b.WriteString("assignment: (none)\n")
	}

	b.WriteString("\n== timeline ==\n")
	n := 0
	for _, e := range ps.Log.FilterPlayer(defenderID) {
		if e.Tick < fromTick {
			continue
		}
		b.WriteString(e.String())
		b.WriteByte('\n')
		n++
	}
	if n == 0 {
		b.WriteString("(no events in range)\n")
	}

	b.WriteString("\n== validation ==\n")
	res := ValidateCoverageAssignments(ps.Defense, ps.Offense, ps.Cov, ps.LOS)
	fmt.Fprintf(&b, "valid=%v errors=%d warnings=%d man=%d zone=%d blitz=%d deep=%d\n",
		res.IsValid, len(res.Errors), len(res.Warnings),
		res.Stats.ManCount, res.Stats.ZoneCount, res.Stats.BlitzCount, res.Stats.DeepSafeties)
	for _, e := range res.Errors {
		fmt.Fprintf(&b, "  [%s] %s\n", e.Code, e.Message)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "  [%s] %s: %s\n", w.Severity, w.Message, w.Suggestion)
	}
	return b.String()
}
