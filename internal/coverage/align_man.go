package coverage

// generateCover0Alignment is all-out man with no deep help: corners press the
// number ones, the nickel and extra corner press the twos, safeties walk down
// over the remaining eligibles, backers stack the backs at blitz depth.
func generateCover0Alignment(cov Coverage, offense, defense []*Player, fa FormationAnalysis, los float64) AlignmentMap {
	am := make(AlignmentMap)
	c := cov.C1

	place := func(d *Player, rec *Player, depth float64) bool {
		if d == nil {
			return false
		}
		if rec == nil {
			return false
		}
		am[d.ID] = overReceiver(rec, los, depth, 0.5)
		return true
	}

	place(defenderByRole(defense, RoleCBLeft), numberOneReceiver(fa, true), c.CBDepth)
	place(defenderByRole(defense, RoleCBRight), numberOneReceiver(fa, false), c.CBDepth)

	strongLeft := fa.Strength == StrengthLeft
	place(defenderByRole(defense, RoleNickel), numberTwoReceiver(fa, strongLeft), c.CBDepth)
	place(defenderByRole(defense, RoleCBExtra), numberTwoReceiver(fa, !strongLeft), c.CBDepth)

	// In zero both safeties are down. A safety with no receiver left becomes
	// an extra rusher off the edge rather than an error.
	if ss := defenderByRole(defense, RoleStrongSafety); ss != nil {
		if !place(ss, firstUncoveredForAlignment(fa, am, defense, strongLeft), 2) {
			am[ss.ID] = Vec2{ClampX(FieldCenter + 8*strengthSign(fa)), los + 2}
		}
	}
	if fs := defenderByRole(defense, RoleFreeSafety); fs != nil {
		if !place(fs, firstUncoveredForAlignment(fa, am, defense, !strongLeft), 2) {
			am[fs.ID] = Vec2{ClampX(FieldCenter - 8*strengthSign(fa)), los + 2}
		}
	}

	backs := backsAndRemaining(offense, fa)
	i := 0
	for _, role := range []DefensiveRole{RoleMike, RoleSam, RoleWill} {
		lb := defenderByRole(defense, role)
		if lb == nil {
			continue
		}
		if i < len(backs) {
			am[lb.ID] = Vec2{ClampX(backs[i].Pos.X), los + c.LBManDepth}
			i++
		} else {
			// No back to cover: mug the A gap.
			am[lb.ID] = Vec2{ClampX(FieldCenter + float64(i-1)*2), los + 1.5}
			i++
		}
	}
	return am
}

// generateCover1Alignment is man-free: press man across with a single-high
// free safety in the middle of the field and the strong safety in a robber
// hole when no second strong receiver exists.
func generateCover1Alignment(cov Coverage, offense, defense []*Player, fa FormationAnalysis, los float64) AlignmentMap {
	am := make(AlignmentMap)
	c := cov.C1

	if cb := defenderByRole(defense, RoleCBLeft); cb != nil {
		if rec := numberOneReceiver(fa, true); rec != nil {
			am[cb.ID] = overReceiver(rec, los, c.CBDepth, 0.5)
		} else {
			am[cb.ID] = Vec2{8, los + 7}
		}
	}
	if cb := defenderByRole(defense, RoleCBRight); cb != nil {
		if rec := numberOneReceiver(fa, false); rec != nil {
			am[cb.ID] = overReceiver(rec, los, c.CBDepth, 0.5)
		} else {
			am[cb.ID] = Vec2{FieldWidth - 8, los + 7}
		}
	}

	strongLeft := fa.Strength == StrengthLeft
	if nb := defenderByRole(defense, RoleNickel); nb != nil {
		if rec := numberTwoReceiver(fa, strongLeft); rec != nil {
			am[nb.ID] = overReceiver(rec, los, 2, -0.5) // inside leverage with help in the middle
		} else {
			am[nb.ID] = Vec2{ClampX(FieldCenter + 10*strengthSign(fa)), los + 4}
		}
	}
	if cb3 := defenderByRole(defense, RoleCBExtra); cb3 != nil {
		if rec := numberTwoReceiver(fa, !strongLeft); rec != nil {
			am[cb3.ID] = overReceiver(rec, los, 2, -0.5)
		} else {
			am[cb3.ID] = Vec2{ClampX(FieldCenter - 10*strengthSign(fa)), los + 4}
		}
	}

	// SS: man on the remaining strong eligible, robber hole as the fallback.
	if ss := defenderByRole(defense, RoleStrongSafety); ss != nil {
		if rec := firstUncoveredForAlignment(fa, am, defense, strongLeft); rec != nil {
			am[ss.ID] = overReceiver(rec, los, 3, -0.5)
		} else {
			am[ss.ID] = Vec2{FieldCenter, los + c.RobberDepth}
		}
	}

	if fs := defenderByRole(defense, RoleFreeSafety); fs != nil {
		x := FieldCenter + tripsShadeX(fa, c.TripsShade)
		am[fs.ID] = Vec2{ClampX(x), los + c.FSDepth}
	}

	backs := backsAndRemaining(offense, fa)
	i := 0
	for _, role := range []DefensiveRole{RoleMike, RoleSam, RoleWill} {
		lb := defenderByRole(defense, role)
		if lb == nil {
			continue
		}
		if i < len(backs) {
			am[lb.ID] = Vec2{ClampX(backs[i].Pos.X), los + c.LBManDepth}
		} else {
			am[lb.ID] = Vec2{ClampX(FieldCenter - float64(i-1)*3), los + c.LBManDepth}
		}
		i++
	}
	return am
}

// backsAndRemaining lists backs and any TE not already wide, the players the
// backers account for in man schemes.
func backsAndRemaining(offense []*Player, fa FormationAnalysis) []*Player {
	var out []*Player
	for _, p := range offense {
		if !p.Eligible || p.Type == QB || p.Blocking {
			continue
		}
		if p.Type == RB || p.Type == FB {
			out = append(out, p)
		}
	}
	return out
}

// firstUncoveredForAlignment finds the innermost receiver on a side that no
// defender has been placed over yet (within a yard laterally).
func firstUncoveredForAlignment(fa FormationAnalysis, am AlignmentMap, defense []*Player, left bool) *Player {
	side := fa.RightReceivers
	if left {
		side = fa.LeftReceivers
	}
	ordered := receiversOutsideIn(side, left)
	for i := len(ordered) - 1; i >= 0; i-- {
		rec := ordered[i]
		covered := false
		for _, pos := range am {
			if pos.X > rec.Pos.X-1 && pos.X < rec.Pos.X+1 {
				covered = true
				break
			}
		}
		if !covered {
			return rec
		}
	}
	return nil
}
