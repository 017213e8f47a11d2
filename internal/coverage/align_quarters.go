package coverage

// generateCover4Alignment is quarters: four deep defenders split the field
// into 13.33-yard lanes with three underneath. Corners bail from the number
// ones; safeties read the number twos from depth.
func generateCover4Alignment(cov Coverage, offense, defense []*Player, fa FormationAnalysis, los float64) AlignmentMap {
	am := make(AlignmentMap)
	c := cov.C4
	q := c.QuarterWidth
	shade := tripsShadeX(fa, c.TripsShade)

	place := func(role DefensiveRole, pos Vec2) {
		if d := defenderByRole(defense, role); d != nil {
			am[d.ID] = pos
		}
	}

	// Corners align over the ones when present, lane landmark otherwise.
	if cb := defenderByRole(defense, RoleCBLeft); cb != nil {
		if rec := numberOneReceiver(fa, true); rec != nil {
			am[cb.ID] = overReceiver(rec, los, 7, -1) // inside eye, bail technique
		} else {
			am[cb.ID] = Vec2{q / 2, los + c.DeepDepth}
		}
	}
	if cb := defenderByRole(defense, RoleCBRight); cb != nil {
		if rec := numberOneReceiver(fa, false); rec != nil {
			am[cb.ID] = overReceiver(rec, los, 7, -1)
		} else {
			am[cb.ID] = Vec2{FieldWidth - q/2, los + c.DeepDepth}
		}
	}

	place(RoleFreeSafety, Vec2{ClampX(q + q/2 + shade), los + c.DeepDepth})
	place(RoleStrongSafety, Vec2{ClampX(2*q + q/2 + shade), los + c.DeepDepth})

	sign := strengthSign(fa)
	place(RoleMike, Vec2{FieldCenter, los + c.UnderDepth})
	place(RoleSam, Vec2{ClampX(FieldCenter + 11*sign), los + c.UnderDepth - 2})
	place(RoleWill, Vec2{ClampX(FieldCenter - 11*sign), los + c.UnderDepth - 2})
	place(RoleNickel, Vec2{ClampX(FieldCenter + 13*sign), los + 5})
	place(RoleCBExtra, Vec2{ClampX(FieldCenter - 13*sign), los + 5})
	return am
}

// generateCover6Alignment splits the shell: quarters to the field (left) and
// a Cover 2 half to the boundary (right). The strong safety owns the boundary
// half; the boundary corner squats in the flat like a Cover 2 corner.
func generateCover6Alignment(cov Coverage, offense, defense []*Player, fa FormationAnalysis, los float64) AlignmentMap {
	am := make(AlignmentMap)
	c := cov.C4
	q := c.QuarterWidth

	if cb := defenderByRole(defense, RoleCBLeft); cb != nil {
		if rec := numberOneReceiver(fa, true); rec != nil {
			am[cb.ID] = overReceiver(rec, los, 7, -1)
		} else {
			am[cb.ID] = Vec2{q / 2, los + c.DeepDepth}
		}
	}
	if fs := defenderByRole(defense, RoleFreeSafety); fs != nil {
		am[fs.ID] = Vec2{q + q/2, los + c.DeepDepth}
	}
	if ss := defenderByRole(defense, RoleStrongSafety); ss != nil {
		am[ss.ID] = Vec2{ClampX(FieldCenter + 13), los + c.HalfDepth}
	}
	if cb := defenderByRole(defense, RoleCBRight); cb != nil {
		if rec := numberOneReceiver(fa, false); rec != nil {
			am[cb.ID] = overReceiver(rec, los, 1, 1) // press-jam, half behind
		} else {
			am[cb.ID] = Vec2{FieldWidth - 7, los + 5}
		}
	}

	sign := strengthSign(fa)
	if mike := defenderByRole(defense, RoleMike); mike != nil {
		am[mike.ID] = Vec2{FieldCenter, los + c.UnderDepth}
	}
	if sam := defenderByRole(defense, RoleSam); sam != nil {
		am[sam.ID] = Vec2{ClampX(FieldCenter + 11*sign), los + c.UnderDepth - 2}
	}
	if will := defenderByRole(defense, RoleWill); will != nil {
		am[will.ID] = Vec2{ClampX(FieldCenter - 11*sign), los + c.UnderDepth - 2}
	}
	if nb := defenderByRole(defense, RoleNickel); nb != nil {
		am[nb.ID] = Vec2{ClampX(FieldCenter + 13*sign), los + 5}
	}
	if cb3 := defenderByRole(defense, RoleCBExtra); cb3 != nil {
		am[cb3.ID] = Vec2{ClampX(FieldCenter - 13*sign), los + 5}
	}
	return am
}
