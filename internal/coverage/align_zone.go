package coverage

// generateCover2Alignment is the two-deep shell shared by Cover 2 and
// Tampa 2: corners jam the number ones at press depth and sink to the flat,
// safeties split the deep halves at 15-18 yards, backers hang in the hooks.
// In Tampa 2 the Mike starts tighter so his deep-middle carry has a runway
// (4.5yd pre-snap, opening to the 18yd hole post-snap).
func generateCover2Alignment(cov Coverage, offense, defense []*Player, fa FormationAnalysis, los float64, tampa bool) AlignmentMap {
	am := make(AlignmentMap)
	c := cov.C2

	if cb := defenderByRole(defense, RoleCBLeft); cb != nil {
		if rec := numberOneReceiver(fa, true); rec != nil {
			am[cb.ID] = overReceiver(rec, los, c.CornerPressDepth, 1) // outside leverage, funnel inside
		} else {
			am[cb.ID] = Vec2{7, los + c.CornerBailDepth}
		}
	}
	if cb := defenderByRole(defense, RoleCBRight); cb != nil {
		if rec := numberOneReceiver(fa, false); rec != nil {
			am[cb.ID] = overReceiver(rec, los, c.CornerPressDepth, 1)
		} else {
			am[cb.ID] = Vec2{FieldWidth - 7, los + c.CornerBailDepth}
		}
	}

	shade := tripsShadeX(fa, c.TripsShade)
	if fs := defenderByRole(defense, RoleFreeSafety); fs != nil {
		am[fs.ID] = Vec2{ClampX(FieldCenter - c.SafetySplit + shade), los + c.SafetyDepth}
	}
	if ss := defenderByRole(defense, RoleStrongSafety); ss != nil {
		am[ss.ID] = Vec2{ClampX(FieldCenter + c.SafetySplit + shade), los + c.SafetyDepth}
	}

	mikeDepth := c.HookDepth
	if tampa {
		mikeDepth = c.MikeStartDepth
	}
	if mike := defenderByRole(defense, RoleMike); mike != nil {
		am[mike.ID] = Vec2{FieldCenter, los + mikeDepth}
	}
	sign := strengthSign(fa)
	if sam := defenderByRole(defense, RoleSam); sam != nil {
		am[sam.ID] = Vec2{ClampX(FieldCenter + 9*sign), los + c.HookDepth}
	}
	if will := defenderByRole(defense, RoleWill); will != nil {
		am[will.ID] = Vec2{ClampX(FieldCenter - 9*sign), los + c.HookDepth}
	}
	if nb := defenderByRole(defense, RoleNickel); nb != nil {
		am[nb.ID] = Vec2{ClampX(FieldCenter + 12*sign), los + 5}
	}
	if cb3 := defenderByRole(defense, RoleCBExtra); cb3 != nil {
		am[cb3.ID] = Vec2{ClampX(FieldCenter - 12*sign), los + 5}
	}
	return am
}

// generateCover3Alignment is the three-deep four-under shell. The base call
// puts both corners and the free safety in the deep thirds with the strong
// safety down in the strong curl-flat; sky/buzz/cloud rotations swap which
// defender drops into the rotated-down role before the snap.
func generateCover3Alignment(cov Coverage, offense, defense []*Player, fa FormationAnalysis, los float64) AlignmentMap {
	am := make(AlignmentMap)
	c := cov.C3
	sign := strengthSign(fa)
	shade := tripsShadeX(fa, c.TripsShade)

	thirdL := Vec2{c.ThirdWidth / 2, los + c.DeepDepth}
	thirdR := Vec2{FieldWidth - c.ThirdWidth/2, los + c.DeepDepth}
	thirdM := Vec2{ClampX(FieldCenter + shade), los + c.DeepDepth + 2}
	curlFlatStrong := Vec2{ClampX(FieldCenter + 14*sign), los + c.CurlFlatDepth}

	cbL := defenderByRole(defense, RoleCBLeft)
	cbR := defenderByRole(defense, RoleCBRight)
	fs := defenderByRole(defense, RoleFreeSafety)
	ss := defenderByRole(defense, RoleStrongSafety)

	place := func(d *Player, pos Vec2) {
		if d != nil {
			am[d.ID] = pos
		}
	}

	switch cov.Rotation {
	case RotationCloud:
		// Strong corner squats in the flat, strong safety replaces him deep.
		if fa.Strength == StrengthLeft {
			place(cbL, Vec2{ClampX(FieldCenter - 14), los + c.CurlFlatDepth})
			place(ss, thirdL)
			place(cbR, thirdR)
		} else {
			place(cbR, Vec2{ClampX(FieldCenter + 14), los + c.CurlFlatDepth})
			place(ss, thirdR)
			place(cbL, thirdL)
		}
		place(fs, thirdM)
	case RotationBuzz:
		// Free safety buzzes down into the strong hook, strong safety takes
		// the middle third.
		place(cbL, thirdL)
		place(cbR, thirdR)
		place(ss, thirdM)
		place(fs, Vec2{ClampX(FieldCenter + 8*sign), los + c.HookDepth})
	default:
		// Base / sky: strong safety down to the strong curl-flat.
		place(cbL, thirdL)
		place(cbR, thirdR)
		place(fs, thirdM)
		place(ss, curlFlatStrong)
	}

	if nb := defenderByRole(defense, RoleNickel); nb != nil {
		am[nb.ID] = Vec2{ClampX(FieldCenter - 14*sign), los + c.CurlFlatDepth}
	}
	if mike := defenderByRole(defense, RoleMike); mike != nil {
		am[mike.ID] = Vec2{FieldCenter, los + c.HookDepth}
	}
	if sam := defenderByRole(defense, RoleSam); sam != nil {
		am[sam.ID] = Vec2{ClampX(FieldCenter + 8*sign), los + c.HookDepth}
	}
	if will := defenderByRole(defense, RoleWill); will != nil {
		am[will.ID] = Vec2{ClampX(FieldCenter - 8*sign), los + c.HookDepth}
	}
	if cb3 := defenderByRole(defense, RoleCBExtra); cb3 != nil {
		am[cb3.ID] = Vec2{ClampX(FieldCenter - 16*sign), los + c.CurlFlatDepth}
	}
	return am
}
