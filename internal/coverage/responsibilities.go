package coverage

// AssignResponsibilities builds the per-defender responsibility map for the
// called coverage. The map is injective over man targets: a receiver id never
// appears as two defenders' target. Defenders with no slot in the scheme are
// omitted and keep whatever responsibility they already carry.
func AssignResponsibilities(cov Coverage, offense, defense []*Player, fa FormationAnalysis, los float64) map[string]Responsibility {
	switch cov.Type {
	case Cover0:
		return assignManResponsibilities(offense, defense, fa, false)
	case Cover1:
		return assignManResponsibilities(offense, defense, fa, true)
	default:
		return assignZoneResponsibilities(cov, defense, fa, los)
	}
}

// assignManResponsibilities pairs defenders with receivers outside-in. With a
// free safety (Cover 1) the FS stays in a center-field zone; without one
// (Cover 0) every unpaired defender becomes a blitzer.
func assignManResponsibilities(offense, defense []*Player, fa FormationAnalysis, freeSafetyHigh bool) map[string]Responsibility {
	resp := make(map[string]Responsibility)
	taken := make(map[string]bool)

	pair := func(d *Player, rec *Player) bool {
		if d == nil || rec == nil || taken[rec.ID] {
			return false
		}
		resp[d.ID] = Responsibility{Kind: RespMan, TargetID: rec.ID}
		taken[rec.ID] = true
		return true
	}

	pair(defenderByRole(defense, RoleCBLeft), numberOneReceiver(fa, true))
	pair(defenderByRole(defense, RoleCBRight), numberOneReceiver(fa, false))

	// Nickel takes the #2 to strength, the extra corner the #2 away.
	strongLeft := fa.Strength == StrengthLeft
	pair(defenderByRole(defense, RoleNickel), numberTwoReceiver(fa, strongLeft))
	pair(defenderByRole(defense, RoleCBExtra), numberTwoReceiver(fa, !strongLeft))

	// Strong safety covers the first uncovered receiver to strength (usually a
	// TE or #2); with no one left he robs the middle instead of erroring.
	ss := defenderByRole(defense, RoleStrongSafety)
	if ss != nil {
		if rec := firstUncovered(fa, taken, strongLeft); rec != nil {
			pair(ss, rec)
		} else {
			resp[ss.ID] = Responsibility{Kind: RespZone, Zone: &Zone{
				Name: "robber", Center: Vec2{FieldCenter, ss.Pos.Y}, Width: 10, Height: 8, Depth: 5,
			}}
		}
	}

	// Backers take the backs and any remaining eligibles inside-out.
	for _, role := range []DefensiveRole{RoleMike, RoleSam, RoleWill} {
		lb := defenderByRole(defense, role)
		if lb == nil {
			continue
		}
		if rec := nearestUncoveredEligible(offense, taken, lb.Pos); rec != nil {
			pair(lb, rec)
		} else {
			resp[lb.ID] = Responsibility{Kind: RespBlitz}
		}
	}

	fs := defenderByRole(defense, RoleFreeSafety)
	if fs != nil {
		if freeSafetyHigh {
			resp[fs.ID] = Responsibility{Kind: RespZone, Zone: &Zone{
				Name: "center-field", Center: Vec2{FieldCenter, fs.Pos.Y}, Width: FieldWidth, Height: 20, Depth: 14,
			}}
		} else if rec := nearestUncoveredEligible(offense, taken, fs.Pos); rec != nil {
			pair(fs, rec)
		} else {
			resp[fs.ID] = Responsibility{Kind: RespBlitz}
		}
	}
	return resp
}

// firstUncovered returns the innermost uncovered receiver on a side, or nil.
func firstUncovered(fa FormationAnalysis, taken map[string]bool, left bool) *Player {
	side := fa.RightReceivers
	if left {
		side = fa.LeftReceivers
	}
	ordered := receiversOutsideIn(side, left)
	for i := len(ordered) - 1; i >= 0; i-- {
		if !taken[ordered[i].ID] {
			return ordered[i]
		}
	}
	return nil
}

// nearestUncoveredEligible returns the closest eligible, non-QB offensive
// player not yet man-covered, or nil.
func nearestUncoveredEligible(offense []*Player, taken map[string]bool, from Vec2) *Player {
	var best *Player
	bestDist := 0.0
	for _, p := range offense {
		if p.Type == QB || !p.Eligible || taken[p.ID] || p.Blocking {
			continue
		}
		d := Dist(p.Pos, from)
		if best == nil || d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

// assignZoneResponsibilities carves the field into the coverage's landmarks
// and hands each role its zone. Zones are centered on the same landmarks the
// alignment generators use so position and responsibility stay consistent.
func assignZoneResponsibilities(cov Coverage, defense []*Player, fa FormationAnalysis, los float64) map[string]Responsibility {
	resp := make(map[string]Responsibility)
	give := func(role DefensiveRole, z Zone) {
		if d := defenderByRole(defense, role); d != nil {
			zc := z
			resp[d.ID] = Responsibility{Kind: RespZone, Zone: &zc}
		}
	}

	switch cov.Type {
	case Cover2, Tampa2:
		c := cov.C2
		give(RoleCBLeft, Zone{Name: "flat-left", Center: Vec2{7, los + 4}, Width: 14, Height: 8, Depth: 4})
		give(RoleCBRight, Zone{Name: "flat-right", Center: Vec2{FieldWidth - 7, los + 4}, Width: 14, Height: 8, Depth: 4})
		give(RoleFreeSafety, Zone{Name: "deep-half-left", Center: Vec2{FieldCenter - c.SafetySplit, los + c.SafetyDepth}, Width: FieldWidth / 2, Height: 25, Depth: c.SafetyDepth})
		give(RoleStrongSafety, Zone{Name: "deep-half-right", Center: Vec2{FieldCenter + c.SafetySplit, los + c.SafetyDepth}, Width: FieldWidth / 2, Height: 25, Depth: c.SafetyDepth})
		if cov.Type == Tampa2 {
			give(RoleMike, Zone{Name: "deep-middle-hole", Center: Vec2{FieldCenter, los + c.MikeHoleDepth}, Width: 12, Height: 16, Depth: c.MikeHoleDepth})
		} else {
			give(RoleMike, Zone{Name: "middle-hook", Center: Vec2{FieldCenter, los + c.HookDepth}, Width: 12, Height: 8, Depth: c.HookDepth})
		}
		give(RoleSam, Zone{Name: "hook-strong", Center: Vec2{FieldCenter + 9*strengthSign(fa), los + c.HookDepth}, Width: 10, Height: 8, Depth: c.HookDepth})
		give(RoleWill, Zone{Name: "hook-weak", Center: Vec2{FieldCenter - 9*strengthSign(fa), los + c.HookDepth}, Width: 10, Height: 8, Depth: c.HookDepth})
		give(RoleNickel, Zone{Name: "curl-strong", Center: Vec2{FieldCenter + 12*strengthSign(fa), los + 6}, Width: 10, Height: 8, Depth: 6})

	case Cover3:
		c := cov.C3
		give(RoleCBLeft, Zone{Name: "deep-third-left", Center: Vec2{c.ThirdWidth / 2, los + c.DeepDepth}, Width: c.ThirdWidth, Height: 25, Depth: c.DeepDepth})
		give(RoleCBRight, Zone{Name: "deep-third-right", Center: Vec2{FieldWidth - c.ThirdWidth/2, los + c.DeepDepth}, Width: c.ThirdWidth, Height: 25, Depth: c.DeepDepth})
		give(RoleFreeSafety, Zone{Name: "deep-third-middle", Center: Vec2{FieldCenter, los + c.DeepDepth + 2}, Width: c.ThirdWidth, Height: 25, Depth: c.DeepDepth + 2})
		give(RoleStrongSafety, Zone{Name: "curl-flat-strong", Center: Vec2{FieldCenter + 14*strengthSign(fa), los + c.CurlFlatDepth}, Width: 12, Height: 8, Depth: c.CurlFlatDepth})
		give(RoleNickel, Zone{Name: "curl-flat-weak", Center: Vec2{FieldCenter - 14*strengthSign(fa), los + c.CurlFlatDepth}, Width: 12, Height: 8, Depth: c.CurlFlatDepth})
		give(RoleMike, Zone{Name: "middle-hook", Center: Vec2{FieldCenter, los + c.HookDepth}, Width: 12, Height: 8, Depth: c.HookDepth})
		give(RoleSam, Zone{Name: "hook-strong", Center: Vec2{FieldCenter + 8*strengthSign(fa), los + c.HookDepth}, Width: 10, Height: 8, Depth: c.HookDepth})
		give(RoleWill, Zone{Name: "hook-weak", Center: Vec2{FieldCenter - 8*strengthSign(fa), los + c.HookDepth}, Width: 10, Height: 8, Depth: c.HookDepth})

	case Cover4, Cover6:
		c := cov.C4
		q := c.QuarterWidth
		give(RoleCBLeft, Zone{Name: "quarter-1", Center: Vec2{q / 2, los + c.DeepDepth}, Width: q, Height: 25, Depth: c.DeepDepth})
		give(RoleFreeSafety, Zone{Name: "quarter-2", Center: Vec2{q + q/2, los + c.DeepDepth}, Width: q, Height: 25, Depth: c.DeepDepth})
		if cov.Type == Cover4 {
			give(RoleStrongSafety, Zone{Name: "quarter-3", Center: Vec2{2*q + q/2, los + c.DeepDepth}, Width: q, Height: 25, Depth: c.DeepDepth})
			give(RoleCBRight, Zone{Name: "quarter-4", Center: Vec2{FieldWidth - q/2, los + c.DeepDepth}, Width: q, Height: 25, Depth: c.DeepDepth})
		} else {
			// Cover 6: half to the boundary (right), quarters to the field.
			give(RoleStrongSafety, Zone{Name: "deep-half-right", Center: Vec2{FieldCenter + 13, los + c.HalfDepth}, Width: FieldWidth / 2, Height: 25, Depth: c.HalfDepth})
			give(RoleCBRight, Zone{Name: "flat-right", Center: Vec2{FieldWidth - 7, los + 4}, Width: 14, Height: 8, Depth: 4})
		}
		give(RoleMike, Zone{Name: "middle-hook", Center: Vec2{FieldCenter, los + c.UnderDepth}, Width: 14, Height: 8, Depth: c.UnderDepth})
		give(RoleSam, Zone{Name: "curl-strong", Center: Vec2{FieldCenter + 11*strengthSign(fa), los + c.UnderDepth - 2}, Width: 12, Height: 8, Depth: c.UnderDepth - 2})
		give(RoleWill, Zone{Name: "curl-weak", Center: Vec2{FieldCenter - 11*strengthSign(fa), los + c.UnderDepth - 2}, Width: 12, Height: 8, Depth: c.UnderDepth - 2})
		give(RoleNickel, Zone{Name: "slot-curl", Center: Vec2{FieldCenter + 13*strengthSign(fa), los + 5}, Width: 10, Height: 8, Depth: 5})
	}
	return resp
}
