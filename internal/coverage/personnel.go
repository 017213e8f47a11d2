package coverage

import "sort"

// DefensivePersonnel is the defensive back-seven mix answering an offensive
// grouping. The four counts always sum to exactly 7.
type DefensivePersonnel struct {
	CB, S, LB, NB int
}

// Total returns the defender count (always 7 from MatchPersonnel).
func (dp DefensivePersonnel) Total() int {
	return dp.CB + dp.S + dp.LB + dp.NB
}

// MatchPersonnel maps an offensive grouping to the defensive package:
// 4+ WR draws a dime shell, 3 WR a nickel shell, anything else base. Heavy
// sets (2 TE, or a TE plus two backs) pin both safeties down and give the
// extra body back to the linebackers.
//
// The sum-to-7 invariant is enforced in one place: LB is recomputed as
// 7-CB-S-NB and clamped to at least 1 before returning.
func MatchPersonnel(off PersonnelCount) DefensivePersonnel {
	var dp DefensivePersonnel

	switch {
	case off.WR >= 4:
		dp = DefensivePersonnel{CB: 3, S: 2, LB: 1, NB: 1}
	case off.WR >= 3:
		dp = DefensivePersonnel{CB: 2, S: 2, LB: 2, NB: 1}
	default:
		dp = DefensivePersonnel{CB: 2, S: 2, LB: 3, NB: 0}
	}

	heavy := off.TE >= 2 || (off.TE >= 1 && off.RB+off.FB >= 2)
	if heavy {
		dp.S = 2
	}

	dp.LB = 7 - dp.CB - dp.S - dp.NB
	if dp.LB < 1 {
		dp.LB = 1
		// Give the overflow back from the deepest bench: extra corners first,
		// then the nickel.
		for dp.Total() > 7 && dp.CB > 2 {
			dp.CB--
		}
		for dp.Total() > 7 && dp.NB > 0 {
			dp.NB--
		}
	}
	return dp
}

// AssignRoles tags each defender with the coverage slot it plays for the
// given personnel grouping and declared strength. Roles are handed out
// positionally: corners split left/right by alignment, safeties split
// free/strong by the formation strength, linebackers fill Mike then Sam then
// Will. Defenders beyond the package counts keep RoleNone and are left where
// they stand by the alignment generators.
func AssignRoles(defense []*Player, dp DefensivePersonnel, strength Strength) {
	var cbs, safeties, lbs, nbs []*Player
	for _, d := range defense {
		switch d.Type {
		case CB:
			cbs = append(cbs, d)
		case S:
			safeties = append(safeties, d)
		case LB:
			lbs = append(lbs, d)
		case NB:
			nbs = append(nbs, d)
		}
		d.Role = RoleNone
	}

	sortByX(cbs)
	sortByX(safeties)
	sortByX(lbs)

	if len(cbs) > 0 {
		cbs[0].Role = RoleCBLeft
	}
	if len(cbs) > 1 {
		cbs[len(cbs)-1].Role = RoleCBRight
	}
	if dp.CB >= 3 && len(cbs) > 2 {
		cbs[1].Role = RoleCBExtra
	}
	if dp.NB >= 1 && len(nbs) > 0 {
		nbs[0].Role = RoleNickel
	}

	// Strong safety walks to the strength side; free safety takes the rest.
	if len(safeties) > 0 {
		ss, fs := safeties[0], safeties[len(safeties)-1]
		if strength != StrengthLeft {
			ss, fs = fs, ss
		}
		ss.Role = RoleStrongSafety
		if fs != ss {
			fs.Role = RoleFreeSafety
		}
	}

	lbRoles := []DefensiveRole{RoleMike, RoleSam, RoleWill}
	// Mike is the middle-most backer; Sam to strength, Will away.
	ordered := orderLinebackers(lbs, strength)
	for i, lb := range ordered {
		if i >= dp.LB || i >= len(lbRoles) {
			break
		}
		lb.Role = lbRoles[i]
	}
}

// orderLinebackers returns backers in Mike, Sam, Will precedence.
func orderLinebackers(lbs []*Player, strength Strength) []*Player {
	if len(lbs) == 0 {
		return nil
	}
	ordered := append([]*Player{}, lbs...)
	// Middle-most first.
	sort.Slice(ordered, func(i, j int) bool {
		return centerDist(ordered[i]) < centerDist(ordered[j])
	})
	if len(ordered) >= 3 && strength == StrengthLeft {
		// Sam plays to strength: put the left-most of the remaining two second.
		if ordered[1].Pos.X > ordered[2].Pos.X {
			ordered[1], ordered[2] = ordered[2], ordered[1]
		}
	} else if len(ordered) >= 3 {
		if ordered[1].Pos.X < ordered[2].Pos.X {
			ordered[1], ordered[2] = ordered[2], ordered[1]
		}
	}
	return ordered
}

func centerDist(p *Player) float64 {
	d := p.Pos.X - FieldCenter
	if d < 0 {
		return -d
	}
	return d
}

func sortByX(ps []*Player) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Pos.X < ps[j].Pos.X })
}
