package coverage

import (
	"fmt"
	"strings"
)

// PlayLogEntry is one recorded event during a simulated play.
type PlayLogEntry struct {
	Tick     int
	Player   string  // player id, or "--" for play-level events
	Team     string  // "offense", "defense", or "--"
	Category string  // alignment, motion, match, route, pick, validate, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] CB1  match   converted   zone → man-match (WR1)
func (e PlayLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-5s %-10s %-18s %s",
		e.Tick, e.Player, e.Category, e.Key, e.Value)
}

// PlayLog collects structured events during a simulated play. It is unbounded
// and machine-readable; invariant tests filter it rather than scraping text.
type PlayLog struct {
	entries []PlayLogEntry
	verbose bool
}

// NewPlayLog creates a PlayLog. If verbose is true, per-tick position and
// phase entries are also recorded.
func NewPlayLog(verbose bool) *PlayLog {
	return &PlayLog{verbose: verbose}
}

// Add records a new entry.
func (pl *PlayLog) Add(tick int, player, team, category, key, value string, numVal float64) {
	pl.entries = append(pl.entries, PlayLogEntry{
		Tick:     tick,
		Player:   player,
		Team:     team,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (pl *PlayLog) AddVerbose(tick int, player, team, category, key, value string, numVal float64) {
	if !pl.verbose {
		return
	}
	pl.Add(tick, player, team, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (pl *PlayLog) Entries() []PlayLogEntry {
	return pl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (pl *PlayLog) Filter(category, key string) []PlayLogEntry {
	var out []PlayLogEntry
	for _, e := range pl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns the number of entries matching category and key.
func (pl *PlayLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range pl.entries {
		if e.Category == category && e.Key == key {
			n++
		}
	}
	return n
}

// FilterPlayer returns entries for one player id.
func (pl *PlayLog) FilterPlayer(id string) []PlayLogEntry {
	var out []PlayLogEntry
	for _, e := range pl.entries {
		if e.Player == id {
			out = append(out, e)
		}
	}
	return out
}

// Dump renders all entries as text, one line each.
func (pl *PlayLog) Dump() string {
	var b strings.Builder
	for _, e := range pl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
