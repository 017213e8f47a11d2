package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gridironlab/coverage-core/internal/config"
	"github.com/gridironlab/coverage-core/internal/coverage"
	"github.com/rs/zerolog"
)

type runStats struct {
	runIndex int
	seed     int64
	coverage coverage.CoverageType

	firstMatchTick  int
	firstOptionTick int
	pickResolveTick int

	matchConversions int
	optionDecisions  int
	phaseChanges     int
	motionResponses  int

	pickDetected bool
	pickExecuted bool
	pickSep      float64

	validationErrors int
	finalSnapshot    coverage.PlaySnapshot
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var coverageName string
	var configDir string

	flag.IntVar(&runs, "runs", 5, "number of headless play runs")
	flag.IntVar(&ticks, "ticks", 300, "ticks per play")
	flag.Int64Var(&seedBase, "seed-base", 0, "base RNG seed for run 1 (0 = from config)")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "", "scenario name (empty = from config)")
	flag.StringVar(&coverageName, "coverage", "", "coverage call (empty = from config)")
	flag.StringVar(&configDir, "config-dir", ".", "directory holding coverage_core.cfg.json")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := config.Load(configDir); err != nil {
		logger.Warn().Err(err).Msg("no config file, using defaults")
	}
	switch config.GetString("logLevel") {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn":
		logger = logger.Level(zerolog.WarnLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	sim := config.GetSimConfig()
	if scenario == "" {
		scenario = sim.Scenario
	}
	if coverageName == "" {
		coverageName = sim.Coverage
	}
	if seedBase == 0 {
		seedBase = sim.Seed
	}

	if runs <= 0 {
		logger.Error().Msg("-runs must be > 0")
		return
	}
	if ticks <= 0 {
		logger.Error().Msg("-ticks must be > 0")
		return
	}
	build, ok := coverage.Scenarios[scenario]
	if !ok {
		logger.Error().Str("scenario", scenario).Strs("supported", scenarioNames()).Msg("unknown scenario")
		return
	}
	ct, ok := coverage.ParseCoverageType(coverageName)
	if !ok {
		logger.Error().Str("coverage", coverageName).Msg("unknown coverage call")
		return
	}
	cov := coverage.NewCoverage(ct).WithRotation(coverage.ParseRotation(sim.Rotation))

	logger.Info().
		Str("scenario", scenario).
		Str("coverage", ct.String()).
		Int("runs", runs).
		Int("ticks", ticks).
		Int64("seed_base", seedBase).
		Msg("starting batch")

	fmt.Printf("=== Headless Coverage Report ===\n")
	fmt.Printf("scenario=%s coverage=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		scenario, ct, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runPlay(i+1, seed, ticks, sim.LOS, cov, build)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func scenarioNames() []string {
	names := make([]string, 0, len(coverage.Scenarios))
	for n := range coverage.Scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func runPlay(runIndex int, seed int64, ticks int, los float64, cov coverage.Coverage, build func() []coverage.SimOption) runStats {
	opts := append(build(),
		coverage.WithLOS(los),
		coverage.WithCoverage(cov),
		coverage.WithSeed(seed),
	)
	ps := coverage.NewPlaySim(opts...)
	ps.Snap()
	ps.RunTicks(ticks)

	entries := ps.Log.Entries()
	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		coverage:         cov.Type,
		firstMatchTick:   firstTick(entries, "match", "converted", ""),
		firstOptionTick:  firstTick(entries, "route", "option-decided", ""),
		pickResolveTick:  firstTick(entries, "pick", "resolved", ""),
		matchConversions: ps.Log.CountCategory("match", "converted"),
		optionDecisions:  ps.Log.CountCategory("route", "option-decided"),
		phaseChanges:     ps.Log.CountCategory("route", "phase"),
		motionResponses:  ps.Log.CountCategory("motion", "response"),
		pickDetected:     ps.Pick.HasPickPotential,
		pickExecuted:     ps.PickOut.PickExecuted,
		pickSep:          ps.PickOut.SeparationCreated,
		validationErrors: countValidationErrors(ps),
		finalSnapshot:    ps.Snapshot(),
	}
}

func countValidationErrors(ps *coverage.PlaySim) int {
	res := coverage.ValidateCoverageAssignments(ps.Defense, ps.Offense, ps.Cov, ps.LOS)
	return len(res.Errors)
}

func firstTick(entries []coverage.PlayLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_match=%d first_option=%d pick_resolve=%d\n",
		rs.firstMatchTick, rs.firstOptionTick, rs.pickResolveTick)
	fmt.Printf("event_totals: match_conversions=%d option_decisions=%d phase_changes=%d motion_responses=%d\n",
		rs.matchConversions, rs.optionDecisions, rs.phaseChanges, rs.motionResponses)
	fmt.Printf("pick: detected=%v executed=%v separation=%.1f\n",
		rs.pickDetected, rs.pickExecuted, rs.pickSep)
	fmt.Printf("validation_errors=%d\n", rs.validationErrors)

	// Final defender picture, man-matched defenders flagged.
	var matched []string
	for _, p := range rs.finalSnapshot.Players {
		if p.Team == coverage.TeamDefense && p.State == coverage.MatchMan {
			matched = append(matched, p.ID)
		}
	}
	sort.Strings(matched)
	if len(matched) > 0 {
		fmt.Printf("man_matched: %s\n", strings.Join(matched, ","))
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalMatch := 0
	totalOption := 0
	totalPhase := 0
	totalErrors := 0
	pickDetected := 0
	pickExecuted := 0
	sepSum := 0.0

	matchTicks := make([]int, 0, len(all))
	optionTicks := make([]int, 0, len(all))
	pickTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalMatch += rs.matchConversions
		totalOption += rs.optionDecisions
		totalPhase += rs.phaseChanges
		totalErrors += rs.validationErrors
		if rs.pickDetected {
			pickDetected++
		}
		if rs.pickExecuted {
			pickExecuted++
			sepSum += rs.pickSep
		}
		if rs.firstMatchTick >= 0 {
			matchTicks = append(matchTicks, rs.firstMatchTick)
		}
		if rs.firstOptionTick >= 0 {
			optionTicks = append(optionTicks, rs.firstOptionTick)
		}
		if rs.pickResolveTick >= 0 {
			pickTicks = append(pickTicks, rs.pickResolveTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_events_per_run: match_conversions=%.1f option_decisions=%.1f phase_changes=%.1f\n",
		avg(totalMatch, len(all)), avg(totalOption, len(all)), avg(totalPhase, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_match=%s first_option=%s pick_resolve=%s\n",
		avgTickString(matchTicks), avgTickString(optionTicks), avgTickString(pickTicks))
	fmt.Printf("picks: detected=%d/%d executed=%d/%d", pickDetected, len(all), pickExecuted, len(all))
	if pickExecuted > 0 {
		fmt.Printf(" avg_separation=%.2f", sepSum/float64(pickExecuted))
	}
	fmt.Println()
	fmt.Printf("validation_errors_total=%d\n", totalErrors)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
