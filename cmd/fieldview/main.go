package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/gridironlab/coverage-core/internal/config"
	"github.com/gridironlab/coverage-core/internal/coverage"
)

// borderWidth is the pixel gap between the window edge and the field.
const borderWidth = 24

// viewDepthBehind and viewDepthBeyond bound the rendered slice of the field,
// in yards relative to the LOS.
const (
	viewDepthBehind = 12.0
	viewDepthBeyond = 28.0
)

var coverageCycle = []coverage.CoverageType{
	coverage.Cover0, coverage.Cover1, coverage.Cover2, coverage.Cover3,
	coverage.Cover4, coverage.Cover6, coverage.Tampa2,
}

type viewer struct {
	sim      *coverage.PlaySim
	logger   zerolog.Logger
	scale    float64 // pixels per yard
	simSpeed float64
	snapped  bool

	scenarioNames []string
	scenarioIdx   int
	coverageIdx   int
	los           float64
	seed          int64

	showZones  bool
	showRoutes bool
	showHUD    bool

	selected string // selected defender id, "" for none

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
	tickCarry     float64
}

func newViewer(logger zerolog.Logger) *viewer {
	sim := config.GetSimConfig()
	vc := config.GetViewerConfig()

	names := make([]string, 0, len(coverage.Scenarios))
	for n := range coverage.Scenarios {
		names = append(names, n)
	}
	sort.Strings(names)

	v := &viewer{
		logger:        logger,
		scale:         float64(vc.WindowScale),
		simSpeed:      1,
		scenarioNames: names,
		los:           sim.LOS,
		seed:          sim.Seed,
		showZones:     vc.ShowZones,
		showRoutes:    vc.ShowRoutes,
		showHUD:       true,
		prevKeys:      map[ebiten.Key]bool{},
	}
	for i, n := range names {
		if n == sim.Scenario {
			v.scenarioIdx = i
		}
	}
	if ct, ok := coverage.ParseCoverageType(sim.Coverage); ok {
		for i, c := range coverageCycle {
			if c == ct {
				v.coverageIdx = i
			}
		}
	}
	v.rebuild()
	return v
}

// rebuild constructs a fresh play from the current scenario/coverage picks.
func (v *viewer) rebuild() {
	build := coverage.Scenarios[v.scenarioNames[v.scenarioIdx]]
	opts := append(build(),
		coverage.WithLOS(v.los),
		coverage.WithCoverage(coverage.NewCoverage(coverageCycle[v.coverageIdx])),
		coverage.WithSeed(v.seed),
	)
	v.sim = coverage.NewPlaySim(opts...)
	v.snapped = false
	v.selected = ""
	v.logger.Info().
		Str("scenario", v.scenarioNames[v.scenarioIdx]).
		Str("coverage", coverageCycle[v.coverageIdx].String()).
		Msg("play rebuilt")
}

func (v *viewer) Update() error {
	currentKeys := map[ebiten.Key]bool{}
	edge := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !v.prevKeys[k]
	}

	// Space: snap the ball. R: reset the play.
	if edge(ebiten.KeySpace) && !v.snapped {
		v.sim.Snap()
		v.snapped = true
	}
	if edge(ebiten.KeyR) {
		v.rebuild()
	}

	// C: cycle coverage call. N: cycle scenario. Both rebuild pre-snap.
	if edge(ebiten.KeyC) {
		v.coverageIdx = (v.coverageIdx + 1) % len(coverageCycle)
		v.rebuild()
	}
	if edge(ebiten.KeyN) {
		v.scenarioIdx = (v.scenarioIdx + 1) % len(v.scenarioNames)
		v.rebuild()
	}

	// Z/T: overlay toggles. H: HUD legend.
	if edge(ebiten.KeyZ) {
		v.showZones = !v.showZones
	}
	if edge(ebiten.KeyT) {
		v.showRoutes = !v.showRoutes
	}
	if edge(ebiten.KeyH) {
		v.showHUD = !v.showHUD
	}

	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	speeds := []float64{0, 0.25, 0.5, 1, 2}
	if edge(ebiten.KeyP) {
		if v.simSpeed > 0 {
			v.simSpeed = 0
		} else {
			v.simSpeed = 1
		}
	}
	if edge(ebiten.KeyComma) {
		for i, s := range speeds {
			if s >= v.simSpeed && i > 0 {
				v.simSpeed = speeds[i-1]
				break
			}
		}
	}
	if edge(ebiten.KeyPeriod) {
		for i, s := range speeds {
			if s <= v.simSpeed && i < len(speeds)-1 {
				if speeds[i+1] > v.simSpeed {
					v.simSpeed = speeds[i+1]
					break
				}
			}
		}
	}

	// Left click: select the nearest defender for the inspector.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !v.prevMouseLeft {
			mx, my := ebiten.CursorPosition()
			v.selectDefenderAt(mx, my)
		}
	}
	v.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Y: copy the selected defender's debug report to the clipboard.
	if edge(ebiten.KeyY) && v.selected != "" {
		report := v.sim.DefenderDebugReport(v.selected, 120)
		if err := clipboard.WriteAll(report); err != nil {
			v.logger.Warn().Err(err).Msg("clipboard write failed")
		} else {
			v.logger.Info().Str("defender", v.selected).Msg("debug report copied")
		}
	}

	v.prevKeys = currentKeys

	// Advance the play at the chosen speed; ebiten calls Update at 60Hz, the
	// sim runs fixed ticks, so fractional speeds accumulate.
	if v.snapped && v.simSpeed > 0 {
		v.tickCarry += v.simSpeed
		for v.tickCarry >= 1 {
			v.sim.RunTicks(1)
			v.tickCarry--
		}
	}
	return nil
}

// fieldToScreen converts field yards to screen pixels. Screen y grows
// downward; the defense's deep field renders at the top.
func (v *viewer) fieldToScreen(p coverage.Vec2) (float32, float32) {
	x := borderWidth + p.X*v.scale
	y := borderWidth + (v.los+viewDepthBeyond-p.Y)*v.scale
	return float32(x), float32(y)
}

func (v *viewer) selectDefenderAt(mx, my int) {
	best := ""
	bestDist := 12.0 * 12.0 // pixel radius squared
	for _, d := range v.sim.Defense {
		sx, sy := v.fieldToScreen(d.Pos)
		dx := float64(sx) - float64(mx)
		dy := float64(sy) - float64(my)
		if dd := dx*dx + dy*dy; dd < bestDist {
			best = d.ID
			bestDist = dd
		}
	}
	v.selected = best
	if best != "" {
		v.logger.Debug().Str("defender", best).Msg("selected")
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 16, B: 12, A: 255})

	fw := float32(coverage.FieldWidth * v.scale)
	fh := float32((viewDepthBehind + viewDepthBeyond) * v.scale)
	vector.FillRect(screen, borderWidth, borderWidth, fw, fh, color.RGBA{R: 24, G: 52, B: 28, A: 255}, false)
	vector.StrokeRect(screen, borderWidth-1, borderWidth-1, fw+2, fh+2, 2, color.RGBA{R: 200, G: 200, B: 200, A: 120}, false)

	// Yard lines every 5 yards, LOS highlighted.
	firstLine := math.Ceil((v.los-viewDepthBehind)/5) * 5
	for y := firstLine; y <= v.los+viewDepthBeyond; y += 5 {
		sx0, sy := v.fieldToScreen(coverage.Vec2{X: 0, Y: y})
		sx1, _ := v.fieldToScreen(coverage.Vec2{X: coverage.FieldWidth, Y: y})
		vector.StrokeLine(screen, sx0, sy, sx1, sy, 1, color.RGBA{R: 255, G: 255, B: 255, A: 40}, false)
	}
	lx0, ly := v.fieldToScreen(coverage.Vec2{X: 0, Y: v.los})
	lx1, _ := v.fieldToScreen(coverage.Vec2{X: coverage.FieldWidth, Y: v.los})
	vector.StrokeLine(screen, lx0, ly, lx1, ly, 2, color.RGBA{R: 70, G: 130, B: 220, A: 220}, false)

	// Hash marks.
	for _, hx := range []float64{coverage.LeftHashX, coverage.RightHashX} {
		for y := v.los - viewDepthBehind; y <= v.los+viewDepthBeyond; y++ {
			sx, sy := v.fieldToScreen(coverage.Vec2{X: hx, Y: y})
			vector.StrokeLine(screen, sx-2, sy, sx+2, sy, 1, color.RGBA{R: 255, G: 255, B: 255, A: 60}, false)
		}
	}

	if v.showZones {
		v.drawZones(screen)
	}
	if v.showRoutes {
		v.drawRoutes(screen)
	}
	v.drawPlayers(screen)
	if v.showHUD {
		v.drawHUD(screen)
	}
}

func (v *viewer) drawZones(screen *ebiten.Image) {
	for _, d := range v.sim.Defense {
		r := d.Responsibility
		if r == nil || r.Kind != coverage.RespZone || r.Zone == nil {
			continue
		}
		z := r.Zone
		x0, y0 := v.fieldToScreen(coverage.Vec2{X: z.Center.X - z.Width/2, Y: z.Center.Y + z.Height/2})
		w := float32(z.Width * v.scale)
		h := float32(z.Height * v.scale)
		fill := color.RGBA{R: 60, G: 90, B: 160, A: 35}
		if v.selected == d.ID {
			fill = color.RGBA{R: 120, G: 160, B: 220, A: 70}
		}
		vector.FillRect(screen, x0, y0, w, h, fill, false)
		vector.StrokeRect(screen, x0, y0, w, h, 1, color.RGBA{R: 90, G: 130, B: 200, A: 90}, false)
	}
}

func (v *viewer) drawRoutes(screen *ebiten.Image) {
	for _, p := range v.sim.Offense {
		if p.Route == nil || len(p.Route.Waypoints) < 2 {
			continue
		}
		for i := 1; i < len(p.Route.Waypoints); i++ {
			x0, y0 := v.fieldToScreen(p.Route.Waypoints[i-1])
			x1, y1 := v.fieldToScreen(p.Route.Waypoints[i])
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, color.RGBA{R: 230, G: 210, B: 90, A: 110}, false)
		}
	}
}

func (v *viewer) drawPlayers(screen *ebiten.Image) {
	for _, p := range v.sim.Offense {
		sx, sy := v.fieldToScreen(p.Pos)
		c := color.RGBA{R: 220, G: 90, B: 80, A: 255}
		if p.Type == coverage.QB {
			c = color.RGBA{R: 250, G: 150, B: 90, A: 255}
		}
		vector.FillCircle(screen, sx, sy, 5, c, false)
	}
	for _, d := range v.sim.Defense {
		sx, sy := v.fieldToScreen(d.Pos)
		c := color.RGBA{R: 90, G: 140, B: 220, A: 255}
		if v.sim.Matcher().State(d.ID) == coverage.MatchMan {
			c = color.RGBA{R: 170, G: 110, B: 230, A: 255}
		}
		vector.FillCircle(screen, sx, sy, 5, c, false)
		if v.selected == d.ID {
			vector.StrokeCircle(screen, sx, sy, 8, 2, color.RGBA{R: 255, G: 255, B: 120, A: 220}, false)
		}
		// Man assignment line.
		if r := d.Responsibility; r != nil && r.Kind == coverage.RespMan {
			if tgt := findOffense(v.sim, r.TargetID); tgt != nil {
				tx, ty := v.fieldToScreen(tgt.Pos)
				vector.StrokeLine(screen, sx, sy, tx, ty, 1, color.RGBA{R: 200, G: 200, B: 200, A: 50}, false)
			}
		}
	}
}

func findOffense(ps *coverage.PlaySim, id string) *coverage.Player {
	for _, p := range ps.Offense {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (v *viewer) drawHUD(screen *ebiten.Image) {
	y := int(borderWidth + (viewDepthBehind+viewDepthBeyond)*v.scale + 8)
	line1 := fmt.Sprintf("%s | %s | t=%.2fs speed=%.2fx",
		v.scenarioNames[v.scenarioIdx], coverageCycle[v.coverageIdx], v.sim.Elapsed(), v.simSpeed)
	if !v.snapped {
		line1 += " | pre-snap (space to snap)"
	}
	if v.sim.Pick.HasPickPotential {
		line1 += fmt.Sprintf(" | pick: %s", v.sim.Pick.Concept)
	}
	ebitenutil.DebugPrintAt(screen, line1, borderWidth, y)

	line2 := "space snap  r reset  c coverage  n scenario  z zones  t routes  p pause  ,/. speed  click select  y copy report"
	ebitenutil.DebugPrintAt(screen, line2, borderWidth, y+16)

	if v.selected != "" {
		d := findDefender(v.sim, v.selected)
		if d != nil {
			desc := fmt.Sprintf("%s %s %s", d.ID, d.Role, describeResponsibility(d))
			ebitenutil.DebugPrintAt(screen, desc, borderWidth, y+32)
		}
	}
}

func findDefender(ps *coverage.PlaySim, id string) *coverage.Player {
	for _, d := range ps.Defense {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func describeResponsibility(d *coverage.Player) string {
	r := d.Responsibility
	if r == nil {
		return "no assignment"
	}
	switch r.Kind {
	case coverage.RespMan:
		return "man on " + r.TargetID
	case coverage.RespZone:
		if r.Zone != nil {
			return "zone " + r.Zone.Name
		}
		return "zone"
	case coverage.RespBlitz:
		return "blitz"
	case coverage.RespSpy:
		return "spy"
	}
	return r.Kind.String()
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(coverage.FieldWidth*v.scale) + 2*borderWidth
	h := int((viewDepthBehind+viewDepthBeyond)*v.scale) + 2*borderWidth + 56
	return w, h
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := config.Load("."); err != nil {
		logger.Warn().Err(err).Msg("no config file, using defaults")
	}

	v := newViewer(logger)
	w, h := v.Layout(0, 0)
	ebiten.SetWindowTitle("Coverage Core Field View")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(v); err != nil {
		logger.Fatal().Err(err).Msg("viewer exited")
	}
}
