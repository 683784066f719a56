package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/verlet-swarm/engine"
	"github.com/lixenwraith/verlet-swarm/episode"
	"github.com/lixenwraith/verlet-swarm/parameter"
)

func newTestApp(t *testing.T, w, h int) *app {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	world := engine.NewWorld(engine.DefaultConfig())
	ecfg := episode.DefaultConfig()
	ecfg.Population = 4
	ecfg.SpawnEvery = 1
	ecfg.SettleFrames = 10

	return &app{
		screen:   screen,
		director: episode.NewDirector(world, ecfg, nil),
		speed:    1,
	}
}

func statusLine(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, h-1)
		b.WriteRune(r)
	}
	return b.String()
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, parameter.SpeedMin},
		{-3, parameter.SpeedMin},
		{8, 8},
		{parameter.SpeedMax * 2, parameter.SpeedMax},
	}
	for _, tt := range tests {
		if got := clampSpeed(tt.in); got != tt.want {
			t.Errorf("clampSpeed(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHandleEvent(t *testing.T) {
	a := newTestApp(t, 80, 25)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if a.speed != 4 {
		t.Errorf("speed after two '+' = %d, want 4", a.speed)
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	if a.speed != 2 {
		t.Errorf("speed after '-' = %d, want 2", a.speed)
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !a.paused {
		t.Error("space should pause")
	}

	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' should quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestDrawStatusLine(t *testing.T) {
	a := newTestApp(t, 80, 25)
	a.lastStats = a.director.Advance(parameter.TimeStep, 3)
	a.draw()

	status := statusLine(a.screen)
	for _, want := range []string{"filling", "particles 3", "speed x1"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
}

func TestDrawParticleInsideArena(t *testing.T) {
	a := newTestApp(t, 80, 25)
	a.director.Advance(parameter.TimeStep, 1)
	a.draw()

	w, h := a.screen.Size()
	v := fitViewport(a.director.World().Config().Bounds, w, h)
	p := a.director.World().Particles()[0]
	x, y, ok := v.cell(p.Pos.X, p.Pos.Y)
	if !ok {
		t.Fatalf("particle at %v outside viewport", p.Pos)
	}
	if r, _, _, _ := a.screen.GetContent(x, y); r == ' ' {
		t.Errorf("no glyph drawn at particle cell (%d,%d)", x, y)
	}
}

func TestFitViewport(t *testing.T) {
	b := engine.Bounds{Width: 400, Height: 400}
	v := fitViewport(b, 80, 25)

	if v.rows > 24 || v.cols > 80 {
		t.Fatalf("viewport %dx%d exceeds screen", v.cols, v.rows)
	}
	if _, _, ok := v.cell(0, 0); !ok {
		t.Error("arena origin should be visible")
	}
	if _, _, ok := v.cell(b.Width+1, 0); ok {
		t.Error("point right of arena should be outside viewport")
	}

	if z := fitViewport(b, 10, 1); z.cols != 0 || z.rows != 0 {
		t.Errorf("screen without room for arena should give empty viewport, got %+v", z)
	}
}

func TestLoadConfig(t *testing.T) {
	physicsCfg, episodeCfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if physicsCfg.Passes != parameter.ResolvePasses || episodeCfg.Population != parameter.Population {
		t.Error("empty path should yield defaults")
	}

	path := filepath.Join(t.TempDir(), "swarm.toml")
	doc := "[physics]\npasses = 3\n\n[episode]\npopulation = 50\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	physicsCfg, episodeCfg, err = loadConfig(path)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	if physicsCfg.Passes != 3 || episodeCfg.Population != 50 {
		t.Errorf("got passes=%d population=%d, want 3 and 50", physicsCfg.Passes, episodeCfg.Population)
	}
}

func TestLoadConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("SWARM_PASSES", "0")
	if _, _, err := loadConfig(""); err == nil {
		t.Error("passes=0 from the environment should be rejected")
	}
}
