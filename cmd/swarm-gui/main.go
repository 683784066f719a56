package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/verlet-swarm/audio"
	"github.com/lixenwraith/verlet-swarm/engine"
	"github.com/lixenwraith/verlet-swarm/episode"
	"github.com/lixenwraith/verlet-swarm/palette"
	"github.com/lixenwraith/verlet-swarm/parameter"
)

var (
	configFlag = flag.String("config", "", "TOML config file with [physics] and [episode] tables")
	speedFlag  = flag.Int("speed", parameter.SpeedMin, "Physics ticks per frame")
	imageFlag  = flag.String("image", "", "PNG or JPEG to sample playback colors from")
	noiseFlag  = flag.Bool("noise", false, "Color the first episode with a perlin palette")
	scaleFlag  = flag.Float64("scale", 2, "Window pixels per arena unit")
	muteFlag   = flag.Bool("mute", false, "Disable the episode chime")
	loopFlag   = flag.Bool("loop", false, "Replay episodes forever")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
)

var (
	background = color.RGBA{0x10, 0x10, 0x14, 0xff}
	labelColor = color.RGBA{220, 220, 220, 200}
)

// Game adapts a Director to ebiten's Update/Draw loop; all ticks run inside Update
type Game struct {
	director *episode.Director
	bounds   engine.Bounds
	dt       float64

	speed     int
	paused    bool
	lastStats engine.StepStats
}

// Update handles input and advances the simulation by speed ticks
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.speed = min(g.speed*2, parameter.SpeedMax)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.speed = max(g.speed/2, parameter.SpeedMin)
	}

	if g.paused || g.director.Done() {
		return nil
	}
	g.lastStats = g.director.Advance(g.dt, g.speed)
	return nil
}

// Draw renders particles as filled discs in arena coordinates
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, p := range g.director.World().Particles() {
		c := g.director.Color(p.ID).Clamped()
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), c, true)
	}

	status := fmt.Sprintf("particles %d  speed x%d\nresolve %s  TPS %.0f",
		g.director.World().Len(), g.speed, g.lastStats.ResolveTime, ebiten.ActualTPS())
	ebitenutil.DebugPrint(screen, status)

	label := fmt.Sprintf("%s  episode %d", g.director.Phase(), g.director.Episode()+1)
	if g.paused {
		label += "  (paused)"
	}
	text.Draw(screen, label, basicfont.Face7x13, 6, int(g.bounds.Height)-8, labelColor)
}

// Layout keeps the logical screen equal to the arena
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.bounds.Width), int(g.bounds.Height)
}

func main() {
	flag.Parse()

	if !*debugFlag {
		log.SetOutput(io.Discard)
	}

	physicsCfg, err := engine.LoadConfigOrDefault(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	episodeCfg, err := episode.LoadConfigOrDefault(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *loopFlag {
		episodeCfg.Loop = true
	}

	var sampler palette.Sampler
	if *imageFlag != "" {
		bmp, err := palette.LoadBitmap(*imageFlag, int(physicsCfg.Bounds.Width), int(physicsCfg.Bounds.Height))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		sampler = bmp
	}

	director := episode.NewDirector(engine.NewWorld(physicsCfg), episodeCfg, sampler)
	if *noiseFlag {
		director.SetColors(palette.NewNoise(episodeCfg.Seed))
	}

	if !*muteFlag {
		sounds := audio.NewSoundManager(parameter.ChimeVolume)
		if err := sounds.Initialize(); err != nil {
			fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		} else {
			defer sounds.Cleanup()
			director.OnEpisodeComplete = sounds.PlayChime
		}
	}

	game := &Game{
		director: director,
		bounds:   physicsCfg.Bounds,
		dt:       physicsCfg.TimeStep,
		speed:    min(max(*speedFlag, parameter.SpeedMin), parameter.SpeedMax),
	}

	ebiten.SetWindowSize(int(physicsCfg.Bounds.Width**scaleFlag), int(physicsCfg.Bounds.Height**scaleFlag))
	ebiten.SetWindowTitle("Verlet Swarm")
	ebiten.SetTPS(int(1 / physicsCfg.TimeStep))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
