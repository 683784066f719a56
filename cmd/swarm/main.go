package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/verlet-swarm/audio"
	"github.com/lixenwraith/verlet-swarm/engine"
	"github.com/lixenwraith/verlet-swarm/episode"
	"github.com/lixenwraith/verlet-swarm/palette"
	"github.com/lixenwraith/verlet-swarm/parameter"
)

var (
	configFlag = flag.String("config", "", "TOML config file with [physics] and [episode] tables")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/swarm.log")
	speedFlag  = flag.Int("speed", parameter.SpeedMin, "Physics ticks per frame")
	imageFlag  = flag.String("image", "", "PNG or JPEG to sample playback colors from")
	noiseFlag  = flag.Bool("noise", false, "Color the first episode with a perlin palette")
	muteFlag   = flag.Bool("mute", false, "Disable the episode chime")
	loopFlag   = flag.Bool("loop", false, "Replay episodes forever")
)

type app struct {
	screen   tcell.Screen
	director *episode.Director
	sounds   *audio.SoundManager

	speed     int
	paused    bool
	lastStats engine.StepStats
}

func main() {
	var screen tcell.Screen

	// Ensure terminal is reset even if the simulation panics
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSWARM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	physicsCfg, episodeCfg, err := loadConfig(*configFlag)
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

	world := engine.NewWorld(physicsCfg)
	director := episode.NewDirector(world, episodeCfg, sampler)
	if *noiseFlag {
		director.SetColors(palette.NewNoise(episodeCfg.Seed))
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	a := &app{
		screen:   screen,
		director: director,
		speed:    clampSpeed(*speedFlag),
	}

	if !*muteFlag {
		sounds := audio.NewSoundManager(parameter.ChimeVolume)
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			a.sounds = sounds
			defer sounds.Cleanup()
			director.OnEpisodeComplete = sounds.PlayChime
		}
	}

	a.run(time.Duration(physicsCfg.TimeStep * float64(time.Second)))
}

// loadConfig reads both tables from one file, or returns validated defaults when path is empty
func loadConfig(path string) (*engine.Config, *episode.Config, error) {
	physicsCfg, err := engine.LoadConfigOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	episodeCfg, err := episode.LoadConfigOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	return physicsCfg, episodeCfg, nil
}

func clampSpeed(s int) int {
	if s < parameter.SpeedMin {
		return parameter.SpeedMin
	}
	if s > parameter.SpeedMax {
		return parameter.SpeedMax
	}
	return s
}

func (a *app) run(frame time.Duration) {
	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	dt := frame.Seconds()
	a.draw()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			if a.paused || a.director.Done() {
				continue
			}
			a.lastStats = a.director.Advance(dt, a.speed)
			a.draw()
		}
	}
}

// handleEvent applies one input event, returning false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.paused = !a.paused
				log.Printf("paused=%v", a.paused)
			case '+', '=':
				a.speed = clampSpeed(a.speed * 2)
			case '-':
				a.speed = clampSpeed(a.speed / 2)
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}
