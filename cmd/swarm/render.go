package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/verlet-swarm/engine"
	"github.com/lixenwraith/verlet-swarm/physics"
)

// cellAspect is the height/width ratio of a terminal cell
const cellAspect = 2.1

// viewport maps arena units to terminal cells, preserving the arena's aspect ratio
type viewport struct {
	offX, offY int
	cols, rows int
	scaleX     float64 // cells per arena unit, horizontal
	scaleY     float64 // cells per arena unit, vertical
}

// fitViewport fits an arena into a screen of w x h cells, leaving the last row for status
func fitViewport(b engine.Bounds, w, h int) viewport {
	h--
	if w <= 0 || h <= 0 {
		return viewport{}
	}

	scale := math.Min(float64(w)/b.Width, float64(h)*cellAspect/b.Height)
	cols := int(b.Width * scale)
	rows := int(b.Height * scale / cellAspect)

	return viewport{
		offX:   (w - cols) / 2,
		offY:   (h - rows) / 2,
		cols:   cols,
		rows:   rows,
		scaleX: scale,
		scaleY: scale / cellAspect,
	}
}

// cell returns the screen cell under an arena point, ok false when outside the viewport
func (v viewport) cell(x, y float64) (cx, cy int, ok bool) {
	cx = int(x * v.scaleX)
	cy = int(y * v.scaleY)
	if cx < 0 || cy < 0 || cx >= v.cols || cy >= v.rows {
		return 0, 0, false
	}
	return cx + v.offX, cy + v.offY, true
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// drawParticle fills every cell whose center lies inside p's disc, and always the cell under p's center
func drawParticle(s tcell.Screen, v viewport, p *physics.Particle, style tcell.Style) {
	if x, y, ok := v.cell(p.Pos.X, p.Pos.Y); ok {
		s.SetContent(x, y, '█', nil, style)
	}

	r2 := p.Radius * p.Radius
	x0, x1 := int((p.Pos.X-p.Radius)*v.scaleX), int((p.Pos.X+p.Radius)*v.scaleX)
	y0, y1 := int((p.Pos.Y-p.Radius)*v.scaleY), int((p.Pos.Y+p.Radius)*v.scaleY)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			ax := (float64(cx)+0.5)/v.scaleX - p.Pos.X
			ay := (float64(cy)+0.5)/v.scaleY - p.Pos.Y
			if ax*ax+ay*ay > r2 {
				continue
			}
			if cx < 0 || cy < 0 || cx >= v.cols || cy >= v.rows {
				continue
			}
			s.SetContent(cx+v.offX, cy+v.offY, '█', nil, style)
		}
	}
}

func (a *app) draw() {
	a.screen.Clear()

	w, h := a.screen.Size()
	world := a.director.World()
	v := fitViewport(world.Config().Bounds, w, h)

	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := v.offX - 1; x <= v.offX+v.cols; x++ {
		a.screen.SetContent(x, v.offY+v.rows, '─', nil, frame)
	}
	for y := v.offY; y < v.offY+v.rows; y++ {
		a.screen.SetContent(v.offX-1, y, '│', nil, frame)
		a.screen.SetContent(v.offX+v.cols, y, '│', nil, frame)
	}

	for _, p := range world.Particles() {
		style := tcell.StyleDefault.Foreground(toTcell(a.director.Color(p.ID)))
		drawParticle(a.screen, v, p, style)
	}

	status := fmt.Sprintf(" %s | episode %d | particles %d | speed x%d | resolve %s ",
		a.director.Phase(), a.director.Episode()+1, world.Len(), a.speed, a.lastStats.ResolveTime)
	if a.paused {
		status += "| paused "
	}
	statusStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		a.screen.SetContent(i, h-1, r, nil, statusStyle)
	}

	a.screen.Show()
}
