package palette

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/verlet-swarm/physics"
	"github.com/lixenwraith/verlet-swarm/vmath"
)

// Sampler reads a color at an arena position
type Sampler interface {
	Sample(p vmath.Vec2) colorful.Color
}

// Bitmap is an image stretched to arena size
type Bitmap struct {
	img *image.RGBA
}

// NewBitmap scales src to width x height arena units
func NewBitmap(src image.Image, width, height int) *Bitmap {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return &Bitmap{img: dst}
}

// LoadBitmap decodes a PNG or JPEG file and scales it to the arena
func LoadBitmap(path string, width, height int) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bitmap: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode bitmap %s: %w", path, err)
	}
	return NewBitmap(src, width, height), nil
}

// Sample returns the pixel under p, clamped to the image
func (b *Bitmap) Sample(p vmath.Vec2) colorful.Color {
	r := b.img.Bounds()
	x := clampInt(int(p.X), r.Min.X, r.Max.X-1)
	y := clampInt(int(p.Y), r.Min.Y, r.Max.Y-1)

	// Transparent pixels sample as black
	c, _ := colorful.MakeColor(b.img.RGBAAt(x, y))
	return c
}

// SampleTable builds a Table indexed by particle identity from each particle's position
func SampleTable(s Sampler, particles []*physics.Particle) Table {
	size := 0
	for _, p := range particles {
		size = max(size, p.ID+1)
	}

	t := make(Table, size)
	for i := range t {
		t[i], _ = Fallback{}.Color(i)
	}
	for _, p := range particles {
		t[p.ID] = s.Sample(p.Pos)
	}
	return t
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
