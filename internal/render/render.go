// Package render turns the caster's hits into wall columns in an 8 bit
// framebuffer.
package render

import (
	"fmt"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/raycast"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/scaler"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/texture"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading/monitoring"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading/rendering"
)

// TextureSource supplies 64x64 column-major wall pages.
type TextureSource interface {
	WallPage(n int) []byte
}

// Framebuffer is an 8 bit palette-indexed view buffer.
type Framebuffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// NewFramebuffer allocates a width x height buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Pix:    make([]byte, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// Viewer is where the view is rendered from.
type Viewer struct {
	X, Y  fixed.Fixed
	Angle int
}

// Spot returns the viewer's position for the level's door and use checks.
func (v Viewer) Spot() level.Spot { return level.Spot{X: v.X, Y: v.Y} }

// Tile returns the tile the viewer stands on.
func (v Viewer) Tile() level.Pos { return v.Spot().Tile() }

// Options tune a Renderer.
type Options struct {
	Ceiling byte
	Floor   byte
	// DoorWall is the first of the eight door pages.
	DoorWall int
	// Columns casts batches of columns on a worker pool; nil casts serially.
	Columns *rendering.ParallelColumns
	// Monitor, if set, times each view.
	Monitor *monitoring.PerformanceMonitor
}

// DefaultOptions matches the procedural texture set.
func DefaultOptions() Options {
	return Options{
		Ceiling:  texture.Index(0, 5),
		Floor:    texture.Index(0, 9),
		DoorWall: texture.DoorWall,
	}
}

// Frame is what RenderView leaves behind for collaborators. The slices are
// owned by the Renderer and overwritten by the next view.
type Frame struct {
	Consts raycast.Consts
	// WallHeight is the CalcHeight result per column, for sprite clipping.
	WallHeight []int
	Hits       []raycast.Hit
}

// Renderer draws views of one projection size.
type Renderer struct {
	proj     *projection.Config
	scalers  *scaler.Set
	textures TextureSource
	opts     Options

	wallHeight []int
	hits       []raycast.Hit
}

// NewRenderer checks that the tables agree with each other.
func NewRenderer(proj *projection.Config, scalers *scaler.Set, textures TextureSource, opts Options) (*Renderer, error) {
	if scalers.ViewHeight != proj.ViewHeight {
		return nil, fmt.Errorf("scaler view height %d does not match projection %d", scalers.ViewHeight, proj.ViewHeight)
	}
	if textures == nil {
		return nil, fmt.Errorf("no texture source")
	}
	return &Renderer{
		proj:       proj,
		scalers:    scalers,
		textures:   textures,
		opts:       opts,
		wallHeight: make([]int, proj.ViewWidth),
		hits:       make([]raycast.Hit, proj.ViewWidth),
	}, nil
}

// RenderView casts and draws every column of the view. The framebuffer must
// match the projection size and the scaler stride.
func (r *Renderer) RenderView(fb *Framebuffer, l *level.Level, v Viewer) Frame {
	if fb.Width < r.proj.ViewWidth || fb.Height < r.proj.ViewHeight || fb.Stride != r.scalers.Stride {
		panic(fmt.Sprintf("render: framebuffer %dx%d stride %d does not fit view %dx%d stride %d",
			fb.Width, fb.Height, fb.Stride, r.proj.ViewWidth, r.proj.ViewHeight, r.scalers.Stride))
	}

	var timer *monitoring.RaycastTimer
	if r.opts.Monitor != nil {
		timer = r.opts.Monitor.StartRaycast()
	}

	c := raycast.NewConsts(r.proj, v.X, v.Y, v.Angle)
	if r.opts.Columns != nil {
		r.opts.Columns.Run(r.proj.ViewWidth, func(start, end int) {
			r.castColumns(fb, l, &c, start, end)
		})
	} else {
		r.castColumns(fb, l, &c, 0, r.proj.ViewWidth)
	}

	if timer != nil {
		timer.EndRaycast(r.proj.ViewWidth)
	}
	return Frame{Consts: c, WallHeight: r.wallHeight, Hits: r.hits}
}

// castColumns handles [start, end) with its own ray scratch.
func (r *Renderer) castColumns(fb *Framebuffer, l *level.Level, c *raycast.Consts, start, end int) {
	var rc raycast.RayCast
	for col := start; col < end; col++ {
		rc.InitCast(r.proj, col, c)
		h := rc.Cast(l)
		r.fillColumn(fb, col)
		r.wallHeight[col] = r.drawHit(fb, l, c, col, &h)
		r.hits[col] = h
	}
}

// fillColumn paints the ceiling above the horizon and the floor below it.
func (r *Renderer) fillColumn(fb *Framebuffer, col int) {
	half := r.proj.ViewHeight / 2
	off := col
	for y := 0; y < r.proj.ViewHeight; y++ {
		if y < half {
			fb.Pix[off] = r.opts.Ceiling
		} else {
			fb.Pix[off] = r.opts.Floor
		}
		off += fb.Stride
	}
}

// scaleColumn stretches column texture of page over the view column col.
func (r *Renderer) scaleColumn(fb *Framebuffer, col, height, page, texture int) {
	src := r.textures.WallPage(page)[texture : texture+scaler.TextureSize]
	sc := r.scalers.ForHeight(height)
	for row, c := range src {
		for _, off := range sc.Rows(row) {
			fb.Pix[col+off] = c
		}
	}
}
