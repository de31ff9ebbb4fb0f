package render

import (
	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/raycast"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/texture"
)

// textureMask selects a texture column start (x*64) from an intercept
// shifted right by four.
const textureMask = 0xFC0

// drawHit resolves the page and texture column for h, moves the intercept
// onto the visible face, draws the column and returns its height.
func (r *Renderer) drawHit(fb *Framebuffer, l *level.Level, c *raycast.Consts, col int, h *raycast.Hit) int {
	var page, tex int
	if h.Vertical {
		page, tex = r.vertFace(l, h)
	} else {
		page, tex = r.horizFace(l, h)
	}

	height := r.proj.CalcHeight(h.XIntercept-c.ViewX, h.YIntercept-c.ViewY, c.ViewCos, c.ViewSin)
	r.scaleColumn(fb, col, height, page, tex)
	return height
}

func textureColumn(intercept fixed.Fixed) int {
	return int(intercept>>4) & textureMask
}

func (r *Renderer) vertFace(l *level.Level, h *raycast.Hit) (page, tex int) {
	switch h.Kind {
	case level.KindDoor:
		d := &l.Doors[h.Door]
		tex = textureColumn(h.YIntercept - fixed.Fixed(d.Position))
		return r.doorPage(d) + 1, tex

	case level.KindPushWall:
		tex = textureColumn(h.YIntercept)
		offset := fixed.Fixed(h.PushWallPos << 10)
		if h.XTileStep == -1 {
			tex = textureMask - tex
			h.XIntercept += fixed.TileGlobal - offset
		} else {
			h.XIntercept += offset
		}
		return texture.VertWallPage(wallTexture(h.Tile)), tex
	}

	tex = textureColumn(h.YIntercept)
	if h.XTileStep == -1 {
		tex = textureMask - tex
		h.XIntercept += fixed.TileGlobal
	}
	if h.Kind == level.KindDoorFrame && l.Tile(h.TileX-h.XTileStep, h.TileY).Kind() == level.KindDoor {
		return r.opts.DoorWall + texture.DoorFramePage + 1, tex
	}
	return texture.VertWallPage(wallTexture(h.Tile)), tex
}

func (r *Renderer) horizFace(l *level.Level, h *raycast.Hit) (page, tex int) {
	switch h.Kind {
	case level.KindDoor:
		d := &l.Doors[h.Door]
		tex = textureColumn(h.XIntercept - fixed.Fixed(d.Position))
		return r.doorPage(d), tex

	case level.KindPushWall:
		tex = textureColumn(h.XIntercept)
		offset := fixed.Fixed(h.PushWallPos << 10)
		if h.YTileStep == -1 {
			h.YIntercept += fixed.TileGlobal - offset
		} else {
			tex = textureMask - tex
			h.YIntercept += offset
		}
		return texture.HorizWallPage(wallTexture(h.Tile)), tex
	}

	tex = textureColumn(h.XIntercept)
	if h.YTileStep == -1 {
		h.YIntercept += fixed.TileGlobal
	} else {
		tex = textureMask - tex
	}
	if h.Kind == level.KindDoorFrame && l.Tile(h.TileX, h.TileY-h.YTileStep).Kind() == level.KindDoor {
		return r.opts.DoorWall + texture.DoorFramePage, tex
	}
	return texture.HorizWallPage(wallTexture(h.Tile)), tex
}

// doorPage is the horizontal page for a door; vertical faces use the next.
func (r *Renderer) doorPage(d *level.Door) int {
	switch d.Lock {
	case level.LockNormal:
		return r.opts.DoorWall + texture.DoorPage
	case level.LockElevator:
		return r.opts.DoorWall + texture.ElevatorDoorPage
	default:
		return r.opts.DoorWall + texture.LockedDoorPage
	}
}

// wallTexture is the texture number of a wall, frame or push-wall code.
// Codes without one fall back to texture 1.
func wallTexture(t level.Tile) int {
	return max(t.Texture(), 1)
}
