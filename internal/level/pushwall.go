package level

// PushableTile in the info plane marks a wall that slides when used.
const PushableTile = 98

// PushWall tracks the one push-wall that can be moving at a time.
//
// State counts tics since the push started (from 1); every 128 tics the
// block crosses into the next tile. Pos is the sub-tile offset in 1/64ths
// that the caster draws the moving face at.
type PushWall struct {
	X, Y  int
	Dir   Dir
	State int
	Pos   int
}

// Active reports whether a push-wall is moving.
func (p *PushWall) Active() bool { return p.State != 0 }

// Block is the number of tile boundaries crossed so far.
func (p *PushWall) Block() int { return p.State / 128 }

const pushWallMaxBlocks = 2

// StartPushWall tries to slide the wall at (x, y) towards dir. It fails if
// another push-wall is moving, there is no wall, or the tile it would move
// into is occupied.
func (l *Level) StartPushWall(x, y int, dir Dir) bool {
	if l.PushWall.Active() {
		return false
	}
	oldtile := l.Tiles[x][y]
	if k := oldtile.Kind(); k != KindWall && k != KindDoorFrame {
		return false
	}

	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy
	if l.Blocked(nx, ny) {
		return false
	}
	l.Tiles[nx][ny] = oldtile
	l.Occupancy[nx][ny] = uint16(oldtile)

	l.SecretCount++
	l.PushWall = PushWall{X: x, Y: y, Dir: dir, State: 1}
	l.Tiles[x][y] |= PushWallFlag
	l.Info[x][y] = 0
	return true
}

// MovePushWall advances the moving wall by tics. Crossing a tile boundary
// frees the tile left behind and claims the next one; if that one is taken
// the wall stops where it is. After two tiles the wall comes to rest.
func (l *Level) MovePushWall(tics int) {
	pw := &l.PushWall
	if !pw.Active() {
		return
	}

	oldblock := pw.Block()
	pw.State += tics

	if pw.Block() != oldblock {
		oldtile := l.Tiles[pw.X][pw.Y] & textureMask
		l.Clear(pw.X, pw.Y)

		if pw.Block() >= pushWallMaxBlocks {
			pw.State = 0
			pw.Pos = 0
			return
		}

		dx, dy := pw.Dir.Delta()
		pw.X += dx
		pw.Y += dy
		nx, ny := pw.X+dx, pw.Y+dy
		if l.Blocked(nx, ny) {
			pw.State = 0
			pw.Pos = 0
			return
		}
		l.Tiles[nx][ny] = oldtile
		l.Occupancy[nx][ny] = uint16(oldtile)
		l.Tiles[pw.X][pw.Y] = oldtile | PushWallFlag
	}

	pw.Pos = (pw.State / 2) & 63
}
