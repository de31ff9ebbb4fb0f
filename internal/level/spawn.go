package level

// SpawnKind is the category of an object plane code.
type SpawnKind uint8

const (
	SpawnNone SpawnKind = iota
	SpawnPlayer
	SpawnStatic
	SpawnPushMarker
	SpawnDeadGuard
	SpawnGuard
	SpawnOfficer
	SpawnSS
	SpawnDog
	SpawnMutant
	SpawnBoss
)

func (k SpawnKind) String() string {
	return [...]string{
		"none", "player", "static", "push marker", "dead guard",
		"guard", "officer", "ss", "dog", "mutant", "boss",
	}[k]
}

// Difficulty is the lowest skill level an actor appears on.
type Difficulty uint8

const (
	SkillEasy Difficulty = iota
	SkillMedium
	SkillHard
)

// Spawn is one decoded object plane entry.
type Spawn struct {
	Kind SpawnKind
	X, Y int
	Code uint16
	// Dir is the facing for players and actors.
	Dir Dir
	// Variant is the static object number or the boss number.
	Variant int
	Skill   Difficulty
	Patrol  bool
	Ambush  bool
}

type spawnRange struct {
	first, last uint16
	kind        SpawnKind
	skill       Difficulty
	// directional ranges hold four standing then four patrolling facings
	directional bool
}

// spawnRanges maps object plane codes to spawn categories. Codes that are
// not covered decode to SpawnNone.
var spawnRanges = []spawnRange{
	{19, 22, SpawnPlayer, SkillEasy, false},
	{23, 74, SpawnStatic, SkillEasy, false},
	{PushableTile, PushableTile, SpawnPushMarker, SkillEasy, false},
	{99, 99, SpawnDeadGuard, SkillEasy, false},

	{108, 115, SpawnGuard, SkillEasy, true},
	{116, 123, SpawnOfficer, SkillEasy, true},
	{126, 133, SpawnSS, SkillEasy, true},
	{134, 141, SpawnDog, SkillEasy, true},
	{144, 151, SpawnGuard, SkillMedium, true},
	{152, 159, SpawnOfficer, SkillMedium, true},
	{162, 169, SpawnSS, SkillMedium, true},
	{170, 177, SpawnDog, SkillMedium, true},
	{180, 187, SpawnGuard, SkillHard, true},
	{188, 195, SpawnOfficer, SkillHard, true},
	{198, 205, SpawnSS, SkillHard, true},
	{206, 213, SpawnDog, SkillHard, true},
	{216, 223, SpawnMutant, SkillEasy, true},
	{234, 241, SpawnMutant, SkillMedium, true},
	{252, 259, SpawnMutant, SkillHard, true},

	{160, 160, SpawnBoss, SkillEasy, false},
	{178, 179, SpawnBoss, SkillEasy, false},
	{196, 197, SpawnBoss, SkillEasy, false},
	{214, 215, SpawnBoss, SkillEasy, false},
	{224, 227, SpawnBoss, SkillEasy, false},
}

// Decode maps an object plane code at (x, y) to a Spawn.
func Decode(code uint16, x, y int) Spawn {
	for _, r := range spawnRanges {
		if code < r.first || code > r.last {
			continue
		}
		s := Spawn{Kind: r.kind, X: x, Y: y, Code: code, Skill: r.skill}
		offset := int(code - r.first)
		switch {
		case r.kind == SpawnPlayer:
			// 19..22 face north, east, south, west
			s.Dir = Dir(offset)
		case r.directional:
			// facings run east, north, west, south
			s.Dir = [...]Dir{East, North, West, South}[offset%4]
			s.Patrol = offset >= 4
		default:
			s.Variant = offset
		}
		return s
	}
	return Spawn{Kind: SpawnNone, X: x, Y: y, Code: code}
}

// ScanInfo decodes the object plane into Spawns. Spawns standing on an
// ambush marker are flagged; Setup removes the markers afterwards. Push
// markers stay in the info plane for Use to find.
func (l *Level) ScanInfo() {
	l.Spawns = l.Spawns[:0]
	for y := 0; y < MapSize; y++ {
		for x := 0; x < MapSize; x++ {
			code := l.Info[x][y]
			if code == 0 {
				continue
			}
			s := Decode(code, x, y)
			if s.Kind == SpawnNone || s.Kind == SpawnPushMarker {
				continue
			}
			s.Ambush = l.Areas[x][y] == RawAmbush
			l.Spawns = append(l.Spawns, s)
		}
	}
}

// PlayerStart returns the first player spawn.
func (l *Level) PlayerStart() (Spawn, bool) {
	for _, s := range l.Spawns {
		if s.Kind == SpawnPlayer {
			return s, true
		}
	}
	return Spawn{}, false
}
