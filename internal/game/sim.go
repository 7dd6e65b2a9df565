package game

import (
	"math"
	"math/rand"

	"github.com/farmtofeast/harvest-hustle/internal/core"
	"github.com/farmtofeast/harvest-hustle/internal/level"
)

// Field bounds, in device units.
const (
	// Side view: items past the ground line are gone.
	sideGroundY = 55

	// Topdown item bounds.
	itemMinX, itemMaxX = 12, 116
	itemMinY, itemMaxY = 14, 48

	// Animal bounds (shared by both views on the x axis).
	animalMinX, animalMaxX = 15, 113
	animalMinY, animalMaxY = 16, 46
)

// Spawn policy.
const (
	spawnInterval     = 2.5
	spawnIntervalFast = 2.0
	maxLiveItems      = 4

	treeInterval    = 3.0
	treeVisibleFor  = 4.5
	treeRemoveAfter = 6.0
	maxVisibleTrees = 2

	rotateInterval = 3.0

	berryInterval = 2.5
	berryLifetime = 4.0
	maxLiveBerry  = 2

	eggInterval = 2.5

	// Fish submerge when drifting this close to a wave line.
	waveSinkRange = 6
)

// Simulator advances items, animals, and trees each tick and owns the spawn
// policy. Movement is tick-based: positions advance by velocity once per
// Update call regardless of dt; dt feeds only the timers.
type Simulator struct {
	rng    *rand.Rand
	nextID uint64

	spawnTimer  float64
	treeTimer   float64
	berryTimer  float64
	rotateTimer float64
}

// NewSimulator creates a simulator seeded for reproducible spawn sequences.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulator) id() uint64 {
	s.nextID++
	return s.nextID
}

// ResetTimers zeroes all spawn timers for a fresh level attempt.
func (s *Simulator) ResetTimers() {
	s.spawnTimer = 0
	s.treeTimer = 0
	s.berryTimer = 0
	s.rotateTimer = 0
}

// Populate seeds a freshly initialized level: wave lines, the animal roster,
// and two starter items.
func (s *Simulator) Populate(st *State, def level.Definition) {
	if def.Waves {
		rows := []int{18, 26, 34, 42}
		n := 2 + s.rng.Intn(3)
		s.rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		st.WaveRows = append([]int(nil), rows[:n]...)
	}

	for _, spec := range def.Animals {
		st.Animals = append(st.Animals, s.makeAnimal(def, spec))
	}

	s.SpawnItems(st, def, 2)
}

func (s *Simulator) makeAnimal(def level.Definition, spec level.AnimalSpec) Animal {
	a := Animal{ID: s.id(), Kind: spec.Kind, Behavior: spec.Behavior}

	if def.View == level.ViewSide {
		a.X = float64(20 + s.rng.Intn(81))
		if spec.Behavior == level.BehaviorTop {
			a.Y = 12
		} else {
			a.Y = 44
		}
		a.VX = 1.0
		if spec.Kind == level.Chicken {
			a.VX = 1.5
		}
		return a
	}

	speed := 1.0
	switch spec.Behavior {
	case level.BehaviorFast:
		speed = 2.0
	case level.BehaviorDanger:
		speed = 1.5
	}
	a.X = float64(20 + s.rng.Intn(89))
	a.Y = float64(18 + s.rng.Intn(27))
	a.VX = (s.rng.Float64()*2 - 1) * speed
	a.VY = (s.rng.Float64()*2 - 1) * speed
	return a
}

// SpawnItems drops count new tilt/shake items into the field.
func (s *Simulator) SpawnItems(st *State, def level.Definition, count int) {
	spawnable := make([]level.Ingredient, 0, len(def.Ingredients))
	for _, ing := range def.Ingredients {
		if ing.Method == level.MethodTilt || ing.Method == level.MethodShake {
			spawnable = append(spawnable, ing)
		}
	}
	if len(spawnable) == 0 {
		return
	}

	for range count {
		ing := spawnable[s.rng.Intn(len(spawnable))]
		it := Item{
			ID:        s.id(),
			Kind:      ing.Kind,
			Method:    ing.Method,
			SpawnedAt: st.Now,
		}

		if def.View == level.ViewSide {
			it.X = float64(20 + s.rng.Intn(89))
			if ing.Method == level.MethodTilt {
				it.Y = float64(12 + s.rng.Intn(19))
				it.VY = 1.2
			} else {
				// Shake items sit on the ground.
				it.Y = 44
			}
		} else {
			it.X = float64(18 + s.rng.Intn(93))
			it.Y = float64(18 + s.rng.Intn(27))
			if ing.Kind == level.Fish {
				// Fish drift slowly so they stay catchable near waves.
				it.VX = s.rng.Float64()*0.3 - 0.15
				it.VY = s.rng.Float64()*0.2 - 0.1
			} else {
				it.VX = s.rng.Float64()*0.6 - 0.3
				it.VY = s.rng.Float64()*0.4 - 0.2
			}
		}
		st.Items = append(st.Items, it)
	}
}

func (s *Simulator) spawnTree(st *State, def level.Definition) {
	fruits := def.KindsByMethod(level.MethodTree)
	if len(fruits) == 0 {
		return
	}

	t := Tree{
		ID:        s.id(),
		X:         float64(18 + s.rng.Intn(93)),
		Visible:   true,
		SpawnedAt: st.Now,
		Fruit:     fruits[s.rng.Intn(len(fruits))],
	}
	if def.Waves {
		rows := []float64{16, 28, 42}
		t.Y = rows[s.rng.Intn(len(rows))]
	} else {
		t.Y = float64(18 + s.rng.Intn(27))
	}
	st.Trees = append(st.Trees, t)
}

func (s *Simulator) spawnRotateItem(st *State, def level.Definition) {
	kinds := def.KindsByMethod(level.MethodRotate)
	if len(kinds) == 0 {
		return
	}
	for i := range st.Items {
		if st.Items[i].Method == level.MethodRotate {
			return
		}
	}

	it := Item{
		ID:        s.id(),
		Kind:      kinds[0],
		Method:    level.MethodRotate,
		X:         float64(20 + s.rng.Intn(89)),
		Y:         44,
		SpawnedAt: st.Now,
	}
	if def.View == level.ViewTopDown {
		it.Y = float64(18 + s.rng.Intn(27))
	}
	st.Items = append(st.Items, it)
}

func (s *Simulator) spawnBerry(st *State) {
	st.Items = append(st.Items, Item{
		ID:        s.id(),
		Kind:      level.Berry,
		Method:    level.MethodTilt,
		X:         float64(18 + s.rng.Intn(93)),
		Y:         float64(18 + s.rng.Intn(27)),
		SpawnedAt: st.Now,
		Lifetime:  berryLifetime,
	})
}

// Update advances every live entity by one tick. Spawning is separate
// (RunSpawns) so interaction checks can run against the moved entities
// before anything new appears.
func (s *Simulator) Update(st *State, def level.Definition, dt float64) {
	s.updateAnimals(st, def, dt)
	s.updateItems(st, def)
	s.pruneTrees(st)
}

func (s *Simulator) updateAnimals(st *State, def level.Definition, dt float64) {
	topdown := def.View == level.ViewTopDown

	for i := range st.Animals {
		a := &st.Animals[i]

		a.X += a.VX
		if topdown {
			a.Y += a.VY
		}

		if a.X < animalMinX || a.X > animalMaxX {
			a.VX = -a.VX
		}
		if topdown && (a.Y < animalMinY || a.Y > animalMaxY) {
			a.VY = -a.VY
		}
		a.X = core.ClampF(a.X, animalMinX, animalMaxX)
		if topdown {
			a.Y = core.ClampF(a.Y, animalMinY, animalMaxY)
		}

		if a.Kind == level.Chicken && a.Behavior != level.BehaviorFast {
			a.EggTimer += dt
			if a.EggTimer > eggInterval {
				a.EggTimer = 0
				s.layEgg(st, def, a)
			}
		}
	}
}

func (s *Simulator) layEgg(st *State, def level.Definition, a *Animal) {
	egg := Item{
		ID:        s.id(),
		Kind:      level.Egg,
		Method:    level.MethodTilt,
		X:         a.X,
		Y:         a.Y,
		SpawnedAt: st.Now,
	}
	if def.View == level.ViewSide {
		egg.Y += 8
		egg.VY = 1.2
	}
	st.Items = append(st.Items, egg)
}

func (s *Simulator) updateItems(st *State, def level.Definition) {
	kept := st.Items[:0]
	for i := range st.Items {
		it := st.Items[i]

		it.X += it.VX
		it.Y += it.VY

		if it.Expired(st.Now) {
			continue
		}

		if def.View == level.ViewSide {
			if it.Y > sideGroundY {
				continue
			}
		} else {
			if it.X < itemMinX || it.X > itemMaxX {
				it.VX = -it.VX
			}
			if it.Y < itemMinY || it.Y > itemMaxY {
				it.VY = -it.VY
			}
			it.X = core.ClampF(it.X, itemMinX, itemMaxX)
			it.Y = core.ClampF(it.Y, itemMinY, itemMaxY)

			if def.Waves && it.Kind == level.Fish && s.nearWave(st, it.Y) {
				continue
			}
		}

		kept = append(kept, it)
	}
	st.Items = kept
}

func (s *Simulator) nearWave(st *State, y float64) bool {
	for _, row := range st.WaveRows {
		if math.Abs(y-float64(row)) < waveSinkRange {
			return true
		}
	}
	return false
}

func (s *Simulator) pruneTrees(st *State) {
	kept := st.Trees[:0]
	for i := range st.Trees {
		t := st.Trees[i]
		age := st.Now - t.SpawnedAt
		if t.Visible && age > treeVisibleFor {
			t.Visible = false
		}
		if t.Visible || age < treeRemoveAfter {
			kept = append(kept, t)
		}
	}
	st.Trees = kept
}

// RunSpawns advances the spawn timers and reports whether anything new
// appeared, so the caller can flash the spawn indicator.
func (s *Simulator) RunSpawns(st *State, def level.Definition, dt float64) bool {
	spawned := false

	s.spawnTimer += dt
	interval := spawnInterval
	batch := 1
	if def.FastSpawn {
		interval = spawnIntervalFast
		batch = 2
	}
	if s.spawnTimer > interval && len(st.Items) < maxLiveItems {
		s.SpawnItems(st, def, batch)
		s.spawnTimer = 0
		spawned = true
	}

	if def.Trees {
		s.treeTimer += dt
		if s.treeTimer > treeInterval && s.countVisibleTrees(st) < maxVisibleTrees {
			s.spawnTree(st, def)
			s.treeTimer = 0
			spawned = true
		}
	}

	if def.BerrySpawn {
		s.berryTimer += dt
		if s.berryTimer > berryInterval && s.countBerries(st) < maxLiveBerry {
			s.spawnBerry(st)
			s.berryTimer = 0
			spawned = true
		}
	}

	s.rotateTimer += dt
	if s.rotateTimer > rotateInterval {
		s.spawnRotateItem(st, def)
		s.rotateTimer = 0
	}

	return spawned
}

func (s *Simulator) countVisibleTrees(st *State) int {
	n := 0
	for i := range st.Trees {
		if st.Trees[i].Visible {
			n++
		}
	}
	return n
}

func (s *Simulator) countBerries(st *State) int {
	n := 0
	for i := range st.Items {
		if st.Items[i].Kind == level.Berry {
			n++
		}
	}
	return n
}
