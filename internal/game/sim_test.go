package game

import (
	"testing"

	"github.com/farmtofeast/harvest-hustle/internal/level"
)

func sideDef() level.Definition {
	return level.Definition{
		Name: "test side",
		View: level.ViewSide,
		Ingredients: []level.Ingredient{
			{Kind: level.Egg, Need: 2, Method: level.MethodTilt},
			{Kind: level.Wheat, Need: 2, Method: level.MethodShake},
		},
		Animals: []level.AnimalSpec{
			{Kind: level.Chicken, Behavior: level.BehaviorTop},
			{Kind: level.Cow, Behavior: level.BehaviorGround},
		},
	}
}

func topdownDef() level.Definition {
	return level.Definition{
		Name: "test topdown",
		View: level.ViewTopDown,
		Ingredients: []level.Ingredient{
			{Kind: level.Fish, Need: 3, Method: level.MethodTilt},
		},
	}
}

func TestPopulateSideView(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	def := sideDef()

	sim.Populate(st, def)

	if len(st.Animals) != 2 {
		t.Fatalf("got %d animals, expected 2", len(st.Animals))
	}
	if st.Animals[0].Y != 12 {
		t.Errorf("top animal at y=%v, expected 12", st.Animals[0].Y)
	}
	if st.Animals[1].Y != 44 {
		t.Errorf("ground animal at y=%v, expected 44", st.Animals[1].Y)
	}
	if st.Animals[0].VX != 1.5 {
		t.Errorf("chicken VX = %v, expected 1.5", st.Animals[0].VX)
	}
	if len(st.Items) != 2 {
		t.Errorf("got %d starter items, expected 2", len(st.Items))
	}
	if len(st.WaveRows) != 0 {
		t.Errorf("side level must have no waves, got %v", st.WaveRows)
	}
}

func TestPopulateWaves(t *testing.T) {
	def := topdownDef()
	def.Waves = true

	allowed := map[int]bool{18: true, 26: true, 34: true, 42: true}
	for seed := int64(0); seed < 10; seed++ {
		sim := NewSimulator(seed)
		st := playState()
		sim.Populate(st, def)

		if len(st.WaveRows) < 2 || len(st.WaveRows) > 4 {
			t.Fatalf("seed %d: %d wave rows, expected 2..4", seed, len(st.WaveRows))
		}
		seen := map[int]bool{}
		for _, row := range st.WaveRows {
			if !allowed[row] {
				t.Errorf("seed %d: wave row %d not in the allowed set", seed, row)
			}
			if seen[row] {
				t.Errorf("seed %d: duplicate wave row %d", seed, row)
			}
			seen[row] = true
		}
	}
}

func TestMovementIsTickBased(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	st.Items = []Item{{ID: 1, Kind: level.Fish, Method: level.MethodTilt, X: 50, Y: 30, VX: 1}}

	// Two updates with wildly different dt still move exactly one velocity
	// step each.
	sim.Update(st, topdownDef(), 0.001)
	sim.Update(st, topdownDef(), 1.0)

	if st.Items[0].X != 52 {
		t.Errorf("item at x=%v after two ticks, expected 52", st.Items[0].X)
	}
}

func TestSideItemsRemovedPastGround(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	st.Items = []Item{{ID: 1, Kind: level.Egg, Method: level.MethodTilt, X: 50, Y: 55, VY: 1.2}}

	sim.Update(st, sideDef(), 0.016)

	if len(st.Items) != 0 {
		t.Error("item past the ground line must be removed")
	}
}

func TestTopdownItemBounce(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	st.Items = []Item{{ID: 1, Kind: level.Fish, Method: level.MethodTilt, X: 116, Y: 30, VX: 1}}

	sim.Update(st, topdownDef(), 0.016)

	it := st.Items[0]
	if it.VX != -1 {
		t.Errorf("VX = %v, expected reflection to -1", it.VX)
	}
	if it.X > 116 {
		t.Errorf("x = %v, expected clamp into bounds", it.X)
	}
}

func TestItemLifetimeExpiry(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	st.Now = 5
	st.Items = []Item{{ID: 1, Kind: level.Berry, Method: level.MethodTilt, X: 50, Y: 30, SpawnedAt: 0.5, Lifetime: berryLifetime}}

	sim.Update(st, topdownDef(), 0.016)

	if len(st.Items) != 0 {
		t.Error("expired berry must be removed")
	}
}

func TestFishSinkAtWaves(t *testing.T) {
	def := topdownDef()
	def.Waves = true
	sim := NewSimulator(1)
	st := playState()
	st.WaveRows = []int{26}
	st.Items = []Item{
		{ID: 1, Kind: level.Fish, Method: level.MethodTilt, X: 50, Y: 28},
		{ID: 2, Kind: level.Fish, Method: level.MethodTilt, X: 50, Y: 40},
	}

	sim.Update(st, def, 0.016)

	if len(st.Items) != 1 || st.Items[0].ID != 2 {
		t.Errorf("fish within 6 of a wave must sink, items=%v", st.Items)
	}
}

func TestChickenLaysEggs(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	st.Animals = []Animal{{ID: 1, Kind: level.Chicken, Behavior: level.BehaviorGround, X: 50, Y: 44, VX: 1.5}}

	sim.Update(st, sideDef(), 2.6)

	if len(st.Items) != 1 {
		t.Fatalf("got %d items, expected a laid egg", len(st.Items))
	}
	egg := st.Items[0]
	if egg.Kind != level.Egg || egg.Method != level.MethodTilt {
		t.Errorf("laid item = %v/%v, expected a tilt egg", egg.Kind, egg.Method)
	}
	if egg.VY != 1.2 {
		t.Errorf("egg VY = %v, expected 1.2 in side view", egg.VY)
	}
}

func TestFastChickenLaysNoEggs(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	st.Animals = []Animal{{ID: 1, Kind: level.Chicken, Behavior: level.BehaviorFast, X: 50, Y: 30, VX: 2}}

	sim.Update(st, topdownDef(), 2.6)

	if len(st.Items) != 0 {
		t.Error("fast chickens must not lay eggs")
	}
}

func TestSpawnRespectsLiveCap(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	def := topdownDef()
	for i := uint64(1); i <= maxLiveItems; i++ {
		st.Items = append(st.Items, Item{ID: i, Kind: level.Fish, Method: level.MethodTilt, X: 50, Y: 30})
	}

	if sim.RunSpawns(st, def, 3.0) {
		t.Error("spawn reported with the field full")
	}
	if len(st.Items) != maxLiveItems {
		t.Errorf("got %d items, expected the cap of %d", len(st.Items), maxLiveItems)
	}
}

func TestSpawnTimerFires(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	def := topdownDef()

	if sim.RunSpawns(st, def, 1.0) {
		t.Fatal("spawned before the interval elapsed")
	}
	if !sim.RunSpawns(st, def, 2.0) {
		t.Fatal("no spawn after the interval elapsed")
	}
	if len(st.Items) != 1 {
		t.Errorf("got %d items, expected 1 per spawn", len(st.Items))
	}
}

func TestFastSpawnDoubles(t *testing.T) {
	sim := NewSimulator(1)
	st := playState()
	def := topdownDef()
	def.FastSpawn = true

	sim.RunSpawns(st, def, 2.1)
	if len(st.Items) != 2 {
		t.Errorf("got %d items, expected a batch of 2 on fast-spawn levels", len(st.Items))
	}
}

func TestRotateItemExclusive(t *testing.T) {
	def := level.Definition{
		View: level.ViewTopDown,
		Ingredients: []level.Ingredient{
			{Kind: level.Dough, Need: 2, Method: level.MethodRotate},
		},
	}
	sim := NewSimulator(1)
	st := playState()

	sim.RunSpawns(st, def, 3.1)
	if len(st.Items) != 1 {
		t.Fatalf("got %d items, expected one rotate item", len(st.Items))
	}

	sim.RunSpawns(st, def, 3.1)
	if len(st.Items) != 1 {
		t.Error("at most one rotate item may be live")
	}
}

func TestTreeLifecycle(t *testing.T) {
	def := level.Definition{
		View:  level.ViewTopDown,
		Trees: true,
		Ingredients: []level.Ingredient{
			{Kind: level.Lemon, Need: 3, Method: level.MethodTree},
		},
	}
	sim := NewSimulator(1)
	st := playState()

	sim.RunSpawns(st, def, 3.1)
	if len(st.Trees) != 1 || !st.Trees[0].Visible {
		t.Fatalf("expected one visible tree, got %v", st.Trees)
	}
	if st.Trees[0].Fruit != level.Lemon {
		t.Errorf("fruit = %v, expected lemon", st.Trees[0].Fruit)
	}

	// Past the visibility window the tree hides but lingers.
	st.Now = st.Trees[0].SpawnedAt + treeVisibleFor + 0.1
	sim.Update(st, def, 0.016)
	if len(st.Trees) != 1 || st.Trees[0].Visible {
		t.Fatalf("expected one hidden tree, got %v", st.Trees)
	}

	// Past the removal window it is pruned.
	st.Now = st.Trees[0].SpawnedAt + treeRemoveAfter + 0.1
	sim.Update(st, def, 0.016)
	if len(st.Trees) != 0 {
		t.Error("tree past the removal window must be pruned")
	}
}

func TestBerrySpawnOwnTimerAndCap(t *testing.T) {
	def := level.Definition{
		View:       level.ViewTopDown,
		BerrySpawn: true,
		Ingredients: []level.Ingredient{
			{Kind: level.Berry, Need: 2, Method: level.MethodTilt},
			{Kind: level.Milk, Need: 2, Method: level.MethodTouch},
		},
	}
	sim := NewSimulator(1)
	st := playState()
	// Fill the field so the regular spawner stays quiet; the berry timer
	// has no total-item cap of its own.
	for i := uint64(100); i < 100+maxLiveItems; i++ {
		st.Items = append(st.Items, Item{ID: i, Kind: level.Milk, Method: level.MethodShake, X: 50, Y: 30})
	}

	sim.RunSpawns(st, def, 2.6)
	if sim.countBerries(st) != 1 {
		t.Fatalf("got %d berries, expected 1 from the berry timer", sim.countBerries(st))
	}
	for i := range st.Items {
		if st.Items[i].Kind == level.Berry && st.Items[i].Lifetime != berryLifetime {
			t.Errorf("berry lifetime = %v, expected %v", st.Items[i].Lifetime, berryLifetime)
		}
	}

	sim.RunSpawns(st, def, 2.6)
	sim.RunSpawns(st, def, 2.6)
	if sim.countBerries(st) > maxLiveBerry {
		t.Errorf("%d live berries, cap is %d", sim.countBerries(st), maxLiveBerry)
	}
}
