package game

import "github.com/farmtofeast/harvest-hustle/internal/level"

// Item is a live collectible on the field. SpawnedAt is sim-clock time;
// Lifetime of 0 means the item never expires on its own.
type Item struct {
	ID        uint64
	Kind      level.Kind
	X, Y      float64
	VX, VY    float64
	Method    level.Method
	SpawnedAt float64
	Lifetime  float64
}

// Expired reports whether the item's lifetime has run out at sim time now.
func (it *Item) Expired(now float64) bool {
	return it.Lifetime > 0 && now-it.SpawnedAt > it.Lifetime
}

// Animal lives for the whole level; it is never removed mid-level.
// EggTimer accumulates presence time for egg-laying chickens.
type Animal struct {
	ID       uint64
	Kind     level.AnimalKind
	X, Y     float64
	VX, VY   float64
	Behavior level.Behavior
	EggTimer float64
}

// Dangerous reports whether contact with this animal is penalized.
func (a *Animal) Dangerous() bool {
	return a.Behavior == level.BehaviorDanger
}

// Tree is transient scenery on tree-enabled levels. It hides after a
// visibility timeout or after being shaken, and is pruned shortly after.
type Tree struct {
	ID        uint64
	X, Y      float64
	Visible   bool
	SpawnedAt float64
	Fruit     level.Kind
}
