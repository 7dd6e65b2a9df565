package game

import (
	"math"

	"github.com/farmtofeast/harvest-hustle/internal/core"
	"github.com/farmtofeast/harvest-hustle/internal/level"
)

// Interaction radii, in device units.
const (
	catchRadius  = 12
	touchRadius  = 15
	rotateRadius = 15
	treeRadius   = 18
	dangerRadius = 12
	beeRadius    = 18

	// TouchTime is the continuous dwell required to collect from an animal.
	TouchTime = 0.6

	// Distance a dangerous animal pushes the player on contact.
	dangerPush = 15

	pigSpeedup = 1.3
)

// Event is one observable outcome of an interaction check; the machine maps
// events to audio cues and indicator patterns.
type Event int

const (
	EventCollect Event = iota
	EventPenalty
)

// Engine evaluates player-vs-entity rules once per tick against the current
// input snapshot. All proximity checks use Euclidean distance. The engine
// mutates State (collected counts, locks, penalty, player pushback) and
// awards points through the ScoreKeeper; it holds no state of its own.
type Engine struct {
	Scores ScoreKeeper
}

// Check runs every interaction rule for this tick and returns the events that
// fired, in rule order.
func (e *Engine) Check(st *State, def level.Definition, in core.Input) []Event {
	var events []Event
	events = e.checkCatch(st, in.Shake(), events)
	events = e.checkTouch(st, events)
	events = e.checkRotate(st, def, in.RotationDelta, events)
	events = e.checkTreeShake(st, in.Shake(), events)
	events = e.checkDanger(st, def, events)
	events = e.checkBeeShake(st, in.Shake(), events)
	return events
}

// checkCatch collects tilt items unconditionally and shake items when the
// shake flag is set, within the catch radius. Consumed items are dropped in
// a single filter pass after the scan.
func (e *Engine) checkCatch(st *State, shake bool, events []Event) []Event {
	caught := make(map[uint64]bool)

	for i := range st.Items {
		it := &st.Items[i]
		if core.Dist(st.PX, st.PY, it.X, it.Y) >= catchRadius {
			continue
		}
		switch it.Method {
		case level.MethodTilt:
			caught[it.ID] = true
			st.Collected[it.Kind]++
			e.Scores.Award(st, PointsTilt)
			events = append(events, EventCollect)
		case level.MethodShake:
			if shake {
				caught[it.ID] = true
				st.Collected[it.Kind]++
				e.Scores.Award(st, PointsShake)
				events = append(events, EventCollect)
			}
		}
	}

	if len(caught) > 0 {
		kept := st.Items[:0]
		for i := range st.Items {
			if !caught[st.Items[i].ID] {
				kept = append(kept, st.Items[i])
			}
		}
		st.Items = kept
	}
	return events
}

// touchYield maps an animal kind to the ingredient a completed dwell gives.
var touchYield = map[level.AnimalKind]level.Kind{
	level.Cow:     level.Milk,
	level.Pig:     level.Bacon,
	level.Bee:     level.Honey,
	level.Chicken: level.ChickenMeat,
	level.Duck:    level.DuckMeat,
	level.Turkey:  level.TurkeyMeat,
	level.Lamb:    level.LambMeat,
}

// checkTouch runs the dwell lock on the nearest eligible animal in range.
// Acquiring or switching a target restarts the dwell; leaving the locked
// animal's radius unlocks without collecting, so re-entry restarts the timer
// from zero.
func (e *Engine) checkTouch(st *State, events []Event) []Event {
	var nearest *Animal
	best := math.MaxFloat64
	for i := range st.Animals {
		a := &st.Animals[i]
		if a.Dangerous() {
			continue
		}
		d := core.Dist(st.PX, st.PY, a.X, a.Y)
		if d < touchRadius && d < best {
			best = d
			nearest = a
		}
	}

	if nearest == nil {
		st.TouchTarget = 0
		return events
	}

	if st.TouchTarget != nearest.ID {
		st.TouchTarget = nearest.ID
		st.TouchStart = st.Now
		return events
	}

	if st.Now-st.TouchStart >= TouchTime {
		if kind, ok := touchYield[nearest.Kind]; ok {
			st.Collected[kind]++
		}
		if nearest.Kind == level.Pig {
			nearest.VX *= pigSpeedup
			nearest.VY *= pigSpeedup
		}
		e.Scores.Award(st, PointsTouch)
		events = append(events, EventCollect)
		st.TouchTarget = 0
		st.TouchStart = st.Now
	}
	return events
}

// checkRotate accumulates encoder movement against the locked rotate item.
// Switching targets resets the accumulator; no target in range clears the
// lock even on rotation-less ticks.
func (e *Engine) checkRotate(st *State, def level.Definition, rot int, events []Event) []Event {
	threshold := def.RotateThreshold()

	for i := range st.Items {
		it := &st.Items[i]
		if it.Method != level.MethodRotate {
			continue
		}
		if core.Dist(st.PX, st.PY, it.X, it.Y) >= rotateRadius {
			continue
		}

		if st.RotateTarget != it.ID {
			st.RotateTarget = it.ID
			st.RotateCount = 0
		}

		if rot < 0 {
			rot = -rot
		}
		st.RotateCount += rot
		if st.RotateCount >= threshold {
			st.Collected[it.Kind]++
			e.Scores.Award(st, PointsRotate)
			events = append(events, EventCollect)
			st.RotateTarget = 0
			st.RotateCount = 0

			id := it.ID
			kept := st.Items[:0]
			for j := range st.Items {
				if st.Items[j].ID != id {
					kept = append(kept, st.Items[j])
				}
			}
			st.Items = kept
		}
		return events
	}

	st.RotateTarget = 0
	st.RotateCount = 0
	return events
}

// checkTreeShake harvests the fruit of every visible tree within range when
// the shake flag is set. A shaken tree hides immediately; pruning removes it
// later.
func (e *Engine) checkTreeShake(st *State, shake bool, events []Event) []Event {
	if !shake {
		return events
	}

	for i := range st.Trees {
		t := &st.Trees[i]
		if !t.Visible {
			continue
		}
		if core.Dist(st.PX, st.PY, t.X, t.Y) < treeRadius {
			st.Collected[t.Fruit]++
			t.Visible = false
			e.Scores.Award(st, PointsShake)
			events = append(events, EventCollect)
		}
	}
	return events
}

// checkDanger handles contact with dangerous animals: on shark-eats-fish
// levels a held fish is stolen, otherwise the penalty count goes up. Either
// way the player is shoved away horizontally.
func (e *Engine) checkDanger(st *State, def level.Definition, events []Event) []Event {
	for i := range st.Animals {
		a := &st.Animals[i]
		if !a.Dangerous() {
			continue
		}
		if core.Dist(st.PX, st.PY, a.X, a.Y) >= dangerRadius {
			continue
		}

		if def.SharkEatsFish && st.Collected[level.Fish] > 0 {
			st.Collected[level.Fish]--
		} else {
			st.Penalty++
		}
		events = append(events, EventPenalty)

		if st.PX < a.X {
			st.PX = core.ClampF(st.PX-dangerPush, itemMinX, itemMaxX)
		} else {
			st.PX = core.ClampF(st.PX+dangerPush, itemMinX, itemMaxX)
		}
	}
	return events
}

// checkBeeShake penalizes shaking close to a bee, on top of whatever the
// other shake checks did this tick.
func (e *Engine) checkBeeShake(st *State, shake bool, events []Event) []Event {
	if !shake {
		return events
	}

	for i := range st.Animals {
		a := &st.Animals[i]
		if a.Kind != level.Bee {
			continue
		}
		if core.Dist(st.PX, st.PY, a.X, a.Y) < beeRadius {
			st.Penalty++
			events = append(events, EventPenalty)
		}
	}
	return events
}
