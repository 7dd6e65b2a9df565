package level

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Catalog.Get for an index outside
// [0, Count).
var ErrIndexOutOfRange = errors.New("level: index out of range")

// Catalog is the read-only ordered sequence of level definitions.
type Catalog struct {
	defs []Definition
}

// NewCatalog validates the definitions and wraps them in a catalog.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, errors.New("level: catalog is empty")
	}
	for i, d := range defs {
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i+1, d.Name, err)
		}
	}
	return &Catalog{defs: defs}, nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.defs)
}

// Get returns the definition at index, or ErrIndexOutOfRange.
func (c *Catalog) Get(index int) (Definition, error) {
	if index < 0 || index >= len(c.defs) {
		return Definition{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.defs))
	}
	return c.defs[index], nil
}

func validate(d Definition) error {
	if d.Name == "" {
		return errors.New("missing name")
	}
	if len(d.Ingredients) == 0 {
		return errors.New("no ingredients")
	}
	for _, ing := range d.Ingredients {
		if ing.Need <= 0 {
			return fmt.Errorf("ingredient %s: required count must be positive, got %d", ing.Kind, ing.Need)
		}
		if _, ok := methodNames[ing.Method]; !ok {
			return fmt.Errorf("ingredient %s: invalid method", ing.Kind)
		}
		if _, ok := kindNames[ing.Kind]; !ok {
			return errors.New("invalid ingredient kind")
		}
	}
	for _, a := range d.Animals {
		if _, ok := animalNames[a.Kind]; !ok {
			return errors.New("invalid animal kind")
		}
		if _, ok := behaviorNames[a.Behavior]; !ok {
			return fmt.Errorf("animal %s: invalid behavior", a.Kind)
		}
		if d.View == ViewSide && a.Behavior != BehaviorTop && a.Behavior != BehaviorGround {
			return fmt.Errorf("animal %s: side view animals must be top or ground", a.Kind)
		}
	}
	if _, ok := cookNames[d.Cooking]; !ok {
		return errors.New("invalid cooking kind")
	}
	if d.RotateNeed < 0 {
		return errors.New("rotate_need must not be negative")
	}
	if d.Trees && len(d.KindsByMethod(MethodTree)) == 0 {
		return errors.New("trees enabled but no tree-method ingredient")
	}
	return nil
}
