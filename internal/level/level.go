// Package level provides the immutable level catalog: typed level
// definitions, YAML loading with an embedded default catalog, and the
// difficulty presets that set the per-level time limit.
package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RotateNeedDefault is the encoder rotation count required to collect a
// rotate-method item when a level does not override it.
const RotateNeedDefault = 5

// ViewMode selects the play-area layout of a level.
type ViewMode int

const (
	// ViewSide is the lateral 2D layout: items fall toward a ground line.
	ViewSide ViewMode = iota
	// ViewTopDown is the bird's-eye arena: everything bounces inside a border.
	ViewTopDown
)

var viewNames = map[ViewMode]string{
	ViewSide:    "side",
	ViewTopDown: "topdown",
}

func (v ViewMode) String() string { return viewNames[v] }

// UnmarshalYAML decodes a view mode from its string form.
func (v *ViewMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for mode, name := range viewNames {
		if name == s {
			*v = mode
			return nil
		}
	}
	return fmt.Errorf("level: unknown view mode %q", s)
}

// Method is the input modality required to collect an ingredient kind.
type Method int

const (
	MethodTilt Method = iota
	MethodShake
	MethodTouch
	MethodRotate
	MethodTree
)

var methodNames = map[Method]string{
	MethodTilt:   "tilt",
	MethodShake:  "shake",
	MethodTouch:  "touch",
	MethodRotate: "rotate",
	MethodTree:   "tree",
}

func (m Method) String() string { return methodNames[m] }

// UnmarshalYAML decodes a collection method from its string form.
func (m *Method) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for method, name := range methodNames {
		if name == s {
			*m = method
			return nil
		}
	}
	return fmt.Errorf("level: unknown collection method %q", s)
}

// Kind is an ingredient kind. The set is closed: a level may only require
// kinds from this enumeration, and collected/needed counts are keyed by it.
type Kind int

const (
	Egg Kind = iota
	Milk
	Wheat
	Dough
	Bacon
	Tomato
	Berry
	Honey
	ChickenMeat
	DuckMeat
	Fish
	Lemon
	Carrot
	Potato
	Cheese
	TurkeyMeat
	Cranberry
	Shell
	Seaweed
	LambMeat
	Herbs
	Garlic
	Grapes
)

var kindNames = map[Kind]string{
	Egg:         "egg",
	Milk:        "milk",
	Wheat:       "wheat",
	Dough:       "dough",
	Bacon:       "bacon",
	Tomato:      "tomato",
	Berry:       "berry",
	Honey:       "honey",
	ChickenMeat: "chicken",
	DuckMeat:    "duck",
	Fish:        "fish",
	Lemon:       "lemon",
	Carrot:      "carrot",
	Potato:      "potato",
	Cheese:      "cheese",
	TurkeyMeat:  "turkey",
	Cranberry:   "cranberry",
	Shell:       "shell",
	Seaweed:     "seaweed",
	LambMeat:    "lamb",
	Herbs:       "herbs",
	Garlic:      "garlic",
	Grapes:      "grapes",
}

func (k Kind) String() string { return kindNames[k] }

// UnmarshalYAML decodes an ingredient kind from its string form.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for kind, name := range kindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("level: unknown ingredient kind %q", s)
}

// AnimalKind identifies a roaming animal species.
type AnimalKind int

const (
	Chicken AnimalKind = iota
	Cow
	Pig
	Bee
	Duck
	Turkey
	Lamb
	Shark
)

var animalNames = map[AnimalKind]string{
	Chicken: "chicken",
	Cow:     "cow",
	Pig:     "pig",
	Bee:     "bee",
	Duck:    "duck",
	Turkey:  "turkey",
	Lamb:    "lamb",
	Shark:   "shark",
}

func (a AnimalKind) String() string { return animalNames[a] }

// UnmarshalYAML decodes an animal kind from its string form.
func (a *AnimalKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for kind, name := range animalNames {
		if name == s {
			*a = kind
			return nil
		}
	}
	return fmt.Errorf("level: unknown animal kind %q", s)
}

// Behavior selects an animal's movement mode.
type Behavior int

const (
	// BehaviorTop parks the animal on the upper line of a side-view level.
	BehaviorTop Behavior = iota
	// BehaviorGround parks the animal on the ground line of a side-view level.
	BehaviorGround
	// BehaviorRoam wanders the topdown arena at normal speed.
	BehaviorRoam
	// BehaviorFast wanders at double speed and never lays eggs.
	BehaviorFast
	// BehaviorDanger marks a hazard; contact penalizes instead of collecting.
	BehaviorDanger
)

var behaviorNames = map[Behavior]string{
	BehaviorTop:    "top",
	BehaviorGround: "ground",
	BehaviorRoam:   "run",
	BehaviorFast:   "fast",
	BehaviorDanger: "danger",
}

func (b Behavior) String() string { return behaviorNames[b] }

// UnmarshalYAML decodes a behavior from its string form.
func (b *Behavior) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for behavior, name := range behaviorNames {
		if name == s {
			*b = behavior
			return nil
		}
	}
	return fmt.Errorf("level: unknown animal behavior %q", s)
}

// CookKind selects the post-collection cooking mini-game.
type CookKind int

const (
	// CookNone skips the cooking phase entirely.
	CookNone CookKind = iota
	// CookSingle is one button-hold phase.
	CookSingle
	// CookDouble is a button-hold phase followed by a rotation phase.
	CookDouble
)

var cookNames = map[CookKind]string{
	CookNone:   "none",
	CookSingle: "button",
	CookDouble: "double",
}

func (c CookKind) String() string { return cookNames[c] }

// UnmarshalYAML decodes a cook kind from its string form; an absent field
// stays CookNone.
func (c *CookKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for kind, name := range cookNames {
		if name == s {
			*c = kind
			return nil
		}
	}
	return fmt.Errorf("level: unknown cooking kind %q", s)
}

// Ingredient is one requirement of a level: collect Need items of Kind using
// Method.
type Ingredient struct {
	Kind   Kind   `yaml:"kind"`
	Need   int    `yaml:"need"`
	Method Method `yaml:"method"`
}

// AnimalSpec places one animal in a level's roster.
type AnimalSpec struct {
	Kind     AnimalKind `yaml:"kind"`
	Behavior Behavior   `yaml:"behavior"`
}

// Definition is one immutable level. Flags default to false / zero when
// absent from the catalog file.
type Definition struct {
	Name        string       `yaml:"name"`
	View        ViewMode     `yaml:"view"`
	Ingredients []Ingredient `yaml:"ingredients"`
	Dish        string       `yaml:"dish"`
	Animals     []AnimalSpec `yaml:"animals"`

	Waves         bool `yaml:"waves"`
	Trees         bool `yaml:"trees"`
	BerrySpawn    bool `yaml:"berry_spawn"`
	FastSpawn     bool `yaml:"fast_spawn"`
	SharkEatsFish bool `yaml:"shark_eats_fish"`

	// RotateNeed overrides the rotation count for rotate-method items;
	// 0 means RotateNeedDefault.
	RotateNeed int `yaml:"rotate_need"`

	Cooking   CookKind `yaml:"cooking"`
	CookName  string   `yaml:"cook_name"`
	CookName2 string   `yaml:"cook_name2"`
}

// RotateThreshold returns the effective rotation count for this level.
func (d Definition) RotateThreshold() int {
	if d.RotateNeed > 0 {
		return d.RotateNeed
	}
	return RotateNeedDefault
}

// Needs returns the required-count map for this level, keyed by kind.
func (d Definition) Needs() map[Kind]int {
	needs := make(map[Kind]int, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		needs[ing.Kind] += ing.Need
	}
	return needs
}

// KindsByMethod returns the level's ingredient kinds collected via the given
// method, in catalog order.
func (d Definition) KindsByMethod(m Method) []Kind {
	var kinds []Kind
	for _, ing := range d.Ingredients {
		if ing.Method == m {
			kinds = append(kinds, ing.Kind)
		}
	}
	return kinds
}
