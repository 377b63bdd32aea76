// Package pokemon contains the catalog records after they have been parsed
// at the fetch boundary, plus the display records built from them.
package pokemon

// LearnMethod is how a pokemon acquires a move in one release
type LearnMethod string

// Learn methods, in display priority order
const (
	LearnMethodLevelUp LearnMethod = "level-up"
	LearnMethodMachine LearnMethod = "machine"
	LearnMethodEgg     LearnMethod = "egg"
	LearnMethodTutor   LearnMethod = "tutor"
	LearnMethodOther   LearnMethod = "other"
)

// ParseLearnMethod maps a catalog learn method name onto a LearnMethod.
// Anything unrecognised ("stadium-surfing-pikachu", "form-change", ...) is other.
func ParseLearnMethod(name string) LearnMethod {
	switch LearnMethod(name) {
	case LearnMethodLevelUp, LearnMethodMachine, LearnMethodEgg, LearnMethodTutor:
		return LearnMethod(name)
	default:
		return LearnMethodOther
	}
}

// Priority orders methods for display: level-up first, other last
func (m LearnMethod) Priority() int {
	switch m {
	case LearnMethodLevelUp:
		return 0
	case LearnMethodMachine:
		return 1
	case LearnMethodEgg:
		return 2
	case LearnMethodTutor:
		return 3
	default:
		return 4
	}
}

// Label is the short column label for the method
func (m LearnMethod) Label() string {
	switch m {
	case LearnMethodLevelUp:
		return "Lv"
	case LearnMethodMachine:
		return "TM"
	case LearnMethodEgg:
		return "Egg"
	case LearnMethodTutor:
		return "Tutor"
	default:
		return "Other"
	}
}

// Ref is a list entry: national dex number and catalog name
type Ref struct {
	ID   int
	Name string
}

// Pokemon is the current-state record for one pokemon (or form)
type Pokemon struct {
	ID             int
	Name           string
	SpeciesName    string
	Height         int // decimetres
	Weight         int // hectograms
	BaseExperience int
	Types          []string
	PastTypes      []TypeOverride
	Abilities      []AbilitySlot
	Stats          []Stat
	Moves          []LearnableMove
	SpriteURL      string
	ArtworkURL     string
}

// TypeOverride holds the types a pokemon had before Epoch.
// Epoch is the first generation in which the current types apply.
type TypeOverride struct {
	Epoch int
	Types []string
}

// AbilitySlot is one current ability assignment. Slot is 1, 2 or 3 (hidden).
type AbilitySlot struct {
	Name     string
	IsHidden bool
	Slot     int
}

// ResolvedAbility is an ability as it applied in a viewed generation
type ResolvedAbility struct {
	Name     string
	IsHidden bool
}

// Stat is a base stat and the effort value it yields
type Stat struct {
	Name   string
	Base   int
	Effort int
}

// LearnableMove is a move together with how it is learned in each release
type LearnableMove struct {
	Name    string
	Details []LearnRecord
}

// LearnRecord is how a move is learned in one release
type LearnRecord struct {
	VersionGroup string
	Method       LearnMethod
	Level        int
}

// Species is the optional metadata shared by all forms of a pokemon
type Species struct {
	ID               int
	Name             string
	Generation       int // 0 when unknown
	IsLegendary      bool
	IsMythical       bool
	Genus            string
	FlavorText       string
	EvolutionChainID int
	Varieties        []string
}

// Move is the metadata for one move
type Move struct {
	Name        string
	Type        string
	DamageClass string
	Power       *int
	Accuracy    *int
	PP          int
	ShortEffect string
}

// Ability is the metadata for one ability
type Ability struct {
	Name        string
	ShortEffect string
}

// EvolutionChain is the evolution tree rooted at the base species
type EvolutionChain struct {
	ID   int
	Root *EvolutionNode
}

// EvolutionNode is one species in a chain and the condition to reach it
type EvolutionNode struct {
	Species   string
	Trigger   string
	MinLevel  int
	Item      string
	EvolvesTo []*EvolutionNode
}
