package pokemon

// DisplayPokemon is a pokemon resolved for a viewed generation, ready to render
type DisplayPokemon struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Generation   int    `json:"generation"` // viewed generation, 0 when showing current data
	IntroducedIn int    `json:"introduced_in"`

	Types     []string         `json:"types,omitempty"`
	Abilities []DisplayAbility `json:"abilities,omitempty"`

	Height    string        `json:"height"`
	Weight    string        `json:"weight"`
	Stats     []DisplayStat `json:"stats,omitempty"`
	StatTotal int           `json:"stat_total"`
	EVYield   string        `json:"ev_yield"`

	IsLegendary      bool   `json:"is_legendary"`
	IsMythical       bool   `json:"is_mythical"`
	Genus            string `json:"genus"`
	FlavorText       string `json:"flavor_text"`
	EvolutionChainID int    `json:"evolution_chain_id"`

	SpriteURL  string `json:"sprite_url"`
	ArtworkURL string `json:"artwork_url"`

	Matchups *TypeMatchups `json:"matchups,omitempty"`
}

// DisplayAbility is an ability line on the detail view
type DisplayAbility struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsHidden    bool   `json:"is_hidden"`
	Description string `json:"description"`
}

// DisplayStat is one base stat row
type DisplayStat struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Base   int    `json:"base"`
	Effort int    `json:"effort"`
}

// MoveRecord is a learnable move resolved for a generation and enriched with
// its metadata
type MoveRecord struct {
	Name         string      `json:"name"`
	DisplayName  string      `json:"display_name"`
	Method       LearnMethod `json:"method"`
	Level        int         `json:"level"`
	VersionGroup string      `json:"version_group"`
	Type         string      `json:"type"`
	Category     string      `json:"category"`
	Power        *int        `json:"power,omitempty"`
	Accuracy     *int        `json:"accuracy,omitempty"`
	PP           int         `json:"pp"`
	Description  string      `json:"description"`
}

// TypeMatchups lists the damage multipliers a type combination takes
type TypeMatchups struct {
	Weaknesses  []Matchup `json:"weaknesses,omitempty"`
	Resistances []Matchup `json:"resistances,omitempty"`
	Immunities  []Matchup `json:"immunities,omitempty"`
}

// Matchup is one attacking type and its multiplier against the defender
type Matchup struct {
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
}

// EvolutionStage is one flattened entry of an evolution chain
type EvolutionStage struct {
	Depth       int    `json:"depth"`
	Species     string `json:"species"`
	DisplayName string `json:"display_name"`
	Trigger     string `json:"trigger"`
	MinLevel    int    `json:"min_level"`
	Item        string `json:"item"`
}
