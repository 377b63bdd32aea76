package pokeapi

// Wire shapes of the PokéAPI v2 documents. Only the fields the viewer reads
// are declared; everything is converted to entities in parse.go.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonResponse struct {
	ID             *int          `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience *int          `json:"base_experience"`
	Species        namedResource `json:"species"`
	Types          []typeSlot    `json:"types"`
	PastTypes      []struct {
		Generation namedResource `json:"generation"`
		Types      []typeSlot    `json:"types"`
	} `json:"past_types"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Effort   int           `json:"effort"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Moves []struct {
		Move                namedResource `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int           `json:"level_learned_at"`
			MoveLearnMethod namedResource `json:"move_learn_method"`
			VersionGroup    namedResource `json:"version_group"`
		} `json:"version_group_details"`
	} `json:"moves"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

type speciesResponse struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Generation  *namedResource `json:"generation"`
	IsLegendary bool           `json:"is_legendary"`
	IsMythical  bool           `json:"is_mythical"`
	Genera      []struct {
		Genus    string        `json:"genus"`
		Language namedResource `json:"language"`
	} `json:"genera"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
	EvolutionChain    *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	Varieties []struct {
		IsDefault bool          `json:"is_default"`
		Pokemon   namedResource `json:"pokemon"`
	} `json:"varieties"`
}

type flavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
}

type effectEntry struct {
	ShortEffect string        `json:"short_effect"`
	Language    namedResource `json:"language"`
}

type moveResponse struct {
	Name              string            `json:"name"`
	Type              namedResource     `json:"type"`
	DamageClass       namedResource     `json:"damage_class"`
	Power             *int              `json:"power"`
	Accuracy          *int              `json:"accuracy"`
	PP                *int              `json:"pp"`
	EffectChance      *int              `json:"effect_chance"`
	EffectEntries     []effectEntry     `json:"effect_entries"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
}

type abilityResponse struct {
	Name              string            `json:"name"`
	EffectEntries     []effectEntry     `json:"effect_entries"`
	FlavorTextEntries []flavorTextEntry `json:"flavor_text_entries"`
}

type chainLink struct {
	Species          namedResource `json:"species"`
	EvolutionDetails []struct {
		Trigger  namedResource  `json:"trigger"`
		MinLevel *int           `json:"min_level"`
		Item     *namedResource `json:"item"`
	} `json:"evolution_details"`
	EvolvesTo []chainLink `json:"evolves_to"`
}

type evolutionChainResponse struct {
	ID    *int      `json:"id"`
	Chain chainLink `json:"chain"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}
