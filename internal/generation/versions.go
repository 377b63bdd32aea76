package generation

// VersionGroup is a catalog release identifier and the generation it belongs to
type VersionGroup struct {
	Name       string
	Generation int
	// Order is the chronological position of the release in the table
	Order int
}

// versionGroups lists every known release in chronological order
var versionGroups = []VersionGroup{
	{Name: "red-green-japan", Generation: 1},
	{Name: "red-blue", Generation: 1},
	{Name: "blue-japan", Generation: 1},
	{Name: "yellow", Generation: 1},
	{Name: "gold-silver", Generation: 2},
	{Name: "crystal", Generation: 2},
	{Name: "ruby-sapphire", Generation: 3},
	{Name: "colosseum", Generation: 3},
	{Name: "firered-leafgreen", Generation: 3},
	{Name: "emerald", Generation: 3},
	{Name: "xd", Generation: 3},
	{Name: "diamond-pearl", Generation: 4},
	{Name: "platinum", Generation: 4},
	{Name: "heartgold-soulsilver", Generation: 4},
	{Name: "black-white", Generation: 5},
	{Name: "black-2-white-2", Generation: 5},
	{Name: "x-y", Generation: 6},
	{Name: "omega-ruby-alpha-sapphire", Generation: 6},
	{Name: "sun-moon", Generation: 7},
	{Name: "ultra-sun-ultra-moon", Generation: 7},
	{Name: "lets-go-pikachu-lets-go-eevee", Generation: 7},
	{Name: "sword-shield", Generation: 8},
	{Name: "the-isle-of-armor", Generation: 8},
	{Name: "the-crown-tundra", Generation: 8},
	{Name: "brilliant-diamond-and-shining-pearl", Generation: 8},
	{Name: "legends-arceus", Generation: 8},
	{Name: "scarlet-violet", Generation: 9},
	{Name: "the-teal-mask", Generation: 9},
	{Name: "the-indigo-disk", Generation: 9},
}

// latestVersionGroup is the representative main-series release per generation
var latestVersionGroup = [Max]string{
	"yellow",
	"crystal",
	"emerald",
	"heartgold-soulsilver",
	"black-2-white-2",
	"omega-ruby-alpha-sapphire",
	"ultra-sun-ultra-moon",
	"sword-shield",
	"scarlet-violet",
}

var versionIndex = func() map[string]VersionGroup {
	idx := make(map[string]VersionGroup, len(versionGroups))
	for i, vg := range versionGroups {
		vg.Order = i
		idx[vg.Name] = vg
	}
	return idx
}()

// LookupVersionGroup returns the table entry for name
func LookupVersionGroup(name string) (VersionGroup, bool) {
	vg, ok := versionIndex[name]
	return vg, ok
}

// GenerationOf returns the generation a release belongs to. Unknown
// releases are assumed to be the latest generation.
func GenerationOf(versionGroup string) int {
	if vg, ok := versionIndex[versionGroup]; ok {
		return vg.Generation
	}
	return Latest
}

// IsAtOrBefore reports whether versionGroup belongs to maxGeneration or earlier
func IsAtOrBefore(versionGroup string, maxGeneration int) bool {
	return GenerationOf(versionGroup) <= maxGeneration
}

// LatestVersionGroup returns the representative release for gen
func LatestVersionGroup(gen int) (string, bool) {
	if !Valid(gen) {
		return "", false
	}
	return latestVersionGroup[gen-1], true
}

// IsRepresentative reports whether versionGroup is its generation's
// representative release
func IsRepresentative(versionGroup string) bool {
	latest, ok := LatestVersionGroup(GenerationOf(versionGroup))
	return ok && latest == versionGroup
}

// VersionGroups returns a copy of the release table in chronological order
func VersionGroups() []VersionGroup {
	out := make([]VersionGroup, len(versionGroups))
	for i, vg := range versionGroups {
		vg.Order = i
		out[i] = vg
	}
	return out
}
