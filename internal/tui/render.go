package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
	"github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex"
)

const (
	statBarWidth = 24
	maxBaseStat  = 255
)

// SpritePlaceholder is shown where the sprite could not be rendered
const SpritePlaceholder = "(sprite unavailable)"

func displayName(slug string) string {
	return pokemon.DisplayName(slug)
}

func dexNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// RenderInfo renders the detail page for a resolved pokemon. sprite is
// placed above the text when not empty.
func RenderInfo(p *pokemon.DisplayPokemon, sprite string) string {
	if p == nil {
		return ""
	}

	var b strings.Builder

	if sprite != "" {
		b.WriteString(sprite)
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render(dexNumber(p.ID) + " " + p.DisplayName))
	if p.Genus != "" {
		b.WriteString("  " + subtleStyle.Render(p.Genus))
	}
	if p.IsLegendary {
		b.WriteString("  " + generationStyle.Render("Legendary"))
	}
	if p.IsMythical {
		b.WriteString("  " + generationStyle.Render("Mythical"))
	}
	b.WriteString("\n")

	badges := make([]string, len(p.Types))
	for i, t := range p.Types {
		badges[i] = typeBadge(t)
	}
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n")

	viewed := "current data"
	if p.Generation > 0 {
		viewed = "as of " + generation.Label(p.Generation)
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Showing %s, introduced in %s",
		viewed, generation.Label(p.IntroducedIn))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Height %s   Weight %s\n", p.Height, p.Weight))

	b.WriteString(sectionStyle.Render("Abilities"))
	b.WriteString("\n")
	for _, a := range p.Abilities {
		name := a.DisplayName
		if a.IsHidden {
			name += " (hidden)"
		}
		line := "  " + name
		if a.Description != "" {
			line += subtleStyle.Render(": " + a.Description)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(sectionStyle.Render("Base stats"))
	b.WriteString("\n")
	for _, st := range p.Stats {
		b.WriteString(fmt.Sprintf("  %-8s %3d %s\n", st.Label, st.Base, statBar(st.Base)))
	}
	b.WriteString(fmt.Sprintf("  %-8s %3d\n", "Total", p.StatTotal))
	b.WriteString(fmt.Sprintf("  EV yield: %s\n", p.EVYield))

	if m := p.Matchups; m != nil {
		b.WriteString(sectionStyle.Render("Type matchups"))
		b.WriteString("\n")
		writeMatchups(&b, "Weak to", m.Weaknesses)
		writeMatchups(&b, "Resists", m.Resistances)
		writeMatchups(&b, "Immune to", m.Immunities)
	}

	if p.FlavorText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Italic(true).Render(p.FlavorText))
		b.WriteString("\n")
	}

	return b.String()
}

func writeMatchups(b *strings.Builder, label string, matchups []pokemon.Matchup) {
	if len(matchups) == 0 {
		return
	}
	parts := make([]string, len(matchups))
	for i, m := range matchups {
		parts[i] = displayName(m.Type) + " " + formatMultiplier(m.Multiplier)
	}
	fmt.Fprintf(b, "  %-10s %s\n", label+":", strings.Join(parts, ", "))
}

func formatMultiplier(m float64) string {
	return "x" + strconv.FormatFloat(m, 'g', -1, 64)
}

func statBar(base int) string {
	n := base * statBarWidth / maxBaseStat
	if n < 1 && base > 0 {
		n = 1
	}
	return statBarStyle.Render(strings.Repeat("█", n))
}

// RenderMoves renders a resolved move list as a table
func RenderMoves(out *pokedex.GetMovesOutput) string {
	if out == nil {
		return ""
	}
	if len(out.Moves) == 0 {
		return subtleStyle.Render("No moves learnable in " + generation.Label(out.Generation) + ".")
	}

	rows := make([][]string, len(out.Moves))
	for i, m := range out.Moves {
		rows[i] = []string{
			methodColumn(m),
			m.DisplayName,
			displayName(m.Type),
			displayName(m.Category),
			optionalInt(m.Power),
			optionalInt(m.Accuracy),
			strconv.Itoa(m.PP),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("How", "Move", "Type", "Cat", "Pow", "Acc", "PP").
		Rows(rows...)

	return subtleStyle.Render("Moves as of "+generation.Label(out.Generation)) + "\n" + t.String()
}

func methodColumn(m pokemon.MoveRecord) string {
	if m.Method == pokemon.LearnMethodLevelUp {
		return fmt.Sprintf("%s %d", m.Method.Label(), m.Level)
	}
	return m.Method.Label()
}

func optionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// RenderEvolution renders a flattened evolution chain as an indented tree
func RenderEvolution(out *pokedex.GetEvolutionChainOutput) string {
	if out == nil {
		return ""
	}
	if len(out.Stages) <= 1 {
		return subtleStyle.Render("Does not evolve.")
	}

	var b strings.Builder
	for _, st := range out.Stages {
		indent := strings.Repeat("  ", st.Depth)
		if st.Depth == 0 {
			b.WriteString(titleStyle.Render(st.DisplayName))
			b.WriteString("\n")
			continue
		}
		b.WriteString(indent + "└ " + st.DisplayName)
		if cond := evolutionCondition(st); cond != "" {
			b.WriteString(subtleStyle.Render(" (" + cond + ")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func evolutionCondition(st pokemon.EvolutionStage) string {
	var parts []string
	if st.MinLevel > 0 {
		parts = append(parts, fmt.Sprintf("level %d", st.MinLevel))
	}
	if st.Item != "" {
		parts = append(parts, displayName(st.Item))
	}
	if len(parts) == 0 && st.Trigger != "" {
		parts = append(parts, displayName(st.Trigger))
	}
	return strings.Join(parts, ", ")
}

// RenderVersionTable renders the version group to generation table
func RenderVersionTable() string {
	groups := generation.VersionGroups()
	rows := make([][]string, len(groups))
	for i, vg := range groups {
		rows[i] = []string{vg.Name, generation.Label(vg.Generation)}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Version group", "Generation").
		Rows(rows...).
		String()
}
