package pokemon

import (
	"fmt"
	"strings"
)

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "Atk",
	"defense":         "Def",
	"special-attack":  "Sp. Atk",
	"special-defense": "Sp. Def",
	"speed":           "Speed",
}

// DisplayName turns a catalog slug into a title, e.g. "mr-mime" -> "Mr Mime"
func DisplayName(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == ' ' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatHeight renders decimetres as metres
func FormatHeight(decimetres int) string {
	return fmt.Sprintf("%.1f m", float64(decimetres)/10)
}

// FormatWeight renders hectograms as kilograms
func FormatWeight(hectograms int) string {
	return fmt.Sprintf("%.1f kg", float64(hectograms)/10)
}

// StatLabel returns the short label for a stat name
func StatLabel(name string) string {
	if label, ok := statLabels[name]; ok {
		return label
	}
	return DisplayName(name)
}

// FormatEVYield joins the non-zero effort values, e.g. "1 Sp. Atk, 1 Speed"
func FormatEVYield(stats []Stat) string {
	var parts []string
	for _, st := range stats {
		if st.Effort > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", st.Effort, StatLabel(st.Name)))
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}
