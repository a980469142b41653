package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#aaaaaa"})
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63"))

	highlightBg  = lipgloss.AdaptiveColor{Light: "#dadada", Dark: "#303030"}
	defaultEdge  = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#444444"}
	jsonKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	formatStyles = map[string]lipgloss.Style{
		"thought":     lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		"action":      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		"observation": lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"warn":        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"error":       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		"unknown":     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
)

// stepRampSize is the number of distinct step hues before they repeat.
const stepRampSize = 16

var stepRamp = buildStepRamp(stepRampSize)

func buildStepRamp(n int) []lipgloss.Color {
	ramp := make([]lipgloss.Color, 0, n)
	for _, c := range gamut.Blends(gamut.Hex("#5A56E0"), gamut.Hex("#EE6FF8"), n) {
		col, ok := colorful.MakeColor(c)
		if !ok {
			continue
		}
		ramp = append(ramp, lipgloss.Color(col.Hex()))
	}
	return ramp
}

// stepColor returns a stable color for a step index; hues wrap around the
// ramp.
func stepColor(step int) lipgloss.Color {
	n := len(stepRamp)
	return stepRamp[((step%n)+n)%n]
}

// styleFor folds style tokens into a lipgloss style: the terminal analogue
// of the class attribute. Format picks the foreground, the step bucket
// recolors the left edge, highlight sets the background.
func styleFor(tokens []string) lipgloss.Style {
	st := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(defaultEdge).
		PaddingLeft(1)
	for _, tok := range tokens {
		switch {
		case tok == "highlight":
			st = st.Background(highlightBg)
		case strings.HasPrefix(tok, "step"):
			if k, err := strconv.Atoi(strings.TrimPrefix(tok, "step")); err == nil {
				st = st.BorderForeground(stepColor(k))
			}
		default:
			if fs, ok := formatStyles[tok]; ok {
				st = st.Foreground(fs.GetForeground())
			}
		}
	}
	return st
}

var jsonKeyRegex = regexp.MustCompile(`"[^"\\]*"\s*:`)

// highlightJSONKeys colors JSON keys in pre-indented message bodies and
// leaves everything else untouched.
func highlightJSONKeys(s string) string {
	return jsonKeyRegex.ReplaceAllStringFunc(s, func(m string) string {
		return jsonKeyStyle.Render(m)
	})
}
