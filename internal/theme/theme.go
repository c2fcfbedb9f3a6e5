// Package theme provides color theming functionality for the gularen CLI.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines a complete color palette for the gularen CLI.
type Theme struct {
	Primary       lipgloss.Color // Main accent - headers, titles
	Secondary     lipgloss.Color // Secondary accent - cursors, selections
	Success       lipgloss.Color // Success states, checkmarks
	Error         lipgloss.Color // Errors
	Warning       lipgloss.Color // Caution indicators
	Muted         lipgloss.Color // Dim/subtle text
	Border        lipgloss.Color // Table borders, separators
	Header        lipgloss.Color // Section headers
	Selected      lipgloss.Color // Selected item foreground
	Highlight     lipgloss.Color // Selected item background
	GradientStart lipgloss.Color // Heading gradient start
	GradientEnd   lipgloss.Color // Heading gradient end
}

// Default theme matching current hardcoded colors in the codebase
var defaultTheme = &Theme{
	Primary:       lipgloss.Color("99"),  // Purple/violet for headers/titles
	Secondary:     lipgloss.Color("170"), // Pink for selections
	Success:       lipgloss.Color("42"),  // Green
	Error:         lipgloss.Color("196"), // Red
	Warning:       lipgloss.Color("3"),   // Yellow
	Muted:         lipgloss.Color("240"), // Dim gray
	Border:        lipgloss.Color("240"), // Dim gray
	Header:        lipgloss.Color("99"),  // Purple
	Selected:      lipgloss.Color("229"), // Light yellow foreground
	Highlight:     lipgloss.Color("57"),  // Purple background
	GradientStart: lipgloss.Color("99"),  // Purple
	GradientEnd:   lipgloss.Color("205"), // Pink
}

// Dark theme: high contrast on dark backgrounds, brighter colors
var darkTheme = &Theme{
	Primary:       lipgloss.Color("141"), // Bright purple
	Secondary:     lipgloss.Color("213"), // Bright pink
	Success:       lipgloss.Color("46"),  // Bright green
	Error:         lipgloss.Color("196"), // Bright red
	Warning:       lipgloss.Color("226"), // Bright yellow
	Muted:         lipgloss.Color("243"), // Medium gray
	Border:        lipgloss.Color("238"), // Dark gray border
	Header:        lipgloss.Color("141"), // Bright purple
	Selected:      lipgloss.Color("231"), // White foreground
	Highlight:     lipgloss.Color("61"),  // Bright purple background
	GradientStart: lipgloss.Color("141"), // Bright purple
	GradientEnd:   lipgloss.Color("213"), // Bright pink
}

// Light theme: optimized for light terminal backgrounds, darker accents
var lightTheme = &Theme{
	Primary:       lipgloss.Color("55"),  // Dark purple
	Secondary:     lipgloss.Color("125"), // Dark pink
	Success:       lipgloss.Color("28"),  // Dark green
	Error:         lipgloss.Color("160"), // Dark red
	Warning:       lipgloss.Color("136"), // Dark yellow/orange
	Muted:         lipgloss.Color("246"), // Light gray
	Border:        lipgloss.Color("250"), // Very light gray border
	Header:        lipgloss.Color("55"),  // Dark purple
	Selected:      lipgloss.Color("16"),  // Black foreground
	Highlight:     lipgloss.Color("189"), // Light purple background
	GradientStart: lipgloss.Color("55"),  // Dark purple
	GradientEnd:   lipgloss.Color("125"), // Dark pink
}

// Solarized theme: Solarized Dark palette colors
var solarizedTheme = &Theme{
	Primary:       lipgloss.Color("33"),  // Blue (base0)
	Secondary:     lipgloss.Color("125"), // Magenta
	Success:       lipgloss.Color("64"),  // Green
	Error:         lipgloss.Color("160"), // Red
	Warning:       lipgloss.Color("136"), // Yellow
	Muted:         lipgloss.Color("240"), // Base01
	Border:        lipgloss.Color("235"), // Base02
	Header:        lipgloss.Color("37"),  // Cyan
	Selected:      lipgloss.Color("230"), // Base3 (light)
	Highlight:     lipgloss.Color("235"), // Base02 (dark)
	GradientStart: lipgloss.Color("33"),  // Blue
	GradientEnd:   lipgloss.Color("125"), // Magenta
}

// Monokai theme: Monokai palette colors
var monokaiTheme = &Theme{
	Primary:       lipgloss.Color("141"), // Purple
	Secondary:     lipgloss.Color("197"), // Pink
	Success:       lipgloss.Color("148"), // Green
	Error:         lipgloss.Color("197"), // Pink/red
	Warning:       lipgloss.Color("208"), // Orange
	Muted:         lipgloss.Color("243"), // Gray
	Border:        lipgloss.Color("237"), // Dark gray
	Header:        lipgloss.Color("81"),  // Cyan/blue
	Selected:      lipgloss.Color("231"), // White
	Highlight:     lipgloss.Color("237"), // Dark gray background
	GradientStart: lipgloss.Color("141"), // Purple
	GradientEnd:   lipgloss.Color("197"), // Pink
}

// themes is the registry of all available themes
var themes = map[string]*Theme{
	"default":   defaultTheme,
	"dark":      darkTheme,
	"light":     lightTheme,
	"solarized": solarizedTheme,
	"monokai":   monokaiTheme,
}

// current holds the currently active theme
var current *Theme

// Get returns the theme with the given name.
// Returns an error if the theme does not exist.
func Get(name string) (*Theme, error) {
	theme, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}

	return theme, nil
}

// Load loads the theme with the given name as the current theme.
// Returns an error if the theme does not exist.
func Load(name string) error {
	theme, err := Get(name)
	if err != nil {
		return err
	}
	current = theme

	return nil
}

// Current returns the currently active theme.
// If no theme has been loaded, returns the default theme.
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}

	return current
}

// Available returns a sorted list of all available theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// HeadingGradient returns the color a heading at the given depth should
// render in, interpolating between the theme's GradientStart and
// GradientEnd in Lab space. depth is 0 for the shallowest heading and
// maxDepth-1 for the deepest; out-of-range depths are clamped to that
// span. Depth 0, and any maxDepth <= 1, returns GradientStart itself.
func (t *Theme) HeadingGradient(depth, maxDepth int) lipgloss.Color {
	if maxDepth <= 1 {
		return t.GradientStart
	}
	if depth < 0 {
		depth = 0
	}
	if depth >= maxDepth {
		depth = maxDepth - 1
	}
	if depth == 0 {
		return t.GradientStart
	}

	start, err := parseThemeColor(t.GradientStart)
	if err != nil {
		return t.GradientStart
	}
	end, err := parseThemeColor(t.GradientEnd)
	if err != nil {
		return t.GradientStart
	}

	ratio := float64(depth) / float64(maxDepth-1)
	blended := start.BlendLab(end, ratio)

	return lipgloss.Color(blended.Hex())
}

// parseThemeColor converts a lipgloss ANSI-256 color (this package only
// ever defines numeric codes) into a colorful.Color for blending.
func parseThemeColor(c lipgloss.Color) (colorful.Color, error) {
	code := 0
	if _, err := fmt.Sscanf(string(c), "%d", &code); err != nil {
		return colorful.Color{}, err
	}

	return ansi256ToRGB(code), nil
}

// ansi256ToRGB converts an ANSI 256 color code to an RGB triple so
// the 6x6x6 cube and grayscale ramp entries can be blended per heading
// depth.
func ansi256ToRGB(code int) colorful.Color {
	const (
		standardMax    = 16
		cubeStart      = 16
		cubeEnd        = 231
		grayscaleStart = 232
		cubeSize       = 6.0
		grayscaleSteps = 23.0
	)

	switch {
	case code < standardMax:
		return standardANSIColors[code]
	case code >= cubeStart && code <= cubeEnd:
		idx := code - cubeStart
		r := float64(idx/36) / cubeSize
		g := float64((idx%36)/6) / cubeSize
		b := float64(idx%6) / cubeSize

		return colorful.Color{R: r, G: g, B: b}
	case code >= grayscaleStart:
		gray := float64(code-grayscaleStart) / grayscaleSteps

		return colorful.Color{R: gray, G: gray, B: gray}
	default:
		return colorful.Color{R: 1, G: 1, B: 1}
	}
}

var standardANSIColors = [16]colorful.Color{
	{R: 0, G: 0, B: 0}, {R: 0.5, G: 0, B: 0}, {R: 0, G: 0.5, B: 0}, {R: 0.5, G: 0.5, B: 0},
	{R: 0, G: 0, B: 0.5}, {R: 0.5, G: 0, B: 0.5}, {R: 0, G: 0.5, B: 0.5}, {R: 0.75, G: 0.75, B: 0.75},
	{R: 0.5, G: 0.5, B: 0.5}, {R: 1, G: 0, B: 0}, {R: 0, G: 1, B: 0}, {R: 1, G: 1, B: 0},
	{R: 0, G: 0, B: 1}, {R: 1, G: 0, B: 1}, {R: 0, G: 1, B: 1}, {R: 1, G: 1, B: 1},
}
