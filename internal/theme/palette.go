package theme

import (
	"fmt"
	"strings"
)

// Kind names a built-in color scheme, or Custom for a caller-supplied one.
type Kind int

const (
	Light Kind = iota
	Dark
	Blue
	Green
	Purple
	Custom
)

var kindNames = []string{"Light", "Dark", "Blue", "Green", "Purple", "Custom"}

// cycleOrder excludes Custom: it only becomes active through SetCustom.
var cycleOrder = []Kind{Light, Dark, Blue, Green, Purple}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a theme name case-insensitively.
func ParseKind(name string) (Kind, error) {
	trimmed := strings.TrimSpace(name)
	for i, n := range kindNames {
		if strings.EqualFold(n, trimmed) {
			return Kind(i), nil
		}
	}
	return Light, fmt.Errorf("unknown theme %q", name)
}

// Names returns the selectable built-in theme names.
func Names() []string {
	names := make([]string, len(cycleOrder))
	for i, k := range cycleOrder {
		names[i] = k.String()
	}
	return names
}

// Next returns the built-in theme after k. Custom and unknown kinds restart
// the cycle at Light.
func Next(k Kind) Kind {
	for i, c := range cycleOrder {
		if c == k {
			return cycleOrder[(i+1)%len(cycleOrder)]
		}
	}
	return cycleOrder[0]
}

// Palette is a full color scheme as hex strings.
type Palette struct {
	Primary       string
	Secondary     string
	Background    string
	Surface       string
	OnPrimary     string
	OnSecondary   string
	OnBackground  string
	OnSurface     string
	Error         string
	Warning       string
	Success       string
	Info          string
	TextPrimary   string
	TextSecondary string
	Border        string
	Disabled      string
}

func builtin(k Kind) (Palette, bool) {
	switch k {
	case Light:
		return lightPalette(), true
	case Dark:
		return darkPalette(), true
	case Blue:
		return bluePalette(), true
	case Green:
		return greenPalette(), true
	case Purple:
		return purplePalette(), true
	default:
		return Palette{}, false
	}
}

func lightPalette() Palette {
	return Palette{
		Primary:       "#3f51b5", // indigo
		Secondary:     "#ffc107", // amber
		Background:    "#fafafa",
		Surface:       "#ffffff",
		OnPrimary:     "#ffffff",
		OnSecondary:   "#000000",
		OnBackground:  "#212529",
		OnSurface:     "#212529",
		Error:         "#f44336",
		Warning:       "#ff9800",
		Success:       "#4caf50",
		Info:          "#2196f3",
		TextPrimary:   "#212529",
		TextSecondary: "#6c757d",
		Border:        "#dee2e6",
		Disabled:      "#adb5bd",
	}
}

func darkPalette() Palette {
	return Palette{
		Primary:       "#7986cb",
		Secondary:     "#ffc107",
		Background:    "#121212",
		Surface:       "#212529",
		OnPrimary:     "#ffffff",
		OnSecondary:   "#000000",
		OnBackground:  "#f8f9fa",
		OnSurface:     "#f8f9fa",
		Error:         "#f44336",
		Warning:       "#ff9800",
		Success:       "#4caf50",
		Info:          "#2196f3",
		TextPrimary:   "#f8f9fa",
		TextSecondary: "#adb5bd",
		Border:        "#495057",
		Disabled:      "#6c757d",
	}
}

func bluePalette() Palette {
	return Palette{
		Primary:       "#0d6efd",
		Secondary:     "#6c757d",
		Background:    "#f0f8ff", // aliceblue
		Surface:       "#ffffff",
		OnPrimary:     "#ffffff",
		OnSecondary:   "#ffffff",
		OnBackground:  "#212529",
		OnSurface:     "#212529",
		Error:         "#dc3545",
		Warning:       "#ffc107",
		Success:       "#198754",
		Info:          "#0dcaf0",
		TextPrimary:   "#212529",
		TextSecondary: "#6c757d",
		Border:        "#b6d4fe", // primary at low alpha, flattened on white
		Disabled:      "#adb5bd",
	}
}

func greenPalette() Palette {
	return Palette{
		Primary:       "#198754",
		Secondary:     "#6c757d",
		Background:    "#f8fff8",
		Surface:       "#ffffff",
		OnPrimary:     "#ffffff",
		OnSecondary:   "#ffffff",
		OnBackground:  "#212529",
		OnSurface:     "#212529",
		Error:         "#dc3545",
		Warning:       "#ffc107",
		Success:       "#198754",
		Info:          "#0dcaf0",
		TextPrimary:   "#212529",
		TextSecondary: "#6c757d",
		Border:        "#badbcc",
		Disabled:      "#adb5bd",
	}
}

func purplePalette() Palette {
	return Palette{
		Primary:       "#6610f2",
		Secondary:     "#6c757d",
		Background:    "#f8f8ff", // ghostwhite
		Surface:       "#ffffff",
		OnPrimary:     "#ffffff",
		OnSecondary:   "#ffffff",
		OnBackground:  "#212529",
		OnSurface:     "#212529",
		Error:         "#dc3545",
		Warning:       "#ffc107",
		Success:       "#198754",
		Info:          "#0dcaf0",
		TextPrimary:   "#212529",
		TextSecondary: "#6c757d",
		Border:        "#d1b7fb",
		Disabled:      "#adb5bd",
	}
}
