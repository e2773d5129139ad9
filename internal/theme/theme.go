package theme

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"fileremover/internal/config"
)

// CustomTheme implements fyne.Theme with a forced variant and configurable
// font settings
type CustomTheme struct {
	config     config.ThemeConfig
	customFont fyne.Resource
}

// NewCustomTheme creates a new custom theme with the given configuration
func NewCustomTheme(cfg config.ThemeConfig) *CustomTheme {
	t := &CustomTheme{config: cfg}
	if cfg.FontPath != "" {
		t.customFont = loadFont(cfg.FontPath)
	}
	return t
}

// loadFont reads a font file; failures fall back to the default font
func loadFont(fontPath string) fyne.Resource {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("Error reading font file %s: %v", fontPath, err)
		return nil
	}
	log.Printf("Loaded custom font: %s", fontPath)
	return fyne.NewStaticResource(filepath.Base(fontPath), fontData)
}

func (t *CustomTheme) variant() fyne.ThemeVariant {
	if t.config.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color ignores the system variant in favour of the configured one
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant())
}

func (t *CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Font returns the custom font for every style when one is loaded
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.customFont != nil && !style.Monospace && !style.Symbol {
		return t.customFont
	}
	return theme.DefaultTheme().Font(style)
}

func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.config.FontSize > 0 {
		return float32(t.config.FontSize)
	}
	return theme.DefaultTheme().Size(name)
}
