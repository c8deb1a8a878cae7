package config

// ColorScheme defines the colors used by human-readable CLI output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" env:"TODO_THEME"`

	// Primary accent color (used for headers and field labels)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text such as timestamps
	Normal string `yaml:"normal"`

	// Status colors
	Done  string `yaml:"done"`
	Error string `yaml:"error"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",
		Accent: "#874BFD",
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Done:   "#5FD75F",
		Error:  "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Done:   "#FFFFFF",
		Error:  "#FFFFFF",
	}
}

// presetScheme returns a preset color scheme by name
func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Done == "" {
		c.Done = preset.Done
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}
