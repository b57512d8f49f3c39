package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Background          string `toml:"background"`
	AddressColor        string `toml:"address_color"`
	AlternateWordColor  string `toml:"alternate_word_color"`
	ColdZoneColor       string `toml:"cold_zone_color"`
	NonPrintableColor   string `toml:"non_printable_color"`
	SelectionBackground string `toml:"selection_background"`
	DividerColor        string `toml:"divider_color"`
	CommentColor        string `toml:"comment_color"`
	LegendBackground    string `toml:"legend_background"`
	LegendHighlight     string `toml:"legend_highlight"`
	ActiveTab           string `toml:"active_tab"`
	DisabledColor       string `toml:"disabled_color"`
}

type Config struct {
	Theme Theme `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			Background:          "#000000",
			AddressColor:        "#5555FF",
			AlternateWordColor:  "#AAAAAA",
			ColdZoneColor:       "#666666",
			NonPrintableColor:   "#AA0000",
			SelectionBackground: "#FFAA00",
			DividerColor:        "#444444",
			CommentColor:        "#00AAAA",
			LegendBackground:    "#0000FF",
			LegendHighlight:     "#FF0000",
			ActiveTab:           "#FF00FF",
			DisabledColor:       "#666666",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hexview.toml"
	}
	return filepath.Join(home, ".config", "hexview", "hexview.toml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Normal          lipgloss.Style
	Address         lipgloss.Style
	Alternate       lipgloss.Style
	Cold            lipgloss.Style
	NonPrintable    lipgloss.Style
	Selection       lipgloss.Style
	Divider         lipgloss.Style
	Comment         lipgloss.Style
	Legend          lipgloss.Style
	LegendHighlight lipgloss.Style
	ActiveTab       lipgloss.Style
	InactiveTab     lipgloss.Style
	Disabled        lipgloss.Style
	InspectorLabel  lipgloss.Style
	InspectorValue  lipgloss.Style
	HelpTitle       lipgloss.Style
	HelpKey         lipgloss.Style
	HelpDesc        lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Normal: lipgloss.NewStyle(),
		Address: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.AddressColor)),
		Alternate: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.AlternateWordColor)),
		Cold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ColdZoneColor)),
		NonPrintable: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.NonPrintableColor)),
		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectionBackground)).
			Foreground(lipgloss.Color("#000000")),
		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DividerColor)),
		Comment: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.CommentColor)),
		Legend: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		LegendHighlight: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color(theme.LegendHighlight)).
			Bold(true),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ActiveTab)).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DisabledColor)),
		InspectorLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		InspectorValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),
		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.LegendHighlight)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
	}
}
