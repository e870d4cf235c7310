package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"checkers-local/board"
)

var (
	cfgFile = "checkers-local/config.json"
	logFile = "checkers-local/checkers.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	LightSquare int `json:"light_square"`
	DarkSquare  int `json:"dark_square"`
	RedPiece    int `json:"red"`
	BlackPiece  int `json:"black"`
	Movable     int `json:"movable"`
	Selected    int `json:"selected"`
	Destination int `json:"destination"`
	CursorBG    int `json:"cursor_bg"`
	Border      int `json:"border"`
}

type ConfigSymbols struct {
	Man        rune `json:"man"`
	King       rune `json:"king"`
	DarkSquare rune `json:"dark_square"`
	Marker     rune `json:"marker"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	ShowCoordinates      bool          `json:"show_coordinates"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// GameSettings holds the defaults offered on the setup screen.
type GameSettings struct {
	DefaultVariant string `json:"default_variant"`
	board.RuleSet
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"` // empty means the XDG state directory
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Man, c.Theme.Symbols.King, c.Theme.Symbols.DarkSquare, c.Theme.Symbols.Marker} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	for _, code := range []int{
		c.Theme.Colors.LightSquare, c.Theme.Colors.DarkSquare, c.Theme.Colors.RedPiece,
		c.Theme.Colors.BlackPiece, c.Theme.Colors.Movable, c.Theme.Colors.Selected,
		c.Theme.Colors.Destination, c.Theme.Colors.CursorBG, c.Theme.Colors.Border,
	} {
		if code < 0 || code > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is not a 256-color palette index", code)}
		}
	}
	if _, err := board.ParseVariant(c.Game.DefaultVariant); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// Variant returns the configured default variant.
func (c *Config) Variant() board.Variant {
	v, err := board.ParseVariant(c.Game.DefaultVariant)
	if err != nil {
		return board.Checkers
	}
	return v
}

// LogPath returns where the log file lives, creating its directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
