package config

import "checkers-local/board"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		ShowCoordinates:      true,
		Colors: ConfigColors{
			LightSquare: 250,
			DarkSquare:  244,
			RedPiece:    196,
			BlackPiece:  232,
			Movable:     51,
			Selected:    226,
			Destination: 46,
			CursorBG:    25,
			Border:      88,
		},
		Symbols: ConfigSymbols{
			Man:        '●',
			King:       '◉',
			DarkSquare: ' ',
			Marker:     '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			DefaultVariant: board.Checkers.Name,
			RuleSet:        board.DefaultRules,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
