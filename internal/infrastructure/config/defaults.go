package config

// Default returns the built-in configuration.
// Values match the shipped app.yaml; any key missing from a loaded file
// keeps its default.
func Default() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "Loading Demo",
		},
		Loading: LoadingConfig{
			Duration:      3.0,
			SpinRate:      -2.0,
			Background:    Hex(0x1a1a1a), // rgb(0.1, 0.1, 0.1)
			Text:          "Loading...",
			FontSize:      60,
			TextColor:     Hex(0xffffff),
			SpinnerSize:   50,
			SpinnerMargin: 30,
			SpinnerBorder: 5,
			SpinnerColor:  Hex(0xffffff),
		},
		Playing: PlayingConfig{
			Text:      "Game Started!",
			FontSize:  40,
			TextColor: Hex(0xffffff),
			Top:       50,
			Left:      50,
		},
	}
}
