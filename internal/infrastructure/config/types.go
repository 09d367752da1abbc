package config

// AppConfig is the root config for app.yaml
type AppConfig struct {
	Display DisplayConfig `yaml:"display"`
	Loading LoadingConfig `yaml:"loading"`
	Playing PlayingConfig `yaml:"playing"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

// LoadingConfig configures the loading screen
type LoadingConfig struct {
	Duration      float64 `yaml:"duration"` // seconds until Playing
	SpinRate      float64 `yaml:"spinRate"` // rad/s, negative = clockwise
	Background    Color   `yaml:"background"`
	Text          string  `yaml:"text"`
	FontSize      float64 `yaml:"fontSize"`
	TextColor     Color   `yaml:"textColor"`
	SpinnerSize   float64 `yaml:"spinnerSize"`   // px
	SpinnerMargin float64 `yaml:"spinnerMargin"` // px above the spinner
	SpinnerBorder float64 `yaml:"spinnerBorder"` // px
	SpinnerColor  Color   `yaml:"spinnerColor"`
}

// PlayingConfig configures the playing screen label
type PlayingConfig struct {
	Text      string  `yaml:"text"`
	FontSize  float64 `yaml:"fontSize"`
	TextColor Color   `yaml:"textColor"`
	Top       float64 `yaml:"top"`  // px
	Left      float64 `yaml:"left"` // px
}
