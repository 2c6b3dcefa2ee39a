package config

// Config holds general editor configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instance
var C *Config

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Tilewright Editor",
	}
}
