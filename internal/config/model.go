package config

// Model is the unified, format-agnostic representation of a config file.
type Model struct {
	Sum       *int
	File      *string
	Solvers   []string
	LogLevel  *string
	LogFormat *string
}
