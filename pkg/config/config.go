package config

// this holds the resolved configuration values from CLI
var (
	DB        string // path to the sqlite database file
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogFilter string // zapfilter rules for per-logger levels
)
