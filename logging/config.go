package logging

type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

type Config struct {
	Level  LogLevel  `toml:"level" yaml:"level" env:"GROWTH_LOG_LEVEL" validate:"required,oneof=trace debug info warn error fatal"`
	Format LogFormat `toml:"format" yaml:"format" env:"GROWTH_LOG_FORMAT" validate:"required,oneof=json console"`
}
