package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	Logger zerolog.Logger
)

func init() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05",
		FormatCaller: func(i interface{}) string {
			return filepath.Base(fmt.Sprint(i)) // Show only the filename, not full path
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("|%s|", i) // Add vertical bars around field names
		},
	}

	consoleWriter.FormatLevel = func(i interface{}) string {
		level := strings.ToUpper(fmt.Sprint(i))
		// Colored levels
		switch level {
		case "TRACE":
			return "\033[35m[" + level + "]\033[0m"
		case "DEBUG":
			return "\033[36m[" + level + "]\033[0m"
		case "INFO":
			return "\033[32m[" + level + "]\033[0m"
		case "WARN":
			return "\033[33m[" + level + "]\033[0m"
		case "ERROR":
			return "\033[31m[" + level + "]\033[0m"
		default:
			return level
		}
	}

	// LOG_LEVEL=trace surfaces the advisor's full decision path.
	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	Logger = zerolog.New(consoleWriter).Level(level).With().Timestamp().Caller().Logger()

	// Also replace global log, so log.Info().Msg() etc works everywhere
	log.Logger = Logger
}
