package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	log.Logger = zerolog.New(PrettyWriter(os.Stderr)).With().Timestamp().Caller().Logger()
}

func PrettyWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:          out,
		TimeFormat:   time.RFC3339,
		TimeLocation: time.Local,
		FormatLevel: func(i interface{}) string {
			return "[" + strings.ToUpper(i.(string)) + "]"
		},
		FormatMessage: func(i interface{}) string {
			return " " + i.(string)
		},
		FormatFieldName: func(i interface{}) string {
			return "(" + i.(string) + ")"
		},
		FormatFieldValue: func(i interface{}) string {
			return i.(string)
		},
	}
}
