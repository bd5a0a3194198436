package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/cantina-api/pkg/config"
)

// New crea el logger de la aplicación a partir de AppConfig.
// En development la salida es consola legible; en cualquier otro env, JSON.
// El nivel viene de LOG_LEVEL; un valor inválido o vacío cae en info.
func New(cfg config.AppConfig) zerolog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg config.AppConfig, out io.Writer) zerolog.Logger {
	w := out
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: out}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("app", cfg.Name).
		Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return zl
}
