package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func TestNew_CampoAppFijoEnCadaLinea(t *testing.T) {
	l := logger.New(logger.Config{Level: "debug", App: "catalogo-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"app":"catalogo-api"`)
}

func TestNew_NivelDesdeConfig(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, logger.New(logger.Config{Level: "warn"}).Zerolog().GetLevel())
	// Nivel no reconocido cae a info.
	assert.Equal(t, zerolog.InfoLevel, logger.New(logger.Config{Level: "desconocido"}).Zerolog().GetLevel())
}
