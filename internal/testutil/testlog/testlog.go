package testlog

import (
	"testing"

	"github.com/P3chys/comments-seed/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Start(t *testing.T) {
	t.Helper()
	logging.InitWithWriter(testWriter{t}, "test", "debug")
	t.Cleanup(func() { log.Logger = zerolog.Nop() })
	log.Info().Str("test", t.Name()).Msg("start")
}

// testWriter routes log output through t.Log so it only shows on failure or -v.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
