package testlog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Start binds the global logger to the test's output for one test.
func Start(t *testing.T) {
	t.Helper()
	log.Logger = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	log.Debug().Str("test", t.Name()).Msg("test start")
}
