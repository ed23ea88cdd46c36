package game

import (
	"testing"

	"github.com/arcanaland/trucoworld/internal/rng"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, participants ...ParticipantID) (*State, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s, err := New(
		WithGenerator(rng.NewSeeded(1)),
		WithLogger(logrus.NewEntry(logger)),
		WithParticipants(participants...),
	)
	require.NoError(t, err)

	return s, hook
}
