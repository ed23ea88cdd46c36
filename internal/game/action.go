package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Dispatch records an action taken by a participant.
// No action changes the state yet; playing cards and betting hook in here.
func (s *State) Dispatch(id ParticipantID, action string, params map[string]string) error {
	if !s.isRegistered(id) {
		return fmt.Errorf("%w: %d", ErrUnknownParticipant, id)
	}

	if action == "" {
		return ErrInvalidAction
	}

	s.log.WithFields(logrus.Fields{
		"participant": id,
		"action":      action,
		"params":      params,
	}).Info("action dispatched")

	return nil
}
