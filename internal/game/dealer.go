package game

import (
	"fmt"

	"github.com/arcanaland/trucoworld/internal/deck"
	"github.com/sirupsen/logrus"
)

// Deal replaces every participant's hand with three cards from the top of the deck.
// The deck is checked up front, so a deal either happens in full or not at all.
func (s *State) Deal() error {
	if len(s.participants) == 0 {
		s.log.Warn("no participants registered to deal to")
		return ErrNoParticipants
	}

	need := deck.HandSize * len(s.participants)
	if !s.deck.CanDraw(need) {
		s.log.WithFields(logrus.Fields{
			"need":       need,
			"cards_left": s.deck.CardsLeft(),
		}).Warn("not enough cards left to deal")
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientDeck, need, s.deck.CardsLeft())
	}

	hands := make(map[ParticipantID]deck.Hand, len(s.participants))
	for _, id := range s.participants {
		hand := make(deck.Hand, 0, deck.HandSize)
		for i := 0; i < deck.HandSize; i++ {
			c, err := s.deck.Pop()
			if err != nil {
				return err
			}

			hand = append(hand, c)
		}

		hands[id] = hand
	}

	s.hands = hands
	s.log.WithField("cards_left", s.deck.CardsLeft()).Info("cards dealt")

	return nil
}
