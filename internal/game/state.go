// Package game holds the state of a Truco table: the deck, the hands dealt to each
// participant and the score table. Every operation runs to completion synchronously;
// a State must not be shared between goroutines without external locking.
package game

import (
	"fmt"

	"github.com/arcanaland/trucoworld/internal/deck"
	"github.com/arcanaland/trucoworld/internal/rng"
	"github.com/sirupsen/logrus"
)

// ParticipantID identifies a participant (a side of the table)
type ParticipantID int

// Sides are the two sides that always appear on the score table
var Sides = []ParticipantID{1, 2}

// State is the state of one game environment
type State struct {
	deck         *deck.Deck
	participants []ParticipantID
	hands        map[ParticipantID]deck.Hand
	scores       map[ParticipantID]int

	gen     rng.Generator
	log     *logrus.Entry
	initial []ParticipantID
}

// Option configures a State
type Option func(s *State)

// WithGenerator sets the random source used to shuffle the deck
func WithGenerator(gen rng.Generator) Option {
	return func(s *State) {
		s.gen = gen
	}
}

// WithLogger sets the logger diagnostics are written to
func WithLogger(log *logrus.Entry) Option {
	return func(s *State) {
		s.log = log
	}
}

// WithParticipants registers the participants as soon as the State is created
func WithParticipants(ids ...ParticipantID) Option {
	return func(s *State) {
		s.initial = append(s.initial, ids...)
	}
}

// New returns a State with a freshly shuffled deck and an empty score table.
// An error is returned if a participant given through WithParticipants cannot register.
func New(opts ...Option) (*State, error) {
	s := &State{
		hands:  make(map[ParticipantID]deck.Hand),
		scores: make(map[ParticipantID]int),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logrus.WithField("component", "game")
	}

	s.deck = deck.New(s.gen)

	for _, side := range Sides {
		s.scores[side] = 0
	}

	for _, id := range s.initial {
		if err := s.Register(id); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Register adds a participant to the table
func (s *State) Register(id ParticipantID) error {
	if id < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidParticipant, id)
	}

	if s.isRegistered(id) {
		return fmt.Errorf("%w: %d", ErrAlreadyRegistered, id)
	}

	s.participants = append(s.participants, id)
	if _, ok := s.scores[id]; !ok {
		s.scores[id] = 0
	}

	s.log.WithField("participant", id).Debug("participant registered")
	return nil
}

func (s *State) isRegistered(id ParticipantID) bool {
	for _, p := range s.participants {
		if p == id {
			return true
		}
	}

	return false
}

// Participants returns the registered participants in registration order
func (s *State) Participants() []ParticipantID {
	cp := make([]ParticipantID, len(s.participants))
	copy(cp, s.participants)
	return cp
}

// Hand returns a copy of the participant's hand.
// The bool is false if nothing has been dealt to the participant.
func (s *State) Hand(id ParticipantID) (deck.Hand, bool) {
	hand, ok := s.hands[id]
	if !ok {
		return deck.Hand{}, false
	}

	cp := make(deck.Hand, len(hand))
	copy(cp, hand)
	return cp, true
}

// Scores returns a copy of the score table
func (s *State) Scores() map[ParticipantID]int {
	cp := make(map[ParticipantID]int, len(s.scores))
	for id, points := range s.scores {
		cp[id] = points
	}

	return cp
}

// CardsLeft returns the number of cards remaining in the deck
func (s *State) CardsLeft() int {
	return s.deck.CardsLeft()
}
