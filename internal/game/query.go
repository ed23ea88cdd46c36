package game

import (
	"fmt"
	"strings"

	"github.com/arcanaland/trucoworld/internal/deck"
	"github.com/arcanaland/trucoworld/internal/envido"
	"github.com/sirupsen/logrus"
)

// Property is a piece of state that can be queried for a participant
type Property int

// properties
const (
	PropertyHand Property = iota + 1
	PropertyEnvidoPoints
	PropertyScores
)

func (p Property) String() string {
	switch p {
	case PropertyHand:
		return "hand"
	case PropertyEnvidoPoints:
		return "envido_points"
	case PropertyScores:
		return "scores"
	}

	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty returns the property with the given name
func ParseProperty(name string) (Property, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hand", "mi_mano":
		return PropertyHand, nil
	case "envido_points", "envido", "puntos_envido":
		return PropertyEnvidoPoints, nil
	case "scores":
		return PropertyScores, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// Response is the envelope returned by Query. Only the requested property is set.
type Response struct {
	Participant  ParticipantID         `json:"participant"`
	Hand         deck.Hand             `json:"hand,omitempty"`
	EnvidoPoints *int                  `json:"envido_points,omitempty"`
	Scores       map[ParticipantID]int `json:"scores,omitempty"`
}

// Empty returns true if no property value is attached
func (r Response) Empty() bool {
	return r.Hand == nil && r.EnvidoPoints == nil && r.Scores == nil
}

// Query returns the requested property for the participant.
// A participant without a hand yields an empty envelope and no error.
func (s *State) Query(id ParticipantID, prop Property) (Response, error) {
	resp := Response{Participant: id}
	log := s.log.WithFields(logrus.Fields{
		"participant": id,
		"property":    prop.String(),
	})

	switch prop {
	case PropertyHand, PropertyEnvidoPoints, PropertyScores:
	default:
		log.Warn("invalid property requested")
		return resp, fmt.Errorf("%w: %s", ErrUnknownProperty, prop)
	}

	hand, ok := s.Hand(id)
	if !ok {
		log.Debug("participant has no hand")
		return resp, nil
	}

	switch prop {
	case PropertyHand:
		resp.Hand = hand
	case PropertyEnvidoPoints:
		points, err := envido.Score(hand)
		if err != nil {
			return Response{Participant: id}, err
		}
		resp.EnvidoPoints = &points
	case PropertyScores:
		resp.Scores = s.Scores()
	}

	return resp, nil
}

// QueryByName is like Query but takes the property by name
func (s *State) QueryByName(id ParticipantID, name string) (Response, error) {
	prop, err := ParseProperty(name)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"participant": id,
			"property":    name,
		}).Warn("invalid property requested")
		return Response{Participant: id}, err
	}

	return s.Query(id, prop)
}
