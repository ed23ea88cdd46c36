package game

import (
	"encoding/json"
	"testing"

	"github.com/arcanaland/trucoworld/internal/card"
	"github.com/arcanaland/trucoworld/internal/deck"
	"github.com/arcanaland/trucoworld/internal/envido"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperty(t *testing.T) {
	a := assert.New(t)

	for name, want := range map[string]Property{
		"hand":          PropertyHand,
		"Mi_Mano":       PropertyHand,
		"envido_points": PropertyEnvidoPoints,
		"puntos_envido": PropertyEnvidoPoints,
		"scores":        PropertyScores,
	} {
		got, err := ParseProperty(name)
		a.NoError(err)
		a.Equal(want, got, name)
	}

	_, err := ParseProperty("truco")
	a.ErrorIs(err, ErrUnknownProperty)

	a.Equal("envido_points", PropertyEnvidoPoints.String())
	a.Equal("Property(9)", Property(9).String())
}

func TestState_Query(t *testing.T) {
	a := assert.New(t)
	s, _ := newTestState(t, 1, 2)
	require.NoError(t, s.Deal())
	s.hands[1] = deck.Hand(card.MustParseHand("1e,7e,12o"))

	resp, err := s.Query(1, PropertyHand)
	a.NoError(err)
	a.Equal(ParticipantID(1), resp.Participant)
	a.Equal(deck.Hand(card.MustParseHand("1e,7e,12o")), resp.Hand)
	a.Nil(resp.EnvidoPoints)
	a.Nil(resp.Scores)

	resp, err = s.Query(1, PropertyEnvidoPoints)
	a.NoError(err)
	require.NotNil(t, resp.EnvidoPoints)
	a.Equal(28, *resp.EnvidoPoints)
	a.Nil(resp.Hand)

	resp, err = s.Query(2, PropertyScores)
	a.NoError(err)
	a.Equal(map[ParticipantID]int{1: 0, 2: 0}, resp.Scores)

	h2, _ := s.Hand(2)
	want, err := envido.Score(h2)
	require.NoError(t, err)
	resp, err = s.Query(2, PropertyEnvidoPoints)
	a.NoError(err)
	a.Equal(want, *resp.EnvidoPoints)
}

func TestState_Query_noHand(t *testing.T) {
	s, _ := newTestState(t, 1, 2)

	for _, prop := range []Property{PropertyHand, PropertyEnvidoPoints, PropertyScores} {
		resp, err := s.Query(1, prop)
		assert.NoError(t, err)
		assert.Equal(t, Response{Participant: 1}, resp)
		assert.True(t, resp.Empty())
	}

	require.NoError(t, s.Deal())
	resp, err := s.Query(7, PropertyScores)
	assert.NoError(t, err)
	assert.True(t, resp.Empty())
}

func TestState_Query_unknownProperty(t *testing.T) {
	s, hook := newTestState(t, 1, 2)
	require.NoError(t, s.Deal())

	resp, err := s.Query(1, Property(42))
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.Equal(t, Response{Participant: 1}, resp)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	hook.Reset()
	resp, err = s.QueryByName(1, "current_bet")
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.True(t, resp.Empty())
	assert.Equal(t, ParticipantID(1), resp.Participant)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "invalid property requested", hook.LastEntry().Message)
	assert.Equal(t, "current_bet", hook.LastEntry().Data["property"])
}

func TestState_Query_unknownPropertyBeforeDeal(t *testing.T) {
	s, hook := newTestState(t, 1, 2)

	resp, err := s.Query(1, Property(42))
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.Equal(t, Response{Participant: 1}, resp)
	assert.Equal(t, "invalid property requested", hook.LastEntry().Message)

	resp, err = s.QueryByName(1, "current_bet")
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.Equal(t, Response{Participant: 1}, resp)
}

func TestState_QueryByName(t *testing.T) {
	s, _ := newTestState(t, 1, 2)
	require.NoError(t, s.Deal())

	resp, err := s.QueryByName(2, "hand")
	assert.NoError(t, err)
	assert.Len(t, resp.Hand, deck.HandSize)
}

func TestResponse_JSON(t *testing.T) {
	points := 33
	b, err := json.Marshal(Response{Participant: 2, EnvidoPoints: &points})
	require.NoError(t, err)
	assert.JSONEq(t, `{"participant":2,"envido_points":33}`, string(b))

	b, err = json.Marshal(Response{Participant: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"participant":1}`, string(b))

	b, err = json.Marshal(Response{Participant: 1, Scores: map[ParticipantID]int{1: 0, 2: 3}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"participant":1,"scores":{"1":0,"2":3}}`, string(b))
}
