package game

import "errors"

// ErrNoParticipants is returned when dealing without anyone registered
var ErrNoParticipants = errors.New("no participants registered")

// ErrInsufficientDeck is returned when the deck cannot cover a full deal
var ErrInsufficientDeck = errors.New("not enough cards left in the deck")

// ErrAlreadyRegistered is returned when a participant registers twice
var ErrAlreadyRegistered = errors.New("participant is already registered")

// ErrInvalidParticipant is returned for participant IDs < 1
var ErrInvalidParticipant = errors.New("invalid participant id")

// ErrUnknownParticipant is returned when acting as someone who never registered
var ErrUnknownParticipant = errors.New("unknown participant")

// ErrUnknownProperty is returned when querying a property that doesn't exist
var ErrUnknownProperty = errors.New("unknown property")

// ErrInvalidAction is returned when dispatching an action without a name
var ErrInvalidAction = errors.New("invalid action")
