// Package usecase implements the business logic for the channel feature.
package usecase

import "errors"

var (
	// ErrChannelNotFound is returned when no user owns the requested channel username.
	ErrChannelNotFound = errors.New("channel does not exist")

	// ErrVideoNotFound is returned when a referenced video does not exist.
	ErrVideoNotFound = errors.New("video not found")

	// ErrAlreadySubscribed is returned when the subscriber-channel edge already exists.
	ErrAlreadySubscribed = errors.New("already subscribed to this channel")

	// ErrNotSubscribed is returned when unsubscribing without an existing edge.
	ErrNotSubscribed = errors.New("not subscribed to this channel")

	// ErrSelfSubscription is returned when a user tries to subscribe to their own channel.
	ErrSelfSubscription = errors.New("cannot subscribe to your own channel")
)
