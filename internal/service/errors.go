package service

import "errors"

var (
	// ErrEmptyQuery is returned when a search is requested without keywords.
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrEmptyRecipeID is returned when a recipe is requested without an id.
	ErrEmptyRecipeID = errors.New("recipe id is empty")
	// ErrInvalidToken is returned when a session token is malformed, expired or forged.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrStorage wraps failures to read or write persisted likes.
	ErrStorage = errors.New("likes storage failure")
)
