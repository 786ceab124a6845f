package service

import "errors"

// Error taxonomy surfaced to the HTTP layer. Anything not listed here is a
// store failure and propagates wrapped.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrListNotFound     = errors.New("list not found")
	ErrItemNotFound     = errors.New("book not in list")
	ErrFragmentNotFound = errors.New("page not highlighted")
	ErrRatingNotFound   = errors.New("rating not found")

	ErrPageOutOfRange = errors.New("page outside the book's page range")
	ErrInvalidScore   = errors.New("score must be between 1 and 5")
	ErrWrongPassword  = errors.New("current password is incorrect")
	ErrExternalUser   = errors.New("externally-authenticated account has no password")

	ErrUserExists = errors.New("user already registered")
	ErrListExists = errors.New("list already exists")

	ErrFavoritesProtected = errors.New("favorites list cannot be modified")
)
