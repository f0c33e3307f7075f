package contracts

import "errors"

var (
	// ErrInvalidBirthDate means the caller supplied a missing or
	// malformed birth date. Surfaced immediately, never defaulted.
	ErrInvalidBirthDate = errors.New("invalid birth date")

	// ErrInvalidBirthTime means the optional birth time was present but
	// not parseable as HH:MM.
	ErrInvalidBirthTime = errors.New("invalid birth time")

	// ErrEmptyCatalog means the card store returned zero cards. Fatal
	// for any draw operation.
	ErrEmptyCatalog = errors.New("card catalog unavailable")

	// ErrDrawExceedsCatalog means more unique cards were requested than
	// remain in the catalog. Raised before any partial draw.
	ErrDrawExceedsCatalog = errors.New("requested draw exceeds catalog size")

	// ErrDuplicateDaily is returned by the reading store when the daily
	// unique index rejects an insert. The service resolves it by
	// returning the winner's record; it never reaches the user.
	ErrDuplicateDaily = errors.New("daily reading already exists for this day")

	// ErrUserNotFound means the referenced user record does not exist.
	ErrUserNotFound = errors.New("user not found")
)
