package randstr

import "errors"

var (
	// ErrEmptyAlphabet is returned when a character-set policy resolves to
	// zero candidate characters.
	ErrEmptyAlphabet = errors.New("character set resolves to an empty alphabet")

	// ErrInvalidLength is returned when a negative output length is
	// requested.
	ErrInvalidLength = errors.New("requested length must not be negative")

	// ErrRandomSourceUnavailable is returned when the operating system
	// entropy source can not be read.
	ErrRandomSourceUnavailable = errors.New("secure random source unavailable")

	// ErrInvalidBound is returned by a Source when the requested bound is
	// outside [1, MaxAlphabetSize].
	ErrInvalidBound = errors.New("bound outside the supported range")

	// ErrUnknownCharset is returned by ParseCharset for an unrecognized
	// character-set name.
	ErrUnknownCharset = errors.New("unknown charset name")
)
