package randstr

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// Source yields uniformly distributed indexes into an alphabet.
//
// Implementations are not required to be safe for concurrent use. Callers
// construct one Source per generation loop and own it exclusively; separate
// goroutines use separate sources.
type Source interface {
	// IntN returns a uniformly distributed int in [0, n). n must be in
	// [1, MaxAlphabetSize].
	IntN(n int) (int, error)
}

const (
	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256

	// secureBufLen is the number of random bytes requested from the
	// operating system per refill.
	secureBufLen = 64
)

// SecureSource draws indexes from the operating system CSPRNG. Random bytes
// are read through a small buffer and rejection-sampled, so no modulo bias
// is introduced for any bound up to MaxAlphabetSize.
//
// SecureSource is the default for Generate. It must not be shared between
// goroutines.
type SecureSource struct {
	buf []byte
	pos int
}

// NewSecureSource returns a SecureSource ready for drawing. The first read
// from the operating system happens lazily on the first draw.
func NewSecureSource() *SecureSource {
	return &SecureSource{buf: make([]byte, 0, secureBufLen)}
}

// IntN returns a uniformly distributed int in [0, n). It fails with
// ErrRandomSourceUnavailable when the entropy source can not be read and
// with ErrInvalidBound when n is outside [1, MaxAlphabetSize].
func (s *SecureSource) IntN(n int) (int, error) {
	if n < 1 || n > MaxAlphabetSize {
		return 0, errors.Wrapf(ErrInvalidBound, "bound %d", n)
	}

	maxRb := maxByteValue - (byteRange % n)

	for {
		b, err := s.nextByte()
		if err != nil {
			return 0, err
		}
		if int(b) > maxRb {
			// Skip this number to avoid modulo bias.
			continue
		}
		return int(b) % n, nil
	}
}

func (s *SecureSource) nextByte() (byte, error) {
	if s.pos == len(s.buf) {
		s.buf = s.buf[:cap(s.buf)]
		if _, err := rand.Read(s.buf); err != nil {
			return 0, errors.Wrap(ErrRandomSourceUnavailable, err.Error())
		}
		s.pos = 0
	}

	b := s.buf[s.pos]
	s.pos++

	return b, nil
}
