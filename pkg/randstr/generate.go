package randstr

import (
	"github.com/pkg/errors"
)

// Generate returns a random string of length characters drawn from the
// alphabet the charset resolves to, using a fresh SecureSource. A length of
// zero yields the empty string without touching the entropy source.
func Generate(length int, charset Charset) (string, error) {
	return GenerateWithSource(NewSecureSource(), length, charset)
}

// GenerateWithSource is Generate with a caller-supplied Source. Pass a
// FastSource to trade security for speed, or a seeded one for reproducible
// output. The source state advances with every draw, so one source may be
// reused across calls.
func GenerateWithSource(src Source, length int, charset Charset) (string, error) {
	alphabet, err := charset.Resolve()
	if err != nil {
		return "", err
	}

	return GenerateFromAlphabet(src, length, alphabet)
}

// GenerateFromAlphabet draws length characters from an already resolved
// alphabet. Callers producing many strings under one policy resolve the
// alphabet once and call this in a loop.
func GenerateFromAlphabet(src Source, length int, alphabet Alphabet) (string, error) {
	if length < 0 {
		return "", errors.Wrapf(ErrInvalidLength, "length %d", length)
	}
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}
	if length == 0 {
		return "", nil
	}

	out := make([]byte, length)
	for i := range out {
		idx, err := src.IntN(len(alphabet))
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx]
	}

	return string(out), nil
}
