package randstr

import (
	"github.com/pkg/errors"
)

// Alphabet is the ordered, duplicate-free set of candidate characters a
// Charset resolves to.
type Alphabet string

// MaxAlphabetSize is the largest alphabet a Source must support. It equals
// the number of distinct byte values, so one random byte can always cover a
// full alphabet.
const MaxAlphabetSize = 256

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"
)

type charsetKind uint8

const (
	kindUnset charsetKind = iota
	kindLatinAlphabet
	kindLatinAlphabetAndNumeric
	kindNumeric
	kindPrintableASCIIWithoutSpace
	kindPrintableASCIIWithSpace
)

// Charset selects the candidate characters for generated strings. The zero
// value selects nothing and resolves to ErrEmptyAlphabet; use the predefined
// values or one of the constructors.
type Charset struct {
	kind      charsetKind
	upperCase bool
	lowerCase bool
}

var (
	// Alphanumeric is the default policy: upper- and lower-case latin
	// letters plus the digits 0-9.
	Alphanumeric = LatinAlphabetAndNumeric(true, true)

	// Numeric restricts the output to the digits 0-9.
	Numeric = Charset{kind: kindNumeric}

	// PrintableASCIIWithoutSpace covers every printable ASCII character
	// except space, 0x21 through 0x7E.
	PrintableASCIIWithoutSpace = Charset{kind: kindPrintableASCIIWithoutSpace}

	// PrintableASCIIWithSpace covers every printable ASCII character
	// including space, 0x20 through 0x7E.
	PrintableASCIIWithSpace = Charset{kind: kindPrintableASCIIWithSpace}
)

// LatinAlphabet selects latin letters without digits. Disabling both cases
// leaves nothing to draw from and resolves to ErrEmptyAlphabet.
func LatinAlphabet(useUpperCase, useLowerCase bool) Charset {
	return Charset{kind: kindLatinAlphabet, upperCase: useUpperCase, lowerCase: useLowerCase}
}

// LatinAlphabetAndNumeric selects latin letters plus the digits 0-9. The
// digits stay in the alphabet even when both letter cases are disabled.
func LatinAlphabetAndNumeric(useUpperCase, useLowerCase bool) Charset {
	return Charset{kind: kindLatinAlphabetAndNumeric, upperCase: useUpperCase, lowerCase: useLowerCase}
}

// ParseCharset returns the Charset for a policy name. Valid names are
// "alphanumeric", "numeric", "printable-ascii", "printable-ascii-with-space",
// "only-upper-case", "only-lower-case" and "only-latin-alphabet".
func ParseCharset(name string) (Charset, error) {
	switch name {
	case "alphanumeric":
		return Alphanumeric, nil
	case "numeric":
		return Numeric, nil
	case "printable-ascii":
		return PrintableASCIIWithoutSpace, nil
	case "printable-ascii-with-space":
		return PrintableASCIIWithSpace, nil
	case "only-upper-case":
		return LatinAlphabet(true, false), nil
	case "only-lower-case":
		return LatinAlphabet(false, true), nil
	case "only-latin-alphabet":
		return LatinAlphabet(true, true), nil
	default:
		return Charset{}, errors.Wrapf(ErrUnknownCharset, "charset %q", name)
	}
}

// Resolve maps the policy to its alphabet. The mapping is deterministic:
// equal policies always resolve to identical alphabets. Letters come before
// digits, upper case before lower case, and the printable ASCII ranges are
// in ascending byte order.
func (c Charset) Resolve() (Alphabet, error) {
	switch c.kind {
	case kindLatinAlphabet:
		switch {
		case c.upperCase && c.lowerCase:
			return upperChars + lowerChars, nil
		case c.upperCase:
			return upperChars, nil
		case c.lowerCase:
			return lowerChars, nil
		default:
			return "", ErrEmptyAlphabet
		}
	case kindLatinAlphabetAndNumeric:
		switch {
		case c.upperCase && c.lowerCase:
			return upperChars + lowerChars + digitChars, nil
		case c.upperCase:
			return upperChars + digitChars, nil
		case c.lowerCase:
			return lowerChars + digitChars, nil
		default:
			return digitChars, nil
		}
	case kindNumeric:
		return digitChars, nil
	case kindPrintableASCIIWithoutSpace:
		return printableASCIIWithoutSpace, nil
	case kindPrintableASCIIWithSpace:
		return printableASCIIWithSpace, nil
	case kindUnset:
		return "", ErrEmptyAlphabet
	default:
		return "", ErrEmptyAlphabet
	}
}

var (
	printableASCIIWithoutSpace = printableRange(0x21, 0x7e)
	printableASCIIWithSpace    = printableRange(0x20, 0x7e)
)

func printableRange(lo, hi byte) Alphabet {
	out := make([]byte, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		out = append(out, c)
	}
	return Alphabet(out)
}
