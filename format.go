package tsid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theory-cloud/tsid/pkg/basen"
)

// Format selects one of the supported string encodings of a TSID.
type Format int

const (
	// FormatCanonical is the 13-character upper-case base-32 form. It is
	// the default everywhere a TSID becomes text.
	FormatCanonical Format = iota

	// FormatCanonicalLower is the canonical form in lower case.
	FormatCanonicalLower

	// FormatHexUpper is the 16-digit zero-padded upper-case hexadecimal
	// form.
	FormatHexUpper

	// FormatHexLower is the 16-digit zero-padded lower-case hexadecimal
	// form.
	FormatHexLower

	// FormatDecimal is the shortest base-10 form.
	FormatDecimal

	// FormatBase62 is the shortest base-62 form, with digits ordered 0-9,
	// a-z, A-Z.
	FormatBase62
)

// String names the format for diagnostics.
func (f Format) String() string {
	switch f {
	case FormatCanonical:
		return "canonical"
	case FormatCanonicalLower:
		return "canonical-lower"
	case FormatHexUpper:
		return "hex-upper"
	case FormatHexLower:
		return "hex-lower"
	case FormatDecimal:
		return "decimal"
	case FormatBase62:
		return "base62"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// The canonical alphabet is Crockford-style base 32: I, L, O and U are
// excluded so the remaining symbols survive human transcription.
const (
	alphabetUpper = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	alphabetLower = "0123456789abcdefghjkmnpqrstvwxyz"
)

// alphabetValues maps input bytes to 5-bit symbol values. Both cases decode,
// and the transcription aliases map O to 0 and I and L to 1. U stays
// invalid.
var alphabetValues = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabetUpper); i++ {
		table[alphabetUpper[i]] = int8(i)
		table[alphabetLower[i]] = int8(i)
	}
	table['O'], table['o'] = 0, 0
	table['I'], table['i'] = 1, 1
	table['L'], table['l'] = 1, 1
	return table
}()

// canonical renders the identifier as 13 symbols of 5 bits each, most
// significant first. 13 symbols hold 65 bits; the leading symbol carries
// only the top 4 bits of the value.
func (id TSID) canonical(alphabet string) string {
	var buf [EncodedSize]byte
	for i := 0; i < EncodedSize; i++ {
		shift := 60 - 5*i
		buf[i] = alphabet[(id>>shift)&0x1f]
	}
	return string(buf[:])
}

// Format renders the identifier in the given format.
func (id TSID) Format(f Format) (string, error) {
	switch f {
	case FormatCanonical:
		return id.canonical(alphabetUpper), nil
	case FormatCanonicalLower:
		return id.canonical(alphabetLower), nil
	case FormatHexUpper:
		s, err := basen.Encode(uint64(id), 16, 2*Size)
		if err != nil {
			return "", err
		}
		return strings.ToUpper(s), nil
	case FormatHexLower:
		return basen.Encode(uint64(id), 16, 2*Size)
	case FormatDecimal:
		return basen.Encode(uint64(id), 10, 0)
	case FormatBase62:
		return basen.Encode(uint64(id), 62, 0)
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
}

// Parse converts a canonical 13-character string into a TSID. Parsing is
// case-insensitive and normalizes the transcription aliases O to 0 and I
// and L to 1. The leading symbol contributes only its low 4 bits; a set
// fifth bit (symbol values 16-31) falls outside the 64-bit value and is
// dropped, mirroring the truncation applied when a wider number is encoded.
func Parse(s string) (TSID, error) {
	if len(s) != EncodedSize {
		return 0, fmt.Errorf("%w: %d characters, want %d", ErrInvalidLength, len(s), EncodedSize)
	}
	var n uint64
	for i := 0; i < EncodedSize; i++ {
		v := alphabetValues[s[i]]
		if v < 0 {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		shift := 60 - 5*i
		n |= uint64(v) << shift
	}
	return TSID(n), nil
}

// ParseFormat converts a string in the given format into a TSID. The
// hexadecimal, decimal and base-62 forms accept any length; values wider
// than 64 bits wrap, as in Parse.
func ParseFormat(s string, f Format) (TSID, error) {
	switch f {
	case FormatCanonical, FormatCanonicalLower:
		return Parse(s)
	case FormatHexUpper, FormatHexLower:
		return parseBase(s, 16)
	case FormatDecimal:
		return parseBase(s, 10)
	case FormatBase62:
		return parseBase(s, 62)
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
}

// parseBase folds basen failures into this package's error kinds, keeping
// the codec error in the chain for errors.Is on either.
func parseBase(s string, base int) (TSID, error) {
	n, err := basen.Decode(s, base)
	if err != nil {
		if errors.Is(err, basen.ErrEmpty) {
			return 0, fmt.Errorf("%w: %w", ErrInvalidLength, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidCharacter, err)
	}
	return TSID(n), nil
}

// MustParse is Parse for known-good input; it panics on error.
func MustParse(s string) TSID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
