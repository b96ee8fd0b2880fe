// Package basen converts unsigned 64-bit integers to and from strings in
// arbitrary bases from 2 to 62.
//
// The digit set is 0-9, then a-z for values 10 through 35, then A-Z for
// values 36 through 61. Decoding folds letter case for bases up to 36,
// where the two cases spell the same digit; beyond base 36 the cases carry
// distinct values and decoding is case-sensitive.
//
// Decode accepts inputs of any length. Values wider than 64 bits wrap: the
// result is the true value reduced modulo 2^64, the same as keeping the low
// 64 bits of the arbitrary-precision result.
package basen

import (
	"errors"
	"fmt"
)

// MinBase and MaxBase bound the base argument of Encode and Decode.
const (
	MinBase = 2
	MaxBase = 62
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	// ErrBase reports a base outside [MinBase, MaxBase].
	ErrBase = errors.New("basen: base out of range")

	// ErrEmpty reports an empty input string.
	ErrEmpty = errors.New("basen: empty string")

	// ErrDigit reports a character that is not a digit of the requested base.
	ErrDigit = errors.New("basen: invalid digit")
)

// digitValues maps an input byte to its digit value, or -1.
var digitValues = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(digits); i++ {
		table[digits[i]] = int8(i)
	}
	return table
}()

// Encode renders n in the given base, most significant digit first. The
// result is zero-padded on the left to minLength characters when its natural
// width is shorter; minLength <= 0 means no padding.
func Encode(n uint64, base, minLength int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: %d", ErrBase, base)
	}
	size := 64 // math.MaxUint64 in base 2
	if minLength > size {
		size = minLength
	}
	buf := make([]byte, size)
	i := size
	for {
		i--
		buf[i] = digits[n%uint64(base)]
		n /= uint64(base)
		if n == 0 {
			break
		}
	}
	for size-i < minLength {
		i--
		buf[i] = '0'
	}
	return string(buf[i:]), nil
}

// Decode parses s as an unsigned integer in the given base, wrapping modulo
// 2^64 for inputs wider than 64 bits. Signs, whitespace and digit separators
// are not accepted.
func Decode(s string, base int) (uint64, error) {
	if base < MinBase || base > MaxBase {
		return 0, fmt.Errorf("%w: %d", ErrBase, base)
	}
	if s == "" {
		return 0, ErrEmpty
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		v := digitValues[s[i]]
		if v >= 36 && base <= 36 {
			v -= 26 // fold upper case onto lower where case carries no value
		}
		if v < 0 || int(v) >= base {
			return 0, fmt.Errorf("%w: %q in base %d", ErrDigit, s[i], base)
		}
		n = n*uint64(base) + uint64(v)
	}
	return n, nil
}
