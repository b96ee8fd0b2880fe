package tsid

import "errors"

// Error kinds reported by parsing and construction. Failures surface
// synchronously at the failing call; Generate itself never fails. Wrapped
// errors carry the offending value, so callers match with errors.Is.
var (
	// ErrInvalidLength reports a byte slice that is not 8 bytes or a
	// canonical string that is not 13 characters.
	ErrInvalidLength = errors.New("tsid: invalid length")

	// ErrInvalidCharacter reports a character outside the canonical
	// alphabet, or one invalid for the requested base.
	ErrInvalidCharacter = errors.New("tsid: invalid character")

	// ErrInvalidFormat reports an unrecognized Format selector.
	ErrInvalidFormat = errors.New("tsid: invalid format")

	// ErrInvalidNodeBits reports a node width outside 0 through 20 bits.
	ErrInvalidNodeBits = errors.New("tsid: node bits out of range")

	// ErrNodeTooLarge reports a node identifier that does not fit the
	// configured node bits.
	ErrNodeTooLarge = errors.New("tsid: node does not fit node bits")
)
