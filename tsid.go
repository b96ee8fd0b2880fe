package tsid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	// Size is the length of a TSID in bytes.
	Size = 8

	// EncodedSize is the length of the canonical string form.
	EncodedSize = 13

	// DefaultEpochMilli is the default epoch, 2020-01-01T00:00:00Z, in Unix
	// milliseconds. Timestamp accessors without an explicit epoch read
	// against it.
	DefaultEpochMilli int64 = 1577836800000

	randomBits = 22
	randomMask = 1<<randomBits - 1
)

// TSID is a 64-bit time-sorted unique identifier. The zero value is a valid
// identifier stamped at the epoch. TSIDs compare, sort and hash as plain
// integers, and that order is creation order.
type TSID uint64

var (
	_ fmt.Stringer               = TSID(0)
	_ encoding.TextMarshaler     = TSID(0)
	_ encoding.TextUnmarshaler   = (*TSID)(nil)
	_ encoding.BinaryMarshaler   = TSID(0)
	_ encoding.BinaryUnmarshaler = (*TSID)(nil)
	_ json.Marshaler             = TSID(0)
	_ json.Unmarshaler           = (*TSID)(nil)
	_ driver.Valuer              = TSID(0)
	_ sql.Scanner                = (*TSID)(nil)
)

// FromBytes converts an 8-byte big-endian slice into a TSID.
func FromBytes(b []byte) (TSID, error) {
	if len(b) != Size {
		return 0, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	return TSID(binary.BigEndian.Uint64(b)), nil
}

// Number returns the identifier as an unsigned 64-bit integer.
func (id TSID) Number() uint64 { return uint64(id) }

// Bytes returns the identifier as 8 big-endian bytes.
func (id TSID) Bytes() []byte {
	b := make([]byte, Size)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// Random returns the 22-bit random component, node and counter combined.
// The node occupies the high bits at the width the generator was built
// with; shift right by the generator's CounterBits to recover it.
func (id TSID) Random() uint32 {
	return uint32(id & randomMask)
}

// UnixMilli returns the embedded timestamp as Unix milliseconds, read
// against the default epoch. Identifiers from a generator with a custom
// epoch must be read with UnixMilliAt instead.
func (id TSID) UnixMilli() int64 {
	return id.UnixMilliAt(DefaultEpochMilli)
}

// UnixMilliAt returns the embedded timestamp as Unix milliseconds, read
// against epochMilli (itself in Unix milliseconds).
func (id TSID) UnixMilliAt(epochMilli int64) int64 {
	return epochMilli + int64(id>>randomBits)
}

// Time returns the embedded timestamp against the default epoch, in UTC.
func (id TSID) Time() time.Time {
	return time.UnixMilli(id.UnixMilli()).UTC()
}

// TimeAt returns the embedded timestamp against a custom epoch, in UTC.
func (id TSID) TimeAt(epoch time.Time) time.Time {
	return time.UnixMilli(id.UnixMilliAt(epoch.UnixMilli())).UTC()
}

// String returns the canonical 13-character upper-case form.
func (id TSID) String() string {
	return id.canonical(alphabetUpper)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (id TSID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the
// canonical form in either case.
func (id *TSID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler as 8 big-endian bytes.
func (id TSID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *TSID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON encodes the identifier as its canonical string. The numeric
// form is deliberately not used: 64-bit values overflow IEEE-754 doubles,
// which is what JavaScript consumers parse JSON numbers into.
func (id TSID) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, EncodedSize+2)
	b = append(b, '"')
	b = append(b, id.String()...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON accepts the canonical string form, or a plain JSON number
// for payloads produced by integer-emitting implementations. A JSON null
// is a no-op, leaving the identifier unchanged.
func (id *TSID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return id.UnmarshalText([]byte(s))
	}
	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a canonical string or unsigned integer", ErrInvalidCharacter, data)
	}
	*id = TSID(n)
	return nil
}

// Value implements driver.Valuer, storing the identifier as an int64 with
// the same bit pattern. Identifiers above 1<<63 round-trip through the
// signed column unchanged; their sign is a storage artifact.
func (id TSID) Value() (driver.Value, error) {
	return int64(id), nil
}

// Scan implements sql.Scanner. It accepts int64 and uint64 columns, the
// canonical string form, and []byte holding either the canonical form or
// the 8-byte binary form. NULL scans to the zero TSID.
func (id *TSID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = 0
		return nil
	case int64:
		*id = TSID(uint64(v))
		return nil
	case uint64:
		*id = TSID(v)
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == Size {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("tsid: cannot scan %T into TSID", src)
	}
}
