package basen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/theory-cloud/tsid/pkg/basen"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         uint64
		base      int
		minLength int
		want      string
	}{
		{name: "zero", n: 0, base: 10, minLength: 0, want: "0"},
		{name: "zero padded", n: 0, base: 10, minLength: 4, want: "0000"},
		{name: "decimal", n: 1234567890, base: 10, minLength: 0, want: "1234567890"},
		{name: "binary", n: 5, base: 2, minLength: 0, want: "101"},
		{name: "binary padded", n: 1, base: 2, minLength: 8, want: "00000001"},
		{name: "hex lower", n: 255, base: 16, minLength: 0, want: "ff"},
		{name: "hex padded", n: 255, base: 16, minLength: 4, want: "00ff"},
		{name: "base36 top digit", n: 35, base: 36, minLength: 0, want: "z"},
		{name: "base62 lower ten", n: 10, base: 62, minLength: 0, want: "a"},
		{name: "base62 upper starts at 36", n: 36, base: 62, minLength: 0, want: "A"},
		{name: "base62 top digit", n: 61, base: 62, minLength: 0, want: "Z"},
		{name: "base62 wraps to two digits", n: 62, base: 62, minLength: 0, want: "10"},
		{name: "max uint64 decimal", n: 18446744073709551615, base: 10, minLength: 0, want: "18446744073709551615"},
		{name: "padding shorter than natural width", n: 255, base: 16, minLength: 1, want: "ff"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := basen.Encode(tt.n, tt.base, tt.minLength)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeMaxUint64Base2(t *testing.T) {
	t.Parallel()

	got, err := basen.Encode(1<<64-1, 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 64)
	require.Equal(t, strings.Repeat("1", 64), got)
}

func TestEncodeBaseOutOfRange(t *testing.T) {
	t.Parallel()

	for _, base := range []int{-1, 0, 1, 63, 100} {
		_, err := basen.Encode(42, base, 0)
		require.ErrorIs(t, err, basen.ErrBase, "base %d", base)
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string
		base int
		want uint64
	}{
		{name: "zero", s: "0", base: 10, want: 0},
		{name: "leading zeros", s: "000042", base: 10, want: 42},
		{name: "hex lower", s: "ff", base: 16, want: 255},
		{name: "hex upper folds", s: "FF", base: 16, want: 255},
		{name: "hex mixed case", s: "DeadBeef", base: 16, want: 0xdeadbeef},
		{name: "base36 upper folds", s: "Z", base: 36, want: 35},
		{name: "base62 lower", s: "z", base: 62, want: 35},
		{name: "base62 upper distinct", s: "Z", base: 62, want: 61},
		{name: "max uint64", s: "18446744073709551615", base: 10, want: 18446744073709551615},
		{name: "wraps modulo 2^64", s: "18446744073709551616", base: 10, want: 0},
		{name: "wraps modulo 2^64 plus one", s: "18446744073709551617", base: 10, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := basen.Decode(tt.s, tt.base)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()

		_, err := basen.Decode("", 10)
		require.ErrorIs(t, err, basen.ErrEmpty)
	})

	t.Run("base out of range", func(t *testing.T) {
		t.Parallel()

		_, err := basen.Decode("10", 1)
		require.ErrorIs(t, err, basen.ErrBase)
	})

	t.Run("digit outside base", func(t *testing.T) {
		t.Parallel()

		for _, tt := range []struct {
			s    string
			base int
		}{
			{s: "12a", base: 10},
			{s: "2", base: 2},
			{s: "fg", base: 16},
			{s: "Z", base: 16}, // folds to 35, still outside base 16
			{s: "-5", base: 10},
			{s: " 5", base: 10},
			{s: "5_0", base: 10},
		} {
			_, err := basen.Decode(tt.s, tt.base)
			require.ErrorIs(t, err, basen.ErrDigit, "%q base %d", tt.s, tt.base)
		}
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Uint64().Draw(t, "n")
		base := rapid.IntRange(basen.MinBase, basen.MaxBase).Draw(t, "base")
		minLength := rapid.IntRange(0, 70).Draw(t, "minLength")

		encoded, err := basen.Encode(n, base, minLength)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if len(encoded) < minLength {
			t.Fatalf("encoded %q shorter than minLength %d", encoded, minLength)
		}

		decoded, err := basen.Decode(encoded, base)
		if err != nil {
			t.Fatalf("decode %q: %v", encoded, err)
		}
		if decoded != n {
			t.Fatalf("round trip: got %d, want %d", decoded, n)
		}
	})
}

func TestDecodeFoldsCaseBelowBase37(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Uint64().Draw(t, "n")
		base := rapid.IntRange(basen.MinBase, 36).Draw(t, "base")

		encoded, err := basen.Encode(n, base, 0)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		decoded, err := basen.Decode(strings.ToUpper(encoded), base)
		if err != nil {
			t.Fatalf("decode %q: %v", strings.ToUpper(encoded), err)
		}
		if decoded != n {
			t.Fatalf("case-folded round trip: got %d, want %d", decoded, n)
		}
	})
}
