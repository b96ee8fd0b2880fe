// Package tsid generates Time-Sorted Unique Identifiers: 64-bit values that
// sort by creation time and stay unique under concurrent generation.
//
// # Layout
//
// A TSID packs two components into a uint64, serialized big-endian:
//
//	bit 63                                     bit 22 | bit 21          bit 0
//	    timestamp (42 bits, milliseconds since epoch) | random (22 bits)
//
// The random field subdivides into a node identifier (0 to 20 bits, high
// part) and a counter (the remaining bits, low part). With the default 10
// node bits, up to 1024 nodes each issue up to 4096 identifiers per
// millisecond before the generator borrows from the timestamp. The default
// epoch is 2020-01-01T00:00:00Z, which keeps the 42-bit timestamp in range
// until roughly the year 2159.
//
// # Usage
//
//	gen, err := tsid.NewGenerator(tsid.WithNode(1))
//	if err != nil {
//		// ...
//	}
//	id := gen.Generate()
//	fmt.Println(id) // canonical 13-character form, e.g. 0AXFXR5W7VBX0
//
// Or, through the process-wide default generator:
//
//	id := tsid.Make()
//
// The canonical form is a fixed-width base-32 encoding over a
// Crockford-style alphabet (no I, L, O or U). It is case-insensitive to
// parse, and because the alphabet is ASCII-ascending, lexicographic order of
// canonical strings equals numeric order of the identifiers.
//
// # Monotonicity
//
// A Generator never yields the same or a smaller value twice. Within one
// millisecond the counter increments; when it would overflow, the generator
// advances its view of time one millisecond ahead of the wall clock and
// resets the counter, so bursts beyond the per-millisecond capacity stay
// strictly increasing. A wall clock that jumps backwards is absorbed the
// same way, as a long repeated millisecond.
//
// Node identifiers are assigned locally, either explicitly, from
// configuration, or drawn at random. Keeping them distinct across
// cooperating processes is the caller's responsibility; identifiers from
// generators with different epochs or node widths do not share a total
// order.
package tsid
