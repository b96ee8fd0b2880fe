package tsid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"sync"
	"time"
)

const (
	// DefaultNodeBits is the node width used when WithNodeBits is absent:
	// up to 1024 nodes, each issuing up to 4096 identifiers per
	// millisecond.
	DefaultNodeBits = 10

	maxNodeBits = 20
)

// RandomFunc supplies the requested number of random bits (at most 22) in
// the low bits of its result. A Generator calls it to seed the counter on
// every fresh millisecond and, when no node is configured, once to draw a
// node identifier.
type RandomFunc func(bits int) uint32

// defaultRandom draws from crypto/rand, falling back to the process-seeded
// math/rand source when the system source is unavailable.
func defaultRandom(bits int) uint32 {
	if bits <= 0 {
		return 0
	}
	mask := uint32(1)<<bits - 1
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return mrand.Uint32() & mask
	}
	return binary.BigEndian.Uint32(b[:]) & mask
}

// Generator produces strictly increasing TSIDs. It is safe for concurrent
// use: one mutex scopes the read-modify-write of the clock and counter
// state, and the remaining fields are immutable after construction.
type Generator struct {
	mu        sync.Mutex
	lastMilli int64
	counter   uint32

	node        uint32
	nodeBits    int
	counterBits int
	nodeMask    uint32
	counterMask uint32
	epochMilli  int64
	random      RandomFunc
	clock       Clock
}

type generatorOptions struct {
	node       *int
	nodeBits   int
	epochMilli int64
	random     RandomFunc
	clock      Clock
}

// Option configures a Generator at construction time.
type Option func(*generatorOptions)

// WithNode pins the node identifier. Without it the generator draws a
// random node that fits the configured node bits.
func WithNode(node int) Option {
	return func(o *generatorOptions) {
		n := node
		o.node = &n
	}
}

// WithNodeBits sets how many of the 22 random bits identify the node, 0
// through 20; the rest form the per-millisecond counter. The default is
// DefaultNodeBits.
func WithNodeBits(bits int) Option {
	return func(o *generatorOptions) {
		o.nodeBits = bits
	}
}

// WithEpoch moves time zero of the embedded timestamp. The default is
// DefaultEpochMilli. All generators that share identifiers must share an
// epoch.
func WithEpoch(epoch time.Time) Option {
	return func(o *generatorOptions) {
		o.epochMilli = epoch.UnixMilli()
	}
}

// WithRandom replaces the random source, typically with a deterministic one
// in tests. A nil fn keeps the default source.
func WithRandom(fn RandomFunc) Option {
	return func(o *generatorOptions) {
		if fn != nil {
			o.random = fn
		}
	}
}

// WithClock replaces the wall clock, typically with a manual one in tests.
// A nil clock keeps the real one.
func WithClock(c Clock) Option {
	return func(o *generatorOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// NewGenerator builds a Generator. It fails with ErrInvalidNodeBits when the
// configured node width is outside 0 through 20, and with ErrNodeTooLarge
// when the node identifier does not fit that width.
func NewGenerator(opts ...Option) (*Generator, error) {
	o := generatorOptions{
		nodeBits:   DefaultNodeBits,
		epochMilli: DefaultEpochMilli,
		random:     defaultRandom,
		clock:      RealClock{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	if o.nodeBits < 0 || o.nodeBits > maxNodeBits {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNodeBits, o.nodeBits)
	}
	counterBits := randomBits - o.nodeBits

	var node int
	if o.node != nil {
		node = *o.node
	} else {
		node = int(o.random(maxNodeBits) >> (maxNodeBits - o.nodeBits))
	}
	if node < 0 || node>>o.nodeBits != 0 {
		return nil, fmt.Errorf("%w: node %d with %d node bits", ErrNodeTooLarge, node, o.nodeBits)
	}

	g := &Generator{
		node:        uint32(node),
		nodeBits:    o.nodeBits,
		counterBits: counterBits,
		nodeMask:    uint32(randomMask >> counterBits),
		counterMask: uint32(randomMask >> o.nodeBits),
		epochMilli:  o.epochMilli,
		random:      o.random,
		clock:       o.clock,
	}
	g.counter = g.random(g.counterBits) & g.counterMask
	g.lastMilli = g.clock.Now().UnixMilli()
	return g, nil
}

// Generate returns the next identifier. It never fails: a counter overflow
// within one millisecond borrows the next millisecond from the timestamp
// and resets the counter, and a wall clock running behind the generator's
// view of time is absorbed as a repeated millisecond.
func (g *Generator) Generate() TSID {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now().UnixMilli()
	if now <= g.lastMilli {
		// Same millisecond bucket, or a clock that jumped backwards.
		g.counter++
		if g.counter>>g.counterBits != 0 {
			g.lastMilli++
			g.counter = 0
		}
	} else {
		g.lastMilli = now
		g.counter = g.random(g.counterBits) & g.counterMask
	}

	n := uint64(g.lastMilli-g.epochMilli)<<randomBits |
		uint64(g.node&g.nodeMask)<<g.counterBits |
		uint64(g.counter&g.counterMask)
	return TSID(n)
}

// Node returns the node identifier, configured or drawn.
func (g *Generator) Node() int { return int(g.node) }

// NodeBits returns the width of the node field.
func (g *Generator) NodeBits() int { return g.nodeBits }

// CounterBits returns the width of the counter field, 22 minus NodeBits.
func (g *Generator) CounterBits() int { return g.counterBits }

// Epoch returns the generator's epoch in UTC.
func (g *Generator) Epoch() time.Time {
	return time.UnixMilli(g.epochMilli).UTC()
}
