package tsid

import "sync"

var (
	defaultMu  sync.RWMutex
	defaultGen = newDefaultGenerator()
)

// newDefaultGenerator builds the stock process-wide generator: no node
// partition, all 22 random bits spent on the counter.
func newDefaultGenerator() *Generator {
	g, err := NewGenerator(WithNodeBits(0))
	if err != nil {
		// Static arguments; construction cannot fail.
		panic(err)
	}
	return g
}

// Default returns the process-wide generator used by Make.
func Default() *Generator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultGen
}

// SetDefault replaces the process-wide generator, typically early in main
// after reading configuration. Passing nil restores the stock default. The
// swap is atomic for subsequent callers; a caller already inside Make keeps
// the generator it started with.
func SetDefault(g *Generator) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if g == nil {
		defaultGen = newDefaultGenerator()
		return
	}
	defaultGen = g
}

// Make returns the next identifier from the process-wide default generator.
// Deployments that partition the random field per node should build their
// own with NewGenerator and install it with SetDefault.
func Make() TSID {
	return Default().Generate()
}
