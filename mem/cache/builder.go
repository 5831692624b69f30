package cache

import (
	"github.com/sarchlab/csim/mem/cache/internal/tagging"
	"github.com/sarchlab/csim/sim/hooking"
)

// A Builder can build tag-only caches.
type Builder struct {
	log2NumSets      uint
	wayAssociativity int
	log2BlockSize    uint
	victimFinder     tagging.VictimFinder
	hooks            []hooking.Hook
}

// MakeBuilder creates a builder with default parameter setting
func MakeBuilder() Builder {
	return Builder{
		log2NumSets:      4,
		wayAssociativity: 1,
		log2BlockSize:    4,
	}
}

// WithLog2NumSets sets the number of sets as a power of 2.
func (b Builder) WithLog2NumSets(n uint) Builder {
	b.log2NumSets = n
	return b
}

// WithWayAssociativity sets the number of lines in each set.
func (b Builder) WithWayAssociativity(n int) Builder {
	b.wayAssociativity = n
	return b
}

// WithLog2BlockSize sets the number of bytes in a cache line as a power of 2.
func (b Builder) WithLog2BlockSize(n uint) Builder {
	b.log2BlockSize = n
	return b
}

// WithGeometry sets all three shape parameters at once.
func (b Builder) WithGeometry(g Geometry) Builder {
	b.log2NumSets = g.Log2NumSets
	b.wayAssociativity = g.WayAssociativity
	b.log2BlockSize = g.Log2BlockSize

	return b
}

// WithVictimFinder replaces the LRU replacement policy.
func (b Builder) WithVictimFinder(vf tagging.VictimFinder) Builder {
	b.victimFinder = vf
	return b
}

// WithHook attaches a hook to the cache being built.
func (b Builder) WithHook(hook hooking.Hook) Builder {
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], hook)
	return b
}

// Build returns a new empty cache, or an error if the geometry is unusable.
func (b Builder) Build() (*Cache, error) {
	g := Geometry{
		Log2NumSets:      b.log2NumSets,
		WayAssociativity: b.wayAssociativity,
		Log2BlockSize:    b.log2BlockSize,
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	c := &Cache{
		geometry:     g,
		tags:         tagging.NewTagArray(g.Log2NumSets, g.WayAssociativity, g.Log2BlockSize),
		victimFinder: b.victimFinder,
	}

	if c.victimFinder == nil {
		c.victimFinder = tagging.NewLRUVictimFinder()
	}

	for _, h := range b.hooks {
		c.AcceptHook(h)
	}

	return c, nil
}
