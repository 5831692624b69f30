package cache

import "fmt"

// MaxNumLines bounds the number of lines a cache may hold. The whole line
// arena is allocated up front.
const MaxNumLines = 1 << 26

// MaxLog2NumSets bounds the number of set index bits so that a single way per
// set stays within MaxNumLines.
const MaxLog2NumSets = 26

// AddressWidth is the number of bits in a simulated address.
const AddressWidth = 64

// Geometry describes the shape of a cache: 2^Log2NumSets sets of
// WayAssociativity lines, each holding a block of 2^Log2BlockSize bytes.
type Geometry struct {
	Log2NumSets      uint
	WayAssociativity int
	Log2BlockSize    uint
}

// NumSets returns the number of sets.
func (g Geometry) NumSets() int {
	return 1 << g.Log2NumSets
}

// BlockSize returns the number of bytes in a block.
func (g Geometry) BlockSize() uint64 {
	return 1 << g.Log2BlockSize
}

// NumLines returns the total number of lines across all sets.
func (g Geometry) NumLines() int {
	return g.NumSets() * g.WayAssociativity
}

// TotalByteSize returns the capacity of the cache in bytes.
func (g Geometry) TotalByteSize() uint64 {
	return uint64(g.NumLines()) * g.BlockSize()
}

// Validate checks that the geometry describes a buildable cache.
func (g Geometry) Validate() error {
	if g.WayAssociativity < 1 {
		return fmt.Errorf(
			"way associativity must be at least 1, got %d",
			g.WayAssociativity)
	}

	if g.Log2NumSets > MaxLog2NumSets {
		return fmt.Errorf(
			"at most %d set index bits are supported, got %d",
			MaxLog2NumSets, g.Log2NumSets)
	}

	if g.WayAssociativity > MaxNumLines>>g.Log2NumSets {
		return fmt.Errorf(
			"%d sets of %d ways exceed the limit of %d lines",
			g.NumSets(), g.WayAssociativity, MaxNumLines)
	}

	if g.Log2NumSets+g.Log2BlockSize >= AddressWidth {
		return fmt.Errorf(
			"set index bits (%d) and block bits (%d) must leave room "+
				"for a tag in a %d-bit address",
			g.Log2NumSets, g.Log2BlockSize, AddressWidth)
	}

	return nil
}

func (g Geometry) String() string {
	return fmt.Sprintf("s=%d E=%d b=%d",
		g.Log2NumSets, g.WayAssociativity, g.Log2BlockSize)
}
