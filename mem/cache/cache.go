// Package cache models a set-associative cache that only tracks which blocks
// are present. There is no data, no dirty state and no latency; an access
// either hits or misses, and a miss may evict the least recently used line.
package cache

import (
	"github.com/sarchlab/csim/mem/cache/internal/tagging"
	"github.com/sarchlab/csim/sim/hooking"
)

// HookPosAccess marks the point right after an access has updated the tags.
var HookPosAccess = &hooking.HookPos{Name: "CacheAccess"}

// AccessDetail describes what a single access did to the tag array. It is
// delivered as the Detail of hooks at HookPosAccess.
type AccessDetail struct {
	Address    uint64
	SetID      int
	WayID      int
	Tag        uint64
	Outcome    Outcome
	EvictedTag uint64
}

// An Accessor can look up addresses.
type Accessor interface {
	Access(addr uint64) Outcome
}

// Cache is a tag-only set-associative cache.
type Cache struct {
	hooking.HookableBase

	geometry     Geometry
	tags         tagging.TagArray
	victimFinder tagging.VictimFinder
}

// Geometry returns the shape of the cache.
func (c *Cache) Geometry() Geometry {
	return c.geometry
}

// Access looks up addr, updating the LRU order, and fills the block on a miss.
func (c *Cache) Access(addr uint64) Outcome {
	setID, wayID, found := c.tags.Lookup(addr)
	if found {
		c.tags.Visit(setID, wayID)
		c.notify(AccessDetail{
			Address: addr,
			SetID:   setID,
			WayID:   wayID,
			Tag:     c.tags.TagOf(addr),
			Outcome: Hit,
		})

		return Hit
	}

	return c.fill(addr)
}

func (c *Cache) fill(addr uint64) Outcome {
	setID, lines := c.tags.GetSet(addr)
	wayID := c.victimFinder.FindVictim(lines)
	tag := c.tags.TagOf(addr)

	evicted := c.tags.Fill(setID, wayID, tag)

	detail := AccessDetail{
		Address: addr,
		SetID:   setID,
		WayID:   wayID,
		Tag:     tag,
		Outcome: MissNoEvict,
	}

	if evicted.IsValid {
		detail.Outcome = MissWithEvict
		detail.EvictedTag = evicted.Tag
	}

	c.notify(detail)

	return detail.Outcome
}

func (c *Cache) notify(detail AccessDetail) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosAccess,
		Item:   detail.Address,
		Detail: detail,
	})
}

// Line reports whether the given way is valid and, if so, the tag it holds.
func (c *Cache) Line(setID, wayID int) (tag uint64, valid bool) {
	line := c.tags.Line(setID, wayID)
	return line.Tag, line.IsValid
}

// Reset empties the cache and restarts the LRU order.
func (c *Cache) Reset() {
	c.tags.Reset()
}
