package replay_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/csim/mem/cache"
	"github.com/sarchlab/csim/sim/replay"
)

var _ = Describe("Statistics", func() {
	It("should count outcomes", func() {
		var s replay.Statistics

		s.Add(cache.Hit)
		s.Add(cache.MissNoEvict)
		s.Add(cache.MissWithEvict)
		s.Add(cache.MissWithEvict)

		Expect(s).To(Equal(replay.Statistics{Hits: 1, Misses: 3, Evictions: 2}))
		Expect(s.NumAccesses()).To(Equal(uint64(4)))
	})

	It("should render the summary line", func() {
		s := replay.Statistics{Hits: 4, Misses: 5, Evictions: 3}

		Expect(s.String()).To(Equal("hits:4 misses:5 evictions:3"))
	})
})
