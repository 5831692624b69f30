package tagging

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tags", func() {
	var (
		tags *tagArrayImpl
	)

	BeforeEach(func() {
		tags = &tagArrayImpl{
			Log2NumSets:   10,
			NumWays:       4,
			Log2BlockSize: 6,
		}
		tags.Reset()
	})

	It("should allocate one flat line per way", func() {
		Expect(tags.Lines).To(HaveLen(4096))
	})

	It("should decompose the address into set and tag", func() {
		addr := uint64(0xABCD_1234)

		setID, lines := tags.GetSet(addr)

		Expect(setID).To(Equal(int((addr >> 6) & 0x3FF)))
		Expect(lines).To(HaveLen(4))
		Expect(tags.TagOf(addr)).To(Equal(addr >> 16))
	})

	It("should not find anything in an empty array", func() {
		_, _, found := tags.Lookup(0x100)
		Expect(found).To(BeFalse())
	})

	It("should find a filled line", func() {
		setID, _ := tags.GetSet(0x100)
		tags.Fill(setID, 2, tags.TagOf(0x100))

		gotSet, wayID, found := tags.Lookup(0x13F)

		Expect(found).To(BeTrue())
		Expect(gotSet).To(Equal(setID))
		Expect(wayID).To(Equal(2))
	})

	It("should not match an invalid line with the same tag", func() {
		setID, lines := tags.GetSet(0x100)
		lines[0].Tag = tags.TagOf(0x100)

		_, _, found := tags.Lookup(0x100)

		Expect(found).To(BeFalse())
		Expect(setID).To(Equal(4))
	})

	It("should return the previous content on fill", func() {
		tags.Fill(1, 0, 7)

		evicted := tags.Fill(1, 0, 9)

		Expect(evicted.IsValid).To(BeTrue())
		Expect(evicted.Tag).To(Equal(uint64(7)))
		Expect(tags.Line(1, 0).Tag).To(Equal(uint64(9)))
	})

	It("should stamp every touch with a strictly increasing clock", func() {
		Expect(tags.Clock()).To(Equal(uint64(1)))

		tags.Fill(0, 0, 1)
		tags.Fill(0, 1, 2)
		tags.Visit(0, 0)

		Expect(tags.Line(0, 1).LastUsed).To(Equal(uint64(2)))
		Expect(tags.Line(0, 0).LastUsed).To(Equal(uint64(3)))
		Expect(tags.Clock()).To(Equal(uint64(4)))
	})

	It("should invalidate everything on reset", func() {
		tags.Fill(3, 1, 5)

		tags.Reset()

		Expect(tags.Line(3, 1)).To(BeZero())
		Expect(tags.Clock()).To(Equal(uint64(1)))
	})
})
