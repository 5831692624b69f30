package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingHook struct {
	count int
}

func (h *countingHook) Func(HookCtx) {
	h.count++
}

type sliceHook struct {
	seen []HookPos
}

func (h sliceHook) Func(HookCtx) {}

var _ = Describe("HookableBase", func() {
	var (
		base *HookableBase
		pos  *HookPos
	)

	BeforeEach(func() {
		base = &HookableBase{}
		pos = &HookPos{Name: "Test"}
	})

	It("should invoke hooks in registration order", func() {
		var order []string

		base.AcceptHook(HookFunc(func(HookCtx) { order = append(order, "a") }))
		base.AcceptHook(HookFunc(func(HookCtx) { order = append(order, "b") }))

		base.InvokeHook(HookCtx{Pos: pos})

		Expect(order).To(Equal([]string{"a", "b"}))
		Expect(base.NumHooks()).To(Equal(2))
	})

	It("should pass the context through", func() {
		var got HookCtx

		base.AcceptHook(HookFunc(func(ctx HookCtx) { got = ctx }))
		base.InvokeHook(HookCtx{Pos: pos, Item: 42, Detail: "x"})

		Expect(got.Pos).To(BeIdenticalTo(pos))
		Expect(got.Item).To(Equal(42))
		Expect(got.Detail).To(Equal("x"))
	})

	It("should panic on a duplicated hook", func() {
		hook := &countingHook{}
		base.AcceptHook(hook)

		Expect(func() { base.AcceptHook(hook) }).To(Panic())
	})

	It("should accept distinct hooks of the same type", func() {
		first := &countingHook{}
		second := &countingHook{}

		base.AcceptHook(first)
		base.AcceptHook(HookFunc(func(HookCtx) {}))
		base.AcceptHook(second)
		base.InvokeHook(HookCtx{})

		Expect(first.count).To(Equal(1))
		Expect(second.count).To(Equal(1))
		Expect(base.Hooks()).To(HaveLen(3))
	})

	It("should accept hooks whose values cannot be compared", func() {
		hook := sliceHook{seen: []HookPos{{Name: "x"}}}

		Expect(func() {
			base.AcceptHook(hook)
			base.AcceptHook(hook)
		}).NotTo(Panic())
		Expect(base.NumHooks()).To(Equal(2))
	})
})
