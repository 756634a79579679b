package array_test

import (
	"cmp"

	"github.com/nabbar/hammer/container/array"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Array", func() {
	It("set then get returns the value written, byte-wise", func() {
		a := array.New[int](nil)
		a.Add(1)
		a.Add(2)
		a.Add(3)
		Expect(a.Set(1, 99)).To(BeTrue())
		v, ok := a.Get(1)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(99))
	})

	It("reports out of bounds on Get/Set", func() {
		a := array.New[int](nil)
		_, ok := a.Get(0)
		Expect(ok).To(BeFalse())
		Expect(a.Set(0, 1)).To(BeFalse())
	})

	It("grows an arbitrary amount in one AddRange call", func() {
		a := array.New[int](nil)
		a.Add(0)
		a.AddRange([]int{1, 2, 3, 4, 5})
		Expect(a.Count()).To(Equal(6))
		for i := 0; i < 6; i++ {
			v, _ := a.Get(i)
			Expect(v).To(Equal(i))
		}
	})

	It("expands with zero values when no initializer is given", func() {
		a := array.New[int](nil)
		a.Expand(3, nil)
		Expect(a.Count()).To(Equal(3))
		v, _ := a.Get(2)
		Expect(v).To(Equal(0))
	})

	It("expands calling the initializer per new slot", func() {
		a := array.New[int](nil)
		a.Expand(3, func(index int, slot *int) { *slot = index * 10 })
		v0, _ := a.Get(0)
		v2, _ := a.Get(2)
		Expect(v0).To(Equal(0))
		Expect(v2).To(Equal(20))
	})

	It("disposes every element on Clear and resets count but not capacity", func() {
		var disposed []int
		a := array.New[int](func(v int) { disposed = append(disposed, v) })
		a.Add(1)
		a.Add(2)
		capBefore := a.Capacity()
		a.Clear()
		Expect(disposed).To(ConsistOf(1, 2))
		Expect(a.Count()).To(Equal(0))
		Expect(a.Capacity()).To(Equal(capBefore))
	})

	It("sorting twice equals sorting once", func() {
		a := array.New[int](nil)
		a.AddRange([]int{5, 3, 4, 1, 2})
		less := func(x, y int) int { return cmp.Compare(x, y) }
		a.Sort(less)
		once := append([]int{}, a.Slice()...)
		a.Sort(less)
		twice := append([]int{}, a.Slice()...)
		Expect(twice).To(Equal(once))
		Expect(once).To(Equal([]int{1, 2, 3, 4, 5}))
	})
})
