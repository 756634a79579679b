package alloc_test

import (
	"github.com/nabbar/hammer/alloc"
	"github.com/nabbar/hammer/herr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("System allocator", func() {
	It("allocates, zero-fills, reallocs and disposes cleanly", func() {
		a := alloc.NewSystem()
		b := a.Allocate(32)
		Expect(b).To(HaveLen(32))

		z := a.AllocateZeroed(16)
		for _, v := range z {
			Expect(v).To(Equal(byte(0)))
		}

		b[0] = 0xAB
		grown := a.Realloc(b, 64)
		Expect(grown).To(HaveLen(64))
		Expect(grown[0]).To(Equal(byte(0xAB)))

		same := a.Realloc(grown, 10)
		Expect(same).To(Equal(grown))

		Expect(a.Dispose()).To(Equal(herr.OK))
	})

	It("returns nil for non-positive sizes", func() {
		a := alloc.NewSystem()
		Expect(a.Allocate(0)).To(BeNil())
		Expect(a.Allocate(-1)).To(BeNil())
	})
})

var _ = Describe("BumpPointer allocator", func() {
	It("hands out three oversized blocks and writes a sentinel into each", func() {
		// Scenario from the spec: three blocks just over 4MB, sentinel 14.
		base := alloc.NewSystem()
		b := alloc.NewBumpPointer(base)

		const sentinel = 14
		blocks := make([][]byte, 3)
		for i := 0; i < 3; i++ {
			size := 4*1024*1023 + i
			blk := b.Allocate(size)
			Expect(blk).NotTo(BeNil())
			Expect(blk).To(HaveLen(size))
			blk[0] = sentinel
			blocks[i] = blk
		}
		for _, blk := range blocks {
			Expect(blk[0]).To(Equal(byte(sentinel)))
			b.Free(blk) // no-op, but must not panic
		}
		Expect(b.Dispose()).To(Equal(herr.OK))
	})

	It("packs small allocations into shared segments", func() {
		b := alloc.NewBumpPointer(nil)
		a := b.Allocate(100)
		c := b.Allocate(100)
		Expect(a).NotTo(BeNil())
		Expect(c).NotTo(BeNil())
		a[0] = 1
		c[0] = 2
		Expect(a[0]).To(Equal(byte(1)))
		Expect(c[0]).To(Equal(byte(2)))
	})
})

var _ = Describe("Stats allocator", func() {
	It("counts allocations while tracking is enabled", func() {
		s := alloc.NewStats(alloc.NewSystem(), nil)
		s.Allocate(10)
		s.Allocate(20)
		Expect(s.Count()).To(Equal(int64(2)))
		Expect(s.Bytes()).To(Equal(int64(30)))

		s.SetTracking(false)
		s.Allocate(5)
		Expect(s.Count()).To(Equal(int64(2)))

		s.SetTracking(true)
		s.Allocate(5)
		Expect(s.Count()).To(Equal(int64(3)))
	})

	It("cascades dispose to the base allocator", func() {
		s := alloc.NewStats(alloc.NewSystem(), nil)
		Expect(s.Dispose()).To(Equal(herr.OK))
	})
})

var _ = Describe("OOM allocator", func() {
	It("fails exactly at the configured N-th allocation", func() {
		const n = 5
		o := alloc.NewOOM(alloc.NewSystem(), n)
		for i := 1; i < n; i++ {
			Expect(o.Allocate(8)).NotTo(BeNil(), "allocation %d should succeed", i)
			Expect(o.Reached()).To(BeFalse())
		}
		Expect(o.Allocate(8)).To(BeNil())
		Expect(o.Reached()).To(BeTrue())
		// Stays failed afterwards.
		Expect(o.Allocate(8)).To(BeNil())
	})

	It("never fails when constructed with a non-positive threshold", func() {
		o := alloc.NewOOM(alloc.NewSystem(), 0)
		for i := 0; i < 50; i++ {
			Expect(o.Allocate(1)).NotTo(BeNil())
		}
	})
})

var _ = Describe("Buffer allocator", func() {
	It("serves from the fixed region until exhausted, then fails without a fallback", func() {
		region := make([]byte, 16)
		b := alloc.NewBuffer(region, nil)

		a := b.Allocate(10)
		Expect(a).NotTo(BeNil())
		c := b.Allocate(10)
		Expect(c).To(BeNil())
	})

	It("falls through to the fallback allocator on overflow", func() {
		region := make([]byte, 4)
		fallback := alloc.NewSystem()
		b := alloc.NewBuffer(region, fallback)

		a := b.Allocate(4)
		Expect(a).NotTo(BeNil())
		over := b.Allocate(100)
		Expect(over).NotTo(BeNil())
		Expect(over).To(HaveLen(100))
	})
})
