package hashmap_test

import (
	"github.com/nabbar/hammer/container/hashmap"
	"github.com/nabbar/hammer/herr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HashMap", func() {
	It("fills with 1000 int64 entries, removes evens, and leaves the odds", func() {
		h, kind := hashmap.New[int64, int64](16, hashmap.DefaultLoadFactor, nil, nil)
		Expect(kind).To(Equal(herr.OK))

		for i := int64(0); i < 1000; i++ {
			h.Put(i, 2*i)
		}
		for i := int64(0); i < 1000; i += 2 {
			Expect(h.Remove(i)).To(BeTrue())
		}
		for i := int64(0); i < 1000; i++ {
			v, k := h.Get(i)
			if i%2 == 0 {
				Expect(k).To(Equal(herr.NotFound))
			} else {
				Expect(k).To(Equal(herr.OK))
				Expect(v).To(Equal(2 * i))
			}
		}
		Expect(h.Count()).To(Equal(500))
	})

	It("rejects an out-of-range load factor or non-positive capacity", func() {
		_, kind := hashmap.New[int, int](0, 0.75, nil, nil)
		Expect(kind).To(Equal(herr.InvalidArgument))
		_, kind = hashmap.New[int, int](4, 0.2, nil, nil)
		Expect(kind).To(Equal(herr.InvalidArgument))
		_, kind = hashmap.New[int, int](4, 1.5, nil, nil)
		Expect(kind).To(Equal(herr.InvalidArgument))
	})

	It("removing an absent key twice both times reports removed=false", func() {
		h, _ := hashmap.New[string, int](4, 0.75, nil, nil)
		h.Put("a", 1)
		Expect(h.Remove("missing")).To(BeFalse())
		Expect(h.Remove("missing")).To(BeFalse())
	})

	It("disposes the prior value when the same key is put again", func() {
		var disposed []int
		h, _ := hashmap.New[string, int](4, 0.75, nil, func(v int) { disposed = append(disposed, v) })
		h.Put("a", 1)
		h.Put("a", 2)
		Expect(disposed).To(Equal([]int{1}))
		v, _ := h.Get("a")
		Expect(v).To(Equal(2))
	})

	It("GetRef returns a pointer stable until the key is removed", func() {
		h, _ := hashmap.New[string, int](4, 0.75, nil, nil)
		h.Put("a", 10)
		ref, kind := h.GetRef("a")
		Expect(kind).To(Equal(herr.OK))
		*ref = 20
		v, _ := h.Get("a")
		Expect(v).To(Equal(20))
	})

	It("GetRef stays valid across a rehash and sibling Puts into the same bucket", func() {
		h, _ := hashmap.New[int, int](4, 0.75, nil, nil)
		h.Put(0, 100)
		ref, kind := h.GetRef(0)
		Expect(kind).To(Equal(herr.OK))
		Expect(*ref).To(Equal(100))

		// Push well past capacity*loadFactor to force at least one rehash,
		// and insert other keys that land in key 0's original bucket.
		for i := 1; i < 50; i++ {
			h.Put(i, i)
		}

		*ref = 999
		v, getKind := h.Get(0)
		Expect(getKind).To(Equal(herr.OK))
		Expect(v).To(Equal(999))

		ref2, kind2 := h.GetRef(0)
		Expect(kind2).To(Equal(herr.OK))
		Expect(ref2).To(Equal(ref))
	})

	It("enumerate stops and propagates a non-OK callback result", func() {
		h, _ := hashmap.New[int, int](4, 0.75, nil, nil)
		for i := 0; i < 10; i++ {
			h.Put(i, i)
		}
		seen := 0
		kind := h.Enumerate(func(k, v int) herr.Kind {
			seen++
			if seen == 3 {
				return herr.LimitExceeded
			}
			return herr.OK
		})
		Expect(kind).To(Equal(herr.LimitExceeded))
		Expect(seen).To(Equal(3))
	})

	It("moveTo empties the source into the destination", func() {
		src, _ := hashmap.New[int, int](4, 0.75, nil, nil)
		dst, _ := hashmap.New[int, int](4, 0.75, nil, nil)
		for i := 0; i < 5; i++ {
			src.Put(i, i*i)
		}
		Expect(src.MoveTo(dst)).To(Equal(herr.OK))
		Expect(src.Count()).To(Equal(0))
		Expect(dst.Count()).To(Equal(5))
		v, k := dst.Get(3)
		Expect(k).To(Equal(herr.OK))
		Expect(v).To(Equal(9))
	})

	It("rehashes transparently as it grows past the load factor", func() {
		h, _ := hashmap.New[int, int](2, 0.75, nil, nil)
		for i := 0; i < 200; i++ {
			h.Put(i, i)
		}
		for i := 0; i < 200; i++ {
			v, k := h.Get(i)
			Expect(k).To(Equal(herr.OK))
			Expect(v).To(Equal(i))
		}
	})
})
