package str_test

import (
	"github.com/nabbar/hammer/alloc"
	"github.com/nabbar/hammer/container/str"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("String", func() {
	It("views hold the string's content and Dispose is a no-op", func() {
		s := str.View("hello")
		Expect(s.String()).To(Equal("hello"))
		Expect(s.IsOwned()).To(BeFalse())
		s.Dispose()
	})

	It("owned strings copy and Dispose frees through the allocator", func() {
		a := alloc.NewSystem()
		s := str.Owned(a, "hello")
		Expect(s.String()).To(Equal("hello"))
		Expect(s.IsOwned()).To(BeTrue())
		s.Dispose()
	})

	It("hash is stable across repeated calls within a process run", func() {
		s := str.View("some-key")
		h1 := s.Hash()
		h2 := s.Hash()
		Expect(h1).To(Equal(h2))
	})

	It("truncates an owned string at its first NUL byte", func() {
		a := alloc.NewSystem()
		s := str.Owned(a, "abc\x00def")
		s.Truncate()
		Expect(s.String()).To(Equal("abc"))
	})

	It("leaves a view untouched by Truncate", func() {
		s := str.View("abc\x00def")
		s.Truncate()
		Expect(s.Len()).To(Equal(7))
	})
})
