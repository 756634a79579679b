package strbuilder_test

import (
	"github.com/nabbar/hammer/container/strbuilder"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	It("accumulates writes in order", func() {
		b := strbuilder.New()
		b.WriteString("hello, ")
		b.WriteByte('w')
		b.Write([]byte("orld"))
		Expect(b.String()).To(Equal("hello, world"))
	})

	It("renders a substring by byte range", func() {
		b := strbuilder.New()
		b.WriteString("0123456789")
		Expect(b.Substring(2, 5)).To(Equal("234"))
	})

	It("renders a trailing-NUL C string", func() {
		b := strbuilder.New()
		b.WriteString("ab")
		Expect(b.CString()).To(Equal([]byte{'a', 'b', 0}))
	})

	It("resets while keeping the builder usable", func() {
		b := strbuilder.New()
		b.WriteString("abc")
		b.Reset()
		Expect(b.Len()).To(Equal(0))
		b.WriteString("xyz")
		Expect(b.String()).To(Equal("xyz"))
	})
})
