package ioz_test

import (
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/ioz"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LimitedReader", func() {
	It("truncates reads to stay within the cap", func() {
		src := ioz.NewMemoryReader([]byte("0123456789"))
		l := ioz.NewLimitedReader(src, 5)
		buf := make([]byte, 10)

		n, kind := l.Read(buf)
		Expect(kind).To(Equal(herr.OK))
		Expect(n).To(Equal(5))
		Expect(string(buf[:n])).To(Equal("01234"))
		Expect(l.Consumed()).To(Equal(int64(5)))
	})

	It("returns LimitExceeded once the cap is reached", func() {
		src := ioz.NewMemoryReader([]byte("01234567"))
		l := ioz.NewLimitedReader(src, 4)
		buf := make([]byte, 4)

		_, kind := l.Read(buf)
		Expect(kind).To(Equal(herr.OK))

		_, kind = l.Read(buf)
		Expect(kind).To(Equal(herr.LimitExceeded))
	})
})
