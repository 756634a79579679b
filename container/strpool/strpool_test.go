package strpool_test

import (
	"github.com/nabbar/hammer/container/strpool"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StringPool", func() {
	It("returns the same pointer for pairwise-equal inputs", func() {
		p := strpool.New(nil)
		a := p.GetRef("widget")
		b := p.GetRef("widget")
		Expect(a).To(BeIdenticalTo(b))
	})

	It("does not grow the count for repeated input", func() {
		p := strpool.New(nil)
		p.GetRef("a")
		p.GetRef("a")
		p.GetRef("b")
		Expect(p.Count()).To(Equal(2))
	})

	It("interned strings carry the right content", func() {
		p := strpool.New(nil)
		ref := p.GetRef("payload")
		Expect(ref.String()).To(Equal("payload"))
	})
})
