package herr_test

import (
	"github.com/nabbar/hammer/herr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Merge", func() {
	It("keeps the first error when it is not OK", func() {
		Expect(herr.Merge(herr.OutOfMemory, herr.NotFound)).To(Equal(herr.OutOfMemory))
	})

	It("falls through to the second error when the first is OK", func() {
		Expect(herr.Merge(herr.OK, herr.NotFound)).To(Equal(herr.NotFound))
	})

	It("returns OK when both are OK", func() {
		Expect(herr.Merge(herr.OK, herr.OK)).To(Equal(herr.OK))
	})

	It("folds left to right across MergeAll, older wins", func() {
		Expect(herr.MergeAll(herr.OK, herr.OK, herr.Timeout, herr.Disconnected)).To(Equal(herr.Timeout))
		Expect(herr.MergeAll()).To(Equal(herr.OK))
	})
})

var _ = Describe("Kind", func() {
	It("reports OK correctly", func() {
		Expect(herr.OK.IsOK()).To(BeTrue())
		Expect(herr.NotFound.IsOK()).To(BeFalse())
	})

	It("stringifies known kinds", func() {
		Expect(herr.Timeout.String()).To(Equal("timeout"))
		Expect(herr.OK.String()).To(Equal("ok"))
	})
})
