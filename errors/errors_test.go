package errors_test

import (
	stderrors "errors"

	hmerr "github.com/nabbar/hammer/errors"
	"github.com/nabbar/hammer/herr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("reports the wrapped kind", func() {
		e := hmerr.New(herr.NotFound, "image missing")
		Expect(e.Kind()).To(Equal(herr.NotFound))
		Expect(e.Error()).To(ContainSubstring("not found"))
		Expect(e.Error()).To(ContainSubstring("image missing"))
	})

	It("chains a cause through Unwrap", func() {
		cause := stderrors.New("disk read failed")
		e := hmerr.Wrap(herr.PlatformDependent, cause, "opening image")
		Expect(stderrors.Unwrap(e)).To(Equal(cause))
		Expect(e.Error()).To(ContainSubstring("disk read failed"))
	})

	It("captures a non-empty stack trace", func() {
		e := hmerr.New(herr.InvalidData, "bad row")
		Expect(e.Stack()).ToNot(BeEmpty())
	})
})
