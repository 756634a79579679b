package cobra_test

import (
	hmcobra "github.com/nabbar/hammer/cobra"
	"github.com/nabbar/hammer/herr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewRoot", func() {
	It("exposes a --config flag", func() {
		root, path := hmcobra.NewRoot("hammerctl", "runtime CLI")
		Expect(root.PersistentFlags().Lookup("config")).ToNot(BeNil())
		Expect(*path).To(Equal(""))
	})
})

var _ = Describe("ExitCode", func() {
	It("maps OK to zero", func() {
		Expect(hmcobra.ExitCode(herr.OK)).To(Equal(0))
	})

	It("maps distinct kinds to distinct non-zero codes", func() {
		Expect(hmcobra.ExitCode(herr.NotFound)).ToNot(Equal(0))
		Expect(hmcobra.ExitCode(herr.NotFound)).ToNot(Equal(hmcobra.ExitCode(herr.InvalidData)))
	})
})

var _ = Describe("KindError", func() {
	It("returns nil for OK", func() {
		Expect(hmcobra.KindError(herr.OK, "loading")).To(BeNil())
	})

	It("wraps a failing kind with the action", func() {
		err := hmcobra.KindError(herr.NotFound, "loading image")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("loading image"))
		Expect(err.Error()).To(ContainSubstring("not found"))
	})
})
