package logger_test

import (
	"bytes"

	hmerr "github.com/nabbar/hammer/errors"
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/logger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	It("writes JSON lines at the configured level", func() {
		var buf bytes.Buffer
		l := logger.New("info", "json", &buf)
		l.Kind(herr.OK, "started")
		Expect(buf.String()).To(ContainSubstring(`"msg":"started"`))
		Expect(buf.String()).To(ContainSubstring(`"kind":"ok"`))
	})

	It("defaults to info on an unrecognized level", func() {
		var buf bytes.Buffer
		l := logger.New("bogus", "text", &buf)
		l.Kind(herr.NotFound, "image missing")
		Expect(buf.String()).To(ContainSubstring("image missing"))
	})

	It("logs an embedder error with its stack field", func() {
		var buf bytes.Buffer
		l := logger.New("debug", "text", &buf)
		l.Err(hmerr.New(herr.InvalidData, "bad row"))
		Expect(buf.String()).To(ContainSubstring("bad row"))
	})
})
