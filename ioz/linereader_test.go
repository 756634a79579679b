package ioz_test

import (
	"strings"

	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/ioz"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LineReader", func() {
	It("rejects a zero-length scratch buffer", func() {
		_, kind := ioz.NewLineReader(ioz.NewMemoryReader(nil), nil, ioz.LF)
		Expect(kind).To(Equal(herr.InvalidArgument))
	})

	DescribeTable("n lines with no trailing newline yield exactly n lines then InvalidState",
		func(n int) {
			lines := make([]string, n)
			for i := range lines {
				lines[i] = strings.Repeat("x", i+1)
			}
			data := strings.Join(lines, "\n")

			got, kind := ioz.ReadAllLines(ioz.NewMemoryReader([]byte(data)), make([]byte, 3), ioz.LF)
			Expect(kind).To(Equal(herr.OK))
			Expect(got).To(Equal(lines))
		},
		Entry("one line", 1),
		Entry("a handful of lines", 5),
		Entry("many short lines", 20),
	)

	It("emits a trailing empty line when the input ends with a newline", func() {
		data := "a\nb\n"
		got, kind := ioz.ReadAllLines(ioz.NewMemoryReader([]byte(data)), make([]byte, 4), ioz.LF)
		Expect(kind).To(Equal(herr.OK))
		Expect(got).To(Equal([]string{"a", "b", ""}))
	})

	It("returns InvalidState on every call once the stream is exhausted", func() {
		lr, kind := ioz.NewLineReader(ioz.NewMemoryReader([]byte("only\n")), make([]byte, 8), ioz.LF)
		Expect(kind).To(Equal(herr.OK))

		line, kind := lr.ReadLine()
		Expect(kind).To(Equal(herr.OK))
		Expect(line).To(Equal("only"))

		line, kind = lr.ReadLine()
		Expect(kind).To(Equal(herr.OK))
		Expect(line).To(Equal(""))

		_, kind = lr.ReadLine()
		Expect(kind).To(Equal(herr.InvalidState))
		_, kind = lr.ReadLine()
		Expect(kind).To(Equal(herr.InvalidState))
	})

	It("reassembles a line that spans more refills than its own length", func() {
		data := "short\n" + strings.Repeat("y", 50) + "\nz"
		got, kind := ioz.ReadAllLines(ioz.NewMemoryReader([]byte(data)), make([]byte, 4), ioz.LF)
		Expect(kind).To(Equal(herr.OK))
		Expect(got).To(Equal([]string{"short", strings.Repeat("y", 50), "z"}))
	})

	Context("CRLF mode", func() {
		It("strips the CR and splits on the LF", func() {
			data := "one\r\ntwo\r\nthree"
			got, kind := ioz.ReadAllLines(ioz.NewMemoryReader([]byte(data)), make([]byte, 4), ioz.CRLF)
			Expect(kind).To(Equal(herr.OK))
			Expect(got).To(Equal([]string{"one", "two", "three"}))
		})

		It("strips a CR that lands at a refill boundary, split from its LF", func() {
			// buffer size 4 forces "one\r" and "\ntwo" into separate refills,
			// so the CR lives at the accumulator's tail when the LF is seen.
			data := "one\r\ntwo"
			got, kind := ioz.ReadAllLines(ioz.NewMemoryReader([]byte(data)), make([]byte, 4), ioz.CRLF)
			Expect(kind).To(Equal(herr.OK))
			Expect(got).To(Equal([]string{"one", "two"}))
		})
	})
})
