package ioz_test

import (
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/ioz"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CompositeReader", func() {
	It("reads sources in order, transparent to the caller", func() {
		a := ioz.NewMemoryReader([]byte("foo"))
		b := ioz.NewMemoryReader([]byte("bar"))

		var crossed []int
		c := ioz.NewCompositeReader(func(finished int) {
			crossed = append(crossed, finished)
		}, a, b)

		buf := make([]byte, 16)
		var got []byte
		for {
			n, kind := c.Read(buf)
			Expect(kind).To(Equal(herr.OK))
			if n == 0 {
				break
			}
			got = append(got, buf[:n]...)
		}

		Expect(string(got)).To(Equal("foobar"))
		Expect(crossed).To(Equal([]int{0, 1}))
	})

	It("propagates a source's error after crossing the boundary out of the exhausted source", func() {
		a := ioz.NewMemoryReader([]byte("foo"))
		bad := failingReader{kind: herr.Disconnected}

		called := false
		c := ioz.NewCompositeReader(func(int) { called = true }, a, bad)

		buf := make([]byte, 16)
		_, _ = c.Read(buf) // drains a
		_, kind := c.Read(buf)
		Expect(kind).To(Equal(herr.Disconnected))
		Expect(called).To(BeTrue(), "boundary fires when a is exhausted, before bad is touched")
	})
})

type failingReader struct{ kind herr.Kind }

func (f failingReader) Read([]byte) (int, herr.Kind) { return 0, f.kind }
func (f failingReader) Seek(int64) herr.Kind          { return herr.NotImplemented }
func (f failingReader) Close() herr.Kind              { return herr.OK }
