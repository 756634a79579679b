package httpreq_test

import (
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/httpreq"
	"github.com/nabbar/hammer/ioz"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func readAll(r ioz.Reader, bufSize int) []byte {
	var out []byte
	buf := make([]byte, bufSize)
	for {
		n, kind := r.Read(buf)
		Expect(kind).To(Equal(herr.OK))
		if n == 0 {
			return out
		}
		out = append(out, buf[:n]...)
	}
}

var _ = Describe("Parse", func() {
	It("rejects non-positive or oversize construction arguments", func() {
		src := ioz.NewMemoryReader([]byte("GET / HTTP/1.1\r\n\r\n"))
		_, kind := httpreq.Parse(src, 0, 512)
		Expect(kind).To(Equal(herr.InvalidArgument))

		src2 := ioz.NewMemoryReader([]byte("GET / HTTP/1.1\r\n\r\n"))
		_, kind = httpreq.Parse(src2, 512, httpreq.MaxReadBufferSize+1)
		Expect(kind).To(Equal(herr.InvalidArgument))
	})

	// Scenario 5 from the spec: a GET /index request with a single
	// header.
	It("parses method, url and header values, in order", func() {
		raw := "GET /index HTTP/1.1\r\nAccept-Encoding: gzip, deflate, br\r\n\r\n"
		src := ioz.NewMemoryReader([]byte(raw))

		req, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
		Expect(kind).To(Equal(herr.OK))
		Expect(req.Method).To(Equal("GET"))
		Expect(req.URL).To(Equal("/index"))

		v, kind := req.HeaderRef("Accept-Encoding", 0)
		Expect(kind).To(Equal(herr.OK))
		Expect(v).To(Equal("gzip, deflate, br"))

		_, kind = req.HeaderRef("Accept-Encoding", 1)
		Expect(kind).To(Equal(herr.NotFound))
	})

	It("rejects an unrecognized method or malformed version suffix", func() {
		for _, raw := range []string{
			"PATCH / HTTP/1.1\r\n\r\n",
			"GET / HTTP/1.0\r\n\r\n",
			"GET /\r\n\r\n",
		} {
			src := ioz.NewMemoryReader([]byte(raw))
			_, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
			Expect(kind).To(Equal(herr.InvalidData), raw)
		}
	})

	It("rejects a header block exceeding max_headers_size", func() {
		raw := "GET / HTTP/1.1\r\nX-Long: " + string(make([]byte, 64)) + "\r\n\r\n"
		src := ioz.NewMemoryReader([]byte(raw))
		_, kind := httpreq.Parse(src, 16, 512)
		Expect(kind).To(Equal(herr.LimitExceeded))
	})

	It("rejects line folding", func() {
		raw := "GET / HTTP/1.1\r\nX-A: one\r\n two\r\n\r\n"
		src := ioz.NewMemoryReader([]byte(raw))
		_, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
		Expect(kind).To(Equal(herr.InvalidData))
	})

	It("rejects a bare CR inside a header line", func() {
		raw := "GET / HTTP/1.1\r\nX-A: od\rd\r\n\r\n"
		src := ioz.NewMemoryReader([]byte(raw))
		_, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
		Expect(kind).To(Equal(herr.InvalidData))
	})

	It("rejects an entirely-whitespace header value", func() {
		raw := "GET / HTTP/1.1\r\nX-A:   \r\n\r\n"
		src := ioz.NewMemoryReader([]byte(raw))
		_, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
		Expect(kind).To(Equal(herr.InvalidData))
	})

	// Scenario 6: the RFC9110 token table, one punctuation byte at a time.
	It("accepts every valid token byte and rejects every invalid one", func() {
		valid := []byte("!#$%&'*+-.0123456789abcdefghijklmnopqrstuvwxyz|")
		invalid := []byte(`"(),/:;<=>{}`)

		for _, c := range valid {
			raw := append([]byte("GET / HTTP/1.1\r\n"), c)
			raw = append(raw, []byte(":Value\r\n\r\n")...)
			src := ioz.NewMemoryReader(raw)
			_, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
			Expect(kind).To(Equal(herr.OK), string(c))
		}

		for _, c := range invalid {
			raw := append([]byte("GET / HTTP/1.1\r\n"), c)
			raw = append(raw, []byte(":Value\r\n\r\n")...)
			src := ioz.NewMemoryReader(raw)
			_, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
			Expect(kind).To(Equal(herr.InvalidData), string(c))
		}

		raw := append([]byte("GET / HTTP/1.1\r\n"), byte(0x80))
		raw = append(raw, []byte(":Value\r\n\r\n")...)
		src := ioz.NewMemoryReader(raw)
		_, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
		Expect(kind).To(Equal(herr.InvalidData))
	})

	It("streams the body after the header block for any buffer size >= 2", func() {
		body := "field=value&other=1"
		raw := "POST /submit HTTP/1.1\r\nContent-Length: 19\r\n\r\n" + body

		for _, bufSize := range []int{2, 3, 16, 512} {
			src := ioz.NewMemoryReader([]byte(raw))
			req, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, bufSize)
			Expect(kind).To(Equal(herr.OK))
			Expect(string(readAll(req.Body, 4))).To(Equal(body), bufSize)
		}
	})
})

var _ = Describe("canonicalization and trimming", func() {
	It("is idempotent", func() {
		raw := "GET / HTTP/1.1\r\nX-mY-heADER:  value with spaces  \r\n\r\n"
		src := ioz.NewMemoryReader([]byte(raw))
		req, kind := httpreq.Parse(src, httpreq.DefaultMaxHeadersSize, 512)
		Expect(kind).To(Equal(herr.OK))

		v1, kind := req.HeaderRef("X-My-Header", 0)
		Expect(kind).To(Equal(herr.OK))

		// Re-running canonicalization+trimming on the already-produced value
		// (by looking it up again under a differently-cased spelling of its
		// name) must yield the same result.
		v2, kind := req.HeaderRef("x-my-header", 0)
		Expect(kind).To(Equal(herr.OK))
		Expect(v2).To(Equal(v1))
	})
})
