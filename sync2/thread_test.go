package sync2_test

import (
	"time"

	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/sync2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Thread", func() {
	It("runs to completion and reports its exit kind", func() {
		th := sync2.NewThread("worker-1")
		Expect(th.State()).To(Equal(sync2.Unstarted))

		th.Start(func(self *sync2.Thread) herr.Kind {
			return herr.OK
		})

		Expect(th.Join(time.Second)).To(Equal(herr.OK))
		Expect(th.State()).To(Equal(sync2.Stopped))
		Expect(th.ExitKind()).To(Equal(herr.OK))
	})

	It("observes cooperative abort between polls", func() {
		th := sync2.NewThread("worker-2")
		iterations := 0

		th.Start(func(self *sync2.Thread) herr.Kind {
			for !self.ShouldAbort() {
				iterations++
				time.Sleep(10 * time.Millisecond)
			}
			return herr.OK
		})

		time.Sleep(50 * time.Millisecond)
		th.Abort()
		Expect(th.Join(time.Second)).To(Equal(herr.OK))
		Expect(iterations).To(BeNumerically(">", 0))
	})

	It("is idempotent when aborted after already stopped", func() {
		th := sync2.NewThread("worker-3")
		th.Start(func(self *sync2.Thread) herr.Kind { return herr.OK })
		Expect(th.Join(time.Second)).To(Equal(herr.OK))

		th.Abort() // must not panic or change state
		Expect(th.State()).To(Equal(sync2.Stopped))
	})

	It("times out Join when the body runs long", func() {
		th := sync2.NewThread("worker-4")
		th.Start(func(self *sync2.Thread) herr.Kind {
			time.Sleep(500 * time.Millisecond)
			return herr.OK
		})

		Expect(th.Join(50 * time.Millisecond)).To(Equal(herr.Timeout))
		Expect(th.Join(time.Second)).To(Equal(herr.OK))
	})

	It("rejects Join called from the thread's own goroutine", func() {
		th := sync2.NewThread("worker-5")
		result := make(chan herr.Kind, 1)

		th.Start(func(self *sync2.Thread) herr.Kind {
			result <- self.Join(time.Second)
			return herr.OK
		})

		Eventually(result, time.Second).Should(Receive(Equal(herr.InvalidArgument)))
		Expect(th.Join(time.Second)).To(Equal(herr.OK))
	})
})
