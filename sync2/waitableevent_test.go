package sync2_test

import (
	"time"

	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/sync2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WaitableEvent", func() {
	It("times out with no signaler, within scheduling slack", func() {
		e := sync2.NewWaitableEvent()
		start := time.Now()
		kind := e.Wait(250 * time.Millisecond)
		elapsed := time.Since(start)

		Expect(kind).To(Equal(herr.Timeout))
		Expect(elapsed).To(BeNumerically(">=", 250*time.Millisecond))
		Expect(elapsed).To(BeNumerically("<", 600*time.Millisecond))
	})

	It("latches a signal issued before anyone waits", func() {
		e := sync2.NewWaitableEvent()
		e.Signal()
		Expect(e.Wait(50 * time.Millisecond)).To(Equal(herr.OK))
	})

	It("wakes exactly one waiter and resets for the next wait", func() {
		e := sync2.NewWaitableEvent()
		e.Signal()
		Expect(e.Wait(time.Second)).To(Equal(herr.OK))
		Expect(e.Wait(100 * time.Millisecond)).To(Equal(herr.Timeout))
	})

	It("wakes a blocked waiter promptly when signaled", func() {
		e := sync2.NewWaitableEvent()
		result := make(chan herr.Kind, 1)
		go func() {
			result <- e.Wait(2 * time.Second)
		}()

		time.Sleep(50 * time.Millisecond)
		e.Signal()

		Eventually(result, time.Second).Should(Receive(Equal(herr.OK)))
	})
})
