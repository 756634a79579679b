package sync2_test

import (
	"sync"
	"time"

	"github.com/nabbar/hammer/sync2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mutex", func() {
	It("allows the same goroutine to lock recursively", func() {
		m := sync2.NewMutex()
		m.Lock()
		m.Lock()
		m.Lock()
		m.Unlock()
		m.Unlock()
		m.Unlock()
	})

	It("blocks a second goroutine until fully unlocked", func() {
		m := sync2.NewMutex()
		m.Lock()
		m.Lock()

		acquired := make(chan struct{})
		go func() {
			m.Lock()
			close(acquired)
			m.Unlock()
		}()

		Consistently(acquired, 100*time.Millisecond).ShouldNot(BeClosed())
		m.Unlock()
		Consistently(acquired, 100*time.Millisecond).ShouldNot(BeClosed())
		m.Unlock()
		Eventually(acquired, time.Second).Should(BeClosed())
	})

	It("serializes many goroutines without data races", func() {
		m := sync2.NewMutex()
		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 200; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.Lock()
				defer m.Unlock()
				counter++
			}()
		}
		wg.Wait()
		Expect(counter).To(Equal(200))
	})
})
