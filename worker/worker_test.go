package worker_test

import (
	"sync/atomic"
	"time"

	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/worker"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Worker", func() {
	It("rejects an item type larger than MaxItemSize", func() {
		type huge [worker.MaxItemSize + 1]byte
		_, kind := worker.New[huge](func(huge) herr.Kind { return herr.OK }, nil)
		Expect(kind).To(Equal(herr.InvalidArgument))
	})

	It("drains the remaining queue on stop(drain=true)", func() {
		var counter atomic.Int64
		w, kind := worker.New(func(item int) herr.Kind {
			time.Sleep(200 * time.Millisecond)
			counter.Add(int64(item))
			return herr.OK
		}, nil)
		Expect(kind).To(Equal(herr.OK))

		for _, v := range []int{0, 1, 2, 3} {
			Expect(w.Enqueue(v)).To(Equal(herr.OK))
		}

		w.Stop(true)
		Expect(w.Wait(4 * time.Second)).To(Equal(herr.OK))
		Expect(counter.Load()).To(Equal(int64(6)))
		Expect(w.Dispose()).To(Equal(herr.OK))
	})

	It("processes fewer than the full backlog on stop(drain=false)", func() {
		var counter atomic.Int64
		w, kind := worker.New(func(item int) herr.Kind {
			time.Sleep(200 * time.Millisecond)
			counter.Add(int64(item))
			return herr.OK
		}, nil)
		Expect(kind).To(Equal(herr.OK))

		for _, v := range []int{0, 1, 2, 3} {
			Expect(w.Enqueue(v)).To(Equal(herr.OK))
		}
		// let the loop pick up the first item before stopping.
		time.Sleep(20 * time.Millisecond)

		w.Stop(false)
		Expect(w.Wait(4 * time.Second)).To(Equal(herr.OK))
		Expect(counter.Load()).To(BeNumerically("<", 6))
		Expect(w.Dispose()).To(Equal(herr.OK))
	})

	It("refuses to dispose a worker that hasn't stopped", func() {
		w, kind := worker.New(func(int) herr.Kind { return herr.OK }, nil)
		Expect(kind).To(Equal(herr.OK))
		Expect(w.Dispose()).To(Equal(herr.InvalidState))

		w.Stop(false)
		Expect(w.Wait(time.Second)).To(Equal(herr.OK))
		Expect(w.Dispose()).To(Equal(herr.OK))
	})

	It("invokes the dispose function after processing each item", func() {
		var disposed []int
		w, kind := worker.New(func(item int) herr.Kind { return herr.OK }, func(item int) {
			disposed = append(disposed, item)
		})
		Expect(kind).To(Equal(herr.OK))

		Expect(w.Enqueue(7)).To(Equal(herr.OK))
		w.Stop(true)
		Expect(w.Wait(time.Second)).To(Equal(herr.OK))
		Expect(disposed).To(Equal([]int{7}))
	})
})
