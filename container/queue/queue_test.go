package queue_test

import (
	"github.com/nabbar/hammer/container/queue"
	"github.com/nabbar/hammer/herr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Queue", func() {
	It("dequeues n items in FIFO order", func() {
		q := queue.New[int](nil)
		for i := 0; i < 10; i++ {
			Expect(q.Enqueue(i)).To(Equal(herr.OK))
		}
		for i := 0; i < 10; i++ {
			v, kind := q.Dequeue()
			Expect(kind).To(Equal(herr.OK))
			Expect(v).To(Equal(i))
		}
	})

	It("returns InvalidState dequeuing an empty queue", func() {
		q := queue.New[int](nil)
		_, kind := q.Dequeue()
		Expect(kind).To(Equal(herr.InvalidState))
	})

	It("grows past its initial capacity when unbounded", func() {
		q := queue.New[int](nil)
		for i := 0; i < 100; i++ {
			Expect(q.Enqueue(i)).To(Equal(herr.OK))
		}
		Expect(q.Count()).To(Equal(100))
	})

	It("rejects enqueue past capacity when bounded", func() {
		q := queue.NewBounded[int](2, nil)
		Expect(q.Enqueue(1)).To(Equal(herr.OK))
		Expect(q.Enqueue(2)).To(Equal(herr.OK))
		Expect(q.Enqueue(3)).To(Equal(herr.LimitExceeded))
	})

	It("keeps FIFO order across wraparound", func() {
		q := queue.NewBounded[int](3, nil)
		_ = q.Enqueue(1)
		_ = q.Enqueue(2)
		v, _ := q.Dequeue()
		Expect(v).To(Equal(1))
		_ = q.Enqueue(3)
		_ = q.Enqueue(4)
		v, _ = q.Dequeue()
		Expect(v).To(Equal(2))
		v, _ = q.Dequeue()
		Expect(v).To(Equal(3))
		v, _ = q.Dequeue()
		Expect(v).To(Equal(4))
	})

	It("disposes every resident element", func() {
		var disposed []int
		q := queue.New[int](func(v int) { disposed = append(disposed, v) })
		_ = q.Enqueue(1)
		_ = q.Enqueue(2)
		_, _ = q.Dequeue()
		_ = q.Enqueue(3)
		q.Dispose()
		Expect(disposed).To(ConsistOf(2, 3))
		Expect(q.Count()).To(Equal(0))
	})
})
