package Queues

import "fmt"

// Queue is a FIFO container. Push reports whether item was accepted; bounded
// implementations refuse items when full.
type Queue[T any] interface {
	Push(item T) bool
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue over a slice that grows on demand.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot pop"
}

// InvalidCapacityError is returned when a ring is made with fewer than 1 slot.
type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity: a ring needs at least 1 slot, got %d", e.Capacity)
}
