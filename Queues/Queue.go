package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	//Push item to the tail.
	Push(item T)
	//Pop the item at the head. Returns *EmptyQueueError if there's none.
	Pop() (T, error)
	//Peek at the head without removing it. Zero value if empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the content.
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
