package jobqueue

// pendingList is the minimal interface the queue needs to store
// pending jobs. It is NOT safe for concurrent use; every call happens
// with the queue mutex held.
//
// The interface is intentionally small so dispatch policies (LIFO,
// FIFO) can be swapped without touching the worker logic.
type pendingList[T any] interface {
	// push inserts a newly submitted job.
	push(Job[T])

	// pop removes and returns the next job to dispatch. The boolean
	// result reports whether a job was available. Always O(1): both
	// policies pop the head of the list.
	pop() (Job[T], bool)

	// Len returns the number of jobs currently pending.
	Len() int
}

// jobNode links pending jobs. The next pointer is meaningful only
// while the job sits in the list; ownership of the node transfers to
// the popping worker.
type jobNode[T any] struct {
	next *jobNode[T]
	job  Job[T]
}

func makePending[T any](p Policy) pendingList[T] {
	switch p {
	case FIFO:
		return &fifoList[T]{}
	default:
		return &lifoList[T]{}
	}
}

// lifoList is a head-insertion stack: each new job becomes the new
// head, so the most recently submitted pending job runs first.
type lifoList[T any] struct {
	head *jobNode[T]
	n    int
}

func (l *lifoList[T]) push(j Job[T]) {
	l.head = &jobNode[T]{next: l.head, job: j}
	l.n++
}

func (l *lifoList[T]) pop() (Job[T], bool) {
	if l.head == nil {
		return Job[T]{}, false
	}
	node := l.head
	l.head = node.next
	node.next = nil
	l.n--
	return node.job, true
}

func (l *lifoList[T]) Len() int { return l.n }

// fifoList keeps a tail pointer so insertion order equals dispatch
// order.
type fifoList[T any] struct {
	head *jobNode[T]
	tail *jobNode[T]
	n    int
}

func (l *fifoList[T]) push(j Job[T]) {
	node := &jobNode[T]{job: j}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.n++
}

func (l *fifoList[T]) pop() (Job[T], bool) {
	if l.head == nil {
		return Job[T]{}, false
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	}
	node.next = nil
	l.n--
	return node.job, true
}

func (l *fifoList[T]) Len() int { return l.n }
