package Queues

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/containers"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

var (
	_ Queue[int]                   = (*IntRing)(nil)
	_ containers.Container         = (*IntRing)(nil)
	_ containers.IteratorWithIndex = (*ringIter)(nil)
)

// IntRing is a fixed capacity FIFO of ints over a single preallocated slice.
// One slot always stays unused: front==rear means empty and rear+1==front
// (mod capacity) means full. A ring made with capacity c holds at most c-1 items.
// IntRing isn't safe for concurrent use.
type IntRing struct {
	front, rear int // front is the next slot to take, rear the next slot to fill.
	store       []int
	log         *zap.Logger
}

type Option func(*IntRing)

// WithLogger sets where full and empty diagnostics go. The default discards them.
func WithLogger(l *zap.Logger) Option {
	return func(r *IntRing) {
		if l != nil {
			r.log = l
		}
	}
}

// NewIntRing allocates exactly capacity slots.
func NewIntRing(capacity int, opts ...Option) (*IntRing, error) {
	if capacity < 1 {
		return nil, &InvalidCapacityError{capacity}
	}
	r := &IntRing{store: make([]int, capacity), log: zap.NewNop()}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

func advance[I constraints.Integer](i, n I) I {
	return (i + 1) % n
}

// Put v at the rear. Returns false and leaves the ring unchanged when it's full.
func (this *IntRing) Put(v int) bool {
	if this.Full() {
		this.log.Warn("queue is full", zap.Int("value", v), zap.Int("capacity", this.Cap()))
		return false
	}
	this.store[this.rear] = v
	this.rear = advance(this.rear, len(this.store))
	return true
}

// Take the front item. ok is false when the ring is empty, in which case v is 0
// and must not be read as data.
func (this *IntRing) Take() (v int, ok bool) {
	if this.Empty() {
		this.log.Warn("queue is empty", zap.Int("capacity", this.Cap()))
		return 0, false
	}
	v = this.store[this.front]
	this.front = advance(this.front, len(this.store))
	return v, true
}

// Peek at the front item without removing it.
func (this *IntRing) Peek() (int, bool) {
	if this.Empty() {
		return 0, false
	}
	return this.store[this.front], true
}

// Push is Put.
func (this *IntRing) Push(v int) bool {
	return this.Put(v)
}

// Pop is Take, reporting an empty ring as *EmptyQueueError.
func (this *IntRing) Pop() (int, error) {
	if v, ok := this.Take(); ok {
		return v, nil
	}
	return 0, &EmptyQueueError{}
}

// Empty when front==rear.
func (this *IntRing) Empty() bool {
	return this.front == this.rear
}

// Full when rear is one slot behind front.
func (this *IntRing) Full() bool {
	return advance(this.rear, len(this.store)) == this.front
}

// Size is the number of live items, always in [0, Cap()].
func (this *IntRing) Size() int {
	return (this.rear - this.front + len(this.store)) % len(this.store)
}

// Cap is the number of items the ring can hold, one less than the slots allocated.
func (this *IntRing) Cap() int {
	return len(this.store) - 1
}

func (this *IntRing) Clear() {
	clear(this.store)
	this.front, this.rear = 0, 0
}

// Values in FIFO order.
func (this *IntRing) Values() []interface{} {
	vs := make([]interface{}, 0, this.Size())
	for i, n := this.front, this.Size(); n > 0; n-- {
		vs = append(vs, this.store[i])
		i = advance(i, len(this.store))
	}
	return vs
}

// String lists the live items front first, e.g. "[1 2 3]". It is meant for
// diagnostics only.
func (this *IntRing) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := this.front, this.Size(); n > 0; n-- {
		sb.WriteString(strconv.Itoa(this.store[i]))
		if n > 1 {
			sb.WriteByte(' ')
		}
		i = advance(i, len(this.store))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Iterator over the live items in FIFO order. Index is the distance from the
// front. The ring must not be modified while iterating.
func (this *IntRing) Iterator() containers.IteratorWithIndex {
	return &ringIter{r: this, i: -1}
}

type ringIter struct {
	r *IntRing
	i int
}

func (u *ringIter) Next() bool {
	if u.i < u.r.Size() {
		u.i++
	}
	return u.i < u.r.Size()
}

// Value is nil unless the last Next or First returned true.
func (u *ringIter) Value() interface{} {
	if u.i < 0 || u.i >= u.r.Size() {
		return nil
	}
	return u.r.store[(u.r.front+u.i)%len(u.r.store)]
}

func (u *ringIter) Index() int {
	return u.i
}

func (u *ringIter) Begin() {
	u.i = -1
}

func (u *ringIter) First() bool {
	u.Begin()
	return u.Next()
}

func (u *ringIter) NextTo(f func(index int, value interface{}) bool) bool {
	for u.Next() {
		if f(u.i, u.Value()) {
			return true
		}
	}
	return false
}
