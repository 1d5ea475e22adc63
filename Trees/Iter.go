package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-dsbasics/Queues"
)

// Iter returns a closure f acting like an iterator over the nodes under n in
// order o. Calling f is like calling "Next()": node, valid = f(). node is
// meaningful only if valid is true; once valid is false f stays exhausted.
// It yields the same sequence as Walk but keeps its own stack, so deep trees
// don't grow the goroutine stack. The tree must not be modified while f is in use.
// Space: O(height).
func Iter(n *Node, o Order) func() (*Node, bool) {
	st := arraystack.New()
	switch o {
	case Pre:
		if n != nil {
			st.Push(n)
		}
		return func() (*Node, bool) {
			v, ok := st.Pop()
			if !ok {
				return nil, false
			}
			cur := v.(*Node)
			if cur.Right != nil {
				st.Push(cur.Right)
			}
			if cur.Left != nil {
				st.Push(cur.Left)
			}
			return cur, true
		}
	case In:
		cur := n
		return func() (*Node, bool) {
			for ; cur != nil; cur = cur.Left {
				st.Push(cur)
			}
			v, ok := st.Pop()
			if !ok {
				return nil, false
			}
			r := v.(*Node)
			cur = r.Right
			return r, true
		}
	case Post:
		cur := n
		var last *Node // last yielded node
		return func() (*Node, bool) {
			for {
				for ; cur != nil; cur = cur.Left {
					st.Push(cur)
				}
				v, ok := st.Peek()
				if !ok {
					return nil, false
				}
				if p := v.(*Node); p.Right != nil && p.Right != last {
					cur = p.Right
				} else {
					st.Pop()
					last = p
					return p, true
				}
			}
		}
	}
	return func() (*Node, bool) {
		return nil, false
	}
}

// LevelOrder visits the nodes under n breadth first, left to right within a level.
func LevelOrder(n *Node, visit Visitor) {
	if n == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node](uint(Height(n)))
	q.Push(n)
	for !q.Empty() {
		cur, _ := q.Pop()
		visit(cur)
		if cur.Left != nil {
			q.Push(cur.Left)
		}
		if cur.Right != nil {
			q.Push(cur.Right)
		}
	}
}
