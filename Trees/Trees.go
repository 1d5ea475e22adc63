package Trees

import "strconv"

// Order decides when a node is visited relative to its two subtrees.
type Order uint8

const (
	Pre  Order = iota // self, left, right
	In                // left, self, right
	Post              // left, right, self
)

func (o Order) String() string {
	switch o {
	case Pre:
		return "pre-order"
	case In:
		return "in-order"
	case Post:
		return "post-order"
	}
	return "Order(" + strconv.Itoa(int(o)) + ")"
}

// Visitor is called once for each visited node.
type Visitor func(n *Node)

// Walk calls visit on every node under n in order o. Implemented recursively,
// so the stack grows with the height of the tree. The tree must not be
// modified during the walk.
func Walk(n *Node, o Order, visit Visitor) {
	if n == nil {
		return
	}
	if o == Pre {
		visit(n)
	}
	Walk(n.Left, o, visit)
	if o == In {
		visit(n)
	}
	Walk(n.Right, o, visit)
	if o == Post {
		visit(n)
	}
}

// Search returns the first node in order o whose Key equals target, or nil.
// enter, if not nil, is called on each node as it's tested, so the calls
// follow exactly the order Walk would visit them, up to and including the
// match. Keys are not assumed to be ordered and nothing is pruned.
func Search(n *Node, target int, o Order, enter Visitor) *Node {
	if n == nil {
		return nil
	}
	if o == Pre && test(n, target, enter) {
		return n
	}
	if r := Search(n.Left, target, o, enter); r != nil {
		return r
	}
	if o == In && test(n, target, enter) {
		return n
	}
	if r := Search(n.Right, target, o, enter); r != nil {
		return r
	}
	if o == Post && test(n, target, enter) {
		return n
	}
	return nil
}

func test(n *Node, target int, enter Visitor) bool {
	if enter != nil {
		enter(n)
	}
	return n.Key == target
}

func PreOrder(n *Node, visit Visitor) {
	Walk(n, Pre, visit)
}

func InOrder(n *Node, visit Visitor) {
	Walk(n, In, visit)
}

func PostOrder(n *Node, visit Visitor) {
	Walk(n, Post, visit)
}

func SearchPreOrder(n *Node, target int, enter Visitor) *Node {
	return Search(n, target, Pre, enter)
}

func SearchInOrder(n *Node, target int, enter Visitor) *Node {
	return Search(n, target, In, enter)
}

func SearchPostOrder(n *Node, target int, enter Visitor) *Node {
	return Search(n, target, Post, enter)
}
