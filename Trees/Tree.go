package Trees

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/containers"
	"go.uber.org/zap"
)

var _ containers.Container = (*Tree)(nil)

// Tree wraps a root node and reports every node a search enters to its logger
// at debug level. Root may be set or replaced directly.
type Tree struct {
	Root *Node
	log  *zap.Logger
}

type Option func(*Tree)

// WithLogger sets the search diagnostics logger. The default discards them.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tree) {
		if l != nil {
			t.log = l
		}
	}
}

func New(root *Node, opts ...Option) *Tree {
	t := &Tree{Root: root, log: zap.NewNop()}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (u *Tree) Walk(o Order, visit Visitor) {
	Walk(u.Root, o, visit)
}

func (u *Tree) PreOrder(visit Visitor) {
	Walk(u.Root, Pre, visit)
}

func (u *Tree) InOrder(visit Visitor) {
	Walk(u.Root, In, visit)
}

func (u *Tree) PostOrder(visit Visitor) {
	Walk(u.Root, Post, visit)
}

// Search [Search], logging "entered search" for each tested node and "search miss" when nothing matched.
func (u *Tree) Search(target int, o Order) *Node {
	r := Search(u.Root, target, o, func(n *Node) {
		u.log.Debug("entered search", zap.Int("key", n.Key), zap.Stringer("order", o))
	})
	if r == nil {
		u.log.Debug("search miss", zap.Int("target", target), zap.Stringer("order", o))
	}
	return r
}

func (u *Tree) SearchPreOrder(target int) *Node {
	return u.Search(target, Pre)
}

func (u *Tree) SearchInOrder(target int) *Node {
	return u.Search(target, In)
}

func (u *Tree) SearchPostOrder(target int) *Node {
	return u.Search(target, Post)
}

func (u *Tree) Empty() bool {
	return u.Root == nil
}

func (u *Tree) Size() int {
	return Count(u.Root)
}

func (u *Tree) Clear() {
	u.Root = nil
}

// Values are the keys in pre-order.
func (u *Tree) Values() []interface{} {
	vs := make([]interface{}, 0, u.Size())
	Walk(u.Root, Pre, func(n *Node) {
		vs = append(vs, n.Key)
	})
	return vs
}

// String draws the tree sideways, right subtree on top, one node per line.
func (u *Tree) String() string {
	var sb strings.Builder
	sb.WriteString("Tree\n")
	var draw func(n *Node, d int)
	draw = func(n *Node, d int) {
		if n != nil {
			draw(n.Right, d+1)
			sb.WriteString(strings.Repeat("    ", d))
			sb.WriteString(strconv.Itoa(n.Key))
			sb.WriteByte('\n')
			draw(n.Left, d+1)
		}
	}
	draw(u.Root, 0)
	return sb.String()
}
