package Trees

import "strconv"

// Node of a binary tree. A nil *Node is an empty subtree. Each node must be
// linked from at most one parent; Key doesn't have to be unique.
type Node struct {
	Key         int
	Left, Right *Node
}

func NewNode(key int) *Node {
	return &Node{Key: key}
}

func (n *Node) String() string {
	return "key:" + strconv.Itoa(n.Key)
}

// Count the nodes under n, n included.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	return Count(n.Left) + Count(n.Right) + 1
}

// Height is the number of nodes on the longest root to leaf path; 0 for nil.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return max(Height(n.Left), Height(n.Right)) + 1
}
