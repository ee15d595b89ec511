package Trees

// Node of a BST. The tree owns its root and every node owns its children;
// p is only a back-link used when unlinking.
// The zero value is a detached node holding the zero value of E.
type Node[E any] struct {
	v       E
	l, r, p *Node[E]
}

// Value held by n.
func (n *Node[E]) Value() E {
	return n.v
}

// Left child of n, nil if absent.
func (n *Node[E]) Left() *Node[E] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[E]) Right() *Node[E] {
	return n.r
}

// Parent of n, nil for the root or a detached node.
func (n *Node[E]) Parent() *Node[E] {
	return n.p
}

// detach clears all links of n.
func (n *Node[E]) detach() {
	n.l, n.r, n.p = nil, nil, nil
}

// leftmost node in the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func leftmost[E any](n *Node[E]) *Node[E] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node in the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func rightmost[E any](n *Node[E]) *Node[E] {
	for n.r != nil {
		n = n.r
	}
	return n
}
