package Trees

import "iter"

// BSTree is a binary search tree holding distinct elements of type E under a
// total order. Operations taking a node expect a node previously obtained from
// the same tree; operations that can't work with a nil node return an
// *InvalidArgumentError before touching the tree.
// Implementations are not safe for concurrent use. Callers needing that must
// guard every call with their own lock, a sync.RWMutex allows concurrent
// Contains and All as long as no Add, Remove or Clear runs at the same time.
type BSTree[E any] interface {
	//Add e to the tree. Returns true if e was inserted, false if an equal
	//element is already present, in which case the tree isn't modified.
	Add(e E) bool
	//Remove node n from the tree and return it detached, still holding its
	//element. When n has two children, the node of its in-order successor
	//takes n's place. No other node changes its element, so nodes obtained
	//before stay valid.
	Remove(n *Node[E]) (*Node[E], error)
	//HasLeftChild reports whether n has a left child.
	HasLeftChild(n *Node[E]) bool
	//HasRightChild reports whether n has a right child.
	HasRightChild(n *Node[E]) bool
	//IsLeaf reports whether n has no children.
	IsLeaf(n *Node[E]) bool
	//Root of the tree, nil when the tree is empty.
	Root() *Node[E]
	//Size of the tree.
	Size() int
	//IsEmpty reports whether Size()==0.
	IsEmpty() bool
	//Clear the tree. Nodes obtained before are no longer part of the tree.
	Clear()
	//Contains reports whether the node n itself is reachable from the root.
	//A different node holding an equal element doesn't count.
	Contains(n *Node[E]) (bool, error)
	//All returns the elements in ascending order. The sequence is lazy and
	//can be ranged over any number of times. The tree mustn't be modified
	//while ranging.
	All() iter.Seq[E]
}
