package Trees

import (
	"iter"

	"github.com/g-m-twostay/bstree/Queues"
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree with no repeated values. Elements
// are ordered by cmp, which returns a negative number when a<b, 0 when a==b
// and a positive number when a>b. cmp must be a total order.
// D below stands for the height of the tree, which is O(n) in the worst case
// as no rebalancing is ever done.
// The zero value is an empty tree without an ordering. Size, IsEmpty, Root,
// Clear, Contains, Find and the traversals are safe on it, Add panics.
// Create a BST with New or NewWith.
type BST[E any] struct {
	root *Node[E]
	sz   int
	cmp  func(a, b E) int
}

var _ BSTree[int] = (*BST[int])(nil)

func ordered[E constraints.Ordered](a, b E) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// New returns an empty BST ordered by the natural order of E.
func New[E constraints.Ordered]() *BST[E] {
	return &BST[E]{cmp: ordered[E]}
}

// NewWith returns an empty BST ordered by cmp.
func NewWith[E any](cmp func(a, b E) int) *BST[E] {
	return &BST[E]{cmp: cmp}
}

// Comparator ordering u.
func (u *BST[E]) Comparator() func(a, b E) int {
	return u.cmp
}

// From builds a BST of minimal height from sli recursively. This is faster than
// repeatedly calling Add. sli must be sorted in ascending order without
// duplicates, otherwise an InvalidSliceError is returned and no tree is built.
// Time: O(n).
func From[E constraints.Ordered](sli []E) (*BST[E], error) {
	for i := 1; i < len(sli); i++ {
		if !(sli[i-1] < sli[i]) {
			return nil, InvalidSliceError[E]{sli[i-1], sli[i], i}
		}
	}
	var build func(s []E, p *Node[E]) *Node[E]
	build = func(s []E, p *Node[E]) *Node[E] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &Node[E]{v: s[mid], p: p}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		return n
	}
	return &BST[E]{root: build(sli, nil), sz: len(sli), cmp: ordered[E]}, nil
}

// Add [BSTree.Add]
// Time: O(D); Space: O(1)
func (u *BST[E]) Add(e E) bool {
	if u.cmp == nil {
		panic("Trees: Add on a BST without an ordering")
	}
	if u.root == nil {
		u.root = &Node[E]{v: e}
		u.sz = 1
		return true
	}
	for cur := u.root; ; {
		c := u.cmp(e, cur.v)
		if c == 0 {
			return false
		}
		next := &cur.l
		if c > 0 {
			next = &cur.r
		}
		if *next == nil {
			*next = &Node[E]{v: e, p: cur}
			u.sz++
			return true
		}
		cur = *next
	}
}

// locate the node holding an element equal to e. Returns nil if there's none.
// Time: O(D); Space: O(1)
func (u *BST[E]) locate(e E) *Node[E] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(e, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// replace old by n under old's parent. n may be nil.
func (u *BST[E]) replace(old, n *Node[E]) {
	if n != nil {
		n.p = old.p
	}
	if old.p == nil {
		u.root = n
	} else if old.p.l == old {
		old.p.l = n
	} else {
		old.p.r = n
	}
}

// Remove [BSTree.Remove]
// Returns a *NotFoundError if n isn't in u, u is unchanged in that case.
// Time: O(D); Space: O(1)
func (u *BST[E]) Remove(n *Node[E]) (*Node[E], error) {
	if n == nil {
		return nil, &InvalidArgumentError{"Remove"}
	}
	if u.locate(n.v) != n {
		return nil, &NotFoundError{"Remove"}
	}
	if n.l != nil && n.r != nil {
		//the successor s has no left child, it takes n's place.
		s := leftmost(n.r)
		u.replace(s, s.r)
		s.l, s.r = n.l, n.r
		if s.l != nil {
			s.l.p = s
		}
		if s.r != nil {
			s.r.p = s
		}
		u.replace(n, s)
	} else if n.l != nil {
		u.replace(n, n.l)
	} else {
		u.replace(n, n.r)
	}
	n.detach()
	u.sz--
	return n, nil
}

// Delete the element equal to e. Returns false if there's none.
// Time: O(D)
func (u *BST[E]) Delete(e E) bool {
	if n := u.locate(e); n != nil {
		_, err := u.Remove(n)
		return err == nil
	}
	return false
}

// HasLeftChild [BSTree.HasLeftChild]. False for a nil node.
func (u *BST[E]) HasLeftChild(n *Node[E]) bool {
	return n != nil && n.l != nil
}

// HasRightChild [BSTree.HasRightChild]. False for a nil node.
func (u *BST[E]) HasRightChild(n *Node[E]) bool {
	return n != nil && n.r != nil
}

// IsLeaf [BSTree.IsLeaf]. False for a nil node.
func (u *BST[E]) IsLeaf(n *Node[E]) bool {
	return n != nil && !u.HasLeftChild(n) && !u.HasRightChild(n)
}

func (u *BST[E]) Root() *Node[E] {
	return u.root
}

// Size [BSTree.Size]
// Time: O(1); Space: O(1)
func (u *BST[E]) Size() int {
	return u.sz
}

func (u *BST[E]) IsEmpty() bool {
	return u.sz == 0
}

// Clear [BSTree.Clear]
// Time: O(1)
func (u *BST[E]) Clear() {
	u.root, u.sz = nil, 0
}

// Contains [BSTree.Contains]
// Time: O(D); Space: O(1)
func (u *BST[E]) Contains(n *Node[E]) (bool, error) {
	if n == nil {
		return false, &InvalidArgumentError{"Contains"}
	}
	return u.locate(n.v) == n, nil
}

// Find the node holding an element equal to e, nil if there's none.
// Time: O(D); Space: O(1)
func (u *BST[E]) Find(e E) *Node[E] {
	return u.locate(e)
}

// Has element e.
// Time: O(D); Space: O(1)
func (u *BST[E]) Has(e E) bool {
	return u.locate(e) != nil
}

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u *BST[E]) Minimum() (e E, ok bool) {
	if u.root == nil {
		return
	}
	return leftmost(u.root).v, true
}

// Maximum element of the tree.
// Time: O(D); Space: O(1)
func (u *BST[E]) Maximum() (e E, ok bool) {
	if u.root == nil {
		return
	}
	return rightmost(u.root).v, true
}

// Predecessor returns the greatest element less than e.
// Time: O(D); Space: O(1)
func (u *BST[E]) Predecessor(e E) (E, bool) {
	var p *Node[E]
	for cur := u.root; cur != nil; {
		if u.cmp(e, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(E), false
	}
	return p.v, true
}

// Successor returns the smallest element greater than e.
// Time: O(D); Space: O(1)
func (u *BST[E]) Successor(e E) (E, bool) {
	var p *Node[E]
	for cur := u.root; cur != nil; {
		if u.cmp(e, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(E), false
	}
	return p.v, true
}

func height[E any](n *Node[E]) int {
	if n == nil {
		return -1
	}
	return max(height(n.l), height(n.r)) + 1
}

// Height of the tree. -1 when empty, 0 when there's only the root. Recursive.
// Time: O(n)
func (u *BST[E]) Height() int {
	return height(u.root)
}

// Clone u into a tree of identical shape. Elements are copied by assignment.
// Recursive.
// Time: O(n)
func (u *BST[E]) Clone() *BST[E] {
	var cp func(n, p *Node[E]) *Node[E]
	cp = func(n, p *Node[E]) *Node[E] {
		if n == nil {
			return nil
		}
		c := &Node[E]{v: n.v, p: p}
		c.l, c.r = cp(n.l, c), cp(n.r, c)
		return c
	}
	return &BST[E]{root: cp(u.root, nil), sz: u.sz, cmp: u.cmp}
}

// Corrupt returns whether the ordering, the parent links or the size counter
// of the tree are broken. Recursive.
// Time: O(n)
func (u *BST[E]) Corrupt() bool {
	count := 0
	var check func(n, p, lo, hi *Node[E]) bool
	check = func(n, p, lo, hi *Node[E]) bool {
		if n == nil {
			return true
		}
		count++
		if n.p != p || (lo != nil && u.cmp(lo.v, n.v) >= 0) || (hi != nil && u.cmp(n.v, hi.v) >= 0) {
			return false
		}
		return check(n.l, n, lo, n) && check(n.r, n, n, hi)
	}
	return !check(u.root, nil, nil, nil) || count != u.sz
}

// All [BSTree.All]
// Uses a stack of at most D+1 nodes for each ranging.
func (u *BST[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		var st []*Node[E]
		for cur := u.root; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		for len(st) > 0 {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			for cur = cur.r; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
		}
	}
}

// next node in in-order, following parent links.
func next[E any](n *Node[E]) *Node[E] {
	if n.r != nil {
		return leftmost(n.r)
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// prev node in in-order, following parent links.
func prev[E any](n *Node[E]) *Node[E] {
	if n.l != nil {
		return rightmost(n.l)
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

// Iterator returns a closure f acting like an iterator over the elements in
// ascending order. Calling f is like calling "Next()": val, valid=f(). val is
// meaningful only if valid is true. valid can't turn true after it first became
// false. The tree mustn't be modified while f is in use.
// Time: f(): amortized O(1); Space: O(1)
func (u *BST[E]) Iterator() func() (E, bool) {
	var cur *Node[E]
	if u.root != nil {
		cur = leftmost(u.root)
	}
	return func() (v E, valid bool) {
		if cur == nil {
			return
		}
		v, valid = cur.v, true
		cur = next(cur)
		return
	}
}

// Backward returns the elements in descending order.
// Space: O(1)
func (u *BST[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if u.root == nil {
			return
		}
		for cur := rightmost(u.root); cur != nil; cur = prev(cur) {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// PreOrder returns the elements node first, then the left and the right subtree.
// Adding the elements of a PreOrder sequence to an empty tree with the same
// ordering reproduces the shape of u.
func (u *BST[E]) PreOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		if u.root == nil {
			return
		}
		for st := []*Node[E]{u.root}; len(st) > 0; {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			if cur.r != nil {
				st = append(st, cur.r)
			}
			if cur.l != nil {
				st = append(st, cur.l)
			}
		}
	}
}

func postOrder[E any](n *Node[E], yield func(E) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.l, yield) && postOrder(n.r, yield) && yield(n.v)
}

// PostOrder returns the elements of the left and the right subtree before the
// node itself. Recursive.
func (u *BST[E]) PostOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		postOrder(u.root, yield)
	}
}

// LevelOrder returns the elements breadth first, top to bottom and left to right.
// Space: O(width of the tree)
func (u *BST[E]) LevelOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		if u.root == nil {
			return
		}
		q := Queues.MakeArrayQueue[*Node[E]](4)
		q.Push(u.root)
		for !q.Empty() {
			cur, _ := q.Pop()
			if !yield(cur.v) {
				return
			}
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
}
