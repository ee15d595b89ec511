package TreeSet

import (
	"github.com/g-m-twostay/bstree/Sets"
	"github.com/g-m-twostay/bstree/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set backed by a Trees.BST. Range and Take see the
// elements in ascending order. Not safe for concurrent use.
type TreeSet[E any] struct {
	t *Trees.BST[E]
}

var _ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)

// New empty TreeSet with the natural order of E.
func New[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E]()}
}

// NewWith empty TreeSet ordered by cmp.
func NewWith[E any](cmp func(a, b E) int) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewWith(cmp)}
}

// Tree backing u. Modifying it modifies u.
func (u *TreeSet[E]) Tree() *Trees.BST[E] {
	return u.t
}

func (u *TreeSet[E]) Put(e E) bool {
	return u.t.Add(e)
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Delete(e)
}

func (u *TreeSet[E]) Size() uint {
	return uint(u.t.Size())
}

// Take the minimum.
func (u *TreeSet[E]) Take() E {
	e, ok := u.t.Minimum()
	if ok {
		u.t.Delete(e)
	}
	return e
}

func (u *TreeSet[E]) Range(f func(E) bool) {
	for e := range u.t.All() {
		if !f(e) {
			return
		}
	}
}

func (u *TreeSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.t.Add(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.t.Delete(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E]) Eq(s Sets.Set[E]) bool {
	if s.Size() != u.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.t.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect keeps only the elements also in s.
func (u *TreeSet[E]) Intersect(s Sets.Set[E]) {
	var drop []E
	for e := range u.t.All() {
		if !s.Has(e) {
			drop = append(drop, e)
		}
	}
	for _, e := range drop {
		u.t.Delete(e)
	}
}

// Filter returns a new TreeSet with the same ordering holding the elements
// for which f returns true.
func (u *TreeSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	r := NewWith(u.t.Comparator())
	for e := range u.t.PreOrder() {
		if f(e) {
			r.t.Add(e)
		}
	}
	return r
}
