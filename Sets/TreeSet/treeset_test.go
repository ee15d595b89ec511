package TreeSet

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[E any](s *TreeSet[E]) []E {
	var r []E
	s.Range(func(e E) bool {
		r = append(r, e)
		return true
	})
	return r
}

func TestTreeSet_Basic(t *testing.T) {
	s := New[int]()
	content := make(map[int]struct{})
	rg := rand.New(rand.NewSource(0))
	for range 5000 {
		v := rg.Intn(2000)
		_, in := content[v]
		if rg.Intn(3) > 0 {
			require.Equal(t, !in, s.Put(v), "put %d", v)
			content[v] = struct{}{}
		} else {
			require.Equal(t, in, s.Remove(v), "remove %d", v)
			delete(content, v)
		}
	}
	require.Equal(t, uint(len(content)), s.Size())
	for k := range content {
		require.True(t, s.Has(k))
	}
	got := collect(s)
	require.True(t, slices.IsSorted(got))
	require.Len(t, got, len(content))

	lo := got[0]
	require.Equal(t, lo, s.Take())
	require.False(t, s.Has(lo))
	require.False(t, s.Tree().Corrupt())
}

func TestTreeSet_TakeEmpty(t *testing.T) {
	s := New[string]()
	require.Equal(t, "", s.Take())
	require.Zero(t, s.Size())
}

func TestTreeSet_RangeStops(t *testing.T) {
	s := New[int]()
	for i := range 10 {
		s.Put(i)
	}
	var seen []int
	s.Range(func(e int) bool {
		seen = append(seen, e)
		return e < 3
	})
	require.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestTreeSet_Algebra(t *testing.T) {
	a, b := New[int](), New[int]()
	for i := range 10 {
		a.Put(i)
		b.Put(i + 5)
	}
	require.False(t, a.Eq(b))

	u := New[int]()
	require.Equal(t, uint(10), u.PutAll(a))
	u.Union(b)
	require.Equal(t, uint(15), u.Size())

	i := New[int]()
	i.PutAll(a)
	i.Intersect(b)
	require.Equal(t, []int{5, 6, 7, 8, 9}, collect(i))

	require.Equal(t, uint(5), u.RemoveAll(i))
	require.Equal(t, []int{0, 1, 2, 3, 4, 10, 11, 12, 13, 14}, collect(u))

	even := u.Filter(func(e int) bool { return e%2 == 0 })
	require.Equal(t, uint(5), even.Size())
	require.True(t, even.Has(12))
	require.False(t, even.Has(13))

	c := New[int]()
	c.PutAll(a)
	require.True(t, c.Eq(a))
	require.True(t, a.Eq(c))
}

func TestTreeSet_NewWith(t *testing.T) {
	s := NewWith(func(a, b int) int { return b - a })
	for _, v := range []int{3, 1, 2} {
		s.Put(v)
	}
	require.Equal(t, []int{3, 2, 1}, collect(s))
	require.Equal(t, 3, s.Take())
}
