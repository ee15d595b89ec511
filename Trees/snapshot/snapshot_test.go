package snapshot

import (
	"bytes"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/g-m-twostay/bstree/Trees"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestRoundTrip(t *testing.T) {
	tree := Trees.New[int]()
	rg := rand.New(rand.NewSource(0))
	for range 3000 {
		tree.Add(rg.Intn(10000))
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tree))

	got, err := DecodeOrdered[int](&buf)
	require.NoError(t, err)
	require.Equal(t, tree.Size(), got.Size())
	require.False(t, got.Corrupt())
	require.Equal(t, slices.Collect(tree.PreOrder()), slices.Collect(got.PreOrder()))
	require.Equal(t, slices.Collect(tree.LevelOrder()), slices.Collect(got.LevelOrder()))
}

func TestRoundTrip_Empty(t *testing.T) {
	b, err := Marshal(Trees.New[string]())
	require.NoError(t, err)
	got, err := Unmarshal(b, strings.Compare)
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
	require.Nil(t, got.Root())
}

type point struct {
	X int `msgpack:"x"`
	Y int `msgpack:"y"`
}

func cmpPoint(a, b point) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

func TestRoundTrip_Struct(t *testing.T) {
	tree := Trees.NewWith(cmpPoint)
	for _, p := range []point{{2, 1}, {1, 5}, {2, 0}, {3, 3}, {1, 4}} {
		tree.Add(p)
	}
	b, err := Marshal(tree)
	require.NoError(t, err)
	got, err := Unmarshal(b, cmpPoint)
	require.NoError(t, err)
	require.Equal(t, slices.Collect(tree.PreOrder()), slices.Collect(got.PreOrder()))
	require.Equal(t, point{1, 5}, got.Root().Left().Value())
}

func encodeDoc(t *testing.T, doc document) []byte {
	t.Helper()
	b, err := msgpack.Marshal(&doc)
	require.NoError(t, err)
	return b
}

func elements(t *testing.T, e []int) msgpack.RawMessage {
	t.Helper()
	raw, err := msgpack.Marshal(e)
	require.NoError(t, err)
	return raw
}

func TestDecode_Errors(t *testing.T) {
	raw := elements(t, []int{2, 1, 3})
	cases := []struct {
		name string
		doc  document
		want error
	}{
		{"version", document{Version: 9, Count: 3, Elements: raw, Sum: xxhash.Sum64(raw)}, ErrVersion},
		{"checksum", document{Version: Version, Count: 3, Elements: raw, Sum: xxhash.Sum64(raw) + 1}, ErrChecksum},
		{"count", document{Version: Version, Count: 4, Elements: raw, Sum: xxhash.Sum64(raw)}, ErrCount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Unmarshal(encodeDoc(t, c.doc), Trees.New[int]().Comparator())
			require.ErrorIs(t, err, c.want)
		})
	}

	dup := elements(t, []int{1, 1})
	_, err := DecodeOrdered[int](bytes.NewReader(encodeDoc(t, document{Version: Version, Count: 2, Elements: dup, Sum: xxhash.Sum64(dup)})))
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = DecodeOrdered[int](strings.NewReader("not a snapshot"))
	require.Error(t, err)
}
