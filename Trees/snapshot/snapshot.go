// Package snapshot encodes a Trees.BST into an opaque msgpack document and
// decodes it back into a tree of the same shape.
//
// The document holds the element count, the elements in pre-order, and an
// xxhash checksum of the encoded elements. Re-adding the elements in pre-order
// to an empty tree with the same ordering rebuilds the exact structure, so no
// links need to be stored.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/g-m-twostay/bstree/Trees"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/exp/constraints"
)

// Version of the document written by Encode.
const Version uint8 = 1

var (
	ErrVersion   = errors.New("snapshot: unsupported version")
	ErrChecksum  = errors.New("snapshot: checksum mismatch")
	ErrCount     = errors.New("snapshot: element count mismatch")
	ErrDuplicate = errors.New("snapshot: duplicate element")
)

type document struct {
	Version  uint8              `msgpack:"version"`
	Count    int                `msgpack:"count"`
	Elements msgpack.RawMessage `msgpack:"elements"`
	Sum      uint64             `msgpack:"sum"`
}

// Encode t into w. Elements are encoded with msgpack, so E must be
// encodable by it.
func Encode[E any](w io.Writer, t *Trees.BST[E]) error {
	raw, err := msgpack.Marshal(slices.Collect(t.PreOrder()))
	if err != nil {
		return fmt.Errorf("snapshot: encode elements: %w", err)
	}
	doc := document{
		Version:  Version,
		Count:    t.Size(),
		Elements: raw,
		Sum:      xxhash.Sum64(raw),
	}
	if err := msgpack.NewEncoder(w).Encode(&doc); err != nil {
		return fmt.Errorf("snapshot: encode document: %w", err)
	}
	return nil
}

// Decode a document written by Encode from r into a new tree ordered by cmp.
// cmp must be the ordering of the encoded tree for the shape to be kept.
func Decode[E any](r io.Reader, cmp func(a, b E) int) (*Trees.BST[E], error) {
	var doc document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("snapshot: decode document: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}
	if sum := xxhash.Sum64(doc.Elements); sum != doc.Sum {
		return nil, fmt.Errorf("%w: got %x, want %x", ErrChecksum, sum, doc.Sum)
	}
	var elems []E
	if err := msgpack.Unmarshal(doc.Elements, &elems); err != nil {
		return nil, fmt.Errorf("snapshot: decode elements: %w", err)
	}
	if len(elems) != doc.Count {
		return nil, fmt.Errorf("%w: header says %d, found %d", ErrCount, doc.Count, len(elems))
	}
	t := Trees.NewWith(cmp)
	for i, e := range elems {
		if !t.Add(e) {
			return nil, fmt.Errorf("%w: %v at %d", ErrDuplicate, e, i)
		}
	}
	return t, nil
}

// DecodeOrdered is Decode with the natural order of E.
func DecodeOrdered[E constraints.Ordered](r io.Reader) (*Trees.BST[E], error) {
	return Decode(r, Trees.New[E]().Comparator())
}

// Marshal t into a byte slice.
func Marshal[E any](t *Trees.BST[E]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal a byte slice written by Marshal.
func Unmarshal[E any](b []byte, cmp func(a, b E) int) (*Trees.BST[E], error) {
	return Decode(bytes.NewReader(b), cmp)
}
