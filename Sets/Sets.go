package Sets

// Set of distinct elements.
type Set[E any] interface {
	//Put e. Returns false if e was already present.
	Put(E) bool
	Has(E) bool
	//Remove e. Returns false if e wasn't present.
	Remove(E) bool
	Size() uint
	//Take removes and returns some element. The zero value if the set is empty.
	Take() E
	//Range over the elements until f returns false.
	Range(func(E) bool)
}

type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s, returns the number of elements added.
	PutAll(Set[E]) uint
	//RemoveAll elements of s, returns the number of elements removed.
	RemoveAll(Set[E]) uint
	//Eq reports whether both sets hold the same elements.
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	Filter(func(E) bool) ExtendedSet[E]
}
