package scanner

// Index pairs every structural offset of an input with its tag. Offsets are
// strictly increasing. An Index is never modified after it is built.
type Index struct {
	offsets []int
	tags    []Tag
}

// Build scans data and tags each structural byte.
func Build(data []byte) *Index {
	return newIndex(data, Scan(data))
}

// BuildScalar is Build restricted to the scalar scanner.
func BuildScalar(data []byte) *Index {
	return newIndex(data, ScanScalar(data))
}

func newIndex(data []byte, offsets []int) *Index {
	tags := make([]Tag, len(offsets))
	for i, off := range offsets {
		// offsets only point at structural bytes, so ok is always true
		tags[i], _ = TagOf(data[off])
	}
	return &Index{offsets: offsets, tags: tags}
}

func (x *Index) Len() int {
	return len(x.offsets)
}

func (x *Index) Offset(i int) int {
	return x.offsets[i]
}

func (x *Index) Tag(i int) Tag {
	return x.tags[i]
}

// At returns the offset and tag of entry i.
func (x *Index) At(i int) (int, Tag) {
	return x.offsets[i], x.tags[i]
}

// Offsets returns a copy of the structural offsets.
func (x *Index) Offsets() []int {
	return append([]int(nil), x.offsets...)
}
