package life

// indexSet is a sparse set of cell indices: O(1) insert, membership and
// clear, iterated in insertion order. Capacity is fixed to the grid size.
type indexSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

func newIndexSet(capacity int) *indexSet {
	return &indexSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, capacity),
	}
}

func (s *indexSet) insert(i int) {
	if s.contains(i) {
		return
	}
	v := uint32(i)
	s.dense[s.size] = v
	s.sparse[v] = s.size
	s.size++
}

func (s *indexSet) contains(i int) bool {
	if i < 0 || i >= len(s.sparse) {
		return false
	}
	idx := s.sparse[i]
	return idx < s.size && s.dense[idx] == uint32(i)
}

func (s *indexSet) clear() { s.size = 0 }

func (s *indexSet) len() int { return int(s.size) }

// values is valid until the next mutation.
func (s *indexSet) values() []uint32 { return s.dense[:s.size] }
