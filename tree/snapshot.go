package tree

import "fmt"

// Snapshot is a copy of a tree's storage in a serialization-friendly form.
// The persist package encodes and decodes snapshots; the tree's in-memory
// representation stays private.
type Snapshot struct {
	BranchFactor int
	Dimension    int
	Cells        int64
	Levels       uint32

	// CoarseBits packs the per-cell coarse flags, cell i at bit i%64 of
	// word i/64.
	CoarseBits []uint64

	// ElderChild holds one slot per cell: the first-child local index for
	// coarse cells, -1 for leaves.
	ElderChild []int64

	GlobalIndexStart int64

	// Globals holds the explicit global-index assignments, -1 slots meaning
	// implicit numbering. May be shorter than Cells; missing slots are
	// implicit. Nil when no explicit assignment was ever made.
	Globals []int64
}

// Snapshot returns an independent copy of the tree's storage.
func (t *HyperTree) Snapshot() Snapshot {
	s := Snapshot{
		BranchFactor:     t.branchFactor,
		Dimension:        t.dimension,
		Cells:            t.coarse.len(),
		Levels:           t.levels,
		CoarseBits:       t.coarse.clone(),
		ElderChild:       make([]int64, len(t.elderChild)),
		GlobalIndexStart: t.globalIndexStart,
	}
	copy(s.ElderChild, t.elderChild)
	if t.globals != nil {
		s.Globals = make([]int64, len(t.globals))
		copy(s.Globals, t.globals)
	}

	return s
}

// FromSnapshot reconstructs a tree from a snapshot, taking ownership of the
// snapshot's slices. It validates structural consistency and returns
// ErrCorruptSnapshot when the fields do not describe a valid tree.
func FromSnapshot(s Snapshot) (*HyperTree, error) {
	t, err := New(s.BranchFactor, s.Dimension)
	if err != nil {
		return nil, err
	}
	if s.Cells < 1 || int64(len(s.ElderChild)) != s.Cells {
		return nil, fmt.Errorf("%w: %d cells, %d elder-child slots", ErrCorruptSnapshot, s.Cells, len(s.ElderChild))
	}
	if wantWords := (s.Cells + 63) / 64; int64(len(s.CoarseBits)) != wantWords {
		return nil, fmt.Errorf("%w: %d cells need %d flag words, got %d", ErrCorruptSnapshot, s.Cells, wantWords, len(s.CoarseBits))
	}
	if int64(len(s.Globals)) > s.Cells {
		return nil, fmt.Errorf("%w: %d explicit globals for %d cells", ErrCorruptSnapshot, len(s.Globals), s.Cells)
	}

	t.coarse = bitset{words: s.CoarseBits, n: s.Cells}
	t.elderChild = s.ElderChild
	t.levels = s.Levels
	t.globalIndexStart = s.GlobalIndexStart
	t.globals = s.Globals

	t.leafCount = 0
	for i := int64(0); i < s.Cells; i++ {
		if t.coarse.get(i) {
			elder := t.elderChild[i]
			if elder < 1 || elder+int64(t.numChildren) > s.Cells {
				return nil, fmt.Errorf("%w: cell %d elder child %d out of range", ErrCorruptSnapshot, i, elder)
			}
		} else {
			t.leafCount++
			if t.elderChild[i] != noChild {
				return nil, fmt.Errorf("%w: leaf %d has elder child %d", ErrCorruptSnapshot, i, t.elderChild[i])
			}
		}
	}

	return t, nil
}
