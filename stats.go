package polykeymap

// PathStats describes one access path.
type PathStats struct {
	// Keys is the number of keys currently set on the path.
	Keys int
}

// Stats is a point-in-time summary of the container.
type Stats struct {
	// Records is the number of stored values.
	Records int
	// Paths holds per-path statistics, indexed by path.
	Paths []PathStats
	// FullyLinked is the number of records carrying a key on every path.
	FullyLinked int
}

// Stats returns a summary of the container. O(Records * NumPaths).
func (m *Map[V]) Stats() Stats {
	s := Stats{
		Records: m.values.Len(),
		Paths:   make([]PathStats, len(m.paths)),
	}

	for i, idx := range m.paths {
		s.Paths[i].Keys = idx.Len()
	}

	for _, ks := range m.keysets.All() {
		if ks.Occupied() == len(m.paths) {
			s.FullyLinked++
		}
	}

	return s
}
