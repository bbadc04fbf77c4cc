package polykeymap

// RewindAllocator repositions the id allocator at its starting value, so
// the next candidate id collides with the oldest live record. Test-only
// seam for exercising the exhaustion branch.
func (m *Map[V]) RewindAllocator() {
	m.ids.Reset()
}
