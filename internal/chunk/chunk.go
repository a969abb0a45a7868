package chunk

// ChunkAt returns the chunk at 1-based index pos, or "" outside
// [1, TotalChunks].
//
// Forward-anchored boundaries start at the head of the buffer and only
// the final chunk may run short. Reverse-anchored boundaries are
// computed from the tail backward, so the chunk nearest the end is
// always exactly ChunkSize bytes and only the oldest chunk may run
// short.
func (s *ChunkState) ChunkAt(pos int) string {
	if pos < 1 || pos > s.TotalChunks {
		return ""
	}

	var start, end int
	if s.Direction() == Reverse {
		end = len(s.Buffer) - (s.TotalChunks-pos)*s.ChunkSize
		start = end - s.ChunkSize
		if start < 0 {
			start = 0
		}
	} else {
		start = (pos - 1) * s.ChunkSize
		end = start + s.ChunkSize
		if end > len(s.Buffer) {
			end = len(s.Buffer)
		}
	}
	return s.Buffer[start:end]
}

// CurrentChunk returns the chunk under the cursor.
func (s *ChunkState) CurrentChunk() string {
	return s.ChunkAt(s.Position)
}

// AtFinalChunk reports whether the cursor sits on the last chunk the
// effective direction will visit.
func (s *ChunkState) AtFinalChunk() bool {
	if s.Direction() == Reverse {
		return s.Position == 1
	}
	return s.Position == s.TotalChunks
}

// ===== USAGE TRACKING =====
//
// Consumption is tracked by chunk content, not index: two chunks with
// identical text count as a single consumed unit.

// MarkUsed records chunk content as consumed.
func (s *ChunkState) MarkUsed(text string) {
	if s.used == nil {
		s.used = make(map[string]struct{})
	}
	s.used[text] = struct{}{}
}

// IsUsed reports whether chunk content was already consumed.
func (s *ChunkState) IsUsed(text string) bool {
	_, ok := s.used[text]
	return ok
}

// UsedCount returns the number of distinct consumed chunk contents.
func (s *ChunkState) UsedCount() int {
	return len(s.used)
}

// HasUnusedChunks reports whether fewer contents have been consumed
// than chunks exist.
func (s *ChunkState) HasUnusedChunks() bool {
	return len(s.used) < s.TotalChunks
}

// NextUnused scans for the first position holding unconsumed content,
// starting at the cursor and stepping the way the next advance would,
// wrapping around the cycle at most once. The cursor is not moved;
// ErrNoUnusedChunks means the full cycle was consumed.
func (s *ChunkState) NextUnused() (int, error) {
	step := 1
	if s.Direction() == Reverse {
		step = -1
	}

	pos := s.Position
	for i := 0; i < s.TotalChunks; i++ {
		if !s.IsUsed(s.ChunkAt(pos)) {
			return pos, nil
		}
		pos += step
		if pos < 1 {
			pos = s.TotalChunks
		} else if pos > s.TotalChunks {
			pos = 1
		}
	}
	return 0, ErrNoUnusedChunks
}
