package chunk

// Direction is the effective traversal direction over chunk indices.
type Direction int

const (
	// Forward means "next" moves toward TotalChunks.
	Forward Direction = iota
	// Reverse means "next" moves toward index 1. Chunk boundaries anchor
	// at the buffer's tail, so the newest chunk is always full-sized.
	Reverse
)

// EffectiveDirection combines the fixed tail anchor with the runtime
// invert toggle. This is the only place the two flags meet.
func EffectiveDirection(tailMode, inverted bool) Direction {
	if tailMode != inverted {
		return Reverse
	}
	return Forward
}

// ChunkState is the single source of truth for one chunking session.
type ChunkState struct {
	Buffer      string
	ChunkSize   int
	TailMode    bool // fixed at construction
	Inverted    bool
	Position    int // 1-based, kept in [1, TotalChunks]
	TotalChunks int

	used map[string]struct{} // consumed chunk contents
}

// NewChunkState creates an unloaded session. chunkSize must be positive;
// front-ends validate it before construction.
func NewChunkState(tailMode bool, chunkSize int) *ChunkState {
	return &ChunkState{
		ChunkSize:   chunkSize,
		TailMode:    tailMode,
		Position:    1,
		TotalChunks: 1,
		used:        make(map[string]struct{}),
	}
}

// Direction returns the current effective direction.
func (s *ChunkState) Direction() Direction {
	return EffectiveDirection(s.TailMode, s.Inverted)
}

func (s *ChunkState) recalcChunks() {
	total := (len(s.Buffer) + s.ChunkSize - 1) / s.ChunkSize
	if total < 1 {
		total = 1
	}
	s.TotalChunks = total
	s.clampPosition()
}

func (s *ChunkState) clampPosition() {
	if s.Position < 1 {
		s.Position = 1
	}
	if s.Position > s.TotalChunks {
		s.Position = s.TotalChunks
	}
}

// advance moves the cursor by steps along the effective direction,
// clamping at the boundaries.
func (s *ChunkState) advance(steps int) {
	if s.Direction() == Reverse {
		steps = -steps
	}
	s.Position += steps
	s.clampPosition()
}
