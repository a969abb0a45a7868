package chunk

import "fmt"

// StateReducer applies actions to a ChunkState.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action to state and returns the state. Navigation
// clamps at the boundaries instead of failing; resize and goto reject
// invalid input and leave the state untouched.
func (r *StateReducer) Reduce(state *ChunkState, action Action) (*ChunkState, error) {
	switch a := action.(type) {

	// ===== LOAD / EDIT =====

	case LoadTextAction:
		if a.Text == "" {
			return state, ErrEmptyInput
		}
		state.Buffer = a.Text
		state.recalcChunks()
		if state.TailMode {
			state.Position = state.TotalChunks
		} else {
			state.Position = 1
		}
		return state, nil

	case AppendTextAction:
		if a.Text == "" {
			return state, nil
		}
		state.Buffer += a.Text
		state.recalcChunks()
		return state, nil

	case ResizeChunkAction:
		if a.Size <= 0 || a.Size > len(state.Buffer) {
			return state, fmt.Errorf("%w: must be in 1-%d", ErrInvalidSize, len(state.Buffer))
		}
		state.ChunkSize = a.Size
		// Old chunk boundaries no longer exist, so usage history is
		// meaningless after a resize.
		state.used = make(map[string]struct{})
		state.recalcChunks()
		return state, nil

	// ===== NAVIGATION =====

	case NextChunkAction:
		state.advance(1)
		return state, nil

	case PrevChunkAction:
		state.advance(-1)
		return state, nil

	case FirstChunkAction:
		if state.Direction() == Reverse {
			state.Position = state.TotalChunks
		} else {
			state.Position = 1
		}
		return state, nil

	case LastChunkAction:
		if state.Direction() == Reverse {
			state.Position = 1
		} else {
			state.Position = state.TotalChunks
		}
		return state, nil

	case InvertOrderAction:
		state.Inverted = !state.Inverted
		// Mirror the index so the same physical chunk stays current
		// under the flipped numbering.
		state.Position = state.TotalChunks - state.Position + 1
		return state, nil

	case GotoChunkAction:
		if a.Index < 1 || a.Index > state.TotalChunks {
			return state, fmt.Errorf("%w: valid range 1-%d", ErrOutOfRange, state.TotalChunks)
		}
		state.Position = a.Index
		return state, nil

	// ===== USAGE =====

	case ResetUsageAction:
		state.used = make(map[string]struct{})
		return state, nil
	}

	return state, nil
}
