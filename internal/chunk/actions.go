package chunk

// Action is the base interface for all state mutations
type Action interface{}

// ===== LOAD / EDIT ACTIONS =====

type LoadTextAction struct {
	Text string
}
type AppendTextAction struct {
	Text string
}
type ResizeChunkAction struct {
	Size int
}

// ===== NAVIGATION ACTIONS =====

type NextChunkAction struct{}
type PrevChunkAction struct{}
type FirstChunkAction struct{}
type LastChunkAction struct{}
type InvertOrderAction struct{}
type GotoChunkAction struct {
	Index int
}

// ===== USAGE ACTIONS =====

type ResetUsageAction struct{}
