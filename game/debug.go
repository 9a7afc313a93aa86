package game

// DebugState holds global debug flags that persist across restarts
type DebugState struct {
	ShowHitboxes bool // Outline every collision box
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
