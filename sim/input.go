package sim

// Input is one frame's worth of player input, already translated to world space
type Input struct {
	// Held movement keys
	Up, Down, Left, Right bool

	// Fire was clicked this frame
	Fire bool

	// Interact was pressed this frame
	Interact bool

	// Mouse is the cursor position in world coordinates
	Mouse Vec

	// Spawns lists factory kinds to drop at the cursor (debug keys)
	Spawns []string

	// WorldStep cycles the current world backward (-1) or forward (+1)
	WorldStep int
}
