package game

// renderState guards the cached board background.
type renderState uint8

const (
	stateIdle  renderState = iota // cache matches the board
	stateDirty                    // cache must be redrawn before the next blit
)

func (s renderState) String() string {
	if s == stateDirty {
		return "dirty"
	}
	return "idle"
}

// hoverMoved marks the cache stale when any hover flag changed.
func (s *renderState) hoverMoved(changed bool) {
	if changed {
		*s = stateDirty
	}
}

// invalidate marks the cache stale unconditionally (hazard edits, reloads).
func (s *renderState) invalidate() {
	*s = stateDirty
}

func (s renderState) needsRedraw() bool {
	return s == stateDirty
}

// redrawn records that the cache was rebuilt.
func (s *renderState) redrawn() {
	*s = stateIdle
}
