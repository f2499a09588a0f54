package panel

// UIState is the panel's transient, never persisted state.
type UIState struct {
	CurrentTabIndex int
	IsOpen          bool
	ResetToDefault  bool
}

// NewUIState returns the state every freshly mounted panel starts from.
func NewUIState() UIState {
	return UIState{
		CurrentTabIndex: 0,
		IsOpen:          true,
		ResetToDefault:  false,
	}
}
