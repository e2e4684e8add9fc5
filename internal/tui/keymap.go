package tui

// Key bindings handled in Update. While idle the text inputs own most
// keys, so control combos are used; while running plain keys are free.
const (
	keyCtrlC    = "ctrl+c"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyEnter    = "enter"
	keyStop     = "s"
	keyRefresh  = "r"
	keyQuit     = "q"
)
