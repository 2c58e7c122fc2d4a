package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe   = "\uf0ac" // web
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconClock   = "\uf017" // clock
	IconArrow   = "\uf061" // arrow right
	IconFolder  = "\uf07b" // folder
	IconImage   = "\uf1c5" // image file
	IconConfig  = "\ue615" // config
)
