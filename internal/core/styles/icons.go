package styles

var (
	IconSuccess = "✔"
	IconError   = "✘"
	IconClose   = "✕"
	IconPaused  = "⏸"
)
