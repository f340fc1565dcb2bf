package ebiten

import "image/color"

// Fallbacks for config colors that fail to parse.
var (
	colorBackground = color.RGBA{26, 26, 46, 255}
	colorText       = color.RGBA{200, 210, 245, 255}
	colorSubtle     = color.RGBA{120, 130, 180, 255}
	colorAction     = color.RGBA{180, 150, 250, 255}
	colorPanel      = color.RGBA{30, 30, 50, 235}
)

const (
	keyRepeatInitialDelay = 400 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 60  // Interval between repeat events (milliseconds)
)

const (
	panelEntranceMs = 160 // Detail panel fade/slide in
	cornerRadius    = 6
	statusFontSize  = 12
)
