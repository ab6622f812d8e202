package session

// Grid size, in cells.
const (
	MinRows     = 6
	MaxRows     = 32
	DefaultRows = 6

	MinColumns     = 8
	MaxColumns     = 32
	DefaultColumns = 8
)

// Speed. A move happens every MaxSpeed-speed+MinSpeed frames.
const (
	MinSpeed     = 1
	MaxSpeed     = 32
	DefaultSpeed = 1
)

// Canvas size, in pixels.
const (
	MinWidth      = 400
	MaxWidth      = 800
	DefaultWidth  = 800
	MinHeight     = 400
	MaxHeight     = 800
	DefaultHeight = 600
)

// Step sizes of the pending-settings editing commands.
const (
	GridStep   = 1
	SpeedStep  = 1
	CanvasStep = 50
)
