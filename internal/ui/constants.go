package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Pet window sizing. The canvas is larger than the pet so drags have room
// to move it around.
const (
	PetCanvasScale float32 = 3
)

// Delays
const (
	// DeleteCommitDelay is the bounded deferral between releasing the
	// animation handle and the physical file delete; open files stay
	// locked on some platforms.
	DeleteCommitDelay = 100 * time.Millisecond
)

// Dialog sizing
const (
	OrderDialogWidth  float32 = 360
	OrderDialogHeight float32 = 200
)
