package domain

import "time"

// Business hours bounds
const (
	MinHour = 0.0
	MaxHour = 24.0
)

// Default configuration values
const (
	DefaultOpeningHour        = 9.0
	DefaultClosingHour        = 18.0
	DefaultConfirmationTTL    = 5 * time.Minute
	DefaultRemoteStoreTimeout = 10 * time.Second
)

// Business validation constants
const (
	MaxNoteLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
