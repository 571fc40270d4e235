package models

import "github.com/julianstephens/eatforce/internal/constants"

// Settings represents user preferences persisted alongside the ledger
type Settings struct {
	NotificationsEnabled bool `json:"notifications_enabled"` // permission granted for desktop delivery
	SlotToleranceMin     int  `json:"slot_tolerance_min"`    // minutes either side of a slot time that still trigger its reminder
	HydrationEnabled     bool `json:"hydration_enabled"`     // every-two-hours water reminder
	MovementEnabled      bool `json:"movement_enabled"`      // every-90-minutes movement reminder
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		SlotToleranceMin:     constants.DefaultSlotToleranceMin,
		HydrationEnabled:     constants.DefaultHydrationEnabled,
		MovementEnabled:      constants.DefaultMovementEnabled,
	}
}

// Normalize clamps values that would make the reminder engine misbehave.
func (s *Settings) Normalize() {
	if s.SlotToleranceMin < 0 {
		s.SlotToleranceMin = 0
	}
	if s.SlotToleranceMin > constants.MaxSlotToleranceMin {
		s.SlotToleranceMin = constants.MaxSlotToleranceMin
	}
}
