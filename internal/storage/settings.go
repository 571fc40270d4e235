package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/logger"
	"github.com/julianstephens/eatforce/internal/models"
)

// LoadSettings returns the saved settings, falling back to defaults when nothing is saved
// or the saved value cannot be parsed.
func LoadSettings(p Provider) (models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := p.Get(constants.KeySettings)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("Ignoring malformed settings", "error", err)
		return models.DefaultSettings(), nil
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings normalizes and persists settings.
func SaveSettings(p Provider, settings models.Settings) error {
	settings.Normalize()
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := p.Set(constants.KeySettings, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// EnsureSettings writes default settings when none are saved yet.
func EnsureSettings(p Provider) error {
	if _, err := p.Get(constants.KeySettings); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return SaveSettings(p, models.DefaultSettings())
}
