package tui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/eatforce/internal/ledger"
)

var errInvalidWeight = errors.New("enter a positive weight in kg")

func newWeightForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Body weight (kg)").
				Description("Locked once saved for today.").
				Placeholder("82.4").
				Value(value).
				Validate(func(s string) error {
					if _, ok := ledger.ParseWeight(s); !ok {
						return errInvalidWeight
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newWorkoutForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Workout done").
				Placeholder("5x5 squats, 20 min incline walk").
				Value(value),
		),
	).WithTheme(huh.ThemeDracula())
}
