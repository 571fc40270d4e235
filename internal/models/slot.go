package models

import "github.com/julianstephens/eatforce/internal/constants"

// SupplementSchedule flags which rotating supplements are due on a cycle day.
type SupplementSchedule struct {
	Zinc     bool `json:"zinc"`
	VitaminD bool `json:"vitamin_d"`
	VitaminC bool `json:"vitamin_c"`
	Iron     bool `json:"iron"`
}

// SupplementList is either a fixed list or a list derived from the day's
// SupplementSchedule. The zero value resolves to nothing.
type SupplementList struct {
	static  []string
	derived func(SupplementSchedule) []string
}

// StaticSupplements returns a list that resolves to names regardless of the schedule.
func StaticSupplements(names ...string) SupplementList {
	return SupplementList{static: names}
}

// DerivedSupplements returns a list computed from the schedule at resolution time.
func DerivedSupplements(fn func(SupplementSchedule) []string) SupplementList {
	return SupplementList{derived: fn}
}

// IsDerived reports whether the list depends on the supplement schedule.
func (l SupplementList) IsDerived() bool {
	return l.derived != nil
}

// Resolve returns a fresh slice of supplement names for the given schedule.
func (l SupplementList) Resolve(schedule SupplementSchedule) []string {
	var names []string
	if l.derived != nil {
		names = l.derived(schedule)
	} else {
		names = l.static
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Slot is one time-anchored routine item in the daily plan.
type Slot struct {
	Time        string // HH:MM format
	Title       string
	Subtitle    string
	Description string
	Note        string
	Alternative string
	Category    constants.SlotCategory
	Supplements SupplementList
}
