package app

import (
	"time"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/cycle"
	"github.com/julianstephens/eatforce/internal/models"
	"github.com/julianstephens/eatforce/internal/plan"
	"github.com/julianstephens/eatforce/internal/utils"
)

// SlotStatus is where a slot stands relative to the current time.
type SlotStatus int

const (
	StatusPending SlotStatus = iota
	StatusPast
	StatusDone
)

func (s SlotStatus) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusPast:
		return "past"
	default:
		return "pending"
	}
}

// SlotView is one schedule row with its supplements resolved for the day.
type SlotView struct {
	models.Slot
	Stack   []string
	Status  SlotStatus
	Current bool
}

// Day is everything a surface shows for one date.
type Day struct {
	Date      time.Time
	Key       string
	Cycle     cycle.Day
	Slots     []SlotView
	Current   int // index into Slots, -1 when no slot is near
	IsToday   bool
	Done      int
	Total     int
	Weight    float64
	HasWeight bool
	Workout   models.DailyLogEntry
	Logged    bool
}

// Today builds the view for the current date.
func (a *App) Today() Day {
	return a.DayFor(a.Now())
}

// DayFor builds the view for date. Past and current markers only apply when date is today.
func (a *App) DayFor(date time.Time) Day {
	now := a.Now()
	key := utils.FormatDate(date)
	today := key == utils.FormatDate(now)

	d := Day{
		Date:    date,
		Key:     key,
		Cycle:   cycle.ForDate(date),
		Current: -1,
		IsToday: today,
		Total:   a.catalog.Len(),
	}

	if today {
		if i, ok := a.catalog.Nearest(now, constants.CurrentSlotWindow); ok {
			d.Current = i
		}
	}

	for i, slot := range a.catalog.Slots() {
		view := SlotView{
			Slot:    slot,
			Stack:   plan.Resolve(slot, d.Cycle.Supplements),
			Current: i == d.Current,
		}
		switch {
		case a.ledger.IsDone(slot.Time, key):
			view.Status = StatusDone
			d.Done++
		case today && a.catalog.Past(i, now):
			view.Status = StatusPast
		case !today && key < utils.FormatDate(now):
			view.Status = StatusPast
		}
		d.Slots = append(d.Slots, view)
	}

	d.Weight, d.HasWeight = a.ledger.Weight(key)
	d.Workout, d.Logged = a.ledger.DailyLog(key)
	return d
}

// ProtocolItem is one rotating supplement and whether it is due.
type ProtocolItem struct {
	Name   string
	With   string
	Active bool
}

// Protocol lists the rotating supplements in display order.
func Protocol(s models.SupplementSchedule) []ProtocolItem {
	return []ProtocolItem{
		{Name: "Zinc", With: "Lunch", Active: s.Zinc},
		{Name: "Vitamin D", With: "Lunch", Active: s.VitaminD},
		{Name: "Vitamin C", With: "Bedtime", Active: s.VitaminC},
		{Name: "Iron", With: "Bedtime", Active: s.Iron},
	}
}
