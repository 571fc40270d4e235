package constants

// SlotCategory tags a plan slot with the kind of routine it represents
type SlotCategory string

// NotificationKind identifies which trigger produced a notification
type NotificationKind string

const (
	SlotCategoryHydration SlotCategory = "hydration"
	SlotCategoryDrink     SlotCategory = "drink"
	SlotCategoryMeal      SlotCategory = "meal"
	SlotCategorySnack     SlotCategory = "snack"
	SlotCategoryPrep      SlotCategory = "prep"
	SlotCategoryWorkout   SlotCategory = "workout"
	SlotCategoryBedtime   SlotCategory = "bedtime"

	NotificationHydration NotificationKind = "hydration"
	NotificationMovement  NotificationKind = "movement"
	NotificationSlot      NotificationKind = "slot"

	// Default Settings Values
	DefaultNotificationsEnabled = false
	DefaultSlotToleranceMin     = 0
	DefaultHydrationEnabled     = true
	DefaultMovementEnabled      = true

	// MaxSlotToleranceMin keeps slot windows from overlapping the neighbouring slot
	MaxSlotToleranceMin = 15
)
