package plan

import (
	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/models"
)

var defaultCatalog = mustNew(defaultSlots())

func mustNew(slots []models.Slot) *Catalog {
	c, err := New(slots)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in ten-slot day.
func Default() *Catalog {
	return defaultCatalog
}

func lunchSupplements(s models.SupplementSchedule) []string {
	names := []string{"Multivitamin", "Omega-3", "Cell Activator", "Cell-U-Loss"}
	if s.Zinc {
		names = append(names, "Zinc")
	}
	if s.VitaminD {
		names = append(names, "Vitamin D")
	}
	return names
}

func bedtimeSupplements(s models.SupplementSchedule) []string {
	var names []string
	if s.VitaminC {
		names = append(names, "Vitamin C")
	}
	if s.Iron {
		names = append(names, "Iron")
	}
	return names
}

func defaultSlots() []models.Slot {
	return []models.Slot{
		{
			Time:        "07:00",
			Title:       "🌅 WAKE UP",
			Subtitle:    "Warm Water Routine",
			Description: "300ml warm water + 1 tbsp Apple Cider Vinegar + 1 cap Aloe Concentrate",
			Category:    constants.SlotCategoryHydration,
		},
		{
			Time:        "07:30",
			Title:       "☕ HERBAL TEA",
			Subtitle:    "Metabolism Boost",
			Description: "1 cup Herbal Tea Concentrate + optional lemon",
			Category:    constants.SlotCategoryDrink,
		},
		{
			Time:        "08:00",
			Title:       "🍽 BREAKFAST",
			Subtitle:    "Herbalife Shake #1",
			Description: "Formula 1 (2 scoops) + PDM (1 scoop) + Active Fiber (1 scoop) + 250ml water/almond milk",
			Category:    constants.SlotCategoryMeal,
			Supplements: models.StaticSupplements("Multivitamin", "Men's Choice", "Cell Activator", "Omega-3", "CoQ10 (200mg)", "Cell-U-Loss"),
		},
		{
			Time:        "10:30",
			Title:       "🍏 MID-MORNING",
			Subtitle:    "Power Snack",
			Description: "Choose ONE: Fruit / 10-12 nuts / Greek yogurt / Herbal Tea + 300ml water",
			Category:    constants.SlotCategorySnack,
		},
		{
			Time:        "13:00",
			Title:       "🍽 LUNCH",
			Subtitle:    "Main Meal",
			Description: "½ plate veggies + ¼ plate protein (paneer/tofu/lentils) + ¼ plate carbs + salad",
			Note:        "400ml water",
			Category:    constants.SlotCategoryMeal,
			Supplements: models.DerivedSupplements(lunchSupplements),
		},
		{
			Time:        "15:30",
			Title:       "☕ AFTERNOON",
			Subtitle:    "Energy Boost",
			Description: "Herbal Tea / Roasted chana / Fruit / Protein bar + 250ml water",
			Category:    constants.SlotCategorySnack,
		},
		{
			Time:        "17:30",
			Title:       "🏋️ PRE-WORKOUT",
			Subtitle:    "Fuel Up",
			Description: "Optional: 1 banana OR ½ scoop PDM in water",
			Category:    constants.SlotCategoryPrep,
		},
		{
			Time:        "18:00",
			Title:       "💪 WORKOUT",
			Subtitle:    "Beast Mode",
			Description: "Strength training / HIIT / Chloe Ting + 500ml water",
			Category:    constants.SlotCategoryWorkout,
		},
		{
			Time:        "19:30",
			Title:       "🍽 DINNER",
			Subtitle:    "Herbalife Shake #2",
			Description: "Formula 1 (2 scoops) + PDM (1 scoop) + Active Fiber (1 scoop) + 250ml water",
			Alternative: "Alternative: Veggie soup + paneer/tofu OR grilled veggies + protein",
			Category:    constants.SlotCategoryMeal,
			Supplements: models.StaticSupplements("Multivitamin", "Cell-U-Loss"),
		},
		{
			Time:        "21:30",
			Title:       "🌙 BEDTIME",
			Subtitle:    "Wind Down",
			Description: "200ml warm water",
			Category:    constants.SlotCategoryBedtime,
			Supplements: models.DerivedSupplements(bedtimeSupplements),
		},
	}
}
