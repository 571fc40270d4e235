package cycle

import (
	"fmt"

	"github.com/julianstephens/eatforce/internal/constants"
)

// lunches rotates one main meal per cycle day
var lunches = []string{
	"Grilled Paneer + Stir-fried Veggies + Quinoa",
	"Chickpea Salad Bowl + Grilled Tofu + Olive Oil Dressing",
	"Dal Tadka + Cauliflower Rice + Cucumber Raita",
	"Egg White Bhurji (6 whites) + Multigrain Roti + Salad",
	"Soya Chunk Curry + Broccoli + Brown Rice",
	"Grilled Chicken (if non-veg) + Steamed Veggies",
	"Moong Dal Khichdi + Greek Yogurt + Pickle",
	"Rajma (low oil) + Jeera Rice (small portion) + Salad",
	"Palak Paneer + 1 Roti + Beetroot Salad",
	"Mixed Lentil Soup + Grilled Fish (if non-veg) + Greens",
	"Besan Chilla (3) + Mint Chutney + Tomato Salad",
	"Tandoori Soya Chaap + Roasted Veggies + Yogurt",
	"Vegetable Oats Upma + Sprouts Salad",
	"Mushroom Masala + 1 Millet Roti + Carrot Salad",
}

// workouts rotates one training focus per cycle day
var workouts = []string{
	"Upper Body Strength – Push Focus (Bench, OHP, Triceps)",
	"Lower Body Hypertrophy (Squats, RDL, Leg Press)",
	"Full Body HIIT + Core Crusher (Chloe Ting 2025 Abs)",
	"Pull Day – Back & Biceps (Pull-ups, Rows, Curls)",
	"Legs + Shoulders (Lunges, Lateral Raises, Calf)",
	"Active Recovery – 10K Steps + Yoga Flow",
	"Push Day Volume (Incline, Dips, Overhead)",
	"Full Body Circuit – 4 Rounds EMOM",
	"Deadlift & Pull Power Day",
	"Upper Body Pump – High Reps 15-20",
	"Lower Body Endurance – High Volume",
	"HIIT Hell – 30/15 Tabata + Finisher",
	"Rest or Light Walk – Recovery Priority",
	"Full Body Beast Mode – Compound Only",
}

func init() {
	// Both rotations are indexed directly by the cycle index
	if err := checkCatalog("lunch", lunches); err != nil {
		panic(err)
	}
	if err := checkCatalog("workout", workouts); err != nil {
		panic(err)
	}
}

func checkCatalog(name string, entries []string) error {
	if len(entries) != constants.CycleLength {
		return fmt.Errorf("%s catalog has %d entries, want %d", name, len(entries), constants.CycleLength)
	}
	return nil
}
