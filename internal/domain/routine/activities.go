package routine

// Built-in activity suggestions per category. The UI offers these as
// presets; drafts may still carry any free-text activity.
var activities = map[Category][]string{
	CategoryExercise: {
		"Morning walk",
		"Stretching",
		"Strength training",
		"Cycling",
		"Swimming",
		"Yoga",
	},
	CategoryNutrition: {
		"Breakfast",
		"Lunch",
		"Dinner",
		"Healthy snack",
		"Fruit serving",
	},
	CategoryWater: {
		"Glass of water",
		"Water bottle refill",
	},
	CategorySleep: {
		"Bedtime",
		"Wake up",
		"Afternoon nap",
	},
	CategoryMedication: {
		"Morning medication",
		"Noon medication",
		"Evening medication",
	},
}

// ActivitiesFor returns the suggestion list for a category. Total over the
// category enum: every valid category has at least one suggestion, and an
// unknown category yields an empty list.
func ActivitiesFor(category Category) []string {
	list, ok := activities[category]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
