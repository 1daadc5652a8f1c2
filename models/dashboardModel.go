package models

// CategoryCalories is one pie chart slice: the summed calories burned for a
// category on the reference day.
type CategoryCalories struct {
	ID    int     `json:"id"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// WeeklyCalories carries the 7-day trend, oldest day first, ending on the
// reference date.
type WeeklyCalories struct {
	Weeks          []string  `json:"weeks"`
	CaloriesBurned []float64 `json:"caloriesBurned"`
}

type DashboardSummary struct {
	TotalCaloriesBurnt         float64            `json:"totalCaloriesBurnt"`
	TotalWorkouts              int                `json:"totalWorkouts"`
	AvgCaloriesBurntPerWorkout float64            `json:"avgCaloriesBurntPerWorkout"`
	TotalWeeksCaloriesBurnt    WeeklyCalories     `json:"totalWeeksCaloriesBurnt"`
	PieChartData               []CategoryCalories `json:"pieChartData"`
}
