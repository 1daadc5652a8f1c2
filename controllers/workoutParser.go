package controllers

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"fittrack-backend/models"
)

// calorieConstant is the kcal-per-minute-per-kg factor of the deliberately
// crude linear estimate.
const calorieConstant = 5

// ErrNoCategory rejects a workout log that contains no "#" category marker.
var ErrNoCategory = errors.New("No categories found in workout string")

var (
	setsPattern = regexp.MustCompile(`(?i)(\d+)\s*sets`)
	repsPattern = regexp.MustCompile(`(?i)(\d+)\s*reps`)
	nonNumeric  = regexp.MustCompile(`[^\d.]`)
)

// EstimateCalories maps a duration (minutes) and weight (kg) to a calorie
// estimate. Both inputs truncate to whole units before multiplying, so
// fractions below 1 collapse the whole estimate to 0. NaN and negative
// inputs count as 0. The multiply stays in float64 so oversized inputs
// cannot wrap into a negative estimate.
func EstimateCalories(durationMinutes, weightKg float64) float64 {
	duration := truncateNonNegative(durationMinutes)
	weight := truncateNonNegative(weightKg)
	return duration * weight * calorieConstant
}

func truncateNonNegative(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	return math.Trunc(value)
}

// ParseWorkoutLog converts a raw multi-line workout log into drafts.
//
// A line starting with "#" opens a category that applies to every block
// until the next marker. Each run of four non-empty lines forms one block:
// name, sets/reps descriptor, weight, duration. Blocks cut short by a new
// category marker or the end of input are dropped silently; a log without
// any category marker at all is rejected with ErrNoCategory.
//
// Only the English "sets"/"reps" tokens are recognised in the descriptor
// line; either may be absent, defaulting that field to 1.
func ParseWorkoutLog(raw string) ([]models.WorkoutDraft, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	sawCategory := false
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			sawCategory = true
			break
		}
	}
	if !sawCategory {
		return nil, ErrNoCategory
	}

	var drafts []models.WorkoutDraft
	category := "Uncategorized"
	var block []string

	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			// A partial block is dropped when a new category starts.
			block = block[:0]
			category = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			continue
		}

		block = append(block, line)
		if len(block) == 4 {
			drafts = append(drafts, parseBlock(block, category))
			block = block[:0]
		}
	}
	// A trailing partial block is dropped the same way.

	return drafts, nil
}

// parseBlock reads the four positional lines of one block. Legacy logs
// prefix every block line with "-"; once detected and stripped, both
// formats share the same positional parse.
func parseBlock(lines []string, category string) models.WorkoutDraft {
	if isLegacyBlock(lines) {
		normalized := make([]string, len(lines))
		for i, line := range lines {
			normalized[i] = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		}
		lines = normalized
	}

	draft := models.WorkoutDraft{
		Category:    category,
		WorkoutName: lines[0],
		Sets:        1,
		Reps:        1,
		Weight:      parseMeasure(lines[2]),
		Duration:    parseMeasure(lines[3]),
	}

	// Sets and reps never go below 1.
	if m := setsPattern.FindStringSubmatch(lines[1]); m != nil {
		if sets, err := strconv.Atoi(m[1]); err == nil && sets >= 1 {
			draft.Sets = sets
		}
	}
	if m := repsPattern.FindStringSubmatch(lines[1]); m != nil {
		if reps, err := strconv.Atoi(m[1]); err == nil && reps >= 1 {
			draft.Reps = reps
		}
	}

	return draft
}

func isLegacyBlock(lines []string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, "-") {
			return false
		}
	}
	return true
}

// parseMeasure strips everything but digits and the decimal point, so
// "50kg" and "30 mins" read as 50 and 30. Unparseable values default to 0.
func parseMeasure(line string) float64 {
	cleaned := nonNumeric.ReplaceAllString(line, "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
