package controllers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCalories(t *testing.T) {
	assert.Equal(t, 7500.0, EstimateCalories(30, 50))
	assert.Equal(t, 0.0, EstimateCalories(0, 80))
	assert.Equal(t, 0.0, EstimateCalories(45, 0))

	// Inputs truncate before multiplying, so fractions below one collapse
	// the whole estimate to zero.
	assert.Equal(t, 0.0, EstimateCalories(0.9, 80))
	assert.Equal(t, 7500.0, EstimateCalories(30.9, 50.9))

	assert.Equal(t, 0.0, EstimateCalories(-1, 5))
	assert.Equal(t, 0.0, EstimateCalories(math.NaN(), 50))
	assert.Equal(t, 0.0, EstimateCalories(30, math.NaN()))
}

func TestEstimateCaloriesOversizedInputsStayNonNegative(t *testing.T) {
	// Values this large used to wrap around in integer arithmetic and come
	// back negative.
	huge := 9223372036854775000.0

	assert.GreaterOrEqual(t, EstimateCalories(30, huge), 0.0)
	assert.GreaterOrEqual(t, EstimateCalories(huge, 30), 0.0)
	assert.GreaterOrEqual(t, EstimateCalories(huge, huge), 0.0)
	assert.GreaterOrEqual(t, EstimateCalories(30, math.MaxFloat64), 0.0)
	assert.Equal(t, 30*huge*5, EstimateCalories(30, huge))
}

func TestParseWorkoutLogOversizedWeightEstimatesNonNegative(t *testing.T) {
	drafts, err := ParseWorkoutLog("#Chest\nBench Press\n3 sets x 10 reps\n9223372036854775000kg\n30mins")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.GreaterOrEqual(t, EstimateCalories(drafts[0].Duration, drafts[0].Weight), 0.0)
}

func TestParseWorkoutLogSingleBlock(t *testing.T) {
	drafts, err := ParseWorkoutLog("#Chest\nBench Press\n3 sets x 10 reps\n50kg\n30mins")
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	draft := drafts[0]
	assert.Equal(t, "Chest", draft.Category)
	assert.Equal(t, "Bench Press", draft.WorkoutName)
	assert.Equal(t, 3, draft.Sets)
	assert.Equal(t, 10, draft.Reps)
	assert.Equal(t, 50.0, draft.Weight)
	assert.Equal(t, 30.0, draft.Duration)
	assert.Equal(t, 7500.0, EstimateCalories(draft.Duration, draft.Weight))
}

func TestParseWorkoutLogNoCategory(t *testing.T) {
	_, err := ParseWorkoutLog("Bench Press\n3 sets x 10 reps\n50kg\n30mins")
	require.ErrorIs(t, err, ErrNoCategory)
}

func TestParseWorkoutLogDropsIncompleteTrailingBlock(t *testing.T) {
	drafts, err := ParseWorkoutLog("#Legs\nSquat\n4 sets x 8 reps\n80kg\n40mins\nLunge\n3 sets x 12 reps")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Squat", drafts[0].WorkoutName)
}

func TestParseWorkoutLogDropsBlockCutByNewCategory(t *testing.T) {
	drafts, err := ParseWorkoutLog("#Legs\nSquat\n4 sets x 8 reps\n#Chest\nBench Press\n3 sets x 10 reps\n50kg\n30mins")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Bench Press", drafts[0].WorkoutName)
	assert.Equal(t, "Chest", drafts[0].Category)
}

func TestParseWorkoutLogCategoryCarriesAcrossBlocks(t *testing.T) {
	raw := "#Legs\nSquat\n4 sets x 8 reps\n80kg\n40mins\nLunge\n3 sets x 12 reps\n20kg\n15mins"
	drafts, err := ParseWorkoutLog(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Legs", drafts[0].Category)
	assert.Equal(t, "Legs", drafts[1].Category)
	assert.Equal(t, "Lunge", drafts[1].WorkoutName)
}

func TestParseWorkoutLogEmptyCategoryName(t *testing.T) {
	drafts, err := ParseWorkoutLog("#\nBench Press\n3 sets x 10 reps\n50kg\n30mins")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "", drafts[0].Category)
}

func TestParseWorkoutLogLinesBeforeFirstCategory(t *testing.T) {
	raw := "Bench Press\n3 sets x 10 reps\n50kg\n30mins\n#Chest\nIncline Press\n2 sets x 12 reps\n20kg\n10mins"
	drafts, err := ParseWorkoutLog(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Uncategorized", drafts[0].Category)
	assert.Equal(t, "Chest", drafts[1].Category)
}

func TestParseWorkoutLogLegacyFormat(t *testing.T) {
	drafts, err := ParseWorkoutLog("#Legs\n-Back Squat\n-5 setsX15 reps\n-30 kg\n-10 min")
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	draft := drafts[0]
	assert.Equal(t, "Back Squat", draft.WorkoutName)
	assert.Equal(t, 5, draft.Sets)
	assert.Equal(t, 15, draft.Reps)
	assert.Equal(t, 30.0, draft.Weight)
	assert.Equal(t, 10.0, draft.Duration)
}

func TestParseWorkoutLogDefaults(t *testing.T) {
	drafts, err := ParseWorkoutLog("#Cardio\nTreadmill\nsteady pace\nno weight\n25mins")
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	draft := drafts[0]
	assert.Equal(t, 1, draft.Sets)
	assert.Equal(t, 1, draft.Reps)
	assert.Equal(t, 0.0, draft.Weight)
	assert.Equal(t, 25.0, draft.Duration)
}

func TestParseWorkoutLogZeroSetsRepsClampToOne(t *testing.T) {
	drafts, err := ParseWorkoutLog("#Chest\nBench Press\n0 sets x 0 reps\n50kg\n30mins")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, 1, drafts[0].Sets)
	assert.Equal(t, 1, drafts[0].Reps)
}

func TestParseWorkoutLogIgnoresBlankLines(t *testing.T) {
	raw := "\n  #Chest  \n\nBench Press\n\n  3 sets x 10 reps \n50kg\n\n30mins\n\n"
	drafts, err := ParseWorkoutLog(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Chest", drafts[0].Category)
	assert.Equal(t, "Bench Press", drafts[0].WorkoutName)
}
