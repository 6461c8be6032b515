package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundihub/models"
)

func TestNormalizeTimetableSortsRanges(t *testing.T) {
	tt := []models.DaySchedule{
		{Day: 1, Ranges: []models.TimeRange{
			{Start: 840, End: 1020},
			{Start: 540, End: 720},
		}},
	}
	require.NoError(t, normalizeTimetable(tt))
	assert.Equal(t, 540, tt[0].Ranges[0].Start)
	assert.Equal(t, 840, tt[0].Ranges[1].Start)
}

func TestNormalizeTimetableRejectsInvertedRange(t *testing.T) {
	tt := []models.DaySchedule{
		{Day: 2, Ranges: []models.TimeRange{{Start: 720, End: 720}}},
	}
	assert.Error(t, normalizeTimetable(tt))
}

func TestNormalizeTimetableRejectsOverlap(t *testing.T) {
	tt := []models.DaySchedule{
		{Day: 3, Ranges: []models.TimeRange{
			{Start: 540, End: 720},
			{Start: 660, End: 840},
		}},
	}
	assert.Error(t, normalizeTimetable(tt))

	// Touching ranges are fine.
	tt = []models.DaySchedule{
		{Day: 3, Ranges: []models.TimeRange{
			{Start: 540, End: 720},
			{Start: 720, End: 840},
		}},
	}
	assert.NoError(t, normalizeTimetable(tt))
}

func TestNormalizeTimetableRejectsDuplicateDay(t *testing.T) {
	tt := []models.DaySchedule{
		{Day: 1, Ranges: []models.TimeRange{{Start: 540, End: 720}}},
		{Day: 1, Ranges: []models.TimeRange{{Start: 840, End: 1020}}},
	}
	assert.Error(t, normalizeTimetable(tt))
}
