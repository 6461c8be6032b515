package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"fundihub/config"
	"fundihub/models"
)

// ErrInvalidInput marks caller errors on worker management operations.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

// SetTimetable validates and replaces the worker's weekly timetable. Ranges
// within a day are normalized: sorted by start, start < end, no overlaps, at
// most one entry per weekday.
func (s *DefaultWorkerService) SetTimetable(ctx context.Context, workerID string, req TimetableRequest) (*models.Worker, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := normalizeTimetable(req.Timetable); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = config.AppConfig.DefaultSlotMinutes
	}

	if err := s.Repo.UpdateTimetable(ctx, workerID, req.Timetable, slotMinutes); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, workerID)
}

func normalizeTimetable(timetable []models.DaySchedule) error {
	seen := make(map[int]bool)
	for di := range timetable {
		ds := &timetable[di]
		if seen[int(ds.Day)] {
			return fmt.Errorf("duplicate timetable entry for weekday %s", ds.Day)
		}
		seen[int(ds.Day)] = true

		sort.Slice(ds.Ranges, func(i, j int) bool { return ds.Ranges[i].Start < ds.Ranges[j].Start })
		for i, r := range ds.Ranges {
			if r.Start >= r.End {
				return fmt.Errorf("range %d on %s: start must be before end", i, ds.Day)
			}
			if i > 0 && r.Start < ds.Ranges[i-1].End {
				return fmt.Errorf("overlapping ranges on %s", ds.Day)
			}
		}
	}
	return nil
}
