package services

import (
	"context"
	"fmt"

	"teacher-substitution/app/models"
	"teacher-substitution/app/services/substitution"

	"go.uber.org/zap"
)

// AbsentLister lists teachers currently marked ABSENT.
type AbsentLister interface {
	ListAbsentTeachers(ctx context.Context) ([]*models.Teacher, error)
}

// DigestLine summarizes cover for one absent teacher.
type DigestLine struct {
	TeacherID      string
	TeacherName    string
	Slots          int
	UncoveredSlots []int
}

// GenerateCoverDigest resolves substitutes for every absent teacher on day and
// logs one line per teacher. A failure for one teacher is logged and skipped.
func GenerateCoverDigest(ctx context.Context, lister AbsentLister, resolver *substitution.Resolver, day string, logger *zap.Logger) ([]DigestLine, error) {
	logger.Info("Starting cover digest...", zap.String("day", day))

	absent, err := lister.ListAbsentTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list absent teachers: %w", err)
	}

	lines := make([]DigestLine, 0, len(absent))
	for _, t := range absent {
		report, err := resolver.Resolve(ctx, t.ID, day)
		if err != nil {
			logger.Error("Cover digest failed for teacher", zap.String("teacher_id", t.ID), zap.Error(err))
			continue
		}

		line := DigestLine{
			TeacherID:      t.ID,
			TeacherName:    report.AbsentTeacherName,
			Slots:          len(report.Schedule),
			UncoveredSlots: []int{},
		}
		for _, slot := range report.Schedule {
			if len(slot.Candidates) == 0 {
				line.UncoveredSlots = append(line.UncoveredSlots, slot.SlotID)
			}
		}
		lines = append(lines, line)

		logger.Info("Cover needed",
			zap.String("teacher_id", line.TeacherID),
			zap.String("teacher", line.TeacherName),
			zap.Int("slots", line.Slots),
			zap.Ints("uncovered_slots", line.UncoveredSlots))
	}

	logger.Info("Cover digest completed", zap.Int("absent_teachers", len(lines)))
	return lines, nil
}
