// Package substitution finds substitute teachers for the classes of an absent
// teacher on a given day.
package substitution

import (
	"context"
	"strings"

	"teacher-substitution/app/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Store is the read side the resolver needs. Teacher IDs are matched
// case-insensitively and days are already normalized.
type Store interface {
	// FindTeacher returns nil, nil when no teacher has the given ID.
	FindTeacher(ctx context.Context, id string) (*models.Teacher, error)
	SubjectAssignments(ctx context.Context, teacherID string) ([]models.SubjectAssignment, error)
	// CoverageEntries returns the teacher's non-free entries for the day, ordered by slot.
	CoverageEntries(ctx context.Context, teacherID, day string) ([]models.TimetableEntry, error)
	// CandidateRows returns present teachers without a busy entry in each of
	// the absent teacher's busy slots for the day.
	CandidateRows(ctx context.Context, teacherID, day string) ([]models.CandidateRow, error)
}

// Resolver builds coverage reports. It holds no per-call state and is safe
// for concurrent use.
type Resolver struct {
	store  Store
	logger *zap.Logger
}

func NewResolver(store Store, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, logger: logger.Named("substitution")}
}

// Resolve builds the coverage report for teacherID on day. Unknown teachers,
// teachers who are not absent and absent teachers without classes all yield a
// report, not an error.
func (r *Resolver) Resolve(ctx context.Context, teacherID, day string) (*models.Report, error) {
	teacherID = strings.TrimSpace(teacherID)
	day = NormalizeDay(day)
	if teacherID == "" {
		return nil, invalidInput("teacher id is required")
	}
	if day == "" {
		return nil, invalidInput("day is required")
	}

	teacher, err := r.store.FindTeacher(ctx, teacherID)
	if err != nil {
		return nil, storeFailure("find teacher", err)
	}
	if teacher == nil {
		r.logger.Debug("teacher not found", zap.String("teacher_id", teacherID))
		return notFoundReport(teacherID, day), nil
	}

	assignments, err := r.store.SubjectAssignments(ctx, teacher.ID)
	if err != nil {
		return nil, storeFailure("load subject assignments", err)
	}
	subjects := SummarizeSubjects(assignments)

	if !teacher.StatusIs(models.Absent) {
		return notAbsentReport(teacher, subjects, day), nil
	}

	var (
		entries []models.TimetableEntry
		rows    []models.CandidateRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if entries, err = r.store.CoverageEntries(gctx, teacher.ID, day); err != nil {
			return storeFailure("load coverage entries", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rows, err = r.store.CandidateRows(gctx, teacher.ID, day); err != nil {
			return storeFailure("load candidates", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seeds := buildCoverage(entries)
	schedule := aggregate(seeds, rankCandidates(teacher.ID, seeds, rows))

	r.logger.Info("resolved substitutes",
		zap.String("teacher_id", teacher.ID),
		zap.String("day", day),
		zap.Int("slots", len(schedule)),
		zap.Int("candidate_rows", len(rows)))

	return &models.Report{
		AbsentTeacherName:     teacher.DisplayName(),
		AbsentTeacherSubjects: subjects,
		Day:                   day,
		Schedule:              schedule,
	}, nil
}
