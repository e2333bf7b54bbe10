package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"teacher-substitution/app/database"
	"teacher-substitution/app/services/substitution"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RunMigrations(e.db, e.logger)
		},
	}
}

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Upsert slots, subjects, teachers and timetables from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			seed, err := database.ParseSeed(f)
			if err != nil {
				return err
			}
			if err := database.RunMigrations(e.db, e.logger); err != nil {
				return err
			}
			if err := database.LoadSeed(cmd.Context(), e.db, seed); err != nil {
				return err
			}

			e.logger.Info("Seed loaded",
				zap.String("file", args[0]),
				zap.Int("teachers", len(seed.Teachers)),
				zap.Int("timetable_entries", len(seed.Timetable)))
			return nil
		},
	}
}

func newResolveCmd(e *env) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "resolve TEACHER_ID",
		Short: "Print the substitute report for an absent teacher as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(day) == "" {
				day = time.Now().In(e.cfg.Location).Weekday().String()
			}

			runID := uuid.NewString()
			logger := e.logger.With(zap.String("run_id", runID))

			report, err := substitution.NewResolver(database.NewStore(e.db), logger).Resolve(cmd.Context(), args[0], day)
			if err != nil {
				return err
			}
			return writeJSON(cmd, report)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day to resolve (default: today)")
	return cmd
}

func newTimetableCmd(e *env) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "timetable TEACHER_ID",
		Short: "Print a teacher's timetable entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := database.NewStore(e.db).TeacherTimetable(cmd.Context(), args[0], substitution.NormalizeDay(day))
			if err != nil {
				return err
			}
			for _, en := range entries {
				state := "busy"
				if en.IsFree {
					state = "free"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %3d  %-12s %-4s %-8s %s\n",
					en.Day, en.SlotID, en.TimeRange, state, en.Room, en.Activity)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "limit to one day")
	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
