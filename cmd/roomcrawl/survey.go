package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/config"
)

var flagRuns int

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Report accepted room counts over many maps",
	Long: `Generate --runs maps with consecutive seeds starting at --seed
(or 1 when no seed is given) and report the minimum, maximum and mean
number of accepted rooms. Seed 0 is skipped because it means a clock seed.

Examples:
  roomcrawl survey
  roomcrawl survey --runs 1000 --seed 100`,
	Args: cobra.NoArgs,
	RunE: runSurvey,
}

func init() {
	surveyCmd.Flags().IntVar(&flagRuns, "runs", 100, "Number of maps to generate")
}

// SurveyResult summarizes room counts over a set of maps.
type SurveyResult struct {
	Runs      int
	FirstSeed int64
	LastSeed  int64
	Min       int
	Max       int
	Mean      float64
}

func runSurvey(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings, os.Stderr)
	if err != nil {
		return err
	}

	res, err := survey(settings, settings.Seed, flagRuns)
	if err != nil {
		return err
	}
	logger.Debug("survey complete", "runs", res.Runs, "mean", res.Mean)

	writeSurvey(cmd.OutOrStdout(), res)
	return nil
}

// survey generates runs maps with seeds first, first+1, ... Seed 0 would
// pick a clock seed, so the walk steps over it.
func survey(settings config.Settings, first int64, runs int) (SurveyResult, error) {
	if runs <= 0 {
		return SurveyResult{}, fmt.Errorf("runs must be positive, got %d", runs)
	}
	if first == 0 {
		first = 1
	}

	res := SurveyResult{Runs: runs, FirstSeed: first}
	total := 0
	seed := first
	for i := 0; i < runs; i++ {
		if seed == 0 {
			seed++
		}
		m, _, err := generateMap(context.Background(), settings, seed)
		if err != nil {
			return SurveyResult{}, err
		}
		res.LastSeed = seed
		seed++
		n := m.RoomCount()
		if i == 0 || n < res.Min {
			res.Min = n
		}
		if n > res.Max {
			res.Max = n
		}
		total += n
	}
	res.Mean = float64(total) / float64(runs)
	return res, nil
}

func writeSurvey(w io.Writer, res SurveyResult) {
	fmt.Fprintf(w, "maps: %d (seeds %d..%d)\n", res.Runs, res.FirstSeed, res.LastSeed)
	fmt.Fprintf(w, "rooms: min %d, max %d, mean %.2f\n", res.Min, res.Max, res.Mean)
}
