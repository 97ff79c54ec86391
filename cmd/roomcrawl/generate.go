package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomcrawl/internal/config"
	"github.com/samdwyer/roomcrawl/internal/dice"
	"github.com/samdwyer/roomcrawl/internal/world"
)

var flagNoRooms bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated map",
	Long: `Generate a single map and print it, followed by its rooms in
the order they were accepted.

Examples:
  roomcrawl generate --seed 42
  roomcrawl generate --no-rooms`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagNoRooms, "no-rooms", false, "Print only the map")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings, os.Stderr)
	if err != nil {
		return err
	}

	m, seed, err := generateMap(context.Background(), settings, settings.Seed)
	if err != nil {
		return err
	}
	logger.Debug("generated map", "seed", seed, "rooms", m.RoomCount())

	return writeMap(cmd.OutOrStdout(), m, seed, !flagNoRooms)
}

// generateMap builds one map and reports the seed that produced it.
func generateMap(ctx context.Context, settings config.Settings, seed int64) (*world.Map, int64, error) {
	roller := dice.New(seed)
	gen, err := world.NewGenerator(settings.Generator(), roller)
	if err != nil {
		return nil, 0, err
	}
	return gen.Generate(ctx), roller.Seed(), nil
}

func writeMap(w io.Writer, m *world.Map, seed int64, withRooms bool) error {
	if _, err := fmt.Fprint(w, m.String()); err != nil {
		return err
	}
	if !withRooms {
		return nil
	}
	fmt.Fprintf(w, "\nseed %d, %d rooms\n", seed, m.RoomCount())
	for i, r := range m.Rooms() {
		cx, cy := r.Center()
		fmt.Fprintf(w, "%2d  (%d,%d)-(%d,%d)  %dx%d  center (%d,%d)\n",
			i, r.X1, r.Y1, r.X2, r.Y2, r.Width(), r.Height(), cx, cy)
	}
	return nil
}
