package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/humanpath/internal/config"
	"github.com/xkilldash9x/humanpath/internal/observability"
	"github.com/xkilldash9x/humanpath/pkg/curves"
	"github.com/xkilldash9x/humanpath/pkg/driver"
	"github.com/xkilldash9x/humanpath/pkg/easing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// trajectoryRecord is the JSON shape emitted for each generated trajectory.
type trajectoryRecord struct {
	ID          string           `json:"id"`
	Origin      curves.Point2D   `json:"origin"`
	Destination curves.Point2D   `json:"destination"`
	Easing      string           `json:"easing"`
	KnotsCount  int              `json:"knots_count"`
	PointCount  int              `json:"point_count"`
	DurationMS  float64          `json:"duration_ms"`
	Points      []curves.Point2D `json:"points"`
}

// newGenerateCmd creates and configures the `generate` command.
func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates one or more trajectories between two coordinates",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their viper keys so CLI flags override config
			// file and environment values with the right precedence.
			for key, flag := range map[string]string{
				"generator.count":         "count",
				"generator.seed":          "seed",
				"generator.easing":        "easing",
				"generator.target_points": "points",
				"generator.speed":         "speed",
				"generator.concurrency":   "concurrency",
			} {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config with flag overrides: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			origin, err := parsePoint(viper.GetString("from"))
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			destination, err := parsePoint(viper.GetString("to"))
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			seed := cfg.Generator.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			logger.Info("generating trajectories",
				zap.Int("count", cfg.Generator.Count),
				zap.Int64("seed", seed),
				zap.Float64("distance", destination.Dist(origin)))

			records, err := generateBatch(ctx, origin, destination, cfg.Generator, seed)
			if err != nil {
				return err
			}
			return writeRecords(cmd, records)
		},
	}

	generateCmd.Flags().String("from", "", "origin coordinate as x,y (required)")
	generateCmd.Flags().String("to", "", "destination coordinate as x,y (required)")
	generateCmd.Flags().Int("count", 1, "number of trajectories to generate")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().String("easing", "", "force a named easing profile instead of a random pick")
	generateCmd.Flags().Int("points", 0, "override the output point count (0 = weighted draw)")
	generateCmd.Flags().Float64("speed", 900, "pacing speed factor in pixels per second")
	generateCmd.Flags().Int("concurrency", 4, "parallel workers for batch generation")
	generateCmd.Flags().StringP("output", "o", "", "write JSON to a file instead of stdout")
	generateCmd.Flags().Bool("pretty", false, "indent the JSON output")

	_ = generateCmd.MarkFlagRequired("from")
	_ = generateCmd.MarkFlagRequired("to")
	_ = viper.BindPFlag("from", generateCmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("to", generateCmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("output", generateCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("pretty", generateCmd.Flags().Lookup("pretty"))

	return generateCmd
}

// generateBatch produces gc.Count trajectories concurrently. Worker i derives
// its source from seed+i, so results are reproducible under --seed regardless
// of scheduling; the derived group context lets workers stop as soon as a
// sibling fails or the caller cancels.
func generateBatch(ctx context.Context, origin, destination curves.Point2D, gc config.GeneratorConfig, seed int64) ([]trajectoryRecord, error) {
	records := make([]trajectoryRecord, gc.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(gc.Concurrency)

	for i := 0; i < gc.Count; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := generateOne(origin, destination, gc, seed+int64(i))
			if err != nil {
				return fmt.Errorf("trajectory %d: %w", i, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// generateOne runs the full pipeline for a single trajectory.
func generateOne(origin, destination curves.Point2D, gc config.GeneratorConfig, seed int64) (trajectoryRecord, error) {
	rng := rand.New(rand.NewSource(seed))

	params := curves.NewParameterGenerator(rng).Generate(origin, destination)
	if gc.Easing != "" {
		// Validate already confirmed the name.
		entry, _ := easing.ByName(gc.Easing)
		params.Easing = entry
	}
	if gc.TargetPoints != 0 {
		params.TargetPointCount = gc.TargetPoints
	}

	points, err := curves.NewBuilder(rng).Build(origin, destination, params)
	if err != nil {
		return trajectoryRecord{}, err
	}

	timed := driver.Schedule(points, gc.Speed)
	return trajectoryRecord{
		ID:          uuid.NewString(),
		Origin:      origin,
		Destination: destination,
		Easing:      params.Easing.Name,
		KnotsCount:  params.KnotsCount,
		PointCount:  len(points),
		DurationMS:  float64(timed[len(timed)-1].Offset) / float64(time.Millisecond),
		Points:      points,
	}, nil
}

func writeRecords(cmd *cobra.Command, records []trajectoryRecord) error {
	var (
		data []byte
		err  error
	)
	if viper.GetBool("pretty") {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("failed to encode trajectories: %w", err)
	}

	if out := viper.GetString("output"); out != "" {
		if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		observability.GetLogger().Info("wrote trajectories", zap.String("path", out), zap.Int("count", len(records)))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// parsePoint parses "x,y" into a Point2D.
func parsePoint(s string) (curves.Point2D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return curves.Point2D{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return curves.Point2D{}, fmt.Errorf("bad x coordinate %q: %w", parts[0], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return curves.Point2D{}, fmt.Errorf("bad y coordinate %q: %w", parts[1], err)
	}
	return curves.Point2D{X: x, Y: y}, nil
}
