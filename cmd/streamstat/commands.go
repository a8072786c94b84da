package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"streamstat/core"
	"streamstat/logger"
	"streamstat/source"
)

var (
	lowFlag = cli.Int64Flag{
		Name:  "low",
		Usage: "lower bound of the random integer range (inclusive)",
		Value: -1000,
	}
	highFlag = cli.Int64Flag{
		Name:  "high",
		Usage: "upper bound of the random integer range (inclusive)",
		Value: 1000,
	}
	countFlag = cli.Int64Flag{
		Name:  "count",
		Usage: "number of values to observe",
		Value: 20,
	}
	delayFlag = cli.DurationFlag{
		Name:  "delay",
		Usage: "pause between observations",
		Value: 500 * time.Millisecond,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed; 0 seeds from the clock",
		Value: 0,
	}
	reportFlag = cli.Int64Flag{
		Name:  "report-interval",
		Usage: "log progress every N observations",
		Value: 10000,
	}
)

var WatchCommand = cli.Command{
	Action: watchAction,
	Name:   "watch",
	Usage:  "observe random values one at a time and print all statistics after each",
	Flags: []cli.Flag{
		&lowFlag,
		&highFlag,
		&countFlag,
		&delayFlag,
		&seedFlag,
		&logger.LogLevelFlag,
	},
}

var BenchCommand = cli.Command{
	Action: benchAction,
	Name:   "bench",
	Usage:  "drain a large random stream and report throughput",
	Flags: []cli.Flag{
		&lowFlag,
		&highFlag,
		&cli.Int64Flag{
			Name:  "count",
			Usage: "number of values to observe",
			Value: 1000000,
		},
		&seedFlag,
		&reportFlag,
		&logger.LogLevelFlag,
	},
}

func newRandSource(ctx *cli.Context) (*source.RandIntSource, error) {
	low := ctx.Int64("low")
	high := ctx.Int64("high")
	seed := ctx.Int64("seed")
	if seed == 0 {
		return source.NewRandIntSource(low, high)
	}
	return source.NewSeededRandIntSource(low, high, seed)
}

func watchAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "watch")

	src, err := newRandSource(ctx)
	if err != nil {
		return err
	}
	engine := core.NewEngine()
	count := ctx.Int64("count")
	delay := ctx.Duration("delay")

	log.Noticef("observing %d values from [%d, %d]", count, ctx.Int64("low"), ctx.Int64("high"))
	for i := int64(0); i < count; i++ {
		value, ok := src.Next()
		if !ok {
			break
		}
		if err := engine.Observe(value); err != nil {
			return err
		}
		log.Infof("observed %g", value)
		renderSnapshot(engine.Snapshot())
		time.Sleep(delay)
	}
	return nil
}

func benchAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "bench")

	src, err := newRandSource(ctx)
	if err != nil {
		return err
	}
	engine := core.NewEngine()
	count := ctx.Int64("count")
	interval := ctx.Int64("report-interval")
	if interval <= 0 {
		interval = count
	}

	start := time.Now()
	for observed := int64(0); observed < count; observed += interval {
		batch := interval
		if remaining := count - observed; remaining < batch {
			batch = remaining
		}
		if err := engine.DrainN(src, batch); err != nil {
			return err
		}
		log.Infof("observed %d values", engine.Count())
	}
	elapsed := time.Since(start)

	log.Noticef("%d observations in %v (%.0f/s)", engine.Count(), elapsed,
		float64(engine.Count())/elapsed.Seconds())
	renderSnapshot(engine.Snapshot())
	return nil
}

func formatScalar(s *core.Scalar) string {
	if s == nil {
		return "undefined"
	}
	return strconv.FormatFloat(s.Value, 'g', -1, 64)
}

func renderSnapshot(snapshot *core.Snapshot) {
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"Statistic", "Value"})
	tbl.SetBorder(true)

	tbl.Append([]string{"count", strconv.FormatInt(snapshot.Count, 10)})
	tbl.Append([]string{"min", formatScalar(snapshot.Min)})
	tbl.Append([]string{"max", formatScalar(snapshot.Max)})
	tbl.Append([]string{"sum", strconv.FormatFloat(snapshot.Sum, 'g', -1, 64)})
	tbl.Append([]string{"arithmetic mean", formatScalar(snapshot.Mean)})
	tbl.Append([]string{"stddev", formatScalar(snapshot.StdDev)})
	tbl.Append([]string{"geometric mean", formatGeoMean(snapshot)})
	tbl.Append([]string{"harmonic mean", formatScalar(snapshot.HarmonicMean)})
	tbl.Append([]string{"modes", fmt.Sprintf("%v", snapshot.Modes)})
	tbl.Append([]string{"median", formatScalar(snapshot.Median)})

	tbl.Render()
}

func formatGeoMean(snapshot *core.Snapshot) string {
	gm := snapshot.GeometricMean
	if gm == nil {
		return "undefined"
	}
	if gm.IsComplex {
		return fmt.Sprintf("%g", gm.Complex)
	}
	return strconv.FormatFloat(gm.Real, 'g', -1, 64)
}
