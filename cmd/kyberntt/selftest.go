package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Rohith04MVK/kyberntt/internal/logger"
	"github.com/Rohith04MVK/kyberntt/internal/selfcheck"
)

func selfcheckFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "seed",
			Value:   selfcheck.DefaultSeed,
			Usage:   "Seed `STRING` the sample polynomials are expanded from",
			EnvVars: []string{"KYBERNTT_SEED"},
		},
		&cli.IntFlag{
			Name:    "rounds",
			Value:   selfcheck.DefaultRounds,
			Usage:   "Number of polynomial pairs to check",
			EnvVars: []string{"KYBERNTT_ROUNDS"},
		},
	}
}

func selfcheckConfig(c *cli.Context) selfcheck.Config {
	return selfcheck.Config{
		Seed:   []byte(c.String("seed")),
		Rounds: c.Int("rounds"),
	}
}

func selftestCommand() *cli.Command {
	return &cli.Command{
		Name:      "selftest",
		Usage:     "Check round trip, linearity, homomorphism and magnitude bounds",
		ArgsUsage: " ",
		Flags:     selfcheckFlags(),
		Action: func(c *cli.Context) error {
			log := logger.CreateFromContext(c)
			report, err := selfcheck.Run(selfcheckConfig(c), log)
			if err != nil {
				return cliErr(err)
			}
			for _, p := range selfcheck.Properties {
				fmt.Fprintf(c.App.Writer, "%-16s %d/%d\n", p, report.Passed[p], report.Rounds)
			}
			return nil
		},
	}
}

func boundsCommand() *cli.Command {
	flags := append(selfcheckFlags(), &cli.StringFlag{
		Name:     "html",
		Usage:    "Write the chart to `FILE`",
		Required: true,
	})
	return &cli.Command{
		Name:      "bounds",
		Usage:     "Chart the largest coefficient each stage produced against its bound",
		ArgsUsage: " ",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			log := logger.CreateFromContext(c)
			report, err := selfcheck.Run(selfcheckConfig(c), log)
			if err != nil {
				return cliErr(err)
			}

			path := c.String("html")
			f, err := os.Create(path)
			if err != nil {
				return cliErr(errors.Wrap(err, "creating chart file"))
			}
			defer f.Close()

			page := components.NewPage().SetPageTitle("Kyber NTT magnitudes")
			page.AddCharts(boundsChart(report))
			if err := page.Render(f); err != nil {
				return cliErr(errors.Wrap(err, "rendering chart"))
			}
			log.Info().Str("path", path).Msg("Wrote bounds chart")
			return nil
		},
	}
}

func boundsChart(report selfcheck.Report) *charts.Bar {
	stages := make([]string, len(selfcheck.Stages))
	observed := make([]opts.BarData, len(selfcheck.Stages))
	bounds := make([]opts.BarData, len(selfcheck.Stages))
	for i, s := range selfcheck.Stages {
		stages[i] = string(s)
		observed[i] = opts.BarData{Value: report.Max[s]}
		bounds[i] = opts.BarData{Value: s.Bound()}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Largest |coefficient| per stage",
			Subtitle: fmt.Sprintf("rounds=%d", report.Rounds),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(stages).
		AddSeries("observed", observed).
		AddSeries("bound", bounds).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}
