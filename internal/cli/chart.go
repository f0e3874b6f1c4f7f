package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	bootrecord "github.com/TexasInstruments/boot-stage-record"
)

// newChartCmd creates the chart command.
func newChartCmd() *cobra.Command {
	var (
		orderName string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "chart <file>",
		Short: "Render an HTML chart of per-checkpoint durations",
		Long: `Decode a stage record dump and render a bar chart of the time spent
between consecutive checkpoints as a standalone HTML page.

Examples:
  bootrec chart sram.bin -o boot.html
  bootrec chart sram.bin --byte-order be -o boot.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := loadStage(args[0], orderName)
			if err != nil {
				return err
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := renderTimingPage(f, stage); err != nil {
				return err
			}
			log.Info().Str("path", outPath).Int("entries", len(stage.Profiles)).Msg("chart written")
			return nil
		},
	}

	cmd.Flags().StringVar(&orderName, "byte-order", "native",
		"byte order of the target that wrote the dump (native, le, be)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "boot.html", "output HTML file")
	return cmd
}

// renderTimingPage writes a single HTML page with the duration chart.
func renderTimingPage(w io.Writer, stage *bootrecord.Stage) error {
	page := components.NewPage()
	page.AddCharts(newDurationChart(stage))
	return page.Render(w)
}

// newDurationChart builds a bar chart of the delta between consecutive
// checkpoints, with the stage start as the baseline for the first entry.
func newDurationChart(stage *bootrecord.Stage) *charts.Bar {
	labels := make([]string, len(stage.Profiles))
	items := make([]opts.BarData, len(stage.Profiles))
	prev := stage.StartTime
	var total uint64
	for i, p := range stage.Profiles {
		labels[i] = p.Name
		items[i] = opts.BarData{Value: p.Time - prev}
		total += p.Time - prev
		prev = p.Time
	}

	title := fmt.Sprintf("Boot stage %#x", stage.StageID)
	subtitle := fmt.Sprintf("%d checkpoints, total %d", len(stage.Profiles), total)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("duration", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}
