package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	bootrecord "github.com/TexasInstruments/boot-stage-record"
)

// newDumpCmd creates the dump command.
func newDumpCmd() *cobra.Command {
	var orderName string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the checkpoint timeline of a stage record dump",
		Long: `Decode a stage record dump and print each checkpoint with its
timestamp and the delta from the previous checkpoint.

Examples:
  # Dump captured from the same host architecture
  bootrec dump sram.bin

  # Dump captured from a big-endian target
  bootrec dump sram.bin --byte-order be`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := loadStage(args[0], orderName)
			if err != nil {
				return err
			}
			return writeTimeline(cmd.OutOrStdout(), stage)
		},
	}

	cmd.Flags().StringVar(&orderName, "byte-order", "native",
		"byte order of the target that wrote the dump (native, le, be)")
	return cmd
}

// writeTimeline renders the decoded stage as an aligned text table.
func writeTimeline(w io.Writer, stage *bootrecord.Stage) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "stage\t%#x\n", stage.StageID)
	fmt.Fprintf(tw, "start\t%d\n", stage.StartTime)
	fmt.Fprintf(tw, "entries\t%d\n", len(stage.Profiles))
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "#\tNAME\tTIME\t+DELTA")

	prev := stage.StartTime
	for i, p := range stage.Profiles {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i, p.Name, p.Time, p.Time-prev)
		prev = p.Time
	}
	return tw.Flush()
}
