// Package cli implements the bootrec command line tool, the host-side
// reader for boot stage record dumps.
package cli

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	bootrecord "github.com/TexasInstruments/boot-stage-record"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "bootrec",
	Short: "Inspect boot stage record dumps",
	Long: `bootrec decodes boot stage record regions captured from a target
(for example a raw dump of the shared SRAM window written during boot)
and presents the checkpoint timeline.

The dump is positional: stage header at offset 0, 32-byte entries from
offset 16. Timestamps are shown in the unit the target's time source
used, typically microseconds.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newChartCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// parseByteOrder maps the --byte-order flag to a decoder byte order.
func parseByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "native", "":
		return binary.NativeEndian, nil
	case "le", "little":
		return binary.LittleEndian, nil
	case "be", "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q (want native, le, or be)", name)
	}
}

// loadStage reads and decodes a dump file.
func loadStage(path, orderName string) (*bootrecord.Stage, error) {
	order, err := parseByteOrder(orderName)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stage, err := bootrecord.Decode(buf, order)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	warnNonMonotonic(stage)
	return stage, nil
}

// warnNonMonotonic flags dumps whose timestamps go backwards, which
// usually means the wrong --byte-order or a non-monotonic time source on
// the target. Deltas in the output are meaningless in that case.
func warnNonMonotonic(stage *bootrecord.Stage) {
	prev := stage.StartTime
	for i, p := range stage.Profiles {
		if p.Time < prev {
			log.Warn().
				Int("entry", i).
				Str("name", p.Name).
				Msg("timestamps are not monotonic; check --byte-order and the target time source")
			return
		}
		prev = p.Time
	}
}
