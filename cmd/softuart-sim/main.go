// cmd/softuart-sim/main.go

// softuart-sim round-trips bytes through the bit-banged transceiver on a
// simulated wire: each byte is framed onto the virtual line, the line is
// rewound, and the recording is decoded back. Useful for inspecting the
// exact cell-by-cell framing without hardware.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-softuart/sim"
	"github.com/jangala-dev/tinygo-softuart/softuart"
)

var (
	trace    bool
	allBytes bool
)

var rootCmd = &cobra.Command{
	Use:   "softuart-sim [byte...]",
	Short: "Round-trip bytes through the software UART on a simulated wire",
	Long: `Round-trip bytes through the software UART on a simulated wire.

Each byte is transmitted onto a virtual line (one recorded logic level per
timer cell), the line is rewound, and the recording is fed back into the
receive path. The tool reports the framed cell sequence and verifies that
the decoded byte matches the original.

Bytes may be given in any Go integer syntax:
  softuart-sim 0xB2 178 0b10110010
  softuart-sim --trace 0x55
  softuart-sim --all`,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&trace, "trace", "t", false, "print the per-cell level trace for each byte")
	rootCmd.Flags().BoolVarP(&allBytes, "all", "a", false, "round-trip all 256 byte values")
}

func run(cmd *cobra.Command, args []string) error {
	var payload []byte
	switch {
	case allBytes:
		for b := 0; b < 256; b++ {
			payload = append(payload, byte(b))
		}
	case len(args) == 0:
		payload = []byte{0xB2}
	default:
		for _, arg := range args {
			v, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", arg, err)
			}
			payload = append(payload, byte(v))
		}
	}

	failed := 0
	for _, b := range payload {
		got, levels, err := roundTrip(b)
		if err != nil {
			return fmt.Errorf("byte %#02x: %w", b, err)
		}
		status := "ok"
		if got != b {
			status = fmt.Sprintf("MISMATCH (decoded %#02x)", got)
			failed++
		}
		if trace || got != b {
			cmd.Printf("%#02x  frame %s  %s\n", b, frameString(levels), status)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d bytes failed the round trip", failed, len(payload))
	}
	cmd.Printf("%d byte(s) round-tripped\n", len(payload))
	return nil
}

// roundTrip frames b onto a fresh line and decodes the recording.
func roundTrip(b byte) (byte, []bool, error) {
	line := sim.NewLine()
	u := softuart.New(line.NewTxPin(), line.NewRxPin(), line.NewTimer())

	if err := u.WriteByte(b); err != nil {
		return 0, nil, err
	}
	levels := line.Levels()
	line.Rewind()
	got, err := u.ReadByte()
	if err != nil {
		return 0, levels, err
	}
	return got, levels, nil
}

// frameString renders one cell per character with the start and stop bits
// set off from the data: "0|01001101|1".
func frameString(levels []bool) string {
	out := make([]byte, 0, len(levels)+2)
	for i, l := range levels {
		if i == 1 || i == len(levels)-1 {
			out = append(out, '|')
		}
		c := byte('0')
		if l {
			c = '1'
		}
		out = append(out, c)
	}
	return string(out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
