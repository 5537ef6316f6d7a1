package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/pedal"
)

// replayResult is the machine-readable output of the replay command.
type replayResult struct {
	Redraws  int           `json:"redraws"`
	Selected string        `json:"selected,omitempty"`
	Knobs    []*pedal.Knob `json:"knobs"`
}

func newReplayCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Replay a recorded pointer script against a layout and print the knobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return a.fail("read script", err)
			}
			script, err := pedal.LoadScript(data)
			if err != nil {
				return a.fail("load script", err)
			}
			layout, err := a.layout()
			if err != nil {
				return a.fail("load layout", err)
			}

			session := pedal.NewSession()
			session.SetLogger(a.logger.Named("session"))
			redraws, err := script.Run(session, layout, a.resolution())
			if err != nil {
				return a.fail("replay", err)
			}
			a.logger.Info("replay finished",
				zap.String("script", args[0]),
				zap.Int("steps", script.Len()),
				zap.Int("redraws", redraws))

			res := replayResult{Redraws: redraws, Selected: session.SelectedID(), Knobs: layout.Knobs}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeTable(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, res replayResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPOS X\tPOS Y\tROTATION\tSELECTED")
	for _, k := range res.Knobs {
		sel := ""
		if k.ID == res.Selected {
			sel = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t%s\n", k.ID, k.Name, k.PosX, k.PosY, k.Rotation, sel)
	}
	fmt.Fprintf(tw, "\nredraws: %d\n", res.Redraws)
	return tw.Flush()
}
