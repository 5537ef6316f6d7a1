package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phanxgames/pedal"
)

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Validate the layout and print each knob's hit regions",
		Long: "Validate the layout and print each knob's drag and rotate regions in\n" +
			"logical units and in device pixels at the configured resolution.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := a.layout()
			if err != nil {
				return a.fail("load layout", err)
			}
			res := a.resolution()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "panel %s  resolution %gx\n\n", formatRect(layout.Panel()), float64(res))
			fmt.Fprintln(tw, "ID\tREGION\tLOGICAL\tDEVICE")
			for _, s := range layout.Shapes("") {
				fmt.Fprintf(tw, "%s\tdrag\t%s\t%s\n", s.Knob.ID, formatRect(s.DragElement), formatRect(s.DragElement.Scale(float64(res))))
				fmt.Fprintf(tw, "%s\trotate\t%s\t%s\n", s.Knob.ID, formatRect(s.RotateElement), formatRect(s.RotateElement.Scale(float64(res))))
			}
			return tw.Flush()
		},
	}
}

func formatRect(r pedal.Rect) string {
	return fmt.Sprintf("[%.1f,%.1f %.1fx%.1f]", r.X, r.Y, r.Width, r.Height)
}
