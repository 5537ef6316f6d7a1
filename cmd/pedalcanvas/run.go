package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/pedal/canvas"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive knob editor window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := a.layout()
			if err != nil {
				return a.fail("load layout", err)
			}
			c := a.cfg.Canvas
			err = canvas.Run(layout, canvas.Config{
				Title:      c.Title,
				Width:      c.Width,
				Height:     c.Height,
				Resolution: a.resolution(),
				Background: c.Background,
				Logger:     a.logger.Named("canvas"),
			})
			if err != nil {
				return a.fail("run canvas", err)
			}
			return nil
		},
	}
}
