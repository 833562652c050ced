package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carton"
)

func newRenderCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render <file.toml>",
		Short: "Render a TOML layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := carton.LoadDocument(args[0])
			if err != nil {
				return err
			}
			if width == 0 {
				width = terminalWidth()
			}
			logger.Debug("rendering document", "path", args[0], "width", width)
			fmt.Println(carton.NewRoot(node, carton.WithWidth(width)).Render())
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "width ceiling (0 = detect terminal)")
	return cmd
}
