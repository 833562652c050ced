package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carton"
)

// demoTree builds a showcase layout exercising borders, titles, padding
// bands, fill gutters, gaps and span constraints.
func demoTree() carton.Node {
	return carton.VBox(
		carton.VBox(
			carton.NewText("carton renders trees of text nodes into fixed-width terminal output."),
		).Border(carton.BorderDouble).Title("carton"),

		carton.HBox(
			carton.VBox(
				carton.NewText("Tasks: 100"),
				carton.NewText("Memory: 4GB"),
				carton.NewText("Uptime: 3d"),
			).Border(carton.BorderSingle).Title("Stats"),
			carton.VBox(
				carton.NewText("Everything in a horizontal box is padded to the height of its "+
					"tallest sibling, and text wraps to the width it is given."),
			).Border(carton.BorderRounded).Title("Notes").WidthSpan(0, 44),
		).Gap(1),

		carton.VBox(
			carton.NewText("Long quotes get a gutter on the left and wrap at the readability "+
				"cap of 70 columns, no matter how wide the terminal is."),
		).PadSides(carton.Sides[carton.Pad]{Left: carton.Some(carton.PadFill("> "))}),
	).Gap(1).Pad(carton.PadN(1))
}

func newDemoCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a showcase layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == 0 {
				width = terminalWidth()
			}
			logger.Debug("rendering demo", "width", width)
			fmt.Println(carton.NewRoot(demoTree(), carton.WithWidth(width)).Render())
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "width ceiling (0 = detect terminal)")
	return cmd
}
