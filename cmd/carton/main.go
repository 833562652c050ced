package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "carton",
})

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:          "carton",
		Short:        "Render box-model layout trees to the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDemoCmd(), newRenderCmd(), newLiveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// terminalWidth queries the ambient terminal width once, at the call site,
// so the layout core never touches the environment. Returns 0 when stdout is
// not a terminal; the library falls back to its default.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}
