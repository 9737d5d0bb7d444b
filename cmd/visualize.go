package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-visor/internal/app"
)

var (
	vizSource string
	vizFPS    int
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize [source]",
	Short: "Run the live radial spectrum visualizer",
	Long: `Run the live visualizer in the terminal until 'q', Escape or Ctrl-C.

The source is a WAV file path or "synth" for the built-in signal generator.

Examples:
  # Built-in generator
  sonido-visor visualize

  # Play a WAV file
  sonido-visor visualize ~/Music/track.wav

  # Cap the refresh rate
  sonido-visor visualize --fps 24 track.wav`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)

	visualizeCmd.Flags().StringVarP(&vizSource, "source", "s", "",
		"sample source (WAV path or \"synth\")")
	visualizeCmd.Flags().IntVar(&vizFPS, "fps", 0,
		"target frames per second (overrides config)")
}

func runVisualize(cmd *cobra.Command, args []string) error {
	source := vizSource
	if len(args) > 0 {
		source = args[0]
	}

	appCtx := &app.Context{
		ConfigFile: configFile,
		Source:     source,
		FPS:        vizFPS,
		Verbose:    verbose,
		Quiet:      quiet,
		LogLevel:   logLevel,
	}

	visualizerApp, err := app.NewVisualizerApp(appCtx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return visualizerApp.Run(ctx)
}
