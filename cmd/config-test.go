package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-visor/configs"
)

var ctAsYAML bool

// configTestCmd represents the config test command
var configTestCmd = &cobra.Command{
	Use:   "config-test",
	Short: "Test and display all configuration values",
	Long: `Test configuration loading and display all values to verify proper parsing.

Examples:
  # Test with default config resolution
  sonido-visor config-test

  # Test with a specific config file
  sonido-visor --config /path/to/config.yaml config-test`,
	RunE: runConfigTest,
}

func init() {
	rootCmd.AddCommand(configTestCmd)

	configTestCmd.Flags().BoolVar(&ctAsYAML, "yaml", false,
		"dump the resolved configuration as YAML")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	if ctAsYAML {
		data, err := yaml.Marshal(config)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	fmt.Println("SONIDO VISOR CONFIGURATION TEST")
	fmt.Println(strings.Repeat("=", 60))

	printSection("APPLICATION SETTINGS")
	printKeyValue("Verbose", fmt.Sprintf("%t", config.Verbose))
	printKeyValue("Log Level", config.LogLevel)

	printSection("SPECTRAL ANALYSIS")
	printKeyValue("Sample Rate", fmt.Sprintf("%d Hz", config.Audio.SampleRate))
	printKeyValue("Window Size", fmt.Sprintf("%d samples", config.Audio.WindowSize))
	printKeyValue("Bands", fmt.Sprintf("%d", config.Audio.NumBands))
	printKeyValue("Frequency Range", fmt.Sprintf("%.0f Hz - %.0f Hz", config.Audio.MinFreq, config.Audio.MaxFreq))

	printSection("SMOOTHING")
	printKeyValue("Attack", fmt.Sprintf("%.2f", config.Smoothing.Attack))
	printKeyValue("Decay", fmt.Sprintf("%.2f", config.Smoothing.Decay))

	printSection("DISPLAY")
	printKeyValue("FPS", fmt.Sprintf("%d", config.Visual.FPS))

	printSection("CAPTURE")
	printKeyValue("Source", config.Capture.Source)
	printKeyValue("Buffer", fmt.Sprintf("%d windows", config.Capture.BufferWindows))

	fmt.Println()
	fmt.Println("Configuration is valid.")

	return nil
}

func printSection(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func printKeyValue(key, value string) {
	fmt.Printf("  %-20s %s\n", key, value)
}
