package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "voicevot",
	Short: "Voice-driven AI interview bot backend",
	Long: `Voicevot is the backend for a voice-driven interview chat demo. It
proxies transcribed speech to an OpenAI-compatible completion provider
with a fixed interview persona, and exposes a mock speech-to-text
endpoint for the browser client.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".voicevot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
