package cmd

import (
	"os"
	"time"

	"github.com/AzielCF/wa-cloud-bridge/config"
	"github.com/AzielCF/wa-cloud-bridge/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wa-cloud-bridge",
	Short: "WhatsApp Cloud API completion bridge",
	Long: `Relay service between the WhatsApp Cloud API and a chat completion
backend. Inbound webhook messages are answered with generated replies;
direct completion and send endpoints are exposed for manual use.`,
}

func init() {
	utils.LoadEnv(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	cobra.OnInitialize(initApp)
}

func initApp() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("[APP] invalid configuration: %v", err)
	}
	config.Global = cfg

	if config.Global.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debugf("[APP] settings: %v", config.GetAllSettings())
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
