package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/credvia/credvia_backend/cmd/http"
	systemcmd "github.com/credvia/credvia_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "credvia",
	Short: "Credvia therapy credit tracker for clinic benefit plans.",
	Long: `Credvia tracks prepaid therapy credits for clinic patients. Patients register
benefit guides, check in for facial sessions, book therapy sessions against
their balance and share their history with linked psychologists.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
