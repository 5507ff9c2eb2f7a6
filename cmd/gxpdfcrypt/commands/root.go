// Package commands implements the gxpdfcrypt CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the application version (set at build time).
	Version = "dev"
	// GitCommit is the git commit hash (set at build time).
	GitCommit = "unknown"
	// BuildDate is the build date (set at build time).
	BuildDate = "unknown"

	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "gxpdfcrypt",
	Short: "gxpdfcrypt - PDF Standard Security Handler command line tool",
	Long: `gxpdfcrypt applies the ISO 32000-1 Standard Security Handler
(RC4-40, RC4-128, and AES-128) to documents.

Examples:
  gxpdfcrypt encrypt secret.txt -p mypassword -o secret.gxpc
  gxpdfcrypt decrypt secret.gxpc -p mypassword -o secret.txt
  gxpdfcrypt validate secret.gxpc -p mypassword`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(validateCmd)
}

func printVerbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}
