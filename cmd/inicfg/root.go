package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/inifile"
)

var (
	filePath string
	create   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "inicfg",
	Short: "Read and edit INI configuration files",
	Long: `inicfg looks up, sets and deletes values in an INI file while keeping
its comments, section layout and key alignment intact.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", envOr("INICFG_FILE", "config.ini"),
		"configuration file (default from $INICFG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&create, "create", false,
		"create the file if it does not exist")
}

// envOr returns the environment variable key, or def if it is empty or
// unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// openConfig opens the file named by the --file flag.
func openConfig() (*inifile.Config, error) {
	return inifile.Open(filePath, create)
}
