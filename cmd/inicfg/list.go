package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List section names in file order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := openConfig()
		if err != nil {
			return err
		}
		defer cfg.Close()

		for _, name := range cfg.Sections() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys SECTION",
	Short: "List the keys of a section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := openConfig()
		if err != nil {
			return err
		}
		defer cfg.Close()

		for _, key := range cfg.Keys(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd, keysCmd)
}
