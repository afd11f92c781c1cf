package main

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/inifile/profile"
	"zombiezen.com/go/log"
)

var setCmd = &cobra.Command{
	Use:   "set SECTION KEY VALUE",
	Short: "Set a key, creating the section and file as needed",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := profile.WriteString(cmd.Context(), args[0], args[1], args[2], filePath); err != nil {
			return err
		}
		log.Infof(cmd.Context(), "Set [%s] %s in %s", args[0], args[1], filePath)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm SECTION [KEY]",
	Short: "Delete a key, or a whole section when no key is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if len(args) == 1 {
			if err := profile.DeleteSection(ctx, args[0], filePath); err != nil {
				return err
			}
			log.Infof(ctx, "Deleted [%s] from %s", args[0], filePath)
			return nil
		}
		if err := profile.DeleteKey(ctx, args[0], args[1], filePath); err != nil {
			return err
		}
		log.Infof(ctx, "Deleted [%s] %s from %s", args[0], args[1], filePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd, rmCmd)
}
