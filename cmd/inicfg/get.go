package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zeebo/inifile"
	"github.com/zeebo/inifile/profile"
)

var getDefault string

var getCmd = &cobra.Command{
	Use:   "get SECTION KEY",
	Short: "Print the value of a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("default") {
			fmt.Fprintln(cmd.OutOrStdout(), profile.ReadString(cmd.Context(), args[0], args[1], getDefault, filePath))
			return nil
		}

		cfg, err := openConfig()
		if err != nil {
			return err
		}
		defer cfg.Close()

		v, err := cfg.String(args[0], args[1])
		if errors.Is(err, inifile.ErrNotFound) {
			return fmt.Errorf("[%s] %s: not set", args[0], args[1])
		} else if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var getIntDefault int

var getIntCmd = &cobra.Command{
	Use:   "getint SECTION KEY",
	Short: "Print the leading integer of a key's value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := profile.ReadInt(cmd.Context(), args[0], args[1], getIntDefault, filePath)
		fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(v))
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getDefault, "default", "d", "", "value to print when the key is not set")
	getIntCmd.Flags().IntVarP(&getIntDefault, "default", "d", 0, "value to print when the key is not set")
	rootCmd.AddCommand(getCmd, getIntCmd)
}
