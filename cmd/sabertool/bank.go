package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank <n>",
	Short: "Select the active color profile bank (0-7)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bank %q must be a number 0-7", args[0])
		}

		ctl, err := connect()
		if err != nil {
			return err
		}
		defer ctl.Close()

		return ctl.SetActiveBank(bank)
	},
}
