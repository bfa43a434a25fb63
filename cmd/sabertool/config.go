package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the saber's config.ini",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := connect()
		if err != nil {
			return err
		}
		defer ctl.Close()

		config, err := ctl.ReadConfig()
		if err != nil {
			return err
		}
		fmt.Println(config)
		return nil
	},
}
