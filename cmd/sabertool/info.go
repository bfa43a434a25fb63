package main

import (
	"fmt"

	"github.com/moffa90/go-anima/raw"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show saber firmware, serial number and flash usage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := connect()
		if err != nil {
			return err
		}
		defer ctl.Close()

		info, err := ctl.GetInfo()
		if err != nil {
			return err
		}
		free, err := ctl.FreeSpace()
		if err != nil {
			return err
		}
		used, err := ctl.UsedSpace()
		if err != nil {
			return err
		}
		total, err := ctl.TotalSpace()
		if err != nil {
			return err
		}

		fmt.Printf("Port:     %s\n", ctl.Port())
		fmt.Printf("Firmware: %s\n", info.Version)
		fmt.Printf("Serial:   %s\n", info.SerialNumber)
		fmt.Printf("Flash:    %s used, %s free of %s\n",
			raw.HumanSize(used), raw.HumanSize(free), raw.HumanSize(total))
		return nil
	},
}
