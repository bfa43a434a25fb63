package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <command>",
	Short: "Send a raw protocol command and print the response",
	Long: "Send a raw command line to the saber and print every response line until\n" +
		"the saber goes quiet. For protocol exploration; no response checking is done.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := connect()
		if err != nil {
			return err
		}
		defer ctl.Close()

		if err := ctl.SendCommand([]byte(args[0])); err != nil {
			return err
		}
		for {
			line, err := ctl.ReadLine()
			if err != nil {
				return err
			}
			if len(line) == 0 {
				return nil
			}
			fmt.Print(string(line))
		}
	},
}
