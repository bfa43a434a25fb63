package main

import (
	"fmt"
	"sort"

	"github.com/moffa90/go-anima/raw"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sound files stored on the saber",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := connect()
		if err != nil {
			return err
		}
		defer ctl.Close()

		files, err := ctl.ListFiles()
		if err != nil {
			return err
		}

		names := make([]string, 0, len(files))
		for name := range files {
			names = append(names, name)
		}
		sort.Strings(names)

		var total int64
		for _, name := range names {
			fmt.Printf("%-24s %10s\n", name, raw.HumanSize(files[name]))
			total += files[name]
		}
		fmt.Printf("%d files, %s\n", len(names), raw.HumanSize(total))
		return nil
	},
}
