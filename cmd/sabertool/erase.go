package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/moffa90/go-anima/saber"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var flagEraseYes bool

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Erase ALL files on the saber",
	Long: "Erase every sound file on the saber flash. This cannot be undone; the\n" +
		"saber is unusable until sound files are uploaded again.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagEraseYes {
			fmt.Print("This erases ALL files on the saber. Continue? [y/N] ")
			answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				return errors.New("erase aborted")
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		bar := progressbar.NewOptions(100,
			progressbar.OptionSetDescription("Erasing"),
			progressbar.OptionSetWidth(40),
		)
		ctl, err := connect(saber.WithProgressCallback(func(p saber.Progress) {
			_ = bar.Set(int(p.Percentage))
		}))
		if err != nil {
			return err
		}
		defer ctl.Close()

		if err := ctl.EraseAll(ctx); err != nil {
			return err
		}
		fmt.Println("\nSaber flash erased.")
		return nil
	},
}

func init() {
	eraseCmd.Flags().BoolVarP(&flagEraseYes, "yes", "y", false, "skip the confirmation prompt")
}
