package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/moffa90/go-anima/saber"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	flagNoBeep            bool
	flagNoSetEffects      bool
	flagContinueOnMissing bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload RAW sound files to the saber",
	Long: "Upload RAW sound files to the saber flash. Files are sent in name order;\n" +
		"on NXT sabers BEEP.RAW goes last and a bundled default beep is added when\n" +
		"neither the file set nor the saber has one. After the upload the sound\n" +
		"effects are reassigned from the standard file naming scheme.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if flagContinueOnMissing {
			paths = paths[:0:len(paths)]
			for _, path := range args {
				if _, err := os.Stat(path); err != nil {
					slog.Warn("skipping missing file", "file", path)
					continue
				}
				paths = append(paths, path)
			}
			if len(paths) == 0 {
				return errors.New("none of the given files exist")
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ctl, err := connect(saber.WithProgressCallback(uploadBar()))
		if err != nil {
			return err
		}
		defer ctl.Close()

		if err := ctl.UploadFiles(ctx, paths, !flagNoBeep); err != nil {
			return err
		}
		fmt.Println()

		if flagNoSetEffects {
			return nil
		}
		return ctl.AutoAssignSoundEffects(ctx)
	},
}

// uploadBar renders one progress bar per uploaded file.
func uploadBar() saber.ProgressCallback {
	var bar *progressbar.ProgressBar
	var current string
	return func(p saber.Progress) {
		if p.File != current {
			current = p.File
			if bar != nil {
				fmt.Println()
			}
			bar = progressbar.NewOptions64(p.TotalBytes,
				progressbar.OptionSetDescription(fmt.Sprintf("[%d/%d] %s", p.FileIndex+1, p.TotalFiles, p.File)),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowBytes(true),
			)
		}
		_ = bar.Set64(p.BytesSent)
	}
}

func init() {
	uploadCmd.Flags().BoolVar(&flagNoBeep, "no-beep", false, "do not add the bundled BEEP.RAW on NXT sabers")
	uploadCmd.Flags().BoolVar(&flagNoSetEffects, "no-set-effects", false, "do not reassign sound effects after the upload")
	uploadCmd.Flags().BoolVar(&flagContinueOnMissing, "continue-on-missing", false, "skip files that do not exist instead of failing")
}
