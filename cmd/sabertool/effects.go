package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/moffa90/go-anima/protocol"
	"github.com/spf13/cobra"
)

var flagEffectsAuto bool

var effectsCmd = &cobra.Command{
	Use:   "effects [effect file...]",
	Short: "Show or assign the sound files behind each effect",
	Long: "Without arguments, show which sound files are assigned to each effect.\n" +
		"With an effect name (on, off, hum, swing, clash, smoothSwingA, smoothSwingB)\n" +
		"and a file list, assign those files to the effect. With --auto, assign all\n" +
		"effects from the standard file naming scheme.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, err := connect()
		if err != nil {
			return err
		}
		defer ctl.Close()

		if flagEffectsAuto {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return ctl.AutoAssignSoundEffects(ctx)
		}

		if len(args) > 0 {
			if len(args) < 2 {
				return errors.New("assigning an effect needs at least one file")
			}
			return ctl.SetSoundsForEffect(protocol.SoundEffect(args[0]), args[1:])
		}

		for _, effect := range protocol.Effects() {
			files, err := ctl.SoundsForEffect(effect)
			if err != nil {
				return err
			}
			fmt.Printf("%-14s %s\n", effect, strings.Join(files, ", "))
		}
		return nil
	},
}

func init() {
	effectsCmd.Flags().BoolVar(&flagEffectsAuto, "auto", false, "assign all effects from the file naming scheme")
}
