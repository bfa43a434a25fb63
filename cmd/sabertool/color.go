package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moffa90/go-anima/protocol"
	"github.com/spf13/cobra"
)

var (
	flagColorBank    int
	flagColorChannel string
	flagColorPreview bool
)

var colorCmd = &cobra.Command{
	Use:   "color <r> <g> <b> <w>",
	Short: "Set or preview a blade color",
	Long: "Set the RGBW color of one channel of one profile bank (0-7) and save the\n" +
		"configuration, or with --preview light the blade without storing anything.",
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rgbw [4]byte
		for i, arg := range args {
			v, err := strconv.ParseUint(arg, 10, 8)
			if err != nil {
				return fmt.Errorf("color component %q must be 0-255", arg)
			}
			rgbw[i] = byte(v)
		}

		ctl, err := connect()
		if err != nil {
			return err
		}
		defer ctl.Close()

		if flagColorPreview {
			return ctl.PreviewColor(rgbw[0], rgbw[1], rgbw[2], rgbw[3])
		}

		channel := protocol.ColorChannel(strings.ToLower(flagColorChannel))
		return ctl.SetColor(flagColorBank, channel, rgbw[0], rgbw[1], rgbw[2], rgbw[3])
	},
}

func init() {
	colorCmd.Flags().IntVarP(&flagColorBank, "bank", "b", 0, "profile bank to change (0-7)")
	colorCmd.Flags().StringVarP(&flagColorChannel, "channel", "c", "color", "channel to change: color, clash or swing")
	colorCmd.Flags().BoolVar(&flagColorPreview, "preview", false, "light the blade without saving")
}
