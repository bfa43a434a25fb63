// Command sabertool controls Polaris Anima EVO and NXT saber boards over
// USB-serial: it inspects the saber, uploads sound files, erases the flash
// and adjusts color and sound configuration.
package main

import (
	"log/slog"
	"os"

	"github.com/moffa90/go-anima/saber"
	"github.com/spf13/cobra"
)

var (
	flagPort  string
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "sabertool",
	Short: "Control Polaris Anima EVO/NXT sabers over USB",
	Long: "sabertool talks to OpenCore-based saber boards (Polaris Anima EVO and NXT)\n" +
		"over their USB-serial port. Without --port the first connected saber is used.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagDebug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPort, "port", "p", "", "serial port of the saber (default: first detected)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log the raw protocol exchange")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(eraseCmd)
	rootCmd.AddCommand(effectsCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(sendCmd)
}

// slogAdapter bridges the default slog logger into the controller.
type slogAdapter struct{}

func (slogAdapter) Debug(msg string, keysAndValues ...interface{}) {
	slog.Debug(msg, keysAndValues...)
}

func (slogAdapter) Info(msg string, keysAndValues ...interface{}) {
	slog.Info(msg, keysAndValues...)
}

func (slogAdapter) Error(msg string, keysAndValues ...interface{}) {
	slog.Error(msg, keysAndValues...)
}

// connect opens a session with the saber named by --port, or the first
// discovered one.
func connect(extra ...saber.Option) (*saber.Controller, error) {
	opts := []saber.Option{saber.WithLogger(slogAdapter{})}
	if flagPort != "" {
		opts = append(opts, saber.WithPort(flagPort))
	}
	return saber.Connect(append(opts, extra...)...)
}
