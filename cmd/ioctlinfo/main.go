package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type cmdGlobal struct {
	flagDebug  bool
	flagFormat string

	logger *logrus.Logger
	out    io.Writer
}

func getLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	logger.Level = logrus.InfoLevel
	if debug {
		logger.Level = logrus.DebugLevel
	}
	return logger
}

func (c *cmdGlobal) command() *cobra.Command {
	app := &cobra.Command{
		Use:   "ioctlinfo",
		Short: "Decode NT control codes and encode driver request buffers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.flagFormat != "yaml" && c.flagFormat != "text" {
				return fmt.Errorf("Unknown format %q", c.flagFormat)
			}
			c.logger = getLogger(c.flagDebug)
			if c.out == nil {
				c.out = cmd.OutOrStdout()
			}
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	app.PersistentFlags().BoolVar(&c.flagDebug, "debug", false, "Enable debug output")
	app.PersistentFlags().StringVar(&c.flagFormat, "format", "text", "Output format (yaml or text)"+"``")

	decodeCmd := cmdDecode{global: c}
	app.AddCommand(decodeCmd.command())

	tableCmd := cmdTable{global: c}
	app.AddCommand(tableCmd.command())

	encodeCmd := cmdEncode{global: c}
	app.AddCommand(encodeCmd.command())

	return app
}

func main() {
	globalCmd := cmdGlobal{}

	err := globalCmd.command().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
