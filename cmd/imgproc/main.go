package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/imgproc/internal/imaging"
	"github.com/ironsheep/imgproc/internal/script"
	"github.com/ironsheep/imgproc/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "imgproc",
	Short: "Keyed raster image editor",
	Long: `imgproc holds a session of named images and applies color transforms,
filters, flips and brightness changes to them.

Environment variables:
  IMGPROC_LOG_LEVEL=debug    Enable debug logging (same as --debug)`,
	SilenceUsage: true,
}

var scriptCmd = &cobra.Command{
	Use:   "script <file>",
	Short: "Run the commands in a script file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("could not find file with given filename: %w", err)
		}
		defer f.Close()

		logger := newLogger()
		logger.WithField("script", args[0]).Debug("running script")
		return script.NewRunner(imaging.NewStore(), cmd.OutOrStdout(), logger).Run(f)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read commands interactively from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return script.NewRunner(imaging.NewStore(), cmd.OutOrStdout(), newLogger()).Run(cmd.InOrStdin())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the editing session over MCP on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		logger.WithFields(logrus.Fields{
			"version":    Version,
			"build_time": BuildTime,
			"commit":     GitCommit,
		}).Debug("starting MCP server")

		server.Version = Version
		if err := server.New(logger).Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "imgproc %s\n", Version)
		fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(scriptCmd, replCmd, serveCmd, versionCmd)
}

// newLogger logs to stderr; stdout carries session output or the protocol.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debug || strings.EqualFold(os.Getenv("IMGPROC_LOG_LEVEL"), "debug") {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.WarnLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
