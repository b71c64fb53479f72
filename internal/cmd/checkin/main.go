// Command checkin generates check-in v2 API responses using the check-in v1 API.
//
// Usage:
//
//	checkin [--only-category CODE ...] [--config FILE] [--probe-services URL] [--verbose]
//
// The v2 response is written to the standard output as a single JSON line. The
// v2 and v1 requests, along with the logs, are written to the standard error.
package main

import (
	"context"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/ooni/checkinv2/config"
	"github.com/ooni/checkinv2/internal/checkinv2"
	"github.com/ooni/checkinv2/internal/logx"
	"github.com/ooni/checkinv2/internal/must"
	"github.com/ooni/checkinv2/internal/probeservices"
	"github.com/ooni/checkinv2/internal/version"
	"github.com/spf13/cobra"
)

// Options contains the options you can set from the CLI.
type Options struct {
	ConfigFile       string
	OnlyCategories   []string
	ProbeServicesURL string
	Verbose          bool
}

func main() {
	os.Exit(mainWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

// mainWithArgs runs the command with the given arguments and returns the exit code.
func mainWithArgs(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		must.Fprintf(stderr, "FATAL: %s\n", err.Error())
		return 1
	}
	return 0
}

// newRootCommand creates the root command.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var options Options
	rootCmd := &cobra.Command{
		Use:           "checkin",
		Short:         "Generates check-in v2 API responses",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("only-category") {
				options.OnlyCategories = nil
			}
			return mainWithOptions(cmd.Context(), &options, stdout, stderr)
		},
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	flags := rootCmd.Flags()

	flags.StringVar(
		&options.ConfigFile,
		"config",
		"",
		"read the configuration from the given JSON file",
	)

	flags.StringArrayVar(
		&options.OnlyCategories,
		"only-category",
		[]string{},
		"only get URLs for a given category (can be specified multiple times)",
	)

	flags.StringVar(
		&options.ProbeServicesURL,
		"probe-services",
		"",
		"URL of the OONI backend instance you want to use",
	)

	flags.BoolVarP(
		&options.Verbose,
		"verbose",
		"v",
		false,
		"increase verbosity level",
	)

	return rootCmd
}

// mainWithOptions is the main function after we have parsed the options. A nil
// options.OnlyCategories means that we should use the configured categories.
func mainWithOptions(ctx context.Context, options *Options, stdout, stderr io.Writer) error {
	// create the logger
	logHandler := logx.NewHandlerWithDefaultSettings()
	logHandler.Writer = stderr
	logger := &log.Logger{Level: log.InfoLevel, Handler: logHandler}
	if options.Verbose {
		logger.Level = log.DebugLevel
	}

	// load the configuration
	cfg := config.New()
	if options.ConfigFile != "" {
		var err error
		if cfg, err = config.ReadConfig(options.ConfigFile); err != nil {
			return err
		}
	}

	// command line flags take precedence over the configuration
	if options.ProbeServicesURL != "" {
		cfg.ProbeServicesURL = options.ProbeServicesURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if options.OnlyCategories != nil {
		cfg.OnlyCategories = options.OnlyCategories
	}
	for _, code := range cfg.OnlyCategories {
		if !config.KnownCategory(code) {
			logger.Warnf("unknown category code: %s", code)
		}
	}

	// create the backend client
	client := probeservices.NewClient(logger)
	client.BaseURL = cfg.ProbeServicesURL
	client.UserAgent = cfg.UserAgent
	defer client.CloseIdleConnections()

	// obtain the check-in v2 API response
	v2response, err := checkinv2.Run(ctx, &checkinv2.Config{
		Backend:        client,
		Logger:         logger,
		OnlyCategories: cfg.OnlyCategories,
		RequestsWriter: stderr,
	})
	if err != nil {
		return err
	}

	// dump the v2 response to stdout
	must.Fprintf(stdout, "%s\n", must.MarshalJSON(v2response))
	return nil
}
