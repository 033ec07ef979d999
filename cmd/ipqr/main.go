package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/qdm12/deskutils/internal/command"
	"github.com/qdm12/deskutils/internal/config"
	"github.com/qdm12/deskutils/internal/ipqr"
	"github.com/qdm12/deskutils/internal/localip"
	"github.com/qdm12/deskutils/internal/models"
	"github.com/qdm12/deskutils/internal/noop"
	"github.com/qdm12/deskutils/internal/resolver"
	"github.com/qdm12/deskutils/internal/viewer"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	err := _main(ctx, reader, os.Args[1:], os.Stdout, logger, buildInfo)
	stop()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	stdout io.Writer, logger log.LoggerInterface,
	buildInfo models.BuildInformation) (err error) {
	rootCmd := &cobra.Command{
		Use:   "ipqr",
		Short: "Generate a QR code image of the local IP address",
		Long: "ipqr finds the IP address of this machine on the local network, " +
			"encodes it with an optional prefix and suffix in a QR code and " +
			"saves it as a PNG image with a caption.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := readSettings(reader, cmd.Flags(), logger)
			if err != nil {
				return err
			}
			return run(cmd.Context(), settings, stdout, logger)
		},
	}
	setFlags(rootCmd.Flags())
	rootCmd.AddCommand(command.NewVersion("ipqr", buildInfo))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)

	return rootCmd.ExecuteContext(ctx)
}

const (
	flagPrefix   = "prefix"
	flagSuffix   = "suffix"
	flagOutput   = "output"
	flagTerminal = "terminal"
	flagNoView   = "no-view"
)

func setFlags(flags *pflag.FlagSet) {
	flags.String(flagPrefix, "", `Prefix to add before the IP address (e.g. "http://")`)
	flags.String(flagSuffix, "", `Suffix to add after the IP address (e.g. ":8080")`)
	flags.String(flagOutput, "ip_qrcode.png", "Output PNG file path")
	flags.Bool(flagTerminal, false, "Also print the QR code in the terminal")
	flags.Bool(flagNoView, false, "Do not open the image once saved")
}

func readSettings(reader *reader.Reader, flags *pflag.FlagSet,
	logger log.LoggerInterface) (settings config.IPQR, err error) {
	err = settings.Read(reader)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	err = overrideWithFlags(&settings, flags)
	if err != nil {
		return settings, fmt.Errorf("reading flags: %w", err)
	}

	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return settings, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(settings.Logger.ToOptions()...)
	logger.Debug(settings.String())

	return settings, nil
}

// overrideWithFlags sets the settings fields for which the corresponding
// flag was set explicitly, so they take precedence over the environment.
func overrideWithFlags(settings *config.IPQR, flags *pflag.FlagSet) (err error) {
	if flags.Changed(flagPrefix) {
		prefix, err := flags.GetString(flagPrefix)
		if err != nil {
			return err
		}
		settings.Payload.Prefix = &prefix
	}

	if flags.Changed(flagSuffix) {
		suffix, err := flags.GetString(flagSuffix)
		if err != nil {
			return err
		}
		settings.Payload.Suffix = &suffix
	}

	if flags.Changed(flagOutput) {
		settings.Image.Output, err = flags.GetString(flagOutput)
		if err != nil {
			return err
		}
	}

	if flags.Changed(flagTerminal) {
		terminal, err := flags.GetBool(flagTerminal)
		if err != nil {
			return err
		}
		settings.Image.Terminal = &terminal
	}

	if flags.Changed(flagNoView) {
		noView, err := flags.GetBool(flagNoView)
		if err != nil {
			return err
		}
		enabled := !noView
		settings.Viewer.Enabled = &enabled
	}

	return nil
}

func run(ctx context.Context, settings config.IPQR, stdout io.Writer,
	logger log.LoggerInterface) (err error) {
	resolver, err := resolver.New(settings.Resolver)
	if err != nil {
		return fmt.Errorf("creating resolver: %w", err)
	}

	fetcher := localip.New(settings.Probe.Address, &net.Dialer{}, resolver,
		logger.New(log.SetComponent("local address")))

	var opener ipqr.Opener = noop.New("image viewer")
	if *settings.Viewer.Enabled {
		opener = viewer.New(runtime.GOOS)
	}
	logger.Debug("image viewer: " + fmt.Sprint(opener))

	generatorSettings := ipqr.Settings{
		Prefix:   *settings.Payload.Prefix,
		Suffix:   *settings.Payload.Suffix,
		Output:   settings.Image.Output,
		Scale:    int(settings.Image.Scale),
		FontPath: settings.Image.FontPath,
		FontSize: float64(settings.Image.FontSize),
		Terminal: *settings.Image.Terminal,
	}
	generator := ipqr.New(generatorSettings, fetcher, opener, stdout, logger)
	return generator.Run(ctx)
}
