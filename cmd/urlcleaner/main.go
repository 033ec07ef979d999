package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/qdm12/deskutils/internal/clipboard"
	"github.com/qdm12/deskutils/internal/command"
	"github.com/qdm12/deskutils/internal/config"
	"github.com/qdm12/deskutils/internal/models"
	"github.com/qdm12/deskutils/internal/urlclean"
	"github.com/qdm12/deskutils/internal/urlcleaner"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/log"
	"github.com/spf13/cobra"
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
		logger.Error(describeError(err))
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	stdout io.Writer, logger log.LoggerInterface,
	buildInfo models.BuildInformation) (err error) {
	rootCmd := &cobra.Command{
		Use:   "urlcleaner",
		Short: "Remove the query parameters of the URL in the clipboard",
		Long: "urlcleaner reads a URL from the clipboard, removes its query " +
			"string and writes the cleaned URL back to the clipboard.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := readSettings(reader, logger)
			if err != nil {
				return err
			}

			clipboard, err := clipboard.New(settings.Clipboard.Backend,
				settings.Clipboard.Helper, runtime.GOOS)
			if err != nil {
				return fmt.Errorf("creating clipboard: %w", err)
			}

			cleaner := urlcleaner.New(clipboard, stdout)
			_, err = cleaner.Run(cmd.Context())
			return err
		},
	}
	rootCmd.AddCommand(command.NewVersion("urlcleaner", buildInfo))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)

	return rootCmd.ExecuteContext(ctx)
}

func readSettings(reader *reader.Reader, logger log.LoggerInterface) (
	settings config.URLCleaner, err error) {
	err = settings.Read(reader)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
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

// describeError returns a message telling the user what went wrong
// and, where possible, how to fix it.
func describeError(err error) string {
	switch {
	case errors.Is(err, clipboard.ErrEmpty):
		return "clipboard is empty"
	case errors.Is(err, urlclean.ErrNotURL):
		return "clipboard content is not a valid URL: " + err.Error()
	case errors.Is(err, clipboard.ErrSystemUnsupported):
		return err.Error() + ": please install xclip, xsel or wl-clipboard, " +
			"or set CLIPBOARD_BACKEND=exec and CLIPBOARD_HELPER to a supported helper"
	case errors.Is(err, clipboard.ErrHelperNotFound):
		helpers := clipboard.HelperNames()[1:]
		return err.Error() + ": please install one of " +
			strings.Join(helpers, ", ") + " or set CLIPBOARD_BACKEND=system"
	case errors.Is(err, clipboard.ErrHelperFailed):
		return "could not access the clipboard: " + err.Error()
	default:
		return err.Error()
	}
}
