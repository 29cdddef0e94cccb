package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/zoobzio/panel"
	"github.com/zoobzio/panel/pkg/redis"
)

var (
	sourceURL  string
	sourceFile string
	redisAddr  string
	redisKey   string
	format     string
	policy     string
	timeout    time.Duration
	retries    int
	verbose    bool

	facade *panel.Facade
	logger *slog.Logger
)

// Execute runs the panel CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "panel",
		Short:        "Render a schema-driven widget panel as text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if verbose {
				hookSignals(logger)
			}

			sel, ok := panel.ParseSelectionPolicy(policy)
			if !ok {
				return fmt.Errorf("unknown selection policy %q", policy)
			}

			codec, err := documentCodec()
			if err != nil {
				return err
			}

			opts := []panel.Option{panel.WithTimeout(timeout)}
			if retries > 1 {
				opts = append(opts, panel.WithBackoff(retries, 200*time.Millisecond))
			}
			facade = panel.New(opts...).
				Codec(codec).
				SelectionPolicy(sel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&sourceURL, "url", panel.DefaultURL, "schema document URL")
	root.PersistentFlags().StringVarP(&sourceFile, "file", "f", "", "read the schema document from a file instead of --url")
	root.PersistentFlags().StringVar(&redisAddr, "redis-addr", "127.0.0.1:6379", "redis address used with --redis-key")
	root.PersistentFlags().StringVar(&redisKey, "redis-key", "", "read the schema document from a redis key instead of --url")
	root.PersistentFlags().StringVar(&format, "format", "", "document format: json or yaml (default from file extension, else json)")
	root.PersistentFlags().StringVar(&policy, "policy", panel.SelectionPassthrough.String(), "out-of-range selection policy: passthrough, clamp or reject")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "fetch timeout")
	root.PersistentFlags().IntVar(&retries, "retries", 1, "fetch attempts")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log panel events")

	root.AddCommand(renderCmd(), shuffleCmd(), selectCmd(), watchCmd())
	return root
}

func documentCodec() (panel.Codec, error) {
	if format != "" {
		return panel.CodecFor(format)
	}
	if sourceFile != "" {
		return panel.CodecForPath(sourceFile), nil
	}
	return panel.JSONCodec{}, nil
}

func redisClient() *goredis.Client {
	return goredis.NewClient(&goredis.Options{Addr: redisAddr})
}

func documentSource() panel.Source {
	switch {
	case redisKey != "":
		return redis.NewSource(redisClient(), redisKey)
	case sourceFile != "":
		return panel.NewFileSource(sourceFile)
	default:
		return panel.NewHTTPSource(sourceURL, nil)
	}
}

// load fetches the document. Failure is logged and leaves an empty panel.
func load(ctx context.Context) {
	if err := facade.Load(ctx, documentSource()); err != nil {
		logger.Warn("schema unavailable, rendering empty panel", "error", err)
	}
}
