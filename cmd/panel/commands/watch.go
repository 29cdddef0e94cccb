package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zoobzio/panel"
	"github.com/zoobzio/panel/pkg/redis"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Print the panel every time its schema document changes",
		Long: `Watch follows a schema document and reprints the panel after every change.
With a file argument the file is watched. With --redis-key the key is watched
through keyspace notifications.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var w panel.Watcher
			switch {
			case len(args) == 1:
				w = panel.NewFileWatcher(args[0])
				facade.Codec(documentCodecFor(args[0]))
			case redisKey != "":
				w = redis.NewWatcher(redisClient(), redisKey)
			default:
				return errors.New("watch needs a file argument or --redis-key")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			c := panel.NewComposer(facade, func(units []panel.RenderUnit) {
				printUnits(cmd.OutOrStdout(), units)
			})
			c.Start()
			defer c.Stop()

			err := facade.Follow(ctx, w)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func documentCodecFor(path string) panel.Codec {
	if format != "" {
		if c, err := panel.CodecFor(format); err == nil {
			return c
		}
	}
	return panel.CodecForPath(path)
}
