package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/gobounds/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Print the bounding box of a file every time it changes",
		Long: `Follow an STL model, OpenSCAD file or box document and print its bounding
box again after every write. OpenSCAD files are also reloaded when a file
they use or include changes. Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("debounce") {
				debounce = opts.WatchDebounce
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchFile(ctx, cmd.OutOrStdout(), args[0], debounce, opts.Precision)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 250*time.Millisecond, "Wait this long after the last write before reloading (env GOBOUNDS_WATCH_DEBOUNCE)")

	return cmd
}

// watchFile prints the bounds of path now and after every change until ctx
// is done.
func watchFile(ctx context.Context, w io.Writer, path string, debounce time.Duration, precision int) error {
	var (
		mu     sync.Mutex
		closed bool
	)
	report := func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}

		box, err := loadBounds(ctx, path)
		if err != nil {
			log.Printf("reload %s: %v", path, err)
			return
		}
		printBox(w, path, box, precision)
		fmt.Fprintln(w)
	}

	fw, err := watcher.New(debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	files, err := watchedFiles(path)
	if err != nil {
		return err
	}
	if err := fw.Watch(files, func(string) { report() }); err != nil {
		return err
	}

	report()

	err = fw.Run(ctx)

	// wait for a report in flight and keep late ones off w
	mu.Lock()
	closed = true
	mu.Unlock()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
