// Command sketchbuild builds declarative part scripts into boundary and
// solid summaries, with optional profile previews and a watch mode that
// rebuilds on save.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gocad/sketch"
	"github.com/gocad/sketch/internal/config"
	"github.com/gocad/sketch/internal/planar"
	"github.com/gocad/sketch/internal/preview"
	"github.com/gocad/sketch/internal/script"
)

var (
	flagParams  string
	flagVerbose bool

	flagOutput      string
	flagPreview     string
	flagPreviewSize int
)

func main() {
	root := &cobra.Command{
		Use:           "sketchbuild",
		Short:         "Build part scripts into profile boundaries and solids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagParams, "params", "", "project params.yaml (default: params.yaml next to the script)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log to stderr")

	buildCmd := &cobra.Command{
		Use:   "build <script.yaml>",
		Short: "Build a part script and write its JSON summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0])
		},
	}
	buildCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "summary output file (default: stdout)")
	buildCmd.Flags().StringVar(&flagPreview, "preview", "", "write a PNG preview of the profile")
	buildCmd.Flags().IntVar(&flagPreviewSize, "preview-size", 512, "preview image size in pixels")

	dumpCmd := &cobra.Command{
		Use:   "dump <script.yaml>",
		Short: "Build a part script and print its JSON summary to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := build(args[0])
			if err != nil {
				return err
			}
			return res.WriteJSON(os.Stdout)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch <script.yaml>",
		Short: "Rebuild the script whenever it or its params change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0])
		},
	}

	root.AddCommand(buildCmd, dumpCmd, watchCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sketchbuild:", err)
		os.Exit(1)
	}
}

func logger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// build loads and runs one script with its surrounding configuration.
func build(scriptPath string) (*script.Result, error) {
	sketch.SetLogger(logger())

	paramsPath := flagParams
	if paramsPath == "" {
		paramsPath = filepath.Join(filepath.Dir(scriptPath), "params.yaml")
	}
	project, err := config.LoadParams(paramsPath)
	if err != nil {
		return nil, err
	}

	sc, err := script.Load(scriptPath)
	if err != nil {
		return nil, err
	}
	return sc.Run(planar.New(), project)
}

func runBuild(scriptPath string) error {
	res, err := build(scriptPath)
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := res.WriteJSON(out); err != nil {
		return err
	}

	if flagPreview != "" {
		if err := preview.WritePNG(flagPreview, res.Section.Profile(), flagPreviewSize); err != nil {
			return err
		}
	}
	return nil
}

// debounce coalesces the burst of events editors emit on save.
const debounce = 200 * time.Millisecond

func runWatch(scriptPath string) error {
	log := logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(scriptPath)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rebuild := func() {
		start := time.Now()
		res, err := build(scriptPath)
		if err != nil {
			log.Error("build failed", "script", scriptPath, "error", err)
			return
		}
		log.Info("build ok",
			"script", scriptPath,
			"area", res.Summary.Area,
			"volume", res.Summary.Volume,
			"elapsed", time.Since(start))
	}
	rebuild()

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(ev.Name) != ".yaml" && filepath.Ext(ev.Name) != ".yml" {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		}
	}
}
