package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/golangee/astgen/schema"
	"github.com/golangee/astgen/token"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	outDir        string
	format        string
	schemaVersion string
	emitSource    bool
	watchFiles    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Extract the type schema of every given definition file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for schema artifacts")
	generateCmd.Flags().StringVarP(&format, "format", "f", "json", "artifact format: json or yaml")
	generateCmd.Flags().StringVar(&schemaVersion, "schema-version", schema.FormatVersion, "format version stamped into the artifact")
	generateCmd.Flags().BoolVar(&emitSource, "emit-source", false, "print the regenerated source instead of writing a schema")
	generateCmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "keep running and regenerate on file changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if !schema.ValidFormatVersion(schemaVersion) {
		return fmt.Errorf("invalid schema version %q, expected a semantic version like v1", schemaVersion)
	}

	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format %q", format)
	}

	if watchFiles {
		return watchAndGenerate(args)
	}

	failed := 0

	for _, path := range args {
		if err := generateFile(path); err != nil {
			explain(path, err)

			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}

	return nil
}

// generateFile runs the load, expand and build lifecycle over a single file
// and writes the schema artifact. A fresh Module is created per run, the
// lifecycle is not reusable.
func generateFile(path string) error {
	mod := schema.NewModule(path)

	if err := mod.Load(); err != nil {
		return err
	}

	if err := mod.Expand(); err != nil {
		return err
	}

	logger.Debug().Str("file", path).Strs("decls", mod.DeclNames()).Msg("module expanded")

	if emitSource {
		return mod.WriteSource(os.Stdout)
	}

	s, err := mod.Build()
	if err != nil {
		return err
	}

	s.Version = schemaVersion

	buf, err := encode(s)
	if err != nil {
		return err
	}

	target := filepath.Join(outDir, mod.Name()+"."+format)
	if err := os.WriteFile(target, buf, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", target, err)
	}

	logger.Info().
		Str("file", path).
		Str("schema", target).
		Int("types", len(s.Definitions.Types)).
		Msg("schema written")

	return nil
}

func encode(s *schema.Schema) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(s)
	}

	return json.MarshalIndent(s, "", "  ")
}

// watchAndGenerate regenerates each file on every save until interrupted.
// The parent directories are watched instead of the files themselves, which
// survives editors doing atomic saves.
func watchAndGenerate(files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer watcher.Close()

	watched := map[string]bool{}

	for _, path := range files {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}

		watched[abs] = true

		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}

	for _, path := range files {
		if err := generateFile(path); err != nil {
			explain(path, err)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Info().Int("files", len(files)).Msg("watching for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug().Str("file", abs).Msg("change detected")

			if err := generateFile(abs); err != nil {
				explain(abs, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Error().Err(err).Msg("watcher error")
		case <-stop:
			logger.Info().Msg("shutting down")

			return nil
		}
	}
}

// explain prints a failure for one file. Positional errors render with source
// context, everything else is logged plainly.
func explain(path string, err error) {
	var perr *token.PosError

	if errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, perr.Explain())
		return
	}

	logger.Error().Err(err).Str("file", path).Msg("schema extraction failed")
}
