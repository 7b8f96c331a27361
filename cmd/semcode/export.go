package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semcode/builder"
	"github.com/c360studio/semcode/config"
	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/graph"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/storage"
)

func exportCmd(configPath, logLevel *string) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		publish    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build RDF triples from extraction records",
		Long: `Export reads one extraction dump (JSON) or a directory of dumps,
mints triples for every record, and writes them as N-Quads.

With --publish, each built entity is also published to the knowledge
graph over NATS and its snapshot stored for incremental rebuilds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(*logLevel)

			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return runExport(cmd.Context(), cfg, inputPath, outputPath, publish)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Extraction dump file or directory (JSON)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "N-Quads output path (- for stdout)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish built entities to the knowledge graph")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runExport(ctx context.Context, cfg *config.Config, inputPath, outputPath string, publish bool) error {
	inputs, err := collectInputs(inputPath)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no extraction dumps found under %s", inputPath)
	}

	bctx, err := cfg.Context()
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	var (
		app *App
		run *storage.BuildRun
	)
	if publish {
		app = NewApp(cfg)
		if err := app.Start(ctx); err != nil {
			return err
		}
		defer app.Shutdown(ctx)

		run, err = app.Store().StartBuildRun(ctx, cfg.Graph.BaseIRI)
		if err != nil {
			return fmt.Errorf("start build run: %w", err)
		}
	}

	buildErr := buildAll(ctx, bctx, inputs, out, app, run)

	if run != nil {
		if err := app.Store().FinishBuildRun(ctx, run, buildErr); err != nil {
			slog.Warn("Failed to record build run", "id", run.ID, "error", err)
		}
	}

	return buildErr
}

func buildAll(ctx context.Context, bctx *builder.Context, inputs []string, out io.Writer, app *App, run *storage.BuildRun) error {
	for _, path := range inputs {
		file, err := loadExtraction(path)
		if err != nil {
			return err
		}

		entityIRI, triples, err := builder.BuildFile(*file, bctx)
		if err != nil {
			return fmt.Errorf("build %s: %w", path, err)
		}

		if err := rdf.WriteNQuads(out, triples); err != nil {
			return fmt.Errorf("write triples for %s: %w", path, err)
		}

		if run != nil {
			run.FileCount++
			run.TripleCount += len(triples)
		}

		// Scripts without a module have no entity to anchor in the graph.
		if app == nil || entityIRI == "" {
			continue
		}

		if err := graph.PublishEntity(ctx, app.Publisher(), entityIRI, triples); err != nil {
			return err
		}

		snapshot := &storage.EntitySnapshot{
			IRI:        string(entityIRI),
			FilePath:   file.Path,
			BuildRunID: run.ID,
			Triples:    graph.Flatten(triples),
		}
		if err := app.Store().PutEntity(ctx, snapshot); err != nil {
			return err
		}

		slog.Debug("Built entity", "iri", entityIRI, "file", file.Path, "triples", len(triples))
	}

	return nil
}

// collectInputs resolves a file or directory path into the list of
// extraction dumps to build, in deterministic order.
func collectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var inputs []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			inputs = append(inputs, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input dir: %w", err)
	}

	sort.Strings(inputs)
	return inputs, nil
}

func loadExtraction(path string) (*extract.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read extraction dump: %w", err)
	}

	var file extract.File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse extraction dump %s: %w", path, err)
	}

	return &file, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
