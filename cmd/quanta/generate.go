package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/syssam/quanta/catalog"
	"github.com/syssam/quanta/compiler/gen"
	"github.com/syssam/quanta/compiler/gen/golang"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile a catalog and emit the quantity package",
		Long: `Generate compiles the catalog into a relation graph and emits one Go
file per quantity kind, plus the feature files enabled with --feature.

Without --catalog the built-in SI catalog is generated. YAML catalogs are
selected by a .yaml/.yml extension, SQLite catalogs by .db/.sqlite.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	addGenerateFlags(cmd)
	return cmd
}

// addGenerateFlags registers the generation flags. Each flag falls back
// to the same-named key in quanta.yaml or QUANTA_* environment variables.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog", "", "catalog file, .yaml or .db (default: built-in SI catalog)")
	cmd.Flags().String("out", "units", "output directory")
	cmd.Flags().String("pkg", "", "import path of the generated package (default: derived from --out)")
	cmd.Flags().StringSlice("feature", nil, "features to enable, e.g. serde,interop")
	cmd.Flags().Int("workers", 0, "concurrent emission goroutines (0: one per kind)")
	cmd.Flags().Bool("watch", false, "re-run generation when the catalog file changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var (
		catalogPath = setting(cmd, "catalog")
		out         = setting(cmd, "out")
		pkg         = setting(cmd, "pkg")
		features    = sliceSetting(cmd, "feature")
		workers     = intSetting(cmd, "workers")
		watch, _    = cmd.Flags().GetBool("watch")
	)
	if watch && catalogPath == "" {
		return fmt.Errorf("--watch requires --catalog; the built-in catalog cannot change")
	}

	run := func(ctx context.Context) error {
		cat, err := loadCatalog(ctx, catalogPath)
		if err != nil {
			return err
		}
		return generate(cat, out, pkg, features, workers)
	}
	if err := run(cmd.Context()); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchCatalog(ctx, catalogPath, func() error {
		return run(ctx)
	})
}

// generate compiles the catalog and hands the graph to the Go backend.
func generate(cat *catalog.Catalog, out, pkg string, features []string, workers int) error {
	opts := []gen.Option{
		gen.WithTarget(out),
		gen.WithFeatureNames(features...),
		gen.WithHooks(logHook(log)),
	}
	if pkg != "" {
		opts = append(opts, gen.WithPackage(pkg))
	}
	if workers > 0 {
		opts = append(opts, gen.WithWorkers(workers))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	g, err := gen.NewGraph(cfg, cat)
	if err != nil {
		return err
	}
	return golang.Generate(g)
}

// loadCatalog reads the catalog at path, dispatching on the file
// extension. An empty path selects the built-in SI catalog.
func loadCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.SI(), nil
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return catalog.ReadFile(path)
	case ".db", ".sqlite", ".sqlite3":
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer db.Close()
		return catalog.LoadDB(ctx, db)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .yaml or .db)", ext)
	}
}

// logHook reports generation runs through the CLI logger.
func logHook(log *zap.SugaredLogger) gen.Hook {
	return func(next gen.Generator) gen.Generator {
		return gen.GenerateFunc(func(g *gen.Graph) error {
			start := time.Now()
			log.Infow("generating quantity package",
				"kinds", len(g.Kinds), "target", g.Target)
			if err := next.Generate(g); err != nil {
				return err
			}
			log.Infow("generation finished",
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		})
	}
}
