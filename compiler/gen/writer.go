package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// TemplateWriter renders the template-based support files with parallel
// execution and optimized formatting (using the imports library instead
// of a goimports subprocess).
type TemplateWriter struct {
	graph   *Graph
	outDir  string
	workers int

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewTemplateWriter creates a new template-based writer.
func NewTemplateWriter(g *Graph, outDir string) *TemplateWriter {
	return &TemplateWriter{
		graph:   g,
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *TemplateWriter) WithWorkers(n int) *TemplateWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the generation metrics.
func (w *TemplateWriter) Metrics() *WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := *w.metrics
	return &m
}

// GenerateAll renders the built-in graph templates and any custom
// templates from the configuration in parallel.
func (w *TemplateWriter) GenerateAll(ctx context.Context) error {
	// Ensure output directory exists
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return NewGenerationError("support", w.outDir, "create output directory", err)
	}

	initTemplates()

	// Collect all files to generate
	var files []fileTask

	// Built-in graph-level templates
	for _, tmpl := range graphTemplates {
		if tmpl.Skip != nil && tmpl.Skip(w.graph) {
			continue
		}
		files = append(files, fileTask{
			name:     tmpl.Format,
			template: tmpl.Name,
			tmpl:     templates,
			data:     w.graph,
		})
	}

	// Custom templates from the configuration
	for _, tmpl := range w.graph.Config.Templates {
		name := tmpl.Name()
		files = append(files, fileTask{
			name:     goFileName(name),
			template: name,
			tmpl:     tmpl,
			data:     w.graph,
		})
	}

	// Generate files in parallel
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	for _, f := range files {
		f := f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.generateFile(f)
			}
		})
	}

	return eg.Wait()
}

// fileTask represents a single file generation task.
type fileTask struct {
	name     string    // output file path (relative to outDir)
	template string    // template name to execute
	tmpl     *Template // template set holding it
	data     any       // data to pass to the template
}

// goFileName ensures a custom template renders into a Go file.
func goFileName(name string) string {
	if strings.HasSuffix(name, ".go") {
		return name
	}
	return name + ".go"
}

// generateFile generates a single file.
func (w *TemplateWriter) generateFile(f fileTask) error {
	// 1. Execute template
	var buf bytes.Buffer
	if err := f.tmpl.ExecuteTemplate(&buf, f.template, f.data); err != nil {
		return NewGenerationError("support", f.name, fmt.Sprintf("execute template %q", f.template), err)
	}

	// 2. Format using goimports (removes unused imports and adds missing ones)
	fullPath := filepath.Join(w.outDir, f.name)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Write unformatted file for debugging (errors intentionally ignored as we're already in error state)
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return NewGenerationError("support", f.name, fmt.Sprintf("format output (unformatted written to %s)", debugPath), err)
	}

	// 3. Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return NewGenerationError("support", f.name, "create directory", err)
	}

	// 4. Write file
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return NewGenerationError("support", f.name, "write file", err)
	}

	// Update metrics
	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(formatted))
	w.mu.Unlock()

	return nil
}

// GenerateSupport is the convenience function rendering the support files
// (doc.go and custom templates) into the configured target.
func GenerateSupport(g *Graph) error {
	if g.Config == nil || g.Config.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	w := NewTemplateWriter(g, g.Config.Target)
	return w.GenerateAll(context.Background())
}
