package gen

import (
	"bytes"
	"context"
	"embed"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/uz/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Output file names and the template each is rendered from.
const (
	FileBitsEnum = "bits_enum_gen.go"
	FileBitsWord = "bits_word_gen.go"
	FileRanges   = "ranges_gen.go"
	FileRegistry = "registry_gen.go"
)

var fileTemplates = map[string]string{
	FileBitsEnum: "bits_enum.go.tmpl",
	FileBitsWord: "bits_word.go.tmpl",
	FileRanges:   "ranges.go.tmpl",
	FileRegistry: "registry.go.tmpl",
}

// Generator renders and writes the generated files for one Config.
type Generator struct {
	cfg   Config
	model model
	tmpl  *template.Template
}

// New validates cfg and parses the embedded templates.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "parse templates")
	}
	return &Generator{
		cfg:   cfg,
		model: newModel(cfg),
		tmpl:  tmpl,
	}, nil
}

// Files returns the names of the files this generator produces, sorted.
// A family with no configured types produces no file.
func (g *Generator) Files() []string {
	names := []string{FileRegistry}
	if len(g.model.Enums) > 0 {
		names = append(names, FileBitsEnum)
	}
	if len(g.model.Words) > 0 {
		names = append(names, FileBitsWord)
	}
	if len(g.model.Ranges) > 0 {
		names = append(names, FileRanges)
	}
	sort.Strings(names)
	return names
}

// Render executes every template and formats the result.
func (g *Generator) Render() (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, name := range g.Files() {
		src, err := g.render(name)
		if err != nil {
			return nil, err
		}
		out[name] = src
	}
	return out, nil
}

func (g *Generator) render(name string) ([]byte, error) {
	tmplName := fileTemplates[name]

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, tmplName, g.model); err != nil {
		return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
			Path(tmplName).
			Cause(err).
			Detail("execute template").
			Build()
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
			Path(tmplName).
			Cause(err).
			Detail("gofmt rendered output").
			Build()
	}

	Logger().Debug("rendered",
		zap.String("file", name),
		zap.String("template", tmplName),
		zap.Int("bytes", len(src)))
	return src, nil
}

// Write renders every file and writes it under the configured output
// directory. Files are written concurrently; the first failure cancels
// the rest.
func (g *Generator) Write(ctx context.Context) error {
	files, err := g.Render()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(g.cfg.Output, 0o755); err != nil {
		return errors.Wrap(errors.PhaseGenerate, errors.KindIO, err, "create "+g.cfg.Output)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for name, src := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(g.cfg.Output, name)
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return errors.Wrap(errors.PhaseGenerate, errors.KindIO, err, "write "+path)
			}
			Logger().Info("wrote generated file",
				zap.String("path", path),
				zap.Int("bytes", len(src)))
			return nil
		})
	}
	return eg.Wait()
}

// Check renders every file and compares it with the copy on disk.
// It returns the names of missing or stale files, sorted.
func (g *Generator) Check(ctx context.Context) ([]string, error) {
	files, err := g.Render()
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, name := range g.Files() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(g.cfg.Output, name)
		have, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			stale = append(stale, name)
		case err != nil:
			return nil, errors.Wrap(errors.PhaseGenerate, errors.KindIO, err, "read "+path)
		case !bytes.Equal(have, files[name]):
			stale = append(stale, name)
		}
	}

	if len(stale) > 0 {
		Logger().Warn("generated files are stale", zap.Strings("files", stale))
	}
	return stale, nil
}
