package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"text/template"

	"github.com/agentx-labs/wpscaffold/internal/plugin"
	"github.com/spf13/afero"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Layout lists the directories created under the plugin root, in creation order.
var Layout = []string{
	filepath.Join("admin", "css"),
	filepath.Join("admin", "js"),
	filepath.Join("admin", "partials"),
	filepath.Join("public", "css"),
	filepath.Join("public", "js"),
	filepath.Join("public", "partials"),
	"includes",
}

// pluginFile pairs an embedded template with its output path relative to
// the plugin root.
type pluginFile struct {
	template string
	path     func(slug string) string
}

var pluginFiles = []pluginFile{
	{"main.php.tmpl", func(slug string) string { return slug + ".php" }},
	{"activator.php.tmpl", func(slug string) string {
		return filepath.Join("includes", "class-"+slug+"-activator.php")
	}},
	{"deactivator.php.tmpl", func(slug string) string {
		return filepath.Join("includes", "class-"+slug+"-deactivator.php")
	}},
	{"class.php.tmpl", func(slug string) string {
		return filepath.Join("includes", "class-"+slug+".php")
	}},
	{"readme.txt.tmpl", func(string) string { return "readme.txt" }},
}

// TemplateData holds all variables available to plugin templates.
type TemplateData struct {
	Name        string
	Slug        string
	Description string
	Author      string
	Version     string
	Readme      plugin.Readme
	plugin.Names
}

// NewTemplateData builds the template variables for spec.
func NewTemplateData(spec *plugin.Spec) *TemplateData {
	return &TemplateData{
		Name:        spec.Name,
		Slug:        spec.Slug,
		Description: spec.Description,
		Author:      spec.Author,
		Version:     spec.Version,
		Readme:      spec.Readme,
		Names:       spec.Names(),
	}
}

// Options controls where and how Generate writes.
type Options struct {
	// Fs is the target filesystem. Defaults to the OS filesystem.
	Fs afero.Fs
	// Progress, when set, receives one line per created directory or file.
	Progress io.Writer
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Name    string   // Plugin name, for the confirmation message
	Root    string   // Absolute path to the plugin root
	Dirs    []string // Created directories, relative to Root
	Files   []string // Written files, relative to Root
	Message string
}

// Generate validates spec and writes the plugin tree under spec.Root().
// Validation and the collision check happen before anything is written.
func Generate(spec *plugin.Spec, opts Options) (*Result, error) {
	if err := plugin.ValidateSlug(spec.Slug); err != nil {
		return nil, &Error{Kind: KindInvalidSlug, Err: err}
	}
	if err := spec.Validate(); err != nil {
		return nil, &Error{Kind: KindInvalidSpec, Err: err}
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	root := spec.Root()
	exists, err := afero.Exists(fsys, root)
	if err != nil {
		return nil, &Error{Kind: KindCreationFailure, Err: err}
	}
	if exists {
		return nil, &Error{Kind: KindDestinationExists, Path: root}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &Error{Kind: KindCreationFailure, Err: err}
	}

	result := &Result{
		Name: spec.Name,
		Root: absRoot,
	}

	w := &writer{fs: fsys, root: root, progress: opts.Progress}

	if err := w.mkdir("."); err != nil {
		return nil, err
	}
	for _, dir := range Layout {
		if err := w.mkdir(dir); err != nil {
			return nil, err
		}
		result.Dirs = append(result.Dirs, dir)
	}

	data := NewTemplateData(spec)
	for _, f := range pluginFiles {
		rel := f.path(spec.Slug)
		if err := w.render(f.template, rel, data); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, rel)
	}

	result.Message = fmt.Sprintf("Plugin %s created successfully.", spec.Name)
	return result, nil
}

// writer creates entries under root and stops at the first error.
type writer struct {
	fs       afero.Fs
	root     string
	progress io.Writer
}

func (w *writer) mkdir(rel string) error {
	path := filepath.Join(w.root, rel)
	if err := w.fs.MkdirAll(path, dirPerm); err != nil {
		return &Error{Kind: KindCreationFailure, Err: err}
	}
	w.report("created", rel+string(filepath.Separator))
	return nil
}

func (w *writer) render(name, rel string, data *TemplateData) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return &Error{Kind: KindCreationFailure, Err: fmt.Errorf("executing template %s: %w", name, err)}
	}

	path := filepath.Join(w.root, rel)
	if err := afero.WriteFile(w.fs, path, buf.Bytes(), filePerm); err != nil {
		return &Error{Kind: KindCreationFailure, Err: err}
	}
	w.report("wrote", rel)
	return nil
}

func (w *writer) report(verb, rel string) {
	if w.progress == nil {
		return
	}
	fmt.Fprintf(w.progress, "  %-7s %s\n", verb, rel)
}
