package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"sync"

	"github.com/iaibm/icibm-web/internal/format"
)

// ErrNoTemplates is returned when the template source holds no .tmpl files.
var ErrNoTemplates = errors.New("render: no templates found")

// Renderer executes named templates from an fs.FS.
type Renderer struct {
	fsys  fs.FS
	dev   bool
	funcs template.FuncMap

	mu   sync.RWMutex
	tmpl *template.Template
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDevMode reparses templates on every Execute so edits show up without a restart.
func WithDevMode(dev bool) Option {
	return func(r *Renderer) { r.dev = dev }
}

// WithFuncs adds template functions.
func WithFuncs(funcs template.FuncMap) Option {
	return func(r *Renderer) {
		for k, v := range funcs {
			r.funcs[k] = v
		}
	}
}

// New parses every .tmpl file under fsys. Parsing happens eagerly even in dev mode
// so broken templates fail start-up.
func New(fsys fs.FS, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		fsys: fsys,
		funcs: template.FuncMap{
			"currency": format.Currency,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.tmpl = t
	return r, nil
}

// Dev reports whether templates are reparsed per request.
func (r *Renderer) Dev() bool { return r.dev }

func (r *Renderer) parse() (*template.Template, error) {
	// Recursively discover .tmpl files. ParseFS patterns don't support **.
	var files []string
	if err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, p)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("render: walk templates: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoTemplates
	}
	t, err := template.New("_root").Funcs(r.funcs).ParseFS(r.fsys, files...)
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return t, nil
}

func (r *Renderer) current() (*template.Template, error) {
	if r.dev {
		t, err := r.parse()
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.tmpl = t
		r.mu.Unlock()
		return t, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tmpl, nil
}

// Execute renders the named template into memory so callers can set status codes
// only after rendering succeeded.
func (r *Renderer) Execute(name string, data any) ([]byte, error) {
	t, err := r.current()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render: execute %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Has reports whether a template with the given name is defined.
func (r *Renderer) Has(name string) bool {
	t, err := r.current()
	if err != nil {
		return false
	}
	return t.Lookup(name) != nil
}
