package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/biolockj/bljconfig/internal/container"
	"github.com/biolockj/bljconfig/internal/l10n"
	"github.com/biolockj/bljconfig/internal/locate"
	"github.com/biolockj/bljconfig/internal/metadata"
	"github.com/biolockj/bljconfig/internal/props"
)

// newBuilder returns a props.Builder configured from the current settings.
func newBuilder() *props.Builder {
	files := &locate.SearchPath{Dirs: settings.SearchPaths}
	return &props.Builder{
		StandardConfig: files.Expand(settings.StandardConfig),
		PlatformConfig: files.Expand(settings.DockerConfig),
		Files:          files,
		Container:      &container.Environment{},
		Logger:         slog.Default(),
	}
}

// build resolves the CONFIG argument of c. A spinner is shown on an
// interactive stderr when log output would not interleave with it.
func build(c *cli.Context, interactive bool) (*props.Resolved, error) {
	if c.NArg() != 1 {
		return nil, cli.Exit(l10n.T("error: expected exactly one CONFIG argument"), 1)
	}

	var s *spinner.Spinner
	if interactive && settings.LogLevel > slog.LevelInfo && isTerminal(c.App.ErrWriter) {
		s = spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(c.App.ErrWriter))
		s.Suffix = l10n.T(" Resolving %v", c.Args().First())
		s.Start()
	}

	resolved, err := newBuilder().Build(c.Args().First())
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	return resolved, nil
}

func resolveAction(c *cli.Context) error {
	format := c.String("format")
	if format != "text" && format != "json" {
		return cli.Exit(l10n.T("error: unsupported format %v", format), 1)
	}

	resolved, err := build(c, format == "text")
	if err != nil {
		return err
	}

	var registry *metadata.Registry
	if c.Bool("describe") {
		registry = loadRegistry(c)
	}

	if format == "json" {
		return writeJSON(c.App.Writer, newResolveOutput(resolved, c.Bool("origin"), registry))
	}
	writeProperties(c.App.Writer, resolved, c.Bool("origin"), registry)
	return nil
}

func defaultsAction(c *cli.Context) error {
	resolved, err := build(c, true)
	if err != nil {
		return err
	}

	for _, e := range resolved.Files {
		fmt.Fprintf(c.App.Writer, "%d\t%s\n", e.Seq, e.Path)
	}
	n := len(resolved.Defaults)
	fmt.Fprintln(c.App.ErrWriter, l10n.TN("%d default config file", "%d default config files", uint32(n), n))
	return nil
}

func modulesAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("error: expected exactly one CONFIG argument"), 1)
	}
	modules, err := props.DeclaredModules(c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}
	for _, m := range modules {
		fmt.Fprintln(c.App.Writer, m)
	}
	return nil
}

// loadRegistry returns the built-in property metadata and warns on stderr when
// its tables disagree.
func loadRegistry(c *cli.Context) *metadata.Registry {
	registry := metadata.Default()
	if !registry.Consistent() {
		fmt.Fprintln(c.App.ErrWriter, l10n.T("warning: property metadata is incomplete"))
	}
	return registry
}

func describeAction(c *cli.Context) error {
	registry := loadRegistry(c)
	names := c.Args().Slice()
	if len(names) == 0 {
		names = registry.Names()
	}

	var unknown int
	for _, name := range names {
		p, ok := registry.Lookup(name)
		if !ok {
			fmt.Fprintln(c.App.ErrWriter, l10n.T("%v: unknown property", name))
			unknown++
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", p.Name, p.Type, p.Description)
	}
	if unknown > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// resolveOutput is the JSON form of a resolved configuration.
type resolveOutput struct {
	RunID      string              `json:"run_id"`
	Entry      string              `json:"entry"`
	Properties map[string]string   `json:"properties"`
	Modules    []string            `json:"modules"`
	Defaults   []string            `json:"defaults"`
	Files      []props.LedgerEntry `json:"files"`
	Origins    map[string]string   `json:"origins,omitempty"`

	Metadata map[string]metadata.Property `json:"metadata,omitempty"`
}

// newResolveOutput converts r. Metadata is filled for the known properties of
// r when registry is not nil.
func newResolveOutput(r *props.Resolved, withOrigin bool, registry *metadata.Registry) resolveOutput {
	out := resolveOutput{
		RunID:      r.RunID.String(),
		Entry:      r.Entry,
		Properties: r.Values,
		Modules:    r.Modules,
		Defaults:   r.Defaults,
		Files:      r.Files,
	}
	if out.Defaults == nil {
		out.Defaults = []string{}
	}
	if withOrigin {
		out.Origins = map[string]string{}
		for _, k := range r.Keys() {
			if o, ok := r.Origin(k); ok {
				out.Origins[k] = o
			}
		}
	}
	if registry != nil {
		out.Metadata = map[string]metadata.Property{}
		for _, k := range r.Keys() {
			if p, ok := registry.Lookup(k); ok {
				out.Metadata[k] = p
			}
		}
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeProperties prints key=value lines sorted by key, optionally followed
// by the file that supplied each value and, when registry is not nil, the
// type and description of known properties.
func writeProperties(w io.Writer, r *props.Resolved, withOrigin bool, registry *metadata.Registry) {
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		line := k + "=" + v
		if o, ok := r.Origin(k); ok && withOrigin {
			line += "\t# " + o
		}
		if registry != nil {
			if typ := registry.Type(k); typ != "" {
				line += fmt.Sprintf("\t# (%s) %s", typ, registry.Description(k))
			}
		}
		fmt.Fprintln(w, line)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
