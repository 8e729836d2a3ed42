package props

import (
	"strings"
)

const (
	// PipelineDefaultProps lists default config files to merge beneath a file.
	PipelineDefaultProps = "pipeline.defaultProps"
	// ProjectDefaultProps is the older spelling of PipelineDefaultProps.
	ProjectDefaultProps = "project.defaultProps"
)

// FileResolver locates a default config reference. The referrer is the file
// that declared the reference. Resolve returns false when nothing is found.
type FileResolver interface {
	Resolve(reference, referrer string) (string, bool)
}

// Resolver discovers the transitive default config files of a config file.
type Resolver struct {
	Files FileResolver
}

// DirectDefaults scans the raw lines of file for the default-props directive
// and resolves every listed reference, in declared order.
func (r *Resolver) DirectDefaults(file string) ([]string, error) {
	f, err := openFile(file)
	if err != nil {
		return nil, readError(file, err)
	}
	defer f.Close()

	var refs []string
	err = eachLine(f, func(line string) {
		refs = append(refs, directiveReferences(line)...)
	})
	if err != nil {
		return nil, readError(file, err)
	}

	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		path, ok := r.Files.Resolve(ref, file)
		if !ok {
			return nil, &UnresolvedReferenceError{Reference: ref, File: file}
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Defaults returns the transitive default config files of file, ordered for
// merging: the first element is applied first and has the lowest precedence.
// Files already in the ledger, and file itself, are left out.
func (r *Resolver) Defaults(ledger *Ledger, file string) ([]string, error) {
	direct, err := r.DirectDefaults(file)
	if err != nil {
		return nil, err
	}
	loaded := func(path string) bool {
		return path == file || ledger.Contains(path)
	}
	return orderDefaults(direct, loaded, r.DirectDefaults)
}

// orderDefaults walks the default graph breadth first from the direct
// references. A file that is already loaded or already discovered is skipped,
// which drops cycle back-edges and collapses diamonds. The discovery order is
// reversed at the end so deeper defaults are merged first and files nearer
// the entry file win.
func orderDefaults(direct []string, loaded func(string) bool, children func(string) ([]string, error)) ([]string, error) {
	frontier := append([]string(nil), direct...)
	discovered := []string{}
	seen := map[string]bool{}

	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		if loaded(next) || seen[next] {
			continue
		}
		seen[next] = true
		discovered = append(discovered, next)

		refs, err := children(next)
		if err != nil {
			return nil, err
		}
		frontier = append(frontier, refs...)
	}

	for i, j := 0, len(discovered)-1; i < j; i, j = i+1, j-1 {
		discovered[i], discovered[j] = discovered[j], discovered[i]
	}
	return discovered, nil
}

// directiveReferences returns the references listed on line when it sets one
// of the default-props keys.
func directiveReferences(line string) []string {
	tokens := nonEmpty(strings.Split(line, "="))
	if len(tokens) < 2 {
		return nil
	}
	key := strings.TrimSpace(tokens[0])
	if key != PipelineDefaultProps && key != ProjectDefaultProps {
		return nil
	}

	var refs []string
	for _, ref := range strings.Split(strings.TrimSpace(tokens[1]), ",") {
		if ref = strings.TrimSpace(ref); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

func nonEmpty(tokens []string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
