package props

import (
	"strings"
)

// ModuleTag starts a line that declares a pipeline module.
const ModuleTag = "#BioModule"

// DeclaredModules returns the module names declared in path, in file order.
// Only path itself is scanned, never its default config files.
func DeclaredModules(path string) ([]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, readError(path, err)
	}
	defer f.Close()

	modules := []string{}
	err = eachLine(f, func(line string) {
		if strings.HasPrefix(line, ModuleTag) {
			modules = append(modules, strings.TrimSpace(strings.Replace(line, ModuleTag, "", 1)))
		}
	})
	if err != nil {
		return nil, readError(path, err)
	}
	return modules, nil
}
