package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// skillFile is one raw SKILL.md hit produced by the scanner.
type skillFile struct {
	dir     string // directory containing the SKILL.md
	content []byte
}

// scanRoot walks root looking for files named exactly SKILL.md and returns
// their containing directories and raw contents. A missing root yields no
// results and no error. Individual read failures become io_failure errors
// and do not stop the walk. Each call restarts the walk from scratch.
//
// The walk is breadth-first over lexicographically sorted entries, so hit
// order is deterministic regardless of the underlying filesystem. Dot-prefixed
// entries are skipped; in particular this keeps the .system subtree from
// being rediscovered while scanning the user root that contains it. Symlinked
// directories are followed, with a resolved-path visited set breaking cycles.
func scanRoot(root string) ([]skillFile, []DiscoveryError) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, nil
	}
	if info, err := os.Stat(resolved); err != nil || !info.IsDir() {
		return nil, nil
	}

	var (
		files   []skillFile
		errs    []DiscoveryError
		visited = map[string]struct{}{resolved: {}}
		queue   = []string{resolved}
	)

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			entryPath := filepath.Join(dir, name)

			info, err := os.Stat(entryPath)
			if err != nil {
				continue
			}

			if info.IsDir() {
				target, err := filepath.EvalSymlinks(entryPath)
				if err != nil {
					continue
				}
				if _, seen := visited[target]; seen {
					continue
				}
				visited[target] = struct{}{}
				queue = append(queue, entryPath)
				continue
			}

			if !info.Mode().IsRegular() || name != skillFileName {
				continue
			}

			if info.Size() > maxSkillFileSize {
				errs = append(errs, DiscoveryError{
					Path:   entryPath,
					Kind:   ErrIOFailure,
					Detail: fmt.Sprintf("skill file exceeds %d bytes", maxSkillFileSize),
				})
				continue
			}

			content, err := os.ReadFile(entryPath)
			if err != nil {
				errs = append(errs, DiscoveryError{
					Path:   entryPath,
					Kind:   ErrIOFailure,
					Detail: fmt.Sprintf("failed to read file: %v", err),
				})
				continue
			}

			files = append(files, skillFile{dir: filepath.Dir(entryPath), content: content})
		}
	}

	return files, errs
}
