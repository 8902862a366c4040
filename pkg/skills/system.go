package skills

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	systemSkillsMarkerFile = ".pywen-system-skills.marker"
	systemSkillsMarkerSalt = "v1"
)

// InstallSystemSkills materializes the embedded builtin skills into the
// system scope root under home. A marker file carrying a fingerprint of the
// embedded payload makes the install idempotent: a matching marker
// short-circuits, anything else wipes the root and reinstalls.
func InstallSystemSkills(home string, embedded fs.FS) error {
	if embedded == nil {
		return nil
	}

	dest := SystemSkillsRoot(home).Path
	markerPath := filepath.Join(dest, systemSkillsMarkerFile)

	fingerprint, err := systemSkillsFingerprint(embedded)
	if err != nil {
		return errors.Wrap(err, "failed to fingerprint embedded system skills")
	}

	if marker, err := os.ReadFile(markerPath); err == nil {
		if strings.TrimSpace(string(marker)) == fingerprint {
			return nil
		}
	}

	if err := os.RemoveAll(dest); err != nil {
		return errors.Wrap(err, "failed to clear system skills directory")
	}
	if err := copyEmbeddedDir(embedded, dest); err != nil {
		return err
	}

	if err := os.WriteFile(markerPath, []byte(fingerprint+"\n"), 0o644); err != nil {
		return errors.Wrap(err, "failed to write system skills marker")
	}
	return nil
}

// systemSkillsFingerprint hashes the embedded payload: every relative path
// plus a sha256 of each file's contents, sorted, under a version salt. Any
// change to the shipped skills changes the fingerprint.
func systemSkillsFingerprint(embedded fs.FS) (string, error) {
	type item struct {
		path string
		hash string
	}
	var items []item

	err := fs.WalkDir(embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			items = append(items, item{path: path})
			return nil
		}
		content, err := fs.ReadFile(embedded, path)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(content)
		items = append(items, item{path: path, hash: hex.EncodeToString(sum[:])})
		return nil
	})
	if err != nil {
		return "", err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].path < items[j].path })

	hasher := sha256.New()
	hasher.Write([]byte(systemSkillsMarkerSalt))
	for _, it := range items {
		hasher.Write([]byte(it.path))
		hasher.Write([]byte(it.hash))
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// copyEmbeddedDir writes the embedded tree under dest, collecting per-file
// failures so one broken entry does not hide the rest.
func copyEmbeddedDir(embedded fs.FS, dest string) error {
	var result *multierror.Error

	err := fs.WalkDir(embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dest, path)
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "failed to create %s", target))
			}
			return nil
		}

		content, err := fs.ReadFile(embedded, path)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "failed to read embedded %s", path))
			return nil
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "failed to write %s", target))
		}
		return nil
	})
	if err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
