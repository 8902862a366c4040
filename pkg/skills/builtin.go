package skills

import (
	"embed"
	"io/fs"
)

// Builtin system skills shipped with the binary and installed into the
// system scope on first run.
//
//go:embed systemskills
var builtinSkillsFS embed.FS

// BuiltinSystemSkills returns the embedded system skills as a filesystem
// rooted at the skill directories themselves.
func BuiltinSystemSkills() fs.FS {
	sub, err := fs.Sub(builtinSkillsFS, "systemskills")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
