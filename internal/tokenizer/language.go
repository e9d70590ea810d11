package tokenizer

import (
	"path/filepath"
	"strings"
)

// languageByExt maps a lowercased filename suffix to a language tag.
var languageByExt = map[string]string{
	".c":                  "c",
	".cpp":                "c",
	".h":                  "c",
	".hpp":                "c",
	".cs":                 "csharp",
	".py":                 "python",
	".jl":                 "julia",
	".sh":                 "bash",
	".cmantic-colorscheme": "colorscheme",
	".go":                  "go",
}

// LanguageForFilename returns the language tag for a filename, using its
// suffix, with a special case for Makefile/makefile (no suffix). Returns
// "none" when nothing matches.
func LanguageForFilename(name string) string {
	base := filepath.Base(name)
	if base == "Makefile" || base == "makefile" {
		return "bash"
	}
	ext := strings.ToLower(filepath.Ext(name))
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}
	return "none"
}
