// Package config loads the editor's persisted defaults (tab width, default
// tab style, max retained undo groups) from a TOML file via
// github.com/pelletier/go-toml/v2. It does not build an EditorContext
// itself: cmd/cmantic passes the loaded values to editorctx.New at startup.
// Nothing in the text buffer core reads this package directly.
package config
