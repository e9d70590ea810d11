// Package fileio implements the file loader and clipboard sink as
// consumed-only external collaborators: reading a file into line-split
// content with detected line-ending metadata, saving it back re-serialized,
// and writing synthesized clipboard text out to a register a real OS
// clipboard integration would flush from.
package fileio
