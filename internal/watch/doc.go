// Package watch notifies callers when a file-bound Buffer's backing file
// changes on disk outside the editor, using fsnotify. It is pure wiring
// around internal/buffer and internal/fileio: the buffer core itself never
// watches anything, blocking only on file read and clipboard write.
package watch
