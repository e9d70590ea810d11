// Package observer declares the interface the edit engine broadcasts
// through after every mutation. It exists to break the import cycle between
// the buffer (which must broadcast) and the view/pane-registry layer (which
// owns the cursors, jumplist entries, and selection anchors being broadcast
// to). It is a small interface over "iterate positions in buffer X", not a
// runtime subscriber list.
package observer
