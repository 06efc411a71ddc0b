// Package dirent reads directory entries one record at a time through a
// fixed-size buffer.
//
// The buffer is sized once at open from the filesystem's maximum name
// length so that a record carrying the longest legal name always fits, and
// it is reused for every read. Unlike os.File.ReadDir, the stream does not
// sort or filter: "." and ".." are returned like any other entry.
package dirent

// DefaultNameMax is assumed when the filesystem does not report a maximum
// file name length.
const DefaultNameMax = 255

// RecordSize returns the buffer size needed to hold one directory record
// whose name is nameMax bytes long: header, name and terminator, rounded up
// to the record alignment.
func RecordSize(nameMax int) int {
	if nameMax <= 0 {
		nameMax = DefaultNameMax
	}
	n := headerSize + nameMax + 1
	return (n + recordAlign - 1) &^ (recordAlign - 1)
}
