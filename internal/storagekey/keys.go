// Package storagekey derives the object-store keys for clips and their
// segments. Keys double as the dedup identity for storage writes, so the same
// inputs always produce byte-identical keys and identifiers are never
// normalized.
package storagekey

import "fmt"

const (
	clipsDir     = "clips"
	segmentsDir  = "segments"
	clipFilename = "clip.mp4"
	mediaExt     = ".mp4"
)

// ClipKey returns the key of the assembled clip file.
func ClipKey(episodeID, clipID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", episodeID, clipsDir, clipID, clipFilename)
}

// SegmentKey returns the key of one segment of a clip. The index is zero
// padded to a minimum width of three and never truncated, so index 1000
// renders as 1000.
func SegmentKey(episodeID, clipID string, index int) string {
	return fmt.Sprintf("%s/%s/%s/%s/%03d%s", episodeID, clipsDir, clipID, segmentsDir, index, mediaExt)
}

// SegmentKeys returns the keys for segment indices 0 through count-1 in order.
func SegmentKeys(episodeID, clipID string, count int) []string {
	if count <= 0 {
		return nil
	}
	keys := make([]string, 0, count)
	for i := 0; i < count; i++ {
		keys = append(keys, SegmentKey(episodeID, clipID, i))
	}
	return keys
}
