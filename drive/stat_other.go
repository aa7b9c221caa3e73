//go:build !linux

package drive

import "os"

// createdAt is unavailable off Linux; callers serialize nil as null.
func createdAt(_ os.FileInfo) *int64 {
	return nil
}
