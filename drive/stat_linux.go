//go:build linux

package drive

import (
	"os"
	"syscall"
)

// createdAt reports the closest thing Linux exposes to a creation time
// (inode change time). Nil when the stat shape is not the native one.
func createdAt(info os.FileInfo) *int64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	sec := int64(st.Ctim.Sec)
	return &sec
}
