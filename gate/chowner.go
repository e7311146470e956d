package gate

import (
	"os"

	"golang.org/x/sys/unix"
)

type OSChowner struct {
}

func NewOSChowner() *OSChowner {
	return &OSChowner{}
}

// Owner reports the uid/gid of the entry at path without following a
// trailing symbolic link.
func (c *OSChowner) Owner(path string) (int, int, error) {
	var stat unix.Stat_t
	if err := unix.Lstat(path, &stat); err != nil {
		return 0, 0, err
	}

	return int(stat.Uid), int(stat.Gid), nil
}

func (c *OSChowner) Chown(path string, uid, gid int) error {
	return os.Chown(path, uid, gid)
}

func (c *OSChowner) Lchown(path string, uid, gid int) error {
	return os.Lchown(path, uid, gid)
}
