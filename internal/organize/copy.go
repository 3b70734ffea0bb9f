package organize

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// copyFile copies src to dst, replacing dst if present, and carries over
// the permission bits and modification time of src.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return eris.Wrap(err, "organize: open source")
	}
	defer in.Close() //nolint:errcheck

	info, err := in.Stat()
	if err != nil {
		return eris.Wrap(err, "organize: stat source")
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return eris.Wrap(err, "organize: create target")
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck
		return eris.Wrap(err, "organize: copy")
	}
	if err := out.Close(); err != nil {
		return eris.Wrap(err, "organize: close target")
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return eris.Wrap(err, "organize: preserve mtime")
	}
	return nil
}
