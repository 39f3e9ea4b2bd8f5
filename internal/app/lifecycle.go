package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/dshills/scribe/internal/engine/buffer"
)

// defaultFileMode is used when saving a file that does not exist yet.
const defaultFileMode fs.FileMode = 0o644

// LoadBuffer reads the file at path into a new buffer. A file that does not
// exist in an existing directory yields an empty buffer, so the first save
// creates it. Any other failure is returned.
func LoadBuffer(path string, opts ...buffer.Option) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if _, dirErr := os.Stat(filepath.Dir(path)); dirErr != nil {
			return nil, NewOperationError("open", path, err)
		}
		return buffer.New(opts...), nil
	}
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	defer f.Close()

	buf, err := buffer.NewFromReader(f, opts...)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	return buf, nil
}

// Save writes the buffer to its file and clears the dirty flag.
// It returns the number of bytes written.
func (s *Session) Save() (int, error) {
	if s.filename == "" {
		return 0, ErrNoFilename
	}

	data := s.buf.Serialize()
	if err := writeFileAtomic(s.filename, data); err != nil {
		return 0, NewOperationError("save", s.filename, err)
	}
	s.dirty = false
	return len(data), nil
}

// writeFileAtomic replaces path with data. The data goes to a temporary file
// in the same directory which is synced and renamed over path, so a failed
// save leaves the previous contents intact. An existing file keeps its
// permission bits. A symlink is followed so the link itself survives.
func writeFileAtomic(path string, data []byte) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	}

	mode := defaultFileMode
	owner := -1
	group := -1
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
		if st, ok := info.Sys().(*syscall.Stat_t); ok {
			owner, group = int(st.Uid), int(st.Gid)
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return WrapError(err, "write temp file")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return WrapError(err, "sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return WrapError(err, "close temp file")
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return WrapError(err, "chmod temp file")
	}
	if owner >= 0 {
		// Only root may give the file away; keep our own ownership otherwise.
		_ = os.Chown(tmpPath, owner, group)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return WrapError(err, "rename temp file")
	}
	return nil
}
