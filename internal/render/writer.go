package render

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// WriteResult describes one emitted file.
type WriteResult struct {
	Format      Format
	Path        string
	Fingerprint string
	Bytes       int
	// Skipped is true when the file already held identical content.
	Skipped bool
}

// Writer emits encoded configuration files into a directory.
type Writer struct {
	Dir string
	// Force rewrites files even when their content is unchanged.
	Force bool
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Write stores data as the file for format f. The file is replaced atomically
// and left untouched when it already has the same fingerprint.
func (w *Writer) Write(f Format, data []byte) (WriteResult, error) {
	path := filepath.Join(w.Dir, f.FileName())
	res := WriteResult{Format: f, Path: path, Fingerprint: Fingerprint(f, data), Bytes: len(data)}

	if !w.Force {
		// #nosec G304 -- path is built from the configured output directory
		if existing, err := os.ReadFile(path); err == nil && Fingerprint(f, existing) == res.Fingerprint {
			res.Skipped = true
			slog.Debug("Site configuration unchanged", logfields.Path(path), logfields.Fingerprint(res.Fingerprint))
			return res, nil
		}
	}

	if err := os.MkdirAll(w.Dir, 0o750); err != nil {
		return res, derrors.WriteFailed(w.Dir, err)
	}
	if err := writeAtomic(path, data); err != nil {
		return res, derrors.WriteFailed(path, err)
	}
	slog.Info("Wrote site configuration", logfields.Path(path), logfields.Format(string(f)), logfields.Fingerprint(res.Fingerprint))
	return res, nil
}

// Clean removes previously emitted configuration files from the directory.
// Other files are left alone.
func (w *Writer) Clean() error {
	for _, f := range AllFormats {
		path := filepath.Join(w.Dir, f.FileName())
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return derrors.WriteFailed(path, err)
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
