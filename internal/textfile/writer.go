package textfile

import (
	"os"
	"path/filepath"

	"github.com/tacogips/repogen/internal/debug"
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile writes content to a file with the specified permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory. When recursive is false only the last
	// path element may be missing.
	CreateDir(path string, recursive bool) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content atomically using a temporary file and rename, so
// a partially written file is never observable at path. The parent
// directory must already exist.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[textfile] Writing file: %s (size: %d bytes, mode: %o)", path, len(content), mode)

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return newTextFileError(WriteFailed, "failed to create temporary file", path, err)
	}
	tempFile := f.Name()

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newTextFileError(WriteFailed, "failed to write file content", path, err)
	}

	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newTextFileError(WriteFailed, "failed to close file", path, closeErr)
	}

	if err := os.Chmod(tempFile, mode); err != nil {
		_ = os.Remove(tempFile)
		return newTextFileError(WriteFailed, "failed to set file mode", path, err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newTextFileError(WriteFailed, "failed to rename temporary file", path, err)
	}

	debug.Debug("[textfile] File written successfully: %s", path)
	return nil
}

// CreateDir creates a directory with 0755 permissions.
func (w *FileWriter) CreateDir(path string, recursive bool) error {
	debug.Debug("[textfile] Creating directory: %s (recursive: %v)", path, recursive)
	var err error
	if recursive {
		err = os.MkdirAll(path, 0755)
	} else {
		err = os.Mkdir(path, 0755)
		if os.IsExist(err) {
			err = nil
		}
	}
	if err != nil {
		return newTextFileError(WriteFailed, "failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
