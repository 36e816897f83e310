package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// UploadURLPrefix is the public path under which saved images are served.
const UploadURLPrefix = "/static/uploads/"

var ErrFileNotAllowed = errors.New("file type not allowed")

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Uploads stores trip images on disk.
type Uploads struct {
	dir      string
	patterns []string
	maxBytes int64
}

// NewUploads creates an image store rooted at dir. A file is accepted when
// its lower-cased name matches one of the doublestar patterns.
func NewUploads(dir string, patterns []string, maxBytes int64) *Uploads {
	return &Uploads{dir: dir, patterns: patterns, maxBytes: maxBytes}
}

// Dir returns the directory images are written to.
func (u *Uploads) Dir() string { return u.dir }

// Allowed reports whether filename has an accepted extension.
func (u *Uploads) Allowed(filename string) bool {
	name := strings.ToLower(path.Base(filepath.ToSlash(filename)))
	if !strings.Contains(name, ".") {
		return false
	}
	for _, p := range u.patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Save copies r to a new file derived from filename and returns its public URL.
func (u *Uploads) Save(filename string, r io.Reader) (string, error) {
	if !u.Allowed(filename) {
		return "", fmt.Errorf("%w: %s", ErrFileNotAllowed, filename)
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	name := uuid.NewString()[:8] + "_" + SecureFilename(filename)
	dst := filepath.Join(u.dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dst, err)
	}

	src := r
	if u.maxBytes > 0 {
		src = io.LimitReader(r, u.maxBytes+1)
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && u.maxBytes > 0 && n > u.maxBytes {
		err = fmt.Errorf("file exceeds %d bytes", u.maxBytes)
	}
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}

	return UploadURLPrefix + name, nil
}

// SecureFilename reduces a client-supplied name to a safe base name made
// of ASCII letters, digits, dots, dashes and underscores.
func SecureFilename(filename string) string {
	name := path.Base(filepath.ToSlash(filename))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		return "archivo"
	}
	return name
}
