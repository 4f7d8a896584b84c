package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bruplint/brutil/internal/helpers"
)

// FromDisk loads a script or wasm file from an absolute path.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk accepts an absolute path, optionally prefixed with "file://".
func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")

	if strings.Contains(path, "://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: relative paths are not supported", ErrScriptNotAvailable)
	}

	path = filepath.Clean(path)
	if path == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: path is empty or invalid", ErrScriptNotAvailable)
	}

	return &FromDisk{
		path:      path,
		sourceURL: &url.URL{Scheme: "file", Path: filepath.ToSlash(path)},
	}, nil
}

// String includes a short checksum of the file when it is readable.
func (l *FromDisk) String() string {
	noChkSum := fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)

	reader, err := l.GetReader()
	if err != nil {
		return noChkSum
	}
	defer reader.Close()

	chksum, err := helpers.SHA256Reader(reader)
	if err != nil {
		return noChkSum
	}
	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, chksum[:8])
}

// Path returns the cleaned file path.
func (l *FromDisk) Path() string {
	return l.path
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	return os.Open(l.path)
}

func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
