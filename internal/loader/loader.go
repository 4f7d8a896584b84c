// Package loader provides the sources scripts and wasm plugins are read from.
package loader

import (
	"io"
	"net/url"
)

// Loader returns the content of a script or wasm binary, and the URL it came from.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}

// ReadAll reads the full content of a loader and closes the reader.
func ReadAll(l Loader) ([]byte, error) {
	if l == nil {
		return nil, ErrLoaderNil
	}
	reader, err := l.GetReader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, ErrInputEmpty
	}
	return content, nil
}
