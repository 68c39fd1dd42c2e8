package tsplib

import (
	"context"
	"io"
)

// Opener opens a named source for reading. storage.Store satisfies it.
type Opener interface {
	Open(ctx context.Context, URL string) (io.ReadCloser, error)
}

// LoadCoordinates opens URL, parses it with ReadCoordinates and closes it on
// every exit path. The URL names the source in diagnostics.
func LoadCoordinates(ctx context.Context, src Opener, URL string, opts ...Option) (*Instance, error) {
	rc, err := src.Open(ctx, URL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadCoordinates(rc, append([]Option{WithSource(URL)}, opts...)...)
}

// LoadTour opens URL, parses it with ReadTour and closes it on every exit path.
func LoadTour(ctx context.Context, src Opener, URL string, opts ...Option) (*Tour, error) {
	rc, err := src.Open(ctx, URL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadTour(rc, append([]Option{WithSource(URL)}, opts...)...)
}
