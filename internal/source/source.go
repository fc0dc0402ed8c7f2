// Package source fetches board documents from local files or S3 and parses
// them into datasets.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/upload"
)

var ErrEmptyLocation = errors.New("no data location given")

// Fetcher reads one object from a remote store.
type Fetcher interface {
	Fetch(ctx context.Context, bucket, key string) ([]byte, error)
}

type Source struct {
	remote Fetcher
}

// New returns a Source. remote may be nil, in which case s3:// locations fail
// with an IOError.
func New(remote Fetcher) *Source {
	return &Source{remote: remote}
}

// IsRemote reports whether location names an S3 object.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// Read returns the raw bytes stored at location. Failures are reported as
// *upload.IOError.
func (s *Source) Read(ctx context.Context, location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, &upload.IOError{Location: "<empty>", Err: ErrEmptyLocation}
	}

	if !IsRemote(location) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, &upload.IOError{Location: location, Err: err}
		}
		return data, nil
	}

	bucket, key, err := splitS3(location)
	if err != nil {
		return nil, &upload.IOError{Location: location, Err: err}
	}
	if s.remote == nil {
		return nil, &upload.IOError{Location: location, Err: errors.New("s3 access is not configured")}
	}

	data, err := s.remote.Fetch(ctx, bucket, key)
	if err != nil {
		return nil, &upload.IOError{Location: location, Err: err}
	}
	return data, nil
}

// Load reads and validates the document at location.
func (s *Source) Load(ctx context.Context, location string) (board.Dataset, error) {
	data, err := s.Read(ctx, location)
	if err != nil {
		slog.Warn("dataset read failed", "location", location, "err", err)
		return board.Dataset{}, err
	}

	ds, err := upload.Parse(data, upload.FormatFromPath(location))
	if err != nil {
		slog.Warn("dataset rejected", "location", location, "err", err)
		return board.Dataset{}, err
	}

	slog.Info("dataset loaded", "location", location, "items", len(ds.Items), "keywords", len(ds.Keywords))
	return ds, nil
}

func splitS3(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 location: %w", err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 location %q needs a bucket and a key", location)
	}
	return bucket, key, nil
}
