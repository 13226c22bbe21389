package snapshot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// FileStore keeps a snapshot in a single file encoded by a Codec.
type FileStore[T any] struct {
	path   string
	codec  Codec[T]
	logger *slog.Logger
}

// NewFileStore creates a FileStore for path. A nil logger uses slog.Default.
func NewFileStore[T any](path string, codec Codec[T], logger *slog.Logger) *FileStore[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore[T]{path: path, codec: codec, logger: logger}
}

// Path returns the snapshot file path.
func (s *FileStore[T]) Path() string { return s.path }

// Save overwrites the snapshot file with items. The parent directory must
// already exist; a missing or unwritable directory wraps types.ErrIO.
func (s *FileStore[T]) Save(items []T) error {
	encode := func(w io.Writer) error {
		return s.codec.Encode(w, items)
	}
	if err := writeAtomic(s.path, encode); err != nil {
		return fmt.Errorf("%w: saving %s: %w", types.ErrIO, s.path, err)
	}
	s.logger.Debug("snapshot saved",
		"path", s.path,
		"format", s.codec.Format(),
		"count", len(items),
	)
	return nil
}

// Load reads the snapshot file. A missing file loads as an empty snapshot.
func (s *FileStore[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("snapshot missing, starting empty", "path", s.path)
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", types.ErrIO, s.path, err)
	}

	items, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s as %s: %w",
			types.ErrDeserialization, s.path, s.codec.Format(), err)
	}
	s.logger.Debug("snapshot loaded",
		"path", s.path,
		"format", s.codec.Format(),
		"count", len(items),
	)
	return items, nil
}
