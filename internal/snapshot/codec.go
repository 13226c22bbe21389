package snapshot

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Codec encodes and decodes a snapshot of entities of type T.
// Decode must fail on structurally invalid input rather than drop records,
// and must ignore fields it does not know.
type Codec[T any] interface {
	Format() string
	Extension() string
	Encode(w io.Writer, items []T) error
	Decode(data []byte) ([]T, error)
}

// CodecFor returns the codec for a file-based snapshot format.
func CodecFor[T any](format string) (Codec[T], error) {
	switch format {
	case types.FormatJSON:
		return JSONCodec[T]{}, nil
	case types.FormatJSONL:
		return JSONLCodec[T]{}, nil
	case types.FormatYAML:
		return YAMLCodec[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q has no file codec", types.ErrFormatUnknown, format)
	}
}

// JSONCodec stores a snapshot as one indented JSON array.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Format() string    { return types.FormatJSON }
func (JSONCodec[T]) Extension() string { return ".json" }

func (JSONCodec[T]) Encode(w io.Writer, items []T) error {
	if items == nil {
		items = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// Decode parses a JSON array. A literal null decodes as an empty snapshot;
// an empty document, a null record or trailing content is an error.
func (JSONCodec[T]) Decode(data []byte) ([]T, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var records []*T
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected content after the snapshot array")
	}
	items := make([]T, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("record %d is null", i)
		}
		items[i] = *rec
	}
	return items, nil
}

// JSONLCodec stores one JSON object per line.
type JSONLCodec[T any] struct{}

func (JSONLCodec[T]) Format() string    { return types.FormatJSONL }
func (JSONLCodec[T]) Extension() string { return ".jsonl" }

func (JSONLCodec[T]) Encode(w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
	}
	return nil
}

// maxLineSize bounds a single JSONL record.
const maxLineSize = 16 * 1024 * 1024

// Decode parses one record per non-blank line. Any malformed line fails the
// whole snapshot.
func (JSONLCodec[T]) Decode(data []byte) ([]T, error) {
	items := []T{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var item *T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if item == nil {
			return nil, fmt.Errorf("line %d: record is null", line)
		}
		items = append(items, *item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning records: %w", err)
	}
	return items, nil
}

// YAMLCodec stores a snapshot as a YAML sequence.
type YAMLCodec[T any] struct{}

func (YAMLCodec[T]) Format() string    { return types.FormatYAML }
func (YAMLCodec[T]) Extension() string { return ".yaml" }

func (YAMLCodec[T]) Encode(w io.Writer, items []T) error {
	if items == nil {
		items = []T{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Decode parses a YAML sequence. An empty document decodes as an empty
// snapshot; a null record or a second document is an error.
func (YAMLCodec[T]) Decode(data []byte) ([]T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var records []*T
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []T{}, nil
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected document after the snapshot sequence")
	}
	items := make([]T, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("record %d is null", i)
		}
		items[i] = *rec
	}
	return items, nil
}
