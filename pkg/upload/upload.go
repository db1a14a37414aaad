// Package upload normalizes uploaded-file representations into a single
// Descriptor consumed by file inputs and file validators.
//
// Two shapes are accepted at the boundary: a parsed *multipart.FileHeader and
// the legacy map-of-fields form ({"tmp_name", "name", "size", "error",
// "type"}). Both are converted once; nothing downstream inspects the original
// representation.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// ErrorCode is the transport-level upload status.
type ErrorCode int

const (
	ErrOK        ErrorCode = 0
	ErrIniSize   ErrorCode = 1
	ErrFormSize  ErrorCode = 2
	ErrPartial   ErrorCode = 3
	ErrNoFile    ErrorCode = 4
	ErrNoTmpDir  ErrorCode = 6
	ErrCantWrite ErrorCode = 7
	ErrExtension ErrorCode = 8
)

var (
	// ErrUnsupported is returned when a value is not a recognized upload representation.
	ErrUnsupported = errors.New("unsupported upload representation")

	// ErrNoSource is returned by Open when the descriptor has neither a header nor a temp path.
	ErrNoSource = errors.New("upload has no readable source")
)

// Descriptor describes one uploaded file.
type Descriptor struct {
	TempPath     string
	OriginalName string
	Size         int64
	ErrorCode    ErrorCode
	MediaType    string

	header *multipart.FileHeader
}

// Empty reports whether the descriptor stands for "no file was sent".
func (d Descriptor) Empty() bool {
	return d.ErrorCode == ErrNoFile
}

// Header returns the multipart header the descriptor was built from, if any.
func (d Descriptor) Header() *multipart.FileHeader {
	return d.header
}

// Extension returns the lower-cased extension of the original name without the dot.
func (d Descriptor) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(d.OriginalName), "."))
}

// Open returns a reader for the uploaded content.
func (d Descriptor) Open() (io.ReadCloser, error) {
	if d.header != nil {
		f, err := d.header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %q: %w", d.OriginalName, err)
		}
		return f, nil
	}
	if d.TempPath == "" {
		return nil, ErrNoSource
	}
	f, err := os.Open(d.TempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %q: %w", d.OriginalName, err)
	}
	return f, nil
}

// FromFileHeader converts a parsed multipart header. A nil header yields a
// "no file" descriptor.
func FromFileHeader(h *multipart.FileHeader) Descriptor {
	if h == nil {
		return Descriptor{ErrorCode: ErrNoFile}
	}
	return Descriptor{
		OriginalName: filepath.Base(h.Filename),
		Size:         h.Size,
		ErrorCode:    ErrOK,
		MediaType:    mediaType(h.Header.Get("Content-Type"), h.Filename),
		header:       h,
	}
}

// FromMap converts the legacy map-of-fields representation.
func FromMap(m map[string]any) (Descriptor, error) {
	d := Descriptor{}

	if v, ok := m["tmp_name"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return Descriptor{}, fmt.Errorf("%w: tmp_name must be a string, got %T", ErrUnsupported, v)
		}
		d.TempPath = s
	}
	if v, ok := m["name"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return Descriptor{}, fmt.Errorf("%w: name must be a string, got %T", ErrUnsupported, v)
		}
		d.OriginalName = s
	}

	size, err := toInt64(m["size"])
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: size: %w", ErrUnsupported, err)
	}
	d.Size = size

	code, err := toInt64(m["error"])
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: error: %w", ErrUnsupported, err)
	}
	d.ErrorCode = ErrorCode(code)

	if t, ok := m["type"].(string); ok {
		d.MediaType = mediaType(t, d.OriginalName)
	} else {
		d.MediaType = mediaType("", d.OriginalName)
	}

	if d.TempPath == "" && d.OriginalName == "" && d.ErrorCode == ErrOK {
		d.ErrorCode = ErrNoFile
	}

	return d, nil
}

// Normalize converts any supported representation into a descriptor.
// A nil value yields nil without error.
func Normalize(v any) (*Descriptor, error) {
	switch u := v.(type) {
	case nil:
		return nil, nil
	case Descriptor:
		return &u, nil
	case *Descriptor:
		return u, nil
	case *multipart.FileHeader:
		d := FromFileHeader(u)
		return &d, nil
	case map[string]any:
		d, err := FromMap(u)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

// NormalizeList converts a single upload or a list of uploads.
// The boolean result reports whether the input was a list.
func NormalizeList(v any) ([]Descriptor, bool, error) {
	switch list := v.(type) {
	case []Descriptor:
		return list, true, nil
	case []*multipart.FileHeader:
		out := make([]Descriptor, 0, len(list))
		for _, h := range list {
			out = append(out, FromFileHeader(h))
		}
		return out, true, nil
	case []any:
		out := make([]Descriptor, 0, len(list))
		for i, item := range list {
			d, err := Normalize(item)
			if err != nil {
				return nil, true, fmt.Errorf("upload %d: %w", i, err)
			}
			if d == nil {
				out = append(out, Descriptor{ErrorCode: ErrNoFile})
				continue
			}
			out = append(out, *d)
		}
		return out, true, nil
	}

	d, err := Normalize(v)
	if err != nil {
		return nil, false, err
	}
	if d == nil {
		return nil, false, nil
	}
	return []Descriptor{*d}, false, nil
}

func mediaType(contentType, filename string) string {
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			return mt
		}
	}
	if filename == "" {
		return ""
	}
	mt, _, _ := mime.ParseMediaType(mime.TypeByExtension(filepath.Ext(filename)))
	return mt
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case string:
		if strings.TrimSpace(n) == "" {
			return 0, nil
		}
		out, err := cast.FromType(strings.TrimSpace(n), reflect.TypeFor[int64]())
		if err != nil {
			return 0, err
		}
		return out.(int64), nil
	case ErrorCode:
		return int64(n), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}
