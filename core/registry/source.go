package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"asset-editor/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

// Format is the text encoding of a definition document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file or object name extension.
// Unknown extensions yield "".
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return ""
	}
}

// Source is where a registry loads its document from.
type Source interface {
	fmt.Stringer
	Read(ctx context.Context) ([]byte, error)
	Format() Format
}

// Sink is where a registry saves its document to.
type Sink interface {
	fmt.Stringer
	Write(ctx context.Context, data []byte) error
	Format() Format
}

// document is the persisted shape: { next_id, defs }.
type document[T any] struct {
	NextID uint32 `yaml:"next_id" json:"next_id"`
	Defs   []T    `yaml:"defs" json:"defs"`
}

// rawDocument holds one decoder per entry so each entry can be decoded into a
// value pre-filled with its defaults.
type rawDocument struct {
	nextID uint32
	defs   []func(v any) error
}

func decodeDocument(format Format, data []byte) (*rawDocument, error) {
	switch format {
	case FormatYAML:
		var doc struct {
			NextID uint32      `yaml:"next_id"`
			Defs   []yaml.Node `yaml:"defs"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		raw := &rawDocument{nextID: doc.NextID}
		for i := range doc.Defs {
			node := doc.Defs[i]
			raw.defs = append(raw.defs, node.Decode)
		}
		return raw, nil
	case FormatJSON:
		var doc struct {
			NextID uint32            `json:"next_id"`
			Defs   []json.RawMessage `json:"defs"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		raw := &rawDocument{nextID: doc.NextID}
		for _, msg := range doc.Defs {
			raw.defs = append(raw.defs, func(v any) error { return json.Unmarshal(msg, v) })
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func encodeDocument[T any](format Format, doc document[T]) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// File is a definition document on the local filesystem.
type File struct {
	Path string
}

func (f File) String() string { return f.Path }

// Format is derived from the file extension.
func (f File) Format() Format { return FormatFor(f.Path) }

// Read returns the file contents.
func (f File) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(f.Path)
}

// Write replaces the file through a temporary sibling and a rename, so a
// failed write leaves the previous document intact.
func (f File) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// Object is a definition document stored in an object storage bucket.
type Object struct {
	Client storage.Client
	Bucket string
	Key    string
}

func (o Object) String() string { return o.Bucket + "/" + o.Key }

// Format is derived from the object key extension.
func (o Object) Format() Format { return FormatFor(o.Key) }

// Read downloads the object.
func (o Object) Read(ctx context.Context) ([]byte, error) {
	obj, err := o.Client.GetObject(ctx, o.Bucket, o.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// Write uploads data as the object.
func (o Object) Write(ctx context.Context, data []byte) error {
	contentType := "application/yaml"
	if o.Format() == FormatJSON {
		contentType = "application/json"
	}
	_, err := o.Client.PutObject(ctx, o.Bucket, o.Key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}
