package definition

import (
	"fmt"
	"path/filepath"

	"asset-editor/core/registry"
	"asset-editor/core/storage"
)

// Store returns the document backing path: the local file itself, or the
// bucket object named by its base name under the definitions prefix.
func (c Config) Store(path string, client storage.Client, sc storage.Config) (Store, error) {
	switch c.Source {
	case SourceFile:
		return registry.File{Path: path}, nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("definition source %q requires a storage client", c.Source)
		}
		return registry.Object{Client: client, Bucket: sc.Bucket, Key: sc.DefsKey(filepath.Base(path))}, nil
	default:
		return nil, fmt.Errorf("unsupported definition source %q", c.Source)
	}
}

// DocumentKeys returns the object keys of the item and aura documents.
func (c Config) DocumentKeys(sc storage.Config) []string {
	return []string{
		sc.DefsKey(filepath.Base(c.ItemPath)),
		sc.DefsKey(filepath.Base(c.AuraPath)),
	}
}
