package definition

// Config locates the definition documents.
type Config struct {
	// ItemPath is the item document, a local path or an object key name.
	ItemPath string `mapstructure:"item_path" default:"defs/item.yaml"`
	// AuraPath is the aura document.
	AuraPath string `mapstructure:"aura_path" default:"defs/aura.yaml"`
	// Source is "file" for local documents or "storage" to use the bucket,
	// where the document base names are prefixed with storage.defs_prefix.
	Source string `mapstructure:"source" default:"file"`
	// SaveOnExit saves dirty registries when the server shuts down.
	SaveOnExit bool `mapstructure:"save_on_exit" default:"true"`
}

const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage:
		return true
	default:
		return false
	}
}
