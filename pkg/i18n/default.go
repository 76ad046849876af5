package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// Default returns a catalog with the bundled validation messages (en, de).
func Default(ctx context.Context, opts ...Option) (*Catalog, error) {
	return NewCatalog(ctx, NewFSAdapter(locales, "locales"), opts...)
}
