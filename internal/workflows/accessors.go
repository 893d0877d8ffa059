package workflows

import (
	"context"

	"github.com/chazuruo/progressive-workflow/internal/workflows/store"
)

// GetStep returns one step of workflow id under baseDir.
func GetStep(ctx context.Context, id string, index int, vars map[string]string, baseDir string) (*PromptResult, error) {
	return NewService(store.New(baseDir)).Step(ctx, id, index, vars)
}

// GetArgs returns the argument declarations of workflow id under baseDir.
func GetArgs(ctx context.Context, id, baseDir string) ([]Arg, error) {
	return NewService(store.New(baseDir)).Args(ctx, id)
}

// GetCatalog lists the workflows under baseDir. A missing baseDir yields an
// empty catalog.
func GetCatalog(ctx context.Context, baseDir string) ([]CatalogEntry, error) {
	return NewService(store.New(baseDir)).Catalog(ctx, CatalogOptions{})
}
