package collection

import (
	"context"
	"path/filepath"

	"bagstore/internal/logger"
	"bagstore/internal/utils"

	"go.uber.org/zap"
)

const CollectionsFile = "collections.json"

// LoadFile reads and reshapes a collections.json file.
func LoadFile(path string) ([]*Collection, error) {
	var collections []*Collection
	if err := utils.LoadJSONFile(path, &collections); err != nil {
		return nil, err
	}
	out := collections[:0]
	for _, c := range collections {
		if c == nil {
			continue
		}
		Reshape(c)
		out = append(out, c)
	}
	return out, nil
}

type jsonRepository struct {
	path string
}

// NewJSONRepository serves collections from <dir>/collections.json.
func NewJSONRepository(dir string) Repository {
	return &jsonRepository{path: filepath.Join(dir, CollectionsFile)}
}

func (r *jsonRepository) load(ctx context.Context) []*Collection {
	collections, err := LoadFile(r.path)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load local collections file",
			zap.String("layer", "repository"),
			zap.String("file", r.path),
			zap.Error(err),
		)
		return nil
	}
	return collections
}

func (r *jsonRepository) GetByHandle(ctx context.Context, handle string) (*Collection, error) {
	for _, c := range r.load(ctx) {
		if c.Handle == handle {
			return c, nil
		}
	}
	return nil, ErrCollectionNotFound
}

func (r *jsonRepository) List(ctx context.Context) ([]*Collection, error) {
	return r.load(ctx), nil
}
