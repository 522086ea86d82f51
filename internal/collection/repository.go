package collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bagstore/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByHandle(ctx context.Context, handle string) (*Collection, error)
	List(ctx context.Context) ([]*Collection, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const collectionColumns = `handle, title, description, seo_title, seo_description, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCollection(s scanner) (*Collection, error) {
	var (
		c        Collection
		seoTitle sql.NullString
		seoDesc  sql.NullString
	)
	if err := s.Scan(&c.Handle, &c.Title, &c.Description, &seoTitle, &seoDesc, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.SEO.Title = seoTitle.String
	c.SEO.Description = seoDesc.String
	Reshape(&c)
	return &c, nil
}

func (r *repository) GetByHandle(ctx context.Context, handle string) (*Collection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+collectionColumns+` FROM collections WHERE handle = $1`,
		handle,
	)

	c, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedGetCollection, err)
	}
	return c, nil
}

func (r *repository) List(ctx context.Context) ([]*Collection, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"))

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+collectionColumns+` FROM collections ORDER BY position ASC, handle ASC`,
	)
	if err != nil {
		log.Error("DB query failed ListCollections", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedListCollections, err)
	}
	defer rows.Close()

	var collections []*Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrFailedListCollections, err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedListCollections, err)
	}
	return collections, nil
}
