// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/models"
)

// MaxPageSize is the largest page size ListPosts accepts.
const MaxPageSize = 1000

// listCapacity caps the preallocation of a listed page.
const listCapacity = 64

// postRepository is the SQLite-backed implementation of [PostRepository]
// bound to one publication table.
type postRepository struct {
	*DB
	table  string
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] for the table of kind.
// Unknown kinds are rejected with [ErrUnknownPostKind]; the table name is
// never taken from unchecked input.
func NewPostRepository(db *DB, kind models.PostKind, logger *logger.Logger) (PostRepository, error) {
	if _, err := models.ParsePostKind(string(kind)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownPostKind, err)
	}

	return &postRepository{
		DB:     db,
		table:  string(kind),
		logger: logger,
	}, nil
}

// ListPosts returns page (1-based) of the table, newest first, together
// with the total row count. A page below one is treated as the first page.
func (p *postRepository) ListPosts(ctx context.Context, page, pageSize int) (models.Page[models.Post], error) {
	log := logger.FromContext(ctx)

	if pageSize < 1 || pageSize > MaxPageSize {
		return models.Page[models.Post]{}, fmt.Errorf("%w: page size %d not in [1, %d]", ErrInvalidPagination, pageSize, MaxPageSize)
	}
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/pageSize {
		return models.Page[models.Post]{}, fmt.Errorf("%w: page %d out of range", ErrInvalidPagination, page)
	}

	query, args, err := listPostsQuery(p.table, page, pageSize)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Str("table", p.table).Msg("failed to build query")
		return models.Page[models.Post]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Str("table", p.table).Msg("failed to execute query")
		return models.Page[models.Post]{}, mapSQLiteError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, min(pageSize, listCapacity))
	for rows.Next() {
		var post models.Post
		if err = rows.Scan(&post.ID, &post.Image, &post.Title, &post.Content, &post.Date, &post.Author); err != nil {
			log.Err(err).Str("func", "postRepository.ListPosts").Str("table", p.table).Msg("failed to scan post row")
			return models.Page[models.Post]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Str("table", p.table).Msg("error occurred during rows iteration")
		return models.Page[models.Post]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	total, err := p.count(ctx)
	if err != nil {
		return models.Page[models.Post]{}, err
	}

	return models.Page[models.Post]{
		Items:    posts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetPost returns the row with the given id or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := getPostQuery(p.table, id)
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Str("table", p.table).Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	err = p.DB.QueryRowContext(ctx, query, args...).
		Scan(&post.ID, &post.Image, &post.Title, &post.Content, &post.Date, &post.Author)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrPostNotFound
	case err != nil:
		log.Err(err).Str("func", "postRepository.GetPost").Str("table", p.table).Int64("id", id).Msg("failed to get post")
		return models.Post{}, mapSQLiteError(err, ErrExecutingQuery)
	}

	return post, nil
}

// CreatePost inserts post and returns it with the assigned ID.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertPostQuery(p.table, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Str("table", p.table).Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Str("table", p.table).Msg("failed to insert post")
		return models.Post{}, mapSQLiteError(err, ErrExecutingStatement)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	post.ID = id

	return post, nil
}

// UpdatePost rewrites every column of the row identified by post.ID.
func (p *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	log := logger.FromContext(ctx)

	query, args, err := updatePostQuery(p.table, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Str("table", p.table).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffecting(ctx, "postRepository.UpdatePost", post.ID, query, args...)
}

// DeletePost removes the row with the given id.
func (p *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deletePostQuery(p.table, id)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Str("table", p.table).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.execAffecting(ctx, "postRepository.DeletePost", id, query, args...)
}

func (p *postRepository) execAffecting(ctx context.Context, funcName string, id int64, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("table", p.table).Int64("id", id).Msg("failed to execute statement")
		return mapSQLiteError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (p *postRepository) count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := countQuery(p.table)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "postRepository.count").Str("table", p.table).Msg("failed to count rows")
		return 0, mapSQLiteError(err, ErrExecutingQuery)
	}

	return total, nil
}
