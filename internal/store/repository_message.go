// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-portal/internal/logger"
	"github.com/MKhiriev/go-portal/models"
)

type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by db.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMessage stores message. Nil fields are written as NULL.
func (m *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertMessageQuery(message)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.CreateMessage").Msg("failed to build query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.CreateMessage").Msg("failed to insert message")
		return models.Message{}, mapSQLiteError(err, ErrExecutingStatement)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	message.ID = id

	return message, nil
}

// ListMessages returns every stored message, newest first.
func (m *messageRepository) ListMessages(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := listMessagesQuery()
	if err != nil {
		log.Err(err).Str("func", "messageRepository.ListMessages").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.ListMessages").Msg("failed to execute query")
		return nil, mapSQLiteError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 16)
	for rows.Next() {
		var (
			message                      models.Message
			name, email, text, ipAddress sql.NullString
		)
		if err = rows.Scan(&message.ID, &name, &email, &text, &ipAddress); err != nil {
			log.Err(err).Str("func", "messageRepository.ListMessages").Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		message.Name = nullableText(name)
		message.Email = nullableText(email)
		message.Message = nullableText(text)
		message.IPAddress = nullableText(ipAddress)
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "messageRepository.ListMessages").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func nullableText(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
