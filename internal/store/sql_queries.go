// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-portal/models"
)

const (
	usersTable    = "users"
	messagesTable = "messages"

	// ensureUser inserts the row only when no user with the same username
	// exists. Arguments: username, password, name, username.
	ensureUser = `INSERT INTO users (username, password, name)
		SELECT ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM users WHERE username = ?);`

	// tableColumns lists the columns of a table in declaration order.
	tableColumns = `SELECT name, type, "notnull", pk
		FROM pragma_table_info(?)
		ORDER BY cid;`
)

var (
	userColumns    = []string{"id", "username", "password", "name"}
	postColumns    = []string{"id", "image", "title", "content", "date", "author"}
	messageColumns = []string{"id", "name", "email", "message", "ip_address"}
)

// requiredText returns nil for an empty string so that the NOT NULL
// constraint of the column rejects it.
func requiredText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// optionalText converts a nullable field into a driver argument.
func optionalText(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// ── users ─────────────────────────────────────────────────────────────────────

func insertUserQuery(user models.User) (string, []any, error) {
	return sq.Insert(usersTable).
		Columns("username", "password", "name").
		Values(requiredText(user.Username), requiredText(user.Password), requiredText(user.Name)).
		ToSql()
}

func findUsersByUsernameQuery(username string) (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		OrderBy("id").
		ToSql()
}

func listUsersQuery() (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
}

func updateUserQuery(username string, user models.User, withPassword bool) (string, []any, error) {
	builder := sq.Update(usersTable).
		Set("name", requiredText(user.Name)).
		Set("username", requiredText(user.Username))
	if withPassword {
		builder = builder.Set("password", requiredText(user.Password))
	}

	return builder.Where(sq.Eq{"username": username}).ToSql()
}

func deleteUserQuery(username string) (string, []any, error) {
	return sq.Delete(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// ── posts ─────────────────────────────────────────────────────────────────────

func listPostsQuery(table string, page, pageSize int) (string, []any, error) {
	return sq.Select(postColumns...).
		From(table).
		OrderBy("id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
}

func countQuery(table string) (string, []any, error) {
	return sq.Select("COUNT(*)").
		From(table).
		ToSql()
}

func getPostQuery(table string, id int64) (string, []any, error) {
	return sq.Select(postColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func insertPostQuery(table string, post models.Post) (string, []any, error) {
	return sq.Insert(table).
		Columns("image", "title", "content", "date", "author").
		Values(
			requiredText(post.Image),
			requiredText(post.Title),
			requiredText(post.Content),
			requiredText(post.Date),
			requiredText(post.Author),
		).
		ToSql()
}

func updatePostQuery(table string, post models.Post) (string, []any, error) {
	return sq.Update(table).
		Set("image", requiredText(post.Image)).
		Set("title", requiredText(post.Title)).
		Set("content", requiredText(post.Content)).
		Set("date", requiredText(post.Date)).
		Set("author", requiredText(post.Author)).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

func deletePostQuery(table string, id int64) (string, []any, error) {
	return sq.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── messages ──────────────────────────────────────────────────────────────────

func insertMessageQuery(message models.Message) (string, []any, error) {
	return sq.Insert(messagesTable).
		Columns("name", "email", "message", "ip_address").
		Values(
			optionalText(message.Name),
			optionalText(message.Email),
			optionalText(message.Message),
			optionalText(message.IPAddress),
		).
		ToSql()
}

func listMessagesQuery() (string, []any, error) {
	return sq.Select(messageColumns...).
		From(messagesTable).
		OrderBy("id DESC").
		ToSql()
}
