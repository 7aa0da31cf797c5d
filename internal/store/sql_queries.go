package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"first_name",
	"last_name",
	"created_at",
	"updated_at",
}

func (db *DB) insertUserQuery(id, email, passwordHash, firstName, lastName string, now time.Time) (string, []any, error) {
	return db.builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(id, email, passwordHash, firstName, lastName, now, now).
		ToSql()
}

func (db *DB) selectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func (db *DB) emailExistsQuery(email string) (string, []any, error) {
	return db.builder().
		Select("1").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func (db *DB) updateProfileQuery(id, firstName, lastName string, now time.Time) (string, []any, error) {
	return db.builder().
		Update(usersTable).
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}
