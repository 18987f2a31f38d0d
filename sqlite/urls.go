package sqlite

import (
	"context"

	"github.com/fwojciec/blacklist"
)

// Compile-time interface verification.
var _ blacklist.URLStorage = (*URLStorage)(nil)

// URLStorage implements blacklist.URLStorage as an ordered list of rows in
// the urls table.
type URLStorage struct {
	db   *DB
	list string
}

// NewURLStorage creates a URLStorage for the named list.
func NewURLStorage(db *DB, list string) *URLStorage {
	return &URLStorage{db: db, list: list}
}

// Load returns the stored URLs in position order.
func (s *URLStorage) Load(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url FROM urls WHERE list = ? ORDER BY position
	`, s.list)
	if err != nil {
		return nil, blacklist.Errorf(blacklist.ESTORAGE, "load urls: %v", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, blacklist.Errorf(blacklist.ESTORAGE, "scan url: %v", err)
		}
		urls = append(urls, u)
	}
	if err := rows.Err(); err != nil {
		return nil, blacklist.Errorf(blacklist.ESTORAGE, "load urls: %v", err)
	}
	return urls, nil
}

// Save replaces the stored list in a single transaction.
func (s *URLStorage) Save(ctx context.Context, urls []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM urls WHERE list = ?`, s.list); err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "clear urls: %v", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO urls (list, position, url) VALUES (?, ?, ?)`)
	if err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "prepare insert: %v", err)
	}
	defer stmt.Close()

	for i, u := range urls {
		if _, err := stmt.ExecContext(ctx, s.list, i, u); err != nil {
			return blacklist.Errorf(blacklist.ESTORAGE, "insert url: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "commit urls: %v", err)
	}
	return nil
}
