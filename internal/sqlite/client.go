package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rpggio/sala/internal/domain/client"
)

// ClientRepository implements client.Repository for SQLite
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `document, type, name, fantasy_name, email, phone, address, city, uf`

// Upsert inserts the client or overwrites every column of the existing one.
func (r *ClientRepository) Upsert(ctx context.Context, c *client.Client) error {
	if err := r.db.checkReady(); err != nil {
		return err
	}

	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(document) DO UPDATE SET
			type = excluded.type,
			name = excluded.name,
			fantasy_name = excluded.fantasy_name,
			email = excluded.email,
			phone = excluded.phone,
			address = excluded.address,
			city = excluded.city,
			uf = excluded.uf
	`
	_, err := r.db.ExecContext(ctx, query,
		c.Document,
		string(c.Type),
		c.Name,
		c.FantasyName,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.UF,
	)
	if err != nil {
		return storageError("failed to upsert client", err)
	}
	return nil
}

// Get retrieves a client by document. A miss is reported through found.
func (r *ClientRepository) Get(ctx context.Context, document string) (client.Client, bool, error) {
	if err := r.db.checkReady(); err != nil {
		return client.Client{}, false, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE document = ?`, document)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return client.Client{}, false, nil
	}
	if err != nil {
		return client.Client{}, false, storageError("failed to get client", err)
	}
	return c, true, nil
}

// List returns every client in insertion order.
func (r *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	if err := r.db.checkReady(); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY rowid`)
	if err != nil {
		return nil, storageError("failed to list clients", err)
	}
	defer rows.Close()

	clients := []client.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, storageError("failed to scan client", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to list clients", err)
	}
	return clients, nil
}

// Delete removes a client. Deleting a missing document is a no-op.
func (r *ClientRepository) Delete(ctx context.Context, document string) error {
	if err := r.db.checkReady(); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE document = ?`, document); err != nil {
		return storageError("failed to delete client", err)
	}
	return nil
}

func scanClient(s scanner) (client.Client, error) {
	var (
		c   client.Client
		typ string
	)
	err := s.Scan(
		&c.Document,
		&typ,
		&c.Name,
		&c.FantasyName,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.City,
		&c.UF,
	)
	c.Type = client.DocumentType(typ)
	return c, err
}
