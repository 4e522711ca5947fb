package request

import (
	"context"
	"database/sql"

	"bookshare/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type RequestRepository interface {
	Create(ctx context.Context, req *model.RequestEntity) (uint64, error)
	ListReceived(ctx context.Context, ownerID uint64) ([]model.ReceivedRequestItem, error)
	ListSent(ctx context.Context, requesterID uint64) ([]model.SentRequestItem, error)
	GetForOwnerTx(ctx context.Context, tx *sqlx.Tx, id, ownerID uint64) (*model.RequestEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status string) error
}

func NewRequestRepository(conn *sqlx.DB) RequestRepository {
	return &SQL{conn: conn}
}

const (
	insertRequestQuery = `INSERT INTO requests (book_id, requester_id, request_type, message) VALUES (?, ?, ?, ?)`

	listReceivedQuery = `SELECT r.request_id, r.book_id, b.title, b.author,
		u.username AS requester_name, u.email AS requester_email,
		r.request_type, r.message, r.status, r.created_at
	FROM requests r
	JOIN books b ON r.book_id = b.book_id
	JOIN users u ON r.requester_id = u.user_id
	WHERE b.owner_id = ?
	ORDER BY r.created_at DESC`

	listSentQuery = `SELECT r.request_id, r.book_id, b.title, b.author,
		u.username AS owner_name, u.email AS owner_email,
		r.request_type, r.message, r.status, r.created_at
	FROM requests r
	JOIN books b ON r.book_id = b.book_id
	JOIN users u ON b.owner_id = u.user_id
	WHERE r.requester_id = ?
	ORDER BY r.created_at DESC`

	getForOwnerQuery = `SELECT r.request_id, r.book_id, r.requester_id, r.request_type, r.message, r.status, r.created_at
	FROM requests r
	JOIN books b ON r.book_id = b.book_id
	WHERE r.request_id = ? AND b.owner_id = ?`

	updateStatusQuery = `UPDATE requests SET status = ? WHERE request_id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.RequestEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertRequestQuery,
		data.BookID, data.RequesterID, data.RequestType, data.Message)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) ListReceived(ctx context.Context, ownerID uint64) ([]model.ReceivedRequestItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listReceivedQuery, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReceivedRequestItem, 0)
	for rows.Next() {
		var it model.ReceivedRequestItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) ListSent(ctx context.Context, requesterID uint64) ([]model.SentRequestItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listSentQuery, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SentRequestItem, 0)
	for rows.Next() {
		var it model.SentRequestItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetForOwnerTx(ctx context.Context, tx *sqlx.Tx, id, ownerID uint64) (*model.RequestEntity, error) {
	var entity model.RequestEntity
	if err := tx.QueryRowxContext(ctx, getForOwnerQuery, id, ownerID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status string) error {
	_, err := tx.ExecContext(ctx, updateStatusQuery, status, id)
	return err
}
