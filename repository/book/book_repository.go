package book

import (
	"context"
	"database/sql"

	"bookshare/constant"
	"bookshare/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type BookRepository interface {
	Create(ctx context.Context, req *model.BookEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.BookEntity, error)
	GetByOwnerTx(ctx context.Context, tx *sqlx.Tx, id, ownerID uint64) (*model.BookEntity, error)
	ListAvailable(ctx context.Context) ([]model.BookPublicItem, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.BookOwnedItem, error)
	Search(ctx context.Context, query, filterType string) ([]model.BookSearchItem, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdateBookRequest, isAvailable bool) error
	Delete(ctx context.Context, id, ownerID uint64) (int64, error)
}

func NewBookRepository(conn *sqlx.DB) BookRepository {
	return &SQL{conn: conn}
}

const (
	insertBookQuery = "INSERT INTO books (owner_id, title, author, `condition`, availability_type, rent_price, sale_price, description, location) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"

	getBookQuery = "SELECT book_id, owner_id, title, author, `condition`, availability_type, rent_price, sale_price, description, location, is_available, created_at FROM books WHERE book_id = ?"

	listAvailableQuery = "SELECT b.book_id, b.title, b.author, b.`condition`, b.availability_type, b.rent_price, b.sale_price, b.description, b.location, u.username AS owner_name, b.owner_id " +
		"FROM books b JOIN users u ON b.owner_id = u.user_id WHERE b.is_available = 1 ORDER BY b.created_at DESC"

	listByOwnerQuery = "SELECT book_id, title, author, `condition`, availability_type, rent_price, sale_price, description, location, is_available " +
		"FROM books WHERE owner_id = ? ORDER BY created_at DESC"

	searchBooksBase = "SELECT b.book_id, b.title, b.author, b.`condition`, b.availability_type, b.rent_price, b.sale_price, b.description, b.location, u.username AS owner_name " +
		"FROM books b JOIN users u ON b.owner_id = u.user_id WHERE b.is_available = 1 AND (b.title LIKE ? OR b.author LIKE ?)"

	updateBookQuery = "UPDATE books SET title = ?, author = ?, `condition` = ?, availability_type = ?, rent_price = ?, sale_price = ?, description = ?, is_available = ? WHERE book_id = ?"

	deleteBookQuery = "DELETE FROM books WHERE book_id = ? AND owner_id = ?"
)

func (s *SQL) Create(ctx context.Context, data *model.BookEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertBookQuery,
		data.OwnerID, data.Title, data.Author, data.Condition, data.AvailabilityType,
		data.RentPrice, data.SalePrice, data.Description, data.Location)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.BookEntity, error) {
	var entity model.BookEntity
	if err := s.conn.QueryRowxContext(ctx, getBookQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByOwnerTx(ctx context.Context, tx *sqlx.Tx, id, ownerID uint64) (*model.BookEntity, error) {
	var entity model.BookEntity
	query := getBookQuery + " AND owner_id = ?"
	if err := tx.QueryRowxContext(ctx, query, id, ownerID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListAvailable(ctx context.Context) ([]model.BookPublicItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listAvailableQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BookPublicItem, 0)
	for rows.Next() {
		var it model.BookPublicItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) ListByOwner(ctx context.Context, ownerID uint64) ([]model.BookOwnedItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listByOwnerQuery, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BookOwnedItem, 0)
	for rows.Next() {
		var it model.BookOwnedItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Search(ctx context.Context, query, filterType string) ([]model.BookSearchItem, error) {
	sqlQuery := searchBooksBase
	pattern := "%" + query + "%"
	args := []any{pattern, pattern}

	if filterType != constant.FilterAll {
		sqlQuery += " AND (b.availability_type = ? OR b.availability_type = ?)"
		args = append(args, filterType, constant.AvailabilityBoth)
	}
	sqlQuery += " ORDER BY b.created_at DESC"

	rows, err := s.conn.QueryxContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BookSearchItem, 0)
	for rows.Next() {
		var it model.BookSearchItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdateBookRequest, isAvailable bool) error {
	_, err := tx.ExecContext(ctx, updateBookQuery,
		req.Title, req.Author, req.Condition, req.AvailabilityType,
		req.RentPrice, req.SalePrice, req.Description, isAvailable, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id, ownerID uint64) (int64, error) {
	result, err := s.conn.ExecContext(ctx, deleteBookQuery, id, ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
