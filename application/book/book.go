package book

import (
	"context"

	"bookshare/constant"
	"bookshare/model"
	bookrepo "bookshare/repository/book"
	txrepo "bookshare/repository/tx"
	"bookshare/utils/errors"
	"bookshare/utils/logger"
	"go.uber.org/zap"
)

type BookApp interface {
	CreateBook(ctx context.Context, ownerID uint64, req *model.CreateBookRequest) (*model.CreateBookResponse, error)
	ListBooks(ctx context.Context) (*model.PublicBooksResponse, error)
	ListMyBooks(ctx context.Context, ownerID uint64) (*model.MyBooksResponse, error)
	UpdateBook(ctx context.Context, bookID, ownerID uint64, req *model.UpdateBookRequest) error
	DeleteBook(ctx context.Context, bookID, ownerID uint64) error
	SearchBooks(ctx context.Context, query, filterType string) (*model.SearchBooksResponse, error)
}

type bookAppImpl struct {
	txRepo   txrepo.TxRepository
	bookRepo bookrepo.BookRepository
}

func NewBookApp(txRepo txrepo.TxRepository, bookRepo bookrepo.BookRepository) BookApp {
	return &bookAppImpl{txRepo: txRepo, bookRepo: bookRepo}
}

func (s *bookAppImpl) CreateBook(ctx context.Context, ownerID uint64, req *model.CreateBookRequest) (*model.CreateBookResponse, error) {
	entity := &model.BookEntity{
		OwnerID:          ownerID,
		Title:            req.Title,
		Author:           req.Author,
		Condition:        req.Condition,
		AvailabilityType: req.AvailabilityType,
		RentPrice:        req.RentPrice,
		SalePrice:        req.SalePrice,
		Description:      req.Description,
		Location:         req.Location,
		IsAvailable:      true,
	}

	bookID, err := s.bookRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateBook] err bookRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateBookResponse{
		Success: true,
		Message: "Book added successfully",
		BookID:  bookID,
	}, nil
}

func (s *bookAppImpl) ListBooks(ctx context.Context) (*model.PublicBooksResponse, error) {
	items, err := s.bookRepo.ListAvailable(ctx)
	if err != nil {
		logger.Error("[ListBooks] err bookRepo.ListAvailable", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PublicBooksResponse{Success: true, Books: items}, nil
}

func (s *bookAppImpl) ListMyBooks(ctx context.Context, ownerID uint64) (*model.MyBooksResponse, error) {
	items, err := s.bookRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("[ListMyBooks] err bookRepo.ListByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.MyBooksResponse{Success: true, Books: items}, nil
}

// UpdateBook replaces every mutable field of a listing the caller owns.
// The ownership check and the write run in one transaction so a
// concurrent delete cannot slip between them. A miss is reported the
// same way as a foreign book, existence is not leaked to non-owners.
func (s *bookAppImpl) UpdateBook(ctx context.Context, bookID, ownerID uint64, req *model.UpdateBookRequest) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateBook] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.bookRepo.GetByOwnerTx(ctx, tx, bookID, ownerID)
	if err != nil {
		logger.Error("[UpdateBook] err bookRepo.GetByOwnerTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFoundOrUnauthorized)
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	if err := s.bookRepo.UpdateTx(ctx, tx, bookID, req, isAvailable); err != nil {
		logger.Error("[UpdateBook] err bookRepo.UpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateBook] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// DeleteBook removes a listing through a single owner-scoped statement.
// Requests referencing the book stay behind, they simply stop showing
// up in the joined request listings.
func (s *bookAppImpl) DeleteBook(ctx context.Context, bookID, ownerID uint64) error {
	affected, err := s.bookRepo.Delete(ctx, bookID, ownerID)
	if err != nil {
		logger.Error("[DeleteBook] err bookRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFoundOrUnauthorized)
	}
	return nil
}

func (s *bookAppImpl) SearchBooks(ctx context.Context, query, filterType string) (*model.SearchBooksResponse, error) {
	if filterType == "" {
		filterType = constant.FilterAll
	}

	items, err := s.bookRepo.Search(ctx, query, filterType)
	if err != nil {
		logger.Error("[SearchBooks] err bookRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SearchBooksResponse{Success: true, Books: items}, nil
}
