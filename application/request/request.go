package request

import (
	"context"

	"bookshare/constant"
	"bookshare/model"
	bookrepo "bookshare/repository/book"
	requestrepo "bookshare/repository/request"
	txrepo "bookshare/repository/tx"
	"bookshare/utils/errors"
	"bookshare/utils/logger"
	"go.uber.org/zap"
)

type RequestApp interface {
	CreateRequest(ctx context.Context, requesterID uint64, req *model.CreateRequestRequest) (*model.CreateRequestResponse, error)
	ListReceived(ctx context.Context, ownerID uint64) (*model.ReceivedRequestsResponse, error)
	ListSent(ctx context.Context, requesterID uint64) (*model.SentRequestsResponse, error)
	UpdateStatus(ctx context.Context, requestID, actorID uint64, status string) error
}

type requestAppImpl struct {
	txRepo      txrepo.TxRepository
	requestRepo requestrepo.RequestRepository
	bookRepo    bookrepo.BookRepository
}

func NewRequestApp(txRepo txrepo.TxRepository, requestRepo requestrepo.RequestRepository, bookRepo bookrepo.BookRepository) RequestApp {
	return &requestAppImpl{txRepo: txRepo, requestRepo: requestRepo, bookRepo: bookRepo}
}

// CreateRequest records a borrow or purchase solicitation against an
// existing book. Requesting one's own book is not prevented.
func (s *requestAppImpl) CreateRequest(ctx context.Context, requesterID uint64, req *model.CreateRequestRequest) (*model.CreateRequestResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, req.BookID)
	if err != nil {
		logger.Error("[CreateRequest] err bookRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if book == nil {
		return nil, errors.SetCustomError(constant.ErrBookNotFound)
	}

	entity := &model.RequestEntity{
		BookID:      req.BookID,
		RequesterID: requesterID,
		RequestType: req.RequestType,
		Message:     req.Message,
		Status:      constant.RequestStatusPending,
	}

	requestID, err := s.requestRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateRequest] err requestRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateRequestResponse{
		Success:   true,
		Message:   "Request sent successfully",
		RequestID: requestID,
	}, nil
}

func (s *requestAppImpl) ListReceived(ctx context.Context, ownerID uint64) (*model.ReceivedRequestsResponse, error) {
	items, err := s.requestRepo.ListReceived(ctx, ownerID)
	if err != nil {
		logger.Error("[ListReceived] err requestRepo.ListReceived", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ReceivedRequestsResponse{Success: true, Requests: items}, nil
}

func (s *requestAppImpl) ListSent(ctx context.Context, requesterID uint64) (*model.SentRequestsResponse, error) {
	items, err := s.requestRepo.ListSent(ctx, requesterID)
	if err != nil {
		logger.Error("[ListSent] err requestRepo.ListSent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SentRequestsResponse{Success: true, Requests: items}, nil
}

// UpdateStatus sets a request to approved, rejected or completed. Only
// the owner of the target book may do this; a miss and a foreign
// request answer identically. The ownership lookup and the write share
// a transaction. The current status is not consulted, so a terminal
// request can be re-set; the book's availability flag is untouched.
func (s *requestAppImpl) UpdateStatus(ctx context.Context, requestID, actorID uint64, status string) error {
	if !constant.ValidStatusUpdates[status] {
		return errors.SetCustomError(constant.ErrInvalidStatus)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateStatus] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.requestRepo.GetForOwnerTx(ctx, tx, requestID, actorID)
	if err != nil {
		logger.Error("[UpdateStatus] err requestRepo.GetForOwnerTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFoundOrUnauthorized)
	}

	if err := s.requestRepo.UpdateStatusTx(ctx, tx, requestID, status); err != nil {
		logger.Error("[UpdateStatus] err requestRepo.UpdateStatusTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateStatus] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}
