package book_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appbook "bookshare/application/book"
	"bookshare/constant"
	bookmocks "bookshare/mocks/repository/book"
	txmocks "bookshare/mocks/repository/tx"
	"bookshare/model"
	cerr "bookshare/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestBookApp_CreateBook(t *testing.T) {
	rent := int64(5)
	type fields struct {
		txRepo   *txmocks.TxRepository
		bookRepo *bookmocks.BookRepository
	}
	tests := []struct {
		name     string
		fields   fields
		ownerID  uint64
		req      *model.CreateBookRequest
		mockCall func(f fields)
		want     *model.CreateBookResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: listing starts available",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			ownerID: 1,
			req: &model.CreateBookRequest{
				Title:            "Dune",
				Author:           "Herbert",
				Condition:        "good",
				AvailabilityType: constant.AvailabilityRent,
				RentPrice:        &rent,
				Location:         "NY",
			},
			mockCall: func(f fields) {
				f.bookRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.BookEntity) bool {
						return ent.OwnerID == 1 &&
							ent.Title == "Dune" &&
							ent.Author == "Herbert" &&
							ent.AvailabilityType == constant.AvailabilityRent &&
							ent.IsAvailable
					})).
					Return(uint64(42), nil).
					Once()
			},
			want: &model.CreateBookResponse{
				Success: true,
				Message: "Book added successfully",
				BookID:  42,
			},
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			ownerID: 1,
			req: &model.CreateBookRequest{
				Title:            "Dune",
				Author:           "Herbert",
				Condition:        "good",
				AvailabilityType: constant.AvailabilitySale,
				Location:         "NY",
			},
			mockCall: func(f fields) {
				f.bookRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.BookEntity")).
					Return(uint64(0), errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appbook.NewBookApp(tt.fields.txRepo, tt.fields.bookRepo)

			got, err := app.CreateBook(context.Background(), tt.ownerID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateBook() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateBook() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBookApp_UpdateBook(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		bookRepo *bookmocks.BookRepository
	}
	avail := false
	tests := []struct {
		name     string
		fields   fields
		bookID   uint64
		ownerID  uint64
		req      *model.UpdateBookRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owner updates inside one transaction",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			bookID:  42,
			ownerID: 1,
			req: &model.UpdateBookRequest{
				Title:            "Dune",
				Author:           "Herbert",
				Condition:        "worn",
				AvailabilityType: constant.AvailabilityBoth,
				IsAvailable:      &avail,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.bookRepo.
					On("GetByOwnerTx", mock.Anything, tx, uint64(42), uint64(1)).
					Return(&model.BookEntity{ID: 42, OwnerID: 1}, nil).
					Once()
				f.bookRepo.
					On("UpdateTx", mock.Anything, tx, uint64(42), mock.AnythingOfType("*model.UpdateBookRequest"), false).
					Return(nil).
					Once()
			},
		},
		{
			name: "success: availability defaults to true when omitted",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			bookID:  42,
			ownerID: 1,
			req: &model.UpdateBookRequest{
				Title:            "Dune",
				Author:           "Herbert",
				Condition:        "worn",
				AvailabilityType: constant.AvailabilityBoth,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.bookRepo.
					On("GetByOwnerTx", mock.Anything, tx, uint64(42), uint64(1)).
					Return(&model.BookEntity{ID: 42, OwnerID: 1}, nil).
					Once()
				f.bookRepo.
					On("UpdateTx", mock.Anything, tx, uint64(42), mock.AnythingOfType("*model.UpdateBookRequest"), true).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: not the owner, listing untouched",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			bookID:  42,
			ownerID: 2,
			req: &model.UpdateBookRequest{
				Title:            "Dune",
				Author:           "Herbert",
				Condition:        "worn",
				AvailabilityType: constant.AvailabilityBoth,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				// Same answer whether the book is missing or owned by someone else
				f.bookRepo.
					On("GetByOwnerTx", mock.Anything, tx, uint64(42), uint64(2)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFoundOrUnauthorized,
		},
		{
			name: "error: update statement fails",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			bookID:  42,
			ownerID: 1,
			req: &model.UpdateBookRequest{
				Title:            "Dune",
				Author:           "Herbert",
				Condition:        "worn",
				AvailabilityType: constant.AvailabilityBoth,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.bookRepo.
					On("GetByOwnerTx", mock.Anything, tx, uint64(42), uint64(1)).
					Return(&model.BookEntity{ID: 42, OwnerID: 1}, nil).
					Once()
				f.bookRepo.
					On("UpdateTx", mock.Anything, tx, uint64(42), mock.AnythingOfType("*model.UpdateBookRequest"), true).
					Return(errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appbook.NewBookApp(tt.fields.txRepo, tt.fields.bookRepo)

			err := app.UpdateBook(context.Background(), tt.bookID, tt.ownerID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateBook() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestBookApp_DeleteBook(t *testing.T) {
	type fields struct {
		txRepo   *txmocks.TxRepository
		bookRepo *bookmocks.BookRepository
	}
	tests := []struct {
		name     string
		fields   fields
		bookID   uint64
		ownerID  uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owner deletes own listing",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			bookID:  42,
			ownerID: 1,
			mockCall: func(f fields) {
				f.bookRepo.On("Delete", mock.Anything, uint64(42), uint64(1)).Return(int64(1), nil).Once()
			},
		},
		{
			name: "error: missing and foreign listings answer identically",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			bookID:  42,
			ownerID: 2,
			mockCall: func(f fields) {
				f.bookRepo.On("Delete", mock.Anything, uint64(42), uint64(2)).Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFoundOrUnauthorized,
		},
		{
			name: "error: delete statement fails",
			fields: fields{
				txRepo:   txmocks.NewTxRepository(t),
				bookRepo: bookmocks.NewBookRepository(t),
			},
			bookID:  42,
			ownerID: 1,
			mockCall: func(f fields) {
				f.bookRepo.On("Delete", mock.Anything, uint64(42), uint64(1)).Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appbook.NewBookApp(tt.fields.txRepo, tt.fields.bookRepo)

			err := app.DeleteBook(context.Background(), tt.bookID, tt.ownerID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteBook() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestBookApp_SearchBooks(t *testing.T) {
	hits := []model.BookSearchItem{
		{ID: 2, Title: "Dune Messiah", Author: "Herbert", Owner: "alice"},
		{ID: 1, Title: "Dune", Author: "Herbert", Owner: "alice"},
	}

	t.Run("success: repository ordering passes through untouched", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		bookRepo := bookmocks.NewBookRepository(t)
		bookRepo.On("Search", mock.Anything, "dune", constant.AvailabilitySale).Return(hits, nil).Once()

		app := appbook.NewBookApp(txRepo, bookRepo)
		got, err := app.SearchBooks(context.Background(), "dune", constant.AvailabilitySale)
		if err != nil {
			t.Fatalf("SearchBooks() error = %v", err)
		}
		if !reflect.DeepEqual(got.Books, hits) {
			t.Fatalf("SearchBooks() = %+v, want %+v", got.Books, hits)
		}
	})

	t.Run("success: empty filter defaults to all", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		bookRepo := bookmocks.NewBookRepository(t)
		bookRepo.On("Search", mock.Anything, "", constant.FilterAll).Return([]model.BookSearchItem{}, nil).Once()

		app := appbook.NewBookApp(txRepo, bookRepo)
		got, err := app.SearchBooks(context.Background(), "", "")
		if err != nil {
			t.Fatalf("SearchBooks() error = %v", err)
		}
		if len(got.Books) != 0 || !got.Success {
			t.Fatalf("SearchBooks() = %+v, want empty success", got)
		}
	})

	t.Run("error: repository Search fails", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		bookRepo := bookmocks.NewBookRepository(t)
		bookRepo.On("Search", mock.Anything, "dune", constant.FilterAll).Return(nil, errors.New("db error")).Once()

		app := appbook.NewBookApp(txRepo, bookRepo)
		_, err := app.SearchBooks(context.Background(), "dune", constant.FilterAll)
		if err == nil {
			t.Fatal("SearchBooks() expected error")
		}
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestBookApp_ListBooks(t *testing.T) {
	items := []model.BookPublicItem{
		{ID: 3, Title: "Neuromancer", Author: "Gibson", Owner: "bob", OwnerID: 2},
		{ID: 1, Title: "Dune", Author: "Herbert", Owner: "alice", OwnerID: 1},
	}

	txRepo := txmocks.NewTxRepository(t)
	bookRepo := bookmocks.NewBookRepository(t)
	bookRepo.On("ListAvailable", mock.Anything).Return(items, nil).Once()

	app := appbook.NewBookApp(txRepo, bookRepo)
	got, err := app.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("ListBooks() error = %v", err)
	}
	if !reflect.DeepEqual(got.Books, items) {
		t.Fatalf("ListBooks() = %+v, want %+v", got.Books, items)
	}
}

func TestBookApp_ListMyBooks(t *testing.T) {
	items := []model.BookOwnedItem{
		{ID: 5, Title: "Hidden", Author: "Me", IsAvailable: false},
		{ID: 1, Title: "Dune", Author: "Herbert", IsAvailable: true},
	}

	txRepo := txmocks.NewTxRepository(t)
	bookRepo := bookmocks.NewBookRepository(t)
	bookRepo.On("ListByOwner", mock.Anything, uint64(1)).Return(items, nil).Once()

	app := appbook.NewBookApp(txRepo, bookRepo)
	got, err := app.ListMyBooks(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListMyBooks() error = %v", err)
	}
	if !reflect.DeepEqual(got.Books, items) {
		t.Fatalf("ListMyBooks() = %+v, want %+v", got.Books, items)
	}
}
