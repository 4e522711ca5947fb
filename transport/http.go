package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	bookapp "bookshare/application/book"
	requestapp "bookshare/application/request"
	userapp "bookshare/application/user"
	"bookshare/constant"
	"bookshare/model"
	utilsContext "bookshare/utils/context"
	"bookshare/utils/errors"
	validatorx "bookshare/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	BookApp    bookapp.BookApp
	RequestApp requestapp.RequestApp
}

func NewTransport(UserApp userapp.UserApp, BookApp bookapp.BookApp, RequestApp requestapp.RequestApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		BookApp:    BookApp,
		RequestApp: RequestApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Auth routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Book routes
	mux.HandleFunc("/books", rh.GetBooks).Methods(http.MethodGet)
	mux.HandleFunc("/books/search", rh.SearchBooks).Methods(http.MethodGet)
	mux.HandleFunc("/books/my", rh.GetMyBooks).Methods(http.MethodGet)
	mux.HandleFunc("/books", rh.AddBook).Methods(http.MethodPost)
	mux.HandleFunc("/books/{id}", rh.UpdateBook).Methods(http.MethodPut)
	mux.HandleFunc("/books/{id}", rh.DeleteBook).Methods(http.MethodDelete)

	// Request routes
	mux.HandleFunc("/requests", rh.CreateRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests/received", rh.GetReceivedRequests).Methods(http.MethodGet)
	mux.HandleFunc("/requests/sent", rh.GetSentRequests).Methods(http.MethodGet)
	mux.HandleFunc("/requests/{id}/status", rh.UpdateRequestStatus).Methods(http.MethodPut)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} model.BaseResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} model.BaseResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetBooks handler
// @Summary Browse books
// @Description List every available book with its owner
// @Tags Books
// @Produce json
// @Success 200 {object} model.PublicBooksResponse
// @Router /books [get]
func (s *RestHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	res, err := s.BookApp.ListBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetMyBooks handler
// @Summary My books
// @Description List the caller's books, availability flag included
// @Tags Books
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MyBooksResponse
// @Failure 401 {object} model.BaseResponse
// @Router /books/my [get]
func (s *RestHandler) GetMyBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.BookApp.ListMyBooks(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// AddBook handler
// @Summary Add book
// @Description Create a listing owned by the caller
// @Tags Books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateBookRequest true "Create Book Request"
// @Success 201 {object} model.CreateBookResponse
// @Failure 400 {object} model.BaseResponse
// @Router /books [post]
func (s *RestHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BookApp.CreateBook(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// UpdateBook handler
// @Summary Update book
// @Description Replace the mutable fields of a book the caller owns
// @Tags Books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param request body model.UpdateBookRequest true "Update Book Request"
// @Success 200 {object} model.BaseResponse
// @Failure 404 {object} model.BaseResponse
// @Router /books/{id} [put]
func (s *RestHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFoundOrUnauthorized))
		return
	}

	var req model.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BookApp.UpdateBook(ctx, bookID, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.BaseResponse{Success: true, Message: "Book updated successfully"})
}

// DeleteBook handler
// @Summary Delete book
// @Description Remove a book the caller owns
// @Tags Books
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} model.BaseResponse
// @Failure 404 {object} model.BaseResponse
// @Router /books/{id} [delete]
func (s *RestHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFoundOrUnauthorized))
		return
	}

	if err := s.BookApp.DeleteBook(ctx, bookID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.BaseResponse{Success: true, Message: "Book deleted successfully"})
}

// SearchBooks handler
// @Summary Search books
// @Description Case-insensitive title/author search over available books
// @Tags Books
// @Produce json
// @Param q query string false "Substring matched against title or author"
// @Param filter query string false "all, rent, sale or both" default(all)
// @Success 200 {object} model.SearchBooksResponse
// @Router /books/search [get]
func (s *RestHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	filterType := r.URL.Query().Get("filter")

	res, err := s.BookApp.SearchBooks(r.Context(), query, filterType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// CreateRequest handler
// @Summary Create request
// @Description Solicit a book for rent or purchase
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRequestRequest true "Create Request"
// @Success 201 {object} model.CreateRequestResponse
// @Failure 404 {object} model.BaseResponse
// @Router /requests [post]
func (s *RestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RequestApp.CreateRequest(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// GetReceivedRequests handler
// @Summary Received requests
// @Description Requests targeting the caller's books
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ReceivedRequestsResponse
// @Failure 401 {object} model.BaseResponse
// @Router /requests/received [get]
func (s *RestHandler) GetReceivedRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.RequestApp.ListReceived(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetSentRequests handler
// @Summary Sent requests
// @Description Requests the caller has created
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SentRequestsResponse
// @Failure 401 {object} model.BaseResponse
// @Router /requests/sent [get]
func (s *RestHandler) GetSentRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.RequestApp.ListSent(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// UpdateRequestStatus handler
// @Summary Update request status
// @Description Approve, reject or complete a request against one of the caller's books
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body model.UpdateRequestStatusRequest true "Status Update"
// @Success 200 {object} model.BaseResponse
// @Failure 400 {object} model.BaseResponse
// @Failure 404 {object} model.BaseResponse
// @Router /requests/{id}/status [put]
func (s *RestHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	requestID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFoundOrUnauthorized))
		return
	}

	var req model.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.RequestApp.UpdateStatus(ctx, requestID, userID, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.BaseResponse{Success: true, Message: "Request status updated"})
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if ce, ok := err.(errors.CustomError); ok {
		writeJSON(w, ce.ErrorHTTPCode(), model.BaseResponse{Success: false, Message: ce.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, model.BaseResponse{Success: false, Message: "internal server error"})
}
