package main

import (
	"context"
	"net/http"

	bookapp "bookshare/application/book"
	requestapp "bookshare/application/request"
	userapp "bookshare/application/user"
	"bookshare/cmd/config"
	redisclient "bookshare/cmd/redis"
	_ "bookshare/docs"
	bookRepo "bookshare/repository/book"
	redisRepo "bookshare/repository/redis"
	requestRepo "bookshare/repository/request"
	"bookshare/repository/schema"
	txRepo "bookshare/repository/tx"
	userRepo "bookshare/repository/user"
	"bookshare/transport"
	"bookshare/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title BookShare API
// @version 1.0
// @description Book-sharing marketplace API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Create tables if absent
	if err := schema.Init(context.Background(), db); err != nil {
		logger.Fatal("err init schema", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	BookRepo := bookRepo.NewBookRepository(db)
	RequestRepo := requestRepo.NewRequestRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	BookApp := bookapp.NewBookApp(TxRepo, BookRepo)
	RequestApp := requestapp.NewRequestApp(TxRepo, RequestRepo, BookRepo)

	httpTransport := transport.NewTransport(UserApp, BookApp, RequestApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
