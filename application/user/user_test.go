package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "bookshare/application/user"
	"bookshare/cmd/config"
	"bookshare/constant"
	redismocks "bookshare/mocks/repository/redis"
	usermocks "bookshare/mocks/repository/user"
	"bookshare/model"
	cerr "bookshare/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  7 * 24 * time.Hour,
			SessionExpTime: 7 * 24 * time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AuthResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "password123",
					Location: "NY",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "alice@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Username == "alice" &&
							ent.Email == "alice@example.com" &&
							ent.Location == "NY" &&
							ent.PasswordHash != "" &&
							ent.PasswordHash != "password123"
					})).
					Return(&model.UserEntity{
						ID:        1,
						Username:  "alice",
						Email:     "alice@example.com",
						Location:  "NY",
						CreatedAt: time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), 7*24*time.Hour).
					Return(nil).
					Once()
			},
			want: &model.AuthResponse{
				Success: true,
				Message: "Registration successful",
				User: model.UserInfo{
					UserID:   1,
					Username: "alice",
					Email:    "alice@example.com",
					Location: "NY",
				},
			},
			wantErr: false,
		},
		{
			name: "error: email already registered",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "taken@example.com",
					Password: "whatever",
					Location: "Berlin",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "taken@example.com"}).
					Return(&model.UserEntity{
						ID:    7,
						Email: "taken@example.com",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrEmailExists,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "password123",
					Location: "NY",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "alice@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "password123",
					Location: "NY",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "alice@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			want:    nil,
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
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.User != tt.want.User || got.Message != tt.want.Message || !got.Success {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Register() token should not be empty")
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AuthResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with valid credentials",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "alice@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "alice@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Username:     "alice",
						Email:        "alice@example.com",
						PasswordHash: string(hashedPassword),
						Location:     "NY",
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), 7*24*time.Hour).
					Return(nil).
					Once()
			},
			want: &model.AuthResponse{
				Success: true,
				Message: "Login successful",
				User: model.UserInfo{
					UserID:   1,
					Username: "alice",
					Email:    "alice@example.com",
					Location: "NY",
				},
			},
			wantErr: false,
		},
		{
			name: "error: unknown email",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "nobody@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: wrong password reports the same as unknown email",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "alice@example.com",
					Password: "wrongpassword",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "alice@example.com"}).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "alice@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				config:    testAuthConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Email:    "alice@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "alice@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
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
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.User != tt.want.User || got.Message != tt.want.Message {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	cfg := testAuthConfig()

	login := func(t *testing.T, userRepo *usermocks.UserRepository, redisRepo *redismocks.RedisRepository) string {
		t.Helper()
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID:           1,
			PasswordHash: string(hashedPassword),
		}, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), cfg.Auth.SessionExpTime).Return(nil).Once()

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		resp, err := app.Login(context.Background(), &model.LoginRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("login for token setup failed: %v", err)
		}
		return resp.Token
	}

	t.Run("success: valid token with live session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(1), nil).
			Once()

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		got, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if got != 1 {
			t.Fatalf("ValidateToken() = %v, want 1", got)
		}
	})

	t.Run("error: malformed token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), "invalid.token.string"); err == nil {
			t.Fatal("ValidateToken() expected error for malformed token")
		}
	})

	t.Run("error: token signed with a different secret", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		token := login(t, userRepo, redisRepo)

		otherCfg := testAuthConfig()
		otherCfg.Auth.JWTSecret = "a-completely-different-secret"

		app := appuser.NewUserApp(otherCfg, userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for bad signature")
		}
	})

	t.Run("error: expired session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(0), errors.New("session not found")).
			Once()

		app := appuser.NewUserApp(cfg, userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error for expired session")
		}
	})

	t.Run("error: expired token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRedisRepository(t)

		expiredCfg := testAuthConfig()
		expiredCfg.Auth.JWTExpiration = -time.Hour
		expiredCfg.Auth.SessionExpTime = -time.Hour

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID:           1,
			PasswordHash: string(hashedPassword),
		}, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(1), -time.Hour).Return(nil).Once()

		app := appuser.NewUserApp(expiredCfg, userRepo, redisRepo)
		resp, err := app.Login(context.Background(), &model.LoginRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("login for token setup failed: %v", err)
		}

		if _, err := app.ValidateToken(context.Background(), resp.Token); err == nil {
			t.Fatal("ValidateToken() expected error for expired token")
		}
	})
}
