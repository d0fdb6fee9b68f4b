package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/nvelez/tripmate/internal/auth"
	"github.com/nvelez/tripmate/internal/models"
	"github.com/nvelez/tripmate/internal/storage"
	"github.com/nvelez/tripmate/pkg/api"
)

var errMissingFields = errors.New("email, username and password are required")

// UserService implements the tripmate.v1.UserService procedures: account
// creation and login. Sessions are stateless; login returns a signed token.
type UserService struct {
	store      storage.Store
	jwtManager *auth.JWTManager
}

// NewUserService creates a new UserService.
func NewUserService(store storage.Store, jwtManager *auth.JWTManager) *UserService {
	return &UserService{store: store, jwtManager: jwtManager}
}

// Mount registers the service's procedures on the mux.
func (s *UserService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	opts = withJSONCodec(opts)
	mux.Handle(api.UserServiceCreateUserProcedure,
		connect.NewUnaryHandler(api.UserServiceCreateUserProcedure, s.CreateUser, opts...))
	mux.Handle(api.UserServiceLoginUserProcedure,
		connect.NewUnaryHandler(api.UserServiceLoginUserProcedure, s.LoginUser, opts...))
}

// CreateUser registers a new account with a bcrypt-hashed password. Email
// and username must both be unique.
func (s *UserService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	msg := req.Msg
	if msg.Email == "" || msg.Username == "" || msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingFields)
	}
	if err := auth.ValidatePassword(msg.Password); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if existing, err := s.store.GetUserByEmail(ctx, msg.Email); err != nil {
		slog.Error("CreateUser: email lookup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	} else if existing != nil {
		return nil, connect.NewError(connect.CodeAlreadyExists, auth.ErrEmailExists)
	}
	if existing, err := s.store.GetUserByUsername(ctx, msg.Username); err != nil {
		slog.Error("CreateUser: username lookup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	} else if existing != nil {
		return nil, connect.NewError(connect.CodeAlreadyExists, auth.ErrUsernameExists)
	}

	hash, err := auth.HashPassword(msg.Password)
	if err != nil {
		slog.Error("CreateUser: hashing failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	user := &models.User{
		Email:        msg.Email,
		Username:     msg.Username,
		PasswordHash: hash,
		FirstName:    msg.FirstName,
		LastName:     msg.LastName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		slog.Error("CreateUser failed", "email", msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("User created", "user_id", user.ID, "username", user.Username)

	return connect.NewResponse(&api.CreateUserResponse{User: toAPIUser(user)}), nil
}

// LoginUser verifies the credentials and returns the user with a signed
// token. Unknown email and wrong password yield the same error.
func (s *UserService) LoginUser(ctx context.Context, req *connect.Request[api.LoginUserRequest]) (*connect.Response[api.LoginUserResponse], error) {
	msg := req.Msg
	if msg.Email == "" || msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.store.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		slog.Error("LoginUser: lookup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		slog.Warn("LoginUser: unknown email", "email", msg.Email)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	if err := auth.CheckPassword(user.PasswordHash, msg.Password); err != nil {
		slog.Warn("LoginUser: bad password", "user_id", user.ID)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("LoginUser: token generation failed", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("User logged in", "user_id", user.ID)

	return connect.NewResponse(&api.LoginUserResponse{
		User:  toAPIUser(user),
		Token: token,
	}), nil
}

func toAPIUser(user *models.User) api.User {
	return api.User{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
