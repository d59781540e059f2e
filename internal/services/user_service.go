package services

import (
	"context"
	"strings"

	"hotel-backend/internal/auth"
	"hotel-backend/internal/cache"
	"hotel-backend/internal/models"
	"hotel-backend/internal/store"
	"hotel-backend/internal/timeutil"
)

type UserService struct {
	Users      store.UserStore
	JWTManager *auth.JWTManager
}

func NewUserService(users store.UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Users:      users,
		JWTManager: jwtManager,
	}
}

// Signup creates a new user with hashed password. First-come accounts get the
// staff role; admins are promoted through UpdateUser.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, validationf("name, email, and password are required")
	}

	// Check if user already exists
	existingUser, _ := s.Users.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, validationf("user with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	user := &models.User{
		ID:           newID("U"),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         models.RoleStaff,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Login authenticates a user and returns a JWT token. A Redis-side credential
// cache skips the bcrypt compare on repeated logins; a cold or unavailable
// cache just means the slow path.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationf("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, validationf("invalid email or password")
	}
	if !user.IsActive {
		return nil, validationf("account is disabled")
	}

	if _, ok := cache.GetCachedAuth(ctx, email, req.Password); !ok {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, validationf("invalid email or password")
		}
		cache.CacheAuth(ctx, email, req.Password, user.ID)
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// CreateUser is the admin path for provisioning accounts with a role.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, validationf("name, email, and password are required")
	}
	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !models.ValidRole(role) {
		return nil, validationf("unknown role %q", role)
	}

	existingUser, _ := s.Users.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, validationf("user with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	user := &models.User{
		ID:           newID("U"),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Users.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Users.List(ctx)
}

// UpdateUser updates an existing user. A new password invalidates any cached
// credentials for the old one.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Users.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != "" && !models.ValidRole(req.Role) {
		return nil, validationf("unknown role %q", req.Role)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	user.IsActive = req.IsActive

	if req.Password != "" {
		hashedPassword, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashedPassword
		cache.InvalidateUserAuth(ctx, user.Email)
	}

	user.UpdatedAt = timeutil.Now()
	if err := s.Users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
