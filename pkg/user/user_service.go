package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		GetUsers(ctx context.Context, searchEmail string) ([]domain.UserResponse, error)
		UpdateRole(ctx context.Context, actorID, targetID string, role string) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, targetID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	newUser := entities.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         string(domain.RoleUser),
	}

	if err := s.userRepository.CreateUser(ctx, &newUser); err != nil {
		return domain.AuthResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(newUser.ID.String(), newUser.Role)
	return domain.AuthResponse{
		Token: token,
		User:  toUserResponse(&newUser),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	found, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(found.ID.String(), found.Role)
	return domain.AuthResponse{
		Token: token,
		User:  toUserResponse(found),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	found, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(found), nil
}

func (s *userService) GetUsers(ctx context.Context, searchEmail string) ([]domain.UserResponse, error) {
	if searchEmail != "" {
		found, err := s.userRepository.GetUserByEmail(ctx, searchEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []domain.UserResponse{}, nil
			}
			return nil, err
		}
		return []domain.UserResponse{toUserResponse(found)}, nil
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	return res, nil
}

func (s *userService) UpdateRole(ctx context.Context, actorID, targetID string, role string) (domain.UserResponse, error) {
	if !domain.Role(role).Valid() {
		return domain.UserResponse{}, domain.ErrInvalidRole
	}
	// Admins must not lock themselves out of the admin role.
	if actorID == targetID {
		return domain.UserResponse{}, domain.ErrCannotChangeOwnRole
	}

	if err := s.userRepository.UpdateUserRole(ctx, targetID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	updated, err := s.userRepository.GetUserByID(ctx, targetID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(updated), nil
}

func (s *userService) DeleteUser(ctx context.Context, targetID string) error {
	if err := s.userRepository.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func toUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
