package services

import (
	"context"
	"errors"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/golang-jwt/jwt/v5"

	"enhancives/internal/domain"
	"enhancives/internal/repository"
	"enhancives/internal/util"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInternalError      = errors.New("internal server error")
)

type SignUpInput struct {
	Username string `valid:"required,length(3|20)"`
	Password string `valid:"required,length(3|64)"`
}

type SignInInput struct {
	Username string `valid:"required,length(3|20)"`
	Password string `valid:"required,length(3|64)"`
}

type AuthService struct {
	userRepo repository.UserRepository
	jwtKey   string
}

func NewAuthService(userRepo repository.UserRepository, jwtKey string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtKey:   jwtKey,
	}
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*domain.User, string, error) {
	if err := validateInput(input); err != nil {
		return nil, "", err
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, "", ErrInternalError
	}

	user := &domain.User{
		Username: input.Username,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", ErrInternalError
	}

	token, err := s.generateJWTToken(user)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return user, token, nil
}

func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*domain.User, string, error) {
	if err := validateInput(input); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", ErrInternalError
	}

	if err := util.CheckPassword(user.Password, input.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateJWTToken(user)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return user, token, nil
}

func validateInput(input interface{}) error {
	if _, err := govalidator.ValidateStruct(input); err != nil {
		return ErrInvalidInput
	}
	return nil
}

func (s *AuthService) generateJWTToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID.String(),
		"username": user.Username,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtKey))
}
