package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

const bcryptCost = 12

// AdminStore is the slice of the admin repository the auth service needs.
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (model.Admin, error)
}

// EmployeeStore covers every employee persistence operation used by the
// auth and employee services.
type EmployeeStore interface {
	FindByID(ctx context.Context, id int64) (model.Employee, error)
	FindByEmail(ctx context.Context, email string) (model.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, name, email, phone, passwordHash string) (model.Employee, error)
	Update(ctx context.Context, id int64, name, email, phone string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.PublicEmployee, error)
	Count(ctx context.Context) (int, error)
}

func errInvalidCredentials() error {
	return apierror.New("INVALID_CREDENTIALS", "invalid credentials", "", http.StatusBadRequest)
}

// AuthService verifies credentials and issues the stateless session
// tokens. The token is the whole session: no server-side state exists.
type AuthService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
	admins    AdminStore
	employees EmployeeStore
}

func NewAuthService(jwtSecret string, tokenTTL time.Duration, admins AdminStore, employees EmployeeStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		admins:    admins,
		employees: employees,
	}, nil
}

// LoginAdmin returns the same INVALID_CREDENTIALS error for an unknown
// username and a wrong password, so callers cannot enumerate accounts.
func (s *AuthService) LoginAdmin(ctx context.Context, username string, password string) (model.TokenResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.TokenResponse{}, apierror.New("VALIDATION_ERROR", "username and password are required", "", http.StatusBadRequest)
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return model.TokenResponse{}, errInvalidCredentials()
		}
		return model.TokenResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return model.TokenResponse{}, errInvalidCredentials()
	}

	token, err := s.signToken(admin.ID, model.RoleAdmin, admin.Username)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		Token: token,
		Role:  model.RoleAdmin,
		User:  &model.AdminInfo{ID: admin.ID, Username: admin.Username},
	}, nil
}

func (s *AuthService) LoginEmployee(ctx context.Context, email string, password string) (model.TokenResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.TokenResponse{}, apierror.New("VALIDATION_ERROR", "email and password are required", "", http.StatusBadRequest)
	}

	employee, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return model.TokenResponse{}, errInvalidCredentials()
		}
		return model.TokenResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return model.TokenResponse{}, errInvalidCredentials()
	}

	token, err := s.signToken(employee.ID, model.RoleEmployee, employee.Email)
	if err != nil {
		return model.TokenResponse{}, err
	}

	public := employee.Public()
	return model.TokenResponse{
		Token:    token,
		Role:     model.RoleEmployee,
		Employee: &public,
	}, nil
}

func (s *AuthService) SignupEmployee(ctx context.Context, name, email, password, phone string) (model.PublicEmployee, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" || password == "" {
		return model.PublicEmployee{}, apierror.New("VALIDATION_ERROR", "name, email and password are required", "", http.StatusBadRequest)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.PublicEmployee{}, apierror.New("VALIDATION_ERROR", "invalid email address", email, http.StatusBadRequest)
	}

	taken, err := s.employees.ExistsByEmail(ctx, email)
	if err != nil {
		return model.PublicEmployee{}, err
	}
	if taken {
		return model.PublicEmployee{}, apierror.New("EMAIL_TAKEN", "email already registered", email, http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.PublicEmployee{}, fmt.Errorf("hash password: %w", err)
	}

	employee, err := s.employees.Create(ctx, name, email, phone, string(hash))
	if err != nil {
		return model.PublicEmployee{}, err
	}

	return employee.Public(), nil
}

// ValidateToken checks signature, algorithm and expiry, then maps the
// claim set into AuthClaims. Validation is side-effect-free.
func (s *AuthService) ValidateToken(tokenString string) (*model.AuthClaims, error) {
	unauthorized := apierror.New("UNAUTHORIZED", "invalid or expired token", "", http.StatusUnauthorized)

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, unauthorized
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, unauthorized
	}

	subject, _ := claimsMap["sub"].(string)
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, unauthorized
	}

	roleRaw, _ := claimsMap["role"].(string)
	role, err := model.ParseRole(roleRaw)
	if err != nil {
		return nil, unauthorized
	}

	claims := &model.AuthClaims{Subject: id, Role: role}
	claims.Name, _ = claimsMap["name"].(string)
	claims.TokenID, _ = claimsMap["jti"].(string)

	return claims, nil
}

func (s *AuthService) signToken(subject int64, role model.Role, name string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.FormatInt(subject, 10),
		"role": role.String(),
		"name": name,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func isNotFound(err error) bool {
	var apiErr *apierror.APIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusNotFound
}
