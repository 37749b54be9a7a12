package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"payroll-service/internal/model"
	"payroll-service/pkg/apierror"
)

type AdminRepository struct {
	db Database
}

func NewAdminRepository(db Database) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (model.Admin, error) {
	var a model.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM admins WHERE username = $1`, strings.TrimSpace(username)).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Admin{}, apierror.New("NOT_FOUND", "admin not found", username, http.StatusNotFound)
	}
	if err != nil {
		return model.Admin{}, fmt.Errorf("find admin by username: %w", err)
	}
	return a, nil
}
