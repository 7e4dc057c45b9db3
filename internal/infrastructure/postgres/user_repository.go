package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, company_id, email, name, password_hash, role, is_active, last_login, created_at, updated_at`

// Create persiste un nuevo usuario. El email es único en todo el sistema.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, company_id, email, name, password_hash, role, is_active, last_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.CompanyID, user.Email, user.Name, user.PasswordHash,
		user.Role, user.IsActive, user.LastLogin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario activo de la empresa indicada.
// Un usuario de otra empresa responde igual que uno inexistente.
func (r *UserRepo) GetByID(ctx context.Context, companyID, id string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE id = $1 AND company_id = $2 AND is_active = TRUE`
	return r.scanOne(r.q.QueryRow(ctx, query, id, companyID))
}

// FindByEmail busca un usuario activo por email (global, solo para login).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE email = $1 AND is_active = TRUE`
	return r.scanOne(r.q.QueryRow(ctx, query, email))
}

// Update actualiza name, role y password_hash bajo el filtro de empresa.
// company_id y email no se tocan: son inmutables después de crear.
func (r *UserRepo) Update(ctx context.Context, companyID string, user *entity.User) error {
	query := `
		UPDATE users SET name = $3, role = $4, password_hash = $5, updated_at = $6
		WHERE id = $1 AND company_id = $2 AND is_active = TRUE`
	_, err := r.q.Exec(ctx, query,
		user.ID, companyID, user.Name, user.Role, user.PasswordHash, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateLastLogin marca el último inicio de sesión.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

// ListByCompany lista usuarios activos de la empresa con paginación.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE company_id = $1 AND is_active = TRUE
		ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Deactivate baja lógica del usuario bajo el filtro de empresa.
func (r *UserRepo) Deactivate(ctx context.Context, companyID, id string) error {
	query := `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// DeactivateByCompany baja lógica de todos los usuarios de la empresa
// (cascada del cierre de empresa).
func (r *UserRepo) DeactivateByCompany(ctx context.Context, companyID string) error {
	query := `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE company_id = $1`
	_, err := r.q.Exec(ctx, query, companyID)
	if err != nil {
		return fmt.Errorf("deactivate users by company: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.CompanyID, &u.Email, &u.Name, &u.PasswordHash,
		&u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) scanRow(rows pgx.Rows) (*entity.User, error) {
	var u entity.User
	if err := rows.Scan(&u.ID, &u.CompanyID, &u.Email, &u.Name, &u.PasswordHash,
		&u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
