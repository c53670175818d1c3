package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/ordertrack/internal/domain"
)

const (
	findQuery   = "SELECT id, username, role, password_hash, salt FROM users WHERE username = $1"
	createQuery = "INSERT INTO users (username, role, password_hash, salt) VALUES ($1, $2, $3, $4) RETURNING id"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "bob",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "role", "password_hash", "salt"}).
					AddRow(1, "bob", "customer", "hashed_password", "salt")
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("bob").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Username:     "bob",
				Role:         domain.RoleCustomer,
				PasswordHash: "hashed_password",
				Salt:         "salt",
			},
		},
		{
			name:     "User not found",
			username: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "bob",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findQuery)).
					WithArgs("bob").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	newUser := func() *domain.User {
		return &domain.User{
			Username:     "bob",
			Role:         domain.RoleCustomer,
			PasswordHash: "hashed_password",
			Salt:         "salt",
		}
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
		result      *domain.User
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("bob", "customer", "hashed_password", "salt").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			result: &domain.User{
				ID:           1,
				Username:     "bob",
				Role:         domain.RoleCustomer,
				PasswordHash: "hashed_password",
				Salt:         "salt",
			},
		},
		{
			name: "Duplicate username",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("bob", "customer", "hashed_password", "salt").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
			},
			expectErr:   true,
			expectedErr: domain.ErrDuplicateUser,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs("bob", "customer", "hashed_password", "salt").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), newUser())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.NotErrorIs(t, err, domain.ErrDuplicateUser)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
