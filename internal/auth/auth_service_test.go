package auth_test

import (
	"context"
	"testing"
	"time"

	"go-leave/internal/auth"
	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	createFn     func(ctx context.Context, user *auth.User) error
	getByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeEmployeeLookup struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeLookup) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	employeeID := uuid.New()
	user := &auth.User{
		ID:         uuid.New(),
		EmployeeID: &employeeID,
		Name:       "Budi Santoso",
		Email:      "budi@example.com",
		Password:   hashPassword(t, "password123"),
		Role:       rbac.RoleEmployee,
		IsActive:   true,
	}

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := auth.NewService(repo, &fakeEmployeeLookup{})

	t.Run("success issues tokens carrying identity claims", func(t *testing.T) {
		accessToken, refreshToken, resp, err := service.Login(ctx, user.Email, "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
		assert.Equal(t, rbac.RoleEmployee, resp.Role)

		claims := parseClaims(t, accessToken)
		assert.Equal(t, user.ID.String(), claims["user_id"])
		assert.Equal(t, employeeID.String(), claims["employee_id"])
		assert.Equal(t, rbac.RoleEmployee, claims["role"])
	})

	t.Run("success without employee link leaves claim empty", func(t *testing.T) {
		adminUser := &auth.User{
			ID:       uuid.New(),
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: hashPassword(t, "admin-password"),
			Role:     rbac.RoleAdmin,
			IsActive: true,
		}
		adminRepo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return adminUser, nil
			},
		}
		adminService := auth.NewService(adminRepo, &fakeEmployeeLookup{})

		accessToken, _, resp, err := adminService.Login(ctx, adminUser.Email, "admin-password")

		require.NoError(t, err)
		assert.Empty(t, resp.EmployeeID)

		claims := parseClaims(t, accessToken)
		assert.Equal(t, "", claims["employee_id"])
		assert.Equal(t, rbac.RoleAdmin, claims["role"])
	})

	t.Run("negative case wrong password", func(t *testing.T) {
		_, _, _, err := service.Login(ctx, user.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative case unknown email", func(t *testing.T) {
		_, _, _, err := service.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative case disabled account", func(t *testing.T) {
		disabled := &auth.User{
			ID:       uuid.New(),
			Email:    "off@example.com",
			Password: hashPassword(t, "password123"),
			Role:     rbac.RoleEmployee,
			IsActive: false,
		}
		disabledRepo := &fakeAuthRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return disabled, nil
			},
		}
		disabledService := auth.NewService(disabledRepo, &fakeEmployeeLookup{})

		_, _, _, err := disabledService.Login(ctx, disabled.Email, "password123")
		assert.ErrorIs(t, err, autherrors.ErrAccountDisabled)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	employeeID := uuid.New()
	user := &auth.User{
		ID:         uuid.New(),
		EmployeeID: &employeeID,
		Name:       "Budi Santoso",
		Email:      "budi@example.com",
		Password:   hashPassword(t, "password123"),
		Role:       rbac.RoleEmployee,
		IsActive:   true,
	}

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := auth.NewService(repo, &fakeEmployeeLookup{})

	t.Run("success rotates both tokens", func(t *testing.T) {
		_, refreshToken, _, err := service.Login(ctx, user.Email, "password123")
		require.NoError(t, err)

		newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, user.ID.String(), resp.ID)

		claims := parseClaims(t, newAccess)
		assert.Equal(t, user.ID.String(), claims["user_id"])
	})

	t.Run("negative case garbage token", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("negative case token signed with another secret", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID.String(),
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		forgedString, err := forged.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, _, _, refreshErr := service.RefreshToken(ctx, forgedString)
		assert.ErrorIs(t, refreshErr, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("negative case expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID.String(),
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})
		expiredString, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, _, _, refreshErr := service.RefreshToken(ctx, expiredString)
		assert.ErrorIs(t, refreshErr, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("negative case user no longer exists", func(t *testing.T) {
		orphan := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.NewString(),
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		orphanString, err := orphan.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, _, _, refreshErr := service.RefreshToken(ctx, orphanString)
		assert.ErrorIs(t, refreshErr, autherrors.ErrUserNotFound)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	user := &auth.User{
		ID:       uuid.New(),
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Role:     rbac.RoleEmployee,
		IsActive: true,
	}
	repo := &fakeAuthRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := auth.NewService(repo, &fakeEmployeeLookup{})

	t.Run("success", func(t *testing.T) {
		resp, err := service.GetMe(ctx, user.ID.String())

		require.NoError(t, err)
		assert.Equal(t, user.Email, resp.Email)
		assert.Equal(t, user.Role, resp.Role)
	})

	t.Run("negative case malformed user id", func(t *testing.T) {
		_, err := service.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("negative case user not found", func(t *testing.T) {
		_, err := service.GetMe(ctx, uuid.NewString())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success links employee and stores a hash", func(t *testing.T) {
		employeeID := uuid.New()
		employees := &fakeEmployeeLookup{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				assert.Equal(t, employeeID.String(), id)
				return &employee.Employee{ID: employeeID, FullName: "Budi Santoso"}, nil
			},
		}

		var created *auth.User
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				created = user
				return nil
			},
		}
		service := auth.NewService(repo, employees)

		resp, err := service.Register(ctx, auth.RegisterRequest{
			EmployeeID: employeeID.String(),
			Email:      "budi@example.com",
			Name:       "Budi Santoso",
			Password:   "password123",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, rbac.RoleEmployee, created.Role)
		assert.True(t, created.IsActive)
		require.NotNil(t, created.EmployeeID)
		assert.Equal(t, employeeID, *created.EmployeeID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
	})

	t.Run("success without employee link", func(t *testing.T) {
		employees := &fakeEmployeeLookup{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				t.Fatal("employee lookup must not run when no employee id is given")
				return nil, nil
			},
		}

		var created *auth.User
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				created = user
				return nil
			},
		}
		service := auth.NewService(repo, employees)

		resp, err := service.Register(ctx, auth.RegisterRequest{
			Email:    "standalone@example.com",
			Name:     "Standalone",
			Password: "password123",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Nil(t, created.EmployeeID)
		assert.Empty(t, resp.EmployeeID)
	})

	t.Run("negative case unknown employee", func(t *testing.T) {
		service := auth.NewService(&fakeAuthRepository{}, &fakeEmployeeLookup{})

		_, err := service.Register(ctx, auth.RegisterRequest{
			EmployeeID: uuid.NewString(),
			Email:      "budi@example.com",
			Name:       "Budi Santoso",
			Password:   "password123",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative case duplicate email", func(t *testing.T) {
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"}
			},
		}
		service := auth.NewService(repo, &fakeEmployeeLookup{})

		_, err := service.Register(ctx, auth.RegisterRequest{
			Email:    "duplicate@example.com",
			Name:     "Dupe",
			Password: "password123",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("negative case employee already has an account", func(t *testing.T) {
		employeeID := uuid.New()
		employees := &fakeEmployeeLookup{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &employee.Employee{ID: employeeID}, nil
			},
		}
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_employee"}
			},
		}
		service := auth.NewService(repo, employees)

		_, err := service.Register(ctx, auth.RegisterRequest{
			EmployeeID: employeeID.String(),
			Email:      "second@example.com",
			Name:       "Second Account",
			Password:   "password123",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmployeeAlreadyLinked)
	})
}
