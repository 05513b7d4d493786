package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reinsure/internal/database"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Create(admin).Error
	if database.IsDuplicateKey(err) {
		return ErrEmailExists
	}
	return err
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	var admin Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	if err := r.db.WithContext(ctx).First(&admin, "email = ?", email).Error; err != nil {
		return nil, notFound(err)
	}
	return &admin, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAdminNotFound
	}
	return err
}
