package repository

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/ds"
)

type Repository struct {
	db *gorm.DB
}

// New — подключение к Postgres по строке DSN.
// TranslateError нужен, чтобы нарушение уникальности номера путевого
// листа приходило как gorm.ErrDuplicatedKey независимо от драйвера.
func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &Repository{db: db}, nil
}

// NewWithDB — репозиторий поверх готового подключения (тесты используют sqlite)
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate — актуализация схемы. На проде схема уже развернута,
// AutoMigrate в этом случае ничего не меняет.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&ds.User{},
		&ds.Vehicle{},
		&ds.Driver{},
		&ds.TransportRequest{},
		&ds.Route{},
		&ds.Waybill{},
	)
}

// GetUserByUsername - поиск пользователя по точному совпадению логина
func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser - создание пользователя (сидирование и тесты)
func (r *Repository) CreateUser(user *ds.User) error {
	return r.db.Create(user).Error
}
