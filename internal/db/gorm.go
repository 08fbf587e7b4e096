package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

type GormDB struct {
	db *gorm.DB
}

// NewPostgresDB connects to postgres with the given DSN.
func NewPostgresDB(dsn string) (*GormDB, error) {
	return New(postgres.Open(dsn), logger.Warn)
}

// New opens a gorm connection over any dialector.
func New(dialector gorm.Dialector, level logger.LogLevel) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Create inserts a record or a pointer to a slice of records.
func (f *GormDB) Create(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("records type must be a pointer: %T", records)
	}
	if v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return nil
	}

	if err := f.db.WithContext(ctx).Create(records).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// FindBy loads every record matching all conditions, ordered by orderBy when set.
func (f *GormDB) FindBy(ctx context.Context, conditions map[string]any, orderBy string, entity any) error {
	tx := f.db.WithContext(ctx).Where(conditions)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

func (f *GormDB) UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error {
	tx := f.db.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("updating record by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBy removes records where column compares to value with op ("=", "<", ...).
func (f *GormDB) DeleteBy(ctx context.Context, model any, column, op string, value any) (int64, error) {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s %s ?", column, op), value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}
