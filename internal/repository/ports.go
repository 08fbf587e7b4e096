package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	FindBy(ctx context.Context, conditions map[string]any, orderBy string, entity any) error
	UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error
	DeleteBy(ctx context.Context, model any, column, op string, value any) (int64, error)
}
