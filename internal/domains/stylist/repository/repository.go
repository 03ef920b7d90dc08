package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"braidr/infras/otel"
	"braidr/infras/postgres"
	"braidr/internal/domains/stylist/model"
	"braidr/shared/constant"
	gDto "braidr/shared/dto"
	gRepo "braidr/shared/repository"
)

type Stylist interface {
	Insert(ctx context.Context, model model.Stylist) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Stylist, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Stylist, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetWorkingHour(ctx context.Context, stylistID string, weekday int) (model.WorkingHour, error)
	GetWorkingHours(ctx context.Context, stylistID string) ([]model.WorkingHour, error)
	ReplaceWorkingHours(ctx context.Context, stylistID string, hours []model.WorkingHour) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Stylist]
	hours gRepo.Repository[model.WorkingHour]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Stylist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Stylist](model.EntityName, model.TableName, model.FieldID, db, otel),
		hours:      gRepo.NewRepository[model.WorkingHour](model.HoursEntityName, model.HoursTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetWorkingHour(ctx context.Context, stylistID string, weekday int) (model.WorkingHour, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStylistID,
				Value:    stylistID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
			gDto.Filter{
				Field:    model.FieldWeekday,
				Value:    weekday,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
		},
	}

	return r.hours.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetWorkingHours(ctx context.Context, stylistID string) ([]model.WorkingHour, error) {
	params := gDto.QueryParams{
		SortBy:  model.FieldWeekday,
		SortDir: "ASC",
	}

	return r.hours.GetAll(ctx, params, hoursFilter(stylistID)) //nolint:wrapcheck
}

// ReplaceWorkingHours swaps a stylist's whole weekly schedule in one transaction.
func (r *repositoryImpl) ReplaceWorkingHours(ctx context.Context, stylistID string, hours []model.WorkingHour) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stylist.ReplaceWorkingHours")
	defer scope.End()

	return r.db.WithinTx(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if err := r.hours.DeleteTx(ctx, tx, hoursFilter(stylistID)); err != nil {
			return err
		}

		for _, hour := range hours {
			if err := r.hours.InsertTx(ctx, tx, hour); err != nil {
				return err
			}
		}

		return nil
	})
}

func hoursFilter(stylistID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStylistID,
				Value:    stylistID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.HoursTableName,
			},
		},
	}
}
