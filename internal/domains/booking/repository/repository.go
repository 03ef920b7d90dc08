package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"braidr/infras/otel"
	"braidr/infras/postgres"
	"braidr/internal/domains/booking/model"
	"braidr/shared"
	"braidr/shared/constant"
	gDto "braidr/shared/dto"
	"braidr/shared/failure"
	"braidr/shared/logger"
	gRepo "braidr/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindBlocking(ctx context.Context, stylistID string, date time.Time, excludeID string) ([]model.Booking, error)
	InsertGuarded(ctx context.Context, booking model.Booking) error
	RescheduleGuarded(ctx context.Context, booking model.Booking, fields map[string]any) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindBlocking returns the bookings occupying a stylist's day, ordered by start
// time. excludeID removes the booking's own row for reschedule checks.
func (r *repositoryImpl) FindBlocking(ctx context.Context, stylistID string, date time.Time, excludeID string) ([]model.Booking, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldStylistID,
			Value:    stylistID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldBookingDate,
			Value:    date.Format(constant.DateOnlyFormat),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.BlockingStatuses(),
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartMinute,
		SortDir: "ASC",
	}

	filter := gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}

	return r.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// InsertGuarded persists a new booking inside a transaction that serializes
// writers per stylist and day, re-checking for overlap while holding the lock.
func (r *repositoryImpl) InsertGuarded(ctx context.Context, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertGuarded")
	defer scope.End()

	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.guardOverlap(ctx, tx, booking); err != nil {
			return err
		}

		return r.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})

	return mapConstraintViolation(err)
}

// RescheduleGuarded moves an existing booking under the same per-stylist-day
// lock and overlap re-check as InsertGuarded. The booking argument carries the
// proposed date and interval; fields is the column map applied to its row.
func (r *repositoryImpl) RescheduleGuarded(ctx context.Context, booking model.Booking, fields map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RescheduleGuarded")
	defer scope.End()

	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.guardOverlap(ctx, tx, booking); err != nil {
			return err
		}

		return r.UpdateTx(ctx, tx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)) //nolint:wrapcheck
	})

	return mapConstraintViolation(err)
}

func (r *repositoryImpl) guardOverlap(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	date := booking.BookingDate.Format(constant.DateOnlyFormat)

	// Serializes concurrent writers for the same stylist and day so the
	// overlap re-check below cannot race another insert.
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", booking.StylistID+":"+date); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire booking lock: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = $1 AND %s = $2 AND %s = ANY($3) AND %s < $4 AND %s > $5 AND %s != $6",
		model.FieldID, model.TableName, model.FieldStylistID, model.FieldBookingDate,
		model.FieldStatus, model.FieldStartMinute, model.FieldEndMinute, model.FieldID,
	)

	var overlaps int

	err := tx.GetContext(ctx, &overlaps, query,
		booking.StylistID, date, pq.Array(model.BlockingStatuses()),
		booking.EndMinute, booking.StartMinute, booking.ID,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check booking overlap: %w", err)
	}

	if overlaps > 0 {
		return failure.Conflict("the requested time overlaps an existing booking") //nolint:wrapcheck
	}

	return nil
}

// mapConstraintViolation turns the exclusion constraint backstop into the same
// conflict failure the in-transaction check produces.
func mapConstraintViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		if code == constant.PqErrorCodeExclusionViolation || code == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("the requested time overlaps an existing booking") //nolint:wrapcheck
		}
	}

	return err
}
