package commands

import (
	"context"
	"log/slog"
	"time"

	"temple-booking/internal/domain/reservation"
	reqdto "temple-booking/internal/handler/dto/request"
	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/usecase/queries"
	"temple-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationConflict = errs.Conflict("hall is already booked for the requested time slot")

type CreateReservationResult struct {
	ReservationID uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) error
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *reservation.Services
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		services: &reservation.Services{Clock: clk, Location: loc},
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*CreateReservationResult, error) {
	params, err := req.ToParams()
	if err != nil {
		return nil, err
	}
	res, err := reservation.NewReservation(uc.services, params)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Resources().LockByID(ctx, tx.DB(), res.ResourceID()); derr != nil {
			return mapResourceLookupErr(derr)
		}

		if res.Status().Blocks() {
			if derr := ensureNoConflict(ctx, tx, res, nil); derr != nil {
				return derr
			}
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			return mapReservationWriteErr(derr)
		}
		createdID = id

		return enqueueReservationEvent(ctx, tx, TopicReservationCreated, newReservationEvent(res, nil, uc.services.Now()))
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Hall booking created",
		"reservation_id", createdID,
		"resource_id", res.ResourceID(),
		"status", res.Status())
	return &CreateReservationResult{ReservationID: createdID}, nil
}

func (uc *reservationUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) error {
	to, err := reservation.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().LockByID(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.WithCause(queries.ErrReservationNotFound, derr)
			}
			return derr
		}

		from := res.Status()
		now := uc.services.Now()
		changed, derr := res.TransitionTo(to, now)
		if derr != nil {
			return derr
		}
		if !changed {
			return nil
		}

		if res.Status().Blocks() {
			// serialise with bookings being created on the same hall
			if _, derr = tx.Resources().LockByID(ctx, tx.DB(), res.ResourceID()); derr != nil {
				return mapResourceLookupErr(derr)
			}
			self := res.ID()
			if derr = ensureNoConflict(ctx, tx, res, &self); derr != nil {
				return derr
			}
		}

		if derr = tx.Reservations().UpdateStatus(ctx, tx.DB(), res); derr != nil {
			return mapReservationWriteErr(derr)
		}
		slog.Info("Hall booking status changed",
			"reservation_id", res.ID(),
			"from", from,
			"to", res.Status())
		return enqueueReservationEvent(ctx, tx, TopicReservationStatusChanged, newReservationEvent(res, &from, now))
	})
}

func ensureNoConflict(ctx context.Context, tx shared.Tx, res *reservation.Reservation, excludeID *uuid.UUID) error {
	detector := reservation.NewConflictDetector(tx.Reads())
	clashID, conflict, err := detector.FindConflict(ctx, res.ResourceID(), res.Dates(), res.Times(), excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return errs.WithCause(ErrReservationConflict, errs.Newf("overlaps confirmed reservation %s", clashID))
	}
	return nil
}

func mapResourceLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.WithCause(queries.ErrResourceNotFound, err)
	}
	return err
}

func mapReservationWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.WithCause(ErrReservationConflict, err)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(queries.ErrResourceNotFound, err)
	default:
		return err
	}
}
