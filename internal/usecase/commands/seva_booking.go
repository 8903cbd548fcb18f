package commands

import (
	"context"
	"log/slog"
	"time"

	"temple-booking/internal/domain/seva"
	reqdto "temple-booking/internal/handler/dto/request"
	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/usecase/queries"
	"temple-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const gotraForeignKey = "seva_bookings_gotra_id_fkey"

type CreateSevaBookingResult struct {
	BookingID uuid.UUID
}

type SevaBookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateSevaBookingRequest) (*CreateSevaBookingResult, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSevaBookingRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateSevaBookingStatusRequest) error
}

type sevaBookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *seva.Services
}

func NewSevaBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) SevaBookingCommands {
	return &sevaBookingUseCaseImpl{
		uow:      uow,
		services: &seva.Services{Clock: clk, Location: loc},
	}
}

func (uc *sevaBookingUseCaseImpl) Create(ctx context.Context, req reqdto.CreateSevaBookingRequest) (*CreateSevaBookingResult, error) {
	params, err := req.ToParams()
	if err != nil {
		return nil, err
	}
	b, err := seva.NewBooking(uc.services, params)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := ensureMasterData(ctx, tx.Reads(), &params.SevaID, params.GotraID); derr != nil {
			return derr
		}
		id, derr := tx.SevaBookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return mapSevaBookingWriteErr(derr)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Seva booking created", "booking_id", createdID, "seva_id", b.SevaID(), "seva_date", b.SevaDate().Format(time.DateOnly))
	return &CreateSevaBookingResult{BookingID: createdID}, nil
}

func (uc *sevaBookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateSevaBookingRequest) error {
	p, err := req.ToPatch()
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.lockBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = b.Apply(uc.services, p); derr != nil {
			return derr
		}
		if derr = ensureMasterData(ctx, tx.Reads(), p.SevaID, p.GotraID); derr != nil {
			return derr
		}
		if derr = tx.SevaBookings().Update(ctx, tx.DB(), b); derr != nil {
			return mapSevaBookingWriteErr(derr)
		}
		return nil
	})
}

func (uc *sevaBookingUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateSevaBookingStatusRequest) error {
	to, err := seva.ParseStatus(req.Status)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.lockBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = b.ChangeStatus(to, uc.services.Now()); derr != nil {
			return derr
		}
		return mapSevaBookingWriteErr(tx.SevaBookings().Update(ctx, tx.DB(), b))
	})
}

func (uc *sevaBookingUseCaseImpl) lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*seva.Booking, error) {
	b, err := tx.SevaBookings().LockByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(queries.ErrSevaBookingNotFound, err)
		}
		return nil, err
	}
	return b, nil
}

// ensureMasterData checks that the referenced seva and gotra exist. Nil ids are skipped.
func ensureMasterData(ctx context.Context, reads shared.CommandReads, sevaID, gotraID *uuid.UUID) error {
	if sevaID != nil {
		if _, err := reads.SevaByID(ctx, *sevaID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithCause(queries.ErrSevaNotFound, err)
			}
			return err
		}
	}
	if gotraID != nil {
		if _, err := reads.GotraByID(ctx, *gotraID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithCause(queries.ErrGotraNotFound, err)
			}
			return err
		}
	}
	return nil
}

func mapSevaBookingWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.WithCause(queries.ErrSevaBookingNotFound, err)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		if infra.ConstraintName(err) == gotraForeignKey {
			return errs.WithCause(queries.ErrGotraNotFound, err)
		}
		return errs.WithCause(queries.ErrSevaNotFound, err)
	default:
		return err
	}
}
