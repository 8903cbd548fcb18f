package commands

import (
	"context"
	"log/slog"

	"temple-booking/internal/domain/resource"
	reqdto "temple-booking/internal/handler/dto/request"
	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNameTaken = errs.Conflict("a hall with this name already exists")
	ErrResourceInUse     = errs.Conflict("hall has bookings and cannot be deleted")
)

type CreateResourceResult struct {
	ResourceID uuid.UUID
}

type ResourceCommands interface {
	Create(ctx context.Context, req reqdto.CreateResourceRequest) (*CreateResourceResult, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateResourceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewResourceUseCase(uow shared.UnitOfWork, clk clock.Clock) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *resourceUseCaseImpl) Create(ctx context.Context, req reqdto.CreateResourceRequest) (*CreateResourceResult, error) {
	r, err := resource.NewResource(req.Name, req.Capacity, req.Facilities, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Reads().ResourceNameTaken(ctx, r.Name(), nil)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrResourceNameTaken
		}
		id, derr := tx.Resources().Create(ctx, tx.DB(), r)
		if derr != nil {
			return mapResourceWriteErr(derr)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Hall created", "resource_id", createdID, "name", r.Name())
	return &CreateResourceResult{ResourceID: createdID}, nil
}

func (uc *resourceUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateResourceRequest) error {
	p := req.ToPatch()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Resources().LockByID(ctx, tx.DB(), id)
		if derr != nil {
			return mapResourceLookupErr(derr)
		}

		renamed := r.NameChanged(p)
		if derr = r.Apply(p, uc.clock.Now()); derr != nil {
			return derr
		}
		if renamed {
			taken, err := tx.Reads().ResourceNameTaken(ctx, r.Name(), &id)
			if err != nil {
				return err
			}
			if taken {
				return ErrResourceNameTaken
			}
		}

		if derr = tx.Resources().Update(ctx, tx.DB(), r); derr != nil {
			return mapResourceWriteErr(derr)
		}
		return nil
	})
}

// Delete refuses while any booking references the hall, cancelled ones included.
func (uc *resourceUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Resources().LockByID(ctx, tx.DB(), id); derr != nil {
			return mapResourceLookupErr(derr)
		}
		n, derr := tx.Reads().CountReservationsByResource(ctx, id)
		if derr != nil {
			return derr
		}
		if n > 0 {
			return ErrResourceInUse
		}
		if derr = tx.Resources().Delete(ctx, tx.DB(), id); derr != nil {
			return mapResourceWriteErr(derr)
		}
		slog.Info("Hall deleted", "resource_id", id)
		return nil
	})
}

func mapResourceWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return mapResourceLookupErr(err)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.WithCause(ErrResourceNameTaken, err)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(ErrResourceInUse, err)
	default:
		return err
	}
}
