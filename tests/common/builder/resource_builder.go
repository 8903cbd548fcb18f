//go:build unit || e2e

package builder

import (
	"time"

	"temple-booking/internal/domain/resource"
	reqdto "temple-booking/internal/handler/dto/request"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID         uuid.UUID
	Name       string
	Capacity   int
	Facilities []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:         uuid.New(),
		Name:       "Auditorium",
		Capacity:   300,
		Facilities: []string{"Stage", "Sound system"},
		CreatedAt:  FixedNow,
		UpdatedAt:  FixedNow,
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(b.ID, b.Name, b.Capacity, b.Facilities, b.CreatedAt, b.UpdatedAt)
}

func (b *ResourceBuilder) BuildCreateRequestDTO() reqdto.CreateResourceRequest {
	return reqdto.CreateResourceRequest{
		Name:       b.Name,
		Capacity:   b.Capacity,
		Facilities: b.Facilities,
	}
}

func (b *ResourceBuilder) BuildViewQuery() *queries.ResourceView {
	return &queries.ResourceView{
		ID:         b.ID,
		Name:       b.Name,
		Capacity:   int32(b.Capacity),
		Facilities: b.Facilities,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *ResourceBuilder) BuildInfra() sqlc.Resources {
	return sqlc.Resources{
		ID:         b.ID,
		Name:       b.Name,
		Capacity:   int32(b.Capacity),
		Facilities: b.Facilities,
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt),
	}
}
