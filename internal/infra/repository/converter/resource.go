package converter

import (
	"math"

	"temple-booking/internal/domain/resource"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"
)

func ResourceToInfra(r *resource.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:         r.ID(),
		Name:       r.Name(),
		Capacity:   capacityToInt32(r.Capacity()),
		Facilities: facilitiesOrEmpty(r.Facilities()),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceUpdateToInfra(r *resource.Resource) sqlc.UpdateResourceParams {
	return sqlc.UpdateResourceParams{
		ID:         r.ID(),
		Name:       r.Name(),
		Capacity:   capacityToInt32(r.Capacity()),
		Facilities: facilitiesOrEmpty(r.Facilities()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceFromInfra(row sqlc.Resources) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		row.Name,
		int(row.Capacity),
		row.Facilities,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func capacityToInt32(c int) int32 {
	if c > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(c)
}

// facilities is NOT NULL in the schema
func facilitiesOrEmpty(f []string) []string {
	if f == nil {
		return []string{}
	}
	return f
}
