package response

import (
	"time"

	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Capacity   int32     `json:"capacity"`
	Facilities []string  `json:"facilities"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	resp := mustCopy[ResourceResponse](v)
	if resp.Facilities == nil {
		resp.Facilities = []string{}
	}
	return resp
}

func FromResourceList(items []*queries.ResourceView) []*ResourceResponse {
	res := make([]*ResourceResponse, len(items))
	for i, it := range items {
		res[i] = FromResourceView(it)
	}
	return res
}
