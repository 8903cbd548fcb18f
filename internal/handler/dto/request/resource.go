package request

import "temple-booking/internal/domain/resource"

type CreateResourceRequest struct {
	Name       string   `json:"name" binding:"required,max=200"`
	Capacity   int      `json:"capacity" binding:"required,min=1"`
	Facilities []string `json:"facilities" binding:"omitempty,dive,max=100"`
}

// UpdateResourceRequest is a partial update. Omitted fields keep their value.
type UpdateResourceRequest struct {
	Name       *string   `json:"name" binding:"omitempty,max=200"`
	Capacity   *int      `json:"capacity" binding:"omitempty,min=1"`
	Facilities *[]string `json:"facilities" binding:"omitempty,dive,max=100"`
}

func (r UpdateResourceRequest) ToPatch() resource.Patch {
	return resource.Patch{
		Name:       r.Name,
		Capacity:   r.Capacity,
		Facilities: r.Facilities,
	}
}

type ListQuery struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}
