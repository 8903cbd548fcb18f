package resource

import (
	"strings"
	"time"

	"temple-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errs.Validation("hall name cannot be empty")
	ErrResourceNameTooLong = errs.Validation("hall name is too long (max 200 characters)")
	ErrInvalidCapacity     = errs.Validation("hall capacity must be positive")
)

const (
	MaxResourceNameLength = 200
)

// Resource is a bookable hall.
type Resource struct {
	id         uuid.UUID
	name       string
	capacity   int
	facilities []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewResource(name string, capacity int, facilities []string, now time.Time) (*Resource, error) {
	n, err := validateResourceName(name)
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}

	return &Resource{
		id:         uuid.New(),
		name:       n,
		capacity:   capacity,
		facilities: normalizeFacilities(facilities),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructResource(id uuid.UUID, name string, capacity int, facilities []string, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:         id,
		name:       name,
		capacity:   capacity,
		facilities: facilities,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Patch holds optional replacements; nil fields keep the current value.
type Patch struct {
	Name       *string
	Capacity   *int
	Facilities *[]string
}

func (r *Resource) Apply(p Patch, now time.Time) error {
	name := r.name
	if p.Name != nil {
		n, err := validateResourceName(*p.Name)
		if err != nil {
			return err
		}
		name = n
	}
	capacity := r.capacity
	if p.Capacity != nil {
		if err := validateCapacity(*p.Capacity); err != nil {
			return err
		}
		capacity = *p.Capacity
	}
	facilities := r.facilities
	if p.Facilities != nil {
		facilities = normalizeFacilities(*p.Facilities)
	}

	r.name = name
	r.capacity = capacity
	r.facilities = facilities
	r.updatedAt = now
	return nil
}

// NameChanged reports whether p renames the hall.
func (r *Resource) NameChanged(p Patch) bool {
	return p.Name != nil && strings.TrimSpace(*p.Name) != r.name
}

func validateResourceName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyResourceName
	}
	if len([]rune(name)) > MaxResourceNameLength {
		return "", ErrResourceNameTooLong
	}
	return name, nil
}

func validateCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

func normalizeFacilities(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, f := range in {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Capacity() int        { return r.capacity }
func (r *Resource) Facilities() []string { return r.facilities }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
