package seva

import (
	"github.com/google/uuid"
)

// Seva is a catalog entry. Some sevas have no fixed amount.
type Seva struct {
	id     uuid.UUID
	name   string
	amount *Money
}

func ReconstructSeva(id uuid.UUID, name string, amount *Money) *Seva {
	return &Seva{id: id, name: name, amount: amount}
}

func (s *Seva) ID() uuid.UUID  { return s.id }
func (s *Seva) Name() string   { return s.name }
func (s *Seva) Amount() *Money { return s.amount }

type Gotra struct {
	id   uuid.UUID
	name string
}

func ReconstructGotra(id uuid.UUID, name string) *Gotra {
	return &Gotra{id: id, name: name}
}

func (g *Gotra) ID() uuid.UUID { return g.id }
func (g *Gotra) Name() string  { return g.name }
