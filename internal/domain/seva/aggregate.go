package seva

import (
	"sort"
	"time"

	"temple-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Line is one booking joined with its seva and gotra.
type Line struct {
	BookingID   uuid.UUID
	ReceiptDate time.Time
	SevaDate    time.Time
	SevaID      uuid.UUID
	SevaName    string
	SevaAmount  *Money
	Name        string
	MobileNo    string
	GotraName   *string
	Address     *string
	Remarks     *string
	Status      Status
}

// DateFilter bounds seva dates; either end may be open. Both ends are inclusive.
type DateFilter struct {
	From *time.Time
	To   *time.Time
}

type ServiceSummary struct {
	SevaID      uuid.UUID
	SevaName    string
	SevaAmount  *Money
	Count       int
	TotalAmount Money
	Bookings    []Line
}

// ByService totals the bookings of one seva. A seva without an amount adds
// nothing to the total but its bookings are still listed.
func ByService(s *Seva, lines []Line) ServiceSummary {
	out := ServiceSummary{
		SevaID:     s.ID(),
		SevaName:   s.Name(),
		SevaAmount: s.Amount(),
		Bookings:   make([]Line, 0, len(lines)),
	}
	for _, l := range lines {
		if l.SevaID != s.ID() {
			continue
		}
		out.Count++
		out.TotalAmount = sumAmount(out.TotalAmount, l.SevaAmount)
		out.Bookings = append(out.Bookings, l)
	}
	return out
}

type ServiceCount struct {
	SevaID   uuid.UUID
	SevaName string
	Count    int
}

type DateEntry struct {
	Date        time.Time
	Count       int
	TotalAmount Money
	Services    []ServiceCount
	Bookings    []Line
}

type dateAcc struct {
	entry    DateEntry
	services *orderedGroup[uuid.UUID, ServiceCount]
}

// ByDate groups bookings per seva date, ascending. The per-seva breakdown of
// each date keeps the order sevas were first seen in.
func ByDate(lines []Line) []DateEntry {
	groups := newOrderedGroup[time.Time, dateAcc]()
	for _, l := range lines {
		day := clock.DateOf(l.SevaDate)
		acc := groups.get(day, func() dateAcc {
			return dateAcc{
				entry:    DateEntry{Date: day},
				services: newOrderedGroup[uuid.UUID, ServiceCount](),
			}
		})
		acc.entry.Count++
		acc.entry.TotalAmount = sumAmount(acc.entry.TotalAmount, l.SevaAmount)
		acc.entry.Bookings = append(acc.entry.Bookings, l)

		svc := acc.services.get(l.SevaID, func() ServiceCount {
			return ServiceCount{SevaID: l.SevaID, SevaName: l.SevaName}
		})
		svc.Count++
	}

	out := make([]DateEntry, 0, groups.len())
	for _, acc := range groups.values() {
		acc.entry.Services = acc.services.values()
		out = append(out, acc.entry)
	}
	sortByDate(out, func(e DateEntry) time.Time { return e.Date })
	return out
}

type SevaTotal struct {
	SevaID      uuid.UUID
	SevaName    string
	SevaAmount  *Money
	Count       int
	TotalAmount Money
}

type DateTotal struct {
	Date        time.Time
	Count       int
	TotalAmount Money
}

type Selection struct {
	SevaIDs     []uuid.UUID
	TotalCount  int
	TotalAmount Money
	BySeva      []SevaTotal
	ByDate      []DateTotal
	Bookings    []Line
}

// NormalizeSelection drops duplicate ids, keeping the first occurrence.
func NormalizeSelection(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// BySelection accumulates totals, per-seva and per-date groups in one pass
// over the bookings of the selected sevas.
func BySelection(ids []uuid.UUID, lines []Line) (Selection, error) {
	ids, err := NormalizeSelection(ids)
	if err != nil {
		return Selection{}, err
	}
	selected := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	out := Selection{SevaIDs: ids, Bookings: make([]Line, 0, len(lines))}
	bySeva := newOrderedGroup[uuid.UUID, SevaTotal]()
	byDate := newOrderedGroup[time.Time, DateTotal]()

	for _, l := range lines {
		if _, ok := selected[l.SevaID]; !ok {
			continue
		}
		out.TotalCount++
		out.TotalAmount = sumAmount(out.TotalAmount, l.SevaAmount)
		out.Bookings = append(out.Bookings, l)

		s := bySeva.get(l.SevaID, func() SevaTotal {
			return SevaTotal{SevaID: l.SevaID, SevaName: l.SevaName, SevaAmount: l.SevaAmount}
		})
		s.Count++
		s.TotalAmount = sumAmount(s.TotalAmount, l.SevaAmount)

		day := clock.DateOf(l.SevaDate)
		d := byDate.get(day, func() DateTotal { return DateTotal{Date: day} })
		d.Count++
		d.TotalAmount = sumAmount(d.TotalAmount, l.SevaAmount)
	}

	out.BySeva = bySeva.values()
	out.ByDate = byDate.values()
	sortByDate(out.ByDate, func(d DateTotal) time.Time { return d.Date })
	return out, nil
}

// orderedGroup is a map that remembers insertion order.
type orderedGroup[K comparable, V any] struct {
	keys  []K
	items map[K]*V
}

func newOrderedGroup[K comparable, V any]() *orderedGroup[K, V] {
	return &orderedGroup[K, V]{items: make(map[K]*V)}
}

func (g *orderedGroup[K, V]) get(k K, init func() V) *V {
	if v, ok := g.items[k]; ok {
		return v
	}
	v := init()
	g.items[k] = &v
	g.keys = append(g.keys, k)
	return &v
}

func (g *orderedGroup[K, V]) len() int { return len(g.keys) }

func (g *orderedGroup[K, V]) values() []V {
	out := make([]V, 0, len(g.keys))
	for _, k := range g.keys {
		out = append(out, *g.items[k])
	}
	return out
}

func sortByDate[T any](items []T, date func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return date(items[i]).Before(date(items[j]))
	})
}
