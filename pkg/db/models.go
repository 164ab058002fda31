package db

import "github.com/TheViking816/DescansosCPE/pkg/core/model"

// Offer is an offer row as stored. Dates are calendar-date strings
// (YYYY-MM-DD); CreatedAt is RFC3339.
type Offer struct {
	ID            string
	OwnerID       string
	SurrenderFrom string
	SurrenderTo   string
	DesireFrom    string
	DesireTo      string
	CreatedAt     string
	Active        bool
}

// Worker is a worker row as stored, already resolved to canonical
// field names. SpecialtyName is joined in from the specialty catalog.
type Worker struct {
	ID            string
	Name          string
	Badge         string
	RestGroup     string
	RotationWeek  string
	SpecialtyCode string
	SpecialtyName string
	Phone         string
	AvatarURL     string
}

// Specialty is one entry of the job-role catalog.
type Specialty struct {
	Code string
	Name string
}

// UsageActivity is a per-badge last-activity ping.
type UsageActivity struct {
	Badge     string
	Section   string
	UpdatedAt string // RFC3339
}

// ToModel converts a stored offer to the canonical core shape.
func (o Offer) ToModel() model.Offer {
	return model.Offer{
		ID:            o.ID,
		OwnerID:       o.OwnerID,
		SurrenderFrom: o.SurrenderFrom,
		SurrenderTo:   o.SurrenderTo,
		DesireFrom:    o.DesireFrom,
		DesireTo:      o.DesireTo,
		CreatedAt:     o.CreatedAt,
		Active:        o.Active,
	}
}

// OfferFromModel converts a canonical offer back to its stored shape.
func OfferFromModel(o model.Offer) Offer {
	return Offer{
		ID:            o.ID,
		OwnerID:       o.OwnerID,
		SurrenderFrom: o.SurrenderFrom,
		SurrenderTo:   o.SurrenderTo,
		DesireFrom:    o.DesireFrom,
		DesireTo:      o.DesireTo,
		CreatedAt:     o.CreatedAt,
		Active:        o.Active,
	}
}

// ToModel converts a stored worker to the canonical core shape. This is
// the single place raw store values become typed profile fields.
func (w Worker) ToModel() model.Worker {
	return model.Worker{
		ID:            w.ID,
		Name:          w.Name,
		Badge:         w.Badge,
		RestGroup:     model.RestGroup(w.RestGroup),
		RotationWeek:  model.RotationWeek(w.RotationWeek),
		SpecialtyCode: w.SpecialtyCode,
		SpecialtyName: w.SpecialtyName,
		Phone:         w.Phone,
		AvatarURL:     w.AvatarURL,
	}
}

// OffersToModel converts a slice of stored offers.
func OffersToModel(offers []Offer) []model.Offer {
	out := make([]model.Offer, len(offers))
	for i, o := range offers {
		out[i] = o.ToModel()
	}
	return out
}

// WorkersByID builds the canonical profile lookup the core components
// consume.
func WorkersByID(workers []Worker) map[string]model.Worker {
	m := make(map[string]model.Worker, len(workers))
	for _, w := range workers {
		m[w.ID] = w.ToModel()
	}
	return m
}
