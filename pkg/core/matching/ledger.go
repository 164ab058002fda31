package matching

import "github.com/TheViking816/DescansosCPE/pkg/core/model"

// ProjectedRestDays derives the worker's rest-day ledger for the
// calendar month containing the candidate's desire-start date: starting
// from the base monthly quota, every day-in-month the worker cedes via
// an offer's surrender range is subtracted and every day-in-month they
// gain via a desire range is added, across their existing offers and
// the candidate. The ledger is never stored; it is recomputed from the
// offer set on every call.
func ProjectedRestDays(workerID string, surrender, desire model.DateRange, existing []model.Offer, base int) int {
	year, month := desire.From.Year(), desire.From.Month()

	rest := base
	for _, offer := range existing {
		if offer.OwnerID != workerID {
			continue
		}

		s, err := offer.SurrenderRange()
		if err != nil {
			continue
		}
		d, err := offer.DesireRange()
		if err != nil {
			continue
		}

		rest -= s.DaysInMonth(year, month)
		rest += d.DaysInMonth(year, month)
	}

	rest -= surrender.DaysInMonth(year, month)
	rest += desire.DaysInMonth(year, month)

	return rest
}
