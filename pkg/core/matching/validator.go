package matching

import (
	"fmt"

	"github.com/teambition/rrule-go"

	"github.com/TheViking816/DescansosCPE/pkg/core/model"
)

// Blackout marks facility peak days on which rest days cannot be
// surrendered. Occurrences come from a recurrence rule supplied via
// configuration.
type Blackout struct {
	Rule        *rrule.RRule
	Description string
}

// Policy carries the collective-agreement knobs the validator enforces.
// The date-order checks always run; the quota, consecutive-days and
// blackout checks only run when EnforceQuotaRules is set, since one
// deployment defers those rules to an external authority.
type Policy struct {
	EnforceQuotaRules bool

	// BaseMonthlyRestDays is the rest-day quota a worker starts each
	// month with before any swaps are applied.
	BaseMonthlyRestDays int

	// MinMonthlyRestDays / MaxMonthlyRestDays bound the projected
	// rest-day count for the month of the desire-start date.
	MinMonthlyRestDays int
	MaxMonthlyRestDays int

	// MaxConsecutiveSurrenderDays caps how many consecutive rest days a
	// single offer may surrender.
	MaxConsecutiveSurrenderDays int

	Blackouts []Blackout
}

// DefaultPolicy returns the full collective-agreement rule set:
// 6 base rest days per month, 5-7 projected bounds, 19 consecutive
// surrendered days at most.
func DefaultPolicy() Policy {
	return Policy{
		EnforceQuotaRules:           true,
		BaseMonthlyRestDays:         6,
		MinMonthlyRestDays:          5,
		MaxMonthlyRestDays:          7,
		MaxConsecutiveSurrenderDays: 19,
	}
}

// Validation is the outcome of checking one candidate offer. Errors are
// worker-facing messages; Valid is true iff Errors is empty.
type Validation struct {
	Valid  bool
	Errors []string
}

// Validate checks a candidate offer against the policy, given the full
// active-offer set (it filters to the submitting worker's own offers
// internally). It accumulates every violated rule rather than stopping
// at the first, except for missing or unparseable dates, where no
// further date arithmetic is possible.
func (p Policy) Validate(workerID string, candidate model.Offer, existing []model.Offer) Validation {
	if candidate.SurrenderFrom == "" || candidate.SurrenderTo == "" ||
		candidate.DesireFrom == "" || candidate.DesireTo == "" {
		return Validation{Valid: false, Errors: []string{"Por favor rellena todas las fechas."}}
	}

	surrender, errS := candidate.SurrenderRange()
	desire, errD := candidate.DesireRange()
	if errS != nil || errD != nil {
		return Validation{Valid: false, Errors: []string{"Formato de fecha no válido."}}
	}

	var errors []string

	if surrender.Inverted() {
		errors = append(errors, `La fecha "Tengo desde" no puede ser posterior a "Tengo hasta".`)
	}
	if desire.Inverted() {
		errors = append(errors, `La fecha "Necesito desde" no puede ser posterior a "Necesito hasta".`)
	}

	if p.EnforceQuotaRules && !surrender.Inverted() && !desire.Inverted() {
		errors = append(errors, p.quotaErrors(workerID, surrender, desire, existing)...)

		if surrender.Days() > p.MaxConsecutiveSurrenderDays {
			errors = append(errors, fmt.Sprintf(
				"No puedes ceder más de %d días de descanso seguidos (máximo %d días en disponibilidad).",
				p.MaxConsecutiveSurrenderDays, p.MaxConsecutiveSurrenderDays))
		}

		errors = append(errors, p.blackoutErrors(surrender)...)
	}

	return Validation{Valid: len(errors) == 0, Errors: errors}
}

// quotaErrors projects the worker's net rest days for the calendar
// month of the desire-start date and reports bound violations.
func (p Policy) quotaErrors(workerID string, surrender, desire model.DateRange, existing []model.Offer) []string {
	projected := ProjectedRestDays(workerID, surrender, desire, existing, p.BaseMonthlyRestDays)

	var errors []string
	if projected < p.MinMonthlyRestDays {
		errors = append(errors, fmt.Sprintf(
			"No puedes descansar menos de %d días al mes. Con este cambio tendrías %d días.",
			p.MinMonthlyRestDays, projected))
	}
	if projected > p.MaxMonthlyRestDays {
		errors = append(errors, fmt.Sprintf(
			"No puedes descansar más de %d días al mes. Con este cambio tendrías %d días.",
			p.MaxMonthlyRestDays, projected))
	}
	return errors
}

func (p Policy) blackoutErrors(surrender model.DateRange) []string {
	var errors []string
	for _, b := range p.Blackouts {
		if b.Rule == nil {
			continue
		}
		hits := b.Rule.Between(surrender.From, surrender.To, true)
		if len(hits) == 0 {
			continue
		}
		label := b.Description
		if label == "" {
			label = hits[0].Format(model.DateLayout)
		}
		errors = append(errors, fmt.Sprintf(
			"El periodo cedido incluye una jornada bloqueada (%s).", label))
	}
	return errors
}
