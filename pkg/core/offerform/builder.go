// Package offerform expands a single submission form into the offer
// drafts it stands for. A worker may pick contiguous ranges or discrete
// single days on each side of the swap; every surrender range is paired
// with every desire range, one draft per pair.
package offerform

import (
	"fmt"

	"github.com/TheViking816/DescansosCPE/pkg/core/model"
)

// MaxDraftsPerSubmission caps how many offers one form may generate.
const MaxDraftsPerSubmission = 30

// DayRange is one picked interval. An empty To with a set From means a
// single day, mirroring the form's auto-fill behaviour.
type DayRange struct {
	From string
	To   string
}

// Form is the raw submission: the ranges the worker offers to give up
// and the ranges they want in return.
type Form struct {
	Surrender []DayRange
	Desire    []DayRange
}

// OfferDraft is one expanded (surrender, desire) pairing, ready for
// validation and creation.
type OfferDraft struct {
	SurrenderFrom string
	SurrenderTo   string
	DesireFrom    string
	DesireTo      string
}

// BuildResult carries either the expanded drafts or the reasons the
// form could not be expanded. Payloads is empty whenever Errors is not.
type BuildResult struct {
	Payloads []OfferDraft
	Errors   []string
}

// BuildOfferPayloads expands the form into the cartesian product of
// surrender ranges and desire ranges, deduplicating identical pairs and
// keeping first-seen order. A side with no usable ranges is an error,
// as is exceeding MaxDraftsPerSubmission.
func BuildOfferPayloads(form Form) BuildResult {
	surrender := normalizeRanges(form.Surrender)
	desire := normalizeRanges(form.Desire)

	if len(surrender) == 0 || len(desire) == 0 {
		return BuildResult{Errors: []string{"Por favor rellena todas las fechas."}}
	}

	seen := make(map[string]bool)
	payloads := make([]OfferDraft, 0, len(surrender)*len(desire))

	for _, s := range surrender {
		for _, d := range desire {
			draft := OfferDraft{
				SurrenderFrom: s.From,
				SurrenderTo:   s.To,
				DesireFrom:    d.From,
				DesireTo:      d.To,
			}
			key := draft.SurrenderFrom + "|" + draft.SurrenderTo + "|" + draft.DesireFrom + "|" + draft.DesireTo
			if seen[key] {
				continue
			}
			seen[key] = true
			payloads = append(payloads, draft)
		}
	}

	if len(payloads) > MaxDraftsPerSubmission {
		return BuildResult{Errors: []string{fmt.Sprintf(
			"No puedes publicar más de %d ofertas de una vez (este formulario generaría %d).",
			MaxDraftsPerSubmission, len(payloads))}}
	}

	return BuildResult{Payloads: payloads}
}

// ToOffer lifts a draft into a model offer for the given worker. The
// caller assigns identity and creation time.
func (d OfferDraft) ToOffer(ownerID string) model.Offer {
	return model.Offer{
		OwnerID:       ownerID,
		SurrenderFrom: d.SurrenderFrom,
		SurrenderTo:   d.SurrenderTo,
		DesireFrom:    d.DesireFrom,
		DesireTo:      d.DesireTo,
		Active:        true,
	}
}

// normalizeRanges drops empty picks and fills a missing To from the
// From date, so a bare day pick becomes a one-day range.
func normalizeRanges(ranges []DayRange) []DayRange {
	out := make([]DayRange, 0, len(ranges))
	for _, r := range ranges {
		if r.From == "" {
			continue
		}
		if r.To == "" {
			r.To = r.From
		}
		out = append(out, r)
	}
	return out
}
