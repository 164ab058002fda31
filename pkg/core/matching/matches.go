package matching

import (
	"sort"

	"github.com/TheViking816/DescansosCPE/pkg/core/model"
)

// Match pairs a candidate offer with the quality of the swap it would
// make against the reference offer.
type Match struct {
	Offer   model.Offer
	Quality model.MatchQuality
}

// FindMatches scans the active-offer pool for reciprocal matches with
// the given offer: the offer's surrender range must overlap the other's
// desire range AND the other's surrender range must overlap the offer's
// desire range. Quality comes from the two owners' profiles, so the
// caller supplies a profile lookup; offers whose owner is missing from
// it are skipped rather than failing.
//
// The result is sorted best quality first. The sort is stable, so ties
// keep pool encounter order, and repeated calls on the same snapshot
// return identical lists.
func FindMatches(offer model.Offer, pool []model.Offer, workers map[string]model.Worker) []Match {
	owner, ownerKnown := workers[offer.OwnerID]

	mySurrender, err := offer.SurrenderRange()
	if err != nil {
		return []Match{}
	}
	myDesire, err := offer.DesireRange()
	if err != nil {
		return []Match{}
	}

	matches := []Match{}

	for _, other := range pool {
		if other.OwnerID == offer.OwnerID || other.ID == offer.ID {
			continue
		}
		if !other.Active {
			continue
		}

		otherOwner, ok := workers[other.OwnerID]
		if !ok {
			continue
		}

		theirSurrender, err := other.SurrenderRange()
		if err != nil {
			continue
		}
		theirDesire, err := other.DesireRange()
		if err != nil {
			continue
		}

		// Reciprocal overlap: my "tengo" covers their "necesito" and
		// their "tengo" covers my "necesito".
		if !mySurrender.Overlaps(theirDesire) || !theirSurrender.Overlaps(myDesire) {
			continue
		}

		quality := model.QualityPossible
		if ownerKnown {
			quality = model.QualityBetween(owner, otherOwner)
		}

		matches = append(matches, Match{Offer: other, Quality: quality})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Quality.Rank() < matches[j].Quality.Rank()
	})

	return matches
}
