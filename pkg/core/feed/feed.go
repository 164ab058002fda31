// Package feed turns a snapshot of the active-offer pool into the
// ordered, grouped board a worker sees. It is pure: every call derives
// the whole board from the snapshot it is given, so the polling caller
// can re-run it on every tick with identical results for an unchanged
// snapshot.
package feed

import (
	"sort"
	"strconv"
	"time"

	"github.com/TheViking816/DescansosCPE/pkg/core/model"
)

// Filters narrows the board before ranking. Zero values mean "no
// filter". Date keeps only offers where the given calendar date falls
// inside either of the offer's ranges.
type Filters struct {
	RestGroup     model.RestGroup
	RotationWeek  model.RotationWeek
	SpecialtyCode string
	Date          string
}

// Entry is one display unit on the board. After grouping it may stand
// for several offers from the same batch submission; GroupedOffers
// always holds at least the entry's own offer.
type Entry struct {
	Offer         model.Offer
	Owner         model.Worker
	IsOwn         bool
	Quality       model.MatchQuality
	IsExpired     bool
	RelevantDate  *time.Time
	UrgencyDays   *int
	Completeness  int
	CreatedAt     time.Time
	GroupedOffers []model.Offer
}

// Board is the finished feed, partitioned into current and finished
// offers. Both halves preserve the ranking order.
type Board struct {
	Active  []Entry
	Expired []Entry
}

// Input is the full snapshot the board is computed from.
type Input struct {
	Viewer  model.Worker
	Offers  []model.Offer
	Workers map[string]model.Worker
	Filters Filters
	Today   time.Time // calendar day, normalized to midnight
}

// Build computes the board: filter, derive per-offer attributes, rank,
// group batch submissions, and partition expired offers to the end.
// Offers whose owner profile is missing are dropped silently.
func Build(in Input) Board {
	var myOffers []model.Offer
	for _, o := range in.Offers {
		if o.OwnerID == in.Viewer.ID {
			myOffers = append(myOffers, o)
		}
	}

	entries := make([]Entry, 0, len(in.Offers))
	for _, offer := range in.Offers {
		owner, ok := in.Workers[offer.OwnerID]
		if !ok {
			continue
		}
		if !in.Filters.keeps(offer, owner) {
			continue
		}
		entries = append(entries, deriveEntry(offer, owner, in.Viewer, myOffers, in.Today))
	}

	sortEntries(entries)
	grouped := groupEntries(entries)

	board := Board{Active: []Entry{}, Expired: []Entry{}}
	for _, e := range grouped {
		if e.IsExpired {
			board.Expired = append(board.Expired, e)
		} else {
			board.Active = append(board.Active, e)
		}
	}
	return board
}

func (f Filters) keeps(offer model.Offer, owner model.Worker) bool {
	if f.RestGroup != "" && owner.RestGroup != f.RestGroup {
		return false
	}
	if f.RotationWeek != "" && owner.RotationWeek != f.RotationWeek {
		return false
	}
	if f.SpecialtyCode != "" && owner.SpecialtyCode != f.SpecialtyCode {
		return false
	}
	if f.Date != "" {
		inSurrender := offer.SurrenderFrom <= f.Date && offer.SurrenderTo >= f.Date
		inDesire := offer.DesireFrom <= f.Date && offer.DesireTo >= f.Date
		if !inSurrender && !inDesire {
			return false
		}
	}
	return true
}

func deriveEntry(offer model.Offer, owner, viewer model.Worker, myOffers []model.Offer, today time.Time) Entry {
	entry := Entry{
		Offer:         offer,
		Owner:         owner,
		IsOwn:         offer.OwnerID == viewer.ID,
		Quality:       model.QualityPossible,
		Completeness:  completeness(offer),
		CreatedAt:     parseCreatedAt(offer.CreatedAt),
		GroupedOffers: []model.Offer{offer},
	}

	if !entry.IsOwn {
		entry.Quality = matchQuality(offer, owner, viewer, myOffers)
	}

	entry.IsExpired, entry.RelevantDate = urgency(offer, today)
	if entry.RelevantDate != nil {
		days := calendarDaysBetween(today, *entry.RelevantDate)
		entry.UrgencyDays = &days
	}

	return entry
}

// matchQuality is the viewer-relative quality: profile affinity, gated
// by a live reciprocal overlap against any of the viewer's own offers.
// Without a live overlap the static profile affinity still shows, so a
// worker can spot compatible colleagues before posting a counterpart
// offer.
func matchQuality(offer model.Offer, owner, viewer model.Worker, myOffers []model.Offer) model.MatchQuality {
	quality := model.QualityBetween(viewer, owner)

	theirSurrender, errS := offer.SurrenderRange()
	theirDesire, errD := offer.DesireRange()
	if errS != nil || errD != nil {
		return quality
	}

	best := model.QualityPossible
	for _, mine := range myOffers {
		mySurrender, err := mine.SurrenderRange()
		if err != nil {
			continue
		}
		myDesire, err := mine.DesireRange()
		if err != nil {
			continue
		}
		if mySurrender.Overlaps(theirDesire) && theirSurrender.Overlaps(myDesire) {
			best = quality
			break
		}
	}

	if best == model.QualityPossible && quality != model.QualityPossible {
		best = quality
	}
	return best
}

// urgency derives the expiry flag and the relevant date: the earliest
// upcoming start among the offer's two ranges, or today when the offer
// is currently in progress, or nothing.
func urgency(offer model.Offer, today time.Time) (bool, *time.Time) {
	surrenderFrom := parseDay(offer.SurrenderFrom)
	surrenderTo := parseDay(offer.SurrenderTo)
	desireFrom := parseDay(offer.DesireFrom)
	desireTo := parseDay(offer.DesireTo)

	// An offer is finished once both sides have completely passed.
	expired := surrenderTo != nil && surrenderTo.Before(today) &&
		desireTo != nil && desireTo.Before(today)

	var relevant *time.Time
	for _, start := range []*time.Time{surrenderFrom, desireFrom} {
		if start == nil || start.Before(today) {
			continue
		}
		if relevant == nil || start.Before(*relevant) {
			relevant = start
		}
	}

	if relevant == nil && !expired {
		activeNow := rangeCovers(surrenderFrom, surrenderTo, today) ||
			rangeCovers(desireFrom, desireTo, today)
		if activeNow {
			t := today
			relevant = &t
		}
	}

	return expired, relevant
}

func rangeCovers(from, to *time.Time, day time.Time) bool {
	return from != nil && to != nil && !from.After(day) && !to.Before(day)
}

func completeness(offer model.Offer) int {
	score := 0
	for _, field := range []string{offer.SurrenderFrom, offer.SurrenderTo, offer.DesireFrom, offer.DesireTo} {
		if field != "" {
			score++
		}
	}
	return score
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

func parseCreatedAt(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := model.ParseDate(s); err == nil {
		return t
	}
	return time.Time{}
}

func calendarDaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// sortEntries applies the board order: live before expired, soonest
// relevant date, best quality, most complete record, newest, then a
// deterministic ID tiebreak so the total order is stable across runs.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.IsExpired != b.IsExpired {
			return !a.IsExpired
		}

		switch {
		case a.RelevantDate != nil && b.RelevantDate != nil:
			if !a.RelevantDate.Equal(*b.RelevantDate) {
				return a.RelevantDate.Before(*b.RelevantDate)
			}
		case a.RelevantDate != nil:
			return true
		case b.RelevantDate != nil:
			return false
		}

		if a.Quality.Rank() != b.Quality.Rank() {
			return a.Quality.Rank() < b.Quality.Rank()
		}
		if a.Completeness != b.Completeness {
			return a.Completeness > b.Completeness
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return stableIDLess(b.Offer.ID, a.Offer.ID)
	})
}

// stableIDLess compares offer identifiers numerically when both parse
// as numbers, lexicographically otherwise.
func stableIDLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

// groupEntries merges offers that came from the same batch submission:
// same owner, same creation timestamp, same expired/active status. The
// merged entry takes the best quality, soonest urgency, earliest
// relevant date, highest completeness and newest creation time across
// its members, and keeps every member offer for expanded display.
func groupEntries(entries []Entry) []Entry {
	groups := make([]Entry, 0, len(entries))
	index := make(map[string]int)

	for _, entry := range entries {
		status := "active"
		if entry.IsExpired {
			status = "expired"
		}
		key := entry.Offer.OwnerID + "|" + entry.Offer.CreatedAt + "|" + status

		at, seen := index[key]
		if !seen {
			index[key] = len(groups)
			groups = append(groups, entry)
			continue
		}

		g := &groups[at]
		g.GroupedOffers = append(g.GroupedOffers, entry.Offer)
		g.Quality = model.BetterQuality(g.Quality, entry.Quality)

		if entry.UrgencyDays != nil && (g.UrgencyDays == nil || *entry.UrgencyDays < *g.UrgencyDays) {
			g.UrgencyDays = entry.UrgencyDays
		}
		if entry.RelevantDate != nil && (g.RelevantDate == nil || entry.RelevantDate.Before(*g.RelevantDate)) {
			g.RelevantDate = entry.RelevantDate
		}
		if entry.Completeness > g.Completeness {
			g.Completeness = entry.Completeness
		}
		if entry.CreatedAt.After(g.CreatedAt) {
			g.CreatedAt = entry.CreatedAt
		}
	}

	return groups
}
