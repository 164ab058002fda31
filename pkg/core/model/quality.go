package model

// MatchQuality tags how good a swap pairing is. The wire values are the
// ones workers see on their cards.
type MatchQuality string

const (
	QualityPerfect  MatchQuality = "perfecto"
	QualityPartial  MatchQuality = "parcial"
	QualityPossible MatchQuality = "posible"
)

// Rank returns the sort rank for a quality: perfect=0, partial=1,
// possible=2. Unknown values rank after everything else.
func (q MatchQuality) Rank() int {
	switch q {
	case QualityPerfect:
		return 0
	case QualityPartial:
		return 1
	case QualityPossible:
		return 2
	default:
		return 3
	}
}

// BetterQuality returns the stronger (lower-rank) of two qualities.
func BetterQuality(a, b MatchQuality) MatchQuality {
	if a.Rank() <= b.Rank() {
		return a
	}
	return b
}

// QualityBetween computes the static profile affinity between two
// workers: all of rest-group, rotation-week and specialty equal is a
// perfect match; rest-group and rotation-week alone is partial;
// anything else is merely possible.
func QualityBetween(a, b Worker) MatchQuality {
	sameGroup := a.RestGroup == b.RestGroup
	sameWeek := a.RotationWeek == b.RotationWeek
	sameSpecialty := a.SpecialtyCode == b.SpecialtyCode

	if sameGroup && sameWeek && sameSpecialty {
		return QualityPerfect
	}
	if sameGroup && sameWeek {
		return QualityPartial
	}
	return QualityPossible
}
