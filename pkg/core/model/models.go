package model

// RestGroup is the coarse scheduling cohort a worker belongs to.
// Workers in the same group share the same baseline rest pattern.
type RestGroup string

const (
	RestGroupA RestGroup = "A"
	RestGroupB RestGroup = "B"
	RestGroupC RestGroup = "C"
)

func (g RestGroup) IsValid() bool {
	return g == RestGroupA || g == RestGroupB || g == RestGroupC
}

// RotationWeek is the alternating week tag: "V" (verde) or "N" (naranja).
type RotationWeek string

const (
	WeekGreen  RotationWeek = "V"
	WeekOrange RotationWeek = "N"
)

func (w RotationWeek) IsValid() bool {
	return w == WeekGreen || w == WeekOrange
}

// Worker represents a shift worker's profile as resolved at the
// ingestion boundary. The core only ever sees these canonical fields,
// never the raw store's column aliases.
type Worker struct {
	ID            string
	Name          string
	Badge         string // "chapa", the facility badge number
	RestGroup     RestGroup
	RotationWeek  RotationWeek
	SpecialtyCode string
	SpecialtyName string // resolved from the specialty catalog, may be empty
	Phone         string // optional
	AvatarURL     string // optional
}

// Offer is a rest-day swap offer: the owner gives up the surrender
// range ("tengo") and wants the desire range ("necesito") instead.
// Date fields are calendar dates in ISO form (YYYY-MM-DD), no
// time-of-day and no timezone.
type Offer struct {
	ID            string
	OwnerID       string
	SurrenderFrom string
	SurrenderTo   string
	DesireFrom    string
	DesireTo      string
	CreatedAt     string // RFC3339
	Active        bool
}

// SurrenderRange returns the offer's surrender side as a parsed range.
func (o Offer) SurrenderRange() (DateRange, error) {
	return ParseDateRange(o.SurrenderFrom, o.SurrenderTo)
}

// DesireRange returns the offer's desire side as a parsed range.
func (o Offer) DesireRange() (DateRange, error) {
	return ParseDateRange(o.DesireFrom, o.DesireTo)
}
