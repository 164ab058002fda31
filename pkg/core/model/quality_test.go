package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func profile(group RestGroup, week RotationWeek, specialty string) Worker {
	return Worker{RestGroup: group, RotationWeek: week, SpecialtyCode: specialty}
}

func TestQualityBetween(t *testing.T) {
	me := profile(RestGroupA, WeekGreen, "01")

	assert.Equal(t, QualityPerfect, QualityBetween(me, profile(RestGroupA, WeekGreen, "01")))
	assert.Equal(t, QualityPartial, QualityBetween(me, profile(RestGroupA, WeekGreen, "02")))
	assert.Equal(t, QualityPossible, QualityBetween(me, profile(RestGroupB, WeekGreen, "01")))
	assert.Equal(t, QualityPossible, QualityBetween(me, profile(RestGroupA, WeekOrange, "01")))
	assert.Equal(t, QualityPossible, QualityBetween(me, profile(RestGroupC, WeekOrange, "03")))
}

func TestQualityRankOrdering(t *testing.T) {
	assert.Less(t, QualityPerfect.Rank(), QualityPartial.Rank())
	assert.Less(t, QualityPartial.Rank(), QualityPossible.Rank())
	assert.Less(t, QualityPossible.Rank(), MatchQuality("").Rank())
}

func TestBetterQuality(t *testing.T) {
	assert.Equal(t, QualityPerfect, BetterQuality(QualityPerfect, QualityPossible))
	assert.Equal(t, QualityPerfect, BetterQuality(QualityPossible, QualityPerfect))
	assert.Equal(t, QualityPartial, BetterQuality(QualityPartial, QualityPartial))
}
