package offerform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(from string) DayRange {
	return DayRange{From: from}
}

func span(from, to string) DayRange {
	return DayRange{From: from, To: to}
}

func TestBuildOfferPayloads_CartesianProduct(t *testing.T) {
	form := Form{
		Surrender: []DayRange{span("2024-04-01", "2024-04-02"), day("2024-04-05")},
		Desire:    []DayRange{span("2024-04-10", "2024-04-12"), day("2024-04-15"), day("2024-04-20")},
	}

	result := BuildOfferPayloads(form)

	require.Empty(t, result.Errors)
	require.Len(t, result.Payloads, 6)

	// First-seen order: surrender-major.
	first := result.Payloads[0]
	assert.Equal(t, "2024-04-01", first.SurrenderFrom)
	assert.Equal(t, "2024-04-02", first.SurrenderTo)
	assert.Equal(t, "2024-04-10", first.DesireFrom)
	assert.Equal(t, "2024-04-12", first.DesireTo)

	last := result.Payloads[5]
	assert.Equal(t, "2024-04-05", last.SurrenderFrom)
	assert.Equal(t, "2024-04-20", last.DesireFrom)
}

func TestBuildOfferPayloads_SingleDayAutoFill(t *testing.T) {
	form := Form{
		Surrender: []DayRange{day("2024-04-01")},
		Desire:    []DayRange{day("2024-04-10")},
	}

	result := BuildOfferPayloads(form)

	require.Empty(t, result.Errors)
	require.Len(t, result.Payloads, 1)
	draft := result.Payloads[0]
	assert.Equal(t, "2024-04-01", draft.SurrenderFrom)
	assert.Equal(t, "2024-04-01", draft.SurrenderTo)
	assert.Equal(t, "2024-04-10", draft.DesireFrom)
	assert.Equal(t, "2024-04-10", draft.DesireTo)
}

func TestBuildOfferPayloads_DeduplicatesIdenticalPairs(t *testing.T) {
	form := Form{
		Surrender: []DayRange{day("2024-04-01"), span("2024-04-01", "2024-04-01")},
		Desire:    []DayRange{day("2024-04-10")},
	}

	result := BuildOfferPayloads(form)

	require.Empty(t, result.Errors)
	assert.Len(t, result.Payloads, 1)
}

func TestBuildOfferPayloads_MissingSideIsAnError(t *testing.T) {
	for _, form := range []Form{
		{Desire: []DayRange{day("2024-04-10")}},
		{Surrender: []DayRange{day("2024-04-01")}},
		{},
		{Surrender: []DayRange{{}}, Desire: []DayRange{day("2024-04-10")}},
	} {
		result := BuildOfferPayloads(form)
		assert.Empty(t, result.Payloads)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Por favor rellena todas las fechas.", result.Errors[0])
	}
}

func TestBuildOfferPayloads_CapAfterDedupe(t *testing.T) {
	// 5x7 = 35 raw pairs, but five surrender picks are duplicates of the
	// first, so only 7 distinct drafts survive and the form is accepted.
	surrender := []DayRange{day("2024-04-01")}
	for i := 0; i < 4; i++ {
		surrender = append(surrender, span("2024-04-01", "2024-04-01"))
	}
	var desire []DayRange
	for i := 1; i <= 7; i++ {
		desire = append(desire, day(fmt.Sprintf("2024-04-%02d", 10+i)))
	}

	result := BuildOfferPayloads(Form{Surrender: surrender, Desire: desire})

	require.Empty(t, result.Errors)
	assert.Len(t, result.Payloads, 7)
}

func TestBuildOfferPayloads_OverCapYieldsErrorAndNoPayloads(t *testing.T) {
	var surrender, desire []DayRange
	for i := 1; i <= 6; i++ {
		surrender = append(surrender, day(fmt.Sprintf("2024-04-%02d", i)))
		desire = append(desire, day(fmt.Sprintf("2024-04-%02d", 10+i)))
	}

	result := BuildOfferPayloads(Form{Surrender: surrender, Desire: desire})

	assert.Empty(t, result.Payloads)
	require.Len(t, result.Errors, 1)
	assert.Equal(t,
		"No puedes publicar más de 30 ofertas de una vez (este formulario generaría 36).",
		result.Errors[0])
}

func TestBuildOfferPayloads_ExactlyAtCapIsAccepted(t *testing.T) {
	var surrender, desire []DayRange
	for i := 1; i <= 5; i++ {
		surrender = append(surrender, day(fmt.Sprintf("2024-04-%02d", i)))
	}
	for i := 1; i <= 6; i++ {
		desire = append(desire, day(fmt.Sprintf("2024-04-%02d", 10+i)))
	}

	result := BuildOfferPayloads(Form{Surrender: surrender, Desire: desire})

	require.Empty(t, result.Errors)
	assert.Len(t, result.Payloads, 30)
}

func TestOfferDraft_ToOffer(t *testing.T) {
	draft := OfferDraft{
		SurrenderFrom: "2024-04-01",
		SurrenderTo:   "2024-04-02",
		DesireFrom:    "2024-04-10",
		DesireTo:      "2024-04-11",
	}

	offer := draft.ToOffer("worker-7")

	assert.Equal(t, "worker-7", offer.OwnerID)
	assert.Equal(t, "2024-04-01", offer.SurrenderFrom)
	assert.Equal(t, "2024-04-11", offer.DesireTo)
	assert.True(t, offer.Active)
	assert.Empty(t, offer.ID)
	assert.Empty(t, offer.CreatedAt)
}
