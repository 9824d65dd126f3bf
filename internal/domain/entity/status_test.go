package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{RequestOpen, RequestUnderReview, true},
		{RequestOpen, RequestAccepted, true},
		{RequestOpen, RequestExpired, true},
		{RequestOpen, RequestCancelled, true},
		{RequestUnderReview, RequestAccepted, true},
		{RequestUnderReview, RequestCancelled, false},
		{RequestUnderReview, RequestOpen, false},
		{RequestAccepted, RequestOpen, false},
		{RequestExpired, RequestOpen, false},
		{RequestCancelled, RequestAccepted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestSourcesOf(t *testing.T) {
	assert.Equal(t, []RequestStatus{RequestOpen, RequestUnderReview}, RequestSourcesOf(RequestAccepted))
	assert.Equal(t, []RequestStatus{RequestOpen}, RequestSourcesOf(RequestCancelled))
	assert.Empty(t, RequestSourcesOf(RequestOpen))
}

func TestOfferStatus_OnlySubmittedMoves(t *testing.T) {
	all := []OfferStatus{OfferSubmitted, OfferWithdrawn, OfferAccepted, OfferRejected, OfferExpired}

	for _, from := range all {
		for _, to := range all {
			want := from == OfferSubmitted && to != OfferSubmitted
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		assert.Equal(t, from != OfferSubmitted, from.IsTerminal(), from)
	}
}

func TestConversationContext_InvalidationPaths(t *testing.T) {
	offerID := uuid.MustParse("5b0f7f9e-8d7a-4f0c-9a55-0d5b8b2f1c11")
	requestID := uuid.MustParse("0c1f5a3e-2b2f-4a8e-8f5e-1f2d3c4b5a69")

	ctx := ConversationContext{OfferID: offerID, RequestID: requestID, ViewerRole: RoleDealer}

	assert.Equal(t, []string{
		"/dealer/offers/5b0f7f9e-8d7a-4f0c-9a55-0d5b8b2f1c11",
		"/buyer/requests/0c1f5a3e-2b2f-4a8e-8f5e-1f2d3c4b5a69",
	}, ctx.InvalidationPaths())
}

func TestVehicleEnums(t *testing.T) {
	assert.True(t, ConditionDemo.IsValid())
	assert.False(t, CarCondition("mint").IsValid())
	assert.True(t, FuelEV.IsValid())
	assert.False(t, FuelType("").IsValid())
	assert.True(t, GearboxAny.IsValid())
	assert.False(t, Gearbox("cvt").IsValid())
	assert.True(t, BodyPickup.IsValid())
	assert.False(t, BodyType("limo").IsValid())
}

func TestRole(t *testing.T) {
	assert.True(t, RoleDealer.CanActAsDealer())
	assert.True(t, RoleAdmin.CanActAsDealer())
	assert.False(t, RoleBuyer.CanActAsDealer())
	assert.False(t, Role("merchant").IsValid())
}

func TestOffer_ForBuyer(t *testing.T) {
	notes := "floor price 590000"
	offer := &Offer{ID: uuid.New(), PriceTotal: 620000, InternalNotes: &notes}

	view := offer.ForBuyer()
	assert.Nil(t, view.InternalNotes)
	assert.Equal(t, offer.ID, view.ID)
	assert.Equal(t, 620000, view.PriceTotal)
	assert.Equal(t, &notes, offer.InternalNotes, "the stored offer keeps its notes")

	var missing *Offer
	assert.Nil(t, missing.ForBuyer())
}
