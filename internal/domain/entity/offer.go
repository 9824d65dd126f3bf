package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OfferStatus is the lifecycle state of an offer.
type OfferStatus string

const (
	OfferSubmitted OfferStatus = "submitted"
	OfferWithdrawn OfferStatus = "withdrawn"
	OfferAccepted  OfferStatus = "accepted"
	OfferRejected  OfferStatus = "rejected"
	OfferExpired   OfferStatus = "expired"
)

// Every transition leaves submitted; all other states are terminal.
var offerTransitions = map[OfferStatus][]OfferStatus{
	OfferSubmitted: {OfferAccepted, OfferRejected, OfferWithdrawn, OfferExpired},
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	return slices.Contains(offerTransitions[s], next)
}

// IsTerminal reports whether no transition leaves s.
func (s OfferStatus) IsTerminal() bool {
	return len(offerTransitions[s]) == 0
}

// Offer is a dealership's priced proposal against one buyer request.
type Offer struct {
	ID           uuid.UUID   `json:"id"`
	RequestID    uuid.UUID   `json:"request_id"`
	DealershipID uuid.UUID   `json:"dealership_id"`
	DealerUserID string      `json:"dealer_user_id"`
	Status       OfferStatus `json:"status"`

	CarRegNr   *string `json:"car_reg_nr,omitempty"`
	VIN        *string `json:"vin,omitempty"`
	CarMake    string  `json:"car_make"`
	CarModel   string  `json:"car_model"`
	CarVariant *string `json:"car_variant,omitempty"`
	CarYear    int     `json:"car_year"`
	CarKm      int     `json:"car_km"`

	CarCondition CarCondition `json:"car_condition"`
	FuelType     *FuelType    `json:"fuel_type,omitempty"`
	Gearbox      *Gearbox     `json:"gearbox,omitempty"`
	BodyType     *BodyType    `json:"body_type,omitempty"`

	ColorExterior *string `json:"color_exterior,omitempty"`
	ColorInterior *string `json:"color_interior,omitempty"`

	PriceTotal int    `json:"price_total"`
	PriceOld   *int   `json:"price_old,omitempty"`
	Currency   string `json:"currency"`

	DeliveryTimeEstimate *string `json:"delivery_time_estimate,omitempty"`
	WarrantySummary      *string `json:"warranty_summary,omitempty"`
	FinancingPossible    bool    `json:"financing_possible"`
	FinancingExample     *string `json:"financing_example,omitempty"`

	LocationCity       *string `json:"location_city,omitempty"`
	LocationPostalCode *string `json:"location_postal_code,omitempty"`
	DistanceKm         *int    `json:"distance_km,omitempty"`

	ShortMessageToBuyer *string  `json:"short_message_to_buyer,omitempty"`
	InternalNotes       *string  `json:"internal_notes,omitempty"`
	ImageURLs           []string `json:"image_urls"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ForBuyer returns a copy without the dealership's private notes.
func (o *Offer) ForBuyer() *Offer {
	if o == nil {
		return nil
	}

	view := *o
	view.InternalNotes = nil

	return &view
}

// OfferWithRequest is one row of a dealership's outbox.
type OfferWithRequest struct {
	Offer   *Offer        `json:"offer"`
	Request *BuyerRequest `json:"request"`
}

// OfferWithDealership is one row of a buyer's inbox for a request.
type OfferWithDealership struct {
	Offer      *Offer      `json:"offer"`
	Dealership *Dealership `json:"dealership"`
}

// OfferThread joins an offer with everything needed to decide who may see it.
type OfferThread struct {
	Offer      *Offer        `json:"offer"`
	Request    *BuyerRequest `json:"request"`
	Dealership *Dealership   `json:"dealership"`
}
