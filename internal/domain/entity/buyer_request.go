package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a buyer request.
type RequestStatus string

const (
	RequestOpen        RequestStatus = "open"
	RequestUnderReview RequestStatus = "under_review"
	RequestAccepted    RequestStatus = "accepted"
	RequestExpired     RequestStatus = "expired"
	RequestCancelled   RequestStatus = "cancelled"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestOpen:        {RequestUnderReview, RequestAccepted, RequestExpired, RequestCancelled},
	RequestUnderReview: {RequestAccepted},
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return slices.Contains(requestTransitions[s], next)
}

// RequestSourcesOf lists the states from which next may be entered.
func RequestSourcesOf(next RequestStatus) []RequestStatus {
	var sources []RequestStatus
	for from, targets := range requestTransitions {
		if slices.Contains(targets, next) {
			sources = append(sources, from)
		}
	}
	slices.Sort(sources)

	return sources
}

// BuyerRequest is a buyer's structured want-ad.
type BuyerRequest struct {
	ID      uuid.UUID     `json:"id"`
	BuyerID string        `json:"buyer_id"`
	Status  RequestStatus `json:"status"`
	Title   string        `json:"title"`

	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Generation *string `json:"generation,omitempty"`
	YearFrom   *int    `json:"year_from,omitempty"`
	YearTo     *int    `json:"year_to,omitempty"`
	MinKm      *int    `json:"min_km,omitempty"`
	MaxKm      *int    `json:"max_km,omitempty"`

	Condition *CarCondition `json:"condition,omitempty"`
	FuelType  *FuelType     `json:"fuel_type,omitempty"`
	Gearbox   *Gearbox      `json:"gearbox,omitempty"`
	BodyType  *BodyType     `json:"body_type,omitempty"`

	BudgetMin *int   `json:"budget_min,omitempty"`
	BudgetMax *int   `json:"budget_max,omitempty"`
	Currency  string `json:"currency"`

	LocationCity       *string  `json:"location_city,omitempty"`
	LocationPostalCode *string  `json:"location_postal_code,omitempty"`
	SearchRadiusKm     *int     `json:"search_radius_km,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`

	WantsTradeIn    bool    `json:"wants_trade_in"`
	FinancingNeeded bool    `json:"financing_needed"`
	Description     *string `json:"description,omitempty"`
	SearchType      *string `json:"search_type,omitempty"`

	ImageURLs       []string   `json:"image_urls"`
	AcceptedOfferID *uuid.UUID `json:"accepted_offer_id,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// IsOpen reports whether the request still accepts offers.
func (r *BuyerRequest) IsOpen() bool {
	return r.Status == RequestOpen
}

// OwnedBy reports whether userID is the request's buyer.
func (r *BuyerRequest) OwnedBy(userID string) bool {
	return r.BuyerID == userID
}

// Coordinates returns the buyer's position when both parts are known.
func (r *BuyerRequest) Coordinates() (Coordinates, bool) {
	return coordinatesOf(r.Latitude, r.Longitude)
}
