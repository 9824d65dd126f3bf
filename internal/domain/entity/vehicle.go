package entity

// CarCondition describes whether a vehicle is new, used or a demonstrator.
type CarCondition string

const (
	ConditionNew  CarCondition = "new"
	ConditionUsed CarCondition = "used"
	ConditionDemo CarCondition = "demo"
)

// IsValid checks if the condition is one of the allowed values.
func (c CarCondition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionDemo:
		return true
	default:
		return false
	}
}

// FuelType is the vehicle's propulsion.
type FuelType string

const (
	FuelPetrol FuelType = "petrol"
	FuelDiesel FuelType = "diesel"
	FuelHybrid FuelType = "hybrid"
	FuelEV     FuelType = "ev"
	FuelOther  FuelType = "other"
)

// IsValid checks if the fuel type is one of the allowed values.
func (f FuelType) IsValid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelHybrid, FuelEV, FuelOther:
		return true
	default:
		return false
	}
}

// Gearbox is the transmission preference.
type Gearbox string

const (
	GearboxAutomatic Gearbox = "automatic"
	GearboxManual    Gearbox = "manual"
	GearboxAny       Gearbox = "any"
)

// IsValid checks if the gearbox is one of the allowed values.
func (g Gearbox) IsValid() bool {
	switch g {
	case GearboxAutomatic, GearboxManual, GearboxAny:
		return true
	default:
		return false
	}
}

// BodyType is the vehicle's body style.
type BodyType string

const (
	BodySUV         BodyType = "suv"
	BodySedan       BodyType = "sedan"
	BodyWagon       BodyType = "wagon"
	BodyHatchback   BodyType = "hatchback"
	BodyCoupe       BodyType = "coupe"
	BodyConvertible BodyType = "convertible"
	BodyVan         BodyType = "van"
	BodyPickup      BodyType = "pickup"
	BodyOther       BodyType = "other"
)

// IsValid checks if the body type is one of the allowed values.
func (b BodyType) IsValid() bool {
	switch b {
	case BodySUV, BodySedan, BodyWagon, BodyHatchback, BodyCoupe,
		BodyConvertible, BodyVan, BodyPickup, BodyOther:
		return true
	default:
		return false
	}
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func coordinatesOf(lat, lng *float64) (Coordinates, bool) {
	if lat == nil || lng == nil {
		return Coordinates{}, false
	}

	return Coordinates{Latitude: *lat, Longitude: *lng}, true
}
