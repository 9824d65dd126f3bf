package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers
const (
	IdentityProviderJWT    = "jwt"
	IdentityProviderGoogle = "google"
)

// Marketplace defaults
const (
	DefaultCurrency     = "NOK"
	DefaultCountry      = "NO"
	UnknownVehicleValue = "Ukjent"
)
