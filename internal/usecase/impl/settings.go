package impl

import (
	"time"

	"carmarket/config"
	"carmarket/internal/domain/constants"
)

// MarketplaceSettings are the business knobs the services read from config.
// Currency is not one of them: every request and offer is priced in the
// platform currency.
type MarketplaceSettings struct {
	Currency   string
	Country    string
	RequestTTL time.Duration
}

// NewMarketplaceSettings pulls the marketplace section out of the loaded config.
func NewMarketplaceSettings(cfg *config.Config) MarketplaceSettings {
	settings := MarketplaceSettings{
		Currency: constants.DefaultCurrency,
		Country:  constants.DefaultCountry,
	}
	if cfg == nil || cfg.Marketplace == nil {
		return settings
	}

	if cfg.Marketplace.Country != "" {
		settings.Country = cfg.Marketplace.Country
	}
	settings.RequestTTL = cfg.Marketplace.RequestTTL

	return settings
}
