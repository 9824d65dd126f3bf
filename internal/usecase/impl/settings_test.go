package impl

import (
	"testing"
	"time"

	"carmarket/config"
	"carmarket/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestNewMarketplaceSettings(t *testing.T) {
	t.Run("nil config falls back to platform defaults", func(t *testing.T) {
		settings := NewMarketplaceSettings(nil)

		assert.Equal(t, constants.DefaultCurrency, settings.Currency)
		assert.Equal(t, constants.DefaultCountry, settings.Country)
		assert.Zero(t, settings.RequestTTL)
	})

	t.Run("marketplace section never changes the currency", func(t *testing.T) {
		settings := NewMarketplaceSettings(&config.Config{
			Marketplace: &config.MarketplaceConfig{Country: "SE", RequestTTL: 720 * time.Hour},
		})

		assert.Equal(t, "NOK", settings.Currency)
		assert.Equal(t, "SE", settings.Country)
		assert.Equal(t, 720*time.Hour, settings.RequestTTL)
	})
}
