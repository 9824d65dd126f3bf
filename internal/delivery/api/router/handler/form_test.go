package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"carmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestForm(t *testing.T, values url.Values) *form {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	f, err := readForm(c)
	require.NoError(t, err)

	return f
}

func TestForm_Numbers(t *testing.T) {
	f := parseTestForm(t, url.Values{
		"yearFrom":  {"2019"},
		"yearTo":    {"snart"},
		"maxKm":     {" 80000 "},
		"budgetMax": {""},
		"latitude":  {"59.91"},
		"longitude": {"øst"},
	})

	assert.Equal(t, ptr(2019), f.optionalInt("yearFrom"))
	assert.Nil(t, f.optionalInt("yearTo"))
	assert.Equal(t, ptr(80000), f.optionalInt("maxKm"))
	assert.Nil(t, f.optionalInt("budgetMax"))
	assert.Nil(t, f.optionalInt("missing"))
	assert.Equal(t, 0, f.requiredInt("yearTo"))
	assert.Equal(t, ptr(59.91), f.optionalFloat("latitude"))
	assert.Nil(t, f.optionalFloat("longitude"))
}

func TestForm_Text(t *testing.T) {
	f := parseTestForm(t, url.Values{
		"title":      {"  Familiebil  "},
		"generation": {"   "},
	})

	assert.Equal(t, "Familiebil", f.text("title"))
	assert.Equal(t, "  Familiebil  ", f.raw("title"))
	assert.Nil(t, f.optionalText("generation"))
	assert.Nil(t, f.optionalText("missing"))
	assert.Equal(t, ptr("Familiebil"), f.optionalText("title"))
}

func TestForm_Checkbox(t *testing.T) {
	f := parseTestForm(t, url.Values{
		"wantsTradeIn":    {"on"},
		"financingNeeded": {"true"},
	})

	assert.True(t, f.checkbox("wantsTradeIn"))
	assert.False(t, f.checkbox("financingNeeded"))
	assert.False(t, f.checkbox("missing"))
}

func TestForm_ImageURLs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "strings kept", raw: `["https://cdn/a.jpg","https://cdn/b.png"]`, want: []string{"https://cdn/a.jpg", "https://cdn/b.png"}},
		{name: "non-strings dropped", raw: `["https://cdn/a.jpg", 3, null, {"url":"x"}]`, want: []string{"https://cdn/a.jpg"}},
		{name: "not json", raw: `https://cdn/a.jpg`, want: []string{}},
		{name: "not an array", raw: `{"url":"https://cdn/a.jpg"}`, want: []string{}},
		{name: "empty", raw: ``, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseTestForm(t, url.Values{"imageUrls": {tt.raw}})

			got := f.imageURLs("imageUrls")
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForm_Enums(t *testing.T) {
	f := parseTestForm(t, url.Values{
		"condition": {"new"},
		"fuelType":  {"plasma"},
		"gearbox":   {""},
	})

	assert.Equal(t, ptr(entity.ConditionNew), coercedEnum(f, "condition", entity.CarCondition.IsValid))
	assert.Nil(t, coercedEnum(f, "fuelType", entity.FuelType.IsValid))
	assert.Nil(t, coercedEnum(f, "gearbox", entity.Gearbox.IsValid))

	assert.Equal(t, ptr(entity.FuelType("plasma")), strictEnum[entity.FuelType](f, "fuelType"))
	assert.Nil(t, strictEnum[entity.Gearbox](f, "gearbox"))
}
