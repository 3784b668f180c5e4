package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "travel-api/pkg/http"
)

func newGateway(t *testing.T, handler http.HandlerFunc) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWeatherGateway(server.URL, "test-key", pkghttp.ClientOptions{
		ReadTimeout: 2 * time.Second,
	})
}

func TestGetCurrentParsesProviderPayload(t *testing.T) {
	var gotQuery map[string]string
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
			"lang":  r.URL.Query().Get("lang"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Paris",
			"main": {"temp": 20, "feels_like": 19.2, "temp_min": 18, "temp_max": 22, "humidity": 65},
			"weather": [{"main": "Clear", "description": "ciel clair", "icon": "01d"}],
			"wind": {"speed": 3.1},
			"clouds": {"all": 0}
		}`))
	})

	resp, err := gateway.GetCurrent("Paris", "France")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Paris,FR", gotQuery["q"])
	assert.Equal(t, "test-key", gotQuery["appid"])
	assert.Equal(t, "metric", gotQuery["units"])
	assert.Equal(t, "fr", gotQuery["lang"])

	assert.Equal(t, 20.0, resp.Main.Temp)
	assert.Equal(t, 65, resp.Main.Humidity)
	require.Len(t, resp.Weather, 1)
	assert.Equal(t, "Clear", resp.Weather[0].Main)
	assert.Equal(t, "ciel clair", resp.Weather[0].Description)
	assert.Equal(t, "01d", resp.Weather[0].Icon)
	assert.Equal(t, 3.1, resp.Wind.Speed)
	assert.Equal(t, 0, resp.Clouds.All)
}

func TestGetCurrentWithoutCountryQualifier(t *testing.T) {
	var gotLocation string
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotLocation = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "Tokyo", "main": {"temp": 12}}`))
	})

	resp, err := gateway.GetCurrent("Tokyo", "")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Tokyo", gotLocation)
}

func TestGetCurrentProviderErrorYieldsNoData(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"cod": "500", "message": "boom"}`))
	})

	resp, err := gateway.GetCurrent("Paris", "FR")
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetCurrentTimeoutYieldsNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	gateway := NewWeatherGateway(server.URL, "test-key", pkghttp.ClientOptions{
		ReadTimeout: 50 * time.Millisecond,
	})

	resp, err := gateway.GetCurrent("Paris", "FR")
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetForecastParsesList(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"city": {"name": "Paris", "country": "FR"},
			"list": [
				{"dt": 1700000000, "main": {"temp": 14.5, "humidity": 70}, "weather": [{"main": "Rain", "description": "pluie", "icon": "10d"}]},
				{"dt": 1700010800, "main": {"temp": 15.1, "humidity": 68}, "weather": [{"main": "Clouds", "description": "nuageux", "icon": "03d"}]}
			]
		}`))
	})

	resp, err := gateway.GetForecast("Paris", "France")
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.List, 2)
	assert.Equal(t, int64(1700000000), resp.List[0].Dt)
	assert.Equal(t, 14.5, resp.List[0].Main.Temp)
	assert.Equal(t, "Rain", resp.List[0].Weather[0].Main)
}

func TestGetForecastProviderErrorYieldsNoData(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	resp, err := gateway.GetForecast("Paris", "FR")
	assert.NoError(t, err)
	assert.Nil(t, resp)
}
