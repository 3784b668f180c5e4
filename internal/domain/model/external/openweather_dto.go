package external

// MainDTO carries the temperature block of an OpenWeatherMap payload.
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// ConditionDTO is one entry of the weather[] array.
type ConditionDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WindDTO carries wind data.
type WindDTO struct {
	Speed float64 `json:"speed"`
}

// CloudsDTO carries cloud coverage as a 0-100 percentage.
type CloudsDTO struct {
	All int `json:"all"`
}

// CurrentWeatherResponse represents the provider's current-conditions payload
// (GET /weather). The same shape, plus a dt timestamp, is reused for each
// forecast point.
type CurrentWeatherResponse struct {
	Name    string         `json:"name"`
	Main    MainDTO        `json:"main"`
	Weather []ConditionDTO `json:"weather"`
	Wind    WindDTO        `json:"wind"`
	Clouds  CloudsDTO      `json:"clouds"`
	Dt      int64          `json:"dt"`
}

// ForecastResponse represents the provider's multi-day forecast payload
// (GET /forecast): one point roughly every three hours.
type ForecastResponse struct {
	City CityDTO                  `json:"city"`
	List []CurrentWeatherResponse `json:"list"`
}

// CityDTO identifies the resolved location of a forecast response.
type CityDTO struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// APIErrorResponse represents error payloads from the weather provider.
type APIErrorResponse struct {
	Cod     string `json:"cod"`
	Message string `json:"message"`
}
