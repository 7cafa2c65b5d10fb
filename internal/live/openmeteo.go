package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Reading is a normalized current-conditions sample for one location.
// Units follow the Open-Meteo air-quality API: µg/m³ for everything except
// CO, which is converted to mg/m³ to match the dataset's scale.
type Reading struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	PM25      float64   `json:"pm2_5"`
	PM10      float64   `json:"pm10"`
	NO2       float64   `json:"no2"`
	SO2       float64   `json:"so2"`
	CO        float64   `json:"co"`
	O3        float64   `json:"o3"`
}

// Fetcher retrieves current pollutant readings for a coordinate.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (Reading, error)
}

// OpenMeteoFetcher implements Fetcher against the Open-Meteo air-quality API.
// No API key is required.
type OpenMeteoFetcher struct {
	baseURL string
	client  *resilientClient
}

// NewOpenMeteoFetcher creates a fetcher with the default backoff and circuit
// breaker settings.
func NewOpenMeteoFetcher(client *http.Client) *OpenMeteoFetcher {
	return &OpenMeteoFetcher{
		baseURL: "https://air-quality-api.open-meteo.com/v1/air-quality",
		client:  newResilientClient(client, "openmeteo-air-quality"),
	}
}

func (f *OpenMeteoFetcher) Fetch(ctx context.Context, lat, lon float64) (Reading, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("current", "pm2_5,pm10,nitrogen_dioxide,sulphur_dioxide,carbon_monoxide,ozone")

		u := fmt.Sprintf("%s?%s", f.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := f.client.do(ctx, buildRequest)
	if err != nil {
		return Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Current   struct {
			Time            string  `json:"time"`
			PM25            float64 `json:"pm2_5"`
			PM10            float64 `json:"pm10"`
			NitrogenDioxide float64 `json:"nitrogen_dioxide"`
			SulphurDioxide  float64 `json:"sulphur_dioxide"`
			CarbonMonoxide  float64 `json:"carbon_monoxide"`
			Ozone           float64 `json:"ozone"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reading{}, err
	}

	ts, err := time.Parse("2006-01-02T15:04", payload.Current.Time)
	if err != nil {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	return Reading{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		Timestamp: ts,
		PM25:      payload.Current.PM25,
		PM10:      payload.Current.PM10,
		NO2:       payload.Current.NitrogenDioxide,
		SO2:       payload.Current.SulphurDioxide,
		// Open-Meteo reports CO in µg/m³; the formula expects mg/m³.
		CO: payload.Current.CarbonMonoxide / 1000,
		O3: payload.Current.Ozone,
	}, nil
}
