package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/avelez-dev/airquality-dashboard/internal/aqi"
	"github.com/avelez-dev/airquality-dashboard/internal/charts"
	"github.com/avelez-dev/airquality-dashboard/internal/dashboard"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *dashboard.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/dataset", func(c *fiber.Ctx) error {
		ds, err := service.Dataset()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate dataset")
		}

		records := ds.Records
		if limitStr := c.Query("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
			}
			if limit < len(records) {
				records = records[:limit]
			}
		}

		return c.JSON(fiber.Map{
			"n":       ds.N,
			"seed":    ds.Seed,
			"records": records,
		})
	})

	v1.Get("/dataset/summary", func(c *fiber.Ctx) error {
		ds, err := service.Dataset()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate dataset")
		}
		return c.JSON(charts.Summary(ds, 5))
	})

	v1.Get("/charts/histogram", func(c *fiber.Ctx) error {
		pollutant := c.Query("pollutant")
		if pollutant == "" {
			return fiber.NewError(fiber.StatusBadRequest, "pollutant query parameter is required")
		}

		bins := charts.DefaultBins
		if binsStr := c.Query("bins"); binsStr != "" {
			n, err := strconv.Atoi(binsStr)
			if err != nil || n <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "bins must be a positive integer")
			}
			bins = n
		}

		ds, err := service.Dataset()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate dataset")
		}

		cfg, err := charts.Histogram(ds, pollutant, bins)
		if err != nil {
			if errors.Is(err, charts.ErrUnknownColumn) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build histogram")
		}
		return c.JSON(cfg)
	})

	v1.Get("/charts/trend", func(c *fiber.Ctx) error {
		ds, err := service.Dataset()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate dataset")
		}
		return c.JSON(charts.Trend(ds))
	})

	v1.Get("/charts/correlation", func(c *fiber.Ctx) error {
		ds, err := service.Dataset()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate dataset")
		}
		return c.JSON(charts.Correlation(ds))
	})

	v1.Get("/charts/pairgrid", func(c *fiber.Ctx) error {
		ds, err := service.Dataset()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate dataset")
		}

		grid, err := charts.PairGrid(ds, nil)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build pair grid")
		}
		return c.JSON(grid)
	})

	v1.Post("/predict", func(c *fiber.Ctx) error {
		var req predictRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		pred, err := service.Predict(req.PM25, req.PM10, req.NO2, req.SO2, req.CO, req.O3)
		if err != nil {
			if errors.Is(err, aqi.ErrInvalidArgument) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to score input")
		}
		return c.JSON(pred)
	})

	v1.Get("/live", func(c *fiber.Ctx) error {
		var req liveQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res, err := service.Live(c.Context(), req.Lat, req.Lon)
		if err != nil {
			if errors.Is(err, dashboard.ErrLiveDisabled) {
				return fiber.NewError(fiber.StatusNotFound, "live readings are disabled")
			}
			return fiber.NewError(fiber.StatusServiceUnavailable, "failed to fetch live reading")
		}
		return c.JSON(res)
	})
}

// predictRequest is the sidebar form payload. Temperature, humidity and wind
// are accepted for form fidelity but do not influence the score. Ranges match
// the documented input bounds of the prediction form.
type predictRequest struct {
	PM25        float64 `json:"pm2_5" validate:"gte=0,lte=500"`
	PM10        float64 `json:"pm10" validate:"gte=0,lte=500"`
	NO2         float64 `json:"no2" validate:"gte=0,lte=200"`
	SO2         float64 `json:"so2" validate:"gte=0,lte=200"`
	CO          float64 `json:"co" validate:"gte=0,lte=50"`
	O3          float64 `json:"o3" validate:"gte=0,lte=300"`
	Temperature float64 `json:"temperature" validate:"gte=-10,lte=50"`
	Humidity    float64 `json:"humidity" validate:"gte=0,lte=100"`
	Wind        float64 `json:"wind" validate:"gte=0,lte=20"`
}

// liveQuery holds the coordinate parameters for the live endpoint.
type liveQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func (q *liveQuery) bind(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return errors.New("lon must be a number")
	}

	q.Lat = lat
	q.Lon = lon
	return validate.Struct(q)
}
