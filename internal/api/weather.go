package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"demo-api/internal/models"
	"demo-api/internal/store"
)

// Weather data is synthetic and regenerated per request, so responses are
// cached briefly: repeated polls within the TTL see a stable forecast.
const weatherCacheTTL = 30 * time.Second

func makeForecast(days int) []models.WeatherForecast {
	forecast := make([]models.WeatherForecast, 0, days)
	for i := 1; i <= days; i++ {
		forecast = append(forecast, models.WeatherForecast{
			Date:         time.Now().AddDate(0, 0, i).Format(time.DateOnly),
			TemperatureC: rand.IntN(75) - 20,
			Summary:      store.WeatherSummaries[rand.IntN(len(store.WeatherSummaries))],
		})
	}
	return forecast
}

func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	h.writeForecast(w, r, 7)
}

func (h *Handler) ForecastDays(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.PathValue("days"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if days < 1 || days > 30 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Days must be between 1 and 30."})
		return
	}
	h.writeForecast(w, r, days)
}

func (h *Handler) writeForecast(w http.ResponseWriter, r *http.Request, days int) {
	ctx := r.Context()
	cacheKey := fmt.Sprintf("weather:forecast:%d", days)

	if cached, err := h.cache.Get(ctx, cacheKey); err == nil {
		slog.Info("Cache HIT", "key", cacheKey)
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	forecast := makeForecast(days)
	if body, err := json.Marshal(forecast); err == nil {
		go func() {
			_ = h.cache.Set(context.Background(), cacheKey, body, weatherCacheTTL)
		}()
	}
	writeJSON(w, http.StatusOK, forecast)
}

func (h *Handler) CurrentWeather(w http.ResponseWriter, r *http.Request) {
	current := models.CurrentWeather{
		Temperature: rand.IntN(50) - 10,
		Summary:     store.WeatherSummaries[rand.IntN(len(store.WeatherSummaries))],
		Humidity:    rand.IntN(80) + 20,
		WindSpeed:   rand.IntN(50),
		Timestamp:   time.Now().UTC(),
	}
	writeJSON(w, http.StatusOK, current)
}
