package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"holidaze/internal/services"
	"holidaze/internal/structures"
	"net/http"
	"time"
)

type HealthController struct {
	ledger    services.RatingLedgerInterface
	driver    string
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	StoreDriver   string  `json:"store_driver"`
	Ratings       int     `json:"ratings"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		StoreDriver:   hc.driver,
		Ratings:       len(hc.ledger.GetAllRatings(r.Context())),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(ledger services.RatingLedgerInterface, conf *structures.Config) *HealthController {
	return &HealthController{
		ledger:    ledger,
		driver:    conf.Store.Driver,
		startTime: time.Now(),
	}
}
