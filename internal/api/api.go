package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shutter-monitor/internal/db"
	"shutter-monitor/internal/shutter"
)

type repository interface {
	Daily(ctx context.Context, date string, cameraID string) (shutter.DailyRecord, error)
	Entries(ctx context.Context, date string, cameraID string) ([]shutter.LogEntry, error)
}

type API struct {
	DB       repository
	Stream   http.Handler
	Now      func() time.Time
	Location *time.Location
}

type Config struct {
	DB repository
	// Stream serves the rendered frames on /stream when set.
	Stream http.Handler
	Now    func() time.Time
	// Location picks "today" when no date is given; the host zone when nil.
	Location *time.Location
}

func New(cfg Config) *API {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &API{DB: cfg.DB, Stream: cfg.Stream, Now: now, Location: loc}
}

func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", a.Health)
	r.Get("/shutters/{camera_id}", a.GetDailyShutter)
	if a.Stream != nil {
		r.Handle("/stream", a.Stream)
	}
	return r
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// GetDailyShutter returns the daily record and log for ?date=YYYY-MM-DD,
// today when the date is omitted.
func (a *API) GetDailyShutter(w http.ResponseWriter, r *http.Request) {
	cameraID := chi.URLParam(r, "camera_id")
	date := r.URL.Query().Get("date")
	if date == "" {
		date = a.Now().In(a.Location).Format(shutter.DateLayout)
	} else if _, err := shutter.ParseDate(date); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	record, err := a.DB.Daily(r.Context(), date, cameraID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "no record for date", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	entries, err := a.DB.Entries(r.Context(), date, cameraID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := GetDailyShutterResponse{
		ID:        record.ID,
		Date:      record.Date.Format(shutter.DateLayout),
		CameraID:  record.CameraID,
		OpenTime:  formatClock(record.OpenTime),
		CloseTime: formatClock(record.CloseTime),
		Events:    make([]LogEntry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Events = append(resp.Events, LogEntry{
			ID:        e.ID,
			Time:      e.Time.Format(shutter.ClockLayout),
			Event:     string(e.Kind),
			Action:    e.Action,
			ShutterID: e.ShutterID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(shutter.ClockLayout)
	return &s
}
