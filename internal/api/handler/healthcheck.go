package handler

import (
	"context"
	"net/http"
	"time"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica uma dependência externa
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				body["status"] = "degraded"
				body["database"] = err.Error()
				writeJSON(w, r, http.StatusServiceUnavailable, body)
				return
			}
			body["database"] = "ok"
		}

		writeJSON(w, r, http.StatusOK, body)
	})
}
