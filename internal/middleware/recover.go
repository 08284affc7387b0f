package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// ApologyResponse is the chat reply sent when a request fails unexpectedly.
const ApologyResponse = "Sorry, something went wrong on my end. Please try again in a moment. 💙"

// Recover turns a panic into the apologetic chat reply with a success
// status, so chat clients render it like any other answer.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slog.Error("panic in http handler",
				"panic", rec,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{"response": ApologyResponse})
		}()

		next.ServeHTTP(w, r)
	})
}
