package handlers

import "net/http"

// NewRootHandler returns the liveness banner served at /.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("AI Recipe Generator API is running"))
	}
}
