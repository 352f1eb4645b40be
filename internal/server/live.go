package server

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mckimdesign/archsite/internal/content"
	"github.com/mckimdesign/archsite/internal/site"
)

// RegisterLiveProjects renders project detail pages per request from the
// content provider instead of from the last build, so newly published
// projects appear without regenerating.
func RegisterLiveProjects(r chi.Router, gen *site.Generator) {
	r.Get("/projects/{slug}", handleLiveProject(gen))
	r.Get("/projects/{slug}/", handleLiveProject(gen))
}

func handleLiveProject(gen *site.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		found, err := gen.RenderProject(r.Context(), &buf, chi.URLParam(r, "slug"))
		if err != nil {
			log.Printf("server: rendering project: %v", err)
			status := http.StatusInternalServerError
			var fe *content.FetchError
			if errors.As(err, &fe) {
				status = http.StatusBadGateway
			}
			http.Error(w, http.StatusText(status), status)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if !found {
			w.WriteHeader(http.StatusNotFound)
		}
		w.Write(buf.Bytes())
	}
}
