package contact

import (
	"encoding/json"
	"log"
	"mime"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds a submission body. The longest valid message is 5000
// runes, so this leaves room for multi-byte text and the other fields.
const maxBodyBytes = 64 << 10

// RegisterRoutes mounts the contact endpoint under /api/contact.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/contact", func(r chi.Router) {
		r.Post("/", handleSubmit(svc))
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, response{Message: MsgMethodNotAllowed})
		})
	})
}

type response struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func handleSubmit(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		sub, err := decodeSubmission(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, response{Message: MsgRequired})
			return
		}

		inq, err := svc.Submit(r.Context(), clientAddr(r), sub)
		if err != nil {
			rej := rejectionOf(err)
			if rej.Status >= http.StatusInternalServerError {
				log.Printf("contact: %v", rej)
			}
			writeJSON(w, rej.Status, response{Message: rej.Reason})
			return
		}

		resp := response{Message: MsgSuccess}
		if inq != nil {
			resp.ID = inq.ID
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// decodeSubmission accepts a JSON body or an ordinary form post.
func decodeSubmission(r *http.Request) (Submission, error) {
	var sub Submission
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return Submission{}, err
		}
		return sub, nil
	}

	if err := r.ParseForm(); err != nil {
		return Submission{}, err
	}
	sub.Name = r.PostForm.Get("name")
	sub.Email = r.PostForm.Get("email")
	sub.Message = r.PostForm.Get("message")
	sub.Website = r.PostForm.Get("website")
	return sub, nil
}

// clientAddr identifies the submitter: the first X-Forwarded-For hop, then
// X-Real-IP, then the connection's remote host.
func clientAddr(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
