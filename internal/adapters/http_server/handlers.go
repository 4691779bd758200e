package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"event_hotels/internal/adapters/auth"
	"event_hotels/internal/adapters/observability"
	"event_hotels/internal/domain"
)

type EntitlementChecker interface {
	Check(ctx context.Context, userID int64) error
}

type HotelQueries interface {
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	GetHotelDetail(ctx context.Context, id int64) (domain.HotelWithRooms, error)
}

type Handlers struct {
	Auth        Authenticator
	Entitlement EntitlementChecker
	Hotels      HotelQueries
	Limiter     *rate.Limiter // nil disables rate limiting
	// Ready checks run on /readyz, keyed by dependency name.
	Ready map[string]func(context.Context) error
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/readyz", h.ready)
	s.mux.Route("/hotels", func(r chi.Router) {
		if h.Limiter != nil {
			r.Use(RateLimit(h.Limiter))
		}
		r.Use(RequireAuth(h.Auth))
		r.Get("/", h.listHotels)
		r.Get("/{hotelId}", h.getHotel)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// fail maps a classified error to its status. Anything unclassified is a bare 400.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		writeProblem(w, http.StatusNotFound, "Not Found", domain.MessageOf(err))
	case domain.KindPaymentRequired:
		writeProblem(w, http.StatusPaymentRequired, "Payment Required", domain.MessageOf(err))
	default: // domain.KindBadRequest
		uid, _ := auth.UserIDFrom(r.Context())
		log.Error().Err(err).Str("route", routeOf(r)).Int64("user_id", uid).Msg("request failed")
		w.WriteHeader(http.StatusBadRequest)
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body, err := calcETagAndBody(v)
	if err != nil {
		fail(w, r, err)
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("route", routeOf(r)).Msg("failed to write body")
	}
}

func (h *Handlers) entitled(r *http.Request) error {
	uid, ok := auth.UserIDFrom(r.Context())
	if !ok {
		return errors.New("no authenticated user in context")
	}
	err := h.Entitlement.Check(r.Context(), uid)
	observability.ObserveEntitlement(entitlementOutcome(err))
	return err
}

func entitlementOutcome(err error) string {
	switch {
	case err == nil:
		return "granted"
	case errors.Is(err, domain.ErrNoEnrollment):
		return "no_enrollment"
	case errors.Is(err, domain.ErrNoTicket):
		return "no_ticket"
	case domain.KindOf(err) == domain.KindPaymentRequired:
		return "payment_required"
	default:
		return "error"
	}
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	if err := h.entitled(r); err != nil {
		fail(w, r, err)
		return
	}
	hs, err := h.Hotels.ListHotels(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, r, toHotelResponses(hs))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.entitled(r); err != nil {
		fail(w, r, err)
		return
	}
	id, err := parseHotelID(chi.URLParam(r, "hotelId"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid hotelId", err.Error())
		return
	}
	hd, err := h.Hotels.GetHotelDetail(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, r, toHotelDetailResponse(hd))
}

func (h *Handlers) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.Ready))
	for name, check := range h.Ready {
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = err.Error()
			continue
		}
		checks[name] = "ok"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(checks)
}
