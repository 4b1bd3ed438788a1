package httpx

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/joao-fontenele/order-intake/internal/applog"
	"github.com/joao-fontenele/order-intake/internal/domain"
	"github.com/joao-fontenele/order-intake/internal/history"
)

// IntakeService is what the transport needs from the orchestrator.
type IntakeService interface {
	Execute(ctx context.Context, customer, product string, qty int, price float64) (domain.Order, bool)
}

type Handler struct {
	intake  IntakeService
	history *history.Store
	logger  *applog.Logger
	service string
	version string
	dbHost  string

	// healthRoll is the random draw behind the flaky health check;
	// injectable so tests can pin the outcome.
	healthRoll func() int
}

func NewHandler(intake IntakeService, store *history.Store, logger *applog.Logger, service, version, postgresURL string) *Handler {
	return &Handler{
		intake:     intake,
		history:    store,
		logger:     logger,
		service:    service,
		version:    version,
		dbHost:     redactPostgresURL(postgresURL),
		healthRoll: rand.Int,
	}
}

type createOrderResponse struct {
	domain.Order
	Persisted bool `json:"persisted"`
}

// HandleCreate accepts the legacy text payload
// "customer,product,qty,price". Missing or blank trailing fields fall
// back to defaults; malformed numerics are the only rejection path.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	customer, product, qty, price, err := parseCreatePayload(string(body))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order payload")
		return
	}

	order, persisted := h.intake.Execute(r.Context(), customer, product, qty, price)

	h.writeJSON(w, http.StatusOK, createOrderResponse{Order: order, Persisted: persisted})
}

func (h *Handler) HandleLast(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.history.Snapshot())
}

// HandleHealth reproduces the legacy flaky health check: roughly one
// call in thirteen fails with a generic server error.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.logger.Log("health ping")

	n := h.healthRoll()
	if n%13 == 0 {
		h.writeError(w, http.StatusInternalServerError, "random failure")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "roll": n})
}

// HandleInfo reports build metadata. The storage URL is reduced to its
// host; credentials never leave the process.
func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"service": h.service,
		"version": h.version,
		"storage": h.dbHost,
	})
}

func parseCreatePayload(body string) (customer, product string, qty int, price float64, err error) {
	parts := strings.Split(body, ",")

	field := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	customer = field(0)
	if customer == "" {
		customer = "anon"
	}

	product = field(1)
	if product == "" {
		product = "unknown"
	}

	qty = 1
	if raw := field(2); raw != "" {
		qty, err = strconv.Atoi(raw)
		if err != nil {
			return "", "", 0, 0, err
		}
	}

	price = 0.99
	if raw := field(3); raw != "" {
		price, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", "", 0, 0, err
		}
	}

	return customer, product, qty, price, nil
}

func redactPostgresURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "unknown"
	}
	return u.Host + u.Path
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Log("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
