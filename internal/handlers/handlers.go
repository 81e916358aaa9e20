// Package handlers exposes the calculator and catalog over JSON HTTP
// endpoints and serves as the presentation boundary: percent/fraction
// conversion, ru-RU formatting of result strings, and session recall all
// live here, not in the engine.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Kreemchek/unitka20/internal/catalog"
	"github.com/Kreemchek/unitka20/internal/database"
	"github.com/Kreemchek/unitka20/internal/economics"
	"github.com/Kreemchek/unitka20/internal/sources"
	"github.com/Kreemchek/unitka20/internal/telegram"
)

const (
	sessionName    = "wb_calc_session"
	lastInputsKey  = "lastInputs"
	initDataHeader = "X-Telegram-Init-Data"
	maxUploadBytes = 10 << 20
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	db       *database.DB
	sources  *sources.Service
	telegram *telegram.Client
	store    sessions.Store
	printer  *message.Printer

	mu      sync.RWMutex
	catalog *catalog.Catalog
	loaded  bool
}

// NewHandler creates a new handler. The catalog starts empty; SetCatalog
// installs the loaded one once the startup load finishes.
func NewHandler(db *database.DB, src *sources.Service, tg *telegram.Client, store sessions.Store) *Handler {
	return &Handler{
		db:       db,
		sources:  src,
		telegram: tg,
		store:    store,
		printer:  message.NewPrinter(language.Russian),
		catalog:  catalog.New(),
	}
}

// SetCatalog replaces the live catalog wholesale.
func (h *Handler) SetCatalog(c *catalog.Catalog) {
	h.mu.Lock()
	h.catalog = c
	h.loaded = true
	h.mu.Unlock()
}

func (h *Handler) currentCatalog() *catalog.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalog
}

// JSON response helper
func jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// Error response helper
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// HealthCheck returns API health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	count, loaded := h.catalog.Len(), h.loaded
	h.mu.RUnlock()

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":             "ok",
		"products":           count,
		"catalogLoaded":      loaded,
		"telegramConfigured": h.telegram.IsConfigured(),
	})
}

// decodeCalculationInput reads the request body and converts the UI's
// percent fields to the engine's fractions.
func decodeCalculationInput(r *http.Request) (economics.Input, error) {
	var in economics.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, fmt.Errorf("invalid request body: %w", err)
	}
	// The form sends commission and redemption as percents (15.5, 85).
	in.WBCommission /= 100
	in.RedemptionRate /= 100
	return in, nil
}

// Calculate runs the unit-economics engine over the submitted figures.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	in, err := decodeCalculationInput(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	valid, invalid := in.Validate()
	if !valid {
		jsonResponse(w, http.StatusBadRequest, map[string]interface{}{
			"valid":         false,
			"invalidFields": invalid,
		})
		return
	}

	unit := economics.CalculateUnitEconomics(in)
	totals := economics.CalculateTotals(in, unit)

	h.rememberInputs(w, r, in)

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"valid":     true,
		"unit":      unit,
		"totals":    totals,
		"formatted": h.formatResults(unit, totals),
	})
}

// rememberInputs stores the last calculation in the session so the form can
// be re-populated on the next visit. Best effort.
func (h *Handler) rememberInputs(w http.ResponseWriter, r *http.Request, in economics.Input) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		return
	}
	data, err := json.Marshal(in)
	if err != nil {
		return
	}
	session.Values[lastInputsKey] = string(data)
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to save session: %v", err)
	}
}

// GetLastInputs returns the previous calculation's inputs, if any.
func (h *Handler) GetLastInputs(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		jsonResponse(w, http.StatusOK, map[string]interface{}{"found": false})
		return
	}

	raw, ok := session.Values[lastInputsKey].(string)
	if !ok {
		jsonResponse(w, http.StatusOK, map[string]interface{}{"found": false})
		return
	}

	var in economics.Input
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		jsonResponse(w, http.StatusOK, map[string]interface{}{"found": false})
		return
	}

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"found":  true,
		"inputs": in,
	})
}

// GetExample returns the demo preset for the UI's "load example" action,
// with the fraction fields converted back to form percents.
func (h *Handler) GetExample(w http.ResponseWriter, r *http.Request) {
	example := economics.ExampleInput
	example.WBCommission *= 100
	example.RedemptionRate *= 100
	jsonResponse(w, http.StatusOK, example)
}

// GetProducts returns the whole catalog in order.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	cat := h.currentCatalog()
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"products": cat.Products(),
		"total":    cat.Len(),
	})
}

// SearchProducts returns autocomplete suggestions for the q parameter.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	results := h.currentCatalog().Search(r.URL.Query().Get("q"))
	if results == nil {
		results = []catalog.Product{}
	}
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"products": results,
		"total":    len(results),
	})
}

// AddProduct appends a single user-supplied product.
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	added, err := h.sources.AddProduct(h.catalog, p)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !added {
		jsonResponse(w, http.StatusConflict, map[string]interface{}{
			"added": false,
			"error": "product with this name already exists",
		})
		return
	}
	h.catalog.Append(p)

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"added": true,
		"total": h.catalog.Len(),
	})
}

// importRequest is the body of POST /api/products/import.
type importRequest struct {
	Data   string `json:"data"`
	Format string `json:"format"`
}

// ImportProducts imports a pasted JSON or CSV batch into the user layer.
func (h *Handler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	format := catalog.Format(strings.ToLower(req.Format))
	if format != catalog.FormatJSON && format != catalog.FormatCSV {
		errorResponse(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	result, err := h.sources.ImportProducts(h.currentCatalog(), req.Data, format)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.reloadCatalog(r.Context())

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"imported": len(result.Accepted),
		"rejected": result.Rejected,
		"products": result.Accepted,
	})
}

// UploadCatalog replaces the external catalog layer with an uploaded file.
func (h *Handler) UploadCatalog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "failed to read file")
		return
	}

	count, err := h.sources.ReplaceFromUpload(header.Filename, data)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// The upload becomes the live catalog immediately, without rerunning
	// the remote part of the source chain.
	external, err := h.db.GetLayer(database.LayerExternal)
	if err == nil {
		h.SetCatalog(catalog.New(external))
	}

	log.Printf("Catalog replaced from upload %q: %d products", header.Filename, count)
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"loaded": count,
		"total":  h.currentCatalog().Len(),
	})
}

// ReloadCatalog reruns the whole source chain and swaps in the result.
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	h.reloadCatalog(r.Context())
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"total": h.currentCatalog().Len(),
	})
}

func (h *Handler) reloadCatalog(ctx context.Context) {
	h.SetCatalog(h.sources.LoadCatalog(ctx))
}

// ExportResults computes a calculation, persists it as a snapshot and
// returns the snapshot document. When an admin chat is configured the
// document is also sent there.
func (h *Handler) ExportResults(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	in, err := decodeCalculationInput(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if valid, invalid := in.Validate(); !valid {
		jsonResponse(w, http.StatusBadRequest, map[string]interface{}{
			"valid":         false,
			"invalidFields": invalid,
		})
		return
	}

	unit := economics.CalculateUnitEconomics(in)
	totals := economics.CalculateTotals(in, unit)

	snapshot := map[string]interface{}{
		"id":        uuid.NewString(),
		"timestamp": time.Now().Format(time.RFC3339),
		"inputs":    in,
		"results":   h.formatResults(unit, totals),
	}
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to build snapshot")
		return
	}

	id := snapshot["id"].(string)
	if err := h.db.SaveSnapshot(id, payload); err != nil {
		log.Printf("Failed to save snapshot %s: %v", id, err)
	}

	if h.telegram.IsConfigured() && h.telegram.AdminChatID() != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			filename := fmt.Sprintf("wb-calc-%s.json", time.Now().Format("2006-01-02"))
			if err := h.telegram.SendDocument(ctx, h.telegram.AdminChatID(), filename, payload,
				"Экспорт расчёта юнит-экономики"); err != nil {
				log.Printf("Failed to send export to admin: %v", err)
			}
		}()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="wb-calc-results.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// GetSnapshots lists recent export snapshots, newest first.
func (h *Handler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.db.GetSnapshots(20)
	if err != nil {
		log.Printf("GetSnapshots error: %v", err)
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"snapshots": snapshots,
		"total":     len(snapshots),
	})
}

// CheckAccess validates the Web App init data and, when a channel is
// configured, requires the user to be subscribed to it.
func (h *Handler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	if !h.telegram.IsConfigured() {
		jsonResponse(w, http.StatusOK, map[string]interface{}{"allowed": true})
		return
	}

	user, err := h.telegram.ValidateInitData(r.Header.Get(initDataHeader))
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "invalid init data")
		return
	}

	member, err := h.telegram.IsChannelMember(r.Context(), user.ID)
	if err != nil {
		log.Printf("Subscription check failed for user %d: %v", user.ID, err)
	}
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"allowed": member,
		"user":    user.DisplayName(),
	})
}

// ShareResults sends a formatted summary of the calculation to the Web App
// user's own chat.
func (h *Handler) ShareResults(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if !h.telegram.IsConfigured() {
		errorResponse(w, http.StatusServiceUnavailable, "telegram is not configured")
		return
	}

	user, err := h.telegram.ValidateInitData(r.Header.Get(initDataHeader))
	if err != nil {
		errorResponse(w, http.StatusUnauthorized, "invalid init data")
		return
	}

	in, err := decodeCalculationInput(r)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if valid, invalid := in.Validate(); !valid {
		jsonResponse(w, http.StatusBadRequest, map[string]interface{}{
			"valid":         false,
			"invalidFields": invalid,
		})
		return
	}

	unit := economics.CalculateUnitEconomics(in)
	text := h.formatShareMessage(in, unit)

	chatID := fmt.Sprintf("%d", user.ID)
	if err := h.telegram.SendMessage(r.Context(), chatID, text); err != nil {
		log.Printf("Failed to share results with user %d: %v", user.ID, err)
		errorResponse(w, http.StatusBadGateway, "failed to send message")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]interface{}{"sent": true})
}
