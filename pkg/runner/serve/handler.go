package serve

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"tableflip.dev/cal/pkg/monthgrid"
	"tableflip.dev/cal/pkg/render"
)

// Handler serves the calendar page and its JSON form. It holds no position
// of its own; every request names the month it wants.
type Handler struct {
	clock  monthgrid.Clock
	logger *slog.Logger
	html   *render.HTML
	json   *render.JSON

	mu        sync.RWMutex
	weekStart time.Weekday
}

// NewHandler prepares the templates used by the page.
func NewHandler(clock monthgrid.Clock, weekStart time.Weekday, logger *slog.Logger) (*Handler, error) {
	html, err := render.NewHTML(true)
	if err != nil {
		return nil, fmt.Errorf("serve: parse templates: %w", err)
	}
	if clock == nil {
		clock = monthgrid.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		clock:     clock,
		logger:    logger,
		html:      html,
		json:      &render.JSON{},
		weekStart: weekStart,
	}, nil
}

// SetWeekStart changes the first column for subsequent requests.
func (h *Handler) SetWeekStart(ws time.Weekday) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.weekStart = ws
}

// WeekStart is the first column used for rendering.
func (h *Handler) WeekStart() time.Weekday {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.weekStart
}

// Routes wires the handler into a mux wrapped with request logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.MonthGet)
	mux.HandleFunc("/api/grid", h.GridGet)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return logRequests(h.logger, mux)
}

// MonthGet renders the HTML page for ?year=&month=.
func (h *Handler) MonthGet(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	today := h.clock.Today()
	pos, err := positionFromQuery(r, today)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := render.NewPage(pos, today, h.WeekStart())
	page.PrevURL = monthURL(pos.Prev())
	page.NextURL = monthURL(pos.Next())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.html.Render(w, page); err != nil {
		h.renderInternalServerError(w, r, err)
	}
}

// GridGet returns the grid for ?year=&month=&delta= as JSON.
func (h *Handler) GridGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	today := h.clock.Today()
	pos, err := positionFromQuery(r, today)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	delta, err := intParam(r, "delta", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pos = monthgrid.Advance(pos, delta)

	w.Header().Set("Content-Type", "application/json")
	if err := h.json.Render(w, render.NewPage(pos, today, h.WeekStart())); err != nil {
		h.renderInternalServerError(w, r, err)
	}
}

func (h *Handler) renderInternalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("rendering failed", "path", r.URL.Path, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// positionFromQuery reads year and month, defaulting to today. The month is
// normalised through Advance so month=12 is January of the following year.
func positionFromQuery(r *http.Request, today monthgrid.Date) (monthgrid.Position, error) {
	year, err := intParam(r, "year", today.Year)
	if err != nil {
		return monthgrid.Position{}, err
	}
	month, err := intParam(r, "month", today.Month)
	if err != nil {
		return monthgrid.Position{}, err
	}
	return monthgrid.Advance(monthgrid.Position{Year: year}, month), nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}

func monthURL(p monthgrid.Position) string {
	return fmt.Sprintf("/?year=%d&month=%d", p.Year, p.Month)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
