package orders

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vendio/vendio/internal/platform/httpx"
	"github.com/vendio/vendio/internal/shared"
)

// Handler wires HTTP endpoints for sales.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	shape     ShapeOptions
}

func NewHandler(logger *slog.Logger, service *Service, shape ShapeOptions) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: shared.NewValidator(),
		shape:     shape,
	}
}

// MountRoutes registers sales routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.List)
	r.Post("/sales", h.Create)
	r.Get("/sales/{id}", h.Show)
	r.Delete("/sales/{id}", h.Cancel)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := ListSalesRequest{
		IncludeCancelled: r.URL.Query().Get("include_cancelled") == "true",
	}
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.RespondError(w, shared.Validationf("invalid client id"))
			return
		}
		req.ClientID = &id
	}

	rows, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if len(rows) == 0 {
		httpx.Message(w, http.StatusOK, "no sales found")
		return
	}
	httpx.JSON(w, http.StatusOK, Shape(rows, h.shape))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, shared.Validationf("invalid sale id"))
		return
	}

	rows, err := h.service.Show(r.Context(), id)
	if err != nil {
		if shared.KindOf(err) == shared.KindInternal {
			h.logger.Error("show sale", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}

	view, _ := ShapeOne(rows, h.shape)
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.Validationf("invalid request payload"))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.FirstValidationError(err))
		return
	}

	rows, err := h.service.Create(r.Context(), req)
	if err != nil {
		if shared.KindOf(err) == shared.KindInternal {
			h.logger.Error("create sale", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	view, _ := ShapeOne(rows, h.shape)
	httpx.JSON(w, http.StatusCreated, view)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, shared.Validationf("invalid sale id"))
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		if shared.KindOf(err) == shared.KindInternal {
			h.logger.Error("cancel sale", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "order (%d) deleted", id)
}
