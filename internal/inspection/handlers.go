package inspection

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"otoman/internal/api"
)

type Repo interface {
	Store
	ListByUser(ctx context.Context, userID string, page int) ([]Inspection, Pagination, error)
	GetByUser(ctx context.Context, userID, id string) (*Inspection, error)
}

type Handlers struct {
	Log   *zap.Logger
	Repo  Repo
	Price decimal.Decimal
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Body request tidak valid")
		return
	}

	now := time.Now()
	if errs := req.Validate(now); errs.Any() {
		api.WriteValidationErrors(w, "Data pesanan tidak valid", errs)
		return
	}

	creator := Creator{Store: h.Repo, Price: h.Price}
	ins, err := creator.Create(r.Context(), u.ID, req, now)
	if err != nil {
		h.Log.Error("create inspection", zap.String("user_id", u.ID), zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "Gagal membuat pesanan inspeksi")
		return
	}

	h.Log.Info("inspection created",
		zap.String("user_id", u.ID),
		zap.String("order_code", ins.OrderCode),
	)
	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Pesanan inspeksi berhasil dibuat",
		"data":    ins,
	})
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	items, pg, err := h.Repo.ListByUser(r.Context(), u.ID, page)
	if err != nil {
		h.Log.Error("list inspections", zap.String("user_id", u.ID), zap.Error(err))
		api.WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan server")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "OK",
		"data": map[string]any{
			"data":         items,
			"current_page": pg.CurrentPage,
			"per_page":     pg.PerPage,
			"total":        pg.Total,
			"last_page":    pg.LastPage,
		},
	})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "Parameter id wajib diisi")
		return
	}

	ins, err := h.Repo.GetByUser(r.Context(), u.ID, id)
	if err != nil {
		if err != pgx.ErrNoRows {
			h.Log.Error("get inspection", zap.String("user_id", u.ID), zap.Error(err))
		}
		api.WriteError(w, http.StatusNotFound, "Pesanan tidak ditemukan")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "OK",
		"data":    ins,
	})
}
