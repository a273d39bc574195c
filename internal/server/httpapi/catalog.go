package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/shouxkream/internal/common"
	"github.com/dmitrijs2005/shouxkream/internal/server/auth"
	"github.com/dmitrijs2005/shouxkream/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type checkoutResponse struct {
	ID         int64     `json:"id"`
	Recipient  string    `json:"recipient"`
	Phone      string    `json:"phone"`
	Zipcode    string    `json:"zipcode"`
	Address1   string    `json:"address1"`
	Address2   string    `json:"address2"`
	Request    string    `json:"request"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id", common.ErrValidation)
	}
	return id, nil
}

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.Categories.List(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	out := make([]categoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, categoryResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	c, err := h.Categories.Get(r.Context(), id)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryResponse(*c))
}

func (h *handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	c, err := h.Categories.Create(r.Context(), req.Name)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryResponse(*c))
}

func (h *handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	var req categoryRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	c, err := h.Categories.Update(r.Context(), id, req.Name)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryResponse(*c))
}

func (h *handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	if err := h.Categories.Delete(r.Context(), id); err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) checkouts(w http.ResponseWriter, r *http.Request) {
	p, _ := auth.PrincipalFromContext(r.Context())
	list, err := h.Checkouts.ListForUser(r.Context(), p)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	out := make([]checkoutResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCheckoutResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func toCheckoutResponse(c models.Checkout) checkoutResponse {
	return checkoutResponse{
		ID:         c.ID,
		Recipient:  c.Recipient,
		Phone:      c.Phone,
		Zipcode:    c.Zipcode,
		Address1:   c.Address1,
		Address2:   c.Address2,
		Request:    c.Request,
		TotalPrice: c.TotalPrice,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
	}
}
