package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
	"github.com/reihansyahfitra/hes-vault-client/internal/metrics"
	"github.com/reihansyahfitra/hes-vault-client/internal/service"
)

func orderQueryFromRequest(r *http.Request) api.OrderQuery {
	return api.OrderQuery{
		Status:   domain.OrderStatus(r.URL.Query().Get("status")).Normalize(),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "page_size"),
	}
}

type orderListResponse struct {
	Orders     []OrderView `json:"orders"`
	Pagination PageView    `json:"pagination"`
}

func (h *Handlers) ListMyRentals(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	list, err := h.rentals.ListMine(r.Context(), sess.Token, orderQueryFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orderListResponse{
		Orders:     h.orderViews(list.Orders, sess.User.Team),
		Pagination: pageView(list.Pagination),
	})
}

func (h *Handlers) ListAllRentals(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	list, err := h.rentals.ListAll(r.Context(), sess.Token, orderQueryFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orderListResponse{
		Orders:     h.orderViews(list.Orders, sess.User.Team),
		Pagination: pageView(list.Pagination),
	})
}

func (h *Handlers) GetRental(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	order, err := h.rentals.Get(r.Context(), sess.Token, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.orderView(order, sess.User.Team))
}

type checkoutFormResponse struct {
	Identification string   `json:"identification"`
	Phone          string   `json:"phone"`
	Notes          string   `json:"notes"`
	StartDate      string   `json:"start_date"`
	DurationWeeks  int      `json:"duration_weeks"`
	EndDate        string   `json:"end_date"`
	Cart           CartView `json:"cart"`
}

// CheckoutForm returns the prefilled rental request form together with the
// cart it will submit.
func (h *Handlers) CheckoutForm(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	cart, err := h.carts.Get(r.Context(), sess.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	form := h.checkout.DefaultForm()
	writeJSON(w, http.StatusOK, checkoutFormResponse{
		Identification: form.Identification,
		Phone:          form.Phone,
		Notes:          form.Notes,
		StartDate:      form.StartDate,
		DurationWeeks:  form.DurationWeeks,
		EndDate:        form.EndDate(),
		Cart:           h.cartView(cart, form.DurationWeeks),
	})
}

// SubmitCheckout receives the multipart rental request. Validation happens
// before any upload; the identification photo only travels once the form is
// acceptable.
func (h *Handlers) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if err := r.ParseMultipartForm(h.maxUpload + 1<<20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid form submission"})
		return
	}

	weeks, _ := strconv.Atoi(r.FormValue("duration_weeks"))
	form := service.CheckoutForm{
		Identification: r.FormValue("identification"),
		Phone:          r.FormValue("phone"),
		Notes:          r.FormValue("notes"),
		StartDate:      r.FormValue("start_date"),
		DurationWeeks:  weeks,
	}
	file := h.fileFromRequest(r, "identification_image")
	if file == nil {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "identification_image", Message: "An identification photo is required"},
		}})
		return
	}

	cart, err := h.carts.Get(r.Context(), sess.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	order, err := h.checkout.Submit(r.Context(), sess.Token, cart, form, *file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.orderView(order, sess.User.Team))
}

var knownActions = map[service.Action]bool{
	service.ActionApprove:       true,
	service.ActionReject:        true,
	service.ActionCancelRequest: true,
	service.ActionPayNow:        true,
	service.ActionMarkPaid:      true,
	service.ActionCancelRental:  true,
	service.ActionStartRental:   true,
	service.ActionMarkReturned:  true,
}

// PerformRentalAction triggers a status or payment transition. Destructive
// actions must arrive with confirm=true; the backend remains free to reject
// any transition it considers illegal.
func (h *Handlers) PerformRentalAction(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	vars := mux.Vars(r)
	action := service.Action(vars["action"])
	if !knownActions[action] {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Unknown rental action"})
		return
	}
	if action.Destructive() && !requireConfirmation(w, r) {
		return
	}

	order, err := h.rentals.Perform(r.Context(), sess.Token, vars["id"], action)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	metrics.RentalActionsTotal.WithLabelValues(string(action)).Inc()
	writeJSON(w, http.StatusOK, h.orderView(order, sess.User.Team))
}

// UploadRentalDocument attaches a before/after condition photo to an order.
func (h *Handlers) UploadRentalDocument(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	vars := mux.Vars(r)

	docType := domain.DocType(vars["docType"])
	if docType != domain.DocTypeBefore && docType != domain.DocTypeAfter {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Unknown documentation type"})
		return
	}

	file := h.fileFromRequest(r, "image")
	if file == nil {
		h.writeError(w, r, &service.ValidationError{Fields: []service.FieldError{
			{Field: "image", Message: "An image file is required"},
		}})
		return
	}

	order, err := h.rentals.UploadDocument(r.Context(), sess.Token, vars["id"], docType, *file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	metrics.RentalActionsTotal.WithLabelValues("UPLOAD_" + string(docType)).Inc()
	writeJSON(w, http.StatusOK, h.orderView(order, sess.User.Team))
}
