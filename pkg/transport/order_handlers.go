package transport

import (
	"net/http"

	"github.com/aeste7/flw/pkg/domain/model"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.orders.GetOrderItems(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	scheduledAt, err := parseDateTime(req.Order.DateTime)
	if err != nil {
		writeFieldErrors(w, []fieldError{{Field: "dateTime", Message: err.Error()}})
		return
	}

	order := &model.Order{
		From:        req.Order.From,
		To:          req.Order.To,
		Address:     req.Order.Address,
		ScheduledAt: scheduledAt,
		TimeFrom:    req.Order.TimeFrom,
		TimeTo:      req.Order.TimeTo,
		Notes:       req.Order.Notes,
		Status:      model.OrderStatus(req.Order.Status),
		Pickup:      req.Order.Pickup,
		Showcase:    req.Order.Showcase,
	}

	created, err := h.orders.CreateOrder(r.Context(), order, toLineItems(req.Items))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	upd := model.OrderUpdate{
		From:     req.Order.From,
		To:       req.Order.To,
		Address:  req.Order.Address,
		TimeFrom: req.Order.TimeFrom,
		TimeTo:   req.Order.TimeTo,
		Notes:    req.Order.Notes,
		Pickup:   req.Order.Pickup,
		Showcase: req.Order.Showcase,
	}
	if req.Order.DateTime != nil {
		scheduledAt, err := parseDateTime(*req.Order.DateTime)
		if err != nil {
			writeFieldErrors(w, []fieldError{{Field: "dateTime", Message: err.Error()}})
			return
		}
		upd.ScheduledAt = &scheduledAt
	}
	if req.Order.Status != nil {
		status, err := model.ParseOrderStatus(*req.Order.Status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		upd.Status = &status
	}

	updated, err := h.orders.UpdateOrder(r.Context(), id, upd, toLineItems(req.Items))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateOrderStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	order, err := h.orders.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.orders.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w)
}
