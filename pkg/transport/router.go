package transport

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/aeste7/flw/pkg/domain/service"
)

type Handler struct {
	warehouse service.WarehouseService
	writeoffs service.WriteoffService
	orders    service.OrderService
	bouquets  service.BouquetService
	notes     service.NoteService
	validate  *validator.Validate
}

func NewHandler(
	warehouse service.WarehouseService,
	writeoffs service.WriteoffService,
	orders service.OrderService,
	bouquets service.BouquetService,
	notes service.NoteService,
) *Handler {
	return &Handler{
		warehouse: warehouse,
		writeoffs: writeoffs,
		orders:    orders,
		bouquets:  bouquets,
		notes:     notes,
		validate:  newValidator(),
	}
}

func Router(h *Handler) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/flowers", h.listFlowers).Methods(http.MethodGet)
	api.HandleFunc("/flowers", h.addFlowers).Methods(http.MethodPost)
	api.HandleFunc("/flowers/{id}", h.getFlower).Methods(http.MethodGet)
	api.HandleFunc("/flowers/{id}", h.updateFlower).Methods(http.MethodPut)
	api.HandleFunc("/flowers/{id}", h.removeFlower).Methods(http.MethodDelete)

	api.HandleFunc("/writeoffs", h.listWriteoffs).Methods(http.MethodGet)
	api.HandleFunc("/writeoffs", h.recordWriteoff).Methods(http.MethodPost)
	api.HandleFunc("/writeoffs", h.clearWriteoffs).Methods(http.MethodDelete)

	api.HandleFunc("/notes", h.listNotes).Methods(http.MethodGet)
	api.HandleFunc("/notes", h.createNote).Methods(http.MethodPost)
	api.HandleFunc("/notes/{id}", h.getNote).Methods(http.MethodGet)
	api.HandleFunc("/notes/{id}", h.updateNote).Methods(http.MethodPut)
	api.HandleFunc("/notes/{id}", h.deleteNote).Methods(http.MethodDelete)

	api.HandleFunc("/orders", h.listOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders", h.createOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", h.getOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", h.updateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}", h.deleteOrder).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id}/items", h.getOrderItems).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods(http.MethodPut)

	api.HandleFunc("/bouquets", h.listBouquets).Methods(http.MethodGet)
	api.HandleFunc("/bouquets", h.createBouquet).Methods(http.MethodPost)
	api.HandleFunc("/bouquets/{id}", h.getBouquet).Methods(http.MethodGet)
	api.HandleFunc("/bouquets/{id}/items", h.getBouquetItems).Methods(http.MethodGet)
	api.HandleFunc("/bouquets/{id}/sell", h.sellBouquet).Methods(http.MethodPost)
	api.HandleFunc("/bouquets/{id}/disassemble", h.disassembleBouquet).Methods(http.MethodPost)

	return logMiddleware(r)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
			"requestId":  requestID,
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
