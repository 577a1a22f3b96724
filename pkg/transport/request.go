package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/aeste7/flw/pkg/domain/model"
)

type addFlowersRequest struct {
	Flower string `json:"flower" validate:"required"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

type updateFlowerRequest struct {
	Flower *string `json:"flower" validate:"omitempty,min=1"`
	Amount *int    `json:"amount" validate:"omitempty,gte=0"`
}

type recordWriteoffRequest struct {
	Flower string `json:"flower" validate:"required"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

type noteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

type lineItemRequest struct {
	Flower string `json:"flower" validate:"required"`
	Amount int    `json:"amount" validate:"required,gt=0"`
}

// Delivery orders need a recipient, an address and a time window; pickup
// orders get fixed sentinel values instead, and showcase sales have no
// scheduled window at all. An order cannot be born deleted: soft deletion
// goes through DELETE /orders/{id} so the stock credit-back always has a
// matching debit.
type createOrderRequest struct {
	Order struct {
		From     string  `json:"from" validate:"required"`
		To       string  `json:"to" validate:"required_unless=Pickup true"`
		Address  string  `json:"address" validate:"required_unless=Pickup true"`
		DateTime string  `json:"dateTime" validate:"required"`
		TimeFrom *string `json:"timeFrom" validate:"required_if=Pickup false Showcase false"`
		TimeTo   *string `json:"timeTo" validate:"required_if=Pickup false Showcase false"`
		Notes    *string `json:"notes"`
		Status   string  `json:"status" validate:"omitempty,oneof=new assembled sent finished"`
		Pickup   bool    `json:"pickup"`
		Showcase bool    `json:"showcase"`
	} `json:"order"`
	Items []lineItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Order struct {
		From     *string `json:"from" validate:"omitempty,min=1"`
		To       *string `json:"to"`
		Address  *string `json:"address"`
		DateTime *string `json:"dateTime"`
		TimeFrom *string `json:"timeFrom"`
		TimeTo   *string `json:"timeTo"`
		Notes    *string `json:"notes"`
		Status   *string `json:"status" validate:"omitempty,oneof=new assembled sent finished deleted"`
		Pickup   *bool   `json:"pickup"`
		Showcase *bool   `json:"showcase"`
	} `json:"order"`
	Items []lineItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new assembled sent finished deleted"`
}

type createBouquetRequest struct {
	Description string            `json:"description"`
	Photo       *string           `json:"photo"`
	Items       []lineItemRequest `json:"items" validate:"required,min=1,dive"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names the way clients sent them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode unmarshals the body into dst and validates it; on failure it writes
// the 400 response itself and reports false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			writeMessage(w, http.StatusBadRequest, "malformed request body")
			return false
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fieldErrs := make([]fieldError, 0, len(verrs))
			for _, fe := range verrs {
				fieldErrs = append(fieldErrs, fieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			writeFieldErrors(w, fieldErrs)
			return false
		}
		writeMessage(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_unless":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must not be empty"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func parseDateTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("dateTime must be an RFC 3339 timestamp")
	}
	return t, nil
}

func toLineItems(items []lineItemRequest) []model.LineItem {
	converted := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		converted = append(converted, model.LineItem{Flower: item.Flower, Amount: item.Amount})
	}
	return converted
}
