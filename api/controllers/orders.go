package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/api/responses"
	"github.com/foodexpress/foodexpress-backend/api/validators"
	ordersvc "github.com/foodexpress/foodexpress-backend/internal/orders"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
	"github.com/foodexpress/foodexpress-backend/pkg/logger"
)

// OrderCreate places a new order.
func OrderCreate(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.PlaceOrder(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// placeOrderRequest mirrors the frontend checkout payload. Field-level
// checks live in the service so the error strings stay stable.
type placeOrderRequest struct {
	FoodName     string               `json:"foodName"`
	UserLocation orderLocationPayload `json:"userLocation"`
	TotalAmount  *decimal.Decimal     `json:"totalAmount"`
}

type orderLocationPayload struct {
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func (p placeOrderRequest) toInput() ordersvc.PlaceOrderInput {
	return ordersvc.PlaceOrderInput{
		FoodName: p.FoodName,
		Location: ordersvc.LocationInput{
			Pincode: p.UserLocation.Pincode,
			City:    p.UserLocation.City,
			Address: p.UserLocation.Address,
		},
		TotalAmount: p.TotalAmount,
	}
}
