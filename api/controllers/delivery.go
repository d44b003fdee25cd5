package controllers

import (
	"net/http"

	"github.com/foodexpress/foodexpress-backend/api/responses"
	"github.com/foodexpress/foodexpress-backend/api/validators"
	deliverysvc "github.com/foodexpress/foodexpress-backend/internal/delivery"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
	"github.com/foodexpress/foodexpress-backend/pkg/logger"
)

// DeliveryTime estimates the delivery window for a location passed in
// the query string. Older frontend builds send pincode= or city=
// instead of location=, so all three are accepted in that order of
// preference.
func DeliveryTime(svc deliverysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "delivery service unavailable"))
			return
		}

		location := validators.FirstQueryValue(r, "location", "pincode", "city")
		estimate, err := svc.EstimateDelivery(r.Context(), location)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, estimate)
	}
}
