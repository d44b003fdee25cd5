package controllers

import (
	"net/http"

	"github.com/foodexpress/foodexpress-backend/api/responses"
	menusvc "github.com/foodexpress/foodexpress-backend/internal/menu"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
	"github.com/foodexpress/foodexpress-backend/pkg/logger"
)

// MenuList returns the full menu, newest dishes first.
func MenuList(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		result, err := svc.ListMenu(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
