package handlers

import (
	"net/http"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/middlewares"
	"outlet-service/services"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func SetupCategoryRoutes(mux *http.ServeMux, categories *services.CategoryService, am *middlewares.AuthMiddleware) {
	handler := CategoryHandler{
		categories: categories,
	}
	guard := func(permission string, next http.HandlerFunc) http.HandlerFunc {
		return middlewares.ChainMiddleware(am.RequireAuth, middlewares.RequirePermissions(permission))(next)
	}
	mux.HandleFunc("GET /category", guard("category:read", handler.list))
	mux.HandleFunc("POST /category", guard("category:create", handler.create))
	mux.HandleFunc("GET /category/{id}", guard("category:read", handler.get))
	mux.HandleFunc("PATCH /category/{id}", guard("category:update", handler.update))
	mux.HandleFunc("DELETE /category/{id}", guard("category:delete", handler.delete))
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	p := helper.ParsePagination(r)
	categories, total, err := h.categories.List(r.Context(), p, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccessWithMeta(w, http.StatusOK, "categories retrieved", categories, p.MetaFor(total))
}

func (h *CategoryHandler) get(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	category, err := h.categories.Get(r.Context(), r.PathValue("id"), ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "category retrieved", category)
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateCategoryDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	category, err := h.categories.Create(r.Context(), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusCreated, "category created", category)
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload dto.UpdateCategoryDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	category, err := h.categories.Update(r.Context(), r.PathValue("id"), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "category updated", category)
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	if err := h.categories.Delete(r.Context(), r.PathValue("id"), ident); err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "category deleted", nil)
}
