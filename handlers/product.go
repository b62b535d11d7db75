package handlers

import (
	"net/http"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/middlewares"
	"outlet-service/services"
)

type ProductHandler struct {
	products *services.ProductService
}

func SetupProductRoutes(mux *http.ServeMux, products *services.ProductService, am *middlewares.AuthMiddleware) {
	handler := ProductHandler{
		products: products,
	}
	guard := func(permission string, next http.HandlerFunc) http.HandlerFunc {
		return middlewares.ChainMiddleware(am.RequireAuth, middlewares.RequirePermissions(permission))(next)
	}
	mux.HandleFunc("GET /product", guard("product:read", handler.list))
	mux.HandleFunc("POST /product", guard("product:create", handler.create))
	mux.HandleFunc("GET /product/{id}", guard("product:read", handler.get))
	mux.HandleFunc("PATCH /product/{id}", guard("product:update", handler.update))
	mux.HandleFunc("DELETE /product/{id}", guard("product:delete", handler.delete))
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	p := helper.ParsePagination(r)
	products, total, err := h.products.List(r.Context(), p, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccessWithMeta(w, http.StatusOK, "products retrieved", products, p.MetaFor(total))
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	product, err := h.products.Get(r.Context(), r.PathValue("id"), ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "product retrieved", product)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateProductDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	product, err := h.products.Create(r.Context(), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusCreated, "product created", product)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload dto.UpdateProductDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	product, err := h.products.Update(r.Context(), r.PathValue("id"), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "product updated", product)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	if err := h.products.Delete(r.Context(), r.PathValue("id"), ident); err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "product deleted", nil)
}
