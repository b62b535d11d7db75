package handlers

import (
	"net/http"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/middlewares"
	"outlet-service/services"
)

type RoleHandler struct {
	roles *services.RoleService
}

func SetupRoleRoutes(mux *http.ServeMux, roles *services.RoleService, am *middlewares.AuthMiddleware) {
	handler := RoleHandler{
		roles: roles,
	}
	guard := func(permission string, next http.HandlerFunc) http.HandlerFunc {
		return middlewares.ChainMiddleware(am.RequireAuth, middlewares.RequirePermissions(permission))(next)
	}
	mux.HandleFunc("GET /role", guard("role:read", handler.list))
	mux.HandleFunc("POST /role", guard("role:create", handler.create))
	mux.HandleFunc("GET /role/{id}", guard("role:read", handler.get))
	mux.HandleFunc("PATCH /role/{id}", guard("role:update", handler.update))
	mux.HandleFunc("DELETE /role/{id}", guard("role:delete", handler.delete))
}

func (h *RoleHandler) list(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	p := helper.ParsePagination(r)
	roles, total, err := h.roles.List(r.Context(), p, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccessWithMeta(w, http.StatusOK, "roles retrieved", roles, p.MetaFor(total))
}

func (h *RoleHandler) get(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	role, err := h.roles.Get(r.Context(), r.PathValue("id"), ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "role retrieved", role)
}

func (h *RoleHandler) create(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateRoleDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	role, err := h.roles.Create(r.Context(), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusCreated, "role created", role)
}

func (h *RoleHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload dto.UpdateRoleDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	role, err := h.roles.Update(r.Context(), r.PathValue("id"), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "role updated", role)
}

func (h *RoleHandler) delete(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	if err := h.roles.Delete(r.Context(), r.PathValue("id"), ident); err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "role deleted", nil)
}
