package handlers

import (
	"net/http"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/middlewares"
	"outlet-service/services"
)

type UserHandler struct {
	users *services.UserService
}

func SetupUserRoutes(mux *http.ServeMux, users *services.UserService, am *middlewares.AuthMiddleware) {
	handler := UserHandler{
		users: users,
	}
	guard := func(permission string, next http.HandlerFunc) http.HandlerFunc {
		return middlewares.ChainMiddleware(am.RequireAuth, middlewares.RequirePermissions(permission))(next)
	}
	mux.HandleFunc("GET /user", guard("user:read", handler.list))
	mux.HandleFunc("POST /user", guard("user:create", handler.create))
	mux.HandleFunc("GET /user/{id}", guard("user:read", handler.get))
	mux.HandleFunc("PATCH /user/{id}", guard("user:update", handler.update))
	mux.HandleFunc("DELETE /user/{id}", guard("user:delete", handler.delete))
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	p := helper.ParsePagination(r)
	users, total, err := h.users.List(r.Context(), p, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccessWithMeta(w, http.StatusOK, "users retrieved", users, p.MetaFor(total))
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	user, err := h.users.Get(r.Context(), r.PathValue("id"), ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "user retrieved", user)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateUserDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	user, err := h.users.Create(r.Context(), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusCreated, "user created", user)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload dto.UpdateUserDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ident := middlewares.GetIdentityFromContext(r.Context())
	user, err := h.users.Update(r.Context(), r.PathValue("id"), payload, ident)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "user updated", user)
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	ident := middlewares.GetIdentityFromContext(r.Context())
	if err := h.users.Delete(r.Context(), r.PathValue("id"), ident); err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "user deleted", nil)
}
