package handlers

import (
	"net/http"

	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/middlewares"
	"outlet-service/services"
)

type BackofficeUserHandler struct {
	users *services.BackofficeUserService
}

func SetupBackofficeUserRoutes(mux *http.ServeMux, users *services.BackofficeUserService, am *middlewares.AuthMiddleware) {
	handler := BackofficeUserHandler{
		users: users,
	}
	mux.HandleFunc("GET /backoffice/users", am.RequireAdmin(handler.list))
	mux.HandleFunc("POST /backoffice/users", am.RequireAdmin(handler.create))
	mux.HandleFunc("GET /backoffice/users/{id}", am.RequireAdmin(handler.get))
	mux.HandleFunc("PUT /backoffice/users/{id}", am.RequireAdmin(handler.update))
	mux.HandleFunc("DELETE /backoffice/users/{id}", am.RequireAdmin(handler.delete))
}

func (h *BackofficeUserHandler) list(w http.ResponseWriter, r *http.Request) {
	p := helper.ParsePagination(r)
	users, total, err := h.users.List(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccessWithMeta(w, http.StatusOK, "users retrieved", users, p.MetaFor(total))
}

func (h *BackofficeUserHandler) get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "user retrieved", user)
}

func (h *BackofficeUserHandler) create(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateUserBackofficeDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Create(r.Context(), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusCreated, "user created", user)
}

func (h *BackofficeUserHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload dto.UpdateUserDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Update(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "user updated", user)
}

func (h *BackofficeUserHandler) delete(w http.ResponseWriter, r *http.Request) {
	outletRemoved, err := h.users.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	message := "user deleted"
	if outletRemoved {
		message = "user and empty outlet deleted"
	}
	helper.WriteSuccess(w, http.StatusOK, message, nil)
}
