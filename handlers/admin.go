package handlers

import (
	"net/http"

	"outlet-service/config"
	"outlet-service/dto"
	"outlet-service/helper"
	"outlet-service/middlewares"
	"outlet-service/services"
)

type AdminHandler struct {
	admins *services.AdminService
}

func SetupAdminRoutes(mux *http.ServeMux, admins *services.AdminService, am *middlewares.AuthMiddleware) {
	handler := AdminHandler{
		admins: admins,
	}
	mux.HandleFunc("POST /backoffice/admins/register", handler.register)
	mux.HandleFunc("POST /backoffice/admins/login", handler.login)
	mux.HandleFunc("GET /backoffice/admins", am.RequireAdmin(handler.list))
	mux.HandleFunc("POST /backoffice/admins", am.RequireAdmin(handler.create))
	mux.HandleFunc("GET /backoffice/admins/{id}", am.RequireAdmin(handler.get))
	mux.HandleFunc("PUT /backoffice/admins/{id}", am.RequireAdmin(handler.update))
	mux.HandleFunc("DELETE /backoffice/admins/{id}", am.RequireAdmin(handler.delete))
}

func (h *AdminHandler) register(w http.ResponseWriter, r *http.Request) {
	var payload dto.RegisterAdminDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	config.Config.Logger.Infow("new admin registration request", "email", payload.Email)

	tokens, err := h.admins.Register(r.Context(), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusCreated, "admin registered successfully", tokens)
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var payload dto.LoginAdminDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.admins.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "login successful", tokens)
}

func (h *AdminHandler) list(w http.ResponseWriter, r *http.Request) {
	p := helper.ParsePagination(r)
	admins, total, err := h.admins.List(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccessWithMeta(w, http.StatusOK, "admins retrieved", admins, p.MetaFor(total))
}

func (h *AdminHandler) get(w http.ResponseWriter, r *http.Request) {
	admin, err := h.admins.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "admin retrieved", admin)
}

func (h *AdminHandler) create(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateAdminDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := h.admins.Create(r.Context(), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusCreated, "admin created", admin)
}

func (h *AdminHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload dto.UpdateAdminDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := h.admins.Update(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "admin updated", admin)
}

func (h *AdminHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.admins.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	helper.WriteSuccess(w, http.StatusOK, "admin deleted", nil)
}
