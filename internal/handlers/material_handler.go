// internal/handlers/material_handler.go
package handlers

import (
	"net/http"

	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/service"
	"go_5_tally_keep/internal/webutil"
)

type MaterialHandler struct {
	service service.MaterialService
}

func NewMaterialHandler(s service.MaterialService) *MaterialHandler {
	return &MaterialHandler{service: s}
}

func (h *MaterialHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.CreateMaterialRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	material, err := h.service.CreateMaterial(r.Context(), qualificationID, &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, material)
}

func (h *MaterialHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	materials, err := h.service.ListMaterials(r.Context(), qualificationID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	if materials == nil {
		materials = []*model.Material{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, materials)
}

func (h *MaterialHandler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	materialID, err := parseIDParam(r, "material_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	material, err := h.service.GetMaterial(r.Context(), materialID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, material)
}

func (h *MaterialHandler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	materialID, err := parseIDParam(r, "material_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.UpdateMaterialRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	material, err := h.service.UpdateMaterial(r.Context(), materialID, &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, material)
}

func (h *MaterialHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	materialID, err := parseIDParam(r, "material_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	if err := h.service.DeleteMaterial(r.Context(), materialID); err != nil {
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
