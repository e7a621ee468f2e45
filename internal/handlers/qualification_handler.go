// internal/handlers/qualification_handler.go
package handlers

import (
	"net/http"

	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/service"
	"go_5_tally_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type QualificationHandler struct {
	service service.QualificationService
}

func NewQualificationHandler(s service.QualificationService) *QualificationHandler {
	return &QualificationHandler{service: s}
}

func (h *QualificationHandler) CreateQualification(w http.ResponseWriter, r *http.Request) {
	var req model.CreateQualificationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	q, err := h.service.CreateQualification(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, q)
}

func (h *QualificationHandler) ListQualifications(w http.ResponseWriter, r *http.Request) {
	qs, err := h.service.ListQualifications(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	if qs == nil {
		qs = []*model.Qualification{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, qs)
}

func (h *QualificationHandler) GetQualification(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	q, err := h.service.GetQualification(r.Context(), qualificationID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, q)
}

func (h *QualificationHandler) GetSelectedQualification(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.GetSelectedQualification(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, q)
}

func (h *QualificationHandler) UpdateQualification(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.UpdateQualificationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	q, err := h.service.UpdateQualification(r.Context(), qualificationID, &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, q)
}

func (h *QualificationHandler) DeleteQualification(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	if err := h.service.DeleteQualification(r.Context(), qualificationID); err != nil {
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *QualificationHandler) SelectQualification(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	if err := h.service.SelectQualification(r.Context(), qualificationID); err != nil {
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseIDParam はURLパラメータのUUIDを解釈します
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_INPUT", "IDの形式が不正です。", name, model.ErrInvalidInput)
	}
	return id, nil
}
