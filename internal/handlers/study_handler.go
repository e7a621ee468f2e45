// internal/handlers/study_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go_5_tally_keep/internal/dateutil"
	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/service"
	"go_5_tally_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type StudyHandler struct {
	service service.StudyService
}

func NewStudyHandler(s service.StudyService) *StudyHandler {
	return &StudyHandler{service: s}
}

// RecordProgress は学習量を記録します。日付省略時は今日扱いです。
func (h *StudyHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	materialID, err := parseIDParam(r, "material_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.RecordProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	at := time.Now()
	if req.Date != nil {
		at = *req.Date
	}

	resp, err := h.service.RecordProgress(r.Context(), materialID, req.Amount, at)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

// AdjustDayAmount は指定日の記録量を手修正します。URLの日付は "2006-01-02" 形式です。
func (h *StudyHandler) AdjustDayAmount(w http.ResponseWriter, r *http.Request) {
	materialID, err := parseIDParam(r, "material_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	day, err := dateutil.ParseDayKey(chi.URLParam(r, "date"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("INVALID_INPUT", "日付の形式が不正です。", "date", model.ErrInvalidInput))
		return
	}

	var req model.AdjustDayAmountRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	resp, err := h.service.AdjustDayAmount(r.Context(), materialID, day, req.Delta)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *StudyHandler) GetTodayAmount(w http.ResponseWriter, r *http.Request) {
	materialID, err := parseIDParam(r, "material_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	amount, err := h.service.TodayAmount(r.Context(), materialID, time.Now())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]int{"today_amount": amount})
}

func (h *StudyHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	resp, err := h.service.Dashboard(r.Context(), qualificationID, time.Now())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHeatmap は日別学習量を返します。monthsクエリで期間を指定できます (省略時は設定値)。
func (h *StudyHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil || months < 1 {
			webutil.HandleError(w, model.NewAppError("INVALID_INPUT", "monthsは1以上の整数で指定してください。", "months", model.ErrInvalidInput))
			return
		}
	}

	resp, err := h.service.Heatmap(r.Context(), qualificationID, months, time.Now())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
