// internal/handlers/memo_handler.go
package handlers

import (
	"io"
	"net/http"

	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/service"
	"go_5_tally_keep/internal/webutil"

	"github.com/google/uuid"
)

type MemoHandler struct {
	service service.MemoService
}

func NewMemoHandler(s service.MemoService) *MemoHandler {
	return &MemoHandler{service: s}
}

func (h *MemoHandler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.CreateMemoRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	memo, err := h.service.CreateMemo(r.Context(), qualificationID, &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, memo)
}

func (h *MemoHandler) ListMemos(w http.ResponseWriter, r *http.Request) {
	qualificationID, err := parseIDParam(r, "qualification_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	memos, err := h.service.ListMemos(r.Context(), qualificationID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	if memos == nil {
		memos = []*model.Memo{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, memos)
}

func (h *MemoHandler) GetMemo(w http.ResponseWriter, r *http.Request) {
	memoID, err := parseIDParam(r, "memo_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	memo, err := h.service.GetMemo(r.Context(), memoID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, memo)
}

func (h *MemoHandler) UpdateMemo(w http.ResponseWriter, r *http.Request) {
	memoID, err := parseIDParam(r, "memo_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.UpdateMemoRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	memo, err := h.service.UpdateMemo(r.Context(), memoID, &req)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, memo)
}

func (h *MemoHandler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	memoID, err := parseIDParam(r, "memo_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	if err := h.service.DeleteMemo(r.Context(), memoID); err != nil {
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddImage は画像バイナリをそのままボディで受け取ります
func (h *MemoHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	memoID, err := parseIDParam(r, "memo_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		webutil.HandleError(w, model.NewAppError("INVALID_INPUT", "画像データの読み取りに失敗しました。", "", model.ErrInvalidInput))
		return
	}
	defer r.Body.Close()

	image, err := h.service.AddImage(r.Context(), memoID, data)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, image)
}

func (h *MemoHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	memoID, err := parseIDParam(r, "memo_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	images, err := h.service.ListImages(r.Context(), memoID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	// バイナリ本体は返さずメタ情報だけの一覧
	type imageMeta struct {
		ImageID uuid.UUID `json:"image_id"`
		MemoID  uuid.UUID `json:"memo_id"`
	}
	metas := make([]imageMeta, 0, len(images))
	for _, img := range images {
		metas = append(metas, imageMeta{ImageID: img.ImageID, MemoID: img.MemoID})
	}
	webutil.RespondWithJSON(w, http.StatusOK, metas)
}

func (h *MemoHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := parseIDParam(r, "image_id")
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	if err := h.service.DeleteImage(r.Context(), imageID); err != nil {
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
