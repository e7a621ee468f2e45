// internal/handlers/memo_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_tally_keep/internal/handlers"
	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemoRouter(svc *mocks.MemoService) *chi.Mux {
	h := handlers.NewMemoHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/qualifications/{qualification_id}/memos", h.CreateMemo)
		r.Get("/qualifications/{qualification_id}/memos", h.ListMemos)
		r.Route("/memos/{memo_id}", func(r chi.Router) {
			r.Get("/", h.GetMemo)
			r.Delete("/", h.DeleteMemo)
			r.Post("/images", h.AddImage)
			r.Get("/images", h.ListImages)
		})
		r.Delete("/images/{image_id}", h.DeleteImage)
	})
	return r
}

func TestMemoHandler_CreateMemo(t *testing.T) {
	qualificationID := uuid.New()

	t.Run("正常系: 201で作成したメモを返す", func(t *testing.T) {
		svc := new(mocks.MemoService)
		created := &model.Memo{MemoID: uuid.New(), QualificationID: qualificationID, Title: "重要ポイント"}
		svc.On("CreateMemo", mock.Anything, qualificationID, mock.MatchedBy(func(req *model.CreateMemoRequest) bool {
			return req.Title == "重要ポイント" && req.Body == "第3章を重点的に復習する"
		})).Return(created, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/qualifications/"+qualificationID.String()+"/memos",
			bytes.NewBufferString(`{"title": "重要ポイント", "body": "第3章を重点的に復習する"}`))
		req.Header.Set("Content-Type", "application/json")
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp model.Memo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.MemoID, resp.MemoID)
		svc.AssertExpectations(t)
	})

	t.Run("異常系: タイトルがないとバリデーションエラー", func(t *testing.T) {
		svc := new(mocks.MemoService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/qualifications/"+qualificationID.String()+"/memos",
			bytes.NewBufferString(`{"body": "タイトルなし"}`))
		req.Header.Set("Content-Type", "application/json")
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateMemo", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMemoHandler_GetMemo(t *testing.T) {
	memoID := uuid.New()

	t.Run("異常系: 存在しないと404", func(t *testing.T) {
		svc := new(mocks.MemoService)
		svc.On("GetMemo", mock.Anything, memoID).
			Return(nil, model.NewAppError("NOT_FOUND", "メモが見つかりませんでした。", "", model.ErrNotFound)).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/memos/"+memoID.String(), nil)
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
	})
}

func TestMemoHandler_AddImage(t *testing.T) {
	memoID := uuid.New()

	t.Run("正常系: ボディのバイナリをそのまま渡して201", func(t *testing.T) {
		svc := new(mocks.MemoService)
		payload := []byte{0x89, 0x50, 0x4e, 0x47}
		created := &model.MemoImage{ImageID: uuid.New(), MemoID: memoID, Data: payload}
		svc.On("AddImage", mock.Anything, memoID, payload).Return(created, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/memos/"+memoID.String()+"/images",
			bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/octet-stream")
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp model.MemoImage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ImageID, resp.ImageID)
		svc.AssertExpectations(t)
	})

	t.Run("異常系: 空のボディは400", func(t *testing.T) {
		svc := new(mocks.MemoService)
		svc.On("AddImage", mock.Anything, memoID, []byte{}).
			Return(nil, model.NewAppError("INVALID_INPUT", "画像データが空です。", "data", model.ErrInvalidInput)).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/memos/"+memoID.String()+"/images", bytes.NewBuffer(nil))
		req.Header.Set("Content-Type", "application/octet-stream")
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
	})
}

func TestMemoHandler_ListImages(t *testing.T) {
	memoID := uuid.New()

	t.Run("正常系: バイナリ本体は含めずメタ情報だけ返す", func(t *testing.T) {
		svc := new(mocks.MemoService)
		imageID := uuid.New()
		svc.On("ListImages", mock.Anything, memoID).Return([]*model.MemoImage{
			{ImageID: imageID, MemoID: memoID, Data: []byte{0x89, 0x50}},
		}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/memos/"+memoID.String()+"/images", nil)
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var metas []map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metas))
		require.Len(t, metas, 1)
		assert.Equal(t, imageID.String(), metas[0]["image_id"])
		_, hasData := metas[0]["data"]
		assert.False(t, hasData)
	})
}

func TestMemoHandler_DeleteImage(t *testing.T) {
	imageID := uuid.New()

	t.Run("正常系: 204を返す", func(t *testing.T) {
		svc := new(mocks.MemoService)
		svc.On("DeleteImage", mock.Anything, imageID).Return(nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/images/"+imageID.String(), nil)
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないと404", func(t *testing.T) {
		svc := new(mocks.MemoService)
		svc.On("DeleteImage", mock.Anything, imageID).
			Return(model.NewAppError("NOT_FOUND", "メモ画像が見つかりませんでした。", "", model.ErrNotFound)).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/images/"+imageID.String(), nil)
		newMemoRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
