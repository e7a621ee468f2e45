// internal/handlers/study_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_tally_keep/internal/handlers"
	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStudyRouter(svc *mocks.StudyService) *chi.Mux {
	h := handlers.NewStudyHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/materials/{material_id}", func(r chi.Router) {
			r.Post("/progress", h.RecordProgress)
			r.Get("/progress/today", h.GetTodayAmount)
			r.Put("/progress/{date}", h.AdjustDayAmount)
		})
		r.Route("/qualifications/{qualification_id}", func(r chi.Router) {
			r.Get("/dashboard", h.GetDashboard)
			r.Get("/heatmap", h.GetHeatmap)
		})
	})
	return r
}

type errorBody struct {
	Error struct {
		Code  string `json:"code"`
		Field string `json:"field,omitempty"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStudyHandler_RecordProgress(t *testing.T) {
	materialID := uuid.New()

	t.Run("正常系: 201で適用量を返す", func(t *testing.T) {
		svc := new(mocks.StudyService)
		svc.On("RecordProgress", mock.Anything, materialID, 10, mock.AnythingOfType("time.Time")).
			Return(&model.RecordProgressResponse{AppliedAmount: 10, CurrentProgress: 50}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/"+materialID.String()+"/progress",
			bytes.NewBufferString(`{"amount": 10}`))
		req.Header.Set("Content-Type", "application/json")
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp model.RecordProgressResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.AppliedAmount)
		assert.Equal(t, 50, resp.CurrentProgress)
		svc.AssertExpectations(t)
	})

	t.Run("正常系: 日付指定はその日に記録される", func(t *testing.T) {
		svc := new(mocks.StudyService)
		svc.On("RecordProgress", mock.Anything, materialID, 5, mock.MatchedBy(func(at time.Time) bool {
			return at.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
		})).Return(&model.RecordProgressResponse{AppliedAmount: 5, CurrentProgress: 5}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/"+materialID.String()+"/progress",
			bytes.NewBufferString(`{"amount": 5, "date": "2026-08-29T00:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("異常系: 量0はバリデーションエラー", func(t *testing.T) {
		svc := new(mocks.StudyService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/"+materialID.String()+"/progress",
			bytes.NewBufferString(`{"amount": 0}`))
		req.Header.Set("Content-Type", "application/json")
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "RecordProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 不正なUUIDは400", func(t *testing.T) {
		svc := new(mocks.StudyService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/not-a-uuid/progress",
			bytes.NewBufferString(`{"amount": 10}`))
		req.Header.Set("Content-Type", "application/json")
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
	})

	t.Run("異常系: 教材が存在しないと404", func(t *testing.T) {
		svc := new(mocks.StudyService)
		svc.On("RecordProgress", mock.Anything, materialID, 10, mock.AnythingOfType("time.Time")).
			Return(nil, model.NewAppError("NOT_FOUND", "教材が見つかりませんでした。", "", model.ErrNotFound)).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/"+materialID.String()+"/progress",
			bytes.NewBufferString(`{"amount": 10}`))
		req.Header.Set("Content-Type", "application/json")
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
	})
}

func TestStudyHandler_AdjustDayAmount(t *testing.T) {
	materialID := uuid.New()

	t.Run("正常系: URLの日付に差分を適用する", func(t *testing.T) {
		svc := new(mocks.StudyService)
		day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
		svc.On("AdjustDayAmount", mock.Anything, materialID, day, -5).
			Return(&model.AdjustDayAmountResponse{DayAmount: 5, CurrentProgress: 45}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/materials/"+materialID.String()+"/progress/2026-08-30",
			bytes.NewBufferString(`{"delta": -5}`))
		req.Header.Set("Content-Type", "application/json")
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp model.AdjustDayAmountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 5, resp.DayAmount)
		svc.AssertExpectations(t)
	})

	t.Run("異常系: 日付の形式が不正", func(t *testing.T) {
		svc := new(mocks.StudyService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/materials/"+materialID.String()+"/progress/30-08-2026",
			bytes.NewBufferString(`{"delta": -5}`))
		req.Header.Set("Content-Type", "application/json")
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
		assert.Equal(t, "date", body.Error.Field)
	})
}

func TestStudyHandler_GetDashboard(t *testing.T) {
	qualificationID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		svc := new(mocks.StudyService)
		svc.On("Dashboard", mock.Anything, qualificationID, mock.AnythingOfType("time.Time")).
			Return(&model.DashboardResponse{CurrentStreak: 3, WeeklyStudyDays: 2, WeeklyTargetDays: 4}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/qualifications/"+qualificationID.String()+"/dashboard", nil)
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp model.DashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.CurrentStreak)
		assert.Equal(t, 2, resp.WeeklyStudyDays)
	})

	t.Run("異常系: 資格が存在しないと404", func(t *testing.T) {
		svc := new(mocks.StudyService)
		svc.On("Dashboard", mock.Anything, qualificationID, mock.AnythingOfType("time.Time")).
			Return(nil, model.NewAppError("NOT_FOUND", "資格が見つかりませんでした。", "", model.ErrNotFound)).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/qualifications/"+qualificationID.String()+"/dashboard", nil)
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStudyHandler_GetHeatmap(t *testing.T) {
	qualificationID := uuid.New()

	t.Run("正常系: monthsクエリを引き渡す", func(t *testing.T) {
		svc := new(mocks.StudyService)
		svc.On("Heatmap", mock.Anything, qualificationID, 6, mock.AnythingOfType("time.Time")).
			Return(&model.HeatmapResponse{Months: 6, Days: map[string]int{"2026-08-30": 7}}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/qualifications/"+qualificationID.String()+"/heatmap?months=6", nil)
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp model.HeatmapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 6, resp.Months)
		assert.Equal(t, 7, resp.Days["2026-08-30"])
		svc.AssertExpectations(t)
	})

	t.Run("正常系: months省略時は0で委譲する (サービス側で既定値)", func(t *testing.T) {
		svc := new(mocks.StudyService)
		svc.On("Heatmap", mock.Anything, qualificationID, 0, mock.AnythingOfType("time.Time")).
			Return(&model.HeatmapResponse{Months: 4, Days: map[string]int{}}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/qualifications/"+qualificationID.String()+"/heatmap", nil)
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("異常系: monthsが整数でない", func(t *testing.T) {
		svc := new(mocks.StudyService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/qualifications/"+qualificationID.String()+"/heatmap?months=abc", nil)
		newStudyRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Heatmap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
