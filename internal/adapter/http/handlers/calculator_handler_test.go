package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"drywall_estimator/internal/adapter/http/handlers/mocks"
	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCalculatorHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIEstimationUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewCalculatorHandler(uc)
		r := gin.New()
		r.POST("/v1/calculators/:kind", h.Calculate)
		return r, uc
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/grid_ceiling", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid wall type", func(t *testing.T) {
		r, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/drywall", bytes.NewBufferString(`{"length":4,"height":3,"wall_type":"curtain"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Calculate(gomock.Any(), calculator.Kind("dome"), gomock.Any()).Return(nil, calculator.ErrUnknownKind)

		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/dome", bytes.NewBufferString(`{"length":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		in := calculator.Input{Length: 8, Width: 4}
		uc.EXPECT().Calculate(gomock.Any(), calculator.KindGridCeiling, in).Return(calculator.GridCeiling(8, 4), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/grid_ceiling", bytes.NewBufferString(`{"length":8,"width":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Kind        string                    `json:"kind"`
			Description string                    `json:"description"`
			Results     []entities.MaterialResult `json:"results"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Kind != "grid_ceiling" || len(body.Results) != 7 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body.Results[0].Material != calculator.MaterialWallAngleL25 || body.Results[0].Quantity != 8 {
			t.Fatalf("unexpected first line: %+v", body.Results[0])
		}
	})
}

func TestCalculatorHandler_ListKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCalculatorHandler(nil)
	r := gin.New()
	r.GET("/v1/calculators", h.ListKinds)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/calculators", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `["grid_ceiling","box_ceiling","flat_ceiling","drywall"]` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
