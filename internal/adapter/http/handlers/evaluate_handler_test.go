package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"lotwise/internal/adapter/http/handlers/mocks"
	"lotwise/internal/domain/entities"
	"lotwise/internal/usecase"
)

const evaluatePayload = `{
	"prop": {"land_area_sqm": 760, "purchase_price": 680000, "frontage_m": 12.5, "r_code": "R20"},
	"asm": {},
	"market": {"land_price_per_sqm_small_lot": 1600}
}`

func newEvaluateRouter(h *EvaluateHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/evaluate", h.Evaluate)
	return r
}

func TestEvaluateHandler_Evaluate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluateUseCase(ctrl)
		r := newEvaluateRouter(NewEvaluateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required market field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluateUseCase(ctrl)
		r := newEvaluateRouter(NewEvaluateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/evaluate",
			bytes.NewBufferString(`{"prop":{"land_area_sqm":760,"purchase_price":680000},"market":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative land area rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluateUseCase(ctrl)
		r := newEvaluateRouter(NewEvaluateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/evaluate",
			bytes.NewBufferString(`{"prop":{"land_area_sqm":-5,"purchase_price":680000},"market":{"land_price_per_sqm_small_lot":1600}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns ranked response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluateUseCase(ctrl)
		r := newEvaluateRouter(NewEvaluateHandler(uc))

		uc.EXPECT().Evaluate(gomock.Any(), gomock.AssignableToTypeOf(entities.EvaluationRequest{})).DoAndReturn(
			func(_ context.Context, req entities.EvaluationRequest) (entities.EvaluationResponse, error) {
				if req.Prop.LandAreaSqm != 760 || req.Prop.PurchasePrice != 680000 {
					t.Fatalf("unexpected property: %+v", req.Prop)
				}
				if req.Asm.SettlementCost != 1000 || req.Asm.ContingencyPct != 0.10 {
					t.Fatalf("assumption defaults not applied: %+v", req.Asm)
				}
				return entities.EvaluationResponse{
					PricePerSqm:      894.74,
					LotYieldEstimate: 2,
					Scenarios: []entities.ScenarioResult{
						{Scenario: "subdivide_sell_lots", Lots: 2, Revenue: 1120000, Profit: 288200},
					},
					BestScenario: "subdivide_sell_lots",
					Ranking:      []string{"subdivide_sell_lots"},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", bytes.NewBufferString(evaluatePayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["best_scenario"] != "subdivide_sell_lots" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["lot_yield_estimate"] != float64(2) {
			t.Fatalf("unexpected lot yield: %v", body["lot_yield_estimate"])
		}
	})

	t.Run("usecase invalid input maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluateUseCase(ctrl)
		r := newEvaluateRouter(NewEvaluateHandler(uc))

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(entities.EvaluationResponse{}, usecase.ErrInvalidLandArea)

		req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", bytes.NewBufferString(evaluatePayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluateUseCase(ctrl)
		r := newEvaluateRouter(NewEvaluateHandler(uc))

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(entities.EvaluationResponse{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", bytes.NewBufferString(evaluatePayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
