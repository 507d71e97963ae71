package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexupay/internal/adapter/http/handlers/mocks"
	"nexupay/internal/domain/entities"
	"nexupay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDebtorRouter(h *DebtorHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/debtors", h.RegisterDebtor)
	r.GET("/v1/debtors", h.ListDebtors)
	r.GET("/v1/debtors/:id", h.GetDebtor)
	r.GET("/v1/debtors/:id/debts", h.ListDebtorDebts)
	r.POST("/v1/debts", h.CreateDebt)
	return r
}

func TestDebtorHandler_RegisterDebtor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newDebtorRouter(NewDebtorHandler(mocks.NewMockIDebtorUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/v1/debtors", bytes.NewBufferString(`{"first_name":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().RegisterDebtor(gomock.Any(), gomock.Any()).Return(entities.Contact{}, usecase.ErrDebtorAlreadyExists)

		payload := `{"first_name":"Maria","last_name":"Soto","email":"maria@test.cl"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/debtors", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().RegisterDebtor(gomock.Any(), gomock.AssignableToTypeOf(entities.Contact{})).DoAndReturn(
			func(_ interface{}, c entities.Contact) (entities.Contact, error) {
				if c.Email != "maria@test.cl" || c.LastName != "Soto" {
					t.Fatalf("unexpected entity from payload: %+v", c)
				}
				c.ID = "d-1"
				return c, nil
			},
		)

		payload := `{"first_name":"Maria","last_name":"Soto","email":"maria@test.cl","rut":"12.345.678-9"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/debtors", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != "d-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestDebtorHandler_GetDebtor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().GetDebtor(gomock.Any(), "d-404").Return(entities.Contact{}, usecase.ErrDebtorNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/debtors/d-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().GetDebtor(gomock.Any(), "d-1").Return(entities.Contact{ID: "d-1", Email: "maria@test.cl"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/debtors/d-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDebtorHandler_ListDebtors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDebtorUseCase(ctrl)
	r := newDebtorRouter(NewDebtorHandler(uc))

	uc.EXPECT().ListDebtors(gomock.Any(), 10).Return([]entities.Contact{{ID: "d-1"}, {ID: "d-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/debtors?limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 debtors, got %d", len(body))
	}
}

func TestDebtorHandler_CreateDebt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newDebtorRouter(NewDebtorHandler(mocks.NewMockIDebtorUseCase(ctrl)))

		payload := `{"debtor_id":"d-1","amount":1000,"due_date":"not-a-date"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/debts", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown debtor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().CreateDebt(gomock.Any(), gomock.Any()).Return(entities.Debt{}, usecase.ErrDebtorNotFound)

		payload := `{"debtor_id":"d-404","amount":1000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/debts", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().CreateDebt(gomock.Any(), gomock.AssignableToTypeOf(entities.Debt{})).DoAndReturn(
			func(_ interface{}, d entities.Debt) (entities.Debt, error) {
				if d.DebtorID != "d-1" || d.Amount != 150000 {
					t.Fatalf("unexpected entity from payload: %+v", d)
				}
				d.ID = "debt-1"
				d.Status = entities.DebtStatusActive
				return d, nil
			},
		)

		payload := `{"debtor_id":"d-1","name":"Credito consumo","amount":150000,"due_date":"2026-09-30"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/debts", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestDebtorHandler_ListDebtorDebts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().ListDebtorDebts(gomock.Any(), "d-1").Return(nil, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/debtors/d-1/debts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtorUseCase(ctrl)
		r := newDebtorRouter(NewDebtorHandler(uc))

		uc.EXPECT().ListDebtorDebts(gomock.Any(), "d-1").Return([]entities.Debt{{ID: "debt-1", DebtorID: "d-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/debtors/d-1/debts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
