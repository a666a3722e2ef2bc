package settlement_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/haulledger/internal/load"
	"github.com/fkhayef/haulledger/internal/settlement"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func serve(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandler(t *testing.T) {
	store := newMemStore()
	store.loads = []*load.Load{haul(1, "L-100", "1000.00", 500, item("DETENTION", "100.00"), item("CHARGEBACK", "50.00"))}
	h := settlement.NewHandler(settlement.NewService(store, settlement.Options{}, nil)).Routes()

	t.Run("compute", func(t *testing.T) {
		rec, env := serve(t, h, http.MethodPost, "/", `{"driver_id": 7, "pay_from": "2024-03-01", "pay_to": "2024-03-07", "invoice_number": "INV-7"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)

		var got struct {
			ID        int64  `json:"id"`
			PayFrom   string `json:"pay_from"`
			Breakdown struct {
				TotalPay             settlement.AggregateBlock        `json:"total_pay"`
				ChargebackDeductions []settlement.ChargebackDeduction `json:"chargeback_deductions"`
				Loads                []map[string]any                 `json:"loads"`
			} `json:"breakdown"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "2024-03-01", got.PayFrom)
		assert.Equal(t, "$82.00", got.Breakdown.TotalPay.Result)
		require.Len(t, got.Breakdown.ChargebackDeductions, 1)
		assert.Equal(t, "$50.00", got.Breakdown.ChargebackDeductions[0].Amount)
		require.Len(t, got.Breakdown.Loads, 1)
		assert.Equal(t, "L-100", got.Breakdown.Loads[0]["Load #"])
		assert.Equal(t, "$50.00", got.Breakdown.Loads[0]["Chargeback Deduction"])
	})

	t.Run("get", func(t *testing.T) {
		rec, _ := serve(t, h, http.MethodGet, "/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec, env := serve(t, h, http.MethodGet, "/driver/7", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		var list []settlement.SettlementResponse
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Len(t, list, 1)
	})

	t.Run("bad body", func(t *testing.T) {
		rec, env := serve(t, h, http.MethodPost, "/", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("reversed period", func(t *testing.T) {
		rec, env := serve(t, h, http.MethodPost, "/", `{"driver_id": 7, "pay_from": "2024-03-09", "pay_to": "2024-03-07"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("unknown driver", func(t *testing.T) {
		rec, env := serve(t, h, http.MethodPost, "/", `{"driver_id": 8, "pay_from": "2024-03-01", "pay_to": "2024-03-07"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})

	t.Run("missing settlement", func(t *testing.T) {
		rec, _ := serve(t, h, http.MethodGet, "/99", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
