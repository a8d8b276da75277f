package sienge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, mutate ...func(*Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := Config{
		BaseURL:          srv.URL + "/",
		Token:            "tok",
		Timeout:          time.Second,
		BreakerThreshold: 3,
		BreakerReset:     time.Minute,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	c, err := New(cfg, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Config{}, logger.Nop())
	assert.Error(t, err)
}

func TestListPendingOrders(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"plain list", []map[string]interface{}{{"id": 1, "totalAmount": 10.5, "status": "PENDING"}}},
		{"results wrapper", map[string]interface{}{"results": []map[string]interface{}{{"id": 1, "totalAmount": 10.5, "status": "PENDING"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/purchase-orders", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				writeJSON(w, http.StatusOK, tt.body)
			}))

			orders, err := c.ListPendingOrders(context.Background())
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, int64(1), orders[0].ID)
			assert.Equal(t, 10.5, orders[0].TotalAmount)
		})
	}
}

func TestBasicAuthWithoutToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "api-user", user)
		assert.Equal(t, "api-pass", pass)
		writeJSON(w, http.StatusOK, []interface{}{})
	}), func(cfg *Config) {
		cfg.Token = ""
		cfg.User = "api-user"
		cfg.Password = "api-pass"
	})

	orders, err := c.ListPendingOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetOrderAndRelatedEntities(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/purchase-orders/7", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 7, "totalAmount": 99.9, "buildingId": 3, "costCenterId": 4, "supplierId": 5})
	})
	mux.HandleFunc("/enterprises/3", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 3, "description": "Residencial Aurora"})
	})
	mux.HandleFunc("/cost-centers/4", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 4, "description": "Fundação"})
	})
	mux.HandleFunc("/creditors/6", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": 6, "name": "Concreteira Sul"})
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	order, err := c.GetOrder(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), order.BuildingID)

	building, err := c.GetBuilding(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Residencial Aurora", building.Label())

	cc, err := c.GetCostCenter(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Fundação", cc.Label())

	supplier, err := c.GetSupplier(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "Concreteira Sul", supplier.Name)

	_, err = c.GetSupplier(ctx, 5)
	assert.True(t, errors.Is(err, erp.ErrNotFound))

	_, err = c.GetOrder(ctx, 8)
	assert.True(t, errors.Is(err, erp.ErrNotFound))
}

func TestListOrderItems(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/purchase-orders/7/items", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]interface{}{"results": []map[string]interface{}{
			{"itemNumber": 1, "resourceDescription": "Cimento", "quantity": 2, "unitPrice": 30},
		}})
	}))

	items, err := c.ListOrderItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cimento", items[0].Label())
	assert.Equal(t, 30.0, items[0].Price())
}

func TestReviewOrder(t *testing.T) {
	var paths []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "observation")

		if r.URL.Path == "/purchase-orders/9/reject" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	ctx := context.Background()

	require.NoError(t, c.AuthorizeOrder(ctx, 9, ""))
	err := c.RejectOrder(ctx, 9, "preço acima do orçado")
	require.Error(t, err)
	assert.True(t, erp.Rejected(err))
	assert.Equal(t, []string{"/purchase-orders/9/authorize", "/purchase-orders/9/reject"}, paths)
}

func TestRenderOrderPdf(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))

	data, err := c.RenderOrderPdf(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestGenerateInvoiceLink(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "267", r.URL.Query().Get("titleId"))
			assert.Equal(t, "1", r.URL.Query().Get("installmentNumber"))
			writeJSON(w, http.StatusOK, map[string]string{"link": "https://boleto/1", "barCode": "123"})
		}))
		link, err := c.GenerateInvoiceLink(context.Background(), 267, 1)
		require.NoError(t, err)
		assert.Equal(t, &erp.InvoiceLink{Link: "https://boleto/1", BarCode: "123"}, link)
	})

	t.Run("no link", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{})
		}))
		_, err := c.GenerateInvoiceLink(context.Background(), 267, 1)
		msg, ok := erp.UserMessage(err)
		require.True(t, ok)
		assert.Equal(t, "❌ Nenhum link retornado pela API do Sienge.", msg)
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		_, err := c.GenerateInvoiceLink(context.Background(), 267, 1)
		msg, ok := erp.UserMessage(err)
		require.True(t, ok)
		assert.Equal(t, "❌ Falha ao gerar link do boleto (502).", msg)
	})
}

func TestSendInvoiceEmail(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusNotFound, "❌ Título ou parcela não encontrados no Sienge."},
		{http.StatusBadRequest, "⚠️ Requisição inválida. Verifique os parâmetros enviados."},
		{http.StatusConflict, "❌ Falha ao enviar boleto (409)."},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			err := c.SendInvoiceEmail(context.Background(), 267, 1)
			msg, ok := erp.UserMessage(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg)
		})
	}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int64
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]int64{"titleId": 267, "installmentNumber": 1}, body)
		w.WriteHeader(http.StatusOK)
	}))
	assert.NoError(t, c.SendInvoiceEmail(context.Background(), 267, 1))
}

func TestFindCustomerByTaxID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cpf") == "52998224725" {
			writeJSON(w, http.StatusOK, map[string]interface{}{"results": []map[string]interface{}{{"id": 1, "name": "Maria"}}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"results": []interface{}{}})
	}))
	ctx := context.Background()

	customer, err := c.FindCustomerByTaxID(ctx, "52998224725")
	require.NoError(t, err)
	assert.Equal(t, "Maria", customer.Name)

	_, err = c.FindCustomerByTaxID(ctx, "11144477735")
	assert.True(t, errors.Is(err, erp.ErrNotFound))
}

func TestTransportFailureKeepsUserMessage(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Timeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = c.GenerateInvoiceLink(context.Background(), 1, 1)
	require.Error(t, err)
	assert.False(t, erp.Rejected(err))
	msg, ok := erp.UserMessage(err)
	require.True(t, ok)
	assert.Contains(t, msg, "Erro ao gerar link do boleto")
}

func TestCircuitOpensOnServerErrors(t *testing.T) {
	var hits int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.ListPendingOrders(ctx)
		require.Error(t, err)
	}
	assert.Equal(t, StateOpen, c.breaker.State())

	_, err := c.ListPendingOrders(ctx)
	assert.True(t, errors.Is(err, erp.ErrCircuitOpen))
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestClientErrorsDoNotTripCircuit(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	for i := 0; i < 5; i++ {
		_, err := c.GetOrder(context.Background(), 1)
		require.True(t, errors.Is(err, erp.ErrNotFound))
	}
	assert.Equal(t, StateClosed, c.breaker.State())
}
