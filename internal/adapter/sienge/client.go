// Package sienge implementa o acesso à API pública do ERP Sienge.
package sienge

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/hugohenrick/constru-ia/pkg/metrics"
	"github.com/hugohenrick/constru-ia/pkg/pkcs12"
)

const maxBodySize = 20 << 20

// Config contém os parâmetros de acesso ao Sienge
type Config struct {
	BaseURL            string
	User               string
	Password           string
	Token              string
	Timeout            time.Duration
	ClientCert         string
	ClientCertPassword string
	BreakerThreshold   int
	BreakerReset       time.Duration
}

// Client é o gateway HTTP do Sienge
type Client struct {
	base     string
	http     *http.Client
	user     string
	password string
	token    string
	breaker  *CircuitBreaker
	log      logger.Logger
}

var _ erp.Gateway = (*Client)(nil)

// New cria um cliente do Sienge. Quando ClientCert é informado, o
// certificado PKCS#12 é usado na autenticação TLS mútua.
func New(cfg Config, log logger.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("URL base do Sienge não configurada")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.BreakerReset <= 0 {
		cfg.BreakerReset = 30 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ClientCert != "" {
		cert, err := pkcs12.LoadFile(cfg.ClientCert, cfg.ClientCertPassword)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	return &Client{
		base:     strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout, Transport: transport},
		user:     cfg.User,
		password: cfg.Password,
		token:    cfg.Token,
		breaker:  NewCircuitBreaker(cfg.BreakerThreshold, cfg.BreakerReset),
		log:      log,
	}, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}
	accept string
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status == http.StatusOK || r.status == http.StatusCreated || r.status == http.StatusNoContent
}

// call executa a requisição pelo circuit breaker. Apenas falhas de
// transporte e respostas 5xx contam como falha do circuito.
func (c *Client) call(ctx context.Context, op string, r request) (response, error) {
	start := time.Now()
	var res response

	err := c.breaker.Execute(func() error {
		var err error
		res, err = c.do(ctx, r)
		if err != nil {
			return err
		}
		if res.status >= http.StatusInternalServerError {
			return &erp.Error{Op: op, Status: res.status}
		}
		return nil
	})

	outcome := "ok"
	switch {
	case errors.Is(err, erp.ErrCircuitOpen):
		outcome = "circuit_open"
	case err != nil:
		outcome = "error"
	case !res.ok():
		outcome = strconv.Itoa(res.status)
	}
	metrics.ObserveGatewayCall(op, outcome, time.Since(start))

	if err != nil {
		c.log.Warn("Falha na chamada ao Sienge", "op", op, "path", r.path, "error", err)
		var e *erp.Error
		if errors.As(err, &e) {
			return res, err
		}
		return res, &erp.Error{Op: op, Err: err}
	}
	if !res.ok() {
		c.log.Warn("Sienge recusou a chamada", "op", op, "path", r.path, "status", res.status)
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, r request) (response, error) {
	u := c.base + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return response{}, fmt.Errorf("erro ao serializar requisição: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return response{}, err
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	accept := r.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.user != "":
		req.SetBasicAuth(c.user, c.password)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return response{}, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return response{}, fmt.Errorf("erro ao ler resposta: %w", err)
	}
	return response{status: res.StatusCode, body: data}, nil
}

// decodeList aceita tanto uma lista JSON quanto um objeto {"results": [...]}.
func decodeList[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var out []T
		err := json.Unmarshal(trimmed, &out)
		return out, err
	}
	var wrapped struct {
		Results []T `json:"results"`
	}
	err := json.Unmarshal(trimmed, &wrapped)
	return wrapped.Results, err
}

func pathID(prefix string, id int64, suffix ...string) string {
	return prefix + "/" + strconv.FormatInt(id, 10) + strings.Join(suffix, "")
}
