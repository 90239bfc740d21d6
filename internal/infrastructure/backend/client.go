package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-meias/internal/application/ports"
	"github.com/jhoicas/estoque-meias/internal/domain"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa ports.Backend.
var _ ports.Backend = (*Client)(nil)

// DefaultTimeout límite de cada llamada al backend.
const DefaultTimeout = 8 * time.Second

// maxBody tope de lectura de respuestas.
const maxBody = 4 << 20

// Client adaptador REST del backend de estoque (net/http).
// Los rechazos (status no 2xx) se devuelven como *domain.RemoteError con el campo "error" del cuerpo.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient construye el cliente. timeout <= 0 usa DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Login POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var out loginPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginBody{Email: email, Senha: password}, &out); err != nil {
		return nil, err
	}
	return &entity.Session{UserID: string(out.ID), DisplayName: out.Nome, Email: out.Email}, nil
}

// ListProducts GET /produtos o GET /produtos?q=term si term no está vacío.
// Una respuesta que no sea un arreglo se trata como catálogo vacío.
func (c *Client) ListProducts(ctx context.Context, term string) ([]entity.Product, error) {
	path := "/produtos"
	if strings.TrimSpace(term) != "" {
		path += "?q=" + url.QueryEscape(term)
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	products := []entity.Product{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		c.log.Warn().Str("path", path).Msg("backend: listado de productos no es un arreglo")
		return products, nil
	}
	var payload []productPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("backend: decodificar productos: %w", err)
	}
	for _, p := range payload {
		products = append(products, p.toEntity())
	}
	return products, nil
}

// CreateProduct POST /produtos.
func (c *Client) CreateProduct(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	return c.writeProduct(ctx, http.MethodPost, "/produtos", draft)
}

// UpdateProduct PUT /produtos/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id string, draft entity.ProductDraft) (*entity.Product, error) {
	return c.writeProduct(ctx, http.MethodPut, "/produtos/"+url.PathEscape(id), draft)
}

func (c *Client) writeProduct(ctx context.Context, method, path string, draft entity.ProductDraft) (*entity.Product, error) {
	body := productBody{Nome: draft.Name, Quantidade: draft.Quantity, EstoqueMinimo: draft.MinimumStock}
	var out *productPayload
	if err := c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	p := out.toEntity()
	return &p, nil
}

// DeleteProduct DELETE /produtos/{id}. El cuerpo de la respuesta se ignora.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/produtos/"+url.PathEscape(id), nil, nil)
}

// CreateMovement POST /movimentacoes. abaixo_do_minimo ausente equivale a false.
func (c *Client) CreateMovement(ctx context.Context, mov entity.Movement) (*entity.MovementReceipt, error) {
	var out movementPayload
	if err := c.do(ctx, http.MethodPost, "/movimentacoes", newMovementBody(mov), &out); err != nil {
		return nil, err
	}
	receipt := &entity.MovementReceipt{}
	if out.Produto != nil {
		p := out.Produto.toEntity()
		receipt.Product = &p
		receipt.BelowMinimum = out.Produto.AbaixoDoMinimo != nil && *out.Produto.AbaixoDoMinimo
	}
	return receipt, nil
}

// do ejecuta la llamada con timeout y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).
			Str("request_id", reqID).
			Str("method", method).
			Str("path", path).
			Bool("timeout", IsTimeout(err)).
			Msg("backend: llamada HTTP fallida")
		if ctx.Err() != nil {
			return fmt.Errorf("backend: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("backend: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("backend: leer respuesta: %w", err)
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend: respuesta")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorPayload
		_ = json.Unmarshal(raw, &errResp)
		return &domain.RemoteError{Status: resp.StatusCode, Message: strings.TrimSpace(errResp.Error)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: decodificar respuesta: %w", err)
	}
	return nil
}

// IsTimeout indica si err proviene de un timeout de la llamada.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
