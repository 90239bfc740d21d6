package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-meias/internal/domain"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
	"github.com/jhoicas/estoque-meias/internal/infrastructure/backend"
)

// recorded petición vista por el backend falso.
type recorded struct {
	Method    string
	Path      string
	Query     string
	RequestID string
	Body      map[string]any
}

type fakeBackend struct {
	mu       sync.Mutex
	requests []recorded
}

func (f *fakeBackend) record(c *fiber.Ctx) {
	r := recorded{
		Method:    c.Method(),
		Path:      c.Path(),
		Query:     c.Query("q"),
		RequestID: c.Get("X-Request-ID"),
	}
	if len(c.Body()) > 0 {
		_ = json.Unmarshal(c.Body(), &r.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, r)
	f.mu.Unlock()
}

func (f *fakeBackend) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

// newServer levanta un backend falso con fiber expuesto vía httptest.
func newServer(t *testing.T, setup func(app *fiber.App, fb *fakeBackend)) (*backend.Client, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		fb.record(c)
		return c.Next()
	})
	setup(app, fb)
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/", 2*time.Second, zerolog.Nop()), fb
}

func TestClient_Login(t *testing.T) {
	client, fb := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Post("/auth/login", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"id": 7, "nome": "Ana", "email": "ana@meias.com"})
		})
	})

	sess, err := client.Login(context.Background(), "ana@meias.com", "123")
	require.NoError(t, err)
	assert.Equal(t, &entity.Session{UserID: "7", DisplayName: "Ana", Email: "ana@meias.com"}, sess)

	req := fb.last(t)
	assert.Equal(t, map[string]any{"email": "ana@meias.com", "senha": "123"}, req.Body)
	assert.NotEmpty(t, req.RequestID)
}

func TestClient_LoginRechazado(t *testing.T) {
	client, _ := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Post("/auth/login", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciais inválidas"})
		})
	})

	_, err := client.Login(context.Background(), "ana@meias.com", "x")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, fiber.StatusUnauthorized, remote.Status)
	assert.Equal(t, "Credenciais inválidas", remote.Message)
}

func TestClient_ListProducts(t *testing.T) {
	client, fb := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Get("/produtos", func(c *fiber.Ctx) error {
			return c.JSON([]fiber.Map{
				{"id": 1, "nome": "Meia Azul", "quantidade": 10, "estoque_minimo": 2},
				{"id": "2", "nome": "Meia Lã", "quantidade": "3", "estoque_minimo": "5.00"},
			})
		})
	})
	ctx := context.Background()

	got, err := client.ListProducts(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, []entity.Product{
		{ID: "1", Name: "Meia Azul", Quantity: 10, MinimumStock: 2},
		{ID: "2", Name: "Meia Lã", Quantity: 3, MinimumStock: 5},
	}, got)
	assert.Empty(t, fb.last(t).Query)

	_, err = client.ListProducts(ctx, "meia lã")
	require.NoError(t, err)
	req := fb.last(t)
	assert.Equal(t, "/produtos", req.Path)
	assert.Equal(t, "meia lã", req.Query)
}

func TestClient_ListProductsNoArreglo(t *testing.T) {
	client, _ := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Get("/produtos", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"items": []int{}})
		})
	})

	got, err := client.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClient_ListProductsErrorSinCuerpo(t *testing.T) {
	client, _ := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Get("/produtos", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusInternalServerError)
		})
	})

	_, err := client.ListProducts(context.Background(), "")
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, fiber.StatusInternalServerError, remote.Status)
	assert.Empty(t, remote.Message)
}

func TestClient_CreateYUpdateProduct(t *testing.T) {
	client, fb := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Post("/produtos", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": 9, "nome": "Meia X", "quantidade": 3, "estoque_minimo": 5})
		})
		app.Put("/produtos/:id", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"id": c.Params("id"), "nome": "Meia Y", "quantidade": 4, "estoque_minimo": 1})
		})
	})
	ctx := context.Background()

	created, err := client.CreateProduct(ctx, entity.ProductDraft{Name: "Meia X", Quantity: 3, MinimumStock: 5})
	require.NoError(t, err)
	assert.Equal(t, &entity.Product{ID: "9", Name: "Meia X", Quantity: 3, MinimumStock: 5}, created)
	assert.Equal(t, map[string]any{"nome": "Meia X", "quantidade": float64(3), "estoque_minimo": float64(5)}, fb.last(t).Body)

	updated, err := client.UpdateProduct(ctx, "9", entity.ProductDraft{Name: "Meia Y", Quantity: 4, MinimumStock: 1})
	require.NoError(t, err)
	assert.Equal(t, "9", updated.ID)
	req := fb.last(t)
	assert.Equal(t, fiber.MethodPut, req.Method)
	assert.Equal(t, "/produtos/9", req.Path)
}

func TestClient_DeleteProduct(t *testing.T) {
	client, fb := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Delete("/produtos/:id", func(c *fiber.Ctx) error {
			if c.Params("id") == "1" {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Produto possui movimentações"})
			}
			return c.SendStatus(fiber.StatusNoContent)
		})
	})
	ctx := context.Background()

	require.NoError(t, client.DeleteProduct(ctx, "2"))
	assert.Equal(t, "/produtos/2", fb.last(t).Path)

	err := client.DeleteProduct(ctx, "1")
	assert.Equal(t, "Produto possui movimentações", domain.RemoteMessage(err, "fallback"))
}

func TestClient_CreateMovement(t *testing.T) {
	client, fb := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Post("/movimentacoes", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{
				"movimentacao": fiber.Map{"id": 33},
				"produto":      fiber.Map{"id": 1, "nome": "Meia Azul", "quantidade": 1, "estoque_minimo": 2, "abaixo_do_minimo": true},
			})
		})
	})
	at := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	note := "lote novo"

	receipt, err := client.CreateMovement(context.Background(), entity.Movement{
		ProductID: "1", UserID: "7", Type: entity.MovementTypeOut, Quantity: 4,
		OccurredAt: &at, Note: &note,
	})
	require.NoError(t, err)
	assert.True(t, receipt.BelowMinimum)
	assert.Equal(t, &entity.Product{ID: "1", Name: "Meia Azul", Quantity: 1, MinimumStock: 2}, receipt.Product)

	assert.Equal(t, map[string]any{
		"produto_id":        float64(1),
		"usuario_id":        float64(7),
		"tipo":              "saida",
		"quantidade":        float64(4),
		"data_movimentacao": "2024-03-15T00:00:00.000Z",
		"observacao":        "lote novo",
	}, fb.last(t).Body)
}

func TestClient_CreateMovementOpcionalesNulos(t *testing.T) {
	client, fb := newServer(t, func(app *fiber.App, _ *fakeBackend) {
		app.Post("/movimentacoes", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"produto": fiber.Map{"id": 1, "nome": "Meia", "quantidade": 9, "estoque_minimo": 2}})
		})
	})

	receipt, err := client.CreateMovement(context.Background(), entity.Movement{
		ProductID: "1", UserID: "u-7", Type: entity.MovementTypeIn, Quantity: 4,
	})
	require.NoError(t, err)
	assert.False(t, receipt.BelowMinimum)

	body := fb.last(t).Body
	assert.Contains(t, body, "data_movimentacao")
	assert.Nil(t, body["data_movimentacao"])
	assert.Contains(t, body, "observacao")
	assert.Nil(t, body["observacao"])
	assert.Equal(t, "u-7", body["usuario_id"])
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	app := fiber.New()
	app.Post("/movimentacoes", func(c *fiber.Ctx) error {
		<-release
		return c.SendStatus(fiber.StatusCreated)
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	// se ejecuta antes que srv.Close para liberar el handler bloqueado
	t.Cleanup(func() { close(release) })

	client := backend.NewClient(srv.URL, 50*time.Millisecond, zerolog.Nop())
	_, err := client.CreateMovement(context.Background(), entity.Movement{ProductID: "1", UserID: "7", Type: entity.MovementTypeIn, Quantity: 1})
	require.Error(t, err)
	assert.True(t, backend.IsTimeout(err))

	var remote *domain.RemoteError
	assert.False(t, errors.As(err, &remote))
}
