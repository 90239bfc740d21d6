package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// isoMillis formato de Date.prototype.toISOString (milisegundos, UTC, sufijo Z).
const isoMillis = "2006-01-02T15:04:05.000Z"

// scalar valor JSON que el backend puede enviar como número o string (ids, cantidades).
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = scalar(v)
		return nil
	}
	*s = scalar(b)
	return nil
}

func (s scalar) int() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		// numeric de Postgres llega como "5.00"
		f, ferr := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

// idValue envía el id como número JSON si es entero, o como string en otro caso.
func idValue(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

type productBody struct {
	Nome          string `json:"nome"`
	Quantidade    int    `json:"quantidade"`
	EstoqueMinimo int    `json:"estoque_minimo"`
}

type productPayload struct {
	ID             scalar `json:"id"`
	Nome           string `json:"nome"`
	Quantidade     scalar `json:"quantidade"`
	EstoqueMinimo  scalar `json:"estoque_minimo"`
	AbaixoDoMinimo *bool  `json:"abaixo_do_minimo,omitempty"`
}

func (p productPayload) toEntity() entity.Product {
	return entity.Product{
		ID:           string(p.ID),
		Name:         p.Nome,
		Quantity:     p.Quantidade.int(),
		MinimumStock: p.EstoqueMinimo.int(),
	}
}

type loginBody struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginPayload struct {
	ID    scalar `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type movementBody struct {
	ProdutoID        any     `json:"produto_id"`
	UsuarioID        any     `json:"usuario_id"`
	Tipo             string  `json:"tipo"`
	Quantidade       int     `json:"quantidade"`
	DataMovimentacao *string `json:"data_movimentacao"`
	Observacao       *string `json:"observacao"`
}

func newMovementBody(mov entity.Movement) movementBody {
	body := movementBody{
		ProdutoID:  idValue(mov.ProductID),
		UsuarioID:  idValue(mov.UserID),
		Tipo:       string(mov.Type),
		Quantidade: mov.Quantity,
		Observacao: mov.Note,
	}
	if mov.OccurredAt != nil {
		s := mov.OccurredAt.UTC().Format(isoMillis)
		body.DataMovimentacao = &s
	}
	return body
}

type movementPayload struct {
	Produto *productPayload `json:"produto"`
}

type errorPayload struct {
	Error string `json:"error"`
}
