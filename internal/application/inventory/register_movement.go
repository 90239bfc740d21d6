package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/application/ports"
	"github.com/jhoicas/estoque-meias/internal/domain"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// OpMovement operación reportada en SubmissionError.Op.
const OpMovement = "movement"

// Mensajes mostrados al usuario.
const (
	MsgProductRequired = "Selecione um produto."
	MsgInvalidType     = "Tipo inválido."
	MsgInvalidQuantity = "Informe uma quantidade > 0."
	MsgInvalidDate     = "Data inválida."
	MsgMovementFailed  = "Erro ao registrar movimentação"
	MsgMovementOK      = "Movimentação registrada com sucesso."
	MsgLowStock        = "⚠️ Estoque abaixo do mínimo para este produto!"
)

// dateOnly formato del input de fecha del formulario.
const dateOnly = "2006-01-02"

// RegisterMovementUseCase valida y envía movimientos de stock (entrada/saida).
// Las cantidades resultantes y la comparación con el mínimo las calcula el backend;
// aquí solo se recarga el catálogo y se repite la señal de stock bajo.
type RegisterMovementUseCase struct {
	session   ports.SessionGate
	backend   ports.MovementBackend
	refresher CatalogRefresher
	log       zerolog.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	session ports.SessionGate,
	backend ports.MovementBackend,
	refresher CatalogRefresher,
	log zerolog.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		session:   session,
		backend:   backend,
		refresher: refresher,
		log:       log,
	}
}

// Submit registra un movimiento. La sesión se verifica en el momento del envío,
// de modo que un logout durante el llenado del formulario se detecta aquí.
// Un rechazo del backend devuelve *domain.SubmissionError con el texto del backend.
func (uc *RegisterMovementUseCase) Submit(ctx context.Context, in dto.MovementInput) (*dto.MovementOutcome, error) {
	sess, err := uc.session.Require()
	if err != nil {
		return nil, err
	}
	mov, err := buildMovement(sess.UserID, in)
	if err != nil {
		return nil, err
	}

	receipt, err := uc.backend.CreateMovement(ctx, mov)
	if err != nil {
		uc.log.Warn().Err(err).Str("produto_id", mov.ProductID).Str("tipo", string(mov.Type)).Msg("movimiento rechazado")
		return nil, &domain.SubmissionError{Op: OpMovement, Message: domain.RemoteMessage(err, MsgMovementFailed), Err: err}
	}

	out := &dto.MovementOutcome{Message: MsgMovementOK}
	if receipt != nil {
		out.Product = receipt.Product
		if receipt.Product != nil && receipt.BelowMinimum {
			out.LowStock = true
			out.LowStockMessage = MsgLowStock
		}
	}
	// Recarga incondicional; su fallo no revierte el movimiento ya aceptado.
	_, out.RefreshErr = uc.refresher.RefreshActive(ctx)

	uc.log.Info().
		Str("produto_id", mov.ProductID).
		Str("usuario_id", mov.UserID).
		Str("tipo", string(mov.Type)).
		Int("quantidade", mov.Quantity).
		Bool("abaixo_do_minimo", out.LowStock).
		Msg("movimiento registrado")
	return out, nil
}

func buildMovement(userID string, in dto.MovementInput) (entity.Movement, error) {
	productID := in.ProdutoID.Trimmed()
	if productID == "" {
		return entity.Movement{}, domain.NewValidationError("produto_id", MsgProductRequired)
	}
	typ := entity.MovementType(strings.TrimSpace(in.Tipo))
	if !typ.Valid() {
		return entity.Movement{}, domain.NewValidationError("tipo", MsgInvalidType)
	}
	qty, err := in.Quantidade.Int()
	if err != nil || qty <= 0 {
		return entity.Movement{}, domain.NewValidationError("quantidade", MsgInvalidQuantity)
	}
	occurredAt, err := parseOccurredAt(in.DataMovimentacao)
	if err != nil {
		return entity.Movement{}, domain.NewValidationError("data_movimentacao", MsgInvalidDate)
	}

	mov := entity.Movement{
		ProductID:  productID,
		UserID:     userID,
		Type:       typ,
		Quantity:   qty,
		OccurredAt: occurredAt,
	}
	if note := strings.TrimSpace(in.Observacao); note != "" {
		mov.Note = &note
	}
	return mov, nil
}

// parseOccurredAt: vacío => nil; "YYYY-MM-DD" => medianoche UTC de ese día; si no, RFC 3339.
func parseOccurredAt(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(dateOnly, raw, time.UTC); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
