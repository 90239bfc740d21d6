package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-meias/internal/application/ports"
	"github.com/jhoicas/estoque-meias/internal/domain"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// Mensajes mostrados al usuario.
const (
	MsgMissingCredentials = "Informe email e senha."
	MsgLoginFailed        = "Falha no login"
	MsgLoginRequired      = "Faça login."
)

// SessionContext mantiene la identidad autenticada usada para atribuir movimientos.
// Es el único dueño de la sesión: se reemplaza en Login y se limpia en Logout.
type SessionContext struct {
	auth ports.Authenticator
	log  zerolog.Logger

	mu      sync.RWMutex
	current *entity.Session
}

// NewSessionContext construye el contexto de sesión (sin sesión activa).
func NewSessionContext(auth ports.Authenticator, log zerolog.Logger) *SessionContext {
	return &SessionContext{auth: auth, log: log}
}

// Login valida que email y password no estén vacíos, autentica contra el backend y
// reemplaza la sesión. Un login fallido no toca la sesión existente.
func (s *SessionContext) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, domain.NewValidationError("email", MsgMissingCredentials)
	}
	sess, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login rechazado")
		return nil, &domain.AuthError{Message: domain.RemoteMessage(err, MsgLoginFailed), Err: err}
	}
	if sess == nil || sess.UserID == "" {
		return nil, &domain.AuthError{Message: MsgLoginFailed}
	}
	if sess.Email == "" {
		sess.Email = email
	}

	s.mu.Lock()
	copied := *sess
	s.current = &copied
	s.mu.Unlock()

	s.log.Info().Str("user_id", sess.UserID).Msg("sesión iniciada")
	return sess, nil
}

// Logout limpia la sesión incondicionalmente. Las operaciones en vuelo no se cancelan.
func (s *SessionContext) Logout() {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()
	if prev != nil {
		s.log.Info().Str("user_id", prev.UserID).Msg("sesión cerrada")
	}
}

// Current devuelve una copia de la sesión activa, si existe.
func (s *SessionContext) Current() (*entity.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	copied := *s.current
	return &copied, true
}

// Require devuelve la sesión activa o un ValidationError si no hay login.
// Se evalúa al momento de ejecutar la operación, no al renderizar el formulario.
func (s *SessionContext) Require() (*entity.Session, error) {
	sess, ok := s.Current()
	if !ok {
		return nil, domain.NewValidationError("session", MsgLoginRequired)
	}
	return sess, nil
}
