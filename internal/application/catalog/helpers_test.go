package catalog_test

import (
	"github.com/jhoicas/estoque-meias/internal/domain"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// fakeSession implementa ports.SessionGate.
type fakeSession struct {
	sess *entity.Session
}

func (f *fakeSession) Require() (*entity.Session, error) {
	if f.sess == nil {
		return nil, domain.NewValidationError("session", "Faça login.")
	}
	return f.sess, nil
}

func loggedIn() *fakeSession {
	return &fakeSession{sess: &entity.Session{UserID: "1", DisplayName: "Ana"}}
}
