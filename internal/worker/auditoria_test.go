package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuditoriaRepo struct {
	mu      sync.Mutex
	entries []model.AuditLog
}

func (r *stubAuditoriaRepo) Insert(_ context.Context, entry *model.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubAuditoriaRepo) List(_ context.Context, _ dto.AuditoriaFiltro) ([]model.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.AuditLog(nil), r.entries...), nil
}

func (r *stubAuditoriaRepo) Count(_ context.Context) (int64, error) {
	return int64(r.count()), nil
}

func (r *stubAuditoriaRepo) TopUsuarios(_ context.Context, _ int) ([]repository.ConteoRow, error) {
	return nil, nil
}

func (r *stubAuditoriaRepo) TopModulos(_ context.Context, _ int) ([]repository.ConteoRow, error) {
	return nil, nil
}

func (r *stubAuditoriaRepo) AccionesPorTipo(_ context.Context) ([]repository.ConteoRow, error) {
	return nil, nil
}

func (r *stubAuditoriaRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

var _ repository.AuditoriaRepository = (*stubAuditoriaRepo)(nil)

func TestAuditor_PersisteEncolado(t *testing.T) {
	repo := &stubAuditoriaRepo{}
	aud := NewAuditor(repo, 8)
	aud.Start(context.Background())

	aud.Registrar(model.AuditLog{UsuarioID: "u1", Accion: "crear", Modulo: "productos"})
	aud.Registrar(model.AuditLog{UsuarioID: "u1", Accion: "eliminar", Modulo: "productos"})
	aud.Stop()

	require.Equal(t, 2, repo.count())
	// la fecha se estampa al encolar si falta
	assert.False(t, repo.entries[0].Fecha.IsZero())
}

func TestAuditor_ColaLlenaNoBloquea(t *testing.T) {
	repo := &stubAuditoriaRepo{}
	aud := NewAuditor(repo, 1)
	// sin Start: el consumidor no corre y la cola se llena

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			aud.Registrar(model.AuditLog{UsuarioID: "u1", Accion: "crear", Modulo: "stress"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Registrar bloqueó con la cola llena")
	}
}
