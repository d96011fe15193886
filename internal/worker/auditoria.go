package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"

	"github.com/rs/zerolog/log"
)

// Auditor writes audit trail entries off the request path. Handlers enqueue
// fire-and-forget; a single goroutine drains the channel into the audit_log
// table. A full queue drops the entry rather than blocking a request.
type Auditor struct {
	repo    repository.AuditoriaRepository
	entries chan model.AuditLog
	done    chan struct{}
	once    sync.Once
}

func NewAuditor(repo repository.AuditoriaRepository, queueSize int) *Auditor {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Auditor{
		repo:    repo,
		entries: make(chan model.AuditLog, queueSize),
		done:    make(chan struct{}),
	}
}

// Start launches the consumer goroutine.
func (a *Auditor) Start(ctx context.Context) {
	go func() {
		defer close(a.done)
		for {
			select {
			case entry, ok := <-a.entries:
				if !ok {
					return
				}
				a.persist(entry)
			case <-ctx.Done():
				a.drain()
				return
			}
		}
	}()
	log.Info().Msg("audit worker started")
}

// Registrar enqueues one audit entry. Never blocks.
func (a *Auditor) Registrar(entry model.AuditLog) {
	if entry.Fecha.IsZero() {
		entry.Fecha = time.Now()
	}
	select {
	case a.entries <- entry:
	default:
		log.Warn().Str("modulo", entry.Modulo).Str("accion", entry.Accion).Msg("audit queue full, entry dropped")
	}
}

// Stop closes the queue and waits until pending entries are flushed.
func (a *Auditor) Stop() {
	a.once.Do(func() { close(a.entries) })
	select {
	case <-a.done:
	case <-time.After(5 * time.Second):
		log.Warn().Msg("audit worker stop timed out")
	}
}

func (a *Auditor) drain() {
	for {
		select {
		case entry, ok := <-a.entries:
			if !ok {
				return
			}
			a.persist(entry)
		default:
			return
		}
	}
}

func (a *Auditor) persist(entry model.AuditLog) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := a.repo.Insert(ctx, &entry); err != nil {
		log.Error().Err(err).Str("modulo", entry.Modulo).Msg("failed to persist audit entry")
	}
}
