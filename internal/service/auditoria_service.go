package service

import (
	"context"

	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"
)

type AuditoriaService interface {
	Listar(ctx context.Context, filtro dto.AuditoriaFiltro) ([]dto.AuditoriaItem, error)
	Stats(ctx context.Context) (*dto.AuditoriaStats, error)
}

type auditoriaService struct {
	repo repository.AuditoriaRepository
}

func NewAuditoriaService(repo repository.AuditoriaRepository) AuditoriaService {
	return &auditoriaService{repo: repo}
}

func (s *auditoriaService) Listar(ctx context.Context, filtro dto.AuditoriaFiltro) ([]dto.AuditoriaItem, error) {
	entries, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditoriaItem, len(entries))
	for i := range entries {
		items[i] = auditoriaAItem(&entries[i])
	}
	return items, nil
}

// Stats resume el rastro: total de registros, usuarios y módulos más activos
// y las últimas acciones registradas.
func (s *auditoriaService) Stats(ctx context.Context) (*dto.AuditoriaStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	topUsuarios, err := s.repo.TopUsuarios(ctx, 5)
	if err != nil {
		return nil, err
	}
	topModulos, err := s.repo.TopModulos(ctx, 5)
	if err != nil {
		return nil, err
	}
	acciones, err := s.repo.AccionesPorTipo(ctx)
	if err != nil {
		return nil, err
	}
	ultimas, err := s.repo.List(ctx, dto.AuditoriaFiltro{Limit: 10})
	if err != nil {
		return nil, err
	}

	stats := &dto.AuditoriaStats{
		TotalRegistros:  total,
		TopUsuarios:     conteosADto(topUsuarios),
		TopModulos:      conteosADto(topModulos),
		AccionesPorTipo: conteosADto(acciones),
		UltimasAcciones: make([]dto.AuditoriaItem, len(ultimas)),
	}
	for i := range ultimas {
		stats.UltimasAcciones[i] = auditoriaAItem(&ultimas[i])
	}
	return stats, nil
}

func auditoriaAItem(e *model.AuditLog) dto.AuditoriaItem {
	return dto.AuditoriaItem{
		ID:                 e.ID,
		UsuarioID:          e.UsuarioID,
		UsuarioNombre:      e.UsuarioNombre,
		Accion:             e.Accion,
		Modulo:             e.Modulo,
		EntidadID:          e.EntidadID,
		EntidadDescripcion: e.EntidadDescripcion,
		Cambios:            e.Cambios,
		Fecha:              formatFecha(e.Fecha),
	}
}

func conteosADto(rows []repository.ConteoRow) []dto.AuditoriaConteo {
	out := make([]dto.AuditoriaConteo, len(rows))
	for i, r := range rows {
		out[i] = dto.AuditoriaConteo{Etiqueta: r.Etiqueta, Cantidad: r.Cantidad}
	}
	return out
}
