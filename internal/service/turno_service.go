package service

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"
)

type TurnoService interface {
	Crear(ctx context.Context, req dto.CrearTurnoRequest) (*dto.TurnoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.TurnoResponse, error)
	Listar(ctx context.Context, filter dto.PageFilter) ([]dto.TurnoResponse, dto.Pagination, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarTurnoRequest) (*dto.TurnoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type turnoService struct {
	repo         repository.TurnoRepository
	atencionRepo repository.AtencionRepository
}

func NewTurnoService(repo repository.TurnoRepository, atencionRepo repository.AtencionRepository) TurnoService {
	return &turnoService{repo: repo, atencionRepo: atencionRepo}
}

func (s *turnoService) Crear(ctx context.Context, req dto.CrearTurnoRequest) (*dto.TurnoResponse, error) {
	t := &model.Turno{
		FechaHora:     req.FechaHora,
		EstadoTurnoID: req.EstadoTurnoID,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apierror.Internal("No se pudo crear el turno.")
	}
	return turnoToResponse(t), nil
}

func (s *turnoService) Obtener(ctx context.Context, id uint) (*dto.TurnoResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Turno no encontrado.")
	}
	return turnoToResponse(t), nil
}

func (s *turnoService) Listar(ctx context.Context, filter dto.PageFilter) ([]dto.TurnoResponse, dto.Pagination, error) {
	filter.Normalizar()
	turnos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, apierror.Internal("No se pudo listar los turnos.")
	}
	resp := make([]dto.TurnoResponse, len(turnos))
	for i := range turnos {
		resp[i] = *turnoToResponse(&turnos[i])
	}
	return resp, dto.NewPagination(total, filter.Page, filter.PageSize), nil
}

func (s *turnoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarTurnoRequest) (*dto.TurnoResponse, error) {
	if req.ID != id {
		return nil, apierror.BadRequest("El id del cuerpo no coincide con el de la ruta.")
	}
	t := &model.Turno{
		ID:            id,
		FechaHora:     req.FechaHora,
		EstadoTurnoID: req.EstadoTurnoID,
	}
	rows, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, apierror.Internal("No se pudo actualizar el turno.")
	}
	if rows == 0 {
		return nil, apierror.NotFound("Turno no encontrado.")
	}
	if full, err := s.repo.FindByID(ctx, id); err == nil {
		return turnoToResponse(full), nil
	}
	return turnoToResponse(t), nil
}

// Eliminar removes an appointment slot. Blocked while an atencion references
// it: the visit already happened, the slot is part of its history.
func (s *turnoService) Eliminar(ctx context.Context, id uint) error {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar el turno.")
	}
	if !existe {
		return apierror.NotFound("Turno no encontrado.")
	}
	referenciado, err := s.atencionRepo.ExisteConTurno(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar las atenciones.")
	}
	if referenciado {
		return apierror.BadRequest("No se puede eliminar: el turno está asociado a una atención.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("No se pudo eliminar el turno.")
	}
	return nil
}

func turnoToResponse(t *model.Turno) *dto.TurnoResponse {
	estado := ""
	if t.EstadoTurno != nil {
		estado = t.EstadoTurno.Nombre
	}
	return &dto.TurnoResponse{
		ID:            t.ID,
		FechaHora:     t.FechaHora,
		EstadoTurnoID: t.EstadoTurnoID,
		Estado:        estado,
	}
}
