package service

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"
)

// DetalleService covers the standalone line-item endpoints, outside the
// aggregate creation path. The parent atencion total is not recomputed here;
// corrections to totals go through the atencion update.
type DetalleService interface {
	Crear(ctx context.Context, req dto.CrearDetalleRequest) (*dto.DetalleResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.DetalleResponse, error)
	Listar(ctx context.Context, filter dto.PageFilter) ([]dto.DetalleResponse, dto.Pagination, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarDetalleRequest) (*dto.DetalleResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type detalleService struct {
	repo         repository.DetalleRepository
	atencionRepo repository.AtencionRepository
	productoRepo repository.ProductoRepository
}

func NewDetalleService(
	repo repository.DetalleRepository,
	atencionRepo repository.AtencionRepository,
	productoRepo repository.ProductoRepository,
) DetalleService {
	return &detalleService{repo: repo, atencionRepo: atencionRepo, productoRepo: productoRepo}
}

func (s *detalleService) validarReferencias(ctx context.Context, atencionID, productoID uint) error {
	existe, err := s.atencionRepo.Existe(ctx, atencionID)
	if err != nil {
		return apierror.Internal("No se pudo verificar la atención.")
	}
	if !existe {
		return apierror.BadRequest("La atención indicada no existe.")
	}
	existe, err = s.productoRepo.Existe(ctx, productoID)
	if err != nil {
		return apierror.Internal("No se pudo verificar el catálogo.")
	}
	if !existe {
		return apierror.BadRequest("El producto o servicio indicado no existe.")
	}
	return nil
}

func (s *detalleService) Crear(ctx context.Context, req dto.CrearDetalleRequest) (*dto.DetalleResponse, error) {
	if err := s.validarReferencias(ctx, req.AtencionID, req.ProductoServicioID); err != nil {
		return nil, err
	}
	d := &model.DetalleAtencion{
		AtencionID:         req.AtencionID,
		ProductoServicioID: req.ProductoServicioID,
		Cantidad:           req.Cantidad,
		PrecioUnitario:     req.PrecioUnitario,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apierror.Internal("No se pudo crear el detalle.")
	}
	return detalleToResponse(d), nil
}

func (s *detalleService) Obtener(ctx context.Context, id uint) (*dto.DetalleResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Detalle no encontrado.")
	}
	return detalleToResponse(d), nil
}

func (s *detalleService) Listar(ctx context.Context, filter dto.PageFilter) ([]dto.DetalleResponse, dto.Pagination, error) {
	filter.Normalizar()
	detalles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, apierror.Internal("No se pudo listar los detalles.")
	}
	resp := make([]dto.DetalleResponse, len(detalles))
	for i := range detalles {
		resp[i] = *detalleToResponse(&detalles[i])
	}
	return resp, dto.NewPagination(total, filter.Page, filter.PageSize), nil
}

func (s *detalleService) Actualizar(ctx context.Context, id uint, req dto.ActualizarDetalleRequest) (*dto.DetalleResponse, error) {
	if req.ID != id {
		return nil, apierror.BadRequest("El id del cuerpo no coincide con el de la ruta.")
	}
	if err := s.validarReferencias(ctx, req.AtencionID, req.ProductoServicioID); err != nil {
		return nil, err
	}
	d := &model.DetalleAtencion{
		ID:                 id,
		AtencionID:         req.AtencionID,
		ProductoServicioID: req.ProductoServicioID,
		Cantidad:           req.Cantidad,
		PrecioUnitario:     req.PrecioUnitario,
	}
	rows, err := s.repo.Update(ctx, d)
	if err != nil {
		return nil, apierror.Internal("No se pudo actualizar el detalle.")
	}
	if rows == 0 {
		return nil, apierror.NotFound("Detalle no encontrado.")
	}
	return detalleToResponse(d), nil
}

func (s *detalleService) Eliminar(ctx context.Context, id uint) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Detalle no encontrado.")
	}
	if err := s.validarReferencias(ctx, d.AtencionID, d.ProductoServicioID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("No se pudo eliminar el detalle.")
	}
	return nil
}

func detalleToResponse(d *model.DetalleAtencion) *dto.DetalleResponse {
	nombre := ""
	if d.ProductoServicio != nil {
		nombre = d.ProductoServicio.Nombre
	}
	return &dto.DetalleResponse{
		ID:                 d.ID,
		AtencionID:         d.AtencionID,
		ProductoServicioID: d.ProductoServicioID,
		Producto:           nombre,
		Cantidad:           d.Cantidad,
		PrecioUnitario:     d.PrecioUnitario,
		Subtotal:           d.Subtotal(),
	}
}
