package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/infra"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest, imagen *multipart.FileHeader) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	ListarAlmacenables(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, dto.Pagination, error)
	ListarNoAlmacenables(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, dto.Pagination, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest, imagen *multipart.FileHeader) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
	// ObtenerImagen resolves the absolute file path of the active image.
	ObtenerImagen(ctx context.Context, id uint) (string, error)
	EliminarImagen(ctx context.Context, imagenID uint) error
}

type productoService struct {
	repo       repository.ProductoRepository
	imagenRepo repository.ImagenRepository
	store      *infra.ImageStore
}

func NewProductoService(repo repository.ProductoRepository, imagenRepo repository.ImagenRepository, store *infra.ImageStore) ProductoService {
	return &productoService{repo: repo, imagenRepo: imagenRepo, store: store}
}

// imageSubdir picks the filesystem bucket for a catalog row's image.
func imageSubdir(esAlmacenable bool) string {
	if esAlmacenable {
		return "productos"
	}
	return "servicios"
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest, imagen *multipart.FileHeader) (*dto.ProductoResponse, error) {
	if req.Cantidad > 0 && !req.EsAlmacenable {
		return nil, apierror.BadRequest("Un servicio no puede tener cantidad en stock.")
	}

	p := &model.ProductoServicio{
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Precio:        req.Precio,
		EsAlmacenable: req.EsAlmacenable,
		Cantidad:      req.Cantidad,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Internal("No se pudo crear el producto o servicio.")
	}

	resp := productoToResponse(p, nil)
	if imagen != nil {
		ruta, err := s.guardarImagen(ctx, p, imagen)
		if err != nil {
			// The catalog row exists; the image failure is reported but the
			// creation is not rolled back.
			log.Warn().Err(err).Uint("producto_id", p.ID).Msg("producto: imagen no guardada")
		} else {
			resp.RutaImagen = &ruta
		}
	}
	return resp, nil
}

func (s *productoService) guardarImagen(ctx context.Context, p *model.ProductoServicio, file *multipart.FileHeader) (string, error) {
	ruta, err := s.store.Save(imageSubdir(p.EsAlmacenable), p.ID, file)
	if err != nil {
		return "", err
	}

	// Replace: deactivate the current active image, if any.
	if actual, err := s.imagenRepo.FindActiva(ctx, model.ImagenProductoServicio, p.ID); err == nil {
		actual.Activo = false
		if err := s.imagenRepo.Update(ctx, actual); err != nil {
			return "", err
		}
		if err := s.store.Remove(actual.Ruta); err != nil {
			log.Warn().Err(err).Str("ruta", actual.Ruta).Msg("producto: archivo previo no eliminado")
		}
	}

	img := &model.Imagen{
		Ruta:          ruta,
		TipoImagen:    model.ImagenProductoServicio,
		IdRelacionado: p.ID,
		Activo:        true,
		FechaCreacion: time.Now(),
	}
	if err := s.imagenRepo.Create(ctx, img); err != nil {
		return "", err
	}
	return ruta, nil
}

func (s *productoService) Obtener(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Producto o servicio no encontrado.")
	}
	var ruta *string
	if img, err := s.imagenRepo.FindActiva(ctx, model.ImagenProductoServicio, id); err == nil {
		ruta = &img.Ruta
	}
	return productoToResponse(p, ruta), nil
}

func (s *productoService) ListarAlmacenables(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, dto.Pagination, error) {
	return s.listar(ctx, true, filter)
}

func (s *productoService) ListarNoAlmacenables(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, dto.Pagination, error) {
	return s.listar(ctx, false, filter)
}

// listar resolves images for the whole page with a single query instead of
// one lookup per row.
func (s *productoService) listar(ctx context.Context, almacenable bool, filter dto.ProductoFilter) ([]dto.ProductoResponse, dto.Pagination, error) {
	filter.Normalizar()
	productos, total, err := s.repo.List(ctx, almacenable, filter)
	if err != nil {
		return nil, dto.Pagination{}, apierror.Internal("No se pudo listar el catálogo.")
	}

	ids := make([]uint, len(productos))
	for i := range productos {
		ids[i] = productos[i].ID
	}
	imagenes, err := s.imagenRepo.FindActivasPorOwners(ctx, model.ImagenProductoServicio, ids)
	if err != nil {
		return nil, dto.Pagination{}, apierror.Internal("No se pudo resolver las imágenes.")
	}

	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		var ruta *string
		if img, ok := imagenes[productos[i].ID]; ok {
			r := img.Ruta
			ruta = &r
		}
		resp[i] = *productoToResponse(&productos[i], ruta)
	}
	return resp, dto.NewPagination(total, filter.Page, filter.PageSize), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest, imagen *multipart.FileHeader) (*dto.ProductoResponse, error) {
	if req.ID != id {
		return nil, apierror.BadRequest("El id del cuerpo no coincide con el de la ruta.")
	}
	if req.Cantidad > 0 && !req.EsAlmacenable {
		return nil, apierror.BadRequest("Un servicio no puede tener cantidad en stock.")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Producto o servicio no encontrado.")
	}

	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.Precio = req.Precio
	p.EsAlmacenable = req.EsAlmacenable
	p.Cantidad = req.Cantidad

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Internal("No se pudo actualizar el producto o servicio.")
	}

	var ruta *string
	if imagen != nil {
		nueva, err := s.guardarImagen(ctx, p, imagen)
		if err != nil {
			log.Warn().Err(err).Uint("producto_id", p.ID).Msg("producto: imagen no guardada")
		} else {
			ruta = &nueva
		}
	}
	if ruta == nil {
		if img, err := s.imagenRepo.FindActiva(ctx, model.ImagenProductoServicio, id); err == nil {
			ruta = &img.Ruta
		}
	}
	return productoToResponse(p, ruta), nil
}

// Eliminar removes a catalog row physically, together with its image rows
// and files. Blocked while any detalle_atenciones row references it.
func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar el producto o servicio.")
	}
	if !existe {
		return apierror.NotFound("Producto o servicio no encontrado.")
	}

	referenciado, err := s.repo.TieneDetalles(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar las referencias.")
	}
	if referenciado {
		return apierror.BadRequest("No se puede eliminar: el producto o servicio figura en atenciones registradas.")
	}

	imagenes, err := s.imagenRepo.ListByOwner(ctx, model.ImagenProductoServicio, id)
	if err == nil {
		for _, img := range imagenes {
			if err := s.store.Remove(img.Ruta); err != nil {
				log.Warn().Err(err).Str("ruta", img.Ruta).Msg("producto: archivo no eliminado")
			}
		}
	}
	if err := s.imagenRepo.DeleteByOwner(ctx, model.ImagenProductoServicio, id); err != nil {
		return apierror.Internal("No se pudo eliminar las imágenes.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("No se pudo eliminar el producto o servicio.")
	}
	return nil
}

func (s *productoService) ObtenerImagen(ctx context.Context, id uint) (string, error) {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return "", apierror.Internal("No se pudo verificar el producto o servicio.")
	}
	if !existe {
		return "", apierror.NotFound("Producto o servicio no encontrado.")
	}
	img, err := s.imagenRepo.FindActiva(ctx, model.ImagenProductoServicio, id)
	if err != nil {
		return "", apierror.NotFound("El producto o servicio no tiene imagen activa.")
	}
	return filepath.Join(s.store.Root(), img.Ruta), nil
}

// EliminarImagen removes one image row plus its file on disk.
func (s *productoService) EliminarImagen(ctx context.Context, imagenID uint) error {
	img, err := s.imagenRepo.FindByID(ctx, imagenID)
	if err != nil {
		return apierror.NotFound("Imagen no encontrada.")
	}
	if img.TipoImagen != model.ImagenProductoServicio {
		return apierror.BadRequest("La imagen no pertenece al catálogo.")
	}
	if err := s.store.Remove(img.Ruta); err != nil {
		log.Warn().Err(err).Str("ruta", img.Ruta).Msg("producto: archivo no eliminado")
	}
	if err := s.imagenRepo.Delete(ctx, imagenID); err != nil {
		return apierror.Internal("No se pudo eliminar la imagen.")
	}
	return nil
}

func productoToResponse(p *model.ProductoServicio, ruta *string) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		Precio:        p.Precio,
		EsAlmacenable: p.EsAlmacenable,
		Cantidad:      p.Cantidad,
		RutaImagen:    ruta,
	}
}
