package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AtencionService interface {
	Crear(ctx context.Context, barberoID uint, req dto.CrearAtencionRequest) (*dto.AtencionResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.AtencionResponse, error)
	Listar(ctx context.Context, filter dto.PageFilter) ([]dto.AtencionResponse, dto.Pagination, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarAtencionRequest) (*dto.AtencionResponse, error)
	Eliminar(ctx context.Context, id uint) error
	ResumenBarbero(ctx context.Context, barberoID uint, mes, anio int) (*dto.ResumenBarberoResponse, error)
}

type atencionService struct {
	repo         repository.AtencionRepository
	usuarioRepo  repository.UsuarioRepository
	productoRepo repository.ProductoRepository
	turnoRepo    repository.TurnoRepository
}

func NewAtencionService(
	repo repository.AtencionRepository,
	usuarioRepo repository.UsuarioRepository,
	productoRepo repository.ProductoRepository,
	turnoRepo repository.TurnoRepository,
) AtencionService {
	return &atencionService{
		repo:         repo,
		usuarioRepo:  usuarioRepo,
		productoRepo: productoRepo,
		turnoRepo:    turnoRepo,
	}
}

// precioUnitarioMax mirrors the lte=10000 bound on the request DTOs.
var precioUnitarioMax = decimal.NewFromInt(10000)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Crear registers a completed visit with its line items in one transaction.
// The barber is always the authenticated user; the total is recomputed from
// the line items, whatever the request claims.
func (s *atencionService) Crear(ctx context.Context, barberoID uint, req dto.CrearAtencionRequest) (*dto.AtencionResponse, error) {
	// 1. Cliente must exist, be active and hold the Cliente role.
	cliente, err := s.usuarioRepo.FindByID(ctx, req.ClienteID)
	if err != nil {
		return nil, apierror.BadRequest("El cliente indicado no existe.")
	}
	if !cliente.Activo || cliente.RolID != model.RolClienteID {
		return nil, apierror.BadRequest("El cliente indicado no es válido.")
	}

	// 2. Barbero comes from the token, never from the body.
	barbero, err := s.usuarioRepo.FindByID(ctx, barberoID)
	if err != nil {
		return nil, apierror.BadRequest("El barbero autenticado no existe.")
	}
	rol, err := model.RolDesdeID(barbero.RolID)
	if err != nil || !rol.EsPersonal() {
		return nil, apierror.Forbidden("Solo el personal puede registrar atenciones.")
	}

	if req.Total.IsNegative() {
		return nil, apierror.BadRequest("El total no puede ser negativo.")
	}
	if len(req.Detalles) == 0 {
		return nil, apierror.BadRequest("Una atención requiere al menos un detalle.")
	}

	// 3. Resolve catalog rows and recompute the total server-side.
	total := decimal.Zero
	detalles := make([]model.DetalleAtencion, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		if d.Cantidad <= 0 {
			return nil, apierror.BadRequest(fmt.Sprintf("La cantidad del producto %d debe ser mayor a cero.", d.ProductoServicioID))
		}
		if d.PrecioUnitario.IsNegative() || d.PrecioUnitario.GreaterThan(precioUnitarioMax) {
			return nil, apierror.BadRequest(fmt.Sprintf("El precio unitario del producto %d está fuera de rango.", d.ProductoServicioID))
		}
		existe, err := s.productoRepo.Existe(ctx, d.ProductoServicioID)
		if err != nil {
			return nil, apierror.Internal("No se pudo verificar el catálogo.")
		}
		if !existe {
			return nil, apierror.BadRequest(fmt.Sprintf("El producto o servicio %d no existe.", d.ProductoServicioID))
		}
		det := model.DetalleAtencion{
			ProductoServicioID: d.ProductoServicioID,
			Cantidad:           d.Cantidad,
			PrecioUnitario:     d.PrecioUnitario,
		}
		total = total.Add(det.Subtotal())
		detalles = append(detalles, det)
	}
	if !req.Total.IsZero() && !req.Total.Equal(total) {
		log.Warn().
			Str("total_recibido", req.Total.String()).
			Str("total_calculado", total.String()).
			Msg("atencion: total del cuerpo descartado")
	}

	// 4. Optional turno link.
	if req.TurnoID != nil {
		existe, err := s.turnoRepo.Existe(ctx, *req.TurnoID)
		if err != nil {
			return nil, apierror.Internal("No se pudo verificar el turno.")
		}
		if !existe {
			return nil, apierror.BadRequest("El turno indicado no existe.")
		}
	}

	fecha := req.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	// 5. Atomic write of the aggregate.
	atencion := model.Atencion{
		ClienteID: req.ClienteID,
		BarberoID: barberoID,
		Fecha:     fecha,
		Total:     total,
		TurnoID:   req.TurnoID,
		Detalles:  detalles,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &atencion)
	})
	if txErr != nil {
		return nil, apierror.Internal("No se pudo registrar la atención.")
	}

	// 6. Reload the response graph; fall back to the in-memory aggregate if
	// the reload fails (unit test mode has no DB to reload from).
	if full, err := s.repo.FindByID(ctx, atencion.ID); err == nil {
		return atencionToResponse(full), nil
	}
	atencion.Cliente = cliente
	atencion.Barbero = barbero
	return atencionToResponse(&atencion), nil
}

func (s *atencionService) Obtener(ctx context.Context, id uint) (*dto.AtencionResponse, error) {
	atencion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Atención no encontrada.")
	}
	return atencionToResponse(atencion), nil
}

func (s *atencionService) Listar(ctx context.Context, filter dto.PageFilter) ([]dto.AtencionResponse, dto.Pagination, error) {
	filter.Normalizar()
	atenciones, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, apierror.Internal("No se pudo listar las atenciones.")
	}
	resp := make([]dto.AtencionResponse, len(atenciones))
	for i := range atenciones {
		resp[i] = *atencionToResponse(&atenciones[i])
	}
	return resp, dto.NewPagination(total, filter.Page, filter.PageSize), nil
}

// Actualizar rewrites the header fields of an atencion. Line items are
// managed through their own endpoints. Zero rows affected means the row is
// gone — a 404, the same as a stale concurrent delete.
func (s *atencionService) Actualizar(ctx context.Context, id uint, req dto.ActualizarAtencionRequest) (*dto.AtencionResponse, error) {
	if req.ID != id {
		return nil, apierror.BadRequest("El id del cuerpo no coincide con el de la ruta.")
	}

	cliente, err := s.usuarioRepo.FindByID(ctx, req.ClienteID)
	if err != nil || !cliente.Activo || cliente.RolID != model.RolClienteID {
		return nil, apierror.BadRequest("El cliente indicado no es válido.")
	}
	barbero, err := s.usuarioRepo.FindByID(ctx, req.BarberoID)
	if err != nil {
		return nil, apierror.BadRequest("El barbero indicado no existe.")
	}
	if rol, err := model.RolDesdeID(barbero.RolID); err != nil || !rol.EsPersonal() {
		return nil, apierror.BadRequest("El barbero indicado no pertenece al personal.")
	}
	if req.TurnoID != nil {
		existe, err := s.turnoRepo.Existe(ctx, *req.TurnoID)
		if err != nil {
			return nil, apierror.Internal("No se pudo verificar el turno.")
		}
		if !existe {
			return nil, apierror.BadRequest("El turno indicado no existe.")
		}
	}

	fecha := req.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	atencion := model.Atencion{
		ID:        id,
		ClienteID: req.ClienteID,
		BarberoID: req.BarberoID,
		Fecha:     fecha,
		Total:     req.Total,
		TurnoID:   req.TurnoID,
	}
	rows, err := s.repo.Update(ctx, &atencion)
	if err != nil {
		return nil, apierror.Internal("No se pudo actualizar la atención.")
	}
	if rows == 0 {
		return nil, apierror.NotFound("Atención no encontrada.")
	}

	if full, err := s.repo.FindByID(ctx, id); err == nil {
		return atencionToResponse(full), nil
	}
	return atencionToResponse(&atencion), nil
}

// Eliminar removes an atencion only when no line items remain.
func (s *atencionService) Eliminar(ctx context.Context, id uint) error {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar la atención.")
	}
	if !existe {
		return apierror.NotFound("Atención no encontrada.")
	}
	tiene, err := s.repo.TieneDetalles(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar los detalles.")
	}
	if tiene {
		return apierror.BadRequest("No se puede eliminar: la atención tiene detalles registrados.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("No se pudo eliminar la atención.")
	}
	return nil
}

func (s *atencionService) ResumenBarbero(ctx context.Context, barberoID uint, mes, anio int) (*dto.ResumenBarberoResponse, error) {
	if mes < 1 || mes > 12 {
		return nil, apierror.BadRequest("El mes debe estar entre 1 y 12.")
	}
	barbero, err := s.usuarioRepo.FindByID(ctx, barberoID)
	if err != nil {
		return nil, apierror.NotFound("Barbero no encontrado.")
	}
	if rol, err := model.RolDesdeID(barbero.RolID); err != nil || !rol.EsPersonal() {
		return nil, apierror.BadRequest("El usuario indicado no pertenece al personal.")
	}

	count, ingresos, err := s.repo.ResumenBarbero(ctx, barberoID, mes, anio)
	if err != nil {
		return nil, apierror.Internal("No se pudo calcular el resumen.")
	}
	return &dto.ResumenBarberoResponse{
		BarberoID:       barberoID,
		Mes:             mes,
		Anio:            anio,
		TotalAtenciones: count,
		Ingresos:        ingresos,
	}, nil
}

func atencionToResponse(a *model.Atencion) *dto.AtencionResponse {
	detalles := make([]dto.DetalleResponse, 0, len(a.Detalles))
	for _, d := range a.Detalles {
		nombre := ""
		if d.ProductoServicio != nil {
			nombre = d.ProductoServicio.Nombre
		}
		detalles = append(detalles, dto.DetalleResponse{
			ID:                 d.ID,
			AtencionID:         d.AtencionID,
			ProductoServicioID: d.ProductoServicioID,
			Producto:           nombre,
			Cantidad:           d.Cantidad,
			PrecioUnitario:     d.PrecioUnitario,
			Subtotal:           d.Subtotal(),
		})
	}
	pagos := make([]dto.PagoResponse, 0, len(a.Pagos))
	for _, p := range a.Pagos {
		pagos = append(pagos, pagoToResponse(&p))
	}
	clienteNombre := ""
	if a.Cliente != nil {
		clienteNombre = a.Cliente.Nombre
	}
	barberoNombre := ""
	if a.Barbero != nil {
		barberoNombre = a.Barbero.Nombre
	}
	return &dto.AtencionResponse{
		ID:        a.ID,
		ClienteID: a.ClienteID,
		Cliente:   clienteNombre,
		BarberoID: a.BarberoID,
		Barbero:   barberoNombre,
		Fecha:     a.Fecha,
		Total:     a.Total,
		TurnoID:   a.TurnoID,
		Detalles:  detalles,
		Pagos:     pagos,
	}
}

func pagoToResponse(p *model.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		ID:         p.ID,
		AtencionID: p.AtencionID,
		MetodoPago: p.MetodoPago,
		Monto:      p.Monto,
		Fecha:      p.Fecha,
	}
}
