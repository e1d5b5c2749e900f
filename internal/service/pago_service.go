package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/infra"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"
	"github.com/edulopezdev/barberiaLopez/internal/worker"

	"github.com/rs/zerolog/log"
)

type PagoService interface {
	Crear(ctx context.Context, req dto.CrearPagoRequest) (*dto.CrearPagoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.PagoResponse, error)
	ListarPorAtencion(ctx context.Context, atencionID uint) ([]dto.PagoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type pagoService struct {
	repo         repository.PagoRepository
	atencionRepo repository.AtencionRepository
	imagenRepo   repository.ImagenRepository
	dispatcher   *worker.Dispatcher
	// pdfDir empty disables receipt generation (unit test mode).
	pdfDir string
}

func NewPagoService(
	repo repository.PagoRepository,
	atencionRepo repository.AtencionRepository,
	imagenRepo repository.ImagenRepository,
	dispatcher *worker.Dispatcher,
	pdfDir string,
) PagoService {
	return &pagoService{
		repo:         repo,
		atencionRepo: atencionRepo,
		imagenRepo:   imagenRepo,
		dispatcher:   dispatcher,
		pdfDir:       pdfDir,
	}
}

// Crear registers a payment against an atencion. Payments may be partial and
// may accumulate past the attendance total (tips, rounding); an overshoot is
// flagged in the response, never rejected.
func (s *pagoService) Crear(ctx context.Context, req dto.CrearPagoRequest) (*dto.CrearPagoResponse, error) {
	if !model.MetodoPagoValido(req.MetodoPago) {
		return nil, apierror.BadRequest("Método de pago inválido.").
			WithDetails(map[string]interface{}{"metodosAceptados": model.MetodosPago})
	}
	if !req.Monto.IsPositive() {
		return nil, apierror.BadRequest("El monto debe ser mayor a cero.")
	}

	atencion, err := s.atencionRepo.FindByID(ctx, req.AtencionID)
	if err != nil {
		return nil, apierror.BadRequest("La atención indicada no existe.")
	}

	pagado, err := s.repo.SumByAtencion(ctx, req.AtencionID)
	if err != nil {
		return nil, apierror.Internal("No se pudo verificar los pagos previos.")
	}

	fecha := req.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	pago := &model.Pago{
		AtencionID: req.AtencionID,
		MetodoPago: req.MetodoPago,
		Monto:      req.Monto,
		Fecha:      fecha,
	}
	if err := s.repo.Create(ctx, pago); err != nil {
		return nil, apierror.Internal("No se pudo registrar el pago.")
	}

	resp := &dto.CrearPagoResponse{Pago: pagoToResponse(pago)}
	acumulado := pagado.Add(req.Monto)
	if acumulado.GreaterThan(atencion.Total) {
		resp.Advertencia = fmt.Sprintf(
			"El total pagado ($%s) supera el total de la atención ($%s).",
			acumulado.StringFixed(2), atencion.Total.StringFixed(2),
		)
		log.Warn().
			Uint("atencion_id", atencion.ID).
			Str("acumulado", acumulado.StringFixed(2)).
			Str("total", atencion.Total.StringFixed(2)).
			Msg("pago: el acumulado supera el total de la atención")
	}

	s.emitirComprobante(ctx, atencion, pago)
	return resp, nil
}

// emitirComprobante generates the PDF receipt, records it as a comprobante
// image and enqueues the email to the customer. All best effort: a failure
// here never undoes the payment.
func (s *pagoService) emitirComprobante(ctx context.Context, atencion *model.Atencion, pago *model.Pago) {
	if s.pdfDir == "" {
		return
	}
	pdfPath, err := infra.GenerateComprobantePDF(atencion, pago, s.pdfDir)
	if err != nil {
		log.Error().Err(err).Uint("pago_id", pago.ID).Msg("pago: no se pudo generar el comprobante PDF")
		return
	}

	img := &model.Imagen{
		Ruta:          pdfPath,
		TipoImagen:    model.ImagenComprobantePago,
		IdRelacionado: pago.ID,
		Activo:        true,
		FechaCreacion: time.Now(),
	}
	if err := s.imagenRepo.Create(ctx, img); err != nil {
		log.Error().Err(err).Uint("pago_id", pago.ID).Msg("pago: no se pudo registrar el comprobante")
	}

	if s.dispatcher == nil || atencion.Cliente == nil || atencion.Cliente.Email == "" {
		return
	}
	payload := worker.EmailJobPayload{
		ToEmail: atencion.Cliente.Email,
		Subject: fmt.Sprintf("Comprobante de pago — Atención N° %d", atencion.ID),
		Body: fmt.Sprintf(
			"Hola %s,\n\nAdjuntamos el comprobante de tu pago de $%s.\n\n¡Gracias por tu visita!",
			atencion.Cliente.Nombre, pago.Monto.StringFixed(2),
		),
		PDFPath: pdfPath,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Uint("pago_id", pago.ID).Msg("pago: no se pudo encolar el email")
	}
}

func (s *pagoService) Obtener(ctx context.Context, id uint) (*dto.PagoResponse, error) {
	pago, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Pago no encontrado.")
	}
	resp := pagoToResponse(pago)
	return &resp, nil
}

// Eliminar removes a payment and its receipt records. The receipt cleanup is
// best effort: the payment row is the source of truth.
func (s *pagoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Pago no encontrado.")
	}
	if err := s.imagenRepo.DeleteByOwner(ctx, model.ImagenComprobantePago, id); err != nil {
		log.Warn().Err(err).Uint("pago_id", id).Msg("pago: comprobantes no eliminados")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal("No se pudo eliminar el pago.")
	}
	return nil
}

func (s *pagoService) ListarPorAtencion(ctx context.Context, atencionID uint) ([]dto.PagoResponse, error) {
	existe, err := s.atencionRepo.Existe(ctx, atencionID)
	if err != nil {
		return nil, apierror.Internal("No se pudo verificar la atención.")
	}
	if !existe {
		return nil, apierror.NotFound("Atención no encontrada.")
	}
	pagos, err := s.repo.ListByAtencion(ctx, atencionID)
	if err != nil {
		return nil, apierror.Internal("No se pudo listar los pagos.")
	}
	resp := make([]dto.PagoResponse, len(pagos))
	for i := range pagos {
		resp[i] = pagoToResponse(&pagos[i])
	}
	return resp, nil
}
