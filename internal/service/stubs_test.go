package service_test

// In-memory repository stubs shared by the service tests. They satisfy the
// repository interfaces with map-backed storage; DB() returns nil so services
// run their transactions in unit-test mode.

import (
	"context"
	"errors"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── Usuarios ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users  map[uint]*model.Usuario
	nextID uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) ExisteEmail(_ context.Context, email string, excluirID uint) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excluirID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUsuarioRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *stubUsuarioRepo) List(_ context.Context, filter dto.PageFilter) ([]model.Usuario, int64, error) {
	return r.collect(func(u *model.Usuario) bool { return u.Activo })
}

func (r *stubUsuarioRepo) ListByRol(_ context.Context, rolID uint, filter dto.PageFilter) ([]model.Usuario, int64, error) {
	return r.collect(func(u *model.Usuario) bool { return u.Activo && u.RolID == rolID })
}

func (r *stubUsuarioRepo) ListConAcceso(_ context.Context, filter dto.PageFilter) ([]model.Usuario, int64, error) {
	return r.collect(func(u *model.Usuario) bool { return u.Activo && u.AccedeAlSistema })
}

func (r *stubUsuarioRepo) collect(keep func(*model.Usuario) bool) ([]model.Usuario, int64, error) {
	var out []model.Usuario
	for _, u := range r.users {
		if keep(u) {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.users[u.ID]; !ok {
		return errNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uint) error {
	u, ok := r.users[id]
	if !ok {
		return errNotFound
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) CambiarEstado(_ context.Context, id uint, activo bool) error {
	u, ok := r.users[id]
	if !ok {
		return errNotFound
	}
	u.Activo = activo
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Catálogo ──────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos     map[uint]*model.ProductoServicio
	referenciados map[uint]bool
	nextID        uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:     make(map[uint]*model.ProductoServicio),
		referenciados: make(map[uint]bool),
	}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.ProductoServicio) error {
	r.nextID++
	p.ID = r.nextID
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.ProductoServicio, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.productos[id]
	return ok, nil
}

func (r *stubProductoRepo) List(_ context.Context, almacenable bool, filter dto.ProductoFilter) ([]model.ProductoServicio, int64, error) {
	var out []model.ProductoServicio
	for _, p := range r.productos {
		if p.EsAlmacenable == almacenable {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.ProductoServicio) error {
	if _, ok := r.productos[p.ID]; !ok {
		return errNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uint) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) TieneDetalles(_ context.Context, id uint) (bool, error) {
	return r.referenciados[id], nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Imágenes ──────────────────────────────────────────────────────────────────

type stubImagenRepo struct {
	imagenes map[uint]*model.Imagen
	nextID   uint
}

func newStubImagenRepo() *stubImagenRepo {
	return &stubImagenRepo{imagenes: make(map[uint]*model.Imagen)}
}

func (r *stubImagenRepo) Create(_ context.Context, img *model.Imagen) error {
	r.nextID++
	img.ID = r.nextID
	r.imagenes[img.ID] = img
	return nil
}

func (r *stubImagenRepo) FindByID(_ context.Context, id uint) (*model.Imagen, error) {
	img, ok := r.imagenes[id]
	if !ok {
		return nil, errNotFound
	}
	return img, nil
}

func (r *stubImagenRepo) FindActiva(_ context.Context, tipo string, idRelacionado uint) (*model.Imagen, error) {
	for _, img := range r.imagenes {
		if img.TipoImagen == tipo && img.IdRelacionado == idRelacionado && img.Activo {
			return img, nil
		}
	}
	return nil, errNotFound
}

func (r *stubImagenRepo) FindActivasPorOwners(_ context.Context, tipo string, ids []uint) (map[uint]model.Imagen, error) {
	out := make(map[uint]model.Imagen)
	for _, id := range ids {
		for _, img := range r.imagenes {
			if img.TipoImagen == tipo && img.IdRelacionado == id && img.Activo {
				out[id] = *img
			}
		}
	}
	return out, nil
}

func (r *stubImagenRepo) ListByOwner(_ context.Context, tipo string, idRelacionado uint) ([]model.Imagen, error) {
	var out []model.Imagen
	for _, img := range r.imagenes {
		if img.TipoImagen == tipo && img.IdRelacionado == idRelacionado {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (r *stubImagenRepo) Update(_ context.Context, img *model.Imagen) error {
	if _, ok := r.imagenes[img.ID]; !ok {
		return errNotFound
	}
	r.imagenes[img.ID] = img
	return nil
}

func (r *stubImagenRepo) Delete(_ context.Context, id uint) error {
	delete(r.imagenes, id)
	return nil
}

func (r *stubImagenRepo) DeleteByOwner(_ context.Context, tipo string, idRelacionado uint) error {
	for id, img := range r.imagenes {
		if img.TipoImagen == tipo && img.IdRelacionado == idRelacionado {
			delete(r.imagenes, id)
		}
	}
	return nil
}

var _ repository.ImagenRepository = (*stubImagenRepo)(nil)

// ── Atenciones ────────────────────────────────────────────────────────────────

type stubAtencionRepo struct {
	atenciones map[uint]*model.Atencion
	nextID     uint
}

func newStubAtencionRepo() *stubAtencionRepo {
	return &stubAtencionRepo{atenciones: make(map[uint]*model.Atencion)}
}

func (r *stubAtencionRepo) Create(_ context.Context, _ *gorm.DB, a *model.Atencion) error {
	r.nextID++
	a.ID = r.nextID
	for i := range a.Detalles {
		a.Detalles[i].AtencionID = a.ID
	}
	r.atenciones[a.ID] = a
	return nil
}

func (r *stubAtencionRepo) FindByID(_ context.Context, id uint) (*model.Atencion, error) {
	a, ok := r.atenciones[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *stubAtencionRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.atenciones[id]
	return ok, nil
}

func (r *stubAtencionRepo) List(_ context.Context, filter dto.PageFilter) ([]model.Atencion, int64, error) {
	var out []model.Atencion
	for _, a := range r.atenciones {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAtencionRepo) Update(_ context.Context, a *model.Atencion) (int64, error) {
	existing, ok := r.atenciones[a.ID]
	if !ok {
		return 0, nil
	}
	existing.ClienteID = a.ClienteID
	existing.BarberoID = a.BarberoID
	existing.Fecha = a.Fecha
	existing.Total = a.Total
	existing.TurnoID = a.TurnoID
	return 1, nil
}

func (r *stubAtencionRepo) Delete(_ context.Context, id uint) error {
	delete(r.atenciones, id)
	return nil
}

func (r *stubAtencionRepo) TieneDetalles(_ context.Context, id uint) (bool, error) {
	a, ok := r.atenciones[id]
	if !ok {
		return false, nil
	}
	return len(a.Detalles) > 0, nil
}

func (r *stubAtencionRepo) ExisteConTurno(_ context.Context, turnoID uint) (bool, error) {
	for _, a := range r.atenciones {
		if a.TurnoID != nil && *a.TurnoID == turnoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAtencionRepo) ResumenBarbero(_ context.Context, barberoID uint, mes, anio int) (int64, decimal.Decimal, error) {
	var count int64
	total := decimal.Zero
	for _, a := range r.atenciones {
		if a.BarberoID == barberoID && int(a.Fecha.Month()) == mes && a.Fecha.Year() == anio {
			count++
			total = total.Add(a.Total)
		}
	}
	return count, total, nil
}

func (r *stubAtencionRepo) DB() *gorm.DB { return nil }

var _ repository.AtencionRepository = (*stubAtencionRepo)(nil)

// ── Detalles ──────────────────────────────────────────────────────────────────

type stubDetalleRepo struct {
	detalles map[uint]*model.DetalleAtencion
	nextID   uint
}

func newStubDetalleRepo() *stubDetalleRepo {
	return &stubDetalleRepo{detalles: make(map[uint]*model.DetalleAtencion)}
}

func (r *stubDetalleRepo) Create(_ context.Context, d *model.DetalleAtencion) error {
	r.nextID++
	d.ID = r.nextID
	r.detalles[d.ID] = d
	return nil
}

func (r *stubDetalleRepo) FindByID(_ context.Context, id uint) (*model.DetalleAtencion, error) {
	d, ok := r.detalles[id]
	if !ok {
		return nil, errNotFound
	}
	return d, nil
}

func (r *stubDetalleRepo) List(_ context.Context, filter dto.PageFilter) ([]model.DetalleAtencion, int64, error) {
	var out []model.DetalleAtencion
	for _, d := range r.detalles {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (r *stubDetalleRepo) Update(_ context.Context, d *model.DetalleAtencion) (int64, error) {
	if _, ok := r.detalles[d.ID]; !ok {
		return 0, nil
	}
	r.detalles[d.ID] = d
	return 1, nil
}

func (r *stubDetalleRepo) Delete(_ context.Context, id uint) error {
	delete(r.detalles, id)
	return nil
}

var _ repository.DetalleRepository = (*stubDetalleRepo)(nil)

// ── Turnos ────────────────────────────────────────────────────────────────────

type stubTurnoRepo struct {
	turnos map[uint]*model.Turno
	nextID uint
}

func newStubTurnoRepo() *stubTurnoRepo {
	return &stubTurnoRepo{turnos: make(map[uint]*model.Turno)}
}

func (r *stubTurnoRepo) Create(_ context.Context, t *model.Turno) error {
	r.nextID++
	t.ID = r.nextID
	r.turnos[t.ID] = t
	return nil
}

func (r *stubTurnoRepo) FindByID(_ context.Context, id uint) (*model.Turno, error) {
	t, ok := r.turnos[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (r *stubTurnoRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.turnos[id]
	return ok, nil
}

func (r *stubTurnoRepo) List(_ context.Context, filter dto.PageFilter) ([]model.Turno, int64, error) {
	var out []model.Turno
	for _, t := range r.turnos {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTurnoRepo) Update(_ context.Context, t *model.Turno) (int64, error) {
	if _, ok := r.turnos[t.ID]; !ok {
		return 0, nil
	}
	r.turnos[t.ID] = t
	return 1, nil
}

func (r *stubTurnoRepo) Delete(_ context.Context, id uint) error {
	delete(r.turnos, id)
	return nil
}

var _ repository.TurnoRepository = (*stubTurnoRepo)(nil)

// ── Pagos ─────────────────────────────────────────────────────────────────────

type stubPagoRepo struct {
	pagos  map[uint]*model.Pago
	nextID uint
}

func newStubPagoRepo() *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uint]*model.Pago)}
}

func (r *stubPagoRepo) Create(_ context.Context, p *model.Pago) error {
	r.nextID++
	p.ID = r.nextID
	r.pagos[p.ID] = p
	return nil
}

func (r *stubPagoRepo) FindByID(_ context.Context, id uint) (*model.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPagoRepo) ListByAtencion(_ context.Context, atencionID uint) ([]model.Pago, error) {
	var out []model.Pago
	for _, p := range r.pagos {
		if p.AtencionID == atencionID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPagoRepo) SumByAtencion(_ context.Context, atencionID uint) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.pagos {
		if p.AtencionID == atencionID {
			total = total.Add(p.Monto)
		}
	}
	return total, nil
}

func (r *stubPagoRepo) Delete(_ context.Context, id uint) error {
	delete(r.pagos, id)
	return nil
}

var _ repository.PagoRepository = (*stubPagoRepo)(nil)
