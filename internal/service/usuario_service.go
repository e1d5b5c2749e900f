package service

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UsuarioService interface {
	Crear(ctx context.Context, actorRol model.NombreRol, actorID uint, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error)
	ListarClientes(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error)
	ListarBarberos(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error)
	ListarConAcceso(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error)
	Actualizar(ctx context.Context, actorRol model.NombreRol, actorID uint, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Eliminar(ctx context.Context, id uint) error
	CambiarEstado(ctx context.Context, id uint, activo bool) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

// Crear registers a new user. Staff roles (Administrador, Barbero) can only
// be created by an administrator; clientes can be created by any staff
// member. A cliente never gets system access regardless of what the request
// says.
func (s *usuarioService) Crear(ctx context.Context, actorRol model.NombreRol, actorID uint, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	rol, err := model.RolDesdeID(req.RolID)
	if err != nil {
		return nil, apierror.BadRequest("El rol indicado no existe.")
	}

	if rol.EsPersonal() && actorRol != model.RolAdministrador {
		return nil, apierror.Forbidden("Solo un administrador puede crear usuarios del personal.")
	}

	existe, err := s.repo.ExisteEmail(ctx, req.Email, 0)
	if err != nil {
		return nil, apierror.Internal("No se pudo verificar el email.")
	}
	if existe {
		return nil, apierror.BadRequest("Ya existe un usuario con ese email.")
	}

	accede := req.AccedeAlSistema
	if rol == model.RolCliente {
		accede = false
	}

	var password string
	if accede {
		if req.Password == "" {
			return nil, apierror.BadRequest("La contraseña es obligatoria para usuarios con acceso al sistema.")
		}
		password = req.Password
	} else {
		// Placeholder credential: the row still carries a hash so a later
		// access grant is a plain update, but nobody can guess it.
		password = uuid.NewString()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apierror.Internal("No se pudo procesar la contraseña.")
	}
	hashStr := string(hash)

	user := &model.Usuario{
		Nombre:          req.Nombre,
		Email:           req.Email,
		Telefono:        req.Telefono,
		RolID:           req.RolID,
		AccedeAlSistema: accede,
		Activo:          true,
		PasswordHash:    &hashStr,
		CreadoPor:       &actorID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apierror.Internal("No se pudo crear el usuario.")
	}
	return usuarioToResponse(user), nil
}

func (s *usuarioService) Obtener(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Usuario no encontrado.")
	}
	return usuarioToResponse(user), nil
}

// Listar pages through every active user, regardless of role.
func (s *usuarioService) Listar(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error) {
	filter.Normalizar()
	usuarios, total, err := s.repo.List(ctx, filter)
	return s.buildList(usuarios, total, filter, err)
}

func (s *usuarioService) ListarClientes(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error) {
	filter.Normalizar()
	usuarios, total, err := s.repo.ListByRol(ctx, model.RolClienteID, filter)
	return s.buildList(usuarios, total, filter, err)
}

func (s *usuarioService) ListarBarberos(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error) {
	filter.Normalizar()
	usuarios, total, err := s.repo.ListByRol(ctx, model.RolBarberoID, filter)
	return s.buildList(usuarios, total, filter, err)
}

func (s *usuarioService) ListarConAcceso(ctx context.Context, filter dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error) {
	filter.Normalizar()
	usuarios, total, err := s.repo.ListConAcceso(ctx, filter)
	return s.buildList(usuarios, total, filter, err)
}

func (s *usuarioService) buildList(usuarios []model.Usuario, total int64, filter dto.PageFilter, err error) ([]dto.UsuarioResponse, dto.Pagination, error) {
	if err != nil {
		return nil, dto.Pagination{}, apierror.Internal("No se pudo listar los usuarios.")
	}
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i := range usuarios {
		resp[i] = *usuarioToResponse(&usuarios[i])
	}
	return resp, dto.NewPagination(total, filter.Page, filter.PageSize), nil
}

// Actualizar modifies a user's own mutable fields. A non-admin actor can
// only update their own record.
func (s *usuarioService) Actualizar(ctx context.Context, actorRol model.NombreRol, actorID uint, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if req.ID != id {
		return nil, apierror.BadRequest("El id del cuerpo no coincide con el de la ruta.")
	}
	if actorRol != model.RolAdministrador && actorID != id {
		return nil, apierror.Forbidden("No puede modificar a otro usuario.")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Usuario no encontrado.")
	}

	if req.Email != "" && req.Email != user.Email {
		dup, err := s.repo.ExisteEmail(ctx, req.Email, id)
		if err != nil {
			return nil, apierror.Internal("No se pudo verificar el email.")
		}
		if dup {
			return nil, apierror.BadRequest("Ya existe un usuario con ese email.")
		}
		user.Email = req.Email
	}
	if req.Nombre != "" {
		user.Nombre = req.Nombre
	}
	if req.Telefono != nil {
		user.Telefono = req.Telefono
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, apierror.Internal("No se pudo procesar la contraseña.")
		}
		hashStr := string(hash)
		user.PasswordHash = &hashStr
	}
	user.ModificadoPor = &actorID

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apierror.Internal("No se pudo actualizar el usuario.")
	}
	return usuarioToResponse(user), nil
}

// Eliminar performs the logical delete: activo = false, the row stays.
// Deleting an already-inactive user is a no-op, not an error.
func (s *usuarioService) Eliminar(ctx context.Context, id uint) error {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar el usuario.")
	}
	if !existe {
		return apierror.NotFound("Usuario no encontrado.")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Internal("No se pudo eliminar el usuario.")
	}
	return nil
}

func (s *usuarioService) CambiarEstado(ctx context.Context, id uint, activo bool) error {
	existe, err := s.repo.Existe(ctx, id)
	if err != nil {
		return apierror.Internal("No se pudo verificar el usuario.")
	}
	if !existe {
		return apierror.NotFound("Usuario no encontrado.")
	}
	if err := s.repo.CambiarEstado(ctx, id, activo); err != nil {
		return apierror.Internal("No se pudo cambiar el estado del usuario.")
	}
	return nil
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	rolNombre := ""
	if u.Rol != nil {
		rolNombre = u.Rol.NombreRol
	} else if rol, err := model.RolDesdeID(u.RolID); err == nil {
		rolNombre = string(rol)
	}
	return &dto.UsuarioResponse{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Email:           u.Email,
		Telefono:        u.Telefono,
		Avatar:          u.Avatar,
		RolID:           u.RolID,
		Rol:             rolNombre,
		AccedeAlSistema: u.AccedeAlSistema,
		Activo:          u.Activo,
	}
}
