package usuario

import (
	"context"
	"errors"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
	"github.com/Alssex/Proyecto-salud/internal/platform/auth"
)

// ErrCredencialesInvalidas is returned when the email and document number do
// not match any user. The handler maps it to 401 without detail.
var ErrCredencialesInvalidas = errors.New("email o contraseña incorrectos")

type Service struct {
	usuarios Repository
	issuer   *auth.TokenIssuer
}

func NewService(usuarios Repository, issuer *auth.TokenIssuer) *Service {
	return &Service{usuarios: usuarios, issuer: issuer}
}

// Login matches the credentials against the directory.
func (s *Service) Login(ctx context.Context, cred *Credenciales) (*Usuario, error) {
	fields := map[string]string{}
	if cred.Email == "" {
		fields["email"] = "es obligatorio"
	}
	if cred.Password == "" {
		fields["password"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	u, err := s.usuarios.Authenticate(ctx, cred.Email, cred.Password)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, apperr.Persistence("authenticate usuario", err)
	}
	return u, nil
}

// IssueToken logs the user in and signs a bearer token for them.
func (s *Service) IssueToken(ctx context.Context, cred *Credenciales) (string, *Usuario, error) {
	u, err := s.Login(ctx, cred)
	if err != nil {
		return "", nil, err
	}
	token, err := s.issuer.Issue(auth.Identity{
		UsuarioID: u.UsuarioID,
		Nombre:    u.NombreCompleto,
		Rol:       u.NombreRol,
		EquipoID:  u.EquipoID,
	})
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Usuario, error) {
	return s.usuarios.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Usuario, error) {
	items, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("list usuarios", err)
	}
	return items, nil
}

func (s *Service) ListByRol(ctx context.Context, rol string) ([]*Usuario, error) {
	items, err := s.usuarios.ListByRol(ctx, rol)
	if err != nil {
		return nil, apperr.Persistence("list usuarios por rol", err)
	}
	return items, nil
}

func (s *Service) ListByEquipo(ctx context.Context, equipoID int64) ([]*Usuario, error) {
	items, err := s.usuarios.ListByEquipo(ctx, equipoID)
	if err != nil {
		return nil, apperr.Persistence("list usuarios por equipo", err)
	}
	return items, nil
}

func (s *Service) ListRoles(ctx context.Context) ([]*Rol, error) {
	items, err := s.usuarios.ListRoles(ctx)
	if err != nil {
		return nil, apperr.Persistence("list roles", err)
	}
	return items, nil
}

func (s *Service) ListEquipos(ctx context.Context) ([]*Equipo, error) {
	items, err := s.usuarios.ListEquipos(ctx)
	if err != nil {
		return nil, apperr.Persistence("list equipos", err)
	}
	return items, nil
}
