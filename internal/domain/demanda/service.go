package demanda

import (
	"context"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

type Service struct {
	demandas Repository
}

func NewService(demandas Repository) *Service {
	return &Service{demandas: demandas}
}

func estadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoAsignada, EstadoCompletada, EstadoCancelada:
		return true
	}
	return false
}

// transiciones holds the allowed next states per current state. Completed
// and cancelled demands are terminal.
var transiciones = map[string][]string{
	EstadoPendiente: {EstadoAsignada},
	EstadoAsignada:  {EstadoCompletada, EstadoCancelada},
}

func transicionPermitida(desde, hasta string) bool {
	for _, e := range transiciones[desde] {
		if e == hasta {
			return true
		}
	}
	return false
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (int64, error) {
	fields := map[string]string{}
	if in.PacienteID == 0 {
		fields["paciente_id"] = "es obligatorio"
	}
	if in.FechaDemanda == "" {
		fields["fecha_demanda"] = "es obligatorio"
	}
	if in.SolicitadoPorUID == 0 {
		fields["solicitado_por_uid"] = "es obligatorio"
	}
	if in.Estado != "" && !estadoValido(in.Estado) {
		fields["estado"] = "estado desconocido"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}
	if in.Estado == "" {
		in.Estado = EstadoPendiente
	}

	id, err := s.demandas.Create(ctx, in)
	if err != nil {
		return 0, apperr.Persistence("insert demanda inducida", err)
	}
	return id, nil
}

func (s *Service) ListByPaciente(ctx context.Context, pacienteID int64) ([]*Demanda, error) {
	items, err := s.demandas.ListByPaciente(ctx, pacienteID)
	if err != nil {
		return nil, apperr.Persistence("list demandas inducidas", err)
	}
	return items, nil
}

func (s *Service) ListAsignadas(ctx context.Context, usuarioID int64) ([]*Demanda, error) {
	items, err := s.demandas.ListAsignadas(ctx, usuarioID)
	if err != nil {
		return nil, apperr.Persistence("list demandas asignadas", err)
	}
	return items, nil
}

// UpdateEstado applies an explicit status write and returns the reloaded
// demand. Writing the current status is a no-op; anything outside the
// lifecycle is refused.
func (s *Service) UpdateEstado(ctx context.Context, id int64, in *EstadoInput) (*Demanda, error) {
	if !estadoValido(in.Estado) {
		return nil, &apperr.ValidationError{Fields: map[string]string{"estado": "estado desconocido"}}
	}

	d, err := s.demandas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Estado == in.Estado {
		return d, nil
	}
	if !transicionPermitida(d.Estado, in.Estado) {
		return nil, apperr.Conflict("transición de estado no permitida: de " + d.Estado + " a " + in.Estado)
	}

	if err := s.demandas.UpdateEstado(ctx, id, in.Estado, in.AsignadoAUID); err != nil {
		return nil, apperr.Persistence("update estado demanda", err)
	}
	return s.demandas.GetByID(ctx, id)
}

func (s *Service) LegacyListActivas(ctx context.Context) ([]*LegacyDemanda, error) {
	items, err := s.demandas.LegacyListActivas(ctx)
	if err != nil {
		return nil, apperr.Persistence("list demandas", err)
	}
	return items, nil
}

func (s *Service) LegacyCreate(ctx context.Context, planCuidadoID int64, in *LegacyInput) (int64, error) {
	fields := map[string]string{}
	if in.TipoDemanda == "" {
		fields["tipo_demanda"] = "es obligatorio"
	}
	if in.Descripcion == "" {
		fields["descripcion"] = "es obligatorio"
	}
	if len(fields) > 0 {
		return 0, &apperr.ValidationError{Fields: fields}
	}
	if in.Prioridad == "" {
		in.Prioridad = "media"
	}

	id, err := s.demandas.LegacyCreate(ctx, planCuidadoID, in)
	if err != nil {
		return 0, apperr.Persistence("insert demanda", err)
	}
	return id, nil
}
