// Package writeplan modela una escritura lógica que toca varias filas
// desnormalizadas como una lista ordenada de pasos (fila, escritor).
//
// Los pasos se aplican en orden y cada uno se espera antes del siguiente.
// No hay rollback: si un paso falla, las filas ya escritas quedan y el error
// dice cuáles fueron.
package writeplan

import (
	"context"

	"pet-clinic-rowstore/internal/platform/apperrors"
)

type Step struct {
	Row   string
	Apply func(ctx context.Context) error
}

type Plan struct {
	entity string
	id     string
	steps  []Step
}

func New(entity, id string) *Plan {
	return &Plan{entity: entity, id: id}
}

func (p *Plan) Add(row string, apply func(ctx context.Context) error) *Plan {
	p.steps = append(p.steps, Step{Row: row, Apply: apply})
	return p
}

func (p *Plan) Rows() []string {
	out := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		out = append(out, s.Row)
	}
	return out
}

// Run aplica los pasos. Un fallo en el primer paso se devuelve clasificado tal
// cual (nada quedó escrito); a partir del segundo se devuelve PartialWriteError.
func (p *Plan) Run(ctx context.Context) error {
	applied := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		if err := s.Apply(ctx); err != nil {
			err = apperrors.Classify("write "+s.Row, err)
			if len(applied) == 0 {
				return err
			}
			return &apperrors.PartialWriteError{
				Entity:  p.entity,
				ID:      p.id,
				Applied: applied,
				Failed:  s.Row,
				Err:     err,
			}
		}
		applied = append(applied, s.Row)
	}
	return nil
}
