package rowstore

import (
	"errors"
	"iter"
	"sync/atomic"

	"pet-clinic-rowstore/internal/platform/apperrors"
)

var ErrSequenceConsumed = errors.New("row sequence already consumed")

// Once envuelve una secuencia para que un segundo recorrido falle con
// StorageError en vez de volver a consultar el store.
func Once[T any](seq iter.Seq2[T, error]) iter.Seq2[T, error] {
	var used atomic.Bool
	return func(yield func(T, error) bool) {
		if used.Swap(true) {
			var zero T
			yield(zero, apperrors.Storage("scan", "", ErrSequenceConsumed))
			return
		}
		seq(yield)
	}
}

// Failed es una secuencia que solo emite err.
func Failed[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// Map convierte cada fila con fn; corta en el primer error.
func Map[T any](seq iter.Seq2[Row, error], fn func(Row) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for row, err := range seq {
			var zero T
			if err != nil {
				yield(zero, err)
				return
			}
			v, err := fn(row)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect materializa la secuencia; devuelve el primer error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := make([]T, 0)
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
