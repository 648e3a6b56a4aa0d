package vets

import (
	"sort"
	"strings"
)

// Vet lleva sus especialidades embebidas (no hay tabla de join).
type Vet struct {
	ID          string
	FirstName   string
	LastName    string
	Specialties []string // normalizadas: minúsculas, sin repetidos, ordenadas
}

type Draft struct {
	ID          string
	FirstName   string
	LastName    string
	Specialties []string
}

// NormalizeSpecialties deja la lista en forma canónica.
func NormalizeSpecialties(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
