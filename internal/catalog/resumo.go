package catalog

import (
	"time"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// Resumo conta os projetos por status derivado, área e formato.
type Resumo struct {
	Total      int                   `json:"total"`
	PorStatus  map[models.Status]int `json:"porStatus"`
	PorArea    map[string]int        `json:"porArea"`
	PorFormato map[string]int        `json:"porFormato"`
}

// Summarize agrega os projetos já filtrados. Todos os status aparecem, mesmo com zero.
func Summarize(projetos []models.Projeto, now time.Time) Resumo {
	r := Resumo{
		Total:      len(projetos),
		PorStatus:  make(map[models.Status]int, len(models.Statuses)),
		PorArea:    map[string]int{},
		PorFormato: map[string]int{},
	}
	for _, s := range models.Statuses {
		r.PorStatus[s] = 0
	}
	for _, p := range projetos {
		r.PorStatus[DeriveStatus(p, now)]++
		if p.Area != "" {
			r.PorArea[p.Area]++
		}
		if p.Formato != "" {
			r.PorFormato[p.Formato]++
		}
	}
	return r
}
