package catalog

import (
	"time"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// View é a listagem derivada de (coleção, filtros). Recalculada a cada chamada.
type View struct {
	Items        []Card          `json:"items"`
	Instituicoes []string        `json:"instituicoes"`
	Status       []models.Status `json:"status"`
	Formatos     []string        `json:"formatos"`
	Areas        []string        `json:"areas"`
	Filtros      FilterState     `json:"filtros"`
	Total        int             `json:"total"`
	Filtrados    int             `json:"filtrados"`
	Pagina       int             `json:"pagina,omitempty"`
	TamanhoPag   int             `json:"tamanhoPag,omitempty"`
}

// BuildView aplica os filtros e deriva as opções exibidas ao lado da listagem.
func BuildView(projetos []models.Projeto, state FilterState, now time.Time, imageBase string) View {
	filtrados := Filter(projetos, state, now)
	return View{
		Items:        Cards(filtrados, now, imageBase),
		Instituicoes: Instituicoes(projetos),
		Status:       models.Statuses,
		Formatos:     models.Formatos,
		Areas:        models.Areas,
		Filtros:      state,
		Total:        len(projetos),
		Filtrados:    len(filtrados),
	}
}

// Paginate recorta os itens já filtrados. size <= 0 devolve a visão intacta;
// página além do fim devolve lista vazia. Filtrados continua contando todos os itens.
func (v View) Paginate(page, size int) View {
	if size <= 0 {
		return v
	}
	if page < 1 {
		page = 1
	}
	v.Pagina = page
	v.TamanhoPag = size

	pages := len(v.Items) / size
	if len(v.Items)%size != 0 {
		pages++
	}
	// compara páginas antes de multiplicar: pagina enorme não pode estourar int
	if page > pages {
		v.Items = []Card{}
		return v
	}
	start := (page - 1) * size
	end := len(v.Items)
	if size < end-start {
		end = start + size
	}
	v.Items = v.Items[start:end:end]
	return v
}
