package catalog

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// FilterState é o estado imutável dos filtros da listagem.
// Campo vazio significa "sem restrição".
type FilterState struct {
	Query       string `json:"q,omitempty"`
	Status      string `json:"status,omitempty"`
	Area        string `json:"area,omitempty"`
	Formato     string `json:"formato,omitempty"`
	Instituicao string `json:"instituicao,omitempty"`
}

// IsEmpty indica que nenhum filtro está ativo.
func (s FilterState) IsEmpty() bool {
	return strings.TrimSpace(s.Query) == "" && s.Status == "" && s.Area == "" && s.Formato == "" && s.Instituicao == ""
}

// ActionKind identifica a alteração aplicada ao estado.
type ActionKind int

const (
	SetQuery ActionKind = iota
	SetStatus
	SetArea
	SetFormato
	SetInstituicao
	Reset
)

// Action é uma alteração do usuário sobre os filtros.
type Action struct {
	Kind  ActionKind
	Value string
}

// Reduce devolve o novo estado resultante de aplicar a ação.
func Reduce(state FilterState, action Action) FilterState {
	switch action.Kind {
	case SetQuery:
		state.Query = action.Value
	case SetStatus:
		state.Status = action.Value
	case SetArea:
		state.Area = action.Value
	case SetFormato:
		state.Formato = action.Value
	case SetInstituicao:
		state.Instituicao = action.Value
	case Reset:
		return FilterState{}
	}
	return state
}

// ReduceAll aplica as ações em ordem a partir de state.
func ReduceAll(state FilterState, actions ...Action) FilterState {
	for _, a := range actions {
		state = Reduce(state, a)
	}
	return state
}

// Filter devolve os projetos que passam por todos os filtros, na ordem original.
// O slice devolvido nunca compartilha memória com projetos.
func Filter(projetos []models.Projeto, state FilterState, now time.Time) []models.Projeto {
	query := strings.ToLower(strings.TrimSpace(state.Query))
	out := make([]models.Projeto, 0, len(projetos))
	for _, p := range projetos {
		if !matchText(p, query) {
			continue
		}
		if state.Status != "" && string(DeriveStatus(p, now)) != state.Status {
			continue
		}
		if state.Area != "" && p.Area != state.Area {
			continue
		}
		if state.Formato != "" && p.Formato != state.Formato {
			continue
		}
		if state.Instituicao != "" && (p.InstituicaoEnsino == nil || p.InstituicaoEnsino.Nome != state.Instituicao) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Buscas mais curtas que minSubstringQuery só casam com o início de uma palavra;
// "ia" encontra "IA na Saúde" mas não "Comunitária".
const minSubstringQuery = 3

// matchText compara a busca (já em minúsculas) com o nome do projeto e dos coordenadores.
func matchText(p models.Projeto, query string) bool {
	if query == "" {
		return true
	}
	if containsText(p.Nome, query) {
		return true
	}
	for _, c := range p.Coordenadores {
		if containsText(c.Nome, query) {
			return true
		}
	}
	return false
}

func containsText(field, query string) bool {
	field = strings.ToLower(field)
	if utf8.RuneCountInString(query) >= minSubstringQuery {
		return strings.Contains(field, query)
	}
	words := strings.FieldsFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if strings.HasPrefix(w, query) {
			return true
		}
	}
	// buscas curtas com separador ("a b") caem no substring simples
	return strings.ContainsFunc(query, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }) &&
		strings.Contains(field, query)
}
