package catalog

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

func scenario() []models.Projeto {
	return []models.Projeto{
		{
			ID: "1", Nome: "Horta Comunitária", Area: "Ciências Agrárias", Formato: models.FormatoPresencial,
			DataFim: strPtr("2020-01-01"), Status: boolPtr(true),
			Coordenadores: []models.Pessoa{{Nome: "Ana Silva"}},
		},
		{
			ID: "2", Nome: "IA na Saúde", Area: "Ciências da Saúde", Formato: models.FormatoOnline,
			DataFim: strPtr("2099-01-01"), Status: boolPtr(true),
			Coordenadores: []models.Pessoa{{Nome: "Bruno Costa"}},
		},
	}
}

func ids(ps []models.Projeto) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID.String())
	}
	return out
}

func TestFilter_Scenario(t *testing.T) {
	projetos := scenario()

	cases := []struct {
		name  string
		state FilterState
		want  []string
	}{
		{"sem filtros", FilterState{}, []string{"1", "2"}},
		{"busca IA", FilterState{Query: "IA"}, []string{"2"}},
		{"status finalizado", FilterState{Status: string(models.StatusFinalizado)}, []string{"1"}},
		{"área saúde", FilterState{Area: "Ciências da Saúde"}, []string{"2"}},
		{"instituição inexistente", FilterState{Instituicao: "Qualquer"}, []string{}},
		{"busca por coordenador", FilterState{Query: "bruno"}, []string{"2"}},
		{"busca no meio do nome", FilterState{Query: "comunit"}, []string{"1"}},
		{"busca curta no meio da palavra", FilterState{Query: "ta"}, []string{}},
		{"busca curta no início da palavra", FilterState{Query: "ho"}, []string{"1"}},
		{"busca só com espaços", FilterState{Query: "   "}, []string{"1", "2"}},
		{"formato online", FilterState{Formato: models.FormatoOnline}, []string{"2"}},
		{"área com caixa diferente", FilterState{Area: "ciências da saúde"}, []string{}},
		{"filtros combinados sem interseção", FilterState{Area: "Ciências Agrárias", Formato: models.FormatoOnline}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(projetos, tc.state, fixedNow))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_DoesNotMatchOtherFields(t *testing.T) {
	projetos := []models.Projeto{{ID: "1", Nome: "Oficina", Descricao: "robótica educacional", Area: "Engenharias"}}
	assert.Empty(t, Filter(projetos, FilterState{Query: "robótica"}, fixedNow))
	assert.Empty(t, Filter(projetos, FilterState{Query: "engenharias"}, fixedNow))
}

func TestFilter_InactiveProjectWithFutureDate(t *testing.T) {
	projetos := []models.Projeto{{ID: "9", Nome: "Desativado", Status: boolPtr(false), DataFim: strPtr("2099-01-01")}}

	assert.Len(t, Filter(projetos, FilterState{Status: string(models.StatusInativo)}, fixedNow), 1)
	assert.Empty(t, Filter(projetos, FilterState{Status: string(models.StatusEmAndamento)}, fixedNow))
}

func TestFilter_InstitutionRequiresReference(t *testing.T) {
	projetos := []models.Projeto{
		{ID: "1", Nome: "A"},
		{ID: "2", Nome: "B", InstituicaoEnsino: &models.Instituicao{Nome: "UTFPR"}},
		{ID: "3", Nome: "C", InstituicaoEnsino: &models.Instituicao{Nome: ""}},
	}
	assert.Equal(t, []string{"2"}, ids(Filter(projetos, FilterState{Instituicao: "UTFPR"}, fixedNow)))
}

func bigCollection() []models.Projeto {
	inst := []string{"UTFPR", "UFPR", "UEL", ""}
	out := make([]models.Projeto, 0, 60)
	for i := 0; i < 60; i++ {
		p := models.Projeto{
			ID:            models.FlexID(fmt.Sprint(i)),
			Nome:          fmt.Sprintf("Projeto %d", i),
			Area:          models.Areas[i%len(models.Areas)],
			Formato:       models.Formatos[i%len(models.Formatos)],
			Coordenadores: []models.Pessoa{{Nome: fmt.Sprintf("Coord %d", i%7)}},
		}
		if i%5 == 0 {
			p.Status = boolPtr(false)
		}
		if i%2 == 0 {
			p.DataFim = strPtr("2021-03-01")
		} else {
			p.DataFim = strPtr("2030-03-01")
		}
		if n := inst[i%len(inst)]; n != "" {
			p.InstituicaoEnsino = &models.Instituicao{Nome: n}
		}
		out = append(out, p)
	}
	return out
}

func TestFilter_Identity(t *testing.T) {
	projetos := bigCollection()
	got := Filter(projetos, FilterState{}, fixedNow)
	assert.Equal(t, ids(projetos), ids(got))
}

func TestFilter_Idempotent(t *testing.T) {
	projetos := bigCollection()
	states := []FilterState{
		{Query: "coord 3"},
		{Status: string(models.StatusFinalizado)},
		{Area: models.Areas[2], Formato: models.FormatoHibrido},
		{Instituicao: "UEL", Status: string(models.StatusEmAndamento)},
		{Query: "projeto 1"},
	}
	for _, st := range states {
		once := Filter(projetos, st, fixedNow)
		twice := Filter(once, st, fixedNow)
		assert.Equal(t, ids(once), ids(twice), "estado %+v", st)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	projetos := bigCollection()
	got := Filter(projetos, FilterState{Formato: models.FormatoOnline}, fixedNow)
	require.NotEmpty(t, got)

	pos := map[string]int{}
	for i, p := range projetos {
		pos[p.ID.String()] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, pos[got[i-1].ID.String()], pos[got[i].ID.String()])
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	projetos := scenario()
	got := Filter(projetos, FilterState{}, fixedNow)
	got[0].Nome = "alterado"
	assert.Equal(t, "Horta Comunitária", projetos[0].Nome)
}

func TestReduce(t *testing.T) {
	st := ReduceAll(FilterState{},
		Action{Kind: SetQuery, Value: "horta"},
		Action{Kind: SetStatus, Value: "FINALIZADO"},
		Action{Kind: SetArea, Value: "Ciências Agrárias"},
		Action{Kind: SetFormato, Value: "PRESENCIAL"},
		Action{Kind: SetInstituicao, Value: "UTFPR"},
	)
	assert.Equal(t, FilterState{
		Query: "horta", Status: "FINALIZADO", Area: "Ciências Agrárias", Formato: "PRESENCIAL", Instituicao: "UTFPR",
	}, st)
	assert.False(t, st.IsEmpty())

	prev := st
	cleared := Reduce(st, Action{Kind: SetArea, Value: ""})
	assert.Empty(t, cleared.Area)
	assert.Equal(t, "Ciências Agrárias", prev.Area, "o estado anterior não muda")

	assert.True(t, Reduce(st, Action{Kind: Reset}).IsEmpty())
}
