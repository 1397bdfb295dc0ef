package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

func TestInstituicoes(t *testing.T) {
	projetos := []models.Projeto{
		{InstituicaoEnsino: &models.Instituicao{Nome: "UTFPR"}},
		{},
		{InstituicaoEnsino: &models.Instituicao{Nome: "Universidade Estadual de Londrina"}},
		{InstituicaoEnsino: &models.Instituicao{Nome: "UTFPR"}},
		{InstituicaoEnsino: &models.Instituicao{Nome: "Ânima Educação"}},
		{InstituicaoEnsino: &models.Instituicao{Nome: "  "}},
		{InstituicaoEnsino: &models.Instituicao{Nome: "Faculdade Alfa"}},
	}

	got := Instituicoes(projetos)
	assert.Equal(t, []string{"Ânima Educação", "Faculdade Alfa", "Universidade Estadual de Londrina", "UTFPR"}, got)
}

func TestInstituicoes_NoDuplicatesAndSorted(t *testing.T) {
	got := Instituicoes(bigCollection())
	assert.Equal(t, []string{"UEL", "UFPR", "UTFPR"}, got)
	assert.True(t, sort.StringsAreSorted(got))
}

func TestInstituicoes_Empty(t *testing.T) {
	got := Instituicoes(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
