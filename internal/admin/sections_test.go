package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSections(t *testing.T) {
	ss := DefaultSections()
	assert.Equal(t, []string{"solicitacoes-pendentes", "projetos-pendentes", "contatos", "contas", "projetos"}, ss.IDs())

	for _, s := range ss {
		assert.Equal(t, "/api/admin/"+s.ID, s.Endpoint)
	}

	contatos, ok := ss.Lookup("contatos")
	require.True(t, ok)
	assert.True(t, contatos.Allows(AcaoResponderContato))
	assert.False(t, contatos.Allows(AcaoExcluirProjeto))

	_, ok = ss.Lookup("financeiro")
	assert.False(t, ok)
}

func TestParseSections_Invalid(t *testing.T) {
	cases := map[string]string{
		"yaml quebrado":     "secoes: [",
		"sem endpoint":      "secoes:\n  - id: x\n",
		"duplicada":         "secoes:\n  - {id: a, endpoint: /a}\n  - {id: a, endpoint: /b}\n",
		"ação desconhecida": "secoes:\n  - {id: a, endpoint: /a, acoes: [arquivar]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSections([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseSections_NewSectionIsData(t *testing.T) {
	ss, err := ParseSections([]byte("secoes:\n  - {id: denuncias, titulo: Denúncias, endpoint: /api/admin/denuncias, acoes: [excluir-projeto]}\n"))
	require.NoError(t, err)
	s, ok := ss.Lookup("denuncias")
	require.True(t, ok)
	assert.Equal(t, "/api/admin/denuncias", s.Endpoint)
}
