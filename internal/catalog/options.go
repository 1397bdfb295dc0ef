package catalog

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// Instituicoes lista, sem repetição e em ordem alfabética (pt-BR), as
// instituições presentes na coleção carregada.
func Instituicoes(projetos []models.Projeto) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range projetos {
		nome := p.NomeInstituicao()
		if strings.TrimSpace(nome) == "" {
			continue
		}
		if _, ok := seen[nome]; ok {
			continue
		}
		seen[nome] = struct{}{}
		out = append(out, nome)
	}
	// Collator não é seguro para uso concorrente.
	collate.New(language.BrazilianPortuguese).SortStrings(out)
	return out
}
