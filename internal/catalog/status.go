// Package catalog deriva a listagem de projetos exibida ao usuário:
// status calculado, busca, filtros por faceta, opções de instituição e cards.
//
// Todas as funções aqui são puras sobre (coleção, estado do filtro, agora);
// nenhuma delas toca a rede.
package catalog

import (
	"strings"
	"time"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

const dateLayout = "2006-01-02"

// Clock devolve o instante atual. Injetado para testes.
type Clock func() time.Time

// DeriveStatus calcula o status exibido de um projeto.
//
// status=false sempre vence. Sem dataFim (ou com data ilegível) o projeto é
// considerado em andamento. dataFim é comparada por dia de calendário no fuso
// de now: um projeto que termina hoje ainda está em andamento.
func DeriveStatus(p models.Projeto, now time.Time) models.Status {
	if p.Status != nil && !*p.Status {
		return models.StatusInativo
	}
	fim, ok := parseDataFim(p.DataFim, now.Location())
	if !ok {
		return models.StatusEmAndamento
	}
	hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if fim.Before(hoje) {
		return models.StatusFinalizado
	}
	return models.StatusEmAndamento
}

// parseDataFim aceita "2006-01-02" ou RFC3339; só a parte de data é usada.
func parseDataFim(raw *string, loc *time.Location) (time.Time, bool) {
	if raw == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return time.Time{}, false
	}
	if len(s) > len(dateLayout) && s[len(dateLayout)] == 'T' {
		s = s[:len(dateLayout)]
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
