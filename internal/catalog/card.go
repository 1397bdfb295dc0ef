package catalog

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// CoverPhase é a fase da imagem de capa de um card.
type CoverPhase int32

const (
	// CoverLoading cobre "carregando" e "carregada": a imagem original está em uso.
	CoverLoading CoverPhase = iota
	// CoverFallback é terminal: o placeholder substituiu a imagem.
	CoverFallback
)

func (p CoverPhase) String() string {
	if p == CoverFallback {
		return "fallback"
	}
	return "image"
}

// CoverState é a máquina de dois estados da capa de um card.
// O zero value está em CoverLoading. Seguro para uso concorrente.
type CoverState struct {
	phase atomic.Int32
}

// Phase devolve a fase atual.
func (s *CoverState) Phase() CoverPhase {
	return CoverPhase(s.phase.Load())
}

// Fail registra uma falha de carregamento. Só a primeira chamada transiciona
// (devolve true); as seguintes não têm efeito. Não há retorno para CoverLoading.
func (s *CoverState) Fail() bool {
	return s.phase.CompareAndSwap(int32(CoverLoading), int32(CoverFallback))
}

// Placeholder descreve o visual neutro usado no lugar da capa quebrada.
type Placeholder struct {
	Glyph      string `json:"glyph"`
	Background string `json:"background"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// Dimensões da caixa da capa; o placeholder ocupa exatamente a mesma área.
const (
	CoverWidth  = 400
	CoverHeight = 225
)

// DefaultPlaceholder é o placeholder padrão dos cards.
var DefaultPlaceholder = Placeholder{
	Glyph:      "image",
	Background: "#e5e7eb",
	Width:      CoverWidth,
	Height:     CoverHeight,
}

// PlaceholderSVG desenha o placeholder: fundo neutro e um glifo de imagem centralizado.
func PlaceholderSVG(ph Placeholder, title string) []byte {
	cx, cy := ph.Width/2, ph.Height/2
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img">`, ph.Width, ph.Height, ph.Width, ph.Height)
	if title != "" {
		fmt.Fprintf(&b, `<title>%s</title>`, html.EscapeString(title))
	}
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, ph.Background)
	fmt.Fprintf(&b, `<g fill="none" stroke="#9ca3af" stroke-width="4"><rect x="%d" y="%d" width="64" height="48" rx="6"/>`, cx-32, cy-24)
	fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="6"/><path d="M%d %d l16 -16 l12 12 l8 -8 l20 20"/></g></svg>`, cx-16, cy-10, cx-28, cy+20)
	return []byte(b.String())
}

// Card é a visão de um projeto na listagem.
type Card struct {
	ID            models.FlexID `json:"id"`
	Nome          string        `json:"nome"`
	Descricao     string        `json:"descricao"`
	Area          string        `json:"area"`
	Formato       string        `json:"formato"`
	DataFim       *string       `json:"dataFim"`
	Status        models.Status `json:"status"`
	Coordenadores []string      `json:"coordenadores"`
	Instituicao   string        `json:"instituicao,omitempty"`
	ImagemURL     string        `json:"imagemUrl"`
	Placeholder   Placeholder   `json:"placeholder"`
}

// CoverURL devolve a URL da capa de um projeto a partir de uma base.
func CoverURL(base string, id models.FlexID) string {
	return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(id.String()) + "/imagem"
}

// NewCard monta o card de um projeto. imageBase aponta para a coleção de projetos
// (ex.: "https://mid.exemplo/v1/projetos").
func NewCard(p models.Projeto, now time.Time, imageBase string) Card {
	coords := make([]string, 0, len(p.Coordenadores))
	for _, c := range p.Coordenadores {
		if nome := strings.TrimSpace(c.Nome); nome != "" {
			coords = append(coords, nome)
		}
	}
	return Card{
		ID:            p.ID,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Area:          p.Area,
		Formato:       p.Formato,
		DataFim:       p.DataFim,
		Status:        DeriveStatus(p, now),
		Coordenadores: coords,
		Instituicao:   p.NomeInstituicao(),
		ImagemURL:     CoverURL(imageBase, p.ID),
		Placeholder:   DefaultPlaceholder,
	}
}

// Cards monta os cards na mesma ordem dos projetos.
func Cards(projetos []models.Projeto, now time.Time, imageBase string) []Card {
	out := make([]Card, 0, len(projetos))
	for _, p := range projetos {
		out = append(out, NewCard(p, now, imageBase))
	}
	return out
}
