package services

import (
	stdctx "context"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"golang.org/x/time/rate"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/catalog"
)

// CoverSource busca a imagem de capa de um projeto.
type CoverSource interface {
	FetchCover(ctx stdctx.Context, id string) (*helpers.RawResponse, error)
}

// ProjetosSource é o gateway usado pela listagem.
type ProjetosSource interface {
	catalog.Source
	CoverSource
}

// Projetos compõe a listagem de uma visita: carrega a coleção uma vez e
// deriva a visão filtrada, as opções e o resumo.
type Projetos struct {
	loader    *catalog.Loader
	covers    CoverSource
	clock     catalog.Clock
	imageBase string
	limiter   *rate.Limiter
}

// NewProjetos cria o serviço para uma visita à página.
func NewProjetos(src ProjetosSource, tamPag int, imageBase string, clock catalog.Clock) *Projetos {
	if clock == nil {
		clock = time.Now
	}
	return &Projetos{
		loader:    catalog.NewLoader(src, tamPag),
		covers:    src,
		clock:     clock,
		imageBase: imageBase,
	}
}

// WithCoverLimiter limita o ritmo das buscas de capa no backend.
func (p *Projetos) WithCoverLimiter(l *rate.Limiter) *Projetos {
	p.limiter = l
	return p
}

// Listagem devolve a visão filtrada. Se o backend falhar, a visão vem vazia
// junto com o erro, para a página exibir o aviso sem quebrar.
func (p *Projetos) Listagem(ctx stdctx.Context, state catalog.FilterState) (catalog.View, error) {
	projetos, err := p.loader.Load(ctx)
	if err != nil {
		logs.Error("listagem de projetos: %v", err)
		return catalog.BuildView(nil, state, p.clock(), p.imageBase), helpers.AsAppError(err, "não foi possível carregar os projetos")
	}
	return catalog.BuildView(projetos, state, p.clock(), p.imageBase), nil
}

// Instituicoes devolve as opções do filtro de instituição.
func (p *Projetos) Instituicoes(ctx stdctx.Context) ([]string, error) {
	projetos, err := p.loader.Load(ctx)
	if err != nil {
		logs.Error("instituições: %v", err)
		return []string{}, helpers.AsAppError(err, "não foi possível carregar as instituições")
	}
	return catalog.Instituicoes(projetos), nil
}

// Resumo agrega os projetos que passam pelos filtros.
func (p *Projetos) Resumo(ctx stdctx.Context, state catalog.FilterState) (catalog.Resumo, error) {
	projetos, err := p.loader.Load(ctx)
	if err != nil {
		logs.Error("resumo de projetos: %v", err)
		return catalog.Summarize(nil, p.clock()), helpers.AsAppError(err, "não foi possível carregar os projetos")
	}
	now := p.clock()
	return catalog.Summarize(catalog.Filter(projetos, state, now), now), nil
}

// Capa é a imagem servida para um card.
type Capa struct {
	ContentType string
	Body        []byte
	Phase       catalog.CoverPhase
}

// Capa tenta a imagem do backend uma única vez; qualquer falha leva ao placeholder.
func (p *Projetos) Capa(ctx stdctx.Context, id string) Capa {
	capa := p.capa(ctx, id)
	coverResults.WithLabelValues(capa.Phase.String()).Inc()
	return capa
}

func (p *Projetos) capa(ctx stdctx.Context, id string) Capa {
	var state catalog.CoverState

	img, err := p.fetchCover(ctx, id)
	if err == nil {
		if ct, ok := imageContentType(img); ok {
			return Capa{ContentType: ct, Body: img.Body, Phase: state.Phase()}
		}
		logs.Warn("capa do projeto %s não é imagem (%q)", id, img.ContentType)
	} else if !helpers.IsHTTPError(err, http.StatusNotFound) {
		logs.Warn("capa do projeto %s: %v", id, err)
	}

	state.Fail()
	return Capa{
		ContentType: "image/svg+xml",
		Body:        catalog.PlaceholderSVG(catalog.DefaultPlaceholder, ""),
		Phase:       state.Phase(),
	}
}

func (p *Projetos) fetchCover(ctx stdctx.Context, id string) (*helpers.RawResponse, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return p.covers.FetchCover(ctx, id)
}

func imageContentType(img *helpers.RawResponse) (string, bool) {
	if img == nil || len(img.Body) == 0 {
		return "", false
	}
	ct := img.ContentType
	if mt, _, err := mime.ParseMediaType(ct); err != nil || mt == "" || mt == "application/octet-stream" {
		ct = http.DetectContentType(img.Body)
	}
	mt, _, _ := mime.ParseMediaType(ct)
	if !strings.HasPrefix(mt, "image/") {
		return "", false
	}
	return ct, true
}
