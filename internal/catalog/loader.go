package catalog

import (
	"context"
	"sync"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

// Source busca a coleção completa de projetos.
type Source interface {
	ListProjetos(ctx context.Context, tamPag int) ([]models.Projeto, error)
}

// Loader carrega a coleção uma única vez por visita.
// Uma resposta que chega depois do cancelamento de ctx é descartada.
type Loader struct {
	src    Source
	tamPag int

	mu       sync.Mutex
	loaded   bool
	projetos []models.Projeto
}

func NewLoader(src Source, tamPag int) *Loader {
	return &Loader{src: src, tamPag: tamPag}
}

type loadResult struct {
	projetos []models.Projeto
	err      error
}

// Load devolve a coleção, buscando-a na primeira chamada bem sucedida.
func (l *Loader) Load(ctx context.Context) ([]models.Projeto, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.projetos, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := make(chan loadResult, 1)
	go func() {
		list, err := l.src.ListProjetos(ctx, l.tamPag)
		ch <- loadResult{projetos: list, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if res.err != nil {
			return nil, res.err
		}
		if res.projetos == nil {
			res.projetos = []models.Projeto{}
		}
		l.projetos = res.projetos
		l.loaded = true
		return l.projetos, nil
	}
}

// Loaded indica se a coleção já foi carregada.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
