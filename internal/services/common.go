package services

import (
	"strings"
	"sync"

	"github.com/beego/beego/v2/core/logs"
	beegocontext "github.com/beego/beego/v2/server/web/context"

	"github.com/tomazdalcortivo/sdpe_mid/internal/clients"
	internalhelpers "github.com/tomazdalcortivo/sdpe_mid/internal/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/session"
	rootservices "github.com/tomazdalcortivo/sdpe_mid/services"
)

var (
	store     session.Store
	storeOnce sync.Once
)

// TokenStore devolve o armazenamento do token de serviço configurado em TOKEN_STORE.
func TokenStore() session.Store {
	storeOnce.Do(func() {
		s, err := session.NewStore(rootservices.GetConfig())
		if err != nil {
			logs.Error("token store: %v; usando memória", err)
			s = session.NewMemoryStore("")
		}
		store = s
	})
	return store
}

// ClientFor monta o cliente do backend para a requisição atual: o bearer recebido
// tem prioridade sobre o token armazenado e o X-Request-Id é propagado.
func ClientFor(ctx *beegocontext.Context) *clients.SDPEClient {
	var incoming session.Static
	if ctx != nil {
		if tok, err := internalhelpers.BearerToken(ctx); err == nil {
			incoming = session.Static(tok)
		}
	}
	client := clients.NewSDPEClient(rootservices.GetConfig(), session.Chain{incoming, TokenStore()})
	return client.WithRequestID(internalhelpers.RequestID(ctx))
}

// PublicProjetosURL é a base usada nas URLs de capa devolvidas ao front.
func PublicProjetosURL(ctx *beegocontext.Context) string {
	base := rootservices.GetConfig().PublicBaseURL
	if base == "" && ctx != nil && ctx.Request != nil {
		scheme := "http"
		if ctx.Request.TLS != nil || strings.EqualFold(ctx.Input.Header("X-Forwarded-Proto"), "https") {
			scheme = "https"
		}
		base = scheme + "://" + ctx.Request.Host
	}
	return strings.TrimSuffix(base, "/") + "/v1/projetos"
}
