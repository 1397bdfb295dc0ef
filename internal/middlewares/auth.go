package middlewares

import (
	"errors"
	"net/http"
	"sync"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"

	internalhelpers "github.com/tomazdalcortivo/sdpe_mid/internal/helpers"
)

var (
	authOnce sync.Once
)

// UseAuth registra, uma única vez, o id de correlação em todas as rotas e a
// exigência de papel nas rotas administrativas.
func UseAuth(adminRole string) {
	authOnce.Do(func() {
		beego.InsertFilter("/*", beego.BeforeRouter, RequestIDFilter)
		beego.InsertFilter("/v1/admin/*", beego.BeforeRouter, RequireRoleFilter(adminRole))
	})
}

// RequestIDFilter garante um X-Request-Id na requisição e na resposta.
func RequestIDFilter(ctx *context.Context) {
	internalhelpers.RequestID(ctx)
}

// RequireRoleFilter barra a requisição quando o bearer não traz o papel exigido.
// Sem token ou com token ilegível: 401. Com token sem o papel: 403.
func RequireRoleFilter(role string) beego.FilterFunc {
	return func(ctx *context.Context) {
		if ctx.Input.Method() == http.MethodOptions {
			return
		}
		err := internalhelpers.RequireRole(ctx, role)
		if err == nil {
			return
		}
		status := http.StatusUnauthorized
		message := "autenticação necessária"
		if errors.Is(err, internalhelpers.ErrForbidden) || errors.Is(err, internalhelpers.ErrClaimNotFound) {
			status = http.StatusForbidden
			message = "acesso restrito a administradores"
		}
		logs.Warn("admin negado %s %s: %v", ctx.Input.Method(), ctx.Input.URL(), err)
		resp := internalhelpers.Fail(status, message)
		ctx.Output.SetStatus(status)
		_ = ctx.Output.JSON(resp, false, false)
	}
}
