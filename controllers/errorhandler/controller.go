package errorhandler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/tomazdalcortivo/sdpe_mid/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	beegocontext "github.com/beego/beego/v2/server/web/context"
)

// ErrorHandlerController é registrado no router para tratar 404 e demais falhas.
type ErrorHandlerController struct {
	beego.Controller
}

// Error404 padroniza a resposta de rota inexistente.
func (c *ErrorHandlerController) Error404() {
	c.writeError(http.StatusNotFound, fmt.Sprintf("rota não encontrada|%s|%s", c.Ctx.Request.Method, c.Ctx.Request.URL.Path))
}

// Error405 padroniza a resposta de método não suportado na rota.
func (c *ErrorHandlerController) Error405() {
	c.writeError(http.StatusMethodNotAllowed, fmt.Sprintf("método não permitido|%s|%s", c.Ctx.Request.Method, c.Ctx.Request.URL.Path))
}

// Error500 cobre falhas que escaparam do controller.
func (c *ErrorHandlerController) Error500() {
	c.writeError(http.StatusInternalServerError, "erro interno do servidor")
}

func (c *ErrorHandlerController) writeError(status int, message string) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewError(status, message, nil)
	_ = c.ServeJSON()
}

// HandlePanic captura panics nos controllers e devolve a resposta padrão.
// Registrado em BConfig.RecoverFunc.
func HandlePanic(ctx *beegocontext.Context, cfg *beego.Config) {
	r := recover()
	if r == nil {
		return
	}
	if r == beego.ErrAbort {
		return
	}
	logs.Error("panic: %v", r)
	debug.PrintStack()

	appName := "sdpe_mid"
	if cfg != nil && cfg.AppName != "" {
		appName = cfg.AppName
	}
	message := fmt.Sprintf("Erro no serviço %s: ocorreu um erro interno.", appName)
	message += fmt.Sprintf(" Requisição: URL: %s, Método: %s", ctx.Request.URL, ctx.Request.Method)
	message += " Hora: " + time.Now().UTC().Format(time.RFC3339)

	if ctx.ResponseWriter.Started {
		return
	}
	status := http.StatusInternalServerError
	ctx.Output.SetStatus(status)
	_ = ctx.Output.JSON(requestresponse.NewError(status, message, nil), false, false)
}
