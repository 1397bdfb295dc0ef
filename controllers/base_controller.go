package controllers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/models/requestresponse"

	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centraliza a escrita das respostas padrão.
type BaseController struct {
	beego.Controller
}

// WriteJSON escreve o envelope padrão com o status informado.
func (c *BaseController) WriteJSON(status int, payload requestresponse.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}

// RespondError transforma qualquer erro na resposta padrão.
func (c *BaseController) RespondError(err error, fallback string) {
	if fallback == "" {
		fallback = "erro inesperado"
	}
	appErr := helpers.AsAppError(err, fallback)
	c.WriteJSON(appErr.Status, requestresponse.NewError(appErr.Status, appErr.Message, nil))
}

// ParseJSONBody desserializa o corpo da requisição em out.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// guarda e reinjeta
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	return json.Unmarshal(raw, out)
}
