package helpers

import (
	"fmt"
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	roothelpers "github.com/tomazdalcortivo/sdpe_mid/helpers"
)

// PathParam extrai um parâmetro de rota obrigatório; vazio vira 400.
func PathParam(ctx *context.Context, name string) (string, error) {
	if ctx == nil {
		return "", fmt.Errorf("contexto nil")
	}
	raw := strings.TrimSpace(ctx.Input.Param(name))
	if raw == "" {
		return "", roothelpers.BadRequest(fmt.Sprintf("parâmetro %s vazio", strings.TrimPrefix(name, ":")))
	}
	return raw, nil
}
