package helpers

import (
	"strings"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	ctxRequestIDKey = "__sdpe_mid_request_id"
)

// RequestID devolve o id de correlação da requisição, gerando um quando o cliente não enviou.
func RequestID(ctx *context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Input.GetData(ctxRequestIDKey).(string); ok && id != "" {
		return id
	}
	id := strings.TrimSpace(ctx.Input.Header(RequestIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Input.SetData(ctxRequestIDKey, id)
	ctx.Output.Header(RequestIDHeader, id)
	return id
}
