package helpers

import (
	"net/http"

	internaldto "github.com/tomazdalcortivo/sdpe_mid/internal/dto"
	"github.com/tomazdalcortivo/sdpe_mid/models/requestresponse"
)

// Ok constrói uma resposta padrão de sucesso.
func Ok(data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusOK, "OK", data)
}

// OkWithMessage constrói uma resposta de sucesso com aviso para o usuário (ex.: carga degradada).
func OkWithMessage(message string, data interface{}) internaldto.APIResponseDTO {
	return requestresponse.NewSuccess(http.StatusOK, message, data)
}

// Fail constrói uma resposta padrão de erro.
func Fail(status int, message string) internaldto.APIResponseDTO {
	return FailWithData(status, message, nil)
}

// FailWithData constrói uma resposta de erro com dados auxiliares.
func FailWithData(status int, message string, data interface{}) internaldto.APIResponseDTO {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return requestresponse.NewError(status, message, data)
}
