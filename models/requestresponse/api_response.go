package requestresponse

// APIResponseDTO encapsula a resposta padrão do MID.
type APIResponseDTO struct {
	Success bool        `json:"Success"`
	Status  int         `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data"`
}

// NewSuccess constrói uma resposta de sucesso.
func NewSuccess(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "OK"
	}
	return APIResponseDTO{Success: true, Status: status, Message: message, Data: data}
}

// NewError constrói uma resposta de erro. Data pode carregar detalhes para o front.
func NewError(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "Erro"
	}
	return APIResponseDTO{Success: false, Status: status, Message: message, Data: data}
}
