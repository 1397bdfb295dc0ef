package dto

import (
	"github.com/tomazdalcortivo/sdpe_mid/internal/admin"
	"github.com/tomazdalcortivo/sdpe_mid/models/requestresponse"
)

// APIResponseDTO reutiliza o DTO padrão exposto por requestresponse.
type APIResponseDTO = requestresponse.APIResponseDTO

// AdminListaDTO é a lista de uma seção do console de moderação.
type AdminListaDTO struct {
	Secao admin.Section `json:"secao"`
	Itens []admin.Item  `json:"itens"`
	Total int           `json:"total"`
}

// AdminAcaoDTO é o resultado de um comando de moderação já com a lista recarregada.
type AdminAcaoDTO struct {
	Secao string       `json:"secao"`
	Acao  string       `json:"acao"`
	Itens []admin.Item `json:"itens"`
	Total int          `json:"total"`
	Aviso string       `json:"aviso,omitempty"`
}

// RedirectDTO orienta o front a navegar (ex.: para o login após 401).
type RedirectDTO struct {
	Redirect string `json:"redirect"`
}
