package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexID permite deserializar identificadores que podem vir como número, string ou estrutura {id: ...}.
type FlexID string

// UnmarshalJSON suporta os formatos heterogêneos devolvidos pelo backend.
func (fi *FlexID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fi = ""
		return nil
	}
	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		if raw, ok := obj["id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		if raw, ok := obj["Id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		*fi = ""
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*fi = FlexID(strings.TrimSpace(s))
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*fi = FlexID(n.String())
		return nil
	}
}

// MarshalJSON serializa como número quando o id é inteiro, senão como string.
func (fi FlexID) MarshalJSON() ([]byte, error) {
	if v, err := strconv.ParseInt(string(fi), 10, 64); err == nil {
		return json.Marshal(v)
	}
	return json.Marshal(string(fi))
}

// String devolve o id cru.
func (fi FlexID) String() string {
	return string(fi)
}

// Pessoa é a referência mínima a um usuário (coordenador, autor).
type Pessoa struct {
	ID   FlexID `json:"id,omitempty"`
	Nome string `json:"nome"`
}

// Instituicao é a instituição de ensino à qual o projeto está vinculado.
type Instituicao struct {
	ID   FlexID `json:"id,omitempty"`
	Nome string `json:"nome"`
}

// Projeto representa um projeto de extensão como devolvido por GET /api/projetos.
// É somente leitura do ponto de vista do MID.
type Projeto struct {
	ID                FlexID       `json:"id"`
	Nome              string       `json:"nome"`
	Descricao         string       `json:"descricao"`
	Area              string       `json:"area"`
	Formato           string       `json:"formato"`
	DataInicio        *string      `json:"dataInicio,omitempty"`
	DataFim           *string      `json:"dataFim"`
	Status            *bool        `json:"status,omitempty"`
	Coordenadores     []Pessoa     `json:"coordenadores"`
	InstituicaoEnsino *Instituicao `json:"instituicaoEnsino,omitempty"`
}

// NomeInstituicao devolve o nome da instituição ou "" quando ausente.
func (p Projeto) NomeInstituicao() string {
	if p.InstituicaoEnsino == nil {
		return ""
	}
	return p.InstituicaoEnsino.Nome
}

// Page é o envelope paginado do backend (formato Spring Data).
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}
