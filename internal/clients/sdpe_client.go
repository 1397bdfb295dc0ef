package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"
	"github.com/tomazdalcortivo/sdpe_mid/internal/session"
	"github.com/tomazdalcortivo/sdpe_mid/models"
	"github.com/tomazdalcortivo/sdpe_mid/services"
)

// SDPEClient concentra as chamadas do MID ao backend do SDPE.
// Todas usam a mesma origem e levam o bearer quando houver token.
type SDPEClient struct {
	baseURL   string
	timeout   time.Duration
	imageMax  int64
	tokens    session.TokenSource
	requestID string
}

// NewSDPEClient cria o cliente para cfg.APIBaseURL usando tokens como fonte do bearer.
func NewSDPEClient(cfg services.Config, tokens session.TokenSource) *SDPEClient {
	imageMax := cfg.ImageMaxBytes
	if imageMax <= 0 {
		imageMax = 5 << 20
	}
	return &SDPEClient{
		baseURL:  strings.TrimSuffix(cfg.APIBaseURL, "/"),
		timeout:  cfg.RequestTimeout,
		imageMax: imageMax,
		tokens:   tokens,
	}
}

// WithRequestID devolve uma cópia que repassa o X-Request-Id ao backend.
func (c *SDPEClient) WithRequestID(id string) *SDPEClient {
	cp := *c
	cp.requestID = id
	return &cp
}

// URL resolve um caminho da API contra a origem base.
func (c *SDPEClient) URL(path string, query url.Values) string {
	u := services.BuildURL(c.baseURL, path)
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func (c *SDPEClient) headers(ctx context.Context) (map[string]string, error) {
	h := map[string]string{}
	if c.requestID != "" {
		h["X-Request-Id"] = c.requestID
	}
	if c.tokens == nil {
		return h, nil
	}
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	if tok != "" {
		h["Authorization"] = "Bearer " + tok
	}
	return h, nil
}

// GetJSON faz GET path?query e decodifica o corpo em out.
func (c *SDPEClient) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	headers, err := c.headers(ctx)
	if err != nil {
		return err
	}
	return helpers.DoJSON(ctx, http.MethodGet, c.URL(path, query), headers, nil, out, c.timeout)
}

// Send envia um comando mutável; o corpo da resposta é descartado.
func (c *SDPEClient) Send(ctx context.Context, method, path string, query url.Values, body any) error {
	headers, err := c.headers(ctx)
	if err != nil {
		return err
	}
	return helpers.DoJSON(ctx, method, c.URL(path, query), headers, body, nil, c.timeout)
}

// ListProjetos busca GET /api/projetos?tamPag=N. Aceita o envelope paginado e o array puro.
func (c *SDPEClient) ListProjetos(ctx context.Context, tamPag int) ([]models.Projeto, error) {
	query := url.Values{}
	if tamPag > 0 {
		query.Set("tamPag", strconv.Itoa(tamPag))
	}
	var raw json.RawMessage
	if err := c.GetJSON(ctx, "/api/projetos", query, &raw); err != nil {
		return nil, err
	}
	return decodeProjetos(raw)
}

func decodeProjetos(raw []byte) ([]models.Projeto, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []models.Projeto{}, nil
	}
	switch trimmed[0] {
	case '[':
		var list []models.Projeto
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decodificando projetos: %w", err)
		}
		return list, nil
	case '{':
		var page models.Page[models.Projeto]
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("decodificando página de projetos: %w", err)
		}
		if page.Content == nil {
			return []models.Projeto{}, nil
		}
		return page.Content, nil
	default:
		return nil, fmt.Errorf("formato inesperado na listagem de projetos")
	}
}

// CoverPath é o caminho da capa de um projeto no backend.
func CoverPath(id string) string {
	return "/api/projetos/" + url.PathEscape(id) + "/imagem"
}

// FetchCover baixa a capa uma única vez, sem novas tentativas.
func (c *SDPEClient) FetchCover(ctx context.Context, id string) (*helpers.RawResponse, error) {
	headers, err := c.headers(ctx)
	if err != nil {
		return nil, err
	}
	return helpers.DoRaw(ctx, c.URL(CoverPath(id), nil), headers, c.timeout, c.imageMax)
}

// GetPerfil busca o perfil do usuário autenticado.
func (c *SDPEClient) GetPerfil(ctx context.Context) (map[string]any, error) {
	var perfil map[string]any
	if err := c.GetJSON(ctx, "/api/usuarios/perfil", nil, &perfil); err != nil {
		return nil, err
	}
	return perfil, nil
}

// Login troca as credenciais por um token bearer.
func (c *SDPEClient) Login(ctx context.Context, email, senha string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "senha": senha}
	if err := helpers.DoJSON(ctx, http.MethodPost, c.URL("/api/auth/login", nil), nil, body, &out, c.timeout); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Token) == "" {
		return "", fmt.Errorf("resposta de login sem token")
	}
	return strings.TrimSpace(out.Token), nil
}
