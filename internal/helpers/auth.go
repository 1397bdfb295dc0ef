package helpers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxClaimsKey = "__sdpe_mid_jwt_claims"
	rolePrefix   = "ROLE_"
)

var (
	// ErrNoAuthHeader é devolvido quando não há header Authorization.
	ErrNoAuthHeader = errors.New("authorization header missing")
	// ErrInvalidToken é devolvido quando o token não é um JWT legível.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrClaimNotFound indica que o claim exigido não está presente.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrForbidden indica que o token não tem nenhum dos papéis exigidos.
	ErrForbidden = errors.New("insufficient roles")
)

// BearerToken extrai o token do header Authorization da requisição.
func BearerToken(ctx *context.Context) (string, error) {
	return ParseBearer(ctx.Input.Header("Authorization"))
}

// ParseBearer extrai o token de um valor "Bearer <token>".
func ParseBearer(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrNoAuthHeader
	}
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(header[7:])
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

// Claims lê e guarda no contexto os claims do JWT presente em Authorization.
// A assinatura não é verificada aqui: quem valida o token é o backend, a cada chamada.
func Claims(ctx *context.Context) (jwt.MapClaims, error) {
	if cached, ok := ctx.Input.GetData(ctxClaimsKey).(jwt.MapClaims); ok {
		return cached, nil
	}
	token, err := BearerToken(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return nil, err
	}
	ctx.Input.SetData(ctxClaimsKey, claims)
	return claims, nil
}

// DecodeClaims decodifica o payload de um JWT sem validar a assinatura.
func DecodeClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// RequireRole valida que o token tenha ao menos um dos papéis exigidos.
func RequireRole(ctx *context.Context, roles ...string) error {
	if len(roles) == 0 {
		return nil
	}
	claims, err := Claims(ctx)
	if err != nil {
		return err
	}
	return CheckRoles(claims, roles...)
}

// CheckRoles compara os papéis dos claims com os exigidos, ignorando caixa e o prefixo ROLE_.
func CheckRoles(claims jwt.MapClaims, roles ...string) error {
	userRoles := ExtractRoles(claims)
	if len(userRoles) == 0 {
		return fmt.Errorf("%w: roles", ErrClaimNotFound)
	}
	roleSet := make(map[string]struct{}, len(userRoles))
	for _, r := range userRoles {
		roleSet[normalizeRole(r)] = struct{}{}
	}
	for _, required := range roles {
		if _, ok := roleSet[normalizeRole(required)]; ok {
			return nil
		}
	}
	return ErrForbidden
}

func normalizeRole(r string) string {
	r = strings.ToUpper(strings.TrimSpace(r))
	return strings.TrimPrefix(r, rolePrefix)
}

// ExtractRoles procura papéis nos claims usuais (roles, role, perfil, tipo, authorities, realm_access.roles).
func ExtractRoles(claims map[string]interface{}) []string {
	for _, key := range []string{"roles", "role", "perfil", "tipo", "authorities"} {
		if roles := parseRolesValue(claims[key]); len(roles) > 0 {
			return roles
		}
	}
	if realm, ok := claims["realm_access"].(map[string]interface{}); ok {
		if roles := parseRolesValue(realm["roles"]); len(roles) > 0 {
			return roles
		}
	}
	return nil
}

func parseRolesValue(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		split := strings.Split(v, ",")
		result := make([]string, 0, len(split))
		for _, part := range split {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			switch r := item.(type) {
			case string:
				if trimmed := strings.TrimSpace(r); trimmed != "" {
					result = append(result, trimmed)
				}
			case map[string]interface{}:
				// formato Spring: [{"authority":"ROLE_ADMIN"}]
				if a, ok := r["authority"].(string); ok && strings.TrimSpace(a) != "" {
					result = append(result, strings.TrimSpace(a))
				}
			}
		}
		return result
	case []string:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	default:
		return nil
	}
}
