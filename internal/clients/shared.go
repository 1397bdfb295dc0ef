package clients

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

var listGroup singleflight.Group

// Shared é o cliente usado pelo MID: listagens idênticas em voo (mesmo bearer
// e mesmo tamPag) viram uma só chamada ao backend.
type Shared struct {
	*SDPEClient
}

// NewShared embrulha c.
func NewShared(c *SDPEClient) Shared {
	return Shared{SDPEClient: c}
}

// ListProjetos junta chamadas concorrentes. Quem cancela deixa de esperar,
// mas a busca compartilhada segue para os demais.
func (s Shared) ListProjetos(ctx context.Context, tamPag int) ([]models.Projeto, error) {
	key, err := s.listKey(ctx, tamPag)
	if err != nil {
		return nil, err
	}
	ch := listGroup.DoChan(key, func() (any, error) {
		return s.SDPEClient.ListProjetos(context.WithoutCancel(ctx), tamPag)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]models.Projeto)), nil
	}
}

func (s Shared) listKey(ctx context.Context, tamPag int) (string, error) {
	headers, err := s.headers(ctx)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(s.baseURL + "|" + headers["Authorization"]))
	return hex.EncodeToString(sum[:]) + "|" + strconv.Itoa(tamPag), nil
}
