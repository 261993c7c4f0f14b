package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

var ErrEmptyBusinessType = errors.New("empty business type")

// ProfileService stores the free-text business type shown on the
// dashboard ("Brigadeiros", "Salgados", ...). The value is stored raw,
// not JSON-wrapped, matching the original layout.
type ProfileService struct {
	kv store.KV
}

func NewProfileService(kv store.KV) *ProfileService {
	return &ProfileService{kv: kv}
}

// BusinessType returns the stored value and whether one was set.
func (p *ProfileService) BusinessType(ctx context.Context, userID int64) (string, bool, error) {
	raw, found, err := p.kv.Get(ctx, store.BusinessTypeKey(userID))
	if err != nil {
		return "", false, fmt.Errorf("get business type: %w", err)
	}
	return string(raw), found, nil
}

// SetBusinessType stores the trimmed value; blank input is rejected.
func (p *ProfileService) SetBusinessType(ctx context.Context, userID int64, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyBusinessType
	}
	if err := p.kv.Set(ctx, store.BusinessTypeKey(userID), []byte(value)); err != nil {
		return fmt.Errorf("set business type: %w", err)
	}
	return nil
}
