// Package openapi implements the client for the chain's public unit-catalog
// API.
package openapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/service"
	"chainsync/internal/errors"
)

// Config carries the catalog endpoint.
type Config struct {
	UnitInfoURL string        // Full URL of the unitinfo listing.
	Timeout     time.Duration // Request timeout.
}

type catalogClient struct {
	cfg    Config
	client *http.Client
}

// NewCatalog creates the public unit-catalog client.
func NewCatalog(cfg Config) service.UnitCatalog {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &catalogClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// unitInfo mirrors one entry of the public API response.
type unitInfo struct {
	ID                  int    `json:"Id"`
	UUID                string `json:"UUId"`
	Name                string `json:"Name"`
	TimeZoneShift       int    `json:"TimeZoneShift"`
	Approve             bool   `json:"Approve"`
	IsTemporarilyClosed bool   `json:"IsTemporarilyClosed"`
}

// FetchUnits returns the catalog filtered to approved, currently open units.
func (c *catalogClient) FetchUnits(ctx context.Context) ([]entity.CatalogUnit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.UnitInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch unit catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unit catalog returned status %d", resp.StatusCode)
	}

	var infos []unitInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, errors.Wrap(err, "decode unit catalog")
	}

	units := make([]entity.CatalogUnit, 0, len(infos))
	for _, info := range infos {
		if !info.Approve || info.IsTemporarilyClosed {
			continue
		}
		units = append(units, entity.CatalogUnit{
			ExternalID:  info.ID,
			CatalogUUID: info.UUID,
			Name:        info.Name,
			TZShift:     info.TimeZoneShift,
		})
	}

	return units, nil
}
