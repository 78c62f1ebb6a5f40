// Package storage implements the cloud-disk feed storage used for the
// externally maintained stop-list workbook.
package storage

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/service"
	"chainsync/internal/errors"
	"chainsync/internal/infra/workbook"
	"chainsync/internal/util"
)

// Config carries the disk API endpoint and credentials.
type Config struct {
	BaseURL string        // Resource API base, e.g. https://cloud-api.yandex.net/v1/disk/resources
	Token   string        // OAuth token.
	Timeout time.Duration // Request timeout.
}

type diskStorage struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewDiskStorage creates the cloud-disk feed storage client.
func NewDiskStorage(cfg Config, logger *slog.Logger) service.FeedStorage {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &diskStorage{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// resourceMeta mirrors the fields of the disk API's resource metadata the
// sync needs.
type resourceMeta struct {
	Modified time.Time `json:"modified"`
}

// ModifiedAt returns the remote file's modification time.
func (s *diskStorage) ModifiedAt(ctx context.Context, path string) (time.Time, error) {
	body, status, err := s.get(ctx, s.cfg.BaseURL+"?path=/"+url.QueryEscape(path))
	if err != nil {
		return time.Time{}, err
	}
	if status == http.StatusNotFound {
		return time.Time{}, errors.Wrapf(service.ErrFeedNotFound, "path %s", path)
	}
	if status != http.StatusOK {
		return time.Time{}, errors.Errorf("disk metadata returned status %d for %s", status, path)
	}

	var meta resourceMeta
	if err := json.Unmarshal(body, &meta); err != nil {
		return time.Time{}, errors.Wrap(err, "decode disk metadata")
	}

	return meta.Modified, nil
}

// downloadLink mirrors the disk API's download-reference response.
type downloadLink struct {
	Href string `json:"href"`
}

// DownloadTable downloads the workbook at path and decodes its first sheet.
func (s *diskStorage) DownloadTable(ctx context.Context, path string) (*entity.RawTable, error) {
	body, status, err := s.get(ctx, s.cfg.BaseURL+"/download?path=/"+url.QueryEscape(path))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.Wrapf(service.ErrFeedNotFound, "path %s", path)
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("disk download reference returned status %d for %s", status, path)
	}

	var link downloadLink
	if err := json.Unmarshal(body, &link); err != nil {
		return nil, errors.Wrap(err, "decode disk download reference")
	}
	if link.Href == "" {
		return nil, errors.Errorf("disk download reference for %s carries no href", path)
	}

	data, status, err := s.get(ctx, link.Href)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("disk download returned status %d for %s", status, path)
	}
	s.logger.Debug("feed workbook downloaded",
		slog.String("path", path),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	table, err := workbook.Decode(data, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "decode feed workbook %s", path)
	}

	return table, nil
}

func (s *diskStorage) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "build disk request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "OAuth "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "call disk API")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "read disk response")
	}

	return body, resp.StatusCode, nil
}
