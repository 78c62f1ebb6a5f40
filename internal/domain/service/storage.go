package service

import (
	"context"
	"errors"
	"time"

	"chainsync/internal/domain/entity"
)

// ErrFeedNotFound is returned when the requested path does not exist on the
// remote disk.
var ErrFeedNotFound = errors.New("feed file not found")

// FeedStorage reads externally maintained workbook feeds from cloud disk
// storage (the stop list lives there). Spreadsheet mechanics stay behind this
// interface; callers only see raw tables.
type FeedStorage interface {
	// ModifiedAt returns the remote file's last modification time.
	ModifiedAt(ctx context.Context, path string) (time.Time, error)

	// DownloadTable downloads the workbook at path and decodes its first
	// sheet into a raw table (first row is the header).
	DownloadTable(ctx context.Context, path string) (*entity.RawTable, error)
}
