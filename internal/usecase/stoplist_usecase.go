package usecase

import "context"

// StopListResult is the outcome of one stop-list ingest attempt.
type StopListResult struct {
	Updated bool // False when the remote workbook was not newer than the stored marker.
	Phones  int  // Distinct phones upserted.
}

// StopListUsecase ingests the externally maintained contact stop list.
type StopListUsecase interface {
	// IngestStopList downloads and applies the stop-list workbook when its
	// modification date is newer than the stored marker.
	IngestStopList(ctx context.Context) (StopListResult, error)
}
