package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/repository"
	"chainsync/internal/domain/service"
	"chainsync/internal/errors"
	"chainsync/internal/usecase"
)

// Stop-list workbook columns. The feed is maintained by hand in a shared
// workbook; "forbiden" is spelled that way in the source file.
const (
	colStopPhone     = "Телефон"
	colStopLastCall  = "Дата завершения"
	colStopForbidden = "forbiden"
)

type stopListService struct {
	storage     service.FeedStorage
	settingRepo repository.SettingRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
	feedPath    string
}

// NewStopListService creates the stop-list ingest service.
func NewStopListService(
	storage service.FeedStorage,
	settingRepo repository.SettingRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
	feedPath string,
) usecase.StopListUsecase {
	return &stopListService{
		storage:     storage,
		settingRepo: settingRepo,
		txManager:   txManager,
		logger:      logger,
		feedPath:    feedPath,
	}
}

// IngestStopList applies the remote stop-list workbook when it changed since
// the last ingest. The upsert and the modified-date marker commit together.
func (s *stopListService) IngestStopList(ctx context.Context) (usecase.StopListResult, error) {
	modifiedAt, err := s.storage.ModifiedAt(ctx, s.feedPath)
	if err != nil {
		return usecase.StopListResult{}, errors.Wrap(err, "read stop-list modification date")
	}

	lastIngested, err := s.lastIngestedAt(ctx)
	if err != nil {
		return usecase.StopListResult{}, err
	}
	if !modifiedAt.After(lastIngested) {
		return usecase.StopListResult{}, nil
	}

	table, err := s.storage.DownloadTable(ctx, s.feedPath)
	if err != nil {
		return usecase.StopListResult{}, errors.Wrap(err, "download stop-list workbook")
	}

	entries := collapseStopList(table)

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewStopListRepository().UpsertBatch(ctx, entries); err != nil {
			return errors.Wrap(err, "upsert stop list")
		}

		return repos.NewSettingRepository().Set(ctx,
			repository.SettingStopListModified, modifiedAt.UTC().Format(time.RFC3339))
	})
	if err != nil {
		return usecase.StopListResult{}, err
	}

	s.logger.Info("stop list ingested",
		slog.Time("modifiedAt", modifiedAt),
		slog.Int("phones", len(entries)),
	)

	return usecase.StopListResult{Updated: true, Phones: len(entries)}, nil
}

func (s *stopListService) lastIngestedAt(ctx context.Context) (time.Time, error) {
	marker, err := s.settingRepo.Get(ctx, repository.SettingStopListModified)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return time.Time{}, nil
		}

		return time.Time{}, errors.Wrap(err, "read stop-list marker")
	}

	parsed, err := time.Parse(time.RFC3339, marker)
	if err != nil {
		// A corrupt marker should trigger a re-ingest, not block the feed.
		return time.Time{}, nil
	}

	return parsed, nil
}

// collapseStopList groups the workbook rows by phone: the newest last-call
// date wins and any row with a non-empty forbidden cell marks the phone
// do-not-call.
func collapseStopList(table *entity.RawTable) []entity.StopListEntry {
	merged := make(map[string]int)
	var out []entity.StopListEntry
	for _, raw := range table.Rows {
		phone := strings.TrimSpace(table.Cell(raw, colStopPhone))
		if phone == "" {
			continue
		}

		var lastCall time.Time
		if cell := strings.TrimSpace(table.Cell(raw, colStopLastCall)); cell != "" {
			if parsed, err := parseReportTime(cell, time.UTC); err == nil {
				lastCall = parsed
			}
		}
		doNotCall := strings.TrimSpace(table.Cell(raw, colStopForbidden)) != ""

		if idx, ok := merged[phone]; ok {
			if lastCall.After(out[idx].LastCallDate) {
				out[idx].LastCallDate = lastCall
			}
			out[idx].DoNotCall = out[idx].DoNotCall || doNotCall

			continue
		}
		merged[phone] = len(out)
		out = append(out, entity.StopListEntry{Phone: phone, LastCallDate: lastCall, DoNotCall: doNotCall})
	}

	return out
}
