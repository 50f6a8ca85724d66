package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/glasses-man/exampilot/internal/client/repositories/state"
)

// HistoryService keeps the append-only question log, most recent first.
type HistoryService interface {
	// Append inserts the record at the head of the log.
	Append(ctx context.Context, record models.QuestionRecord) error
	// All returns the full log, newest first. Never nil.
	All(ctx context.Context) ([]models.QuestionRecord, error)
}

type historyService struct {
	db *sql.DB
}

// NewHistoryService constructs a HistoryService over the local state DB.
func NewHistoryService(db *sql.DB) HistoryService {
	return &historyService{db: db}
}

func (h *historyService) repo() state.Repository {
	return state.NewSQLiteRepository(h.db)
}

func (h *historyService) Append(ctx context.Context, record models.QuestionRecord) error {
	records, err := h.All(ctx)
	if err != nil {
		return err
	}

	records = append([]models.QuestionRecord{record}, records...)

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return h.repo().Set(ctx, state.KeyHistory, raw)
}

func (h *historyService) All(ctx context.Context) ([]models.QuestionRecord, error) {
	raw, err := h.repo().Get(ctx, state.KeyHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if raw == nil {
		return []models.QuestionRecord{}, nil
	}

	var records []models.QuestionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return records, nil
}
