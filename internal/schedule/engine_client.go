package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	scheduleerrors "go-shiftdesk/internal/schedule/errors"

	"go.uber.org/zap"
)

// EngineAssignment is one generated cell from the external solver.
type EngineAssignment struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ShiftID    string `json:"shift_id"`
}

type engineGenerateRequest struct {
	StoreID string `json:"store_id"`
	Month   string `json:"month"`
}

type engineGenerateResponse struct {
	Assignments []EngineAssignment `json:"assignments"`
}

// EngineClient calls the external schedule generation service. The
// heuristic itself lives outside this codebase.
type EngineClient interface {
	Generate(ctx context.Context, storeID, month string) ([]EngineAssignment, error)
}

type httpEngineClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPEngineClient(logger ...*zap.Logger) EngineClient {
	l := zap.L().Named("schedule.engine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.engine")
	}
	return &httpEngineClient{
		baseURL: os.Getenv("SCHEDULE_ENGINE_URL"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  l,
	}
}

func (c *httpEngineClient) Generate(ctx context.Context, storeID, month string) ([]EngineAssignment, error) {
	body, err := json.Marshal(engineGenerateRequest{StoreID: storeID, Month: month})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("engine request failed", zap.Error(err))
		return nil, scheduleerrors.ErrEngineUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("engine returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("schedule engine status %d: %w", resp.StatusCode, scheduleerrors.ErrEngineUnavailable)
	}

	var out engineGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	return out.Assignments, nil
}
