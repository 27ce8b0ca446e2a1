// internal/workers/catalog/search-catalog/handler.go
package searchcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	cerrors "guided-buying-workers/internal/common/errors"
	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/common/metrics"
	"guided-buying-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "search-catalog"
)

var (
	ErrNilInput   = errors.New("input cannot be nil")
	ErrEmptyQuery = errors.New("query cannot be empty")
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, cerrors.NewInvalidJobVariablesError(TaskType, err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, h.wrapError(err))
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if h.config.SearchDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(h.config.SearchDelay):
		}
	}

	itemType := ClassifyItemType(query)
	quantity := InferQuantity(query)

	var results []models.SearchResult
	if itemType == models.ItemTypeGoods {
		results = Search(query, h.config.MaxResults)
	}

	// Service queries and goods queries with no catalog hits fall through
	// to the free-text drafting path.
	finalType := itemType
	if itemType == models.ItemTypeService || len(results) == 0 {
		finalType = models.ItemTypeFreeText
	}

	metrics.CatalogSearches.WithLabelValues(string(finalType)).Inc()
	metrics.CatalogSearchResults.WithLabelValues(string(finalType)).Observe(float64(len(results)))

	h.logger.Info("catalog searched", map[string]interface{}{
		"query":       query,
		"itemType":    string(finalType),
		"quantity":    quantity,
		"resultCount": len(results),
	})

	output := &Output{
		Metadata: models.SearchMetadata{
			Query:       query,
			ItemType:    finalType,
			Quantity:    quantity,
			ResultCount: len(results),
		},
		Results: results,
	}
	if h.config.ValidateOutput != nil {
		if err := h.config.ValidateOutput(output); err != nil {
			return nil, cerrors.NewSchemaInvalidError(TaskType, err.Error())
		}
	}
	return output, nil
}

func (h *Handler) wrapError(err error) *cerrors.StandardError {
	var stdErr *cerrors.StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return cerrors.NewCatalogSearchFailedError(err)
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, stdErr *cerrors.StandardError) {
	bpmnErr := cerrors.ConvertToBPMNError(stdErr)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()

	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    bpmnErr.Code,
		"errorMessage": bpmnErr.Message,
		"retryable":    bpmnErr.Retryable,
	})

	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)
	if withVars, err := cmd.VariablesFromMap(bpmnErr.ToErrorVariables()); err == nil {
		cmd = withVars
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
