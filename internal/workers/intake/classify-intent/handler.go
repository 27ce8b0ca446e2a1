// internal/workers/intake/classify-intent/handler.go
package classifyintent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	cerrors "guided-buying-workers/internal/common/errors"
	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "classify-intent"
)

var (
	ErrNilInput     = errors.New("input cannot be nil")
	ErrEmptyMessage = errors.New("message cannot be empty")
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

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrEmptyMessage
	}

	classification := Classify(input.Message)

	h.logger.Info("intent classified", map[string]interface{}{
		"intentType":      string(classification.Type),
		"confidence":      string(classification.Confidence),
		"confidenceScore": classification.ConfidenceScore,
		"needsReview":     classification.NeedsHumanReview,
	})

	output := &Output{IntentClassification: classification}
	if h.config.ValidateOutput != nil {
		if err := h.config.ValidateOutput(output); err != nil {
			return nil, cerrors.NewSchemaInvalidError(TaskType, err.Error())
		}
	}
	return output, nil
}

// wrapError lifts plain errors into the standardized form thrown to the
// workflow engine. Errors that already carry a code pass through unchanged.
func (h *Handler) wrapError(err error) *cerrors.StandardError {
	var stdErr *cerrors.StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return cerrors.NewIntentClassificationFailedError(err)
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
