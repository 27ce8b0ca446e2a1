// internal/workers/intake/create-requisition/handler.go
package createrequisition

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	cerrors "guided-buying-workers/internal/common/errors"
	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/common/metrics"
	"guided-buying-workers/internal/store"
	infercontext "guided-buying-workers/internal/workers/intake/infer-context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "create-requisition"
)

var (
	ErrNilInput     = errors.New("input cannot be nil")
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrNilStore     = errors.New("requisition store cannot be nil")
)

type Handler struct {
	config *Config
	store  *store.RequisitionStore
	logger logger.Logger
}

func NewHandler(config *Config, reqStore *store.RequisitionStore, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  reqStore,
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
		h.failJob(client, job, h.wrapError(&input, err))
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
	if h.store == nil {
		return nil, ErrNilStore
	}

	persona, err := infercontext.ResolvePersona(&infercontext.Input{
		PersonaID: input.PersonaID,
		Persona:   input.Persona,
	})
	if err != nil {
		return nil, err
	}

	pr := Assemble(input.Message, persona, time.Now())
	pr.PRNumber = h.store.NextNumber()
	h.store.Put(pr)

	metrics.RequisitionsCreated.WithLabelValues(
		string(pr.BackendRouting.System),
		string(pr.IntentClassification.Type),
	).Inc()

	h.logger.Info("requisition created", map[string]interface{}{
		"prNumber":   pr.PRNumber,
		"intentType": string(pr.IntentClassification.Type),
		"backend":    string(pr.BackendRouting.System),
		"entity":     pr.ContextInference.Entity,
	})

	output := &Output{
		PRNumber:    pr.PRNumber,
		Requisition: pr,
	}
	if h.config.ValidateOutput != nil {
		if err := h.config.ValidateOutput(output); err != nil {
			return nil, cerrors.NewSchemaInvalidError(TaskType, err.Error())
		}
	}
	return output, nil
}

func (h *Handler) wrapError(input *Input, err error) *cerrors.StandardError {
	var stdErr *cerrors.StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	if errors.Is(err, infercontext.ErrNoPersona) {
		return cerrors.NewPersonaNotFoundError(input.PersonaID)
	}
	return cerrors.NewRequisitionCreateFailedError(err)
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
