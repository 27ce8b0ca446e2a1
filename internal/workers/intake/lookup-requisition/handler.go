// internal/workers/intake/lookup-requisition/handler.go
package lookuprequisition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	cerrors "guided-buying-workers/internal/common/errors"
	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/store"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "lookup-requisition"
)

var (
	ErrNilInput    = errors.New("input cannot be nil")
	ErrNoReference = errors.New("no requisition number in request")
	ErrNotFound    = errors.New("requisition not found")
	ErrNilStore    = errors.New("requisition store cannot be nil")
)

// Requisition references appear either as "PR-0042" / "PR 42" / "pr42"
// or as a bare "#42".
var (
	prReferenceRe   = regexp.MustCompile(`(?i)PR[-\s]?(\d+)`)
	hashReferenceRe = regexp.MustCompile(`#(\d+)`)
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
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if h.store == nil {
		return nil, ErrNilStore
	}

	if input.ListAll {
		all := h.store.ListAll()
		h.logger.Info("requisitions listed", map[string]interface{}{
			"count": len(all),
		})
		output := &Output{
			Found:        len(all) > 0,
			Requisitions: all,
			Count:        len(all),
		}
		if h.config.ValidateOutput != nil {
			if err := h.config.ValidateOutput(output); err != nil {
				return nil, cerrors.NewSchemaInvalidError(TaskType, err.Error())
			}
		}
		return output, nil
	}

	number := input.PRNumber
	if number == "" {
		extracted, ok := ExtractNumber(input.Message)
		if !ok {
			return nil, ErrNoReference
		}
		number = extracted
	}

	pr, ok := h.store.GetByNumber(number)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, number)
	}

	h.logger.Info("requisition found", map[string]interface{}{
		"prNumber": pr.PRNumber,
		"status":   string(pr.Status),
	})

	output := &Output{
		Found:       true,
		Requisition: pr,
		Count:       1,
	}
	if h.config.ValidateOutput != nil {
		if err := h.config.ValidateOutput(output); err != nil {
			return nil, cerrors.NewSchemaInvalidError(TaskType, err.Error())
		}
	}
	return output, nil
}

// ExtractNumber pulls a requisition reference out of a free-text message
// and returns it in canonical PR-%04d form.
func ExtractNumber(message string) (string, bool) {
	if m := prReferenceRe.FindStringSubmatch(message); m != nil {
		return store.NormalizeNumber(m[1])
	}
	if m := hashReferenceRe.FindStringSubmatch(message); m != nil {
		return store.NormalizeNumber(m[1])
	}
	return "", false
}

// wrapError maps lookup failures onto the standardized codes, carrying the
// requisition reference the caller asked for when one could be determined.
func (h *Handler) wrapError(input *Input, err error) *cerrors.StandardError {
	var stdErr *cerrors.StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoReference) {
		ref := input.PRNumber
		if ref == "" {
			if extracted, ok := ExtractNumber(input.Message); ok {
				ref = extracted
			}
		}
		return cerrors.NewRequisitionNotFoundError(ref)
	}
	return cerrors.NewInvalidJobVariablesError(TaskType, err)
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
