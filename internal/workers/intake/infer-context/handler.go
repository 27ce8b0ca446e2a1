// internal/workers/intake/infer-context/handler.go
package infercontext

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	cerrors "guided-buying-workers/internal/common/errors"
	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/data"
	"guided-buying-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "infer-context"
)

var (
	ErrNilInput     = errors.New("input cannot be nil")
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrNoPersona    = errors.New("persona or personaId required")
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
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrEmptyMessage
	}

	persona, err := ResolvePersona(input)
	if err != nil {
		return nil, err
	}

	inference := Infer(input.Message, persona)

	h.logger.Info("context inferred", map[string]interface{}{
		"entity":   inference.Entity,
		"category": string(inference.Category),
		"urgency":  string(inference.Urgency),
		"neededBy": inference.NeededBy,
	})

	output := &Output{ContextInference: inference}
	if h.config.ValidateOutput != nil {
		if err := h.config.ValidateOutput(output); err != nil {
			return nil, cerrors.NewSchemaInvalidError(TaskType, err.Error())
		}
	}
	return output, nil
}

// ResolvePersona picks the inline persona when provided, otherwise looks the
// personaId up in the roster.
func ResolvePersona(input *Input) (models.Persona, error) {
	if input.Persona != nil && input.Persona.ID != "" {
		return *input.Persona, nil
	}
	if input.PersonaID != "" {
		if p, ok := data.PersonaByID(input.PersonaID); ok {
			return p, nil
		}
		return models.Persona{}, fmt.Errorf("%w: %s", ErrNoPersona, input.PersonaID)
	}
	return models.Persona{}, ErrNoPersona
}

func (h *Handler) wrapError(input *Input, err error) *cerrors.StandardError {
	var stdErr *cerrors.StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	if errors.Is(err, ErrNoPersona) {
		return cerrors.NewPersonaNotFoundError(input.PersonaID)
	}
	return cerrors.NewContextInferenceFailedError(err)
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
