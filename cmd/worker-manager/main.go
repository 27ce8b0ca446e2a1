// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"guided-buying-workers/internal/common/camunda"
	"guided-buying-workers/internal/common/config"
	"guided-buying-workers/internal/common/logger"
	"guided-buying-workers/internal/common/observability"
	"guided-buying-workers/internal/store"
	"guided-buying-workers/pkg/registry"

	// Intake Workers (5)
	ci "guided-buying-workers/internal/workers/intake/classify-intent"
	cr "guided-buying-workers/internal/workers/intake/create-requisition"
	ic "guided-buying-workers/internal/workers/intake/infer-context"
	lr "guided-buying-workers/internal/workers/intake/lookup-requisition"
	rb "guided-buying-workers/internal/workers/intake/route-backend"

	// Catalog Workers (2)
	dft "guided-buying-workers/internal/workers/catalog/draft-free-text-item"
	sc "guided-buying-workers/internal/workers/catalog/search-catalog"

	// Workflow Workers (3)
	bap "guided-buying-workers/internal/workers/workflow/build-approval-path"
	sg "guided-buying-workers/internal/workers/workflow/suggest-contracts"
	vr "guided-buying-workers/internal/workers/workflow/validate-requisition"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func workerTimeout(cfg *config.Config, taskType string) time.Duration {
	return time.Duration(cfg.Workers[taskType].Timeout) * time.Millisecond
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	// --- Load Activity Registry ---
	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.Error(err))
	}
	if err := reg.Validate(); err != nil {
		zapLog.Fatal("activity registry invalid", zap.Error(err))
	}
	zapLog.Info("Activity registry loaded",
		zap.String("version", reg.Version),
		zap.Int("activities", len(reg.Activities)),
	)

	// Output schema validation is opt-in via registry.validate_output. When
	// disabled every worker gets a nil check and completes jobs unchecked.
	outputCheck := func(string) func(interface{}) error { return nil }
	if cfg.Registry.ValidateOutput {
		validator := registry.NewOutputValidator(reg)
		outputCheck = func(taskType string) func(interface{}) error {
			return func(output interface{}) error {
				return validator.ValidateOutput(taskType, output)
			}
		}
		zapLog.Info("Output schema validation enabled")
	}

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	zeebeClient := camundaClient.GetClient()

	// Requisition state shared by the create and lookup workers.
	reqStore := store.NewRequisitionStore()

	// --- START: Register ALL 10 Workers ---

	// --- 1. Intake Workers (5) ---
	if cfg.Workers[ci.TaskType].Enabled {
		handler := ci.NewHandler(
			&ci.Config{Timeout: workerTimeout(cfg, ci.TaskType), ValidateOutput: outputCheck(ci.TaskType)},
			log,
		)
		startWorker(zeebeClient, ci.TaskType, cfg.Workers[ci.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[ic.TaskType].Enabled {
		handler := ic.NewHandler(
			&ic.Config{Timeout: workerTimeout(cfg, ic.TaskType), ValidateOutput: outputCheck(ic.TaskType)},
			log,
		)
		startWorker(zeebeClient, ic.TaskType, cfg.Workers[ic.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[rb.TaskType].Enabled {
		handler := rb.NewHandler(
			&rb.Config{Timeout: workerTimeout(cfg, rb.TaskType), ValidateOutput: outputCheck(rb.TaskType)},
			log,
		)
		startWorker(zeebeClient, rb.TaskType, cfg.Workers[rb.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[cr.TaskType].Enabled {
		handler := cr.NewHandler(
			&cr.Config{Timeout: workerTimeout(cfg, cr.TaskType), ValidateOutput: outputCheck(cr.TaskType)},
			reqStore, log,
		)
		startWorker(zeebeClient, cr.TaskType, cfg.Workers[cr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[lr.TaskType].Enabled {
		handler := lr.NewHandler(
			&lr.Config{Timeout: workerTimeout(cfg, lr.TaskType), ValidateOutput: outputCheck(lr.TaskType)},
			reqStore, log,
		)
		startWorker(zeebeClient, lr.TaskType, cfg.Workers[lr.TaskType], handler.Handle, zapLog)
	}

	// --- 2. Catalog Workers (2) ---
	if cfg.Workers[sc.TaskType].Enabled {
		handler := sc.NewHandler(
			&sc.Config{
				Timeout:        workerTimeout(cfg, sc.TaskType),
				SearchDelay:    time.Duration(cfg.Catalog.SearchDelayMs) * time.Millisecond,
				MaxResults:     cfg.Catalog.MaxResults,
				ValidateOutput: outputCheck(sc.TaskType),
			},
			log,
		)
		startWorker(zeebeClient, sc.TaskType, cfg.Workers[sc.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[dft.TaskType].Enabled {
		handler := dft.NewHandler(
			&dft.Config{Timeout: workerTimeout(cfg, dft.TaskType), ValidateOutput: outputCheck(dft.TaskType)},
			log,
		)
		startWorker(zeebeClient, dft.TaskType, cfg.Workers[dft.TaskType], handler.Handle, zapLog)
	}

	// --- 3. Workflow Workers (3) ---
	if cfg.Workers[vr.TaskType].Enabled {
		handler := vr.NewHandler(
			&vr.Config{Timeout: workerTimeout(cfg, vr.TaskType), ValidateOutput: outputCheck(vr.TaskType)},
			log,
		)
		startWorker(zeebeClient, vr.TaskType, cfg.Workers[vr.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[bap.TaskType].Enabled {
		handler := bap.NewHandler(
			&bap.Config{Timeout: workerTimeout(cfg, bap.TaskType), ValidateOutput: outputCheck(bap.TaskType)},
			log,
		)
		startWorker(zeebeClient, bap.TaskType, cfg.Workers[bap.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[sg.TaskType].Enabled {
		handler := sg.NewHandler(
			&sg.Config{Timeout: workerTimeout(cfg, sg.TaskType), ValidateOutput: outputCheck(sg.TaskType)},
			log,
		)
		startWorker(zeebeClient, sg.TaskType, cfg.Workers[sg.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All 10 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := camundaClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
					"time":   time.Now().Format(time.RFC3339),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
