package worker

import (
	"context"
	"sync"
	"time"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs"
	"github.com/tusharverma21/cloud-video-eraser/internal/ghostcut"
	"github.com/tusharverma21/cloud-video-eraser/internal/poller"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"
	"github.com/tusharverma21/cloud-video-eraser/pkg/utils"
)

const idleBackoff = 5 * time.Second

// Worker drains the submission queue: each dequeued job is submitted to
// the remote inpainting service and handed to a dedicated poller
// goroutine.
type Worker struct {
	cfg       *config.Config
	logger    logger.Logger
	jobsRepo  editjobs.Repository
	redisRepo editjobs.RedisRepository
	awsRepo   editjobs.AWSRepository
	submitter ghostcut.Submitter
	poller    *poller.Poller
	wg        sync.WaitGroup
}

func NewWorker(
	cfg *config.Config,
	logger logger.Logger,
	jobsRepo editjobs.Repository,
	redisRepo editjobs.RedisRepository,
	awsRepo editjobs.AWSRepository,
	submitter ghostcut.Submitter,
	poller *poller.Poller,
) *Worker {
	return &Worker{
		cfg:       cfg,
		logger:    logger,
		jobsRepo:  jobsRepo,
		redisRepo: redisRepo,
		awsRepo:   awsRepo,
		submitter: submitter,
		poller:    poller,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.logger.Infof("Starting %d submission workers", w.cfg.Worker.WorkerCount)
	for i := 0; i < w.cfg.Worker.WorkerCount; i++ {
		w.wg.Add(1)
		go w.run(ctx)
	}
}

// Wait blocks until all workers and their spawned pollers have exited.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if canAcceptJob, usage := utils.CheckCPUUsage(w.cfg.Worker.MaxCPUUsage); !canAcceptJob {
			w.logger.Infof("CPU usage is high: %f, backing off", usage)
			select {
			case <-ctx.Done():
				return
			case <-time.After(idleBackoff):
			}
			continue
		}

		job, err := w.redisRepo.DequeueJob(ctx, w.cfg.Redis.JobQueueKey)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Errorf("error dequeuing job: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(idleBackoff):
			}
			continue
		}

		w.handleJob(ctx, job)
	}
}
