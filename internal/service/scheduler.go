package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
)

// ErrNoJobs reports that the scheduler ran out of work, which a perpetual
// job set must never do.
var ErrNoJobs = errors.New("no jobs left to run")

// Mode selects the scheduler's initial job set.
type Mode string

const (
	ModeRun       Mode = "run"
	ModeImport    Mode = "import"
	ModeCalculate Mode = "calculate"
)

// ParseMode validates a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	switch m {
	case ModeRun, ModeImport, ModeCalculate:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

type jobKind string

const (
	jobImport    jobKind = "import"
	jobCalculate jobKind = "calculate"
)

type job struct {
	kind  jobKind
	chain model.Chain
}

func (j job) String() string {
	if j.kind == jobImport {
		return fmt.Sprintf("import(%s)", j.chain)
	}
	return string(j.kind)
}

// Scheduler keeps an unordered set of perpetual jobs in flight. Each job
// runs on its own goroutine and is resubmitted as soon as it finishes; a
// failed job is logged, delayed and resubmitted unchanged.
type Scheduler struct {
	logger     *zap.Logger
	mode       Mode
	chains     []model.Chain
	importers  map[model.Chain]ImportRunner
	calculator CalculateRunner
	sleep      func(context.Context, time.Duration) error
}

// NewScheduler builds a Scheduler with dependencies.
func NewScheduler(
	mode Mode,
	chains []model.Chain,
	importers map[model.Chain]ImportRunner,
	calculator CalculateRunner,
	logger *zap.Logger,
) (*Scheduler, error) {
	if mode != ModeCalculate {
		for _, chain := range chains {
			if _, ok := importers[chain]; !ok {
				return nil, fmt.Errorf("no importer for chain %s", chain)
			}
		}
	}
	if mode != ModeImport && calculator == nil {
		return nil, errors.New("calculator is required")
	}
	return &Scheduler{
		logger:     logger,
		mode:       mode,
		chains:     chains,
		importers:  importers,
		calculator: calculator,
		sleep:      jitteredSleep,
	}, nil
}

type jobResult struct {
	job job
	err error
}

// Run drives the job set until the context is canceled, draining in-flight
// jobs before returning. Running out of jobs is unexpected and fatal.
func (s *Scheduler) Run(ctx context.Context) error {
	jobs := s.initialJobs()
	if len(jobs) == 0 {
		return ErrNoJobs
	}

	results := make(chan jobResult)
	inflight := 0
	spawn := func(j job) {
		inflight++
		go func() {
			results <- jobResult{job: j, err: s.runJob(ctx, j)}
		}()
	}
	for _, j := range jobs {
		s.logger.Info("submitting job", zap.Stringer("job", j))
		spawn(j)
	}

	for inflight > 0 {
		res := <-results
		inflight--
		if ctx.Err() != nil {
			continue // drain without respawning
		}
		spawn(res.job)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrNoJobs
}

func (s *Scheduler) initialJobs() []job {
	jobs := make([]job, 0, len(s.chains)+1)
	if s.mode != ModeCalculate {
		for _, chain := range s.chains {
			jobs = append(jobs, job{kind: jobImport, chain: chain})
		}
	}
	if s.mode != ModeImport {
		jobs = append(jobs, job{kind: jobCalculate})
	}
	return jobs
}

func (s *Scheduler) runJob(ctx context.Context, j job) error {
	err := s.execute(ctx, j)
	if err == nil || ctx.Err() != nil {
		return err
	}
	s.logger.Error("job failed, resubmitting",
		zap.Stringer("job", j),
		zap.Error(err))
	return s.sleep(ctx, jobErrorDelay)
}

func (s *Scheduler) execute(ctx context.Context, j job) error {
	switch j.kind {
	case jobImport:
		importer, ok := s.importers[j.chain]
		if !ok {
			return fmt.Errorf("no importer for chain %s", j.chain)
		}
		return importer.Run(ctx)
	case jobCalculate:
		return s.calculator.Run(ctx)
	default:
		return fmt.Errorf("unknown job kind %q", j.kind)
	}
}
