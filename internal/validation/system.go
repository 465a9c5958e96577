// Package validation implements the filing-submission domain: a job
// registry that gates submissions on the taxonomy-package pre-check,
// relays accepted filings to the remote validation engine, and exposes
// job status for polling and live watching.
package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"xbrlgate/internal/packages"
)

// System defines the public contract for validation domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler
	Submit(cmd SubmitCommand) (*Job, error)
	Find(id uuid.UUID) (*Job, error)
	Watch(id uuid.UUID) (<-chan Job, func(), error)
	EngineStatus(ctx context.Context) EngineStatus
}

// Options configures the validation system.
type Options struct {
	// Endpoints are candidate engine base URLs tried during discovery.
	Endpoints []string
	// ProbeTimeout bounds a single discovery health probe.
	ProbeTimeout time.Duration
	// SubmitTimeout is the ceiling on one engine validation request.
	// The engine may legitimately take minutes; past the ceiling the
	// request is abandoned and the job reports timed_out.
	SubmitTimeout time.Duration
	// JobCacheSize bounds how many finished jobs are retained.
	JobCacheSize int
	// Engine overrides endpoint discovery with a fixed engine.
	Engine Engine
}

type system struct {
	opts     Options
	packages packages.System
	logger   *slog.Logger

	mu       sync.Mutex
	engine   Engine
	endpoint string
	active   map[uuid.UUID]*Job
	watchers map[uuid.UUID][]chan Job
	finished *lru.Cache[uuid.UUID, Job]
}

// New creates the validation domain system.
func New(opts Options, pkgs packages.System, logger *slog.Logger) (System, error) {
	if opts.JobCacheSize <= 0 {
		opts.JobCacheSize = 256
	}

	finished, err := lru.New[uuid.UUID, Job](opts.JobCacheSize)
	if err != nil {
		return nil, fmt.Errorf("job cache: %w", err)
	}

	return &system{
		opts:     opts,
		packages: pkgs,
		logger:   logger.With("system", "validation"),
		engine:   opts.Engine,
		active:   make(map[uuid.UUID]*Job),
		watchers: make(map[uuid.UUID][]chan Job),
		finished: finished,
	}, nil
}

func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

// Submit registers a job and starts its run in the background.
func (s *system) Submit(cmd SubmitCommand) (*Job, error) {
	if cmd.InstanceFilename == "" || len(cmd.InstanceData) == 0 {
		return nil, fmt.Errorf("%w: instance document is required", ErrInvalidSubmission)
	}

	now := time.Now().UTC()
	job := &Job{
		ID:               uuid.New(),
		Status:           StatusPending,
		InstanceFilename: cmd.InstanceFilename,
		TaxonomyFilename: cmd.TaxonomyFilename,
		TableCode:        cmd.TableCode,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}

	s.mu.Lock()
	s.active[job.ID] = job
	snapshot := *job
	s.mu.Unlock()

	go s.run(job.ID, cmd)

	return &snapshot, nil
}

// Find returns a snapshot of an active or finished job.
func (s *system) Find(id uuid.UUID) (*Job, error) {
	s.mu.Lock()
	if job, ok := s.active[id]; ok {
		snapshot := *job
		s.mu.Unlock()
		return &snapshot, nil
	}
	s.mu.Unlock()

	if job, ok := s.finished.Get(id); ok {
		return &job, nil
	}
	return nil, ErrNotFound
}

// Watch returns a channel of job snapshots, starting with the current
// state and closing after the terminal state. The cancel function detaches
// the watcher; a detached or slow watcher can recover the final state via
// Find.
func (s *system) Watch(id uuid.UUID) (<-chan Job, func(), error) {
	s.mu.Lock()
	if job, ok := s.active[id]; ok {
		ch := make(chan Job, 8)
		ch <- *job
		s.watchers[id] = append(s.watchers[id], ch)
		s.mu.Unlock()
		return ch, func() { s.detachWatcher(id, ch) }, nil
	}
	s.mu.Unlock()

	if job, ok := s.finished.Get(id); ok {
		ch := make(chan Job, 1)
		ch <- job
		close(ch)
		return ch, func() {}, nil
	}
	return nil, nil, ErrNotFound
}

// EngineStatus resolves (discovering if necessary) and probes the engine.
func (s *system) EngineStatus(ctx context.Context) EngineStatus {
	status := EngineStatus{CheckedAt: time.Now().UTC()}

	engine, endpoint, err := s.connect(ctx)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Endpoint = endpoint

	if err := engine.Health(ctx); err != nil {
		status.Error = err.Error()
		return status
	}

	status.Healthy = true
	return status
}

// run drives one job to a terminal state.
func (s *system) run(id uuid.UUID, cmd SubmitCommand) {
	if len(cmd.TaxonomyData) > 0 {
		s.update(id, func(job *Job) {
			job.Status = StatusClassifying
		})

		verdict := s.packages.Check(cmd.TaxonomyFilename, cmd.TaxonomyData)
		if !verdict.IsValid {
			s.update(id, func(job *Job) {
				job.Status = StatusRejected
				job.Verdict = &verdict
				job.Error = verdict.Message
			})
			return
		}

		s.update(id, func(job *Job) {
			job.Verdict = &verdict
		})
	}

	s.update(id, func(job *Job) {
		job.Status = StatusSubmitting
	})

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.SubmitTimeout)
	defer cancel()

	engine, _, err := s.connect(ctx)
	if err != nil {
		s.update(id, func(job *Job) {
			job.Status = StatusFailed
			job.Error = err.Error()
		})
		return
	}

	result, err := engine.Submit(ctx, SubmitRequest{
		InstanceFilename: cmd.InstanceFilename,
		InstanceData:     cmd.InstanceData,
		PackageFilename:  cmd.TaxonomyFilename,
		PackageData:      cmd.TaxonomyData,
		TableCode:        cmd.TableCode,
	})
	if err != nil {
		status := StatusFailed
		if errors.Is(err, ErrTimedOut) {
			status = StatusTimedOut
		}
		s.update(id, func(job *Job) {
			job.Status = status
			job.Error = err.Error()
		})
		return
	}

	s.update(id, func(job *Job) {
		job.Status = StatusCompleted
		job.Result = result
	})
}

// connect returns the resolved engine, running endpoint discovery on first use.
func (s *system) connect(ctx context.Context) (Engine, string, error) {
	s.mu.Lock()
	if s.engine != nil {
		engine, endpoint := s.engine, s.endpoint
		s.mu.Unlock()
		return engine, endpoint, nil
	}
	s.mu.Unlock()

	endpoint, err := Discover(ctx, s.opts.Endpoints, s.opts.ProbeTimeout, s.logger)
	if err != nil {
		return nil, "", err
	}
	client := NewClient(endpoint, s.logger)

	s.mu.Lock()
	if s.engine == nil {
		s.engine = client
		s.endpoint = endpoint
	}
	engine, resolved := s.engine, s.endpoint
	s.mu.Unlock()

	return engine, resolved, nil
}

// update mutates a job under the lock, publishes a snapshot to watchers,
// and retires the job into the finished cache on a terminal transition.
func (s *system) update(id uuid.UUID, mutate func(*Job)) {
	s.mu.Lock()
	job, ok := s.active[id]
	if !ok {
		s.mu.Unlock()
		return
	}

	mutate(job)
	job.UpdatedAt = time.Now().UTC()
	snapshot := *job

	var targets []chan Job
	if snapshot.Status.Terminal() {
		delete(s.active, id)
		s.finished.Add(id, snapshot)
		targets = s.watchers[id]
		delete(s.watchers, id)
	} else {
		targets = append(targets, s.watchers[id]...)
	}
	s.mu.Unlock()

	for _, ch := range targets {
		select {
		case ch <- snapshot:
		default:
			// slow watcher; it can recover the final state via Find
		}
		if snapshot.Status.Terminal() {
			close(ch)
		}
	}

	if snapshot.Status.Terminal() {
		s.logger.Info(
			"validation job finished",
			"id", snapshot.ID,
			"status", snapshot.Status,
			"instance", snapshot.InstanceFilename,
		)
	}
}

func (s *system) detachWatcher(id uuid.UUID, target chan Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	watchers := s.watchers[id]
	for i, ch := range watchers {
		if ch == target {
			s.watchers[id] = append(watchers[:i], watchers[i+1:]...)
			return
		}
	}
}
