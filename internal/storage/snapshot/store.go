package snapshot

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/snapstore-go/internal/telemetry/logger"
	"github.com/yndnr/snapstore-go/internal/telemetry/metric"
)

// DefaultSaveTimeout bounds the caller-side wait for a save worker.
const DefaultSaveTimeout = 10 * time.Second

var (
	// ErrSaveTimeout reports that a save worker did not finish within the
	// configured bound. The worker keeps running and its file may still
	// materialize on disk, so callers must treat this as an unknown
	// outcome, not as "nothing was written".
	ErrSaveTimeout = errors.New("snapshot: save timed out")

	// ErrNotInitialized reports a load attempted before Initialize.
	ErrNotInitialized = errors.New("snapshot: store not initialized")
)

// Config configures the snapshot store.
type Config struct {
	// Dir is the snapshot directory.
	Dir string

	// SaveTimeout bounds how long SaveSnapshot waits for its worker.
	SaveTimeout time.Duration

	// Serializer encodes and decodes snapshot payloads. Defaults to
	// JSONSerializer.
	Serializer Serializer

	// Logger is the structured logger.
	Logger logger.Logger

	// Metrics receives store metrics. When nil, an unregistered set is
	// used.
	Metrics *metric.Registry
}

// DefaultConfig returns the default store configuration.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		SaveTimeout: DefaultSaveTimeout,
		Serializer:  JSONSerializer{},
	}
}

// Store persists processor snapshots and serves the most recent loadable
// one back.
//
// SaveSnapshot never publishes to the metadata index itself; the hosting
// journal calls Record once it has observed a successful result. A crash
// between the file write and Record leaves a valid file invisible to loads
// until the next Initialize rebuilds the index from disk.
type Store struct {
	cfg     Config
	files   files
	logger  logger.Logger
	metrics *metric.Registry

	index       atomic.Pointer[Index]
	initialized atomic.Bool
}

// Saved reports a successfully persisted snapshot.
type Saved struct {
	ProcessorID uint64
	SequenceNr  uint64
	Timestamp   int64
}

// NewStore creates a snapshot store. Call Initialize before loading.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("snapshot: dir is required")
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = DefaultSaveTimeout
	}
	if cfg.Serializer == nil {
		cfg.Serializer = JSONSerializer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metric.NewRegistry(nil)
	}

	s := &Store{
		cfg:     cfg,
		files:   files{dir: cfg.Dir},
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
	s.index.Store(NewIndex())
	return s, nil
}

// Initialize creates the snapshot directory if needed, lists it, and
// rebuilds the metadata index from the file names found. It must complete
// before LoadSnapshot is used; saves work either way.
func (s *Store) Initialize() error {
	if err := s.files.ensure(); err != nil {
		return err
	}

	names, err := s.files.list()
	if err != nil {
		return err
	}

	idx := RebuildIndex(names)
	s.index.Store(idx)
	s.initialized.Store(true)

	s.metrics.IndexedSnapshots.Set(float64(idx.Len()))
	s.logger.Info("snapshot index rebuilt",
		"dir", s.cfg.Dir,
		"snapshots", idx.Len())
	return nil
}

type saveResult struct {
	saved *Saved
	err   error
}

// SaveSnapshot schedules an independent worker that serializes and writes
// snap, then waits for the outcome up to SaveTimeout. On timeout the
// worker is not cancelled; its result is simply discarded here. The index
// is not updated on success — call Record once the result is observed.
func (s *Store) SaveSnapshot(snap *Snapshot) (*Saved, error) {
	result := s.scheduleSave(snap)

	timer := time.NewTimer(s.cfg.SaveTimeout)
	defer timer.Stop()

	select {
	case res := <-result:
		if res.err != nil {
			return nil, res.err
		}
		return res.saved, nil
	case <-timer.C:
		s.metrics.SaveTimeoutsTotal.Inc()
		s.logger.Warn("snapshot save timed out",
			"processor_id", snap.Metadata.ProcessorID,
			"sequence_nr", snap.Metadata.SequenceNr,
			"timeout", s.cfg.SaveTimeout)
		return nil, fmt.Errorf("%w after %s", ErrSaveTimeout, s.cfg.SaveTimeout)
	}
}

// scheduleSave spawns the one-shot save worker. The result channel is
// buffered so the worker never blocks when the caller has given up.
func (s *Store) scheduleSave(snap *Snapshot) <-chan saveResult {
	result := make(chan saveResult, 1)
	saveID := ulid.Make().String()

	go func() {
		start := time.Now()
		err := s.files.writeSnapshot(snap.Metadata, func(w io.Writer) error {
			return s.cfg.Serializer.Serialize(w, snap)
		})
		if err != nil {
			s.metrics.SavesTotal.WithLabelValues("error").Inc()
			s.logger.Error("snapshot save failed",
				"save_id", saveID,
				"processor_id", snap.Metadata.ProcessorID,
				"sequence_nr", snap.Metadata.SequenceNr,
				"error", err)
			result <- saveResult{err: err}
			return
		}

		s.metrics.SavesTotal.WithLabelValues("ok").Inc()
		s.metrics.SaveDuration.Observe(time.Since(start).Seconds())
		s.logger.Debug("snapshot saved",
			"save_id", saveID,
			"file", snap.Metadata.Filename(),
			"elapsed", time.Since(start))
		result <- saveResult{saved: &Saved{
			ProcessorID: snap.Metadata.ProcessorID,
			SequenceNr:  snap.Metadata.SequenceNr,
			Timestamp:   snap.Metadata.Timestamp,
		}}
	}()

	return result
}

// Record publishes a saved snapshot to the index, making it visible to
// subsequent loads. Recording the identical triple twice is a no-op.
func (s *Store) Record(m Metadata) {
	idx := s.index.Load()
	idx.Record(m)
	s.metrics.IndexedSnapshots.Set(float64(idx.Len()))
}

// LoadSnapshot returns the most recent loadable snapshot for processorID
// whose metadata satisfies filter, or (nil, nil) when none exists — a cold
// start, a filter rejecting everything, and a directory full of corrupt
// files all land there. Candidates are probed strictly newest first and
// the walk stops at the first success; per-candidate failures are absorbed.
func (s *Store) LoadSnapshot(processorID uint64, filter func(Metadata) bool) (*Snapshot, error) {
	if !s.initialized.Load() {
		return nil, ErrNotInitialized
	}

	for _, m := range s.index.Load().MostRecentMatching(processorID, filter) {
		snap, err := s.probe(m)
		if err != nil {
			s.metrics.LoadFallbacksTotal.Inc()
			s.logger.Warn("skipping unreadable snapshot",
				"file", m.Filename(),
				"error", err)
			continue
		}
		s.metrics.LoadsTotal.WithLabelValues("hit").Inc()
		return snap, nil
	}

	s.metrics.LoadsTotal.WithLabelValues("miss").Inc()
	return nil, nil
}

// VerifySnapshot probes one snapshot end to end: open, read, deserialize.
// It is the load path's candidate check exposed for tooling.
func (s *Store) VerifySnapshot(m Metadata) error {
	_, err := s.probe(m)
	return err
}

// Snapshots returns an ordered copy of the index contents, by processor id
// then sequence number.
func (s *Store) Snapshots() []Metadata {
	return s.index.Load().All()
}

func (s *Store) probe(m Metadata) (*Snapshot, error) {
	var payload any
	err := s.files.readSnapshot(m, func(r io.Reader) error {
		var derr error
		payload, derr = s.cfg.Serializer.Deserialize(r, m)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &Snapshot{Metadata: m, Payload: payload}, nil
}
