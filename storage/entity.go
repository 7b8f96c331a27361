// Package storage provides built-entity storage for semcode using NATS KV.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/semstreams/message"
)

// Bucket names.
const (
	// BucketEntities holds the latest triple snapshot per built entity.
	BucketEntities = "SEMCODE_ENTITIES"
	// BucketBuilds holds build-run records.
	BucketBuilds = "SEMCODE_BUILDS"
)

// BuildStatus represents the state of a build run.
type BuildStatus string

const (
	BuildStatusRunning  BuildStatus = "running"
	BuildStatusComplete BuildStatus = "complete"
	BuildStatusFailed   BuildStatus = "failed"
)

// BuildRun records one pass of the builders over a set of extraction
// records.
type BuildRun struct {
	ID          string      `json:"id"`
	BaseIRI     string      `json:"base_iri"`
	Status      BuildStatus `json:"status"`
	FileCount   int         `json:"file_count"`
	TripleCount int         `json:"triple_count"`
	Error       string      `json:"error,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	FinishedAt  *time.Time  `json:"finished_at,omitempty"`
}

// EntitySnapshot is the stored state of one built entity: its IRI, the
// source file it came from, the flattened triples, and the build run that
// produced it. Kept per-entity so unchanged files can be skipped on
// incremental rebuilds.
type EntitySnapshot struct {
	IRI        string           `json:"iri"`
	FilePath   string           `json:"file_path,omitempty"`
	BuildRunID string           `json:"build_run_id"`
	Triples    []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// NewBuildRunID mints a unique build-run identifier.
func NewBuildRunID() string {
	return uuid.New().String()
}

// EntityKey derives the KV key for an entity IRI. IRIs contain characters
// NATS keys forbid, so the key is a deterministic name-based UUID of the
// IRI.
func EntityKey(iri string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(iri)).String()
}

// Store provides entity storage operations backed by NATS KV.
type Store struct {
	entities jetstream.KeyValue
	builds   jetstream.KeyValue
}

// NewStore creates a new Store with the given JetStream context.
// It creates the necessary KV buckets if they don't exist.
func NewStore(ctx context.Context, js jetstream.JetStream) (*Store, error) {
	entities, err := getOrCreateBucket(ctx, js, BucketEntities)
	if err != nil {
		return nil, fmt.Errorf("create entities bucket: %w", err)
	}

	builds, err := getOrCreateBucket(ctx, js, BucketBuilds)
	if err != nil {
		return nil, fmt.Errorf("create builds bucket: %w", err)
	}

	return &Store{
		entities: entities,
		builds:   builds,
	}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("Semcode %s storage", strings.ToLower(name)),
		History:     5, // Keep last 5 revisions
	})
}

// StartBuildRun creates a running build-run record and returns it.
func (s *Store) StartBuildRun(ctx context.Context, baseIRI string) (*BuildRun, error) {
	run := &BuildRun{
		ID:        NewBuildRunID(),
		BaseIRI:   baseIRI,
		Status:    BuildStatusRunning,
		StartedAt: time.Now(),
	}

	data, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("marshal build run: %w", err)
	}

	if _, err := s.builds.Create(ctx, run.ID, data); err != nil {
		return nil, fmt.Errorf("store build run: %w", err)
	}

	return run, nil
}

// FinishBuildRun marks a build run complete or failed and records its
// totals.
func (s *Store) FinishBuildRun(ctx context.Context, run *BuildRun, buildErr error) error {
	now := time.Now()
	run.FinishedAt = &now
	if buildErr != nil {
		run.Status = BuildStatusFailed
		run.Error = buildErr.Error()
	} else {
		run.Status = BuildStatusComplete
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal build run: %w", err)
	}

	if _, err := s.builds.Put(ctx, run.ID, data); err != nil {
		return fmt.Errorf("update build run: %w", err)
	}

	return nil
}

// GetBuildRun retrieves a build run by ID.
func (s *Store) GetBuildRun(ctx context.Context, id string) (*BuildRun, error) {
	entry, err := s.builds.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get build run: %w", err)
	}

	var run BuildRun
	if err := json.Unmarshal(entry.Value(), &run); err != nil {
		return nil, fmt.Errorf("unmarshal build run: %w", err)
	}

	return &run, nil
}

// PutEntity stores the latest snapshot for an entity IRI.
func (s *Store) PutEntity(ctx context.Context, snapshot *EntitySnapshot) error {
	if snapshot.IRI == "" {
		return fmt.Errorf("put entity: empty IRI")
	}
	snapshot.UpdatedAt = time.Now()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", snapshot.IRI, err)
	}

	if _, err := s.entities.Put(ctx, EntityKey(snapshot.IRI), data); err != nil {
		return fmt.Errorf("store entity %s: %w", snapshot.IRI, err)
	}

	return nil
}

// GetEntity retrieves the latest snapshot for an entity IRI.
func (s *Store) GetEntity(ctx context.Context, iri string) (*EntitySnapshot, error) {
	entry, err := s.entities.Get(ctx, EntityKey(iri))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get entity: %w", err)
	}

	var snapshot EntitySnapshot
	if err := json.Unmarshal(entry.Value(), &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal entity: %w", err)
	}

	return &snapshot, nil
}

// DeleteEntity removes an entity snapshot, e.g. when its source file was
// deleted.
func (s *Store) DeleteEntity(ctx context.Context, iri string) error {
	if err := s.entities.Delete(ctx, EntityKey(iri)); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete entity: %w", err)
	}
	return nil
}

// ListEntitiesByBuildRun returns all snapshots produced by a build run.
func (s *Store) ListEntitiesByBuildRun(ctx context.Context, buildRunID string) ([]*EntitySnapshot, error) {
	keys, err := s.entities.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list entity keys: %w", err)
	}

	snapshots := make([]*EntitySnapshot, 0)
	for _, key := range keys {
		entry, err := s.entities.Get(ctx, key)
		if err != nil {
			continue // Skip entries that fail to load
		}
		var snapshot EntitySnapshot
		if err := json.Unmarshal(entry.Value(), &snapshot); err != nil {
			continue
		}
		if snapshot.BuildRunID == buildRunID {
			snapshots = append(snapshots, &snapshot)
		}
	}

	return snapshots, nil
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key not found")
}
