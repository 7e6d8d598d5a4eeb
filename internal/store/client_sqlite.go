package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// Keys of the meta table rows holding sync facts that must survive restarts.
const (
	metaKeyBaseline  = "baseline"
	metaKeyRemoteRef = "remote_ref"
)

type sqliteStore struct {
	db     *sql.DB
	uuid   *utils.UUIDGenerator
	logger *logger.Logger

	mu        sync.Mutex
	nextSubID int
	observers map[int]func(int64)
}

// NewLocalStore wraps an open cache database in the [LocalStore] contract.
func NewLocalStore(db *sql.DB, log *logger.Logger) LocalStore {
	return &sqliteStore{
		db:        db,
		uuid:      utils.NewUUIDGenerator(),
		logger:    log,
		observers: make(map[int]func(int64)),
	}
}

func (s *sqliteStore) GetSnapshot(ctx context.Context) (models.Snapshot, error) {
	query, args, err := buildSelectAllRecordsQuery()
	if err != nil {
		return models.Snapshot{}, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshot := models.EmptySnapshot(time.Now().UnixMilli())
	for rows.Next() {
		var (
			collection string
			rec        models.Record
			fieldsJSON string
		)
		if err = rows.Scan(&collection, &rec.ID, &fieldsJSON, &rec.UpdatedAt, &rec.Deleted); err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = json.Unmarshal([]byte(fieldsJSON), &rec.Fields); err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: decode fields of %s/%s: %w", ErrScanningRows, collection, rec.ID, err)
		}
		snapshot.Collections[collection] = append(snapshot.Collections[collection], rec)
	}
	if err = rows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	snapshot.Normalize(time.Now().UnixMilli())
	return snapshot, nil
}

func (s *sqliteStore) ReplaceSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("%w: clear records: %w", ErrExecutingQuery, err)
	}

	for collection, records := range snapshot.Collections {
		if !isKnownCollection(collection) {
			return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
		}
		for _, rec := range records {
			if err = upsertRecordTx(ctx, tx, collection, rec); err != nil {
				return err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *sqliteStore) SaveRecord(ctx context.Context, collection string, rec models.Record) (models.Record, error) {
	if !isKnownCollection(collection) {
		return models.Record{}, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	if rec.ID == "" {
		rec.ID = s.uuid.Generate()
	}
	if rec.UpdatedAt == 0 {
		rec.UpdatedAt = time.Now().UnixMilli()
	}
	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = upsertRecordTx(ctx, tx, collection, rec); err != nil {
		return models.Record{}, err
	}
	if err = tx.Commit(); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	s.notifyWatermark(ctx)
	return rec, nil
}

func (s *sqliteStore) DeleteRecord(ctx context.Context, collection, id string, at int64) error {
	if !isKnownCollection(collection) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if at == 0 {
		at = time.Now().UnixMilli()
	}

	query, args, err := buildSoftDeleteRecordQuery(collection, id, at)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrRecordNotFound, collection, id)
	}

	s.notifyWatermark(ctx)
	return nil
}

func (s *sqliteStore) Watermark(ctx context.Context) (int64, error) {
	query, args, err := buildSelectWatermarkQuery()
	if err != nil {
		return 0, err
	}

	var watermark int64
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&watermark); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return watermark, nil
}

func (s *sqliteStore) OnWatermarkChange(fn func(int64)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *sqliteStore) Baseline(ctx context.Context) (models.Snapshot, bool, error) {
	raw, ok, err := s.getMeta(ctx, metaKeyBaseline)
	if err != nil || !ok {
		return models.Snapshot{}, false, err
	}

	var stored struct {
		Collections  map[string][]models.Record `json:"collections"`
		LastModified int64                      `json:"lastModified"`
		Version      int                        `json:"version"`
	}
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("decode baseline: %w", err)
	}

	snapshot := models.Snapshot{
		Collections:  stored.Collections,
		LastModified: stored.LastModified,
		Version:      stored.Version,
	}
	return snapshot, true, nil
}

func (s *sqliteStore) SaveBaseline(ctx context.Context, snapshot models.Snapshot) error {
	raw, err := json.Marshal(struct {
		Collections  map[string][]models.Record `json:"collections"`
		LastModified int64                      `json:"lastModified"`
		Version      int                        `json:"version"`
	}{snapshot.Collections, snapshot.LastModified, snapshot.Version})
	if err != nil {
		return fmt.Errorf("encode baseline: %w", err)
	}

	return s.putMeta(ctx, metaKeyBaseline, string(raw))
}

func (s *sqliteStore) RemoteRef(ctx context.Context) (models.RemoteFileRef, bool, error) {
	raw, ok, err := s.getMeta(ctx, metaKeyRemoteRef)
	if err != nil || !ok {
		return models.RemoteFileRef{}, false, err
	}

	var ref models.RemoteFileRef
	if err = json.Unmarshal([]byte(raw), &ref); err != nil {
		return models.RemoteFileRef{}, false, fmt.Errorf("decode remote ref: %w", err)
	}
	return ref, true, nil
}

func (s *sqliteStore) SaveRemoteRef(ctx context.Context, ref models.RemoteFileRef) error {
	raw, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("encode remote ref: %w", err)
	}
	return s.putMeta(ctx, metaKeyRemoteRef, string(raw))
}

func (s *sqliteStore) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("%w: clear records: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM meta"); err != nil {
		return fmt.Errorf("%w: clear meta: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	s.logger.Debug().Msg("local cache cleared")
	return nil
}

// notifyWatermark reads the fresh watermark and hands it to every registered
// observer on the calling goroutine, keeping "mutation happened" and "observer
// saw it" in one synchronous sequence.
func (s *sqliteStore) notifyWatermark(ctx context.Context) {
	watermark, err := s.Watermark(ctx)
	if err != nil {
		s.logger.Err(err).Msg("watermark read after mutation failed")
		return
	}

	s.mu.Lock()
	callbacks := make([]func(int64), 0, len(s.observers))
	for _, fn := range s.observers {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(watermark)
	}
}

func (s *sqliteStore) getMeta(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildSelectMetaQuery(key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (s *sqliteStore) putMeta(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertMetaQuery(key, value)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func upsertRecordTx(ctx context.Context, tx *sql.Tx, collection string, rec models.Record) error {
	fieldsJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("encode fields of %s/%s: %w", collection, rec.ID, err)
	}

	query, args, err := buildUpsertRecordQuery(collection, rec.ID, string(fieldsJSON), rec.UpdatedAt, rec.Deleted)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func isKnownCollection(collection string) bool {
	return slices.Contains(models.CollectionNames(), collection)
}
