//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=../mocks/mock_report_repository.go -package=mocks
package repositories

import (
	"comment-lab/domain"
	"comment-lab/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const reportPrefix = "report:"

type IReportRepository interface {
	Store(run Run) error
	Get(id uuid.UUID) (Run, error)
	List(limit int) ([]Run, error)
}

// Run is one archived analysis. The embedding model is never stored.
type Run struct {
	ID             uuid.UUID
	At             time.Time
	Input          string
	Language       string
	VocabularySize int
	Iterations     int
	Report         domain.Report
}

type ReportRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewReportRepository(db *badger.DB, log *slog.Logger) *ReportRepository {
	return &ReportRepository{db: db, log: log}
}

type diskRun struct {
	ID             string           `json:"id"`
	At             int64            `json:"at"`
	Input          string           `json:"input"`
	Language       string           `json:"language"`
	VocabularySize int              `json:"vocabulary_size"`
	Iterations     int              `json:"iterations"`
	Clusters       map[int][]string `json:"clusters"`
	Good           int              `json:"good"`
	Bad            int              `json:"bad"`
}

// Store persists a run under "report:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps keys in chronological order and the uuid breaks ties.
// A second index entry "report_id:{uuid}" points back to the main key for Get.
func (r *ReportRepository) Store(run Run) error {
	key := reportKey(run)
	bytes, err := json.Marshal(fromRun(run))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), bytes); err != nil {
			return err
		}
		return txn.Set(idKey(run.ID), []byte(key))
	})
}

func (r *ReportRepository) Get(id uuid.UUID) (Run, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		pointer, err := txn.Get(idKey(id))
		if err != nil {
			return err
		}
		key, err := pointer.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Run{}, fmt.Errorf("%w: %s", errors.ErrReportNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}
	return decodeRun(raw)
}

// List returns the most recent runs first, at most limit of them (all when limit <= 0).
func (r *ReportRepository) List(limit int) ([]Run, error) {
	var raws [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(reportPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the highest possible timestamp, then walk backwards.
		seekKey := append([]byte(reportPrefix), []byte("9999999999999999999;")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(raws) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d reports reached", limit))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			raws = append(raws, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(raws))
	for _, raw := range raws {
		run, err := decodeRun(raw)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func reportKey(run Run) string {
	return fmt.Sprintf("%s%019d:%s", reportPrefix, run.At.UnixNano(), run.ID)
}

func idKey(id uuid.UUID) []byte {
	return []byte("report_id:" + id.String())
}

func decodeRun(raw []byte) (Run, error) {
	var disk diskRun
	if err := json.Unmarshal(raw, &disk); err != nil {
		return Run{}, err
	}
	return toRun(disk)
}

func fromRun(run Run) diskRun {
	return diskRun{
		ID:             run.ID.String(),
		At:             run.At.UnixNano(),
		Input:          run.Input,
		Language:       run.Language,
		VocabularySize: run.VocabularySize,
		Iterations:     run.Iterations,
		Clusters:       run.Report.PerClusterComments(),
		Good:           run.Report.GoodCount(),
		Bad:            run.Report.BadCount(),
	}
}

func toRun(disk diskRun) (Run, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return Run{}, err
	}
	return Run{
		ID:             id,
		At:             time.Unix(0, disk.At).UTC(),
		Input:          disk.Input,
		Language:       disk.Language,
		VocabularySize: disk.VocabularySize,
		Iterations:     disk.Iterations,
		Report:         domain.NewReport(disk.Clusters, disk.Good, disk.Bad),
	}, nil
}
