package main

import (
	"comment-lab/internal"
	"comment-lab/repositories"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
)

// storage holds the optional archive and index. A field stays nil when its path is empty.
type storage struct {
	log     *slog.Logger
	reports repositories.IReportRepository
	index   repositories.ICommentIndex
	closers []func() error
}

func openStorage(config internal.Config, log *slog.Logger) (*storage, error) {
	s := &storage{log: log}

	if config.BadgerFilepath != "" {
		options := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.ERROR)
		db, err := badger.Open(options)
		if err != nil {
			return nil, fmt.Errorf("database opening failed: %w", err)
		}
		s.reports = repositories.NewReportRepository(db, log)
		s.closers = append(s.closers, func() error {
			log.Debug("Closing BadgerDB...")
			return db.Close()
		})
	}

	if config.BlugeFilepath != "" {
		writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to open bluge writer: %w", err)
		}
		s.index = repositories.NewCommentIndex(writer, log)
		s.closers = append(s.closers, func() error {
			log.Debug("Closing Bluge...")
			return writer.Close()
		})
	}
	return s, nil
}

// Close releases the stores in reverse opening order.
func (s *storage) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
