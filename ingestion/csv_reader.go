package ingestion

import (
	"comment-lab/domain"
	"comment-lab/domain/mimetypes"
	"comment-lab/errors"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	CommentColumn = "comment_text"
	byteOrderMark = "\ufeff"
)

// CSVReader loads comments from a delimited file with a header row.
type CSVReader struct {
	log    *slog.Logger
	column string
}

func NewCSVReader(log *slog.Logger) *CSVReader {
	return &CSVReader{log: log, column: CommentColumn}
}

// ReadComments fails with errors.ErrIngestion when the file cannot be used at all.
// Rows that cannot be parsed are kept as empty comments so ids stay aligned with row numbers.
func (r *CSVReader) ReadComments(path string) ([]domain.Comment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrIngestion, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", errors.ErrIngestion, path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s is empty, no %q header", errors.ErrMissingColumn, path, r.column)
	}

	kind, err := detectTabular(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrIngestion, err)
	}
	defer f.Close()

	r.log.Debug("Reading comments", "path", path, "mime", kind)
	return r.read(f, mimetypes.Delimiter(kind))
}

// read keeps quoting strict so a malformed row fails on its own line and reading resumes after it.
func (r *CSVReader) read(in io.Reader, delimiter rune) ([]domain.Comment, error) {
	reader := csv.NewReader(in)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header row", errors.ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", errors.ErrIngestion, err)
	}

	idx := columnIndex(header, r.column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q not in %v", errors.ErrMissingColumn, r.column, header)
	}

	comments := make([]domain.Comment, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		id := len(comments)
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: row %d: %w", errors.ErrIngestion, id, err)
			}
			r.log.Warn("Malformed row replaced by an empty comment", "row", id, "err", err)
			comments = append(comments, domain.Comment{ID: id})
			continue
		}
		text := ""
		if idx < len(record) {
			text = record[idx]
		}
		comments = append(comments, domain.Comment{ID: id, Text: text})
	}
	return comments, nil
}

// detectTabular rejects anything that is not text. TSV files get a tab delimiter.
func detectTabular(path string) (mimetypes.MIME, error) {
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return mimetypes.Unknown, fmt.Errorf("%w: %w", errors.ErrIngestion, err)
	}
	for m := detected; m != nil; m = m.Parent() {
		if _, ok := mimetypes.Matches(m.String(), mimetypes.TextPlain); ok {
			return mimetypes.ToMIME(detected.String()), nil
		}
	}
	return mimetypes.Unknown, fmt.Errorf("%w: %s is %s, not a text file", errors.ErrIngestion, path, detected.String())
}

func columnIndex(header []string, column string) int {
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, byteOrderMark))
		if strings.EqualFold(h, column) {
			return i
		}
	}
	return -1
}
