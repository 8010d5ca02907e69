// Package readcheck peeks into the raw read files a design points at, so a
// broken path or a FASTA file is caught before the pipeline is launched.
package readcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
	"golang.org/x/sync/errgroup"

	"ngsclean/internal/design"
)

var (
	// ErrNoReads is returned for a read file without any record.
	ErrNoReads = errors.New("no reads")
	// ErrNotFastq is returned when the first record carries no qualities.
	ErrNotFastq = errors.New("not a FASTQ file")
)

// Options configures Inspect.
type Options struct {
	// Workers bounds the number of files open at once. Values below 1 mean 1.
	Workers int
}

// Report describes the first read of one staged file.
type Report struct {
	Link      design.Link
	FirstRead string
	Length    int
}

// FileError ties an inspection failure to the design entry it came from.
type FileError struct {
	Link design.Link
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Link.Source, e.Link.Staged, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error { return e.Err }

// MatePairError reports R1/R2 files whose first reads do not belong together.
type MatePairError struct {
	SampleID string
	R1, R2   string
}

func (e *MatePairError) Error() string {
	return fmt.Sprintf("sample %q: first reads differ between mates (%s vs %s)", e.SampleID, e.R1, e.R2)
}

// Inspect reads the first record of every linked file. Reports come back in
// link order; the first failure cancels the remaining work.
func Inspect(ctx context.Context, links []design.Link, opts Options) ([]Report, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	reports := make([]Report, len(links))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id, length, err := firstRead(link.Source)
			if err != nil {
				return &FileError{Link: link, Err: err}
			}
			reports[i] = Report{Link: link, FirstRead: id, Length: length}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func firstRead(path string) (string, int, error) {
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return "", 0, err
	}
	defer reader.Close()

	record, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return "", 0, ErrNoReads
		}
		return "", 0, err
	}
	if len(record.Seq.Qual) == 0 {
		return "", 0, ErrNotFastq
	}
	return string(record.ID), len(record.Seq.Seq), nil
}

// CheckPairs verifies that the R1 and R2 files of each paired sample start with
// the same read. Reports of single-end links are ignored.
func CheckPairs(reports []Report) error {
	r1 := make(map[string]string)
	for _, r := range reports {
		if r.Link.Mate == design.UpstreamMate {
			r1[r.Link.SampleID] = r.FirstRead
		}
	}
	for _, r := range reports {
		if r.Link.Mate != design.DownstreamMate {
			continue
		}
		up, ok := r1[r.Link.SampleID]
		if !ok {
			continue
		}
		if mateID(up) != mateID(r.FirstRead) {
			return &MatePairError{SampleID: r.Link.SampleID, R1: up, R2: r.FirstRead}
		}
	}
	return nil
}

// mateID strips the legacy /1 and /2 mate suffixes.
func mateID(id string) string {
	if strings.HasSuffix(id, "/1") || strings.HasSuffix(id, "/2") {
		return id[:len(id)-2]
	}
	return id
}
