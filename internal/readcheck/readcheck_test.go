package readcheck

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"ngsclean/internal/design"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeReads(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeGzipReads(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(fh)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, fh.Close())
	return path
}

func pairedLinks(t *testing.T, dir, r1Content, r2Content string) []design.Link {
	t.Helper()
	r1 := writeGzipReads(t, dir, "S1.R1.fq.gz", r1Content)
	r2 := writeGzipReads(t, dir, "S1.R2.fq.gz", r2Content)
	table := design.NewTable(
		[]string{design.ColumnSampleID, design.ColumnUpstream, design.ColumnDownstream},
		[]design.Record{{SampleID: "S1", Upstream: r1, Downstream: r2}},
	)
	links, err := design.Links(table)
	require.NoError(t, err)
	return links
}

func TestInspect_Paired(t *testing.T) {
	dir := t.TempDir()
	links := pairedLinks(t, dir,
		"@read1/1\nACGTACGT\n+\nIIIIIIII\n@read2/1\nACGT\n+\nIIII\n",
		"@read1/2\nTTGCA\n+\nIIIII\n")

	reports, err := Inspect(context.Background(), links, Options{Workers: 2})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "S1_R1.fastq.gz", reports[0].Link.Staged)
	assert.Equal(t, "read1/1", reports[0].FirstRead)
	assert.Equal(t, 8, reports[0].Length)
	assert.Equal(t, "S1_R2.fastq.gz", reports[1].Link.Staged)
	assert.Equal(t, 5, reports[1].Length)

	assert.NoError(t, CheckPairs(reports))
}

func TestInspect_PlainFile(t *testing.T) {
	dir := t.TempDir()
	path := writeReads(t, dir, "S1.fq", "@r1 extra words\nACG\n+\nIII\n")
	links := []design.Link{{SampleID: "S1", Staged: "S1.fastq.gz", Source: path}}

	reports, err := Inspect(context.Background(), links, Options{})
	require.NoError(t, err)
	assert.Equal(t, "r1", reports[0].FirstRead)
	assert.Equal(t, 3, reports[0].Length)
}

func TestInspect_Failures(t *testing.T) {
	dir := t.TempDir()
	fasta := writeReads(t, dir, "S1.fa", ">r1\nACGT\n")
	good := writeReads(t, dir, "S2.fq", "@r1\nACG\n+\nIII\n")

	t.Run("missing file", func(t *testing.T) {
		links := []design.Link{
			{SampleID: "S2", Staged: "S2.fastq.gz", Source: good},
			{SampleID: "S3", Staged: "S3.fastq.gz", Source: filepath.Join(dir, "absent.fq")},
		}
		_, err := Inspect(context.Background(), links, Options{Workers: 4})
		var fe *FileError
		require.True(t, errors.As(err, &fe), "got %v", err)
		assert.Equal(t, "S3", fe.Link.SampleID)
	})

	t.Run("fasta", func(t *testing.T) {
		links := []design.Link{{SampleID: "S1", Staged: "S1.fastq.gz", Source: fasta}}
		_, err := Inspect(context.Background(), links, Options{})
		assert.True(t, errors.Is(err, ErrNotFastq), "got %v", err)
	})
}

func TestInspect_Cancelled(t *testing.T) {
	dir := t.TempDir()
	good := writeReads(t, dir, "S1.fq", "@r1\nACG\n+\nIII\n")
	links := []design.Link{{SampleID: "S1", Staged: "S1.fastq.gz", Source: good}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Inspect(ctx, links, Options{Workers: 1})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestInspect_Empty(t *testing.T) {
	reports, err := Inspect(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestCheckPairs_Mismatch(t *testing.T) {
	reports := []Report{
		{Link: design.Link{SampleID: "S1", Mate: design.UpstreamMate}, FirstRead: "readA/1"},
		{Link: design.Link{SampleID: "S1", Mate: design.DownstreamMate}, FirstRead: "readB/2"},
	}
	err := CheckPairs(reports)

	var mp *MatePairError
	require.True(t, errors.As(err, &mp), "got %v", err)
	assert.Equal(t, "S1", mp.SampleID)
}

func TestCheckPairs_IgnoresSingleEnd(t *testing.T) {
	reports := []Report{
		{Link: design.Link{SampleID: "S1"}, FirstRead: "a"},
		{Link: design.Link{SampleID: "S2"}, FirstRead: "b"},
	}
	assert.NoError(t, CheckPairs(reports))
}

func TestMateID(t *testing.T) {
	assert.Equal(t, "read1", mateID("read1/1"))
	assert.Equal(t, "read1", mateID("read1/2"))
	assert.Equal(t, "read1/3", mateID("read1/3"))
	assert.Equal(t, "A00123:8:H5:1:1101:1000:2000", mateID("A00123:8:H5:1:1101:1000:2000"))
}
