package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eisview/adapters/mpt"
	"eisview/internal/config"
)

func writeInstrumentFile(t *testing.T, dir, name string, withImColumn bool) {
	t.Helper()

	var b strings.Builder
	for i := 0; i < mpt.HeaderSkipLines; i++ {
		b.WriteString("metadata line\n")
	}
	if withImColumn {
		b.WriteString("freq/Hz\tRe(Z)/Ohm\t-Im(Z)/Ohm\n")
		b.WriteString("1000\t10.0\t2.0\n")
		b.WriteString("500\t11.0\t3.0\n")
	} else {
		b.WriteString("freq/Hz\tRe(Z)/Ohm\n")
		b.WriteString("1000\t10.0\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0644))
}

func buildTestIndex(t *testing.T, dir string) *Index {
	t.Helper()
	ing := NewIngestor(config.DataConfig{Dir: dir, FileExt: ".mpt", IngestWorkers: 2}, nil)
	index, err := ing.BuildIndex(context.Background())
	require.NoError(t, err)
	return index
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	writeInstrumentFile(t, dir, "17153_trial_C01.mpt", true)
	writeInstrumentFile(t, dir, "17153_trial_C02.mpt", true)
	writeInstrumentFile(t, dir, "204_other_C01.mpt", true)
	writeInstrumentFile(t, dir, "99_missing_col.mpt", false)
	// Wrong extension, must not be scanned at all.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	index := buildTestIndex(t, dir)

	assert.Equal(t, 4, index.FilesFound)
	assert.Equal(t, 3, index.FilesLoaded)
	assert.Equal(t, []string{"99_missing_col.mpt"}, index.FailedFiles)
	assert.Equal(t, "17153_trial_C01", index.LargestIDCell)

	require.Contains(t, index.Cells, "204_other_C01")
	record := index.Cells["204_other_C01"]
	assert.Equal(t, "204", record.LeadingID)
	require.Len(t, record.Points, 2)
	assert.Equal(t, 10.0, record.Points[0].ReZOhm)
}

// Every indexed record carries at least one point; files that would produce
// an empty record fail instead of entering the index.
func TestBuildIndexRecordsNeverEmpty(t *testing.T) {
	dir := t.TempDir()
	writeInstrumentFile(t, dir, "12_ok_C01.mpt", true)

	var b strings.Builder
	for i := 0; i < mpt.HeaderSkipLines; i++ {
		b.WriteString("metadata line\n")
	}
	b.WriteString("freq/Hz\tRe(Z)/Ohm\t-Im(Z)/Ohm\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "13_no_rows.mpt"), []byte(b.String()), 0644))

	index := buildTestIndex(t, dir)

	assert.Equal(t, []string{"13_no_rows.mpt"}, index.FailedFiles)
	for _, record := range index.Cells {
		assert.NotEmpty(t, record.Points)
	}
}

// A non-numeric leading token still enters the index; it is only skipped for
// the largest-id diagnostic.
func TestBuildIndexNonNumericLeadingID(t *testing.T) {
	dir := t.TempDir()
	writeInstrumentFile(t, dir, "blank_reference.mpt", true)
	writeInstrumentFile(t, dir, "42_trial_C01.mpt", true)

	index := buildTestIndex(t, dir)

	assert.Equal(t, 2, index.FilesLoaded)
	assert.Contains(t, index.Cells, "blank_reference")
	assert.Equal(t, "42_trial_C01", index.LargestIDCell)
}

func TestBuildIndexEmptyDirectory(t *testing.T) {
	index := buildTestIndex(t, t.TempDir())

	assert.Equal(t, 0, index.FilesFound)
	assert.Equal(t, 0, index.FilesLoaded)
	assert.Empty(t, index.FailedFiles)
	assert.Empty(t, index.LargestIDCell)
}

func TestSummaries(t *testing.T) {
	dir := t.TempDir()
	writeInstrumentFile(t, dir, "7_trial_C01.mpt", true)
	writeInstrumentFile(t, dir, "7_trial_C02.mpt", true)

	index := buildTestIndex(t, dir)
	summaries := index.Summaries()

	require.Len(t, summaries, 2)
	assert.Equal(t, "7_trial_C01", summaries[0].Name)
	assert.Equal(t, "7_trial", summaries[0].LegendGroup)
	assert.Equal(t, 2, summaries[0].Points)
	assert.Equal(t, 10.0, summaries[0].ReZMin)
	assert.Equal(t, 11.0, summaries[0].ReZMax)
	assert.Equal(t, 10.5, summaries[0].ReZMean)
	assert.Equal(t, 2.0, summaries[0].NegImZMin)
	assert.Equal(t, 3.0, summaries[0].NegImZMax)
}
