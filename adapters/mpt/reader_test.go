package mpt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eisview/internal/errors"
)

// writeMPT builds a minimal EC-Lab export: 63 preamble lines, a header row,
// then the given data rows. The preamble includes a Latin-1 byte to check the
// decoder tolerates the instrument's 8-bit metadata.
func writeMPT(t *testing.T, dir, name, header string, rows []string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("EC-Lab ASCII FILE\n")
	b.WriteString("Nb header lines : 64\n")
	for i := 2; i < HeaderSkipLines; i++ {
		if i == 10 {
			// Temperature line with a Latin-1 degree sign (0xB0).
			b.WriteString("Temperature : 25 \xb0C\n")
			continue
		}
		b.WriteString("metadata line\n")
	}
	b.WriteString(header + "\n")
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func validHeader() string {
	return strings.Join([]string{"freq/Hz", "Re(Z)/Ohm", "-Im(Z)/Ohm", "|Z|/Ohm"}, "\t")
}

func TestReaderParsesValidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeMPT(t, dir, "17153_trial_C01.mpt", validHeader(), []string{
		"1000\t12.5\t3.25\t12.9",
		"500\t13.0\t4.75\t13.8",
	})

	record, err := NewReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, "17153_trial_C01", record.Name)
	assert.Equal(t, "17153", record.LeadingID)
	require.Len(t, record.Points, 2)
	assert.Equal(t, 12.5, record.Points[0].ReZOhm)
	assert.Equal(t, 3.25, record.Points[0].NegImZOhm)
	assert.Equal(t, 13.0, record.Points[1].ReZOhm)
}

func TestReaderMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	header := strings.Join([]string{"freq/Hz", "Re(Z)/Ohm", "|Z|/Ohm"}, "\t")
	path := writeMPT(t, dir, "1_bad.mpt", header, []string{"1000\t12.5\t12.9"})

	_, err := NewReader(path).Read()
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileParseError, errors.GetCode(err))
}

func TestReaderSkipsUnparseableRows(t *testing.T) {
	dir := t.TempDir()
	path := writeMPT(t, dir, "2_mixed.mpt", validHeader(), []string{
		"1000\t12.5\t3.25\t12.9",
		"500\tXXX\t4.75\t13.8",
		"250\t14.0\t5.5\t15.0",
	})

	record, err := NewReader(path).Read()
	require.NoError(t, err)
	require.Len(t, record.Points, 2)
	assert.Equal(t, 12.5, record.Points[0].ReZOhm)
	assert.Equal(t, 14.0, record.Points[1].ReZOhm)
}

func TestReaderNoDataRows(t *testing.T) {
	dir := t.TempDir()
	path := writeMPT(t, dir, "3_empty.mpt", validHeader(), nil)

	_, err := NewReader(path).Read()
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileParseError, errors.GetCode(err))
}

func TestReaderTruncatedPreamble(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "4_short.mpt")
	require.NoError(t, os.WriteFile(path, []byte("only\ntwo lines\n"), 0644))

	_, err := NewReader(path).Read()
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileParseError, errors.GetCode(err))
}

func TestCellNameStripsExtension(t *testing.T) {
	r := NewReader("/data/txt/17153_trial_C01.mpt")
	assert.Equal(t, "17153_trial_C01", r.CellName())
}
