package report_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"toplist/internal/rank"
	"toplist/internal/report"
	"toplist/internal/traits"
)

// twoBreedAggregate builds the reference scenario: BV with 12 rows for every
// trait, OB with 5 rows for GZW and ND only; LBE exists only for BV.
func twoBreedAggregate(t *testing.T) (*rank.Aggregate, *traits.NameMap) {
	t.Helper()
	dir := t.TempDir()

	write := func(name string, traitCols []string, rows int) string {
		var b strings.Builder
		b.WriteString("Name;Lebensnummer;Anbieter;" + strings.Join(traitCols, ";") + "\n")
		for i := 0; i < rows; i++ {
			b.WriteString(fmt.Sprintf("Tier%d;AT %d;Hof", i+1, i+1))
			for range traitCols {
				b.WriteString(fmt.Sprintf(";%d,5", 150-i))
			}
			b.WriteString("\n")
		}
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
		return path
	}

	bv := write("bv.csv", []string{"GZW", "ND", "LBE"}, 12)
	ob := write("ob.csv", []string{"GZW", "ND"}, 5)

	traitIDs := []string{"GZW", "ND", "LBE"}
	names := traits.BuildDefault(traitIDs)
	names.Override("GZW", "Gesamtzuchtwert")

	agg, err := rank.Run([]rank.BreedSpec{
		{Breed: "BV", Path: bv, TopN: 12},
		{Breed: "OB", Path: ob, TopN: 5},
	}, traitIDs, []string{"Name", "Lebensnummer"}, ';', names)
	require.NoError(t, err)
	return agg, names
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestWriteWorkbookLayout(t *testing.T) {
	agg, names := twoBreedAggregate(t)
	out := filepath.Join(t.TempDir(), "topliste.xlsx")

	require.NoError(t, report.Write(agg, names, out))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	// one sheet per trait, in trait order
	assert.Equal(t, []string{"GZW", "ND", "LBE"}, f.GetSheetList())

	// heading carries the display name
	assert.Equal(t, "Gesamtzuchtwert", cell(t, f, "GZW", "A1"))
	assert.Equal(t, "ND", cell(t, f, "ND", "A1"))

	// BV block: label at row 3, header at 4, data 5..16
	assert.Equal(t, "BV", cell(t, f, "GZW", "A3"))
	assert.Equal(t, "Rang", cell(t, f, "GZW", "A4"))
	assert.Equal(t, "Name", cell(t, f, "GZW", "B4"))
	assert.Equal(t, "Gesamtzuchtwert", cell(t, f, "GZW", "D4"))
	assert.Equal(t, "1", cell(t, f, "GZW", "A5"))
	assert.Equal(t, "Tier1", cell(t, f, "GZW", "B5"))
	assert.Equal(t, "12", cell(t, f, "GZW", "A16"))

	// OB label lands at BV label + 12 rows + 3
	assert.Equal(t, "OB", cell(t, f, "GZW", "A18"))
	assert.Equal(t, "", cell(t, f, "GZW", "A17"))
	assert.Equal(t, "Rang", cell(t, f, "GZW", "A19"))
	assert.Equal(t, "5", cell(t, f, "GZW", "A24"))
}

func TestWriteSkipsAbsentBreeds(t *testing.T) {
	agg, names := twoBreedAggregate(t)
	out := filepath.Join(t.TempDir(), "topliste.xlsx")

	require.NoError(t, report.Write(agg, names, out))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	// LBE exists only for BV: one block, no gap or placeholder for OB
	assert.Equal(t, "BV", cell(t, f, "LBE", "A3"))
	assert.Equal(t, "12", cell(t, f, "LBE", "A16"))
	assert.Equal(t, "", cell(t, f, "LBE", "A18"))

	rows, err := f.GetRows("LBE")
	require.NoError(t, err)
	for _, row := range rows {
		for _, v := range row {
			assert.NotEqual(t, "OB", v)
		}
	}
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	agg, names := twoBreedAggregate(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "topliste.xlsx")

	require.NoError(t, report.Write(agg, names, out))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "topliste.xlsx", entries[0].Name())
}
