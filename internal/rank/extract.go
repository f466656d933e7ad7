package rank

import (
	"sort"
	"strconv"

	"toplist/internal/table"
	"toplist/internal/traits"
)

// RankColumn is the label of the prepended position column.
const RankColumn = "Rang"

// Table is the projected, ranked output for one breed and one trait:
// [RankColumn, descriptive columns..., trait display name].
type Table struct {
	Columns []string
	Rows    [][]string
}

// Result marks whether a breed has data for a trait at all. A breed file
// without the trait column yields Present == false; an empty but present
// column still counts as present.
type Result struct {
	Present bool
	Table   Table
}

// Extract ranks tbl descending by the given trait, keeps the first topN rows,
// projects onto the descriptive columns plus the trait, and prepends a
// 1-based rank. The sort is stable, so ties keep their file order. Rows whose
// trait value does not parse as a number sort last. The input table is not
// modified.
func Extract(tbl *table.Table, trait string, descCols []string, topN int, names *traits.NameMap) Result {
	if !tbl.HasColumn(trait) {
		return Result{}
	}

	keys := make([]float64, tbl.Len())
	order := make([]int, tbl.Len())
	for i, row := range tbl.Rows {
		keys[i] = table.SortValue(row[trait])
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] > keys[order[b]]
	})

	k := topN
	if k > len(order) {
		k = len(order)
	}
	if k < 0 {
		k = 0
	}

	cols := make([]string, 0, len(descCols)+2)
	cols = append(cols, RankColumn)
	cols = append(cols, descCols...)
	cols = append(cols, names.Lookup(trait))

	rows := make([][]string, 0, k)
	for r := 0; r < k; r++ {
		src := tbl.Rows[order[r]]
		row := make([]string, 0, len(cols))
		row = append(row, strconv.Itoa(r+1))
		for _, c := range descCols {
			row = append(row, src[c])
		}
		row = append(row, src[trait])
		rows = append(rows, row)
	}

	return Result{Present: true, Table: Table{Columns: cols, Rows: rows}}
}
