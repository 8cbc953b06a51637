package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// SortColumn names a sortable ingredients table column
type SortColumn string

const (
	ColumnName     SortColumn = "name"
	ColumnCategory SortColumn = "category"
	ColumnUnit     SortColumn = "unit"
	ColumnPrice    SortColumn = "pricePerUnit"
)

// SortDirection is ascending or descending
type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// SortDescriptor selects the column and direction of the ingredients table
type SortDescriptor struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort is name ascending
func DefaultSort() SortDescriptor {
	return SortDescriptor{Column: ColumnName, Direction: Ascending}
}

// ParseSort reads query values. An empty column keeps the default; an
// unknown column is kept and leaves rows in input order.
func ParseSort(column, direction string) SortDescriptor {
	d := DefaultSort()
	if c := strings.TrimSpace(column); c != "" {
		d.Column = SortColumn(c)
	}
	if strings.EqualFold(strings.TrimSpace(direction), string(Descending)) {
		d.Direction = Descending
	}
	return d
}

// sortValue is one cell: text, a number, or absent
type sortValue struct {
	text    string
	num     float64
	numeric bool
	absent  bool
}

func valueOf(item domain.Ingredient, column SortColumn) (sortValue, bool) {
	switch column {
	case ColumnName:
		return sortValue{text: item.Name}, true
	case ColumnCategory:
		return sortValue{text: item.Category.Label()}, true
	case ColumnUnit:
		return sortValue{text: item.Unit.Label()}, true
	case ColumnPrice:
		if item.PricePerUnit == nil {
			return sortValue{absent: true}, true
		}
		return sortValue{num: *item.PricePerUnit, numeric: true}, true
	default:
		return sortValue{}, false
	}
}

// SortIngredients returns a stably sorted copy. Absent values go last in
// both directions; text compares locale-aware and case-insensitively.
func SortIngredients(items []domain.Ingredient, d SortDescriptor) []domain.Ingredient {
	out := append(make([]domain.Ingredient, 0, len(items)), items...)
	if _, known := valueOf(domain.Ingredient{}, d.Column); !known {
		return out
	}

	values := make([]sortValue, len(out))
	for i, it := range out {
		values[i], _ = valueOf(it, d.Column)
	}

	// a Collator keeps buffers, so one per sort
	col := collate.New(language.Und, collate.IgnoreCase)
	desc := d.Direction == Descending

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := values[idx[i]], values[idx[j]]
		switch {
		case a.absent && b.absent:
			return false
		case a.absent:
			return false
		case b.absent:
			return true
		}
		c := compare(col, a, b)
		if desc {
			c = -c
		}
		return c < 0
	})

	sorted := make([]domain.Ingredient, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}

func compare(col *collate.Collator, a, b sortValue) int {
	if a.numeric && b.numeric {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	}
	return col.CompareString(a.text, b.text)
}
