package v1

import (
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func like(value string) string {
	return "%" + value + "%"
}

// textFilter restricts the query to rows where column contains value.
// A parameter that was sent with an empty value selects rows where the
// column is empty.
func textFilter(query *gorm.DB, column, value string, sent bool) *gorm.DB {
	if value != "" {
		return query.Where(column+" LIKE ?", like(value))
	}

	if sent {
		return query.Where(column + " = ''")
	}

	return query
}

// searchFilter matches rows where any of the columns contains search.
func searchFilter(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	conditions := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, column+" LIKE ?")
		args = append(args, like(search))
	}

	return query.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

// nameNoteFilters applies the name, note and search parameters shared by
// categories and budgets.
func nameNoteFilters(query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	query = textFilter(query, "name", name, slices.Contains(setFields, "Name"))
	query = textFilter(query, "note", note, slices.Contains(setFields, "Note"))
	return searchFilter(query, search, "name", "note")
}
