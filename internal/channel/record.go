// Package channel defines the channel listing row model and its CSV codec.
package channel

// Record is one row of a channel listing. Fields beyond ID, Name and URL are
// optional and default to empty. A Record is a read-only snapshot of a row:
// filters classify it, they never mutate it.
type Record struct {
	ID          string
	Name        string
	URL         string
	Category    string
	Group       string
	Description string
}

// Column positions in the listing table.
const (
	colID = iota
	colName
	colURL
	colCategory
	colGroup
	colDescription
)

// FromRow maps a raw CSV row onto a Record. Rows may carry fewer columns than
// expected; missing columns become empty strings.
func FromRow(row []string) Record {
	at := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	return Record{
		ID:          at(colID),
		Name:        at(colName),
		URL:         at(colURL),
		Category:    at(colCategory),
		Group:       at(colGroup),
		Description: at(colDescription),
	}
}
