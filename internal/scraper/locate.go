package scraper

import (
	"github.com/PuerkitoBio/goquery"
)

// TableClass is the class shared by the standings and schedule tables
const TableClass = "TableBase-table"

// LocateScheduleRow returns the first body row of the second TableBase-table on
// the page. The first such table is a standings summary and is always skipped.
func LocateScheduleRow(doc *goquery.Document) (*goquery.Selection, error) {
	tables := doc.Find("table." + TableClass)

	switch tables.Length() {
	case 0:
		return nil, notFound("no tables with class %q found on the page", TableClass)
	case 1:
		return nil, &StructureError{
			Err:    ErrAmbiguousStructure,
			Detail: "found 1 table with class \"" + TableClass + "\", but expected at least 2",
		}
	}

	schedule := tables.Eq(1)

	body := schedule.Find("tbody").First()
	if body.Length() == 0 {
		return nil, notFound("no <tbody> in the schedule table")
	}

	row := body.Find("tr").First()
	if row.Length() == 0 {
		return nil, notFound("no rows in the schedule table body")
	}

	return row, nil
}
