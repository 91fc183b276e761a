// Package scraper fetches a team's CBS Sports schedule page and extracts the
// next game's raw cell values.
//
// The page layout is assumed to carry at least two "TableBase-table" tables, the
// second being the schedule. LocateScheduleRow is the only place that encodes this
// assumption.
package scraper
