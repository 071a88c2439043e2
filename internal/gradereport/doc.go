// Package gradereport extracts grade entries from an HTML grade report page.
//
// A page holds one report table identified by its class list. Each body row
// of that table becomes a domain.GradeEntry or is rejected with one of the
// row-level sentinel errors from package domain.
package gradereport
