// Package report renders assertion failures for display. It formats one
// failure at a time; collecting or aggregating results is the harness's job.
package report
