package domain

import "time"

// ExportResult describes the outcome of writing one account's report file.
// Written is false for an empty report, which is a no-op and not an error.
type ExportResult struct {
	Path       string  `json:"path"`
	Rows       int     `json:"rows"`
	TotalSpend float64 `json:"total_spend"`
	Written    bool    `json:"written"`
}

// ReportRunSummary aggregates the outcome of one full report run across all
// processed accounts. Kept in memory for the status endpoint only.
type ReportRunSummary struct {
	RunID             string    `json:"run_id"`
	StartedAt         time.Time `json:"started_at"`
	CompletedAt       time.Time `json:"completed_at"`
	AccountsProcessed int       `json:"accounts_processed"`
	AccountsSkipped   int       `json:"accounts_skipped"`
	FilesWritten      int       `json:"files_written"`
	RowsExported      int       `json:"rows_exported"`
	Files             []string  `json:"files"`
	Errors            []string  `json:"errors"`
	EmailSent         bool      `json:"email_sent"`
}
