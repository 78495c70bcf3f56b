package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying run failures
var (
	// ErrTagConfig marks fatal configuration errors raised before any
	// network call
	ErrTagConfig = goerr.NewTag("invalid_config")

	// ErrTagFetch marks transport or HTTP failures during pagination;
	// fatal to the run, no partial output
	ErrTagFetch = goerr.NewTag("fetch_failed")

	// ErrTagNotify marks Slack delivery failures; non-fatal, the run
	// still produces console and file output
	ErrTagNotify = goerr.NewTag("notify_failed")
)
