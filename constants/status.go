package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusTextOK  JobStatus = "TEXT_OK"  // stage 1 completed (page text extracted)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (invoice structure extracted)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)

// JobStatusValues enumerates the storable status strings.
var JobStatusValues = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusTextOK),
	string(JobStatusParseOK),
	string(JobStatusFailed),
}
