package jobs

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueStudySetImport(userID int64, languageCode string, conceptIDs []string) error
}
