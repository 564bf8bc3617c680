package jobs

import (
	"github.com/wordbin/wordbin/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	importPool *worker.Pool
	importer   worker.StudySetImporter
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, importer worker.StudySetImporter) JobQueue {
	return &WorkerQueue{
		importPool: importPool,
		importer:   importer,
	}
}

func (q *WorkerQueue) EnqueueStudySetImport(userID int64, languageCode string, conceptIDs []string) error {
	q.importPool.Submit(&worker.StudySetImportJob{
		Importer:     q.importer,
		UserID:       userID,
		LanguageCode: languageCode,
		ConceptIDs:   conceptIDs,
	})
	return nil
}
