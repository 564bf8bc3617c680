package worker

import (
	"context"
	"fmt"
)

// StudySetImporter introduces concepts into a user's study set.
// This avoids import cycles by not importing the services package.
type StudySetImporter interface {
	IntroduceConcepts(ctx context.Context, userID int64, languageCode string, conceptIDs []string) (int, error)
}

// StudySetImportJob introduces a batch of concepts for one user and language.
type StudySetImportJob struct {
	Importer     StudySetImporter
	UserID       int64
	LanguageCode string
	ConceptIDs   []string
}

func (j *StudySetImportJob) Name() string {
	return fmt.Sprintf("study_set_import[user=%d,lang=%s]", j.UserID, j.LanguageCode)
}

func (j *StudySetImportJob) Run(ctx context.Context) error {
	_, err := j.Importer.IntroduceConcepts(ctx, j.UserID, j.LanguageCode, j.ConceptIDs)
	return err
}
