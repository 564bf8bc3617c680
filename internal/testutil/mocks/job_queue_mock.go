package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueStudySetImport(userID int64, languageCode string, conceptIDs []string) error {
	args := m.Called(userID, languageCode, conceptIDs)
	return args.Error(0)
}
