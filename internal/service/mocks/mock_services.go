package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"vocabapi/internal/model"
	"vocabapi/internal/service"
	"vocabapi/internal/storage"
)

type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Resolve(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) List(ctx context.Context, userID uuid.UUID, pp service.PageParams) ([]model.Folder, error) {
	args := m.Called(ctx, userID, pp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderService) Get(ctx context.Context, userID uuid.UUID, rawID string) (*model.Folder, error) {
	args := m.Called(ctx, userID, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Create(ctx context.Context, userID uuid.UUID, in model.FolderInput) (*model.Folder, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Update(ctx context.Context, userID uuid.UUID, rawID string, patch model.FolderPatch) (*model.Folder, error) {
	args := m.Called(ctx, userID, rawID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, userID uuid.UUID, rawID string, cascade bool) (int64, error) {
	args := m.Called(ctx, userID, rawID, cascade)
	return args.Get(0).(int64), args.Error(1)
}

type MockWordService struct {
	mock.Mock
}

func (m *MockWordService) Get(ctx context.Context, businessID string) (*model.Word, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockWordService) Create(ctx context.Context, in model.WordInput) (*model.Word, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockWordService) Update(ctx context.Context, businessID string, patch model.WordPatch) (*model.Word, error) {
	args := m.Called(ctx, businessID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, businessID string, in service.ImageUpload) (*model.ImageRef, error) {
	args := m.Called(ctx, businessID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImageRef), args.Error(1)
}

func (m *MockImageService) Fetch(ctx context.Context, businessID string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockImageService) Delete(ctx context.Context, businessID string) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}

type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) Add(ctx context.Context, userID uuid.UUID, rawFolderID, businessID string) (*model.Assignment, error) {
	args := m.Called(ctx, userID, rawFolderID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

func (m *MockAssignmentService) List(ctx context.Context, userID uuid.UUID, rawFolderID string, pp service.PageParams) ([]model.Assignment, error) {
	args := m.Called(ctx, userID, rawFolderID, pp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Assignment), args.Error(1)
}

func (m *MockAssignmentService) Remove(ctx context.Context, userID uuid.UUID, rawFolderID, businessID string) error {
	args := m.Called(ctx, userID, rawFolderID, businessID)
	return args.Error(0)
}
