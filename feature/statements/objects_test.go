package statements

import (
	"context"
	"strings"
	"testing"
	"time"

	"mini-reconcile/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newObjectService(client *mocks.Client) *Service {
	return NewService(client, "statements", nil, zap.NewNop(), 0)
}

func TestEnsureBucket_AlreadyExists(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "statements").Return(true, nil)

	svc := newObjectService(client)
	require.NoError(t, svc.EnsureBucket(context.Background()))
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureBucket_Creates(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "statements").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "statements", mock.Anything).Return(nil)

	svc := newObjectService(client)
	require.NoError(t, svc.EnsureBucket(context.Background()))
	client.AssertExpectations(t)
}

func TestList(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "internal.csv", Size: 42}
	ch <- minio.ObjectInfo{Key: "provider.csv", Size: 64}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "statements", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	svc := newObjectService(client)
	objects, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, objects, 2)
	assert.Equal(t, ObjectInfo{Name: "internal.csv", Size: 42}, objects[0])
	assert.Equal(t, ObjectInfo{Name: "provider.csv", Size: 64}, objects[1])
}

func TestList_ObjectError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "statements", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	svc := newObjectService(client)
	_, err := svc.List(context.Background())
	require.Error(t, err)
}

func TestPut(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "statements", "internal.csv",
		mock.Anything, int64(len(statementCSV)), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newObjectService(client)
	info, err := svc.Put(context.Background(), "internal.csv", strings.NewReader(statementCSV))
	require.NoError(t, err)

	assert.Equal(t, "internal.csv", info.Name)
	assert.Equal(t, int64(len(statementCSV)), info.Size)
	client.AssertExpectations(t)
}

func TestPut_RejectsMalformedCSV(t *testing.T) {
	client := new(mocks.Client)

	svc := newObjectService(client)
	_, err := svc.Put(context.Background(), "broken.csv", strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	client.AssertNotCalled(t, "PutObject",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemove(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "statements", "old.csv", mock.Anything).Return(nil)

	svc := newObjectService(client)
	require.NoError(t, svc.Remove(context.Background(), "old.csv"))
	client.AssertExpectations(t)
}

func TestPut_InvalidatesCachedDataset(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "statements", "internal.csv", mock.Anything).
		Return(statementObject(), nil).Once()
	client.On("PutObject", mock.Anything, "statements", "internal.csv",
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("GetObject", mock.Anything, "statements", "internal.csv", mock.Anything).
		Return(statementObject(), nil).Once()

	svc := NewService(client, "statements", nil, zap.NewNop(), time.Minute)

	_, err := svc.FromObject(context.Background(), "internal.csv", LabelInternal)
	require.NoError(t, err)

	_, err = svc.Put(context.Background(), "internal.csv", strings.NewReader(statementCSV))
	require.NoError(t, err)

	// The cached dataset is gone, so the next load fetches again.
	_, err = svc.FromObject(context.Background(), "internal.csv", LabelInternal)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "GetObject", 2)
}
