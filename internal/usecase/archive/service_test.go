package archive

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/adapter/repository"
	"github.com/johnquangdev/lti-omt/internal/usecase/export"
)

type fakeStore struct {
	objects map[string][]byte
	fail    error
}

func (f *fakeStore) Upload(_ context.Context, objectName string, content []byte, _ string) error {
	if f.fail != nil {
		return f.fail
	}
	f.objects[objectName] = content
	return nil
}

func (f *fakeStore) PresignedURL(_ context.Context, objectName string) (string, error) {
	return "https://archive.test/" + objectName, nil
}

func TestObjectName(t *testing.T) {
	name := ObjectName("LTI_OMT_Meeting_System_2024-03-01.pdf", time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(name, "exports/2024/03/01/"))
	assert.True(t, strings.HasSuffix(name, "-LTI_OMT_Meeting_System_2024-03-01.pdf"))
}

func TestArchiveAndList(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{objects: map[string][]byte{}}
	svc := NewArchiveService(store, repository.NewMemoryArchiveRepository(), zap.NewNop())

	record, err := svc.Archive(ctx, &export.Artifact{
		Filename:    "a.pdf",
		ContentType: export.ContentTypePDF,
		Content:     []byte("%PDF-1.3"),
		MeetingDate: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), record.SizeBytes)
	assert.Contains(t, store.objects, record.ObjectName)

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "https://archive.test/"+record.ObjectName, list[0].URL)
}

func TestArchive_UploadFailure(t *testing.T) {
	store := &fakeStore{objects: map[string][]byte{}, fail: errors.New("offline")}
	svc := NewArchiveService(store, repository.NewMemoryArchiveRepository(), zap.NewNop())

	_, err := svc.Archive(context.Background(), &export.Artifact{Filename: "a.pdf"})
	assert.Error(t, err)

	list, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
