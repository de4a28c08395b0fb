package application_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/iotest"

	"github.com/saransh1220/photo-gateway/internal/mocks"
	"github.com/saransh1220/photo-gateway/internal/modules/gallery/application"
	"github.com/saransh1220/photo-gateway/internal/modules/gallery/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var dogKey = regexp.MustCompile(`^images/[0-9a-f-]{36}-dog\.jpg$`)

func TestGalleryService_Upload_Success(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 10)
	t.Cleanup(func() { files.AssertExpectations(t) })

	payload := bytes.Repeat([]byte{0xff}, 5*domain.BytesPerMB)
	files.On("UploadWithKey", mock.Anything, mock.MatchedBy(func(r *bytes.Reader) bool {
		return r.Size() == int64(len(payload))
	}), mock.MatchedBy(dogKey.MatchString), "image/jpeg").Return(nil).Once()

	key, err := svc.Upload(context.Background(), application.UploadRequest{
		Filename:    "dog.jpg",
		ContentType: "image/jpeg",
		Body:        bytes.NewReader(payload),
	})
	require.NoError(t, err)
	assert.Regexp(t, dogKey, key)
}

func TestGalleryService_Upload_DefaultContentType(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 1)
	t.Cleanup(func() { files.AssertExpectations(t) })

	files.On("UploadWithKey", mock.Anything, mock.Anything, mock.Anything, domain.DefaultContentType).Return(nil).Once()

	_, err := svc.Upload(context.Background(), application.UploadRequest{Filename: "a.png", Body: bytes.NewReader([]byte("x"))})
	require.NoError(t, err)
}

func TestGalleryService_Upload_UnsupportedType(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 10)

	for _, name := range []string{"notes.txt", "photo", ""} {
		_, err := svc.Upload(context.Background(), application.UploadRequest{Filename: name, Body: bytes.NewReader([]byte("x"))})
		assert.ErrorIs(t, err, domain.ErrUnsupportedType, name)
	}
	files.AssertNotCalled(t, "UploadWithKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGalleryService_Upload_SizeBoundary(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 1)
	t.Cleanup(func() { files.AssertExpectations(t) })

	files.On("UploadWithKey", mock.Anything, mock.Anything, mock.Anything, "image/png").Return(nil).Once()

	exact := bytes.Repeat([]byte("a"), domain.BytesPerMB)
	_, err := svc.Upload(context.Background(), application.UploadRequest{Filename: "a.png", ContentType: "image/png", Body: bytes.NewReader(exact)})
	require.NoError(t, err)

	over := bytes.Repeat([]byte("a"), domain.BytesPerMB+1)
	_, err = svc.Upload(context.Background(), application.UploadRequest{Filename: "a.png", ContentType: "image/png", Body: bytes.NewReader(over)})
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
}

func TestGalleryService_Upload_UnreadableBody(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 1)

	_, err := svc.Upload(context.Background(), application.UploadRequest{
		Filename: "a.png",
		Body:     iotest.ErrReader(errors.New("connection reset")),
	})
	assert.ErrorIs(t, err, domain.ErrUnreadableBody)
	files.AssertNotCalled(t, "UploadWithKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGalleryService_Upload_StorageError(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 1)
	t.Cleanup(func() { files.AssertExpectations(t) })

	cause := errors.New("AccessDenied")
	files.On("UploadWithKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cause).Once()

	_, err := svc.Upload(context.Background(), application.UploadRequest{Filename: "a.gif", Body: bytes.NewReader([]byte("x"))})
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, cause)
}

func TestGalleryService_Upload_SameNameDistinctKeys(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 1)
	files.On("UploadWithKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	k1, err := svc.Upload(context.Background(), application.UploadRequest{Filename: "cat.png", Body: bytes.NewReader([]byte("1"))})
	require.NoError(t, err)
	k2, err := svc.Upload(context.Background(), application.UploadRequest{Filename: "cat.png", Body: bytes.NewReader([]byte("2"))})
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
	files.AssertNumberOfCalls(t, "UploadWithKey", 2)
}

func TestGalleryService_ListURLs(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 10)
	t.Cleanup(func() { files.AssertExpectations(t) })

	files.On("ListKeys", mock.Anything, domain.KeyPrefix).Return([]string{"images/b.png", "images/a.png"}, nil).Once()
	files.On("GetPresignedURL", mock.Anything, "images/b.png", domain.PresignExpiry).Return("https://signed/b", nil).Once()
	files.On("GetPresignedURL", mock.Anything, "images/a.png", domain.PresignExpiry).Return("https://signed/a", nil).Once()

	urls, err := svc.ListURLs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://signed/b", "https://signed/a"}, urls, "store order is preserved")
}

func TestGalleryService_ListURLs_Empty(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 10)
	files.On("ListKeys", mock.Anything, domain.KeyPrefix).Return(nil, nil).Once()

	urls, err := svc.ListURLs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}

func TestGalleryService_ListURLs_Errors(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 10)
	files.On("ListKeys", mock.Anything, domain.KeyPrefix).Return(nil, errors.New("no such bucket")).Once()

	_, err := svc.ListURLs(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)

	files = new(mocks.MockFileService)
	svc = application.NewGalleryService(files, 10)
	files.On("ListKeys", mock.Anything, domain.KeyPrefix).Return([]string{"images/a.png"}, nil).Once()
	files.On("GetPresignedURL", mock.Anything, "images/a.png", domain.PresignExpiry).Return("", errors.New("sign")).Once()

	_, err = svc.ListURLs(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestGalleryService_PresignedURL(t *testing.T) {
	files := new(mocks.MockFileService)
	svc := application.NewGalleryService(files, 10)
	files.On("GetPresignedURL", mock.Anything, "images/x.png", domain.PresignExpiry).Return("https://signed/x", nil).Once()

	u, err := svc.PresignedURL(context.Background(), "images/x.png")
	require.NoError(t, err)
	assert.Equal(t, "https://signed/x", u)
	assert.Equal(t, 10, svc.MaxUploadMB())
}
