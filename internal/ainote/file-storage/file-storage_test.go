package filestorage

import (
	"io"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) FileStorage {
	t.Helper()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func TestLocalStorageSaveLoad(t *testing.T) {
	storage := newTestStorage(t)
	name := uuid.Must(uuid.NewV4())
	payload := "attachment body"

	err := storage.SaveReader(strings.NewReader(payload), int64(len(payload)), name, "text/plain", &Metadata{ArticleId: "a1"})
	require.NoError(t, err)

	reader, err := storage.LoadReader(name)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, payload, string(data))
}

func TestLocalStorageGetFileInfo(t *testing.T) {
	storage := newTestStorage(t)
	name := uuid.Must(uuid.NewV4())

	err := storage.SaveReader(strings.NewReader("12345"), 5, name, "application/octet-stream", nil)
	require.NoError(t, err)

	info, err := storage.GetFileInfo(name)
	require.NoError(t, err)
	require.Equal(t, name.String(), info.Name)
	require.EqualValues(t, 5, info.Size)

	_, err = storage.GetFileInfo(uuid.Must(uuid.NewV4()))
	require.Error(t, err)
}

func TestLocalStorageListRoot(t *testing.T) {
	storage := newTestStorage(t)
	first := uuid.Must(uuid.NewV4())
	second := uuid.Must(uuid.NewV4())

	require.NoError(t, storage.SaveReader(strings.NewReader("a"), 1, first, "", nil))
	require.NoError(t, storage.SaveReader(strings.NewReader("bb"), 2, second, "", nil))

	seen := map[string]int64{}
	err := storage.ListRoot(func(info FileInfo) error {
		seen[info.Name] = info.Size
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	require.EqualValues(t, 1, seen[first.String()])
	require.EqualValues(t, 2, seen[second.String()])
}

func TestLocalStorageDelete(t *testing.T) {
	storage := newTestStorage(t)
	name := uuid.Must(uuid.NewV4())

	require.NoError(t, storage.SaveReader(strings.NewReader("x"), 1, name, "", nil))
	require.NoError(t, storage.Delete(name))

	_, err := storage.LoadReader(name)
	require.Error(t, err)
}
