// Пакет uploader координирует асинхронную загрузку файлов редактора:
// сохраняет порядок URL при пакетной загрузке и вставляет ноды по мере
// завершения отдельных загрузок.
package uploader

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// File - загружаемый файл.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadFunc загружает один файл и возвращает его URL.
type UploadFunc func(ctx context.Context, file File) (string, error)

// InsertFunc вставляет ноду с загруженным URL в документ.
type InsertFunc func(url string)

// Coordinator связывает загрузку файлов с вставкой нод в документ.
// Счетчик поколений отсекает вставки от загрузок, завершившихся после
// отсоединения документа.
type Coordinator struct {
	upload UploadFunc

	mu         sync.Mutex
	generation uint64
}

// New создает координатор над функцией загрузки.
func New(upload UploadFunc) *Coordinator {
	return &Coordinator{upload: upload}
}

// Upload загружает файлы параллельно и возвращает URL в порядке файлов.
// Ошибка любой загрузки отменяет остальные.
func (c *Coordinator) Upload(ctx context.Context, files []File) ([]string, error) {
	urls := make([]string, len(files))

	group, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		group.Go(func() error {
			url, err := c.upload(ctx, file)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// InsertAsync запускает загрузки в режиме fire-and-forget: каждая нода
// вставляется в момент завершения своей загрузки, порядок вставки
// определяется порядком завершения. Ошибки логируются и не прерывают
// остальные загрузки. Возвращает WaitGroup для детерминированных тестов.
func (c *Coordinator) InsertAsync(ctx context.Context, files []File, insert InsertFunc) *sync.WaitGroup {
	generation := c.currentGeneration()

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()

			url, err := c.upload(ctx, file)
			if err != nil {
				slog.Error("File upload failed", "file", file.Name, "err", err)
				return
			}

			// Документ мог быть отсоединен, пока шла загрузка.
			if !c.sameGeneration(generation) {
				slog.Warn("Stale upload dropped", "file", file.Name, "url", url)
				return
			}

			insert(url)
		}()
	}
	return &wg
}

// Detach отсоединяет документ: завершившиеся после этого загрузки
// не вставляют ноды.
func (c *Coordinator) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
}

func (c *Coordinator) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Coordinator) sameGeneration(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == generation
}
