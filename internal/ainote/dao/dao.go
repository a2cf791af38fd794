// DAO (Data Access Object) - предоставляет интерфейс для взаимодействия с базой данных.  Содержит функции для работы со статьями и их вложениями.  Обеспечивает абстракцию от конкретной реализации базы данных и упрощает доступ к данным приложения.
//
// Основные возможности:
//   - Работа со статьями (создание, обновление, получение, удаление).
//   - Доступ к вложениям статей (сохранение, удаление, получение).
//   - Генерация идентификаторов.
package dao

import (
	"github.com/gofrs/uuid"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/config"
	filestorage "github.com/aisa-it/ainote/ainote.go/internal/ainote/file-storage"
)

// GenUUID генерирует уникальный идентификатор в формате UUID. Не принимает параметров и возвращает UUID.
func GenUUID() uuid.UUID {
	u2, _ := uuid.NewV4()
	return u2
}

var Config *config.Config
var FileStorage filestorage.FileStorage
