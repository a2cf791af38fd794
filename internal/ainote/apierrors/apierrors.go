// Пакет содержит определения ошибок, используемых в приложении ainote для обработки ситуаций, возникающих при работе со статьями, вложениями и embed-ресурсами.  Каждая ошибка имеет код, статус HTTP и описание, что позволяет удобно обрабатывать исключения и предоставлять информативные сообщения пользователю.
//
// Основные возможности:
//   - Определение типов ошибок, связанных со статьями, вложениями и embed-нодами.
//   - Предоставление кодов ошибок, соответствующих кодам HTTP статусов.
//   - Включение сообщений об ошибках для удобной обработки и отображения пользователю.
//   - Функция для форматирования сообщений об ошибках с использованием аргументов.
package apierrors

import (
	"fmt"
	"net/http"
	"strings"
)

type DefinedError struct {
	Code       int    `json:"code"`
	StatusCode int    `json:"-"`
	Err        string `json:"error"`
	RuErr      string `json:"ru_error,omitempty"`
}

func (e DefinedError) Error() string {
	return e.Err
}

var (
	// 1*** - article errors
	ErrArticleNotFound      = DefinedError{Code: 1001, StatusCode: http.StatusNotFound, Err: "article not found", RuErr: "Статья не найдена"}
	ErrArticleTitleRequired = DefinedError{Code: 1002, StatusCode: http.StatusBadRequest, Err: "article must have a title", RuErr: "Поле Заголовок не может быть пустым"}
	ErrArticleTitleTooLong  = DefinedError{Code: 1003, StatusCode: http.StatusBadRequest, Err: "article title is too long", RuErr: "Заголовок статьи слишком длинный"}
	ErrArticleBadContent    = DefinedError{Code: 1004, StatusCode: http.StatusBadRequest, Err: "invalid article content tree", RuErr: "Некорректное содержимое статьи"}
	ErrArticleBadID         = DefinedError{Code: 1005, StatusCode: http.StatusBadRequest, Err: "invalid article id", RuErr: "Некорректный идентификатор статьи"}

	// 2*** - attachment errors
	ErrAttachmentNotFound = DefinedError{Code: 2001, StatusCode: http.StatusNotFound, Err: "attachment not found", RuErr: "Вложение не найдено"}
	ErrAttachmentEmpty    = DefinedError{Code: 2002, StatusCode: http.StatusBadRequest, Err: "no files in upload request", RuErr: "Файлы для загрузки не переданы"}
	ErrAttachmentUpload   = DefinedError{Code: 2003, StatusCode: http.StatusInternalServerError, Err: "attachment upload failed", RuErr: "Не удалось загрузить вложение"}

	// 3*** - embed errors
	ErrEmbedBadURL       = DefinedError{Code: 3001, StatusCode: http.StatusBadRequest, Err: "invalid embed url", RuErr: "Некорректный URL для встраивания"}
	ErrEmbedNotResolved  = DefinedError{Code: 3002, StatusCode: http.StatusBadRequest, Err: "url cannot be embedded", RuErr: "Ссылка не поддерживает встраивание"}
	ErrEmbedBadService   = DefinedError{Code: 3003, StatusCode: http.StatusBadRequest, Err: "unknown embed service", RuErr: "Неизвестный сервис встраивания"}

	// 9*** - generic errors
	ErrGeneric = DefinedError{Code: 9000, StatusCode: http.StatusInternalServerError, Err: "internal server error", RuErr: "Внутренняя ошибка сервера"}
)

// Format подставляет аргументы в текст ошибки.
func (e DefinedError) Format(args ...interface{}) DefinedError {
	if strings.Contains(e.Err, "%") {
		e.Err = fmt.Sprintf(e.Err, args...)
	}
	if strings.Contains(e.RuErr, "%") {
		e.RuErr = fmt.Sprintf(e.RuErr, args...)
	}
	return e
}
