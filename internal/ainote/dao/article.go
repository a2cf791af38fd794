// Работа со статьями: модель Article с деревом документа, markdown-проекцией
// и HTML-телом, а также вложения статей в файловом хранилище.
package dao

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/apierrors"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/dto"
	filestorage "github.com/aisa-it/ainote/ainote.go/internal/ainote/file-storage"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/types"
)

// CurrentJSONVersion - версия схемы структурированного дерева документа.
const CurrentJSONVersion = 2

type Article struct {
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title  string         `json:"title" validate:"required,max=150"`
	Topics pq.StringArray `json:"topics" gorm:"type:text[]"`

	Markdown    string               `json:"markdown"`
	Content     types.RedactorHTML   `json:"content"`
	ContentJSON types.EditorDocument `json:"content_json"`
	JSONVersion int                  `json:"json_version" gorm:"default:2"`

	Draft bool `json:"draft"`

	Attachments []ArticleAttachment `json:"attachments" gorm:"foreignKey:ArticleId"`

	URL *url.URL `json:"-" gorm:"-"`
}

func (Article) TableName() string { return "articles" }

func (a *Article) AfterFind(tx *gorm.DB) error {
	a.SetUrl()
	return nil
}

func (a *Article) SetUrl() {
	if Config == nil || Config.WebURL == nil {
		return
	}
	ref, _ := url.Parse(fmt.Sprintf("/articles/%s", a.ID))
	a.URL = Config.WebURL.ResolveReference(ref)
}

// Вложения удаляются из хранилища вместе со статьей.
func (a *Article) BeforeDelete(tx *gorm.DB) error {
	var attachments []ArticleAttachment
	if err := tx.Where("article_id = ?", a.ID).Find(&attachments).Error; err != nil {
		return err
	}
	for _, attachment := range attachments {
		if err := tx.Delete(&attachment).Error; err != nil {
			return err
		}
	}
	return nil
}

func (a *Article) ToDTO() *dto.Article {
	if a == nil {
		return nil
	}
	a.SetUrl()

	articleDTO := dto.Article{
		ArticleLight: *a.ToLightDTO(),
		Markdown:     a.Markdown,
		Content:      a.Content,
		ContentJSON:  a.ContentJSON,
		JSONVersion:  a.JSONVersion,
	}

	for i := range a.Attachments {
		articleDTO.Attachments = append(articleDTO.Attachments, *a.Attachments[i].ToDTO())
	}

	return &articleDTO
}

// Преобразует Article в структуру ArticleLight для списков в API.
func (a *Article) ToLightDTO() *dto.ArticleLight {
	if a == nil {
		return nil
	}

	light := dto.ArticleLight{
		Id:        a.ID.String(),
		Title:     a.Title,
		Topics:    a.Topics,
		Draft:     a.Draft,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.URL != nil {
		light.Url = a.URL.String()
	}
	return &light
}

type ArticleAttachment struct {
	Id        uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ArticleId uuid.UUID `json:"article_id" gorm:"index;type:uuid"`

	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func (ArticleAttachment) TableName() string { return "article_attachments" }

func (a *ArticleAttachment) BeforeDelete(tx *gorm.DB) error {
	if FileStorage == nil {
		return nil
	}
	return FileStorage.Delete(a.Id)
}

func (a *ArticleAttachment) ToDTO() *dto.ArticleAttachment {
	if a == nil {
		return nil
	}
	attachmentDTO := dto.ArticleAttachment{
		Id:          a.Id.String(),
		Name:        a.Name,
		ContentType: a.ContentType,
		Size:        a.Size,
	}
	if Config != nil && Config.WebURL != nil {
		ref, _ := url.Parse(fmt.Sprintf("/api/attachments/%s", a.Id))
		attachmentDTO.Url = Config.WebURL.ResolveReference(ref).String()
	}
	return &attachmentDTO
}

// CreateArticle сохраняет новую статью.
func CreateArticle(db *gorm.DB, article *Article) error {
	if article.ID == uuid.Nil {
		article.ID = GenUUID()
	}
	article.JSONVersion = CurrentJSONVersion
	return db.Create(article).Error
}

// GetArticle возвращает статью по идентификатору вместе с вложениями.
func GetArticle(db *gorm.DB, id uuid.UUID) (*Article, error) {
	var article Article
	if err := db.Preload("Attachments").Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// UpdateArticle обновляет существующую статью. Отсутствующая статья - 404,
// частичное сохранение невозможно.
func UpdateArticle(db *gorm.DB, article *Article) error {
	result := db.Model(&Article{}).
		Where("id = ?", article.ID).
		Select("Title", "Topics", "Markdown", "Content", "ContentJSON", "JSONVersion", "Draft").
		Updates(article)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apierrors.ErrArticleNotFound
	}
	return nil
}

// DeleteArticle удаляет статью вместе с вложениями.
func DeleteArticle(db *gorm.DB, article *Article) error {
	return db.Delete(article).Error
}

// CleanOrphanAttachments удаляет из хранилища файлы, на которые не осталось
// записей вложений. Возвращает количество удаленных файлов.
func CleanOrphanAttachments(db *gorm.DB) (int, error) {
	removed := 0
	err := FileStorage.ListRoot(func(info filestorage.FileInfo) error {
		id, err := uuid.FromString(info.Name)
		if err != nil {
			// Чужие файлы в корне не трогаем
			return nil
		}

		var count int64
		if err := db.Model(&ArticleAttachment{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := FileStorage.Delete(id); err != nil {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

// SeedDemo наполняет пустую базу демонстрационной статьей. Повторный запуск
// на непустой базе ничего не меняет.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Article{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	article := Article{
		Title:    "Добро пожаловать в AINote",
		Topics:   pq.StringArray{"ainote"},
		Markdown: "Это демонстрационная статья. Откройте редактор и начните писать.",
		Content:  types.RedactorHTML{Body: "<p>Это демонстрационная статья. Откройте редактор и начните писать.</p>"},
	}
	return CreateArticle(db, &article)
}

// ArticleList возвращает страницу статей, новые сверху.
func ArticleList(db *gorm.DB, offset, limit int, drafts bool) ([]Article, int64, error) {
	query := db.Model(&Article{})
	if !drafts {
		query = query.Where("draft = ?", false)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var articles []Article
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, count, nil
}
