// server/internal/models/article.go
package models

// EducationalArticle is a piece of recycling guidance. Slug is meant to be
// unique but nothing enforces it.
type EducationalArticle struct {
	Title         string   `bson:"title" json:"title" binding:"required"`
	Slug          string   `bson:"slug" json:"slug" binding:"required"`
	Excerpt       string   `bson:"excerpt" json:"excerpt" binding:"required"`
	Content       string   `bson:"content" json:"content" binding:"required"`
	Tags          []string `bson:"tags" json:"tags"`
	CoverImageURL *string  `bson:"cover_image_url" json:"cover_image_url"`
}

func (EducationalArticle) CollectionName() string { return EducationalArticleCollection }

func (a *EducationalArticle) Normalize() {
	a.Tags = emptyIfNil(a.Tags)
}
