package models

import (
	"time"
)

// Achievement is a milestone card in the achievements section.
type Achievement struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Icon        string    `json:"icon" gorm:"default:'trophy'"`
	Category    string    `json:"category" gorm:"default:'fitness'"`
	Year        string    `json:"year"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AchievementRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Year        string `json:"year"`
	SortOrder   int    `json:"sort_order"`
}

type FAQ struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Question  string    `json:"question" gorm:"not null"`
	Answer    string    `json:"answer" gorm:"not null"`
	Category  string    `json:"category" gorm:"default:'general'"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FAQRequest struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

// Review is a client testimonial. Featured reviews lead the carousel.
type Review struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ClientName  string    `json:"client_name" gorm:"not null"`
	Designation string    `json:"designation"`
	Review      string    `json:"review" gorm:"not null"`
	Rating      int       `json:"rating" gorm:"default:5"`
	AvatarURL   string    `json:"avatar_url"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReviewRequest struct {
	ClientName  string `json:"client_name" validate:"required"`
	Designation string `json:"designation"`
	Review      string `json:"review" validate:"required"`
	Rating      int    `json:"rating" validate:"gte=1,lte=5"`
	AvatarURL   string `json:"avatar_url"`
	Featured    bool   `json:"featured"`
	SortOrder   int    `json:"sort_order"`
}

type Video struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	Platform  string    `json:"platform" gorm:"default:'youtube'"`
	Thumbnail string    `json:"thumbnail"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VideoRequest struct {
	Title     string `json:"title" validate:"required"`
	URL       string `json:"url" validate:"required,url"`
	Platform  string `json:"platform"`
	Thumbnail string `json:"thumbnail"`
	SortOrder int    `json:"sort_order"`
}

// GalleryPhoto holds the public URL of an uploaded image; the binary lives in
// object storage and is only best-effort removed on delete.
type GalleryPhoto struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Src       string    `json:"src" gorm:"not null"`
	Category  string    `json:"category" gorm:"default:'fitness'"`
	Alt       string    `json:"alt"`
	Pinned    bool      `json:"pinned" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GalleryPhotoPatch struct {
	Category *string `json:"category"`
	Alt      *string `json:"alt"`
	Pinned   *bool   `json:"pinned"`
}

type InstagramPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"not null"`
	Type      string    `json:"type" gorm:"default:'post'"`
	Caption   string    `json:"caption"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Transformation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ClientName  string    `json:"client_name"`
	Description string    `json:"description"`
	BeforeImage string    `json:"before_image" gorm:"not null"`
	AfterImage  string    `json:"after_image" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BlogPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content" gorm:"not null"`
	Category  string    `json:"category" gorm:"default:'fitness'"`
	Image     string    `json:"image"`
	Published bool      `json:"published" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Slug      string `json:"slug" validate:"required"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" validate:"required"`
	Category  string `json:"category"`
	Published bool   `json:"published"`
}
