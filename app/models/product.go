package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryEbook    Category = "eBook"
	CategoryCourse   Category = "Course"
	CategoryTemplate Category = "Template"
	CategoryTool     Category = "Tool"
)

var Categories = []Category{CategoryEbook, CategoryCourse, CategoryTemplate, CategoryTool}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Review struct {
	ID         string `json:"id"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
}

type Product struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	Category        Category        `json:"category"`
	Rating          float64         `json:"rating"`
	ReviewsCount    int             `json:"reviewsCount"`
	Image           string          `json:"image"`
	Features        []string        `json:"features"`
	LongDescription string          `json:"longDescription"`
	FileSize        string          `json:"fileSize"`
	Reviews         []Review        `json:"reviews"`
	DownloadURL     string          `json:"downloadUrl,omitempty"`
	Author          string          `json:"author,omitempty"`
	PageCount       int             `json:"pageCount,omitempty"`
}
