package model

import "time"

// Category classifies a product into one of the storefront's fixed groups.
type Category string

const (
	CategoryMen     Category = "men"
	CategoryWomen   Category = "women"
	CategoryPack    Category = "pack"
	CategoryGiftBox Category = "gift-box"
)

// ValidCategories lists every accepted product category.
var ValidCategories = []Category{CategoryMen, CategoryWomen, CategoryPack, CategoryGiftBox}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Seasons holds a four-axis seasonal suitability score, 0-100 per season.
type Seasons struct {
	Winter int `json:"winter"`
	Spring int `json:"spring"`
	Summer int `json:"summer"`
	Fall   int `json:"fall"`
}

// DefaultSeasons is applied to standard products that have no stored score.
func DefaultSeasons() *Seasons {
	return &Seasons{Winter: 50, Spring: 50, Summer: 50, Fall: 50}
}

// ThemeConfig is the structured styling configuration for pack product pages.
type ThemeConfig struct {
	Colors     ThemeColors     `json:"colors"`
	Typography ThemeTypography `json:"typography"`
	Visuals    ThemeVisuals    `json:"visuals"`
	Content    ThemeContent    `json:"content"`
}

// ThemeColors holds the colour palette of a themed pack page.
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	ButtonBg   string `json:"buttonBg"`
	ButtonText string `json:"buttonText"`
	CardBg     string `json:"cardBg"`
}

// ThemeTypography holds font settings of a themed pack page.
type ThemeTypography struct {
	FontFamily  string `json:"fontFamily"`
	HeadingSize string `json:"headingSize"`
	BodySize    string `json:"bodySize"`
}

// ThemeVisuals holds visual treatment settings of a themed pack page.
type ThemeVisuals struct {
	BackgroundImage string  `json:"backgroundImage,omitempty"`
	OverlayOpacity  float64 `json:"overlayOpacity"`
	ButtonShape     string  `json:"buttonShape"`
	GradientOverlay bool    `json:"gradientOverlay"`
}

// ThemeContent holds marketing copy of a themed pack page.
type ThemeContent struct {
	Tagline         string   `json:"tagline,omitempty"`
	CtaText         string   `json:"ctaText,omitempty"`
	CountdownTarget string   `json:"countdownTarget,omitempty"`
	Features        []string `json:"features,omitempty"`
}

// Product represents a perfume, pack or gift box in the catalogue.
//
// Which optional fields are meaningful depends on the category: notes and
// seasons belong to standard products, theme and themeConfig to packs. The
// shape does not enforce this; the write path does.
type Product struct {
	ID            string       `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Brand         string       `json:"brand" db:"brand"`
	Price         float64      `json:"price" db:"price"`
	OriginalPrice *float64     `json:"originalPrice,omitempty" db:"original_price"`
	Images        []string     `json:"images" db:"images"`
	Tag           *string      `json:"tag,omitempty" db:"tag"`
	Category      Category     `json:"category" db:"category"`
	Description   *string      `json:"description,omitempty" db:"description"`
	Notes         []string     `json:"notes,omitempty" db:"notes"`
	Seasons       *Seasons     `json:"seasons,omitempty" db:"seasons"`
	Theme         *string      `json:"theme,omitempty" db:"theme"`
	ThemeConfig   *ThemeConfig `json:"themeConfig,omitempty" db:"theme_config"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
}

// IsPack reports whether the product belongs to the pack management surface.
func (p *Product) IsPack() bool {
	return p.Category == CategoryPack
}
