package domain

import "time"

// Category groups products on the storefront.
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Product is a sellable item. Categories holds category slugs.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Categories  []string  `json:"categories" bson:"categories"`
	Images      []string  `json:"images,omitempty" bson:"images,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Blog is a storefront article. Categories holds blog category slugs.
type Blog struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Title      string    `json:"title" bson:"title"`
	Slug       string    `json:"slug" bson:"slug"`
	Content    string    `json:"content" bson:"content"`
	Image      string    `json:"image,omitempty" bson:"image,omitempty"`
	Categories []string  `json:"categories" bson:"categories"`
	IsActive   bool      `json:"is_active" bson:"is_active"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// BlogCategory groups blog articles.
type BlogCategory struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Slug      string    `json:"slug" bson:"slug"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Settings is the single site-wide configuration document: storefront
// title, logo reference, display currency, and analytics tracking id.
type Settings struct {
	Title       string    `json:"title" bson:"title"`
	Logo        string    `json:"logo,omitempty" bson:"logo,omitempty"`
	Currency    string    `json:"currency" bson:"currency"`
	AnalyticsID string    `json:"analytics_id,omitempty" bson:"analytics_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
