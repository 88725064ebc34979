package entity

import (
	"errors"
	"strings"
)

var ErrPostNotFound = errors.New("blog post not found")

const (
	DefaultPostCategory = "General"
	DefaultPostAuthor   = "Admin"
	DefaultPostReadTime = "5 min read"
	DefaultPostImage    = "https://via.placeholder.com/800"
)

type BlogPost struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Author   string `json:"author"`
	ReadTime string `json:"read_time"`
}

// Paragraphs quebra o conteúdo em parágrafos não vazios, uma linha por parágrafo.
func (p BlogPost) Paragraphs() []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(p.Content, "\r\n", "\n"), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
