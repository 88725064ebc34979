package entity

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify transforma um título em chave estável: minúsculas, qualquer sequência
// não alfanumérica vira um único hífen, sem hífens nas pontas.
func Slugify(title string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
