package helpers

import (
	"strconv"
	"strings"
)

const (
	defaultPage = 1
	maxPageSize = 200
)

// ParsePage converte pagina e tamanho em inteiros. Tamanho ausente ou inválido
// devolve 0, que significa "sem paginação"; o tamanho é limitado a maxPageSize.
func ParsePage(pageStr, sizeStr string) (int, int) {
	page := defaultPage
	size := 0

	if v, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(sizeStr)); err == nil && v > 0 {
		size = v
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
