package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Item é um registro de uma seção do console. O formato varia por seção.
type Item map[string]any

// ID devolve o identificador do item como string ("" quando ausente).
func (it Item) ID() string {
	for _, k := range []string{"id", "Id", "ID"} {
		v, ok := it[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			return strings.TrimSpace(t)
		case json.Number:
			return t.String()
		default:
			return fmt.Sprint(t)
		}
	}
	return ""
}

// NormalizeList aceita um array puro ou um envelope paginado {content: [...]}.
// Qualquer outro formato vira lista vazia.
func NormalizeList(raw []byte) []Item {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []Item{}
	}
	switch trimmed[0] {
	case '[':
		if items, ok := decodeItems(trimmed); ok {
			return items
		}
	case '{':
		var env map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return []Item{}
		}
		if content, ok := env["content"]; ok {
			if items, ok := decodeItems(bytes.TrimSpace(content)); ok {
				return items
			}
		}
	}
	return []Item{}
}

func decodeItems(raw []byte) ([]Item, bool) {
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var list []json.RawMessage
	if err := dec.Decode(&list); err != nil {
		return nil, false
	}
	items := make([]Item, 0, len(list))
	for _, el := range list {
		d := json.NewDecoder(bytes.NewReader(el))
		d.UseNumber()
		var it Item
		// elementos que não são objetos são ignorados
		if err := d.Decode(&it); err != nil || it == nil {
			continue
		}
		items = append(items, it)
	}
	return items, true
}
