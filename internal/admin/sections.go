// Package admin implementa o console de moderação: seleção de seção,
// expansão de itens e despacho de comandos com recarga da lista.
package admin

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var sectionsYAML []byte

// Section liga o identificador de uma seção ao endpoint de listagem e às ações permitidas.
type Section struct {
	ID       string   `yaml:"id" json:"id"`
	Titulo   string   `yaml:"titulo" json:"titulo"`
	Endpoint string   `yaml:"endpoint" json:"endpoint"`
	Acoes    []string `yaml:"acoes" json:"acoes"`
}

// Allows indica se a ação pode ser disparada nesta seção.
func (s Section) Allows(acao string) bool {
	for _, a := range s.Acoes {
		if a == acao {
			return true
		}
	}
	return false
}

// Sections é a tabela de seções, na ordem de exibição.
type Sections []Section

// Lookup devolve a seção pelo id.
func (ss Sections) Lookup(id string) (Section, bool) {
	for _, s := range ss {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// IDs lista os identificadores das seções.
func (ss Sections) IDs() []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.ID)
	}
	return out
}

// ParseSections lê e valida uma tabela de seções em YAML.
func ParseSections(data []byte) (Sections, error) {
	var doc struct {
		Secoes Sections `yaml:"secoes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lendo seções: %w", err)
	}
	seen := map[string]struct{}{}
	for i, s := range doc.Secoes {
		if strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Endpoint) == "" {
			return nil, fmt.Errorf("seção %d sem id ou endpoint", i)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("seção duplicada: %s", s.ID)
		}
		seen[s.ID] = struct{}{}
		for _, a := range s.Acoes {
			if _, ok := commandBuilders[a]; !ok {
				return nil, fmt.Errorf("seção %s: ação desconhecida %q", s.ID, a)
			}
		}
	}
	return doc.Secoes, nil
}

// DefaultSections é a tabela embutida no binário.
func DefaultSections() Sections {
	ss, err := ParseSections(sectionsYAML)
	if err != nil {
		panic(err)
	}
	return ss
}
