package models

// Status derivado de um projeto. Calculado a cada consulta, nunca persistido.
type Status string

const (
	StatusInativo     Status = "INATIVO"
	StatusFinalizado  Status = "FINALIZADO"
	StatusEmAndamento Status = "EM_ANDAMENTO"
)

// Statuses lista os status derivados na ordem de exibição.
var Statuses = []Status{StatusEmAndamento, StatusFinalizado, StatusInativo}

// ValidStatus indica se o valor corresponde a um status conhecido.
func ValidStatus(v string) bool {
	for _, s := range Statuses {
		if string(s) == v {
			return true
		}
	}
	return false
}

// Modalidades (formato) aceitas para um projeto.
const (
	FormatoPresencial = "PRESENCIAL"
	FormatoOnline     = "ONLINE"
	FormatoHibrido    = "HIBRIDO"
)

// Formatos lista as modalidades na ordem de exibição.
var Formatos = []string{FormatoPresencial, FormatoOnline, FormatoHibrido}

// ValidFormato indica se o valor corresponde a uma modalidade conhecida.
func ValidFormato(v string) bool {
	for _, f := range Formatos {
		if f == v {
			return true
		}
	}
	return false
}

// Areas é a enumeração de grandes áreas do conhecimento usada pelo backend.
var Areas = []string{
	"Ciências Agrárias",
	"Ciências Biológicas",
	"Ciências da Saúde",
	"Ciências Exatas e da Terra",
	"Ciências Humanas",
	"Ciências Sociais Aplicadas",
	"Engenharias",
	"Linguística, Letras e Artes",
	"Multidisciplinar",
}
