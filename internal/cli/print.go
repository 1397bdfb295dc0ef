package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/tomazdalcortivo/sdpe_mid/models"
)

var statusColors = map[models.Status]*color.Color{
	models.StatusInativo:     color.New(color.FgRed),
	models.StatusFinalizado:  color.New(color.FgBlue),
	models.StatusEmAndamento: color.New(color.FgGreen),
}

// colorStatus pinta o status quando a saída é um terminal; color.NoColor cobre o resto.
func colorStatus(s models.Status) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		cells := make([]string, len(headers))
		copy(cells, r)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}
