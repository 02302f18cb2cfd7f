package presenter

import (
	"comment-lab/domain"
	"comment-lab/redaction"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const (
	barWidth = 40
	barRune  = "█"
)

// Presenter writes the chart and the table of a report. It never changes the report.
type Presenter struct {
	out     io.Writer
	colours bool
	masker  *redaction.Masker
}

func New(out io.Writer, colours bool, masker *redaction.Masker) *Presenter {
	return &Presenter{out: out, colours: colours, masker: masker}
}

func (p *Presenter) Render(r domain.Report) error {
	if err := Chart(p.out, r.Counts(), p.colours); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.out); err != nil {
		return err
	}
	Table(p.out, p.rows(r))
	return nil
}

// rows masks comments one by one before joining them so a match never spans two comments.
func (p *Presenter) rows(r domain.Report) []domain.Row {
	if p.masker == nil {
		return r.Rows()
	}
	perCluster := r.PerClusterComments()
	rows := make([]domain.Row, 0, len(perCluster))
	for _, id := range r.ClusterIDs() {
		rows = append(rows, domain.Row{
			Prediction: id,
			Comments:   strings.Join(p.masker.MaskAll(perCluster[id]), ", "),
		})
	}
	return rows
}

// Chart draws one horizontal bar per bucket, Good first.
func Chart(w io.Writer, counts map[string]int, colours bool) error {
	series := []struct {
		label string
		paint color.Color
	}{
		{domain.Good.String(), color.FgGreen},
		{domain.Bad.String(), color.FgRed},
	}

	highest := 0
	for _, s := range series {
		highest = max(highest, counts[s.label])
	}

	for _, s := range series {
		n := counts[s.label]
		length := 0
		if highest > 0 {
			length = n * barWidth / highest
		}
		if n > 0 && length == 0 {
			length = 1
		}
		bar := strings.Repeat(barRune, length)
		if colours {
			bar = s.paint.Render(bar)
		}
		if _, err := fmt.Fprintf(w, "%-5s| %s %d\n", s.label, bar, n); err != nil {
			return err
		}
	}
	return nil
}

// Table prints the Prediction / Comments dataset.
func Table(w io.Writer, rows []domain.Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Prediction", "Comments"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		table.Append([]string{fmt.Sprintf("%d", row.Prediction), row.Comments})
	}
	table.Render()
}
