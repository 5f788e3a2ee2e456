package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/hilbert/internal"
	tt "github.com/gnolang/hilbert/internal/types"
)

const tabWidth = 8

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	warningStyle    = color.New(color.FgHiYellow, color.Bold)
	infoStyle       = color.New(color.FgHiCyan, color.Bold)
	checkStyle      = color.New(color.FgYellow, color.Bold)
	fileStyle       = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	messageStyle    = color.New(color.FgRed, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
)

// reportFormatter supplies the text template used to render one report.
type reportFormatter interface {
	ReportTemplate() string
}

// getReportFormatter returns the formatter for the given check, falling
// back to GeneralReportFormatter.
func getReportFormatter(check string) reportFormatter {
	switch check {
	case internal.CheckCNF:
		return &ResultReportFormatter{Label: "CNF"}
	case internal.CheckRoundTrip:
		return &ResultReportFormatter{Label: "Rendered"}
	case internal.CheckProof:
		return &ResultReportFormatter{Label: "Conclusion"}
	default:
		return &GeneralReportFormatter{}
	}
}

// Render formats reports for the terminal, in the order given.
func Render(reports []tt.Report) string {
	var builder strings.Builder
	for _, r := range reports {
		builder.WriteString(buildReport(r, getReportFormatter(r.Check)))
	}
	return builder.String()
}

// Summary counts reports by severity, e.g. "1 error, 2 infos".
func Summary(reports []tt.Report) string {
	counts := make(map[tt.Severity]int)
	for _, r := range reports {
		counts[r.Severity]++
	}
	parts := []string{}
	for _, s := range []struct {
		severity tt.Severity
		noun     string
		style    *color.Color
	}{
		{tt.SeverityError, "error", errorStyle},
		{tt.SeverityWarning, "warning", warningStyle},
		{tt.SeverityInfo, "info", infoStyle},
	} {
		n := counts[s.severity]
		if n == 0 {
			continue
		}
		noun := s.noun
		if n > 1 {
			noun += "s"
		}
		parts = append(parts, s.style.Sprintf("%d %s", n, noun))
	}
	if len(parts) == 0 {
		return suggestionStyle.Sprint("no reports")
	}
	return strings.Join(parts, ", ")
}

/***** Report Formatter Builder *****/

type ReportData struct {
	Check           string
	Severity        string
	Filename        string
	Line            int
	Column          int
	Formula         string
	Message         string
	Result          string
	Padding         string
	MaxLineNumWidth int
	UnderlineStart  int
	UnderlineLength int
}

func buildReport(r tt.Report, formatter reportFormatter) string {
	maxLineNumWidth := calculateMaxLineNumWidth(r.Line)
	start, length := underlineSpan(r.Formula, r.Column)

	data := ReportData{
		Check:           r.Check,
		Severity:        r.Severity.String(),
		Filename:        r.Filename,
		Line:            r.Line,
		Column:          r.Column,
		Formula:         r.Formula,
		Message:         r.Message,
		Result:          r.Result,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
		MaxLineNumWidth: maxLineNumWidth,
		UnderlineStart:  start,
		UnderlineLength: length,
	}

	funcMap := template.FuncMap{
		"header":              header,
		"snippet":             formulaSnippet,
		"underlineAndMessage": underlineAndMessage,
		"result":              result,
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(formatter.ReportTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(check string, severity string, maxLineNumWidth int, filename string, line int, column int) string {
	var endString string
	switch severity {
	case "ERROR":
		endString = errorStyle.Sprint("error: ")
	case "WARNING":
		endString = warningStyle.Sprint("warning: ")
	case "INFO":
		endString = infoStyle.Sprint("info: ")
	}

	endString += checkStyle.Sprintf("%s\n", check)

	padding := strings.Repeat(" ", maxLineNumWidth)
	endString += lineStyle.Sprintf("%s--> ", padding)
	if column > 0 {
		endString += fileStyle.Sprintf("%s:%d:%d\n", filename, line, column)
	} else {
		endString += fileStyle.Sprintf("%s:%d\n", filename, line)
	}

	return endString
}

func formulaSnippet(formula string, line int, maxLineNumWidth int, padding string) string {
	endString := lineStyle.Sprintf("%s|\n", padding)
	endString += lineStyle.Sprintf("%*d | ", maxLineNumWidth, line)
	endString += formula + "\n"
	return endString
}

func underlineAndMessage(message string, padding string, start int, length int) string {
	endString := lineStyle.Sprintf("%s| ", padding)
	endString += strings.Repeat(" ", start)
	endString += messageStyle.Sprintf("%s\n", strings.Repeat("~", length))

	endString += lineStyle.Sprintf("%s= ", padding)
	endString += messageStyle.Sprintf("%s\n", message)
	return endString
}

func result(label string, text string, padding string, maxLineNumWidth int, line int) string {
	if text == "" {
		return ""
	}

	endString := suggestionStyle.Sprintf("%s:\n", label)
	endString += lineStyle.Sprintf("%s|\n", padding)
	endString += lineStyle.Sprintf("%*d | ", maxLineNumWidth, line)
	endString += text + "\n"
	endString += lineStyle.Sprintf("%s|\n", padding)
	return endString
}

func calculateMaxLineNumWidth(line int) int {
	return len(fmt.Sprintf("%d", line))
}

// underlineSpan returns the visual start and width of the underline. A
// zero column underlines the whole formula.
func underlineSpan(formula string, column int) (int, int) {
	width := calculateVisualColumn(formula, -1)
	if column <= 0 {
		return 0, max(width, 1)
	}
	start := calculateVisualColumn(formula, column)
	return start, 1
}

// calculateVisualColumn returns the visual width of the runes before the
// 1-based rune column, expanding tabs. A negative column measures the
// whole line.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	i := 0
	for _, ch := range line {
		i++
		if i == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
