package formatter

import "fmt"

// ResultReportFormatter renders the general report followed by the
// report's result under Label, numbered like the formula it came from.
type ResultReportFormatter struct {
	Label string
}

func (f *ResultReportFormatter) ReportTemplate() string {
	return fmt.Sprintf(`{{header .Check .Severity .MaxLineNumWidth .Filename .Line .Column -}}
{{snippet .Formula .Line .MaxLineNumWidth .Padding -}}
{{underlineAndMessage .Message .Padding .UnderlineStart .UnderlineLength -}}
{{result %q .Result .Padding .MaxLineNumWidth .Line}}
`, f.Label)
}
