package formatter

type GeneralReportFormatter struct{}

func (f *GeneralReportFormatter) ReportTemplate() string {
	return `{{header .Check .Severity .MaxLineNumWidth .Filename .Line .Column -}}
{{snippet .Formula .Line .MaxLineNumWidth .Padding -}}
{{underlineAndMessage .Message .Padding .UnderlineStart .UnderlineLength}}
`
}
