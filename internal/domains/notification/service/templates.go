package service

import "html/template"

const emailLayout = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f8fafc; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #e2e8f0; border-radius: 8px; }
.header { font-size: 22px; font-weight: bold; color: #0f766e; margin-bottom: 15px; }
.details { background-color: #f1f5f9; padding: 15px 20px; border-radius: 5px; margin: 20px 0; }
.details dt { font-weight: bold; }
.details dd { margin: 0 0 8px 0; }
.footer { margin-top: 20px; font-size: 12px; color: #6b7280; text-align: center; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">{{.Heading}}</div>
    <p>Hi {{.Name}},</p>
    <p>{{.Lead}}</p>
    <dl class="details">
      <dt>Property</dt><dd>{{.Property}}</dd>
      {{if .Address}}<dt>Address</dt><dd>{{.Address}}</dd>{{end}}
      <dt>Date</dt><dd>{{.Date}}</dd>
      {{if .Time}}<dt>Time</dt><dd>{{.Time}}{{if .Duration}} ({{.Duration}} minutes){{end}}</dd>{{end}}
    </dl>
    {{if .Closing}}<p>{{.Closing}}</p>{{end}}
    <div class="footer">&copy; {{.Year}} {{.Sender}}</div>
  </div>
</body>
</html>`

var emailTemplate = template.Must(template.New("email").Parse(emailLayout))

type emailContent struct {
	Heading  string
	Name     string
	Lead     string
	Property string
	Address  string
	Date     string
	Time     string
	Duration int
	Closing  string
	Year     int
	Sender   string
}
