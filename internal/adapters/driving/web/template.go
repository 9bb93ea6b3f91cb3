package web

import "html/template"

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; background: #f4f6f8; color: #1f2933; }
header { background: #1f3a5f; color: #fff; padding: 12px 20px; }
.status { font-size: 13px; padding: 6px 20px; background: #e4e7eb; }
.notice { margin: 12px 20px; padding: 10px; border-radius: 4px; }
.notice.info { background: #e0ecff; }
.notice.success { background: #dff5e1; }
.notice.error { background: #fde2e1; }
.grid { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; padding: 12px 20px; }
.panel { background: #fff; border: 1px solid #cbd2d9; border-radius: 4px; padding: 10px; overflow: auto; }
.panel h2 { font-size: 15px; margin: 0 0 8px 0; }
.panel pre { font-size: 12px; margin: 0; }
.error { color: #b42318; }
.muted { color: #7b8794; }
table { border-collapse: collapse; width: 100%; font-size: 13px; }
th, td { border: 1px solid #cbd2d9; padding: 4px 8px; text-align: left; }
form { padding: 12px 20px; }
</style>
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<div class="status">Backend: {{.Origin}} &middot; panels {{.Loaded}}/4{{if .Failed}} ({{.Failed}} failed){{end}}</div>
{{with .Notice}}<div class="notice {{.Kind}}">{{.Text}}</div>{{end}}
<form method="post" action="/upload" enctype="multipart/form-data">
<h2>Upload RFP</h2>
<input type="file" name="file" accept=".pdf">
<button type="submit">Upload</button>
</form>
<div class="grid">
{{template "json" .Summary}}
{{template "json" .Scope}}
<section class="panel">
<h2>Spec Match</h2>
{{if .SpecMatch.Err}}<p class="error">Error: {{.SpecMatch.Err}}</p>{{else}}
<table>
<thead><tr><th>RFP Item</th><th>OEM SKU</th><th>Spec Match %</th></tr></thead>
<tbody>
{{range .SpecMatch.Rows}}<tr><td>{{.RFPItem}}</td><td>{{.OEMSKU}}</td><td>{{.FormattedMatch}}</td></tr>
{{end}}</tbody>
</table>{{end}}
</section>
{{template "json" .OEM}}
</div>
</body>
</html>
{{define "json"}}<section class="panel">
<h2>{{.Title}}</h2>
{{if .Err}}<p class="error">Error: {{.Err}}</p>{{else if .Empty}}<p class="muted">(empty)</p>{{else}}<pre>{{.Body}}</pre>{{end}}
</section>{{end}}`

// dashboardTemplate is the parsed page template.
var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardHTML))
