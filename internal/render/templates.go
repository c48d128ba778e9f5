package render

// Layout selects one of the two deterministic page layouts.
type Layout string

const (
	// LayoutModern is the compact ATS-friendly layout.
	LayoutModern Layout = "modern"
	// LayoutEuropass is the complete Europass layout.
	LayoutEuropass Layout = "europass"
)

const modernTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Doc.FullName}}</title>
<style>
  @page { size: A4; margin: 14mm; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 10.5pt; color: #1a1a1a; }
  h1 { font-size: 19pt; margin: 0; }
  h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: .08em;
       border-bottom: 1px solid #444; padding-bottom: 2px; margin: 14px 0 6px; }
  .headline { font-size: 12pt; color: #333; margin: 2px 0; }
  .contact { font-size: 9pt; color: #555; margin-bottom: 8px; }
  ul { margin: 4px 0 4px 16px; padding: 0; }
  li { margin-bottom: 2px; }
  .entry { margin-bottom: 8px; }
  .entry-head { font-weight: bold; }
  .entry-meta { font-size: 9pt; color: #555; }
  .skills div { margin-bottom: 2px; }
</style>
</head>
<body>
<h1>{{.Doc.FullName}}</h1>
{{if .Doc.Headline}}<div class="headline">{{.Doc.Headline}}</div>{{end}}
<div class="contact">{{join .ContactLine " · "}}</div>

{{if .Doc.SummaryBullets}}
<h2>Summary</h2>
<ul>{{range .Doc.SummaryBullets}}<li>{{.}}</li>{{end}}</ul>
{{end}}

{{if .SkillsLines}}
<h2>Technical Skills</h2>
<div class="skills">{{range .SkillsLines}}<div>{{.}}</div>{{end}}</div>
{{end}}

{{if .Doc.Experience}}
<h2>Experience</h2>
{{range .Doc.Experience}}
<div class="entry">
  <div class="entry-head">{{.Role}}{{if .Employer}} — {{.Employer}}{{end}}</div>
  <div class="entry-meta">{{.Period}}{{if .Location}} · {{.Location}}{{end}}</div>
  {{if .Activities}}<ul>{{range bullets .Activities}}<li>{{.}}</li>{{end}}</ul>{{end}}
  {{if .Technologies}}<div class="entry-meta">Technologies: {{.Technologies}}</div>{{end}}
</div>
{{end}}
{{end}}

{{if .Doc.Education}}
<h2>Education</h2>
{{range .Doc.Education}}
<div class="entry">
  <div class="entry-head">{{.Title}}{{if .Institution}} — {{.Institution}}{{end}}</div>
  <div class="entry-meta">{{.Period}}{{if .Location}} · {{.Location}}{{end}}</div>
</div>
{{end}}
{{end}}

{{if .Doc.Languages}}
<h2>Languages</h2>
<ul>{{range .Doc.Languages}}<li>{{.Name}}{{if .Level}} ({{.Level}}){{end}}</li>{{end}}</ul>
{{end}}
</body>
</html>`

const europassTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Doc.FullName}} - Curriculum Vitae</title>
<style>
  @page { size: A4; margin: 16mm; }
  body { font-family: Arial, sans-serif; font-size: 10pt; color: #00295c; }
  h1 { font-size: 16pt; margin: 0 0 2px; }
  h2 { font-size: 11pt; color: #1c5aa0; border-bottom: 2px solid #1c5aa0;
       padding-bottom: 2px; margin: 14px 0 6px; }
  table { border-collapse: collapse; width: 100%; }
  td { vertical-align: top; padding: 2px 6px 2px 0; }
  td.label { width: 32%; color: #555; font-size: 9pt; }
  ul { margin: 2px 0 2px 16px; padding: 0; }
  .lang-table td { border: 1px solid #ccd; text-align: center; font-size: 9pt; padding: 2px; }
</style>
</head>
<body>
<h1>{{.Doc.FullName}}</h1>
{{if .Doc.Headline}}<div>{{.Doc.Headline}}</div>{{end}}

<h2>Personal information</h2>
<table>
{{if .Doc.Email}}<tr><td class="label">E-mail</td><td>{{.Doc.Email}}</td></tr>{{end}}
{{if .Doc.Phone}}<tr><td class="label">Telephone</td><td>{{.Doc.Phone}}</td></tr>{{end}}
{{if .Doc.Location}}<tr><td class="label">Address</td><td>{{.Doc.Location}}</td></tr>{{end}}
{{if .Doc.Nationality}}<tr><td class="label">Nationality</td><td>{{.Doc.Nationality}}</td></tr>{{end}}
{{if .Doc.BirthDate}}<tr><td class="label">Date of birth</td><td>{{.Doc.BirthDate}}</td></tr>{{end}}
{{if .Doc.Gender}}<tr><td class="label">Gender</td><td>{{.Doc.Gender}}</td></tr>{{end}}
{{range .Doc.ExtraFields}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}
</table>

{{if .Doc.SummaryBullets}}
<h2>Personal profile</h2>
<ul>{{range .Doc.SummaryBullets}}<li>{{.}}</li>{{end}}</ul>
{{end}}

{{if .Doc.Experience}}
<h2>Work experience</h2>
<table>
{{range .Doc.Experience}}
<tr>
  <td class="label">{{.Period}}</td>
  <td>
    <strong>{{.Role}}</strong>{{if .Employer}} — {{.Employer}}{{end}}{{if .Location}}, {{.Location}}{{end}}
    {{if .Activities}}<ul>{{range bullets .Activities}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </td>
</tr>
{{end}}
</table>
{{end}}

{{if .Doc.Education}}
<h2>Education and training</h2>
<table>
{{range .Doc.Education}}
<tr>
  <td class="label">{{.Period}}</td>
  <td><strong>{{.Title}}</strong>{{if .Institution}} — {{.Institution}}{{end}}
  {{if .Description}}<div>{{.Description}}</div>{{end}}</td>
</tr>
{{end}}
</table>
{{end}}

<h2>Personal skills and competences</h2>
<table>
{{if .Doc.MotherTongue}}<tr><td class="label">Mother tongue</td><td>{{.Doc.MotherTongue}}</td></tr>{{end}}
</table>
{{if .Doc.Languages}}
<table class="lang-table">
<tr><td>Language</td><td>Listening</td><td>Reading</td><td>Interaction</td><td>Speaking</td><td>Writing</td></tr>
{{range .Doc.Languages}}
<tr><td>{{.Name}}</td><td>{{.Listening}}</td><td>{{.Reading}}</td><td>{{.Interaction}}</td><td>{{.Speaking}}</td><td>{{.Writing}}</td></tr>
{{end}}
</table>
{{end}}
<table>
{{if .Doc.SocialSkills}}<tr><td class="label">Social skills</td><td>{{.Doc.SocialSkills}}</td></tr>{{end}}
{{if .Doc.OrganizationalSkills}}<tr><td class="label">Organisational skills</td><td>{{.Doc.OrganizationalSkills}}</td></tr>{{end}}
{{if .Doc.TechnicalSkills}}<tr><td class="label">Technical skills</td><td>{{.Doc.TechnicalSkills}}</td></tr>{{end}}
{{if .SkillsLines}}<tr><td class="label">Computer skills</td><td>{{range .SkillsLines}}{{.}}<br>{{end}}</td></tr>
{{else if .Doc.ComputerSkills}}<tr><td class="label">Computer skills</td><td>{{.Doc.ComputerSkills}}</td></tr>{{end}}
{{if .Doc.ArtisticSkills}}<tr><td class="label">Artistic skills</td><td>{{.Doc.ArtisticSkills}}</td></tr>{{end}}
{{if .Doc.OtherSkills}}<tr><td class="label">Other skills</td><td>{{.Doc.OtherSkills}}</td></tr>{{end}}
{{if .Doc.DrivingLicense}}<tr><td class="label">Driving licence</td><td>{{.Doc.DrivingLicense}}</td></tr>{{end}}
</table>

{{if .Doc.AdditionalInfo}}
<h2>Additional information</h2>
<div>{{.Doc.AdditionalInfo}}</div>
{{end}}

{{if .Doc.Annexes}}
<h2>Annexes</h2>
<div>{{.Doc.Annexes}}</div>
{{end}}
</body>
</html>`
