package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/client/config"
	"github.com/iudanet/studentdesk/internal/client/views"
	"github.com/iudanet/studentdesk/internal/models"
)

const usageTemplate = `StudentDesk Client

Usage:
  studentdesk [OPTIONS] COMMAND [ARGS]

Options:
  --version               Show version information
  --config PATH           Path to YAML config file
  --server URL            Backend URL (default: {{.DefaultServer}})
  --db PATH               Path to local session database (default: studentdesk.db)
  --ephemeral             Keep the session in memory only
  --log-level LEVEL       Log level: debug, info, warn, error (default: warn)
  --password PASSWORD     Password for login/register (not recommended)
  --password-file PATH    Path to file containing the password

Password Priority (highest to lowest):
  1. {{.PasswordEnv}} environment variable
  2. --password-file (file path)
  3. --password (command line)
  4. Interactive prompt (fallback)

Commands:
  register [--role ROLE]              Create an account and sign in
  login [--email EMAIL]               Sign in
  logout                              Remove the local session
  status                              Show authentication status
  dashboard                           Show statistics and recent students
  list [--filter TERM] [--limit N]    List students
  search TERM                         Search students on the server
  get <id>                            Show student details
  add                                 Add a student
  edit <id>                           Edit a student
  delete [--yes] <id>                 Delete a student
  import FILE                         Create students from a JSON array

Environment:
{{.Environment}}
Examples:
  studentdesk login
  studentdesk list --filter jane
  studentdesk search "Smith"
  studentdesk --server https://school.example.com/api dashboard
`

const studentTemplate = `
=== Student Details ===

Name:     {{.Name}}
ID:       {{.ID}}
Email:    {{.Email}}
Age:      {{.Age}}
Grade:    {{.Grade}}
Phone:    {{.Phone}}
{{- if .Address }}
Address:  {{.Address}}
{{- end}}
{{- if not .CreatedAt.IsZero }}
Created:  {{.CreatedAt.Format "2006-01-02 15:04"}}
{{- end}}
{{- if not .UpdatedAt.IsZero }}
Updated:  {{.UpdatedAt.Format "2006-01-02 15:04"}}
{{- end}}
`

const dashboardTemplate = `
=== Dashboard ===
{{- if .Degraded }}

(!) Live statistics are unavailable, showing default values.
{{- end}}

Total Students:     {{.Stats.TotalStudents}}
Active Students:    {{.Stats.ActiveStudents}}
New This Month:     {{.Stats.NewStudentsThisMonth}}
Average Age:        {{printf "%.1f" .Stats.AverageAge}}

Recent Students:
{{- range .Recent }}
  {{.Name}} ({{.Grade}}) {{.Email}}{{if not .CreatedAt.IsZero}} added {{.CreatedAt.Format "2006-01-02"}}{{end}}
{{- else }}
  No students yet.
{{- end}}
`

var (
	usageTmpl     = template.Must(template.New("usage").Parse(usageTemplate))
	studentTmpl   = template.Must(template.New("student").Parse(studentTemplate))
	dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardTemplate))
)

// PrintUsage печатает справку по командам
func PrintUsage(w io.Writer) error {
	return usageTmpl.Execute(w, struct {
		DefaultServer string
		PasswordEnv   string
		Environment   string
	}{
		DefaultServer: api.DefaultBaseURL,
		PasswordEnv:   PasswordEnv,
		Environment:   config.Usage(),
	})
}

func renderStudent(w io.Writer, s models.Student) error {
	return studentTmpl.Execute(w, s)
}

func renderDashboard(w io.Writer, summary views.Summary) error {
	return dashboardTmpl.Execute(w, summary)
}

// renderStudentTable печатает учеников таблицей
func renderStudentTable(w io.Writer, students []models.Student) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAGE\tGRADE\tPHONE")
	for _, s := range students {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID, s.Name, s.Email, s.Age, s.Grade, s.Phone)
	}
	return tw.Flush()
}

// gradeList допустимые классы одной строкой для подсказки
func gradeList() string {
	grades := models.Grades()
	names := make([]string, len(grades))
	for i, g := range grades {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
