package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `sala records citizen attendances at a Sala do Empreendedor service center.

Collections:
- Attendance: one service interaction (id, start_date DD/MM/YYYY, start_time HH:MM, document, name, theme, subtheme, description, email_guidance). Attendances are never deleted; re-registering an id replaces it.
- Client: registered person (CPF) or organization (CNPJ), keyed by document. The type cannot change once saved.
- Theme: taxonomy node (id, label, ordered subthemes). Attendances reference themes by id. Listings add theme_label, which falls back to the raw id once the theme is deleted.

Intake workflow:
1) new_attendance_draft for a fresh id and the current date and time.
2) lookup_entity(document) to fill the name. Registered clients win over the assistant. When found=false, ask the operator for the name and show the notice.
3) list_themes, then suggest_guidance(theme, subtheme, name) for description and e-mail text. fallback=true means the text is a placeholder.
4) register_attendance with the completed record.

Reporting: get_dashboard returns totals, the daily average, the last 12 populated months, yearly totals, per-theme shares and the 08-18 hourly histogram.

Docs:
- sala://docs/index
- sala://docs/dashboard
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "sala://docs/index",
		Name:        "docs_index",
		Title:       "sala docs index",
		Description: "Entry point: tools by collection and the intake workflow.",
		Content: `# sala: Docs Index

## Tools

Attendances: ` + "`new_attendance_draft`, `register_attendance`, `list_attendances`, `get_attendance`" + `
Assistance: ` + "`lookup_entity`, `suggest_guidance`" + `
Clients: ` + "`list_clients`, `get_client`, `save_client`, `delete_client`" + `
Themes: ` + "`list_themes`, `save_theme`, `delete_theme`, `add_subtheme`" + `
Reporting: ` + "`get_dashboard`" + `

## Errors

Tool errors start with a stable code:

- ` + "`NOT_FOUND`" + `: unknown id or document.
- ` + "`INVALID_INPUT`" + `: a required field is missing (attendance: document and theme; client: document and name; theme: label).
- ` + "`DUPLICATE_SUBTHEME`" + `: subthemes are unique within a theme, ignoring case.
- ` + "`TYPE_IMMUTABLE`" + `: a client's CPF/CNPJ type cannot change.
- ` + "`STORAGE_UNAVAILABLE`" + ` / ` + "`STORE_NOT_READY`" + `: the database cannot be used; retry later.
- ` + "`AGGREGATION_FAILED`" + `: the dashboard could not read its data.

Lookups and guidance never fail because of the assistant. They return a notice and fallback text instead.
`,
	},
	{
		URI:         "sala://docs/dashboard",
		Name:        "docs_dashboard",
		Title:       "Dashboard metrics",
		Description: "How each dashboard figure is computed.",
		Content: `# Dashboard metrics

- **total**: every attendance, including ones with malformed dates or times.
- **daily_average**: total / distinct start dates, rounded to one decimal.
- **monthly**: MM/YYYY buckets in ascending order, only months with data, the latest 12.
- **yearly**: per-year totals, newest year first.
- **categories**: every theme, including those with zero attendances, sorted by count. Percentages are of the total.
- **hourly**: buckets 08 through 18. Percentages are relative to the busiest of those hours.
- **current_year** and **top_category**: headline figures.

When there are no attendances the result has ` + "`empty: true`" + ` and no figures.
Records whose start_date is not DD/MM/YYYY count toward the total only.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
