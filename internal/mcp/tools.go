package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/transport"
)

// ToolNames lists every registered tool in registration order.
var ToolNames = []string{
	"new_attendance_draft",
	"register_attendance",
	"list_attendances",
	"get_attendance",
	"lookup_entity",
	"suggest_guidance",
	"list_clients",
	"get_client",
	"save_client",
	"delete_client",
	"list_themes",
	"save_theme",
	"delete_theme",
	"add_subtheme",
	"get_dashboard",
}

type tools struct {
	svc    transport.Services
	logger *slog.Logger
}

func registerTools(server *sdkmcp.Server, svc transport.Services, logger *slog.Logger) {
	t := &tools{svc: svc, logger: logger}

	// Attendances
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "new_attendance_draft",
		Description: "Start an attendance: returns a fresh 5-digit id with today's date and the current time.",
	}, t.newDraft)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "register_attendance",
		Description: "Save an attendance. document and theme are required; an existing id is replaced.",
	}, t.registerAttendance)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_attendances",
		Description: "List attendances newest first with theme labels, optionally limited to an inclusive date range.",
	}, t.listAttendances)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_attendance",
		Description: "Get one attendance by id with its theme label.",
	}, t.getAttendance)

	// Assistance
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "lookup_entity",
		Description: "Resolve a CPF or CNPJ to a name. Registered clients are checked before the assistant.",
	}, t.lookupEntity)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "suggest_guidance",
		Description: "Draft a description and a follow-up e-mail for a theme and subtheme.",
	}, t.suggestGuidance)

	// Clients
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_clients",
		Description: "List registered clients sorted by name.",
	}, t.listClients)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_client",
		Description: "Get a registered client by document.",
	}, t.getClient)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_client",
		Description: "Create or fully replace a client. The CPF/CNPJ type of an existing client cannot change.",
	}, t.saveClient)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_client",
		Description: "Delete a registered client.",
	}, t.deleteClient)

	// Themes
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_themes",
		Description: "List the theme taxonomy in display order.",
	}, t.listThemes)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_theme",
		Description: "Create a theme (omit id) or replace an existing one.",
	}, t.saveTheme)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_theme",
		Description: "Delete a theme. Attendances that reference it keep the raw id.",
	}, t.deleteTheme)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_subtheme",
		Description: "Append a subtheme to a theme. Duplicates are rejected ignoring case.",
	}, t.addSubtheme)

	// Reporting
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Compute dashboard metrics over all attendances.",
	}, t.dashboard)
}

func (t *tools) fail(ctx context.Context, tool string, err error) error {
	mapped := MapError(err)
	t.logger.DebugContext(ctx, "tool failed", "tool", tool, "code", mapped.Code, "error", err)
	return mapped
}

func (t *tools) newDraft(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, AttendanceOutput, error) {
	draft, err := t.svc.Attendances.NewDraft(ctx)
	if err != nil {
		return nil, AttendanceOutput{}, t.fail(ctx, "new_attendance_draft", err)
	}
	return nil, AttendanceOutput{Attendance: draft}, nil
}

func (t *tools) registerAttendance(ctx context.Context, _ *sdkmcp.CallToolRequest, in RegisterAttendanceParams) (*sdkmcp.CallToolResult, AttendanceOutput, error) {
	rec, err := t.svc.Attendances.Register(ctx, attendance.Record{
		ID:            in.ID,
		StartDate:     in.StartDate,
		StartTime:     in.StartTime,
		Document:      in.Document,
		Name:          in.Name,
		Theme:         in.Theme,
		Subtheme:      in.Subtheme,
		Description:   in.Description,
		EmailGuidance: in.EmailGuidance,
	})
	if err != nil {
		return nil, AttendanceOutput{}, t.fail(ctx, "register_attendance", err)
	}
	return nil, AttendanceOutput{Attendance: *rec}, nil
}

func (t *tools) listAttendances(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListAttendancesParams) (*sdkmcp.CallToolResult, AttendanceListOutput, error) {
	var opts attendance.ListOptions
	var err error
	if opts.From, err = parseRangeDate("from", in.From); err != nil {
		return nil, AttendanceListOutput{}, err
	}
	if opts.To, err = parseRangeDate("to", in.To); err != nil {
		return nil, AttendanceListOutput{}, err
	}

	entries, err := t.svc.Attendances.List(ctx, opts)
	if err != nil {
		return nil, AttendanceListOutput{}, t.fail(ctx, "list_attendances", err)
	}
	return nil, AttendanceListOutput{Attendances: entries, Count: len(entries)}, nil
}

func parseRangeDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &APIError{
			Code:    transport.CodeInvalidInput,
			Message: fmt.Sprintf("%s must be YYYY-MM-DD", field),
		}
	}
	return d, nil
}

func (t *tools) getAttendance(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetAttendanceParams) (*sdkmcp.CallToolResult, HistoryEntryOutput, error) {
	entry, err := t.svc.Attendances.Get(ctx, in.ID)
	if err != nil {
		return nil, HistoryEntryOutput{}, t.fail(ctx, "get_attendance", err)
	}
	return nil, HistoryEntryOutput{Attendance: *entry}, nil
}

func (t *tools) lookupEntity(ctx context.Context, _ *sdkmcp.CallToolRequest, in LookupEntityParams) (*sdkmcp.CallToolResult, LookupOutput, error) {
	lookup, err := t.svc.Attendances.LookupEntity(ctx, in.Document)
	if err != nil {
		return nil, LookupOutput{}, t.fail(ctx, "lookup_entity", err)
	}
	return nil, LookupOutput{Lookup: lookup}, nil
}

func (t *tools) suggestGuidance(ctx context.Context, _ *sdkmcp.CallToolRequest, in SuggestGuidanceParams) (*sdkmcp.CallToolResult, GuidanceOutput, error) {
	guidance, err := t.svc.Attendances.SuggestGuidance(ctx, attendance.GuidanceRequest{
		ThemeID:    in.Theme,
		Subtheme:   in.Subtheme,
		EntityName: in.Name,
	})
	if err != nil {
		return nil, GuidanceOutput{}, t.fail(ctx, "suggest_guidance", err)
	}
	return nil, GuidanceOutput{Guidance: guidance}, nil
}

func (t *tools) listClients(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ClientListOutput, error) {
	clients, err := t.svc.Clients.List(ctx)
	if err != nil {
		return nil, ClientListOutput{}, t.fail(ctx, "list_clients", err)
	}
	return nil, ClientListOutput{Clients: clients}, nil
}

func (t *tools) getClient(ctx context.Context, _ *sdkmcp.CallToolRequest, in DocumentParams) (*sdkmcp.CallToolResult, ClientOutput, error) {
	c, err := t.svc.Clients.Get(ctx, in.Document)
	if err != nil {
		return nil, ClientOutput{}, t.fail(ctx, "get_client", err)
	}
	return nil, ClientOutput{Client: *c}, nil
}

func (t *tools) saveClient(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveClientParams) (*sdkmcp.CallToolResult, ClientOutput, error) {
	c, err := t.svc.Clients.Save(ctx, client.Client{
		Document:    in.Document,
		Type:        client.DocumentType(in.Type),
		Name:        in.Name,
		FantasyName: in.FantasyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		UF:          in.UF,
	})
	if err != nil {
		return nil, ClientOutput{}, t.fail(ctx, "save_client", err)
	}
	return nil, ClientOutput{Client: *c}, nil
}

func (t *tools) deleteClient(ctx context.Context, _ *sdkmcp.CallToolRequest, in DocumentParams) (*sdkmcp.CallToolResult, DeletedOutput, error) {
	if err := t.svc.Clients.Delete(ctx, in.Document); err != nil {
		return nil, DeletedOutput{}, t.fail(ctx, "delete_client", err)
	}
	return nil, DeletedOutput{Deleted: in.Document}, nil
}

func (t *tools) listThemes(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ThemeListOutput, error) {
	themes, err := t.svc.Themes.List(ctx)
	if err != nil {
		return nil, ThemeListOutput{}, t.fail(ctx, "list_themes", err)
	}
	return nil, ThemeListOutput{Themes: themes}, nil
}

func (t *tools) saveTheme(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveThemeParams) (*sdkmcp.CallToolResult, ThemeOutput, error) {
	var (
		saved *theme.Theme
		err   error
	)
	if in.ID == "" {
		saved, err = t.svc.Themes.Create(ctx, theme.CreateRequest{Label: in.Label, Subthemes: in.Subthemes})
	} else {
		saved, err = t.svc.Themes.Save(ctx, theme.Theme{ID: in.ID, Label: in.Label, Subthemes: in.Subthemes})
	}
	if err != nil {
		return nil, ThemeOutput{}, t.fail(ctx, "save_theme", err)
	}
	return nil, ThemeOutput{Theme: *saved}, nil
}

func (t *tools) deleteTheme(ctx context.Context, _ *sdkmcp.CallToolRequest, in ThemeIDParams) (*sdkmcp.CallToolResult, DeletedOutput, error) {
	if err := t.svc.Themes.Delete(ctx, in.ID); err != nil {
		return nil, DeletedOutput{}, t.fail(ctx, "delete_theme", err)
	}
	return nil, DeletedOutput{Deleted: in.ID}, nil
}

func (t *tools) addSubtheme(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddSubthemeParams) (*sdkmcp.CallToolResult, ThemeOutput, error) {
	updated, err := t.svc.Themes.AddSubtheme(ctx, in.ID, in.Subtheme)
	if err != nil {
		return nil, ThemeOutput{}, t.fail(ctx, "add_subtheme", err)
	}
	return nil, ThemeOutput{Theme: *updated}, nil
}

func (t *tools) dashboard(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, DashboardOutput, error) {
	d, err := t.svc.Metrics.Dashboard(ctx)
	if err != nil {
		return nil, DashboardOutput{}, t.fail(ctx, "get_dashboard", err)
	}
	return nil, DashboardOutput{Dashboard: *d}, nil
}
