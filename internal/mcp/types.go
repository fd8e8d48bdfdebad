package mcp

import (
	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/metrics"
	"github.com/rpggio/sala/internal/domain/theme"
)

type EmptyParams struct{}

type RegisterAttendanceParams struct {
	ID            string `json:"id,omitempty" jsonschema:"attendance id from new_attendance_draft; omit to generate one"`
	StartDate     string `json:"start_date,omitempty" jsonschema:"date as DD/MM/YYYY; defaults to today"`
	StartTime     string `json:"start_time,omitempty" jsonschema:"time as HH:MM; defaults to now"`
	Document      string `json:"document" jsonschema:"CPF or CNPJ of the attendee"`
	Name          string `json:"name,omitempty" jsonschema:"attendee display name"`
	Theme         string `json:"theme" jsonschema:"theme id from list_themes"`
	Subtheme      string `json:"subtheme,omitempty"`
	Description   string `json:"description,omitempty"`
	EmailGuidance string `json:"email_guidance,omitempty"`
}

type ListAttendancesParams struct {
	From string `json:"from,omitempty" jsonschema:"inclusive start date as YYYY-MM-DD"`
	To   string `json:"to,omitempty" jsonschema:"inclusive end date as YYYY-MM-DD"`
}

type GetAttendanceParams struct {
	ID string `json:"id"`
}

type LookupEntityParams struct {
	Document string `json:"document" jsonschema:"CPF or CNPJ, formatted or digits only"`
}

type SuggestGuidanceParams struct {
	Theme    string `json:"theme" jsonschema:"theme id"`
	Subtheme string `json:"subtheme"`
	Name     string `json:"name,omitempty" jsonschema:"attendee name used in the e-mail greeting"`
}

type DocumentParams struct {
	Document string `json:"document"`
}

type SaveClientParams struct {
	Document    string `json:"document"`
	Type        string `json:"type,omitempty" jsonschema:"CPF or CNPJ; defaults to CPF and cannot change later"`
	Name        string `json:"name"`
	FantasyName string `json:"fantasy_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	UF          string `json:"uf,omitempty"`
}

type SaveThemeParams struct {
	ID        string   `json:"id,omitempty" jsonschema:"theme id; omit to create a new theme"`
	Label     string   `json:"label"`
	Subthemes []string `json:"subthemes,omitempty"`
}

type ThemeIDParams struct {
	ID string `json:"id"`
}

type AddSubthemeParams struct {
	ID       string `json:"id"`
	Subtheme string `json:"subtheme"`
}

// Outputs are wrapped in objects so every tool returns structured content.

type AttendanceOutput struct {
	Attendance attendance.Record `json:"attendance"`
}

// HistoryEntryOutput carries a stored attendance with its theme label.
type HistoryEntryOutput struct {
	Attendance attendance.HistoryEntry `json:"attendance"`
}

type AttendanceListOutput struct {
	Attendances []attendance.HistoryEntry `json:"attendances"`
	Count       int                       `json:"count"`
}

type LookupOutput struct {
	Lookup attendance.EntityLookup `json:"lookup"`
}

type GuidanceOutput struct {
	Guidance attendance.GuidanceSuggestion `json:"guidance"`
}

type ClientOutput struct {
	Client client.Client `json:"client"`
}

type ClientListOutput struct {
	Clients []client.Client `json:"clients"`
}

type ThemeOutput struct {
	Theme theme.Theme `json:"theme"`
}

type ThemeListOutput struct {
	Themes []theme.Theme `json:"themes"`
}

type DeletedOutput struct {
	Deleted string `json:"deleted"`
}

type DashboardOutput struct {
	Dashboard metrics.Dashboard `json:"dashboard"`
}
