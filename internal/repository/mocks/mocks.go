package mocks

import (
	"context"

	"github.com/rpggio/sala/internal/assist"
	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/stretchr/testify/mock"
)

// AttendanceRepository is a mock for attendance.Repository.
type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) Upsert(ctx context.Context, rec *attendance.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *AttendanceRepository) Get(ctx context.Context, id string) (*attendance.Record, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(*attendance.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]attendance.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ClientRepository is a mock for client.Repository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) Upsert(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Get(ctx context.Context, document string) (client.Client, bool, error) {
	args := m.Called(ctx, document)
	c, _ := args.Get(0).(client.Client)
	return c, args.Bool(1), args.Error(2)
}

// Find lets the mock stand in for attendance.ClientDirectory.
func (m *ClientRepository) Find(ctx context.Context, document string) (client.Client, bool, error) {
	return m.Get(ctx, document)
}

func (m *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]client.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Delete(ctx context.Context, document string) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

// ThemeRepository is a mock for theme.Repository.
type ThemeRepository struct {
	mock.Mock
}

func (m *ThemeRepository) Upsert(ctx context.Context, t *theme.Theme) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *ThemeRepository) Get(ctx context.Context, id string) (*theme.Theme, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*theme.Theme); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ThemeRepository) List(ctx context.Context) ([]theme.Theme, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]theme.Theme); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ThemeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Assistant is a mock for assist.Assistant.
type Assistant struct {
	mock.Mock
}

func (m *Assistant) LookupEntity(ctx context.Context, document string) (assist.Entity, error) {
	args := m.Called(ctx, document)
	ent, _ := args.Get(0).(assist.Entity)
	return ent, args.Error(1)
}

func (m *Assistant) GenerateGuidance(ctx context.Context, in assist.GuidanceInput) (assist.Guidance, error) {
	args := m.Called(ctx, in)
	g, _ := args.Get(0).(assist.Guidance)
	return g, args.Error(1)
}
