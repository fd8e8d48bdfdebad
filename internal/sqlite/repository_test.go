package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/domain/attendance"
	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/repository"
)

func TestAttendanceRepository_UpsertAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	rec := &attendance.Record{
		ID:            "12345",
		StartDate:     "10/03/2025",
		StartTime:     "09:30",
		Document:      "123.456.789-00",
		Name:          "Maria Souza",
		Theme:         "mei",
		Subtheme:      "Formalização",
		Description:   "Orientação",
		EmailGuidance: "Prezado(a) Maria Souza,",
	}
	require.NoError(t, repo.Upsert(ctx, rec))

	got, err := repo.Get(ctx, "12345")
	require.NoError(t, err)
	require.Equal(t, rec, got)

	_, err = repo.Get(ctx, "99999")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttendanceRepository_UpsertReplaces(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &attendance.Record{ID: "1", Document: "a", Theme: "mei", Description: "first"}))
	require.NoError(t, repo.Upsert(ctx, &attendance.Record{ID: "1", Document: "b", Theme: "nf"}))

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, &attendance.Record{ID: "1", Document: "b", Theme: "nf"}, got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestAttendanceRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)

	all, err := NewAttendanceRepository(db).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestClientRepository_UpsertReplacesAllFields(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &client.Client{
		Document:    "12345678000190",
		Type:        client.TypeCNPJ,
		Name:        "Silva Comércio LTDA",
		FantasyName: "Mercado Silva",
		Email:       "contato@silva.com.br",
		Phone:       "11 9999-0000",
		Address:     "Rua A, 1",
		City:        "Santos",
		UF:          "SP",
	}))
	require.NoError(t, repo.Upsert(ctx, &client.Client{
		Document: "12345678000190",
		Type:     client.TypeCNPJ,
		Name:     "Silva e Filhos LTDA",
	}))

	got, found, err := repo.Get(ctx, "12345678000190")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, client.Client{Document: "12345678000190", Type: client.TypeCNPJ, Name: "Silva e Filhos LTDA"}, got)
}

func TestClientRepository_GetMissIsNotAnError(t *testing.T) {
	db := NewTestDB(t)

	_, found, err := NewClientRepository(db).Get(context.Background(), "000")
	require.NoError(t, err)
	require.False(t, found)
}

func TestClientRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &client.Client{Document: "1", Type: client.TypeCPF, Name: "A"}))
	require.NoError(t, repo.Upsert(ctx, &client.Client{Document: "2", Type: client.TypeCPF, Name: "B"}))
	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "does-not-exist"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "2", list[0].Document)
}

func TestThemeRepository_UpsertKeepsPosition(t *testing.T) {
	db := NewTestDB(t)
	repo := NewThemeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &theme.Theme{ID: "mei", Label: "MEI", Subthemes: []string{"Baixa", "Baixa"}}))
	require.NoError(t, repo.Upsert(ctx, &theme.Theme{ID: "novo", Label: "Novo"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "mei", list[0].ID)
	require.Equal(t, "MEI", list[0].Label)
	require.Equal(t, []string{"Baixa", "Baixa"}, list[0].Subthemes)
	require.Equal(t, "novo", list[len(list)-1].ID)
	require.Equal(t, []string{}, list[len(list)-1].Subthemes)
}

func TestThemeRepository_GetAndDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewThemeRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx, "nf")
	require.NoError(t, err)
	require.Equal(t, "Nota Fiscal", got.Label)

	require.NoError(t, repo.Delete(ctx, "nf"))
	require.NoError(t, repo.Delete(ctx, "nf"))

	_, err = repo.Get(ctx, "nf")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
