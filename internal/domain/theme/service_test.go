package theme_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/domain/theme"
	"github.com/rpggio/sala/internal/repository"
	"github.com/rpggio/sala/internal/repository/mocks"
)

func TestThemeService_CreateGeneratesID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ThemeRepository{}
	repo.On("Upsert", ctx, mock.Anything).Return(nil)

	svc := theme.NewService(repo, nil)
	created, err := svc.Create(ctx, theme.CreateRequest{Label: "  Exportação ", Subthemes: []string{"Habilitação", " ", "Radar"}})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.ID, "theme_"))
	require.Equal(t, "Exportação", created.Label)
	require.Equal(t, []string{"Habilitação", "Radar"}, created.Subthemes)
}

func TestThemeService_SaveValidation(t *testing.T) {
	ctx := context.Background()
	svc := theme.NewService(&mocks.ThemeRepository{}, nil)

	_, err := svc.Save(ctx, theme.Theme{ID: "x", Label: "  "})
	require.ErrorIs(t, err, theme.ErrInvalidInput)

	_, err = svc.Save(ctx, theme.Theme{ID: "", Label: "X"})
	require.ErrorIs(t, err, theme.ErrInvalidInput)

	_, err = svc.Save(ctx, theme.Theme{ID: "x", Label: "X", Subthemes: []string{"Baixa", "baixa"}})
	require.ErrorIs(t, err, theme.ErrDuplicateSubtheme)
}

func TestThemeService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ThemeRepository{}
	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := theme.NewService(repo, nil).Get(ctx, "missing")
	require.ErrorIs(t, err, theme.ErrThemeNotFound)
}

func TestThemeService_AddSubtheme(t *testing.T) {
	ctx := context.Background()
	stored := &theme.Theme{ID: "mei", Label: "MEI", Subthemes: []string{"Formalização"}}

	repo := &mocks.ThemeRepository{}
	repo.On("Get", ctx, "mei").Return(stored, nil)
	repo.On("Upsert", ctx, mock.MatchedBy(func(t *theme.Theme) bool {
		return len(t.Subthemes) == 2 && t.Subthemes[1] == "Baixa"
	})).Return(nil)

	svc := theme.NewService(repo, nil)
	updated, err := svc.AddSubtheme(ctx, "mei", " Baixa ")
	require.NoError(t, err)
	require.Equal(t, []string{"Formalização", "Baixa"}, updated.Subthemes)
	require.Equal(t, []string{"Formalização"}, stored.Subthemes, "stored theme must not be mutated")

	_, err = svc.AddSubtheme(ctx, "mei", "formalização")
	require.ErrorIs(t, err, theme.ErrDuplicateSubtheme)

	_, err = svc.AddSubtheme(ctx, "mei", "")
	require.ErrorIs(t, err, theme.ErrInvalidInput)
}

func TestThemeService_RemoveSubtheme(t *testing.T) {
	ctx := context.Background()
	stored := &theme.Theme{ID: "nf", Label: "NF", Subthemes: []string{"A", "B", "C"}}

	repo := &mocks.ThemeRepository{}
	repo.On("Get", ctx, "nf").Return(stored, nil)
	repo.On("Upsert", ctx, mock.Anything).Return(nil)

	svc := theme.NewService(repo, nil)
	updated, err := svc.RemoveSubtheme(ctx, "nf", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, updated.Subthemes)
	require.Equal(t, []string{"A", "B", "C"}, stored.Subthemes)

	_, err = svc.RemoveSubtheme(ctx, "nf", 3)
	require.ErrorIs(t, err, theme.ErrInvalidInput)
	_, err = svc.RemoveSubtheme(ctx, "nf", -1)
	require.ErrorIs(t, err, theme.ErrInvalidInput)
}

func TestThemeService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ThemeRepository{}
	repo.On("Delete", ctx, "outro").Return(nil)

	require.NoError(t, theme.NewService(repo, nil).Delete(ctx, "outro"))
	repo.AssertExpectations(t)
}

func TestLabelFor_FallsBackToID(t *testing.T) {
	themes := theme.Defaults()
	require.Equal(t, "Nota Fiscal", theme.LabelFor(themes, "nf"))
	require.Equal(t, "removed_theme", theme.LabelFor(themes, "removed_theme"))
	require.Equal(t, "Nota Fiscal", theme.Labels(themes)["nf"])
}

func TestDefaults_FreshCopy(t *testing.T) {
	a := theme.Defaults()
	a[0].Subthemes[0] = "changed"
	b := theme.Defaults()
	require.Equal(t, "Formalização", b[0].Subthemes[0])
	require.Len(t, b, 5)
}
