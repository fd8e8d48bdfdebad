package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/domain/client"
	"github.com/rpggio/sala/internal/repository/mocks"
)

func TestClientService_SaveCreatesWithDefaultType(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	repo.On("Get", ctx, "123.456.789-00").Return(client.Client{}, false, nil)
	repo.On("Upsert", ctx, mock.Anything).Return(nil)

	svc := client.NewService(repo, nil)
	saved, err := svc.Save(ctx, client.Client{Document: " 123.456.789-00 ", Name: "Maria Souza", UF: "sp"})
	require.NoError(t, err)
	require.Equal(t, client.TypeCPF, saved.Type)
	require.Equal(t, "123.456.789-00", saved.Document)
	require.Equal(t, "SP", saved.UF)
	repo.AssertExpectations(t)
}

func TestClientService_SaveValidation(t *testing.T) {
	ctx := context.Background()
	svc := client.NewService(&mocks.ClientRepository{}, nil)

	_, err := svc.Save(ctx, client.Client{Document: "", Name: "X"})
	require.ErrorIs(t, err, client.ErrInvalidInput)

	_, err = svc.Save(ctx, client.Client{Document: "1", Name: " "})
	require.ErrorIs(t, err, client.ErrInvalidInput)

	_, err = svc.Save(ctx, client.Client{Document: "1", Name: "X", Type: client.TypeUnknown})
	require.ErrorIs(t, err, client.ErrInvalidInput)
}

func TestClientService_SaveReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	existing := client.Client{Document: "11", Type: client.TypeCNPJ, Name: "Old", Email: "old@example.com", City: "Santos"}

	repo := &mocks.ClientRepository{}
	repo.On("Get", ctx, "11").Return(existing, true, nil)
	repo.On("Upsert", ctx, mock.MatchedBy(func(c *client.Client) bool {
		return c.Name == "New" && c.Email == "" && c.City == ""
	})).Return(nil)

	saved, err := client.NewService(repo, nil).Save(ctx, client.Client{Document: "11", Type: client.TypeCNPJ, Name: "New"})
	require.NoError(t, err)
	require.Equal(t, "New", saved.Name)
	require.Empty(t, saved.Email)
	repo.AssertExpectations(t)
}

func TestClientService_TypeImmutable(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	repo.On("Get", ctx, "11").Return(client.Client{Document: "11", Type: client.TypeCNPJ, Name: "Acme"}, true, nil)

	_, err := client.NewService(repo, nil).Save(ctx, client.Client{Document: "11", Type: client.TypeCPF, Name: "Acme"})
	require.ErrorIs(t, err, client.ErrTypeImmutable)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestClientService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	repo.On("Get", ctx, "999").Return(client.Client{}, false, nil)

	svc := client.NewService(repo, nil)
	_, err := svc.Get(ctx, "999")
	require.ErrorIs(t, err, client.ErrClientNotFound)

	_, found, err := svc.Find(ctx, " 999 ")
	require.NoError(t, err)
	require.False(t, found)
}

func TestClientService_ListSortedByName(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	repo.On("List", ctx).Return([]client.Client{
		{Document: "3", Name: "carlos"},
		{Document: "1", Name: "Ana"},
		{Document: "2", Name: "Bruno"},
	}, nil)

	list, err := client.NewService(repo, nil).List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, []string{list[0].Document, list[1].Document, list[2].Document})
}

func TestDetectType(t *testing.T) {
	require.Equal(t, client.TypeCPF, client.DetectType("123.456.789-00"))
	require.Equal(t, client.TypeCNPJ, client.DetectType("12.345.678/0001-90"))
	require.Equal(t, client.TypeUnknown, client.DetectType("123"))
	require.Equal(t, "12345678000190", client.Digits("12.345.678/0001-90"))
}
