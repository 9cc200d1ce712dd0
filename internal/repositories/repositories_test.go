package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"inventory/internal/database"
	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stores struct {
	users    repositories.UserRepository
	products repositories.ProductRepository
}

// newStores returns every implementation, each backed by a fresh store.
func newStores() map[string]func(t *testing.T) stores {
	return map[string]func(t *testing.T) stores{
		"gorm": func(t *testing.T) stores {
			dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
			db, err := database.Open("sqlite", dsn)
			require.NoError(t, err)
			require.NoError(t, database.Migrate(db))
			t.Cleanup(func() { _ = database.Close(db) })
			return stores{
				users:    repositories.NewGORMUserRepository(db),
				products: repositories.NewGORMProductRepository(db),
			}
		},
		"memory": func(t *testing.T) stores {
			return stores{
				users:    repositories.NewInMemoryUserRepository(),
				products: repositories.NewInMemoryProductRepository(),
			}
		},
	}
}

func TestUserRepository(t *testing.T) {
	for name, newStore := range newStores() {
		t.Run(name, func(t *testing.T) {
			repo := newStore(t).users

			user := &models.User{Name: "A", Username: "a1", PasswordHash: "hash"}
			require.NoError(t, repo.Create(user))
			assert.NotZero(t, user.ID)

			byID, err := repo.GetByID(user.ID)
			require.NoError(t, err)
			assert.Equal(t, "a1", byID.Username)

			byName, err := repo.GetByUsername("a1")
			require.NoError(t, err)
			assert.Equal(t, user.ID, byName.ID)
			assert.Equal(t, "hash", byName.PasswordHash)

			_, err = repo.GetByUsername("nobody")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
			_, err = repo.GetByID(user.ID + 100)
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			err = repo.Create(&models.User{Name: "B", Username: "a1", PasswordHash: "other"})
			assert.ErrorIs(t, err, repositories.ErrDuplicateUsername)

			byID.Name = "Renamed"
			require.NoError(t, repo.Update(byID))
			reloaded, err := repo.GetByID(user.ID)
			require.NoError(t, err)
			assert.Equal(t, "Renamed", reloaded.Name)
			assert.Equal(t, "a1", reloaded.Username)

			// saving unchanged values is not a miss
			require.NoError(t, repo.Update(reloaded))

			ghost := &models.User{ID: user.ID + 100, Name: "Ghost", Username: "ghost", PasswordHash: "hash"}
			assert.ErrorIs(t, repo.Update(ghost), repositories.ErrNotFound)
			_, err = repo.GetByID(ghost.ID)
			assert.ErrorIs(t, err, repositories.ErrNotFound, "update must not insert")
			_, err = repo.GetByUsername("ghost")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestProductRepository(t *testing.T) {
	for name, newStore := range newStores() {
		t.Run(name, func(t *testing.T) {
			repo := newStore(t).products
			createdAt := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

			widget := &models.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 5, CreatedAt: createdAt}
			gadget := &models.Product{Name: "Gadget", Description: "shiny", Price: decimal.RequireFromString("120.50"), Stock: 1, CreatedAt: createdAt}
			require.NoError(t, repo.Create(widget))
			require.NoError(t, repo.Create(gadget))
			assert.NotZero(t, widget.PID)
			assert.Greater(t, gadget.PID, widget.PID)

			all, err := repo.GetAll()
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "Widget", all[0].Name)
			assert.Equal(t, "Gadget", all[1].Name)

			got, err := repo.GetByID(widget.PID)
			require.NoError(t, err)
			assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")), got.Price.String())
			assert.True(t, got.CreatedAt.Equal(createdAt))

			got.Stock = 7
			got.CreatedAt = createdAt.Add(time.Hour)
			require.NoError(t, repo.Update(got))
			reloaded, err := repo.GetByID(widget.PID)
			require.NoError(t, err)
			assert.Equal(t, 7, reloaded.Stock)
			assert.True(t, reloaded.CreatedAt.Equal(createdAt), "created_at must not change on update")
			require.NoError(t, repo.Update(reloaded))

			require.NoError(t, repo.Delete(widget.PID))
			_, err = repo.GetByID(widget.PID)
			assert.ErrorIs(t, err, repositories.ErrNotFound)
			assert.ErrorIs(t, repo.Delete(widget.PID), repositories.ErrNotFound)

			// an update racing a delete must not bring the product back
			reloaded.Stock = 9
			assert.ErrorIs(t, repo.Update(reloaded), repositories.ErrNotFound)
			_, err = repo.GetByID(widget.PID)
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			all, err = repo.GetAll()
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestProductRepository_EmptyList(t *testing.T) {
	for name, newStore := range newStores() {
		t.Run(name, func(t *testing.T) {
			all, err := newStore(t).products.GetAll()
			require.NoError(t, err)
			assert.NotNil(t, all)
			assert.Empty(t, all)
		})
	}
}
