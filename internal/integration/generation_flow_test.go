package integration

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dishlet/backend/internal/service"
	"github.com/dishlet/backend/internal/testhelpers"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestDraftBatchCacheRoundTrip(t *testing.T) {
	client := setupRedis(t)
	drafts := service.NewDraftService(client)
	ctx := context.Background()

	batch := &service.DraftBatch{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Recipes: []service.RecipeDraft{
			{
				Name:                 "Cached Curry",
				Ingredients:          "lentils, spices",
				Instructions:         []string{"Simmer lentils", "Add spices"},
				Preference:           "vegan",
				InstructionsLanguage: "en",
			},
		},
	}

	require.NoError(t, drafts.SaveBatch(ctx, batch))

	got, err := drafts.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, batch.ID, got.ID)
	assert.Equal(t, batch.UserID, got.UserID)
	require.Len(t, got.Recipes, 1)
	assert.Equal(t, "Cached Curry", got.Recipes[0].Name)
	assert.Equal(t, []string{"Simmer lentils", "Add spices"}, got.Recipes[0].Instructions)

	// The cache entry carries an expiry.
	ttl, err := client.TTL(ctx, "recipe:batch:"+batch.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 24*time.Hour)

	require.NoError(t, drafts.DeleteBatch(ctx, batch.ID))
	_, err = drafts.GetBatch(ctx, batch.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetBatchMissing(t *testing.T) {
	client := setupRedis(t)
	drafts := service.NewDraftService(client)

	_, err := drafts.GetBatch(context.Background(), "never-existed")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// TestSaveFlowOnPostgres runs the save-and-streak flow against a real
// PostgreSQL instance, covering the jsonb columns sqlite only emulates.
func TestSaveFlowOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)

	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	profileService := service.NewProfileService(db)
	ctx := context.Background()

	_, err := authService.Register("Integration Cook", "it@example.com", "password123")
	require.NoError(t, err)
	user, err := authService.GetUserByEmail("it@example.com")
	require.NoError(t, err)

	draft := &service.RecipeDraft{
		Name:                 "Pepper Pasta",
		Ingredients:          "pasta, pepper, olive oil",
		Instructions:         []string{"Boil pasta", "Toss with pepper and oil"},
		CookingTime:          "20 min",
		Difficulty:           "Easy",
		Cuisine:              "Italian",
		Servings:             2,
		Preference:           "veg",
		InstructionsLanguage: "en",
	}

	saved, err := recipeService.SaveDraft(ctx, user.ID, draft)
	require.NoError(t, err)

	profile, err := profileService.GetProfile(ctx, user.ID)
	require.NoError(t, err)

	update := service.ComputeStreakUpdate(
		time.Now(), profile.LastCookedDate, profile.StreakCount,
		draft.Preference, draft.Ingredients, profile.Badges,
	)
	profile, err = profileService.RecordCookingActivity(ctx, user.ID, update)
	require.NoError(t, err)

	assert.Equal(t, 1, profile.StreakCount)
	assert.Contains(t, []string(profile.Badges), service.BadgeQuickChef)
	assert.Contains(t, []string(profile.Badges), service.BadgeSpiceMaster)

	recipes, err := recipeService.ListRecipes(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, saved.ID, recipes[0].ID)
	assert.Equal(t, []string{"Boil pasta", "Toss with pepper and oil"}, []string(recipes[0].Instructions))
}
