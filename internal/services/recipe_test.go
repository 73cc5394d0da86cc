package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-recipe-generator/internal/assistant"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"
)

func TestRecipeService_Generate_RequiresIngredients(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := services.NewRecipeService(
		services.NewMockRecipeWriter(ctrl),
		services.NewMockRecipeReader(ctrl),
		assistant.NewMockAssistant(ctrl),
		nil,
	)

	res, err := svc.Generate(context.Background(), nil, nil, nil)
	assert.ErrorIs(t, err, services.ErrIngredientsRequired)
	assert.Nil(t, res)
}

func TestRecipeService_Generate_GuestWithMockAssistant(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockRecipeWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := services.NewRecipeService(writer, services.NewMockRecipeReader(ctrl), assistant.NewMock(), nil)

	res, err := svc.Generate(context.Background(), []string{"番茄", "鸡蛋"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, res.ID)
	assert.Len(t, res.Recipes, 2)
}

func TestRecipeService_Generate_SignedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockRecipeWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	userID, rowID := uuid.New(), uuid.New()

	writer.EXPECT().
		Save(gomock.Any(), userID, "番茄,鸡蛋", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, recipes []models.Recipe) (uuid.UUID, error) {
			assert.Len(t, recipes, 2)
			return rowID, nil
		})
	kafkaWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			if !assert.Len(t, msgs, 1) {
				return nil
			}
			var event models.RecipeEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, rowID.String(), event.RecipeID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 2, event.RecipeCount)
			assert.Equal(t, []byte(userID.String()), msgs[0].Key)
			return nil
		})

	svc := services.NewRecipeService(writer, services.NewMockRecipeReader(ctrl), assistant.NewMock(), kafkaWriter)

	res, err := svc.Generate(context.Background(), []string{"番茄", "鸡蛋"}, []string{"辣"}, &userID)
	svc.Wait()
	require.NoError(t, err)
	require.NotNil(t, res.ID)
	assert.Equal(t, rowID, *res.ID)
}

func TestRecipeService_Generate_SaveFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockRecipeWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	userID := uuid.New()

	writer.EXPECT().Save(gomock.Any(), userID, "番茄", gomock.Any()).Return(uuid.Nil, errors.New("db down"))
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Times(0)

	svc := services.NewRecipeService(writer, services.NewMockRecipeReader(ctrl), assistant.NewMock(), kafkaWriter)

	res, err := svc.Generate(context.Background(), []string{"番茄"}, nil, &userID)
	require.NoError(t, err)
	assert.Nil(t, res.ID)
	assert.Len(t, res.Recipes, 2)
}

func TestRecipeService_Generate_KafkaFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockRecipeWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	userID, rowID := uuid.New(), uuid.New()

	writer.EXPECT().Save(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(rowID, nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := services.NewRecipeService(writer, services.NewMockRecipeReader(ctrl), assistant.NewMock(), kafkaWriter)

	res, err := svc.Generate(context.Background(), []string{"番茄"}, nil, &userID)
	svc.Wait()
	require.NoError(t, err)
	assert.Equal(t, rowID, *res.ID)
}

func TestRecipeService_Generate_DoesNotWaitForKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockRecipeWriter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)
	userID, rowID := uuid.New(), uuid.New()

	release := make(chan struct{})
	published := make(chan struct{})
	writer.EXPECT().Save(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(rowID, nil)
	kafkaWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ...kafka.Message) error {
			<-release
			close(published)
			return ctx.Err()
		})

	svc := services.NewRecipeService(writer, services.NewMockRecipeReader(ctrl), assistant.NewMock(), kafkaWriter)

	reqCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		res, err := svc.Generate(reqCtx, []string{"番茄"}, nil, &userID)
		assert.NoError(t, err)
		assert.Equal(t, rowID, *res.ID)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Generate waited for the Kafka writer")
	}

	// the request ending must not cancel the publish
	cancel()
	close(release)
	svc.Wait()

	select {
	case <-published:
	default:
		t.Fatal("event was not published")
	}
}

func TestRecipeService_Generate_AssistantFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	asst := assistant.NewMockAssistant(ctrl)
	asst.EXPECT().Live().Return(true).AnyTimes()
	asst.EXPECT().SuggestRecipes(gomock.Any(), []string{"番茄"}, []string(nil)).Return(nil, errors.New("rate limited"))

	svc := services.NewRecipeService(services.NewMockRecipeWriter(ctrl), services.NewMockRecipeReader(ctrl), asst, nil)

	res, err := svc.Generate(context.Background(), []string{"番茄"}, nil, nil)
	assert.ErrorIs(t, err, services.ErrUpstream)
	assert.Nil(t, res)
}

func TestRecipeService_ToggleFavorite(t *testing.T) {
	recipeID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		repoFav bool
		repoErr error
		wantFav bool
		wantErr error
	}{
		{name: "now favorite", repoFav: true, wantFav: true},
		{name: "no longer favorite", repoFav: false, wantFav: false},
		{name: "missing or foreign", repoErr: repositories.ErrNotFound, wantErr: services.ErrRecipeNotFound},
		{name: "db error", repoErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := services.NewMockRecipeWriter(ctrl)
			writer.EXPECT().ToggleFavorite(gomock.Any(), recipeID, userID).Return(tt.repoFav, tt.repoErr)

			svc := services.NewRecipeService(writer, services.NewMockRecipeReader(ctrl), assistant.NewMock(), nil)
			fav, err := svc.ToggleFavorite(context.Background(), recipeID, userID)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFav, fav)
		})
	}
}

func TestRecipeService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockRecipeReader(ctrl)
	userID := uuid.New()
	rows := []models.RecipeDB{{ID: uuid.New(), UserID: userID, Ingredients: "番茄"}}

	reader.EXPECT().ListByUser(gomock.Any(), userID, services.HistoryLimit).Return(rows, nil)

	svc := services.NewRecipeService(services.NewMockRecipeWriter(ctrl), reader, assistant.NewMock(), nil)
	got, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Equal(t, 20, services.HistoryLimit)
}
