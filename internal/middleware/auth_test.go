package middleware

import (
	"fmt"
	"testing"

	"flashcards/internal/service"
	"flashcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

const testUserID int64 = 42

func messageUpdate(text string) tele.Update {
	return tele.Update{
		Message: &tele.Message{
			ID:     3,
			Sender: &tele.User{ID: testUserID},
			Chat:   &tele.Chat{ID: testUserID},
			Text:   text,
		},
	}
}

func callbackUpdate(unique string) tele.Update {
	return tele.Update{
		Callback: &tele.Callback{
			ID:      "cb-1",
			Sender:  &tele.User{ID: testUserID},
			Message: &tele.Message{ID: 7, Chat: &tele.Chat{ID: testUserID}},
			Unique:  unique,
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		update          tele.Update
		user            bool
		authorized      bool
		repoError       error
		expectNext      bool
		expectedMethods []string
		expectedText    string
		expectAlert     bool
	}{
		{
			name:            "authorized message passes through",
			update:          messageUpdate("/reset"),
			user:            true,
			authorized:      true,
			expectNext:      true,
			expectedMethods: []string{},
		},
		{
			name:            "authorized button passes through",
			update:          callbackUpdate("next"),
			user:            true,
			authorized:      true,
			expectNext:      true,
			expectedMethods: []string{},
		},
		{
			name:            "unauthorized button gets an alert",
			update:          callbackUpdate("next"),
			user:            true,
			expectedMethods: []string{"answerCallbackQuery"},
			expectedText:    msgUnauthorized,
			expectAlert:     true,
		},
		{
			name:            "unauthorized message gets a reply",
			update:          messageUpdate("/reset"),
			user:            true,
			expectedMethods: []string{"sendMessage"},
			expectedText:    msgUnauthorized,
		},
		{
			name:            "repository error on button",
			update:          callbackUpdate("toggle_zen"),
			repoError:       fmt.Errorf("db error"),
			expectedMethods: []string{"answerCallbackQuery"},
			expectedText:    msgError,
			expectAlert:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := testutil.NewTelegramAPI(t)
			bot := api.NewBot(t)

			userRepo := new(testutil.MockUserRepository)
			if tt.user {
				userRepo.On("EnsureUser", testUserID).Return(testutil.NewTestUser(testUserID, tt.authorized), nil)
			} else {
				userRepo.On("EnsureUser", testUserID).Return(nil, tt.repoError)
			}

			mw := AuthMiddleware(service.NewAuthService(userRepo, "secret"), testutil.NewTestLogger())

			called := false
			handler := mw(func(c tele.Context) error {
				called = true
				return nil
			})

			err := handler(bot.NewContext(tt.update))

			require.NoError(t, err)
			assert.Equal(t, tt.expectNext, called)
			assert.Equal(t, tt.expectedMethods, api.Methods())

			for _, method := range tt.expectedMethods {
				call, ok := api.LastCall(method)
				require.True(t, ok)
				assert.Equal(t, tt.expectedText, call.Params["text"])
				if tt.expectAlert {
					assert.Equal(t, true, call.Params["show_alert"])
				}
			}
			userRepo.AssertExpectations(t)
		})
	}
}
