package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	tele "gopkg.in/telebot.v3"
)

// TelegramCall is one recorded Bot API request
type TelegramCall struct {
	Method string
	Params map[string]interface{}
}

// TelegramAPI is a fake Bot API server that records requests
type TelegramAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	calls    []TelegramCall
	failures map[string]string
}

// NewTelegramAPI starts a fake Bot API server, closed when the test ends
func NewTelegramAPI(t *testing.T) *TelegramAPI {
	t.Helper()

	api := &TelegramAPI{failures: make(map[string]string)}
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.server.Close)
	return api
}

// NewBot creates an offline bot talking to the fake server
func (a *TelegramAPI) NewBot(t *testing.T) *tele.Bot {
	t.Helper()

	bot, err := tele.NewBot(tele.Settings{
		URL:     a.server.URL,
		Token:   "test-token",
		Offline: true,
	})
	if err != nil {
		t.Fatalf("failed to create bot: %v", err)
	}
	return bot
}

// FailWith makes every request to method fail with a Bot API error description
func (a *TelegramAPI) FailWith(method, description string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures[method] = description
}

// Methods returns the called methods in order
func (a *TelegramAPI) Methods() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	methods := make([]string, 0, len(a.calls))
	for _, c := range a.calls {
		methods = append(methods, c.Method)
	}
	return methods
}

// LastCall returns the latest request to method
func (a *TelegramAPI) LastCall(method string) (TelegramCall, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := len(a.calls) - 1; i >= 0; i-- {
		if a.calls[i].Method == method {
			return a.calls[i], true
		}
	}
	return TelegramCall{}, false
}

func (a *TelegramAPI) serve(w http.ResponseWriter, r *http.Request) {
	method := path.Base(r.URL.Path)

	params := map[string]interface{}{}
	_ = json.NewDecoder(r.Body).Decode(&params)

	a.mu.Lock()
	a.calls = append(a.calls, TelegramCall{Method: method, Params: params})
	description, fail := a.failures[method]
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	var resp interface{}
	switch {
	case fail:
		resp = map[string]interface{}{"ok": false, "error_code": 400, "description": description}
	case method == "answerCallbackQuery":
		resp = map[string]interface{}{"ok": true, "result": true}
	default:
		resp = map[string]interface{}{
			"ok": true,
			"result": map[string]interface{}{
				"message_id": 100,
				"date":       0,
				"chat":       map[string]interface{}{"id": 1},
			},
		}
	}
	_ = json.NewEncoder(w).Encode(resp)
}
