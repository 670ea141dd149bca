package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkillForge_Go/internal/apiclient"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake SkillForge API and a Discord session whose
// REST calls are captured instead of sent.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu    sync.Mutex
	edits []discordgo.WebhookEdit
}

// SetupTestContext starts the fake API and wires a capturing Discord session
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	client := apiclient.NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPatch {
				var body discordgo.WebhookEdit
				if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
					ctx.mu.Lock()
					ctx.edits = append(ctx.edits, body)
					ctx.mu.Unlock()
				}
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(server.Close)
	return ctx
}

// LastEdit returns the most recent interaction response edit
func (c *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.edits) == 0 {
		t.Fatal("no interaction response was edited")
	}
	return c.edits[len(c.edits)-1]
}

// WriteJSON writes a JSON success response
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// createTestInteraction builds a guild slash-command interaction
func createTestInteraction(name string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-1", Username: "Tester"},
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// intOption mirrors Discord's JSON decoding, which yields float64 for numbers
func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}
