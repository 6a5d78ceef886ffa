package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// gatewayCall records one call against the fake gateway.
type gatewayCall struct {
	method   string
	chatID   int64
	text     string // message text or media caption
	url      string
	items    []domain.AlbumItem
	keyboard domain.InlineKeyboard
}

type fakeGateway struct {
	calls []gatewayCall

	sendMessageErr error
	sendVideoErr   error
	nextMessageID  int
}

func (g *fakeGateway) SendMessage(_ context.Context, chatID int64, text string, keyboard domain.InlineKeyboard) (int, error) {
	g.calls = append(g.calls, gatewayCall{method: "SendMessage", chatID: chatID, text: text, keyboard: keyboard})
	if g.sendMessageErr != nil {
		return 0, g.sendMessageErr
	}
	g.nextMessageID++
	return g.nextMessageID, nil
}

func (g *fakeGateway) SendVideo(_ context.Context, chatID int64, url, caption string) error {
	g.calls = append(g.calls, gatewayCall{method: "SendVideo", chatID: chatID, url: url, text: caption})
	return g.sendVideoErr
}

func (g *fakeGateway) SendPhoto(_ context.Context, chatID int64, url, caption string) error {
	g.calls = append(g.calls, gatewayCall{method: "SendPhoto", chatID: chatID, url: url, text: caption})
	return nil
}

func (g *fakeGateway) SendMediaGroup(_ context.Context, chatID int64, items []domain.AlbumItem) error {
	g.calls = append(g.calls, gatewayCall{method: "SendMediaGroup", chatID: chatID, items: items})
	return nil
}

func (g *fakeGateway) AnswerCallback(_ context.Context, callbackID string) error {
	g.calls = append(g.calls, gatewayCall{method: "AnswerCallback", text: callbackID})
	return nil
}

func (g *fakeGateway) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	g.calls = append(g.calls, gatewayCall{method: "DeleteMessage", chatID: chatID, text: fmt.Sprint(messageID)})
	return nil
}

func (g *fakeGateway) methods() []string {
	names := make([]string, 0, len(g.calls))
	for _, call := range g.calls {
		names = append(names, call.method)
	}
	return names
}

type fakeResolver struct {
	media *domain.ResolvedMedia
	err   error
}

func (r *fakeResolver) Resolve(_ context.Context, _ string) (*domain.ResolvedMedia, error) {
	return r.media, r.err
}

func newTestDispatcher(gateway *fakeGateway, res *fakeResolver) *Dispatcher {
	return NewDispatcher(gateway, res, NewClassifier("testbot"), "testbot", "testchannel", zerolog.Nop())
}

func messageEvent(text string) *domain.ChatEvent {
	return &domain.ChatEvent{Message: &domain.MessageEvent{ChatID: 42, Text: text}}
}

func TestDispatch_StartCommandSendsWelcomeWithKeyboard(t *testing.T) {
	gateway := &fakeGateway{}
	d := newTestDispatcher(gateway, &fakeResolver{})

	d.Dispatch(context.Background(), messageEvent("/start"))

	require.Equal(t, []string{"SendMessage"}, gateway.methods())
	assert.Contains(t, gateway.calls[0].text, "Welcome to TikTok Downloader Bot")
	require.NotNil(t, gateway.calls[0].keyboard)
	assert.Equal(t, "share", gateway.calls[0].keyboard[0][0].CallbackData)
}

func TestDispatch_CommandWithBotSuffix(t *testing.T) {
	gateway := &fakeGateway{}
	d := newTestDispatcher(gateway, &fakeResolver{})

	d.Dispatch(context.Background(), messageEvent("/help@testbot"))

	require.Equal(t, []string{"SendMessage"}, gateway.methods())
	assert.Contains(t, gateway.calls[0].text, "How to use")
}

func TestDispatch_EmptyTextIsTerminal(t *testing.T) {
	gateway := &fakeGateway{}
	d := newTestDispatcher(gateway, &fakeResolver{})

	d.Dispatch(context.Background(), messageEvent("   "))

	assert.Empty(t, gateway.calls)
}

func TestDispatch_NoLinkSendsInvalidMessage(t *testing.T) {
	gateway := &fakeGateway{}
	d := newTestDispatcher(gateway, &fakeResolver{})

	d.Dispatch(context.Background(), messageEvent("hello, can you download something?"))

	require.Equal(t, []string{"SendMessage"}, gateway.methods())
	assert.Contains(t, gateway.calls[0].text, "Invalid TikTok link")
}

func TestDispatch_VideoFlow(t *testing.T) {
	gateway := &fakeGateway{}
	res := &fakeResolver{media: &domain.ResolvedMedia{
		Title:           "cool clip",
		Creator:         "someone",
		VideoCandidates: []string{"https://cdn.example.com/clip.mp4"},
	}}
	d := newTestDispatcher(gateway, res)

	d.Dispatch(context.Background(), messageEvent("check this out https://vm.tiktok.com/ZMabc123/"))

	require.Equal(t, []string{"SendMessage", "DeleteMessage", "SendVideo", "SendMessage"}, gateway.methods())
	assert.Contains(t, gateway.calls[0].text, "please wait")
	assert.Equal(t, "https://cdn.example.com/clip.mp4", gateway.calls[2].url)
	assert.Contains(t, gateway.calls[2].text, "✅ Download Completed")
	assert.Contains(t, gateway.calls[2].text, "cool clip")
	assert.Contains(t, gateway.calls[3].text, "Video ready")
}

func TestDispatch_AlbumFlow(t *testing.T) {
	gateway := &fakeGateway{}
	res := &fakeResolver{media: &domain.ResolvedMedia{
		ImageURLs: []string{
			"https://cdn.example.com/1.jpg",
			"https://cdn.example.com/2.jpg",
		},
	}}
	d := newTestDispatcher(gateway, res)

	d.Dispatch(context.Background(), messageEvent("https://vm.tiktok.com/ZMabc123/"))

	require.Equal(t, []string{"SendMessage", "DeleteMessage", "SendMediaGroup", "SendMessage"}, gateway.methods())
	items := gateway.calls[2].items
	require.Len(t, items, 2)
	assert.NotEmpty(t, items[0].Caption)
	assert.Empty(t, items[1].Caption)
}

func TestDispatch_ResolverUpstreamErrorSendsTryAgain(t *testing.T) {
	gateway := &fakeGateway{}
	res := &fakeResolver{err: fmt.Errorf("resolve: %w", domain.ErrUpstream)}
	d := newTestDispatcher(gateway, res)

	d.Dispatch(context.Background(), messageEvent("https://vm.tiktok.com/ZMabc123/"))

	require.Equal(t, []string{"SendMessage", "DeleteMessage", "SendMessage"}, gateway.methods())
	assert.Contains(t, gateway.calls[2].text, "try again later")
}

func TestDispatch_ResolverInvalidURLSendsInvalidMessage(t *testing.T) {
	gateway := &fakeGateway{}
	res := &fakeResolver{err: domain.ErrInvalidURL}
	d := newTestDispatcher(gateway, res)

	d.Dispatch(context.Background(), messageEvent("https://vm.tiktok.com/ZMabc123/"))

	require.Equal(t, []string{"SendMessage", "DeleteMessage", "SendMessage"}, gateway.methods())
	assert.Contains(t, gateway.calls[2].text, "Invalid TikTok link")
}

func TestDispatch_NoAssetsSendsInvalidMessage(t *testing.T) {
	gateway := &fakeGateway{}
	// Audio only resolves to an unresolvable plan.
	res := &fakeResolver{media: &domain.ResolvedMedia{AudioURL: "https://cdn.example.com/a.mp3"}}
	d := newTestDispatcher(gateway, res)

	d.Dispatch(context.Background(), messageEvent("https://vm.tiktok.com/ZMabc123/"))

	require.Equal(t, []string{"SendMessage", "DeleteMessage", "SendMessage"}, gateway.methods())
	assert.Contains(t, gateway.calls[2].text, "Invalid TikTok link")
}

func TestDispatch_DeliveryFailureIsSwallowed(t *testing.T) {
	gateway := &fakeGateway{sendVideoErr: errors.New("bad request: wrong file")}
	res := &fakeResolver{media: &domain.ResolvedMedia{
		VideoCandidates: []string{"https://cdn.example.com/clip.mp4"},
	}}
	d := newTestDispatcher(gateway, res)

	d.Dispatch(context.Background(), messageEvent("https://vm.tiktok.com/ZMabc123/"))

	// No engagement message and no error message after a failed send.
	assert.Equal(t, []string{"SendMessage", "DeleteMessage", "SendVideo"}, gateway.methods())
}

func TestDispatch_CallbackShare(t *testing.T) {
	gateway := &fakeGateway{}
	d := newTestDispatcher(gateway, &fakeResolver{})

	d.Dispatch(context.Background(), &domain.ChatEvent{
		Callback: &domain.CallbackEvent{ID: "cb-1", FromChatID: 42, Data: "share"},
	})

	require.Equal(t, []string{"AnswerCallback", "SendMessage"}, gateway.methods())
	assert.Equal(t, "cb-1", gateway.calls[0].text)
	assert.Contains(t, gateway.calls[1].text, "https://t.me/testbot?start=ref_42")
}

func TestDispatch_CallbackUnknownTagIsTerminal(t *testing.T) {
	gateway := &fakeGateway{}
	d := newTestDispatcher(gateway, &fakeResolver{})

	d.Dispatch(context.Background(), &domain.ChatEvent{
		Callback: &domain.CallbackEvent{ID: "cb-2", FromChatID: 42, Data: "something_else"},
	})

	assert.Equal(t, []string{"AnswerCallback"}, gateway.methods())
}

func TestDispatch_NilEvent(t *testing.T) {
	gateway := &fakeGateway{}
	d := newTestDispatcher(gateway, &fakeResolver{})

	d.Dispatch(context.Background(), nil)

	assert.Empty(t, gateway.calls)
}
