package gemini

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// Dhan-Bot persona used to seed every chat session.
const systemInstruction = "You are a helpful AI assistant for 'AmaderDhan', an application dedicated to helping Bangladeshi rice farmers with sustainable and organic farming. Your name is 'Dhan-Bot'. Answer questions about native rice seeds, soil health, marketplace products, and general farming advice relevant to Bangladesh. Keep your answers concise and friendly."

const (
	greetingText = "Hello! I'm Dhan-Bot. How can I help you with your farming today?"
	apologyText  = "Sorry, I'm having trouble connecting right now."
)

type ChatMessage struct {
	ID   string `json:"id"`
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// streamFunc yields the model's reply as text chunks. Yielding a non-nil
// error ends the stream.
type streamFunc func(ctx context.Context, text string) iter.Seq2[string, error]

// ChatSession is one server-held Dhan-Bot conversation. The transcript is
// append-only and every message carries its own id, so a streamed response
// only ever mutates the message it belongs to. Sends are serialized per
// session; a second send waits for the first to finish. Transcript reads stay
// available while a reply streams.
type ChatSession struct {
	ID string

	sendMu sync.Mutex // serializes Send calls
	stream streamFunc

	mu       sync.Mutex // guards messages
	messages []ChatMessage
}

func newChatSession(stream streamFunc) *ChatSession {
	return &ChatSession{
		ID:     uuid.NewString(),
		stream: stream,
		messages: []ChatMessage{
			{ID: uuid.NewString(), Role: "model", Text: greetingText},
		},
	}
}

// NewChatSession opens a persona-seeded chat and records the fixed greeting.
func (c *Client) NewChatSession(ctx context.Context) (*ChatSession, error) {
	chat, err := c.client.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return newChatSession(genaiStream(chat)), nil
}

// genaiStream adapts the SDK chat stream to plain text chunks.
func genaiStream(chat *genai.Chat) streamFunc {
	return func(ctx context.Context, text string) iter.Seq2[string, error] {
		return func(yield func(string, error) bool) {
			for resp, err := range chat.SendMessageStream(ctx, genai.Part{Text: text}) {
				if err != nil {
					yield("", err)
					return
				}
				if !yield(resp.Text(), nil) {
					return
				}
			}
		}
	}
}

// Send appends the user message, streams the model reply, and invokes onChunk
// for every text fragment as it arrives, tagged with the reply's message id.
// If the stream fails the reply is finalized with the fixed apology text and
// the transport error is returned. Cancelling ctx aborts the upstream stream.
func (s *ChatSession) Send(ctx context.Context, text string, onChunk func(messageID, chunk string)) (ChatMessage, error) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	reply := ChatMessage{ID: uuid.NewString(), Role: "model"}

	s.mu.Lock()
	s.messages = append(s.messages, ChatMessage{ID: uuid.NewString(), Role: "user", Text: text})
	s.messages = append(s.messages, reply)
	idx := len(s.messages) - 1
	s.mu.Unlock()

	for chunk, err := range s.stream(ctx, text) {
		if err != nil {
			s.mu.Lock()
			s.messages[idx].Text = apologyText
			final := s.messages[idx]
			s.mu.Unlock()
			return final, fmt.Errorf("chat stream failed: %w", err)
		}
		if chunk == "" {
			continue
		}
		s.mu.Lock()
		s.messages[idx].Text += chunk
		s.mu.Unlock()
		if onChunk != nil {
			onChunk(reply.ID, chunk)
		}
	}

	s.mu.Lock()
	final := s.messages[idx]
	s.mu.Unlock()
	return final, nil
}

// Transcript returns a copy of the session's messages.
func (s *ChatSession) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// SessionStore keeps live chat sessions in memory, keyed by session id.
// Nothing is persisted; a restart drops all conversations.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*ChatSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*ChatSession)}
}

func (st *SessionStore) Add(s *ChatSession) {
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
}

func (st *SessionStore) Get(id string) (*ChatSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
