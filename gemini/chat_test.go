package gemini

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkStream yields the given chunks in order, then fail (if set).
func chunkStream(chunks []string, fail error) streamFunc {
	return func(ctx context.Context, text string) iter.Seq2[string, error] {
		return func(yield func(string, error) bool) {
			for _, chunk := range chunks {
				if !yield(chunk, nil) {
					return
				}
			}
			if fail != nil {
				yield("", fail)
			}
		}
	}
}

func TestNewSessionStartsWithGreeting(t *testing.T) {
	session := newChatSession(chunkStream(nil, nil))

	transcript := session.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, "model", transcript[0].Role)
	assert.Equal(t, greetingText, transcript[0].Text)
	assert.NotEmpty(t, transcript[0].ID)
}

func TestSendAppendsChunksToItsOwnMessage(t *testing.T) {
	session := newChatSession(chunkStream([]string{"Rice ", "", "thrives."}, nil))
	greeting := session.Transcript()[0]

	var chunkIDs, chunks []string
	reply, err := session.Send(context.Background(), "Tell me about rice", func(messageID, chunk string) {
		chunkIDs = append(chunkIDs, messageID)
		chunks = append(chunks, chunk)
	})
	require.NoError(t, err)
	assert.Equal(t, "Rice thrives.", reply.Text)
	assert.Equal(t, "model", reply.Role)

	transcript := session.Transcript()
	require.Len(t, transcript, 3)
	// The greeting is untouched; only the reply's own message grew.
	assert.Equal(t, greeting, transcript[0])
	assert.Equal(t, "user", transcript[1].Role)
	assert.Equal(t, "Tell me about rice", transcript[1].Text)
	assert.Equal(t, reply.ID, transcript[2].ID)
	assert.Equal(t, reply.Text, transcript[2].Text)

	// Every chunk was tagged with the reply's id; empty chunks are dropped.
	assert.Equal(t, []string{"Rice ", "thrives."}, chunks)
	for _, id := range chunkIDs {
		assert.Equal(t, reply.ID, id)
	}
}

func TestSendStreamFailureFinalizesWithApology(t *testing.T) {
	upstream := errors.New("connection reset")
	session := newChatSession(chunkStream([]string{"partial"}, upstream))

	reply, err := session.Send(context.Background(), "hello", nil)
	require.ErrorIs(t, err, upstream)
	assert.Equal(t, apologyText, reply.Text)

	transcript := session.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, "user", transcript[1].Role)
	assert.Equal(t, apologyText, transcript[2].Text)
	assert.Equal(t, reply.ID, transcript[2].ID)
}

func TestRepliesGetDistinctMessageIDs(t *testing.T) {
	session := newChatSession(chunkStream([]string{"ok"}, nil))

	first, err := session.Send(context.Background(), "one", nil)
	require.NoError(t, err)
	second, err := session.Send(context.Background(), "two", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	// The first reply kept its text after the second send.
	transcript := session.Transcript()
	require.Len(t, transcript, 5)
	assert.Equal(t, first.Text, transcript[2].Text)
}

func TestTranscriptReadableWhileStreaming(t *testing.T) {
	var session *ChatSession
	stream := func(ctx context.Context, text string) iter.Seq2[string, error] {
		return func(yield func(string, error) bool) {
			if !yield("Nazir", nil) {
				return
			}
			// A concurrent transcript read mid-stream sees the partial reply.
			transcript := session.Transcript()
			assert.Equal(t, "Nazir", transcript[len(transcript)-1].Text)
			yield("shail", nil)
		}
	}
	session = newChatSession(stream)

	reply, err := session.Send(context.Background(), "best seed?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Nazirshail", reply.Text)
}

func TestTranscriptReturnsCopy(t *testing.T) {
	session := newChatSession(chunkStream(nil, nil))

	transcript := session.Transcript()
	transcript[0].Text = "tampered"

	assert.Equal(t, greetingText, session.Transcript()[0].Text)
}
