package aiControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iimrul/dhan/gemini"
)

type SendMessageInput struct {
	Message string `json:"message" binding:"required"`
}

// POST /ai/chat/sessions — opens a Dhan-Bot conversation.
func CreateChatSession(ai *gemini.Client, store *gemini.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := ai.NewChatSession(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to create chat session: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start chat"})
			return
		}
		store.Add(session)

		c.JSON(http.StatusCreated, gin.H{
			"session_id": session.ID,
			"messages":   session.Transcript(),
		})
	}
}

// GET /ai/chat/sessions/:id
func GetChatTranscript(store *gemini.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := store.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id": session.ID,
			"messages":   session.Transcript(),
		})
	}
}

// POST /ai/chat/sessions/:id/messages
// Streams the model reply as SSE events. Every chunk carries the reply's
// message id so the client appends to exactly that message; closing the
// connection cancels the upstream stream through the request context.
func SendChatMessage(store *gemini.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := store.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
			return
		}

		var input SendMessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.WriteHeader(http.StatusOK)
		c.Writer.Flush()

		reply, err := session.Send(c.Request.Context(), input.Message, func(messageID, chunk string) {
			c.SSEvent("chunk", gin.H{"message_id": messageID, "text": chunk})
			c.Writer.Flush()
		})
		if err != nil {
			log.Printf("❌ Chat stream failed: %v", err)
			c.SSEvent("error", gin.H{"message_id": reply.ID, "text": reply.Text})
			c.Writer.Flush()
			return
		}

		c.SSEvent("done", reply)
		c.Writer.Flush()
	}
}
