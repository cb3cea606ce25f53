// soil_websocket.go
package soilControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/iimrul/dhan/soil"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /soil/ws — pushes each new simulated reading to the soil monitor.
func SoilWebSocketHandler(sim *soil.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		readings, unsubscribe := sim.Subscribe()
		defer unsubscribe()

		// Seed the client with the latest reading if available.
		if reading, err := sim.Current(); err == nil {
			if err := conn.WriteJSON(reading); err != nil {
				return
			}
		}

		// Read pump: its only job is to notice the peer going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case reading := <-readings:
				if err := conn.WriteJSON(reading); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
