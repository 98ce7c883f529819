package messaging

import (
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// ConnectNats establishes a NATS connection that reconnects on its own.
func ConnectNats(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("todo-service"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("NATS reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Printf("Connected to NATS at %s", nc.ConnectedUrl())
	return nc, nil
}

// CloseNats drains pending messages before closing.
func CloseNats(nc *nats.Conn) {
	if nc == nil || nc.IsClosed() {
		return
	}
	if err := nc.Drain(); err != nil {
		log.Printf("NATS drain failed: %v", err)
		nc.Close()
		return
	}
	log.Println("NATS connection closed.")
}
