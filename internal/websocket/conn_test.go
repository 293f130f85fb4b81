package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// echoServer upgrades and reads frames until the client goes away,
// counting everything it receives.
func echoServer(t *testing.T, received chan<- struct{}) *httptest.Server {
	t.Helper()
	upgrader := gorilla.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer sc.Close()
		for {
			if _, _, err := sc.ReadMessage(); err != nil {
				return
			}
			received <- struct{}{}
		}
	}))
}

func dialConn(t *testing.T, srv *httptest.Server) *Conn {
	t.Helper()
	raw, _, err := gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	return NewConn(raw)
}

// An event pump pushing seat updates while the read loop answers pings
// means two goroutines write to one socket. The wrapper must serialize
// them; gorilla supports only a single concurrent writer.
func TestConnSerializesConcurrentWriters(t *testing.T) {
	const writers = 8
	const frames = 25

	received := make(chan struct{}, writers*frames)
	srv := echoServer(t, received)
	defer srv.Close()

	conn := dialConn(t, srv)
	defer conn.Close()

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < frames; j++ {
				var err error
				if n%2 == 0 {
					err = conn.WriteTyped(SeatUpdateResponse{Event: EventSeatUpdate, SeatsRemaining: j})
				} else {
					err = conn.WriteTyped(PongResponse{Event: EventPong})
				}
				if err != nil {
					errs[n] = err
					return
				}
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	// Every frame must arrive intact.
	for i := 0; i < writers*frames; i++ {
		select {
		case <-received:
		case <-time.After(5 * time.Second):
			t.Fatalf("only %d of %d frames arrived", i, writers*frames)
		}
	}
}

func TestConnWriteErrorFrame(t *testing.T) {
	received := make(chan struct{}, 1)
	srv := echoServer(t, received)
	defer srv.Close()

	conn := dialConn(t, srv)
	defer conn.Close()

	require.NoError(t, conn.WriteError("unknown action: subscribe"))
	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("error frame never arrived")
	}
}
