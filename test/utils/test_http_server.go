package testutils

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

type TestHttpServer struct {
	handler http.Handler
}

func NewTestHttpServer(handler http.Handler) *TestHttpServer {
	return &TestHttpServer{handler}
}

// Start serves the handler on a free port until the test ends and returns
// the base URL.
func (s *TestHttpServer) Start(t *testing.T) string {
	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("cannot start test server: %v", err)
	}

	srvAddr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := http.Server{
		Addr:    srvAddr,
		Handler: s.handler,
	}

	t.Cleanup(func() {
		srv.Close()
	})

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			t.Errorf("test server stopped unexpectedly: %v", err)
		}
	}()

	waitForServer(t, srvAddr)
	return "http://" + srvAddr
}

// waitForServer polls addr until a TCP connection succeeds.
func waitForServer(t *testing.T, addr string) {
	const attempts = 10
	backoff := 50 * time.Millisecond

	for i := 0; i < attempts; i++ {
		conn, err := net.DialTimeout("tcp", addr, 1*time.Second)
		if err != nil {
			time.Sleep(backoff)
			continue
		}
		err = conn.Close()
		if err != nil {
			t.Fatal(err)
		}
		return
	}

	t.Fatalf("test server at %s did not accept connections", addr)
}
