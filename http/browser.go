package http

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// utlsConn wraps a utls.UConn and satisfies net.Conn plus the
// ConnectionState method that net/http2 needs.
type utlsConn struct {
	*utls.UConn
}

func (c *utlsConn) ConnectionState() tls.ConnectionState {
	cs := c.UConn.ConnectionState()
	return tls.ConnectionState{
		Version:                    cs.Version,
		HandshakeComplete:          cs.HandshakeComplete,
		CipherSuite:                cs.CipherSuite,
		NegotiatedProtocol:         cs.NegotiatedProtocol,
		NegotiatedProtocolIsMutual: cs.NegotiatedProtocolIsMutual,
		ServerName:                 cs.ServerName,
		PeerCertificates:           cs.PeerCertificates,
		VerifiedChains:             cs.VerifiedChains,
	}
}

// browserTransport dials HTTPS with a Chrome TLS fingerprint and routes the
// request over HTTP/1.1 or HTTP/2 depending on ALPN. Plain HTTP requests
// use a regular transport.
type browserTransport struct {
	dialer *net.Dialer
	h1     *http.Transport
	h2     *http2.Transport
}

func newBrowserTransport(timeout time.Duration) *browserTransport {
	dialer := &net.Dialer{Timeout: timeout}
	return &browserTransport{
		dialer: dialer,
		h1:     &http.Transport{DialContext: dialer.DialContext},
		h2:     &http2.Transport{},
	}
}

func (bt *browserTransport) dialUTLS(ctx context.Context, addr string) (*utlsConn, error) {
	conn, err := bt.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	tlsConn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloChrome_Auto)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return &utlsConn{tlsConn}, nil
}

func (bt *browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return bt.h1.RoundTrip(req)
	}

	port := req.URL.Port()
	if port == "" {
		port = "443"
	}
	addr := net.JoinHostPort(req.URL.Hostname(), port)

	conn, err := bt.dialUTLS(req.Context(), addr)
	if err != nil {
		return nil, err
	}

	if conn.ConnectionState().NegotiatedProtocol == "h2" {
		h2conn, err := bt.h2.NewClientConn(conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		resp, err := h2conn.RoundTrip(req)
		if err != nil {
			_ = h2conn.Close()
			return nil, err
		}
		resp.Body = newReleaseBody(resp.Body, func() { _ = h2conn.Close() })
		return resp, nil
	}

	// One-shot HTTP/1.1 transport over the established TLS connection.
	transport := &http.Transport{
		DialTLSContext: func(context.Context, string, string) (net.Conn, error) {
			return conn, nil
		},
	}
	release := func() {
		transport.CloseIdleConnections()
		_ = conn.Close()
	}
	resp, err := transport.RoundTrip(req)
	if err != nil {
		release()
		return nil, err
	}
	resp.Body = newReleaseBody(resp.Body, release)
	return resp, nil
}

// releaseBody tears down the per-request connection once the caller closes
// the response body.
type releaseBody struct {
	io.ReadCloser
	once    sync.Once
	release func()
}

func newReleaseBody(body io.ReadCloser, release func()) *releaseBody {
	return &releaseBody{ReadCloser: body, release: release}
}

func (b *releaseBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(b.release)
	return err
}

// CloseIdleConnections lets http.Client.CloseIdleConnections reach the
// plain HTTP transport.
func (bt *browserTransport) CloseIdleConnections() {
	bt.h1.CloseIdleConnections()
}
