package shell

import (
	"crypto/tls"
	"io"
)

// TLSDialer opens TLS connections without verifying the peer's certificate
// and without connect or read deadlines.
type TLSDialer struct {
	config *tls.Config
}

func NewTLSDialer() *TLSDialer {
	return &TLSDialer{
		config: &tls.Config{
			InsecureSkipVerify: true,
		},
	}
}

func (this *TLSDialer) Dial(address string) (io.ReadWriteCloser, error) {
	return tls.Dial("tcp", address, this.config)
}
