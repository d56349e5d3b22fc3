package contracts

import (
	"errors"
	"io"
)

type Dialer interface {
	Dial(address string) (io.ReadWriteCloser, error)
}

type UploadRequest struct {
	Address     string
	Host        string
	Path        string
	ContentType string
	Body        []byte
}

type Uploader interface {
	Upload(request UploadRequest) error
}

var (
	ConnectionErr   = errors.New("unable to connect to the collection endpoint")
	TransmissionErr = errors.New("unable to exchange data with the collection endpoint")
)
