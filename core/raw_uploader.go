package core

import (
	"bytes"
	"fmt"
	"io"

	"github.com/smarty/retrace/contracts"
)

const responseChunkSize = 256

// RawUploader speaks just enough HTTP/1.1 over a dialed connection to deliver
// one request and echo whatever comes back. There are no timeouts; a silent
// peer blocks the upload indefinitely.
type RawUploader struct {
	dialer     contracts.Dialer
	transcript io.Writer
}

func NewRawUploader(dialer contracts.Dialer, transcript io.Writer) *RawUploader {
	return &RawUploader{dialer: dialer, transcript: transcript}
}

func (this *RawUploader) Upload(request contracts.UploadRequest) error {
	this.printf("Connecting to ssl://%s... ", request.Address)
	connection, err := this.dialer.Dial(request.Address)
	if err != nil {
		this.printf("Error connecting to socket.\n")
		return fmt.Errorf("%w: %v", contracts.ConnectionErr, err)
	}

	header := ComposeRequestHeader(request)
	this.printf("Done\nSending request:\n-----\n%s[raw data]\n-----\n", header)

	err = this.send(connection, header, request.Body)
	if err != nil {
		closeResource(connection)
		return err
	}

	this.printf("Receiving response:\n-----\n")
	response, err := this.receive(connection)
	this.printf("%s\n-----\n", response)
	if err != nil {
		closeResource(connection)
		return err
	}

	err = connection.Close()
	this.printf("Socket closed.\n")
	if err != nil {
		return fmt.Errorf("%w: %v", contracts.TransmissionErr, err)
	}
	return nil
}

func (this *RawUploader) send(connection io.Writer, header string, body []byte) error {
	_, err := io.WriteString(connection, header)
	if err != nil {
		return fmt.Errorf("%w: %v", contracts.TransmissionErr, err)
	}
	_, err = connection.Write(body)
	if err != nil {
		return fmt.Errorf("%w: %v", contracts.TransmissionErr, err)
	}
	return nil
}

func (this *RawUploader) receive(connection io.Reader) ([]byte, error) {
	response := new(bytes.Buffer)
	chunk := make([]byte, responseChunkSize)
	for {
		count, err := connection.Read(chunk)
		response.Write(chunk[:count])
		if err == io.EOF {
			return response.Bytes(), nil
		}
		if err != nil {
			return response.Bytes(), fmt.Errorf("%w: %v", contracts.TransmissionErr, err)
		}
	}
}

func (this *RawUploader) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(this.transcript, format, args...)
}
