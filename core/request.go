package core

import (
	"strconv"
	"strings"

	"github.com/smarty/retrace/contracts"
)

// ComposeRequestHeader renders the request line and header block, including
// the terminating blank line, for a POST carrying the request body.
func ComposeRequestHeader(request contracts.UploadRequest) string {
	builder := new(strings.Builder)
	builder.WriteString("POST " + request.Path + " HTTP/1.1\r\n")
	builder.WriteString("Host: " + request.Host + "\r\n")
	builder.WriteString("Content-Type: " + request.ContentType + "\r\n")
	builder.WriteString("Content-Length: " + strconv.Itoa(len(request.Body)) + "\r\n")
	builder.WriteString("Connection: close\r\n")
	builder.WriteString("\r\n")
	return builder.String()
}
