// Package apiconnect wires the splitledger services to Connect handlers and clients.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec encodes plain Go messages as JSON. It replaces Connect's protobuf
// JSON codec under the same "json" name, so requests use application/json.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

// Unmarshal implements connect.Codec.
func (Codec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }

// charsetCodec is Codec registered under the name Connect derives from
// "application/json; charset=utf-8". Without it that content type would still
// reach Connect's default protobuf JSON codec.
type charsetCodec struct{ Codec }

// Name implements connect.Codec.
func (charsetCodec) Name() string { return "json; charset=utf-8" }

func handlerOptions(opts []connect.HandlerOption) connect.HandlerOption {
	codecs := []connect.HandlerOption{
		connect.WithCodec(Codec{}),
		connect.WithCodec(charsetCodec{}),
	}
	return connect.WithHandlerOptions(append(codecs, opts...)...)
}

func clientOptions(opts []connect.ClientOption) connect.ClientOption {
	return connect.WithClientOptions(append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)...)
}
