package detector

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const maxMessageSize = 64 << 20

type request struct {
	Seq       uint64  `msgpack:"seq"`
	Width     int     `msgpack:"width"`
	Height    int     `msgpack:"height"`
	FrameData []byte  `msgpack:"frame_data"`
	Threshold float64 `msgpack:"threshold"`
	TraceID   string  `msgpack:"trace_id"`
}

type response struct {
	Seq        uint64      `msgpack:"seq"`
	Detections []Detection `msgpack:"detections"`
	Error      string      `msgpack:"error,omitempty"`
}

// writeMessage frames v as a 4-byte big-endian length followed by msgpack.
func writeMessage(w io.Writer, v any) error {
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal msgpack: %w", err)
	}
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write length prefix: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write msgpack data: %w", err)
	}
	return nil
}

func readMessage(r io.Reader, v any) error {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return err
	}
	n := binary.BigEndian.Uint32(prefix[:])
	if n > maxMessageSize {
		return fmt.Errorf("message of %d bytes exceeds limit", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fmt.Errorf("read msgpack data: %w", err)
	}
	if err := msgpack.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("unmarshal msgpack: %w", err)
	}
	return nil
}
