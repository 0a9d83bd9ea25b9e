package dictionary

import (
	"errors"
	"fmt"
	"os"

	"google.golang.org/protobuf/encoding/protowire"
)

// SnapshotExt is the file extension of dictionary snapshots.
const SnapshotExt = ".wnd"

// ErrInvalidSnapshot indicates a snapshot that cannot be decoded.
var ErrInvalidSnapshot = errors.New("dictionary: invalid snapshot")

// Snapshot wire layout, protobuf compatible:
//
//	message Snapshot {
//	  string name = 1;
//	  repeated string words = 2;
//	}
const (
	fieldName  protowire.Number = 1
	fieldWords protowire.Number = 2
)

// Snapshot is a named, ranked word list in binary form.
type Snapshot struct {
	Name  string
	Words []string
}

// EncodeSnapshot serializes s.
func EncodeSnapshot(s Snapshot) []byte {
	var b []byte
	if s.Name != "" {
		b = protowire.AppendTag(b, fieldName, protowire.BytesType)
		b = protowire.AppendString(b, s.Name)
	}
	for _, w := range s.Words {
		b = protowire.AppendTag(b, fieldWords, protowire.BytesType)
		b = protowire.AppendString(b, w)
	}
	return b
}

// DecodeSnapshot parses data produced by EncodeSnapshot. Unknown fields are skipped.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldName && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(data)
			if m < 0 {
				return Snapshot{}, fmt.Errorf("%w: name: %w", ErrInvalidSnapshot, protowire.ParseError(m))
			}
			s.Name = v
			n = m
		case num == fieldWords && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(data)
			if m < 0 {
				return Snapshot{}, fmt.Errorf("%w: word %d: %w", ErrInvalidSnapshot, len(s.Words), protowire.ParseError(m))
			}
			s.Words = append(s.Words, v)
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Snapshot{}, fmt.Errorf("%w: field %d: %w", ErrInvalidSnapshot, num, protowire.ParseError(n))
			}
		}
		data = data[n:]
	}
	return s, nil
}

// WriteSnapshot writes s to path.
func WriteSnapshot(path string, s Snapshot) error {
	if err := os.WriteFile(path, EncodeSnapshot(s), 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
