package encoding

import (
	"bytes"
	"encoding/binary"
)

// EncodeNumber writes any fixed-size number to the buffer in big-endian order.
func EncodeNumber(buf *bytes.Buffer, n any) error {
	return binary.Write(buf, binary.BigEndian, n)
}

// EncodeString writes a uint32 length prefix followed by the raw bytes.
func EncodeString(buf *bytes.Buffer, s string) error {
	if err := EncodeNumber(buf, uint32(len(s))); err != nil {
		return err
	}
	_, err := buf.WriteString(s)
	return err
}

func DecodeUint32(buf *bytes.Buffer) (uint32, error) {
	var n uint32
	err := binary.Read(buf, binary.BigEndian, &n)
	return n, err
}

func DecodeUint64(buf *bytes.Buffer) (uint64, error) {
	var n uint64
	err := binary.Read(buf, binary.BigEndian, &n)
	return n, err
}

func DecodeString(buf *bytes.Buffer) (string, error) {
	length, err := DecodeUint32(buf)
	if err != nil {
		return "", err
	}

	b := make([]byte, length)
	if err = binary.Read(buf, binary.BigEndian, b); err != nil {
		return "", err
	}
	return string(b), nil
}
