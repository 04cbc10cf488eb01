// Package liveble speaks the smart-cube BLE protocol: it frames and
// parses notifications, decodes face-rotation events into move indices,
// and threads them through a live cubiecube.Cube so a session can be
// tracked over the air instead of replayed from a fixed move string.
package liveble

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
)

// BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write
)

// Message type identifiers.
const (
	MsgTypeRotation byte = 0x01
	MsgTypeBattery  byte = 0x05
)

// Frame delimiters.
const (
	framePrefix  byte = 0x2A
	frameSuffix1 byte = 0x0D
	frameSuffix2 byte = 0x0A
)

var (
	ErrInvalidPrefix   = errors.New("liveble: invalid message prefix")
	ErrInvalidSuffix   = errors.New("liveble: invalid message suffix")
	ErrInvalidChecksum = errors.New("liveble: invalid checksum")
	ErrMessageTooShort = errors.New("liveble: message too short")
	ErrInvalidLength   = errors.New("liveble: invalid message length")
)

// Message is a parsed BLE notification frame:
// [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A].
type Message struct {
	Type      byte
	Payload   []byte
	RawBase64 string
}

// ParseMessage validates and decodes a raw notification.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 5 {
		return nil, ErrMessageTooShort
	}
	if data[0] != framePrefix {
		return nil, ErrInvalidPrefix
	}

	length := int(data[1])
	expectedLen := 2 + length
	if len(data) < expectedLen {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidLength, expectedLen, len(data))
	}

	checksumIdx := length - 1
	if checksumIdx < 2 {
		return nil, ErrMessageTooShort
	}
	if data[checksumIdx+1] != frameSuffix1 || data[checksumIdx+2] != frameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	var checksum byte
	for i := 0; i < checksumIdx; i++ {
		checksum += data[i]
	}
	if checksum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X", ErrInvalidChecksum, data[checksumIdx], checksum)
	}

	return &Message{
		Type:      data[2],
		Payload:   data[3:checksumIdx],
		RawBase64: base64.StdEncoding.EncodeToString(data[:expectedLen]),
	}, nil
}

// faceOrder maps the device's face/color index to our move-table face
// index (0=U,1=R,2=F,3=D,4=L,5=B).
var faceOrder = [6]int{
	0: 3, // blue   -> D  (device-specific color wiring; see DESIGN.md)
	1: 1, // green  -> R
	2: 0, // white  -> U
	3: 5, // yellow -> B
	4: 2, // red    -> F
	5: 4, // orange -> L
}

// DecodeRotations decodes a rotation payload into move indices. The
// payload holds pairs of bytes: [face_dir] [center_orientation]; even
// face codes turn clockwise, odd turn counter-clockwise.
func DecodeRotations(payload []byte) ([]cubiecube.MoveIndex, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("liveble: rotation payload must have even length, got %d", len(payload))
	}

	moves := make([]cubiecube.MoveIndex, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		faceCode := payload[i]
		colorIdx := int(faceCode / 2)
		if colorIdx >= len(faceOrder) {
			return nil, fmt.Errorf("liveble: unknown color index %d from face code 0x%02X", colorIdx, faceCode)
		}
		clockwise := faceCode%2 == 0

		face := faceOrder[colorIdx]
		offset := 0
		if !clockwise {
			offset = 2
		}
		moves = append(moves, cubiecube.MoveIndex(face*3+offset))
	}
	return moves, nil
}

// DecodeBattery decodes a battery-level payload.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("liveble: battery payload too short")
	}
	return int(payload[0]), nil
}
