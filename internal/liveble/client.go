package liveble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"
)

var (
	ErrNotConnected     = errors.New("liveble: not connected to device")
	ErrAlreadyConnected = errors.New("liveble: already connected to a device")
	ErrDeviceNotFound   = errors.New("liveble: device not found")
)

var (
	serviceUUID = bluetooth.NewUUID(mustParseUUID(ServiceUUID))
	txCharUUID  = bluetooth.NewUUID(mustParseUUID(TxCharUUID))
	rxCharUUID  = bluetooth.NewUUID(mustParseUUID(RxCharUUID))
)

func mustParseUUID(s string) [16]byte {
	var uuid [16]byte
	clean := strings.ReplaceAll(s, "-", "")
	for i := 0; i < 16; i++ {
		var b byte
		fmt.Sscanf(clean[i*2:i*2+2], "%02x", &b)
		uuid[i] = b
	}
	return uuid
}

// ScanResult is a discovered smart-cube device.
type ScanResult struct {
	Name    string
	UUID    string
	RSSI    int16
	Address bluetooth.Address
}

// Client manages a BLE connection to a smart cube and dispatches decoded
// notifications to the caller's callbacks.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	txChar  bluetooth.DeviceCharacteristic
	rxChar  bluetooth.DeviceCharacteristic

	mu        sync.RWMutex
	connected bool

	onMessage    func(*Message)
	onDisconnect func()
}

// NewClient enables the default BLE adapter and returns a client ready
// to scan or connect.
func NewClient() (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("liveble: failed to enable BLE adapter: %w", err)
	}
	return &Client{adapter: adapter}, nil
}

// SetMessageCallback sets the callback invoked for every parsed notification.
func (c *Client) SetMessageCallback(cb func(*Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

// SetDisconnectCallback sets the callback invoked when the device disconnects.
func (c *Client) SetDisconnectCallback(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDisconnect = cb
}

// Scan discovers nearby smart cubes for timeout, matching devices whose
// advertised name starts with "gocube" (case-insensitive).
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	c.mu.RLock()
	if c.connected {
		c.mu.RUnlock()
		return nil, ErrAlreadyConnected
	}
	c.mu.RUnlock()

	var results []ScanResult
	var mu sync.Mutex
	seen := make(map[string]bool)
	done := make(chan struct{})

	go func() {
		c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			addr := result.Address.String()

			mu.Lock()
			defer mu.Unlock()
			if seen[addr] {
				return
			}
			seen[addr] = true
			if strings.HasPrefix(strings.ToLower(name), "gocube") {
				results = append(results, ScanResult{Name: name, UUID: addr, RSSI: result.RSSI, Address: result.Address})
			}
		})
		close(done)
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}
	c.adapter.StopScan()
	<-done

	return results, nil
}

// Connect connects to result, discovers the cube service, and enables
// rotation/battery notifications.
func (c *Client) Connect(ctx context.Context, result ScanResult) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("liveble: failed to connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("liveble: failed to discover services: %w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return fmt.Errorf("liveble: cube service not found")
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("liveble: failed to discover characteristics: %w", err)
	}

	var txChar, rxChar bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			txChar = ch
		case rxCharUUID:
			rxChar = ch
		}
	}

	if err := txChar.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("liveble: failed to enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.txChar = txChar
	c.rxChar = rxChar
	c.connected = true
	c.mu.Unlock()

	return nil
}

func (c *Client) handleNotification(buf []byte) {
	msg, err := ParseMessage(buf)
	if err != nil {
		return
	}
	c.mu.RLock()
	cb := c.onMessage
	c.mu.RUnlock()
	if cb != nil {
		cb(msg)
	}
}

// Disconnect tears down the active connection, if any.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil
	}
	c.connected = false
	return c.device.Disconnect()
}
