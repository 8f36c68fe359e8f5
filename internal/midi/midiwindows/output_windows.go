//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/leandrodaf/moonlight/sdk/contracts"
	"golang.org/x/sys/windows"
)

// Type definitions for MIDI handles
type HMIDIOUT windows.Handle

// CALLBACK_NULL opens the device without a completion callback.
const CALLBACK_NULL = 0x00000000

// Struct representing MIDI output device capabilities
type midiOutCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	wTechnology    uint16
	wVoices        uint16
	wNotes         uint16
	wChannelMask   uint16
	dwSupport      uint32
}

var (
	ErrNoOutputDevice = errors.New("no MIDI output devices found")
	ErrOutputClosed   = errors.New("MIDI output closed")
)

// Load the winmm.dll library and required functions
var (
	winmm                 = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutGetNumDevs = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutGetDevCaps = winmm.NewProc("midiOutGetDevCapsW")
	procMidiOutOpen       = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg   = winmm.NewProc("midiOutShortMsg")
	procMidiOutReset      = winmm.NewProc("midiOutReset")
	procMidiOutClose      = winmm.NewProc("midiOutClose")
)

// Output sends short messages to a winmm output device.
// Windows has no virtual ports, so the device whose name contains the
// configured port name is used, falling back to device 0.
type Output struct {
	logger contracts.Logger
	handle HMIDIOUT
	mu     sync.Mutex
}

// NewOutput opens the matching MIDI output device.
func NewOutput(options *contracts.EngineOptions) (contracts.Sink, error) {
	names, err := ListOutputs()
	if err != nil {
		options.Logger.Warn(err.Error())
		return nil, err
	}

	deviceID := 0
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), strings.ToLower(options.Config.PortName)) {
			deviceID = i
			break
		}
	}

	out := &Output{logger: options.Logger}
	r1, _, err := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&out.handle)),
		uintptr(deviceID),
		0,
		0,
		uintptr(CALLBACK_NULL),
	)
	if r1 != 0 {
		return nil, fmt.Errorf("failed to open MIDI output %d: %v", deviceID, err)
	}

	options.Logger.Info("MIDI output opened",
		options.Logger.Field().Int("deviceID", deviceID),
		options.Logger.Field().String("deviceName", names[deviceID]))
	return out, nil
}

// ListOutputs returns the names of all output devices in device order.
func ListOutputs() ([]string, error) {
	r0, _, _ := procMidiOutGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		return nil, ErrNoOutputDevice
	}

	names := make([]string, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiOutCaps
		r1, _, _ := procMidiOutGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			names[i] = fmt.Sprintf("MIDI output %d", i)
			continue
		}
		names[i] = windows.UTF16ToString(caps.szPname[:])
	}
	return names, nil
}

// Send packs the message into the little-endian DWORD midiOutShortMsg expects.
func (o *Output) Send(msg contracts.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.handle == 0 {
		return ErrOutputClosed
	}

	packed := uint32(msg.Status()) | uint32(msg.Data1())<<8 | uint32(msg.Data2())<<16
	r1, _, err := procMidiOutShortMsg.Call(uintptr(o.handle), uintptr(packed))
	if r1 != 0 {
		return fmt.Errorf("failed to send %s: %v", msg, err)
	}
	return nil
}

// Close silences the device and releases the handle.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.handle == 0 {
		return nil
	}

	procMidiOutReset.Call(uintptr(o.handle))
	r1, _, err := procMidiOutClose.Call(uintptr(o.handle))
	if r1 != 0 {
		o.logger.Error(fmt.Sprintf("Failed to close MIDI output: %v", err))
		return err
	}
	o.handle = 0
	o.logger.Info("MIDI output closed")
	return nil
}
