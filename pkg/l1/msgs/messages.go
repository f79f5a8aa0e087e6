package msgs

import (
	"errors"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/labtrinket/pkg/framework"
	pb "github.com/robotalks/labtrinket/pkg/proto/trinket/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// LedColor command.
type LedColor struct {
	pb.LedColor
}

// NewMessage implements Message.
func (m *LedColor) NewMessage() fx.Message { return &LedColor{} }

// TypeID implements SerializableMessage.
func (m *LedColor) TypeID() uint32 { return LedColorTypeID }

// Serializable implements SerializableMessage.
func (m *LedColor) Serializable() proto.Message { return &m.LedColor }

// LedBrightness command.
type LedBrightness struct {
	pb.LedBrightness
}

// NewMessage implements Message.
func (m *LedBrightness) NewMessage() fx.Message { return &LedBrightness{} }

// TypeID implements SerializableMessage.
func (m *LedBrightness) TypeID() uint32 { return LedBrightnessTypeID }

// Serializable implements SerializableMessage.
func (m *LedBrightness) Serializable() proto.Message { return &m.LedBrightness }

// LedOff command.
type LedOff struct {
	pb.LedOff
}

// NewMessage implements Message.
func (m *LedOff) NewMessage() fx.Message { return &LedOff{} }

// TypeID implements SerializableMessage.
func (m *LedOff) TypeID() uint32 { return LedOffTypeID }

// Serializable implements SerializableMessage.
func (m *LedOff) Serializable() proto.Message { return &m.LedOff }

// AdcConfig command.
type AdcConfig struct {
	pb.AdcConfig
}

// NewMessage implements Message.
func (m *AdcConfig) NewMessage() fx.Message { return &AdcConfig{} }

// TypeID implements SerializableMessage.
func (m *AdcConfig) TypeID() uint32 { return AdcConfigTypeID }

// Serializable implements SerializableMessage.
func (m *AdcConfig) Serializable() proto.Message { return &m.AdcConfig }

// AdcRun command.
type AdcRun struct {
	pb.AdcRun
}

// NewMessage implements Message.
func (m *AdcRun) NewMessage() fx.Message { return &AdcRun{} }

// TypeID implements SerializableMessage.
func (m *AdcRun) TypeID() uint32 { return AdcRunTypeID }

// Serializable implements SerializableMessage.
func (m *AdcRun) Serializable() proto.Message { return &m.AdcRun }

// AdcRead command.
type AdcRead struct {
	pb.AdcRead
}

// NewMessage implements Message.
func (m *AdcRead) NewMessage() fx.Message { return &AdcRead{} }

// TypeID implements SerializableMessage.
func (m *AdcRead) TypeID() uint32 { return AdcReadTypeID }

// Serializable implements SerializableMessage.
func (m *AdcRead) Serializable() proto.Message { return &m.AdcRead }

// AdcValue replies AdcRead.
type AdcValue struct {
	pb.AdcValue
}

// NewMessage implements Message.
func (m *AdcValue) NewMessage() fx.Message { return &AdcValue{} }

// TypeID implements SerializableMessage.
func (m *AdcValue) TypeID() uint32 { return AdcValueTypeID }

// Serializable implements SerializableMessage.
func (m *AdcValue) Serializable() proto.Message { return &m.AdcValue }

// AdcSample is the event published for each autonomous sample.
type AdcSample struct {
	pb.AdcValue
}

// NewMessage implements Message.
func (m *AdcSample) NewMessage() fx.Message { return &AdcSample{} }

// TypeID implements SerializableMessage.
func (m *AdcSample) TypeID() uint32 { return AdcSampleTypeID }

// Serializable implements SerializableMessage.
func (m *AdcSample) Serializable() proto.Message { return &m.AdcValue }

// DacOutput command.
type DacOutput struct {
	pb.DacOutput
}

// NewMessage implements Message.
func (m *DacOutput) NewMessage() fx.Message { return &DacOutput{} }

// TypeID implements SerializableMessage.
func (m *DacOutput) TypeID() uint32 { return DacOutputTypeID }

// Serializable implements SerializableMessage.
func (m *DacOutput) Serializable() proto.Message { return &m.DacOutput }

// StatusQuery command.
type StatusQuery struct {
	pb.StatusQuery
}

// NewMessage implements Message.
func (m *StatusQuery) NewMessage() fx.Message { return &StatusQuery{} }

// TypeID implements SerializableMessage.
func (m *StatusQuery) TypeID() uint32 { return StatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *StatusQuery) Serializable() proto.Message { return &m.StatusQuery }

// Status replies StatusQuery.
type Status struct {
	pb.Status
}

// NewMessage implements Message.
func (m *Status) NewMessage() fx.Message { return &Status{} }

// TypeID implements SerializableMessage.
func (m *Status) TypeID() uint32 { return StatusTypeID }

// Serializable implements SerializableMessage.
func (m *Status) Serializable() proto.Message { return &m.Status }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupLED     uint32 = 0x00010000
	GroupADC     uint32 = 0x00020000
	GroupDAC     uint32 = 0x00030000
	GroupStatus  uint32 = 0x00040000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID     uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID    uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	LedColorTypeID      uint32 = GroupLED | 0x0000
	LedBrightnessTypeID uint32 = GroupLED | 0x0001
	LedOffTypeID        uint32 = GroupLED | 0x0002
	AdcConfigTypeID     uint32 = GroupADC | 0x0000
	AdcRunTypeID        uint32 = GroupADC | 0x0001
	AdcReadTypeID       uint32 = GroupADC | 0x0002
	AdcValueTypeID      uint32 = AdcReadTypeID | TypeIDMaskReply
	AdcSampleTypeID     uint32 = TypeIDKindEvent | GroupADC | 0x0000
	DacOutputTypeID     uint32 = GroupDAC | 0x0000
	StatusQueryTypeID   uint32 = GroupStatus | 0x0000
	StatusTypeID        uint32 = StatusQueryTypeID | TypeIDMaskReply
)

var (
	// ErrUnknownCommand indicates the command is unknown.
	ErrUnknownCommand = errors.New("unknown command")
)
