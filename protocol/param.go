package protocol

import (
	"encoding/binary"
	"fmt"
)

// Version is the SMC firmware version block of the parameter struct.
// The driver fills it in on some responses; this library never sets it.
type Version struct {
	Major    uint8
	Minor    uint8
	Build    uint8
	Reserved uint8
	Release  uint16
}

// PLimitData is the power limit block of the parameter struct.
// Present for ABI compatibility; unused by key read/write operations.
type PLimitData struct {
	Version   uint16
	Length    uint16
	CPUPLimit uint32
	GPUPLimit uint32
	MemPLimit uint32
}

// KeyInfo describes a key's payload as reported by the SMC.
// A data transfer cannot be framed correctly without it, which is why every
// read and write starts with an OpGetKeyInfo call.
type KeyInfo struct {
	// DataSize is the payload size in bytes (0..MaxPayload)
	DataSize uint32

	// DataType is the packed 4-character data type tag (see DecodeTag)
	DataType uint32

	// DataAttributes holds driver-internal attribute flags
	DataAttributes uint8
}

// Tag returns the key's data type tag in its 4-character constant form.
func (ki KeyInfo) Tag() string {
	return DecodeTag(ki.DataType)
}

// ParamStruct mirrors the SMCParamStruct exchanged with the AppleSMC driver
// through IOConnectCallStructMethod. The same layout is used for input and
// output; which fields are meaningful depends on the opcode in Data8.
type ParamStruct struct {
	// Key is the packed 32-bit key this request targets
	Key uint32

	Vers       Version
	PLimitData PLimitData

	// KeyInfo carries the declared payload shape. The driver fills it on
	// OpGetKeyInfo responses; requests for OpReadKey and OpWriteKey must
	// carry the size the driver reported.
	KeyInfo KeyInfo

	// Result is the SMC's own result code (see Result* constants)
	Result uint8

	Status uint8

	// Data8 is the opcode for this call (see Op* constants)
	Data8 uint8

	Data32 uint32

	// Bytes is the payload buffer, valid up to KeyInfo.DataSize
	Bytes [MaxPayload]byte
}

// Field offsets of the marshalled struct. The layout matches the C struct on
// Intel machines: natural alignment, little-endian, 80 bytes total.
const (
	offKey     = 0
	offVers    = 4
	offPLimit  = 12
	offKeyInfo = 28
	offResult  = 40
	offStatus  = 41
	offData8   = 42
	offData32  = 44
	offBytes   = 48
)

// Marshal packs the struct into its fixed 80-byte ABI layout.
// The destination must be exactly ParamStructSize bytes.
func (p *ParamStruct) Marshal(dst []byte) error {
	if len(dst) != ParamStructSize {
		return fmt.Errorf("marshal buffer must be %d bytes, got %d", ParamStructSize, len(dst))
	}

	for i := range dst {
		dst[i] = 0
	}

	binary.LittleEndian.PutUint32(dst[offKey:], p.Key)

	dst[offVers+0] = p.Vers.Major
	dst[offVers+1] = p.Vers.Minor
	dst[offVers+2] = p.Vers.Build
	dst[offVers+3] = p.Vers.Reserved
	binary.LittleEndian.PutUint16(dst[offVers+4:], p.Vers.Release)

	binary.LittleEndian.PutUint16(dst[offPLimit+0:], p.PLimitData.Version)
	binary.LittleEndian.PutUint16(dst[offPLimit+2:], p.PLimitData.Length)
	binary.LittleEndian.PutUint32(dst[offPLimit+4:], p.PLimitData.CPUPLimit)
	binary.LittleEndian.PutUint32(dst[offPLimit+8:], p.PLimitData.GPUPLimit)
	binary.LittleEndian.PutUint32(dst[offPLimit+12:], p.PLimitData.MemPLimit)

	binary.LittleEndian.PutUint32(dst[offKeyInfo+0:], p.KeyInfo.DataSize)
	binary.LittleEndian.PutUint32(dst[offKeyInfo+4:], p.KeyInfo.DataType)
	dst[offKeyInfo+8] = p.KeyInfo.DataAttributes

	dst[offResult] = p.Result
	dst[offStatus] = p.Status
	dst[offData8] = p.Data8
	binary.LittleEndian.PutUint32(dst[offData32:], p.Data32)
	copy(dst[offBytes:], p.Bytes[:])

	return nil
}

// Unmarshal fills the struct from its fixed 80-byte ABI layout.
func (p *ParamStruct) Unmarshal(src []byte) error {
	if len(src) != ParamStructSize {
		return fmt.Errorf("unmarshal buffer must be %d bytes, got %d", ParamStructSize, len(src))
	}

	p.Key = binary.LittleEndian.Uint32(src[offKey:])

	p.Vers.Major = src[offVers+0]
	p.Vers.Minor = src[offVers+1]
	p.Vers.Build = src[offVers+2]
	p.Vers.Reserved = src[offVers+3]
	p.Vers.Release = binary.LittleEndian.Uint16(src[offVers+4:])

	p.PLimitData.Version = binary.LittleEndian.Uint16(src[offPLimit+0:])
	p.PLimitData.Length = binary.LittleEndian.Uint16(src[offPLimit+2:])
	p.PLimitData.CPUPLimit = binary.LittleEndian.Uint32(src[offPLimit+4:])
	p.PLimitData.GPUPLimit = binary.LittleEndian.Uint32(src[offPLimit+8:])
	p.PLimitData.MemPLimit = binary.LittleEndian.Uint32(src[offPLimit+12:])

	p.KeyInfo.DataSize = binary.LittleEndian.Uint32(src[offKeyInfo+0:])
	p.KeyInfo.DataType = binary.LittleEndian.Uint32(src[offKeyInfo+4:])
	p.KeyInfo.DataAttributes = src[offKeyInfo+8]

	p.Result = src[offResult]
	p.Status = src[offStatus]
	p.Data8 = src[offData8]
	p.Data32 = binary.LittleEndian.Uint32(src[offData32:])
	copy(p.Bytes[:], src[offBytes:])

	return nil
}

// NewKeyInfoRequest builds the metadata query that must precede every data
// transfer: the SMC will not frame a read or write without first reporting
// the key's size and type.
func NewKeyInfoRequest(key uint32) *ParamStruct {
	return &ParamStruct{
		Key:   key,
		Data8: OpGetKeyInfo,
	}
}

// NewReadRequest builds the data fetch call for a key whose size was reported
// by a preceding OpGetKeyInfo call.
func NewReadRequest(key uint32, dataSize uint32) (*ParamStruct, error) {
	if dataSize > MaxPayload {
		return nil, fmt.Errorf("data size %d exceeds maximum payload %d", dataSize, MaxPayload)
	}

	return &ParamStruct{
		Key:     key,
		KeyInfo: KeyInfo{DataSize: dataSize},
		Data8:   OpReadKey,
	}, nil
}

// NewWriteRequest builds the data store call carrying the payload to write.
// The declared size must already have been validated against the size the SMC
// reported for the key.
func NewWriteRequest(key uint32, data []byte) (*ParamStruct, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("write payload cannot be empty")
	}
	if len(data) > MaxPayload {
		return nil, fmt.Errorf("write payload length %d exceeds maximum %d bytes", len(data), MaxPayload)
	}

	p := &ParamStruct{
		Key:     key,
		KeyInfo: KeyInfo{DataSize: uint32(len(data))},
		Data8:   OpWriteKey,
	}
	copy(p.Bytes[:], data)

	return p, nil
}
