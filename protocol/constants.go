package protocol

// KeySize is the length of an SMC key: a 4-character constant such as "FNum".
const KeySize = 4

// TagSize is the length of an SMC data type tag such as "fpe2".
const TagSize = 4

// MaxPayload is the maximum payload size of any SMC key, in bytes.
// The parameter struct reserves exactly this many bytes for key data.
const MaxPayload = 32

// ParamStructSize is the size of the marshalled parameter struct in bytes.
// Both the input and the output of the privileged call use this fixed layout.
const ParamStructSize = 80

// KernelIndexSMC is the selector for IOConnectCallStructMethod when talking
// to the AppleSMC user client (kSMCHandleYPCEvent).
const KernelIndexSMC = 2

// IOServiceSMC is the IOService name of the SMC driver.
const IOServiceSMC = "AppleSMC"

// Opcodes placed in the data8 field of the parameter struct. Each call to the
// SMC performs exactly one of these operations.
const (
	// OpReadKey fetches the payload of a key (kSMCReadKey)
	OpReadKey = 0x05

	// OpWriteKey stores a payload under a key (kSMCWriteKey)
	OpWriteKey = 0x06

	// OpGetKeyInfo queries the size and type of a key (kSMCGetKeyInfo)
	OpGetKeyInfo = 0x09
)

// Result codes returned by the SMC in the result field of the output struct.
// These are distinct from IOKit return codes: the privileged call can succeed
// while the SMC itself rejects the request.
const (
	// ResultSuccess indicates the SMC accepted and executed the request
	ResultSuccess = 0x00

	// ResultError indicates a generic SMC-level failure
	ResultError = 0x01

	// ResultKeyNotFound indicates the requested key does not exist on
	// this machine's SMC
	ResultKeyNotFound = 0x84
)

// Data type tags describing the wire format of a key's payload. The SMC
// reports these as packed 4-character constants in key metadata.
const (
	// TypeUInt8 is an unsigned 8-bit integer ("ui8 ", note trailing space)
	TypeUInt8 = "ui8 "

	// TypeUInt16 is an unsigned 16-bit integer, big-endian on the wire
	TypeUInt16 = "ui16"

	// TypeUInt32 is an unsigned 32-bit integer, big-endian on the wire
	TypeUInt32 = "ui32"

	// TypeFlag is a boolean flag stored in a single byte
	TypeFlag = "flag"

	// TypeFPE2 is an unsigned fixed-point value with 2 fractional bits,
	// used for fan speeds
	TypeFPE2 = "fpe2"

	// TypeSP78 is a signed fixed-point value with an integer byte and a
	// fractional byte, used for temperatures
	TypeSP78 = "sp78"
)

// Well-known keys referenced by this library.
const (
	// KeyFanCount holds the number of fans on the machine
	KeyFanCount = "FNum"

	// KeyCPUDiode is the CPU 0 diode temperature sensor
	KeyCPUDiode = "TC0D"

	// KeyCPUProximity is the CPU 0 proximity temperature sensor
	KeyCPUProximity = "TC0P"
)
