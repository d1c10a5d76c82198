package cpu

import "fmt"

// Op identifies a decoded operation.
type Op uint8

const (
	OpInvalid Op = iota
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1nnn
	OpCALL       // 2nnn
	OpSEImm      // 3xkk
	OpSNEImm     // 4xkk
	OpSEReg      // 5xy0
	OpLDImm      // 6xkk
	OpADDImm     // 7xkk
	OpLDReg      // 8xy0
	OpOR         // 8xy1
	OpAND        // 8xy2
	OpXOR        // 8xy3
	OpADDReg     // 8xy4
	OpSUB        // 8xy5
	OpSHR        // 8xy6
	OpSUBN       // 8xy7
	OpSHL        // 8xy8
	OpSNEReg     // 9xy0
	OpLDI        // Annn
	OpJPV0       // Bnnn
	OpRND        // Cxkk
	OpDRW        // Dxyn
	OpSKP        // Ex9E
	OpSKNP       // ExA1
	OpLDVxDT     // Fx07
	OpLDK        // Fx0A
	OpLDDT       // Fx15
	OpLDST       // Fx18
	OpADDI       // Fx1E
	OpLDF        // Fx29
	OpLDB        // Fx33
	OpSTORE      // Fx55
	OpLOAD       // Fx65

	opCount
)

// Shape describes which fields of an opcode an operation uses.
type Shape uint8

const (
	ShapeNone Shape = iota // fixed opcode
	ShapeNNN               // address
	ShapeXKK               // register, immediate byte
	ShapeXY                // two registers
	ShapeX                 // one register
	ShapeXYN               // two registers, nibble
)

type opInfo struct {
	name   string
	base   uint16
	shape  Shape
	syntax string
}

var opTable = [opCount]opInfo{
	OpInvalid: {"???", 0x0000, ShapeNone, "???"},
	OpCLS:     {"CLS", 0x00E0, ShapeNone, "CLS"},
	OpRET:     {"RET", 0x00EE, ShapeNone, "RET"},
	OpJP:      {"JP", 0x1000, ShapeNNN, "JP 0x%03X"},
	OpCALL:    {"CALL", 0x2000, ShapeNNN, "CALL 0x%03X"},
	OpSEImm:   {"SE", 0x3000, ShapeXKK, "SE V%X, 0x%02X"},
	OpSNEImm:  {"SNE", 0x4000, ShapeXKK, "SNE V%X, 0x%02X"},
	OpSEReg:   {"SE", 0x5000, ShapeXY, "SE V%X, V%X"},
	OpLDImm:   {"LD", 0x6000, ShapeXKK, "LD V%X, 0x%02X"},
	OpADDImm:  {"ADD", 0x7000, ShapeXKK, "ADD V%X, 0x%02X"},
	OpLDReg:   {"LD", 0x8000, ShapeXY, "LD V%X, V%X"},
	OpOR:      {"OR", 0x8001, ShapeXY, "OR V%X, V%X"},
	OpAND:     {"AND", 0x8002, ShapeXY, "AND V%X, V%X"},
	OpXOR:     {"XOR", 0x8003, ShapeXY, "XOR V%X, V%X"},
	OpADDReg:  {"ADD", 0x8004, ShapeXY, "ADD V%X, V%X"},
	OpSUB:     {"SUB", 0x8005, ShapeXY, "SUB V%X, V%X"},
	OpSHR:     {"SHR", 0x8006, ShapeXY, "SHR V%X, V%X"},
	OpSUBN:    {"SUBN", 0x8007, ShapeXY, "SUBN V%X, V%X"},
	OpSHL:     {"SHL", 0x8008, ShapeXY, "SHL V%X, V%X"},
	OpSNEReg:  {"SNE", 0x9000, ShapeXY, "SNE V%X, V%X"},
	OpLDI:     {"LD", 0xA000, ShapeNNN, "LD I, 0x%03X"},
	OpJPV0:    {"JP", 0xB000, ShapeNNN, "JP V0, 0x%03X"},
	OpRND:     {"RND", 0xC000, ShapeXKK, "RND V%X, 0x%02X"},
	OpDRW:     {"DRW", 0xD000, ShapeXYN, "DRW V%X, V%X, %d"},
	OpSKP:     {"SKP", 0xE09E, ShapeX, "SKP V%X"},
	OpSKNP:    {"SKNP", 0xE0A1, ShapeX, "SKNP V%X"},
	OpLDVxDT:  {"LD", 0xF007, ShapeX, "LD V%X, DT"},
	OpLDK:     {"LD", 0xF00A, ShapeX, "LD V%X, K"},
	OpLDDT:    {"LD", 0xF015, ShapeX, "LD DT, V%X"},
	OpLDST:    {"LD", 0xF018, ShapeX, "LD ST, V%X"},
	OpADDI:    {"ADD", 0xF01E, ShapeX, "ADD I, V%X"},
	OpLDF:     {"LD", 0xF029, ShapeX, "LD F, V%X"},
	OpLDB:     {"LD", 0xF033, ShapeX, "LD B, V%X"},
	OpSTORE:   {"LD", 0xF055, ShapeX, "LD [I], V%X"},
	OpLOAD:    {"LD", 0xF065, ShapeX, "LD V%X, [I]"},
}

func (op Op) String() string {
	if op >= opCount {
		return opTable[OpInvalid].name
	}
	return opTable[op].name
}

// Shape returns the operand layout of op.
func (op Op) Shape() Shape {
	if op >= opCount {
		return ShapeNone
	}
	return opTable[op].shape
}

// Instruction is a decoded opcode with all fields pre-extracted.
type Instruction struct {
	Op  Op
	Raw uint16
	NNN uint16 // low 12 bits
	X   uint8  // bits 8-11
	Y   uint8  // bits 4-7
	KK  uint8  // low byte
	N   uint8  // low nibble
}

func (in Instruction) String() string {
	op := in.Op
	if op >= opCount {
		op = OpInvalid
	}
	syntax := opTable[op].syntax
	switch op.Shape() {
	case ShapeNNN:
		return fmt.Sprintf(syntax, in.NNN)
	case ShapeXKK:
		return fmt.Sprintf(syntax, in.X, in.KK)
	case ShapeXY:
		return fmt.Sprintf(syntax, in.X, in.Y)
	case ShapeX:
		return fmt.Sprintf(syntax, in.X)
	case ShapeXYN:
		return fmt.Sprintf(syntax, in.X, in.Y, in.N)
	}
	return syntax
}

// Decode splits opcode into its fields and identifies the operation. Unknown
// selectors decode to OpInvalid, which executes as a no-op.
func Decode(opcode uint16) Instruction {
	in := Instruction{
		Raw: opcode,
		NNN: opcode & 0x0FFF,
		X:   uint8(opcode>>8) & 0x0F,
		Y:   uint8(opcode>>4) & 0x0F,
		KK:  uint8(opcode),
		N:   uint8(opcode) & 0x0F,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			in.Op = OpCLS
		case 0x00EE:
			in.Op = OpRET
		}
	case 0x1000:
		in.Op = OpJP
	case 0x2000:
		in.Op = OpCALL
	case 0x3000:
		in.Op = OpSEImm
	case 0x4000:
		in.Op = OpSNEImm
	case 0x5000:
		in.Op = OpSEReg
	case 0x6000:
		in.Op = OpLDImm
	case 0x7000:
		in.Op = OpADDImm
	case 0x8000:
		switch in.N {
		case 0x0:
			in.Op = OpLDReg
		case 0x1:
			in.Op = OpOR
		case 0x2:
			in.Op = OpAND
		case 0x3:
			in.Op = OpXOR
		case 0x4:
			in.Op = OpADDReg
		case 0x5:
			in.Op = OpSUB
		case 0x6:
			in.Op = OpSHR
		case 0x7:
			in.Op = OpSUBN
		case 0x8:
			in.Op = OpSHL
		}
	case 0x9000:
		in.Op = OpSNEReg
	case 0xA000:
		in.Op = OpLDI
	case 0xB000:
		in.Op = OpJPV0
	case 0xC000:
		in.Op = OpRND
	case 0xD000:
		in.Op = OpDRW
	case 0xE000:
		switch in.KK {
		case 0x9E:
			in.Op = OpSKP
		case 0xA1:
			in.Op = OpSKNP
		}
	case 0xF000:
		switch in.KK {
		case 0x07:
			in.Op = OpLDVxDT
		case 0x0A:
			in.Op = OpLDK
		case 0x15:
			in.Op = OpLDDT
		case 0x18:
			in.Op = OpLDST
		case 0x1E:
			in.Op = OpADDI
		case 0x29:
			in.Op = OpLDF
		case 0x33:
			in.Op = OpLDB
		case 0x55:
			in.Op = OpSTORE
		case 0x65:
			in.Op = OpLOAD
		}
	}
	return in
}

// EncodeInstruction builds the opcode for op. imm is the address for
// ShapeNNN, the byte for ShapeXKK and the nibble for ShapeXYN; unused fields
// are ignored.
func EncodeInstruction(op Op, x, y uint8, imm uint16) uint16 {
	if op >= opCount {
		return 0
	}
	info := opTable[op]
	vx := uint16(x&0x0F) << 8
	vy := uint16(y&0x0F) << 4

	switch info.shape {
	case ShapeNNN:
		return info.base | imm&0x0FFF
	case ShapeXKK:
		return info.base | vx | imm&0x00FF
	case ShapeXY:
		return info.base | vx | vy
	case ShapeX:
		return info.base | vx
	case ShapeXYN:
		return info.base | vx | vy | imm&0x000F
	}
	return info.base
}
