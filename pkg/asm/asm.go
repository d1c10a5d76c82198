package asm

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gochip8/pkg/cpu"
)

// Origin is the address of the first assembled byte.
const Origin = cpu.ProgramStart

var mnemonics = map[string]bool{
	"CLS":  true,
	"RET":  true,
	"JP":   true,
	"CALL": true,
	"SE":   true,
	"SNE":  true,
	"LD":   true,
	"ADD":  true,
	"OR":   true,
	"AND":  true,
	"XOR":  true,
	"SUB":  true,
	"SHR":  true,
	"SUBN": true,
	"SHL":  true,
	"RND":  true,
	"DRW":  true,
	"SKP":  true,
	"SKNP": true,
}

var zeroOperandOps = map[string]cpu.Op{
	"CLS": cpu.OpCLS,
	"RET": cpu.OpRET,
}

var oneRegisterOps = map[string]cpu.Op{
	"SKP":  cpu.OpSKP,
	"SKNP": cpu.OpSKNP,
}

var twoRegisterOps = map[string]cpu.Op{
	"OR":   cpu.OpOR,
	"AND":  cpu.OpAND,
	"XOR":  cpu.OpXOR,
	"SUB":  cpu.OpSUB,
	"SUBN": cpu.OpSUBN,
}

// shiftOps take Vx and an optional, ignored Vy.
var shiftOps = map[string]cpu.Op{
	"SHR": cpu.OpSHR,
	"SHL": cpu.OpSHL,
}

// compareOps pick the immediate or register form from the second operand.
var compareOps = map[string][2]cpu.Op{
	"SE":  {cpu.OpSEImm, cpu.OpSEReg},
	"SNE": {cpu.OpSNEImm, cpu.OpSNEReg},
}

// Second-operand keywords of the LD forms that take Vx first.
var loadFromOps = map[string]cpu.Op{
	"DT":  cpu.OpLDVxDT,
	"K":   cpu.OpLDK,
	"[I]": cpu.OpLOAD,
}

// First-operand keywords of the LD forms that take Vx second.
var loadToOps = map[string]cpu.Op{
	"DT":  cpu.OpLDDT,
	"ST":  cpu.OpLDST,
	"F":   cpu.OpLDF,
	"B":   cpu.OpLDB,
	"[I]": cpu.OpSTORE,
}

type Assembler struct {
	labels map[string]uint16
}

type parsedLine struct {
	lineNo   int
	labels   []string
	mnemonic string
	operands []string
}

func NewAssembler() *Assembler {
	return &Assembler{
		labels: make(map[string]uint16),
	}
}

// Assemble translates source into a ROM image that loads at Origin. The
// returned map gives the source line of every emitted address.
func Assemble(code string) ([]byte, map[uint16]int, error) {
	return NewAssembler().Assemble(code)
}

func (a *Assembler) Assemble(code string) ([]byte, map[uint16]int, error) {
	lines := strings.Split(code, "\n")

	if err := a.pass1(lines); err != nil {
		return nil, nil, err
	}

	return a.pass2(lines)
}

func (a *Assembler) pass1(lines []string) error {
	address := uint32(Origin)

	for i, raw := range lines {
		lineNo := i + 1
		p, err := parseLine(raw, lineNo)
		if err != nil {
			return err
		}

		for _, lbl := range p.labels {
			key := normalizeLabel(lbl)
			if _, exists := a.labels[key]; exists {
				return fmt.Errorf("duplicate label '%s' on line %d", lbl, lineNo)
			}
			a.labels[key] = uint16(address)
		}

		if p.mnemonic == "" {
			continue
		}

		if p.mnemonic == ".ORG" {
			target, err := parseOrigin(p.operands[0], address, lineNo)
			if err != nil {
				return err
			}
			address = target
			continue
		}

		length, ok := lineLength(p)
		if !ok {
			return fmt.Errorf("unknown instruction on line %d: %s", lineNo, p.mnemonic)
		}
		if length == 0 {
			return fmt.Errorf("%s expects at least one operand on line %d", p.mnemonic, lineNo)
		}

		if address+length > cpu.MemorySize {
			return fmt.Errorf("program too large near line %d", lineNo)
		}
		address += length
	}

	return nil
}

func (a *Assembler) pass2(lines []string) ([]byte, map[uint16]int, error) {
	program := make([]byte, 0)
	sourceMap := make(map[uint16]int)

	for i, raw := range lines {
		lineNo := i + 1
		p, err := parseLine(raw, lineNo)
		if err != nil {
			return nil, nil, err
		}

		if p.mnemonic == "" {
			continue
		}

		address := uint32(Origin + len(program))

		if p.mnemonic == ".ORG" {
			target, err := parseOrigin(p.operands[0], address, lineNo)
			if err != nil {
				return nil, nil, err
			}
			program = append(program, make([]byte, target-address)...)
			continue
		}

		sourceMap[uint16(address)] = lineNo

		if p.mnemonic == ".BYTE" {
			for _, op := range p.operands {
				val, err := a.parseValue(op, 0xFF, lineNo)
				if err != nil {
					return nil, nil, err
				}
				program = append(program, byte(val))
			}
			continue
		}

		if p.mnemonic == ".WORD" {
			for _, op := range p.operands {
				val, err := a.parseValue(op, 0xFFFF, lineNo)
				if err != nil {
					return nil, nil, err
				}
				program = append(program, byte(val>>8), byte(val&0xFF))
			}
			continue
		}

		instr, err := a.encode(p)
		if err != nil {
			return nil, nil, err
		}
		program = append(program, byte(instr>>8), byte(instr&0xFF))
	}

	return program, sourceMap, nil
}

// encode resolves the operand form of one instruction line.
func (a *Assembler) encode(p parsedLine) (uint16, error) {
	mnemonic := p.mnemonic
	ops := p.operands
	lineNo := p.lineNo

	expect := func(n int) error {
		if len(ops) != n {
			return fmt.Errorf("%s expects %d operands on line %d", mnemonic, n, lineNo)
		}
		return nil
	}

	if op, ok := zeroOperandOps[mnemonic]; ok {
		if err := expect(0); err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(op, 0, 0, 0), nil
	}

	if op, ok := oneRegisterOps[mnemonic]; ok {
		if err := expect(1); err != nil {
			return 0, err
		}
		x, err := parseRegister(ops[0], lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(op, x, 0, 0), nil
	}

	if op, ok := twoRegisterOps[mnemonic]; ok {
		if err := expect(2); err != nil {
			return 0, err
		}
		x, err := parseRegister(ops[0], lineNo)
		if err != nil {
			return 0, err
		}
		y, err := parseRegister(ops[1], lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(op, x, y, 0), nil
	}

	if op, ok := shiftOps[mnemonic]; ok {
		if len(ops) != 1 && len(ops) != 2 {
			return 0, fmt.Errorf("%s expects 1 or 2 operands on line %d", mnemonic, lineNo)
		}
		x, err := parseRegister(ops[0], lineNo)
		if err != nil {
			return 0, err
		}
		var y uint8
		if len(ops) == 2 {
			if y, err = parseRegister(ops[1], lineNo); err != nil {
				return 0, err
			}
		}
		return cpu.EncodeInstruction(op, x, y, 0), nil
	}

	if forms, ok := compareOps[mnemonic]; ok {
		if err := expect(2); err != nil {
			return 0, err
		}
		x, err := parseRegister(ops[0], lineNo)
		if err != nil {
			return 0, err
		}
		if isRegister(ops[1]) {
			y, err := parseRegister(ops[1], lineNo)
			if err != nil {
				return 0, err
			}
			return cpu.EncodeInstruction(forms[1], x, y, 0), nil
		}
		kk, err := a.parseValue(ops[1], 0xFF, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(forms[0], x, 0, kk), nil
	}

	switch mnemonic {
	case "JP":
		if len(ops) == 2 {
			if strings.ToUpper(ops[0]) != "V0" {
				return 0, fmt.Errorf("JP with offset requires V0 on line %d", lineNo)
			}
			nnn, err := a.parseValue(ops[1], 0xFFF, lineNo)
			if err != nil {
				return 0, err
			}
			return cpu.EncodeInstruction(cpu.OpJPV0, 0, 0, nnn), nil
		}
		if err := expect(1); err != nil {
			return 0, err
		}
		nnn, err := a.parseValue(ops[0], 0xFFF, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(cpu.OpJP, 0, 0, nnn), nil

	case "CALL":
		if err := expect(1); err != nil {
			return 0, err
		}
		nnn, err := a.parseValue(ops[0], 0xFFF, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(cpu.OpCALL, 0, 0, nnn), nil

	case "LD":
		if err := expect(2); err != nil {
			return 0, err
		}
		return a.encodeLoad(ops[0], ops[1], lineNo)

	case "ADD":
		if err := expect(2); err != nil {
			return 0, err
		}
		if strings.ToUpper(ops[0]) == "I" {
			x, err := parseRegister(ops[1], lineNo)
			if err != nil {
				return 0, err
			}
			return cpu.EncodeInstruction(cpu.OpADDI, x, 0, 0), nil
		}
		x, err := parseRegister(ops[0], lineNo)
		if err != nil {
			return 0, err
		}
		if isRegister(ops[1]) {
			y, err := parseRegister(ops[1], lineNo)
			if err != nil {
				return 0, err
			}
			return cpu.EncodeInstruction(cpu.OpADDReg, x, y, 0), nil
		}
		kk, err := a.parseValue(ops[1], 0xFF, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(cpu.OpADDImm, x, 0, kk), nil

	case "RND":
		if err := expect(2); err != nil {
			return 0, err
		}
		x, err := parseRegister(ops[0], lineNo)
		if err != nil {
			return 0, err
		}
		kk, err := a.parseValue(ops[1], 0xFF, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(cpu.OpRND, x, 0, kk), nil

	case "DRW":
		if err := expect(3); err != nil {
			return 0, err
		}
		x, err := parseRegister(ops[0], lineNo)
		if err != nil {
			return 0, err
		}
		y, err := parseRegister(ops[1], lineNo)
		if err != nil {
			return 0, err
		}
		n, err := a.parseValue(ops[2], 0xF, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(cpu.OpDRW, x, y, n), nil
	}

	return 0, fmt.Errorf("unknown instruction on line %d: %s", lineNo, mnemonic)
}

func (a *Assembler) encodeLoad(dst, src string, lineNo int) (uint16, error) {
	dstKey := strings.ToUpper(dst)
	srcKey := strings.ToUpper(src)

	if dstKey == "I" {
		nnn, err := a.parseValue(src, 0xFFF, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(cpu.OpLDI, 0, 0, nnn), nil
	}

	if op, ok := loadToOps[dstKey]; ok {
		x, err := parseRegister(src, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(op, x, 0, 0), nil
	}

	x, err := parseRegister(dst, lineNo)
	if err != nil {
		return 0, err
	}

	if op, ok := loadFromOps[srcKey]; ok {
		return cpu.EncodeInstruction(op, x, 0, 0), nil
	}

	if isRegister(src) {
		y, err := parseRegister(src, lineNo)
		if err != nil {
			return 0, err
		}
		return cpu.EncodeInstruction(cpu.OpLDReg, x, y, 0), nil
	}

	kk, err := a.parseValue(src, 0xFF, lineNo)
	if err != nil {
		return 0, err
	}
	return cpu.EncodeInstruction(cpu.OpLDImm, x, 0, kk), nil
}

func parseLine(raw string, lineNo int) (parsedLine, error) {
	p := parsedLine{lineNo: lineNo}

	line := strings.TrimSpace(stripComments(raw))
	if line == "" {
		return p, nil
	}

	for {
		colon := strings.IndexByte(line, ':')
		if colon <= 0 {
			break
		}

		beforeColon := strings.TrimSpace(line[:colon])
		if strings.ContainsAny(beforeColon, " \t") {
			break
		}

		if !isIdentifier(beforeColon) {
			return p, fmt.Errorf("invalid label '%s' on line %d", beforeColon, lineNo)
		}

		p.labels = append(p.labels, beforeColon)
		line = strings.TrimSpace(line[colon+1:])
		if line == "" {
			return p, nil
		}
	}

	fields := strings.Fields(normalizeInstructionText(line))
	if len(fields) == 0 {
		return p, nil
	}

	p.mnemonic = strings.ToUpper(fields[0])
	if len(fields) > 1 {
		p.operands = fields[1:]
	}

	if p.mnemonic == ".ORG" && len(p.operands) != 1 {
		return p, fmt.Errorf(".ORG expects exactly one operand on line %d", lineNo)
	}

	return p, nil
}

func stripComments(line string) string {
	semicolon := strings.Index(line, ";")
	doubleSlash := strings.Index(line, "//")

	cut := -1
	if semicolon >= 0 {
		cut = semicolon
	}
	if doubleSlash >= 0 && (cut == -1 || doubleSlash < cut) {
		cut = doubleSlash
	}
	if cut >= 0 {
		return line[:cut]
	}
	return line
}

// normalizeInstructionText turns commas into spaces. Brackets stay so that
// [I] remains a single operand.
func normalizeInstructionText(line string) string {
	return strings.ReplaceAll(line, ",", " ")
}

func isRegister(token string) bool {
	return len(token) == 2 && (token[0] == 'V' || token[0] == 'v')
}

func parseRegister(token string, lineNo int) (uint8, error) {
	if isRegister(token) {
		if n, err := strconv.ParseUint(token[1:], 16, 8); err == nil {
			return uint8(n), nil
		}
	}
	return 0, fmt.Errorf("invalid register '%s' on line %d", token, lineNo)
}

// parseValue resolves a number or label and checks it against limit.
func (a *Assembler) parseValue(token string, limit uint16, lineNo int) (uint16, error) {
	val, err := a.parseImmediate(token, lineNo)
	if err != nil {
		return 0, err
	}
	if val > limit {
		return 0, fmt.Errorf("value out of range on line %d: %s (max 0x%X)", lineNo, token, limit)
	}
	return val, nil
}

func (a *Assembler) parseImmediate(token string, lineNo int) (uint16, error) {
	if value, err := strconv.ParseUint(token, 0, 32); err == nil {
		if value > 0xFFFF {
			return 0, fmt.Errorf("immediate out of range on line %d: %s", lineNo, token)
		}
		return uint16(value), nil
	}

	label := normalizeLabel(token)
	if addr, ok := a.labels[label]; ok {
		return addr, nil
	}

	if isIdentifier(token) {
		return 0, fmt.Errorf("undefined label '%s' on line %d", token, lineNo)
	}

	return 0, fmt.Errorf("invalid immediate '%s' on line %d", token, lineNo)
}

func parseOrigin(token string, address uint32, lineNo int) (uint32, error) {
	target, err := strconv.ParseUint(token, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid .ORG value on line %d: %s", lineNo, token)
	}
	if target >= cpu.MemorySize {
		return 0, fmt.Errorf(".ORG out of range on line %d: %s", lineNo, token)
	}
	if uint32(target) < address {
		return 0, fmt.Errorf("cannot move origin backward on line %d", lineNo)
	}
	return uint32(target), nil
}

// lineLength returns the byte length of an instruction or data directive.
// Every instruction is one 2-byte opcode.
func lineLength(p parsedLine) (uint32, bool) {
	switch p.mnemonic {
	case ".BYTE":
		return uint32(len(p.operands)), true
	case ".WORD":
		return uint32(2 * len(p.operands)), true
	}
	if mnemonics[p.mnemonic] {
		return 2, true
	}
	return 0, false
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func normalizeLabel(label string) string {
	return strings.ToUpper(label)
}
