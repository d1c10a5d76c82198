package cpu

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Op
		text   string
	}{
		{0x00E0, OpCLS, "CLS"},
		{0x00EE, OpRET, "RET"},
		{0x0123, OpInvalid, "???"},
		{0x1ABC, OpJP, "JP 0xABC"},
		{0x2ABC, OpCALL, "CALL 0xABC"},
		{0x3A42, OpSEImm, "SE VA, 0x42"},
		{0x4A42, OpSNEImm, "SNE VA, 0x42"},
		{0x5AB0, OpSEReg, "SE VA, VB"},
		{0x5AB3, OpSEReg, "SE VA, VB"},
		{0x6A42, OpLDImm, "LD VA, 0x42"},
		{0x7A42, OpADDImm, "ADD VA, 0x42"},
		{0x8AB0, OpLDReg, "LD VA, VB"},
		{0x8AB1, OpOR, "OR VA, VB"},
		{0x8AB2, OpAND, "AND VA, VB"},
		{0x8AB3, OpXOR, "XOR VA, VB"},
		{0x8AB4, OpADDReg, "ADD VA, VB"},
		{0x8AB5, OpSUB, "SUB VA, VB"},
		{0x8AB6, OpSHR, "SHR VA, VB"},
		{0x8AB7, OpSUBN, "SUBN VA, VB"},
		{0x8AB8, OpSHL, "SHL VA, VB"},
		{0x8AB9, OpInvalid, "???"},
		{0x9AB0, OpSNEReg, "SNE VA, VB"},
		{0xA123, OpLDI, "LD I, 0x123"},
		{0xB123, OpJPV0, "JP V0, 0x123"},
		{0xCA0F, OpRND, "RND VA, 0x0F"},
		{0xDAB7, OpDRW, "DRW VA, VB, 7"},
		{0xEA9E, OpSKP, "SKP VA"},
		{0xEAA1, OpSKNP, "SKNP VA"},
		{0xEA00, OpInvalid, "???"},
		{0xFA07, OpLDVxDT, "LD VA, DT"},
		{0xFA0A, OpLDK, "LD VA, K"},
		{0xFA15, OpLDDT, "LD DT, VA"},
		{0xFA18, OpLDST, "LD ST, VA"},
		{0xFA1E, OpADDI, "ADD I, VA"},
		{0xFA29, OpLDF, "LD F, VA"},
		{0xFA33, OpLDB, "LD B, VA"},
		{0xFA55, OpSTORE, "LD [I], VA"},
		{0xFA65, OpLOAD, "LD VA, [I]"},
		{0xFA99, OpInvalid, "???"},
	}

	for _, tc := range tests {
		in := Decode(tc.opcode)
		if in.Op != tc.op {
			t.Errorf("Decode(%04X): expected %s, got %s", tc.opcode, tc.op, in.Op)
			continue
		}
		if got := in.String(); got != tc.text {
			t.Errorf("Decode(%04X).String(): expected %q, got %q", tc.opcode, tc.text, got)
		}
	}
}

func TestDecodeFields(t *testing.T) {
	in := Decode(0xD4A6)
	if in.Raw != 0xD4A6 || in.NNN != 0x4A6 || in.X != 4 || in.Y != 0xA || in.KK != 0xA6 || in.N != 6 {
		t.Errorf("fields: %+v", in)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	// Every defined operation decodes back to itself from its encoding.
	for op := OpCLS; op < opCount; op++ {
		w := EncodeInstruction(op, 0x3, 0x7, 0x5)
		if got := Decode(w).Op; got != op {
			t.Errorf("%s: encoded 0x%04X decodes to %s", op, w, got)
		}
	}

	if w := EncodeInstruction(OpDRW, 1, 2, 0xF5); w != 0xD125 {
		t.Errorf("DRW: expected 0xD125, got 0x%04X", w)
	}
	if w := EncodeInstruction(OpLDI, 0, 0, 0x1234); w != 0xA234 {
		t.Errorf("LD I: expected 0xA234, got 0x%04X", w)
	}
	if w := EncodeInstruction(opCount, 0, 0, 0); w != 0 {
		t.Errorf("out of range op: expected 0, got 0x%04X", w)
	}
}
