package cpu

type handler func(c *CPU, in Instruction)

var handlers = [opCount]handler{
	OpInvalid: (*CPU).opNop,
	OpCLS:     (*CPU).opCLS,
	OpRET:     (*CPU).opRET,
	OpJP:      (*CPU).opJP,
	OpCALL:    (*CPU).opCALL,
	OpSEImm:   (*CPU).opSEImm,
	OpSNEImm:  (*CPU).opSNEImm,
	OpSEReg:   (*CPU).opSEReg,
	OpLDImm:   (*CPU).opLDImm,
	OpADDImm:  (*CPU).opADDImm,
	OpLDReg:   (*CPU).opLDReg,
	OpOR:      (*CPU).opOR,
	OpAND:     (*CPU).opAND,
	OpXOR:     (*CPU).opXOR,
	OpADDReg:  (*CPU).opADDReg,
	OpSUB:     (*CPU).opSUB,
	OpSHR:     (*CPU).opSHR,
	OpSUBN:    (*CPU).opSUBN,
	OpSHL:     (*CPU).opSHL,
	OpSNEReg:  (*CPU).opSNEReg,
	OpLDI:     (*CPU).opLDI,
	OpJPV0:    (*CPU).opJPV0,
	OpRND:     (*CPU).opRND,
	OpDRW:     (*CPU).opDRW,
	OpSKP:     (*CPU).opSKP,
	OpSKNP:    (*CPU).opSKNP,
	OpLDVxDT:  (*CPU).opLDVxDT,
	OpLDK:     (*CPU).opLDK,
	OpLDDT:    (*CPU).opLDDT,
	OpLDST:    (*CPU).opLDST,
	OpADDI:    (*CPU).opADDI,
	OpLDF:     (*CPU).opLDF,
	OpLDB:     (*CPU).opLDB,
	OpSTORE:   (*CPU).opSTORE,
	OpLOAD:    (*CPU).opLOAD,
}

func (c *CPU) execute(in Instruction) {
	if in.Op >= opCount {
		return
	}
	handlers[in.Op](c, in)
}

func (c *CPU) skip() {
	c.PC += 2
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (c *CPU) opNop(Instruction) {}

func (c *CPU) opCLS(Instruction) {
	c.Screen.Clear()
}

func (c *CPU) opRET(Instruction) {
	c.PC = c.Stack.Pop(&c.SP)
}

func (c *CPU) opJP(in Instruction) {
	c.PC = in.NNN
}

func (c *CPU) opCALL(in Instruction) {
	// PC already points past the CALL.
	c.Stack.Push(&c.SP, c.PC)
	c.PC = in.NNN
}

func (c *CPU) opSEImm(in Instruction) {
	if c.V[in.X] == in.KK {
		c.skip()
	}
}

func (c *CPU) opSNEImm(in Instruction) {
	if c.V[in.X] != in.KK {
		c.skip()
	}
}

func (c *CPU) opSEReg(in Instruction) {
	if c.V[in.X] == c.V[in.Y] {
		c.skip()
	}
}

func (c *CPU) opSNEReg(in Instruction) {
	if c.V[in.X] != c.V[in.Y] {
		c.skip()
	}
}

func (c *CPU) opLDImm(in Instruction) {
	c.V[in.X] = in.KK
}

func (c *CPU) opADDImm(in Instruction) {
	c.V[in.X] += in.KK
}

func (c *CPU) opLDReg(in Instruction) {
	c.V[in.X] = c.V[in.Y]
}

func (c *CPU) opOR(in Instruction) {
	c.V[in.X] |= c.V[in.Y]
}

func (c *CPU) opAND(in Instruction) {
	c.V[in.X] &= c.V[in.Y]
}

func (c *CPU) opXOR(in Instruction) {
	c.V[in.X] ^= c.V[in.Y]
}

// Flag opcodes read both operands first, then write VF, then Vx. With x == F
// the result overwrites the flag.

func (c *CPU) opADDReg(in Instruction) {
	sum := uint16(c.V[in.X]) + uint16(c.V[in.Y])
	c.V[RegF] = flag(sum > 0xFF)
	c.V[in.X] = byte(sum)
}

func (c *CPU) opSUB(in Instruction) {
	vx, vy := c.V[in.X], c.V[in.Y]
	c.V[RegF] = flag(vx > vy)
	c.V[in.X] = vx - vy
}

func (c *CPU) opSHR(in Instruction) {
	vx := c.V[in.X]
	c.V[RegF] = vx & 0x01
	c.V[in.X] = vx >> 1
}

func (c *CPU) opSUBN(in Instruction) {
	vx, vy := c.V[in.X], c.V[in.Y]
	c.V[RegF] = flag(vy > vx)
	c.V[in.X] = vy - vx
}

func (c *CPU) opSHL(in Instruction) {
	vx := c.V[in.X]
	c.V[RegF] = vx >> 7
	c.V[in.X] = vx << 1
}

func (c *CPU) opLDI(in Instruction) {
	c.I = in.NNN
}

func (c *CPU) opJPV0(in Instruction) {
	c.PC = in.NNN + uint16(c.V[0])
}

func (c *CPU) opRND(in Instruction) {
	c.V[in.X] = byte(c.rng.Intn(255)) & in.KK
}

func (c *CPU) opDRW(in Instruction) {
	n := int(in.N)
	sprite := c.Memory.Slice(int(c.I), n)
	collision := c.Screen.DrawSprite(int(c.V[in.X]), int(c.V[in.Y]), sprite, n)
	c.V[RegF] = flag(collision)
}

func (c *CPU) opSKP(in Instruction) {
	if c.Keyboard.IsDown(int(c.V[in.X])) {
		c.skip()
	}
}

func (c *CPU) opSKNP(in Instruction) {
	if !c.Keyboard.IsDown(int(c.V[in.X])) {
		c.skip()
	}
}

func (c *CPU) opLDVxDT(in Instruction) {
	c.V[in.X] = c.DT
}

func (c *CPU) opLDK(in Instruction) {
	c.Waiting = true
	c.WaitRegister = in.X
}

func (c *CPU) opLDDT(in Instruction) {
	c.DT = c.V[in.X]
}

func (c *CPU) opLDST(in Instruction) {
	c.ST = c.V[in.X]
}

func (c *CPU) opADDI(in Instruction) {
	c.I += uint16(c.V[in.X])
}

func (c *CPU) opLDF(in Instruction) {
	c.I = uint16(c.V[in.X]) * GlyphHeight
}

func (c *CPU) opLDB(in Instruction) {
	v := c.V[in.X]
	addr := int(c.I)
	c.Memory.Set(addr, v/100)
	c.Memory.Set(addr+1, v/10%10)
	c.Memory.Set(addr+2, v%10)
}

func (c *CPU) opSTORE(in Instruction) {
	for i := 0; i <= int(in.X); i++ {
		c.Memory.Set(int(c.I)+i, c.V[i])
	}
}

func (c *CPU) opLOAD(in Instruction) {
	for i := 0; i <= int(in.X); i++ {
		c.V[i] = c.Memory.Get(int(c.I) + i)
	}
}
